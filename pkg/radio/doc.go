// Package radio provides a simulated wireless driver.
//
// Sim implements connection.Radio against a configurable table of visible
// networks. Joins resolve asynchronously after an association delay and are
// reported to subscribers the same way a hardware driver reports link
// changes from its event task. Sim also answers network scans for the
// provisioning portal.
package radio
