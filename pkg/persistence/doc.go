// Package persistence provides durable storage for the network credentials of
// a wifimgr device.
//
// Credentials are kept as a small JSON document with the keys WiFiSSID, WiFiPW
// and WiFiHostname. The file store writes the document atomically so a power
// loss during a save leaves either the old or the new document on disk.
package persistence
