// Package portal serves the provisioning web interface.
//
// While the device has no usable network it runs an access point and the
// captive DNS gateway sends every lookup to this server. The setup page
// lists nearby networks and submits the chosen credentials through a
// plain GET:
//
//	GET /w/{ssid}
//	GET /w/{ssid}/{password}
//	GET /w/{ssid}/{password}/{hostname}
//
// Each segment is URL-unescaped. Submitting credentials saves them and
// requests a restart, after which the device joins the new network.
//
// The same server stays up in station mode so /status and
// DELETE /credentials remain reachable on the local network.
package portal
