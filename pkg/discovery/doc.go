// Package discovery announces the device on the local network over mDNS.
//
// Once the station has an address, the connection manager asks the
// HostnameAdvertiser to register the device hostname. The advertiser
// publishes a DNS-SD instance named after the hostname (by default
// "_http._tcp" on the portal's HTTP port) so browsers and service
// browsers on the same link can find the device as "<hostname>.local".
//
// A new registration replaces the previous one; Shutdown withdraws it.
package discovery
