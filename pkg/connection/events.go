package connection

import (
	"fmt"
	"net"
)

// EventKind identifies a radio event.
type EventKind uint8

const (
	// EventGotAddress indicates the station obtained an address.
	EventGotAddress EventKind = iota

	// EventDisconnected indicates the station lost or failed its link.
	EventDisconnected
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventGotAddress:
		return "GOT_ADDRESS"
	case EventDisconnected:
		return "DISCONNECTED"
	default:
		return "UNKNOWN"
	}
}

// Event is a link change reported by the radio driver.
type Event struct {
	Kind EventKind

	// Address is set for EventGotAddress.
	Address net.IP

	// Reason is set for EventDisconnected.
	Reason DisconnectReason
}

// GotAddress returns an address-obtained event.
func GotAddress(ip net.IP) Event {
	return Event{Kind: EventGotAddress, Address: ip}
}

// Disconnected returns a disconnect event carrying the driver's reason.
func Disconnected(reason DisconnectReason) Event {
	return Event{Kind: EventDisconnected, Reason: reason}
}

// DisconnectReason is the reason code a driver attaches to a disconnect.
// Drivers may report codes not listed here; they classify as generic.
type DisconnectReason uint16

const (
	ReasonUnspecified      DisconnectReason = 1
	ReasonDisconnected     DisconnectReason = 8
	ReasonHandshakeTimeout DisconnectReason = 15
	ReasonBeaconTimeout    DisconnectReason = 200
	ReasonNoNetwork        DisconnectReason = 201
	ReasonAuthFailed       DisconnectReason = 202
	ReasonAssocRejected    DisconnectReason = 203
	ReasonConnectionLost   DisconnectReason = 206
)

// String returns the reason name.
func (r DisconnectReason) String() string {
	switch r {
	case ReasonUnspecified:
		return "UNSPECIFIED"
	case ReasonDisconnected:
		return "DISCONNECTED"
	case ReasonHandshakeTimeout:
		return "HANDSHAKE_TIMEOUT"
	case ReasonBeaconTimeout:
		return "BEACON_TIMEOUT"
	case ReasonNoNetwork:
		return "NO_NETWORK"
	case ReasonAuthFailed:
		return "AUTH_FAILED"
	case ReasonAssocRejected:
		return "ASSOC_REJECTED"
	case ReasonConnectionLost:
		return "CONNECTION_LOST"
	default:
		return fmt.Sprintf("REASON_%d", uint16(r))
	}
}

// FailureClass describes how a disconnect is accounted.
type FailureClass uint8

const (
	// ClassTransient is an ordinary loss of an established link. Never a failure.
	ClassTransient FailureClass = iota

	// ClassNegotiation is a rejected or impossible join. Always a failure.
	ClassNegotiation

	// ClassGeneric is a failure only within the grace window of an attempt.
	ClassGeneric
)

// String returns the class name.
func (c FailureClass) String() string {
	switch c {
	case ClassTransient:
		return "TRANSIENT"
	case ClassNegotiation:
		return "NEGOTIATION"
	case ClassGeneric:
		return "GENERIC"
	default:
		return "UNKNOWN"
	}
}

// Classify returns the failure class of a disconnect reason.
func Classify(reason DisconnectReason) FailureClass {
	switch reason {
	case ReasonConnectionLost, ReasonBeaconTimeout:
		return ClassTransient
	case ReasonNoNetwork, ReasonAuthFailed, ReasonHandshakeTimeout, ReasonAssocRejected:
		return ClassNegotiation
	default:
		return ClassGeneric
	}
}
