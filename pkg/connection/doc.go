// Package connection implements the network connection lifecycle of the device.
//
// A Manager owns the connection mode, the failure counter, every timer and the
// active credentials. It decides when to ask the radio to join a network, when
// an attempt has failed, when to give up and host a local setup access point
// (the portal), and when to return to normal operation.
//
// # Modes
//
//	DISCONNECTED -> CONNECTING -> CONNECTED
//	      ^              |            |
//	      +--------------+------------+
//	      |
//	    PORTAL (access point + captive DNS, no connection attempts)
//
// # Driving the Manager
//
// The owner calls Tick at a fixed cadence (or uses Run). The radio driver
// reports link changes through OnEvent from its own goroutine. OnEvent only
// queues; queued events are applied inside the next Tick under the same lock
// that guards all other state.
//
// # Failure Accounting
//
// A failure is counted when an attempt times out, when the radio reports a
// negotiation failure, or when a generic disconnect arrives within the grace
// window after an attempt was started. Transient link loss never counts. When
// the counter reaches the threshold the Manager enters the portal.
//
// # Retry Timing
//
// The first attempt waits FirstAttemptDelay after construction. Later
// attempts wait RetryInterval, optionally growing by RetryMultiplier up to
// RetryMax with RetryJitter applied. A successful connection resets growth.
// RetryInterval may not be shorter than AttemptTimeout, so every attempt
// either resolves or times out before the next one is issued.
package connection
