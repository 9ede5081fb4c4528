package log

import (
	"strings"
	"time"
)

// Event is a single trace record.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// BootID identifies the process run that produced the event.
	BootID string `cbor:"2,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"3,keyasint"`

	// Mode is the connection mode after the event was applied.
	Mode string `cbor:"4,keyasint,omitempty"`

	// Failures is the failure counter after the event was applied.
	Failures int `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Transition *TransitionEvent `cbor:"10,keyasint,omitempty"`
	Attempt    *AttemptEvent    `cbor:"11,keyasint,omitempty"`
	Link       *LinkEvent       `cbor:"12,keyasint,omitempty"`
	Credential *CredentialEvent `cbor:"13,keyasint,omitempty"`
	Error      *ErrorEventData  `cbor:"14,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryTransition indicates a mode change.
	CategoryTransition Category = 0
	// CategoryAttempt indicates a connection attempt started or timed out.
	CategoryAttempt Category = 1
	// CategoryLink indicates a radio link event.
	CategoryLink Category = 2
	// CategoryCredential indicates a credential change.
	CategoryCredential Category = 3
	// CategoryError indicates a failed collaborator call.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryTransition:
		return "TRANSITION"
	case CategoryAttempt:
		return "ATTEMPT"
	case CategoryLink:
		return "LINK"
	case CategoryCredential:
		return "CREDENTIAL"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name (case-insensitive).
func ParseCategory(s string) (Category, bool) {
	switch strings.ToUpper(s) {
	case "TRANSITION":
		return CategoryTransition, true
	case "ATTEMPT":
		return CategoryAttempt, true
	case "LINK":
		return CategoryLink, true
	case "CREDENTIAL":
		return CategoryCredential, true
	case "ERROR":
		return CategoryError, true
	default:
		return 0, false
	}
}

// TransitionEvent captures a mode change.
type TransitionEvent struct {
	From   string `cbor:"1,keyasint"`
	To     string `cbor:"2,keyasint"`
	Reason string `cbor:"3,keyasint,omitempty"`
}

// AttemptOutcome describes what happened to a connection attempt.
type AttemptOutcome uint8

const (
	// AttemptStarted indicates BeginConnect was issued.
	AttemptStarted AttemptOutcome = 0
	// AttemptTimedOut indicates no address arrived within the attempt timeout.
	AttemptTimedOut AttemptOutcome = 1
)

// String returns the outcome name.
func (o AttemptOutcome) String() string {
	switch o {
	case AttemptStarted:
		return "STARTED"
	case AttemptTimedOut:
		return "TIMED_OUT"
	default:
		return "UNKNOWN"
	}
}

// AttemptEvent captures a connection attempt.
type AttemptEvent struct {
	SSID    string         `cbor:"1,keyasint"`
	Number  int            `cbor:"2,keyasint"`
	Outcome AttemptOutcome `cbor:"3,keyasint"`

	// Elapsed is the attempt duration (timeouts only).
	Elapsed time.Duration `cbor:"4,keyasint,omitempty"`
}

// LinkKind distinguishes radio link events.
type LinkKind uint8

const (
	// LinkGotAddress indicates the station obtained an address.
	LinkGotAddress LinkKind = 0
	// LinkDisconnected indicates the station lost or failed its link.
	LinkDisconnected LinkKind = 1
)

// String returns the link kind name.
func (k LinkKind) String() string {
	switch k {
	case LinkGotAddress:
		return "GOT_ADDRESS"
	case LinkDisconnected:
		return "DISCONNECTED"
	default:
		return "UNKNOWN"
	}
}

// LinkEvent captures a radio link event and how it was classified.
type LinkEvent struct {
	Kind LinkKind `cbor:"1,keyasint"`

	// Address is the obtained address (GOT_ADDRESS only).
	Address string `cbor:"2,keyasint,omitempty"`

	// Reason and ReasonCode describe a disconnect.
	Reason     string `cbor:"3,keyasint,omitempty"`
	ReasonCode int    `cbor:"4,keyasint,omitempty"`

	// Class is the failure class assigned to the disconnect.
	Class string `cbor:"5,keyasint,omitempty"`

	// Counted is true if the disconnect incremented the failure counter.
	Counted bool `cbor:"6,keyasint,omitempty"`
}

// CredentialAction identifies a credential change.
type CredentialAction uint8

const (
	// CredentialSet indicates SetCredentials.
	CredentialSet CredentialAction = 0
	// CredentialClear indicates ClearCredentials.
	CredentialClear CredentialAction = 1
	// CredentialBootstrap indicates a bootstrap document was applied.
	CredentialBootstrap CredentialAction = 2
)

// String returns the action name.
func (a CredentialAction) String() string {
	switch a {
	case CredentialSet:
		return "SET"
	case CredentialClear:
		return "CLEAR"
	case CredentialBootstrap:
		return "BOOTSTRAP"
	default:
		return "UNKNOWN"
	}
}

// CredentialEvent captures a credential change. The password is never recorded.
type CredentialEvent struct {
	Action           CredentialAction `cbor:"1,keyasint"`
	SSID             string           `cbor:"2,keyasint,omitempty"`
	Hostname         string           `cbor:"3,keyasint,omitempty"`
	RestartRequested bool             `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures a failed collaborator call.
type ErrorEventData struct {
	// Component is the collaborator that failed (radio, gateway, store, ...).
	Component string `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
