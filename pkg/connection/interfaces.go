package connection

import (
	"net"
	"time"

	"github.com/sandbot-io/wifimgr/pkg/persistence"
)

// LinkStatus is the radio's own view of its link. It is informational only;
// the Manager's Mode is authoritative.
type LinkStatus uint8

const (
	LinkIdle LinkStatus = iota
	LinkJoining
	LinkUp
	LinkFailed
	LinkAccessPoint
)

// String returns the link status name.
func (s LinkStatus) String() string {
	switch s {
	case LinkIdle:
		return "IDLE"
	case LinkJoining:
		return "JOINING"
	case LinkUp:
		return "UP"
	case LinkFailed:
		return "FAILED"
	case LinkAccessPoint:
		return "ACCESS_POINT"
	default:
		return "UNKNOWN"
	}
}

// Radio is the wireless driver. Calls must not block on link negotiation;
// outcomes are reported later through Manager.OnEvent.
type Radio interface {
	BeginConnect(ssid, password, hostname string) error
	Disconnect() error
	Reconnect() error
	StartAccessPoint(ssid, password string) error
	StopAccessPoint() error
	Status() LinkStatus
	HardwareAddr() net.HardwareAddr
}

// CredentialStore persists the device's network credentials.
type CredentialStore interface {
	Load() (persistence.Credentials, error)
	Save(creds persistence.Credentials) error
}

// Gateway is the captive redirect service active while in the portal.
type Gateway interface {
	Start() error
	Stop() error

	// Service performs periodic work. Called from Tick while in the portal.
	Service()
}

// StatusSink receives the status code on every mode change.
type StatusSink interface {
	SetStatus(code StatusCode)
}

// NameRegistrar announces the hostname on the local network.
// Withdraw is a no-op when nothing is announced.
type NameRegistrar interface {
	Register(hostname string) error
	Withdraw() error
}

// Restarter restarts the process.
type Restarter interface {
	Restart()
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Deps are the Manager's collaborators. Radio and Store are required;
// the rest default to no-ops.
type Deps struct {
	Radio     Radio
	Store     CredentialStore
	Gateway   Gateway
	Status    StatusSink
	Names     NameRegistrar
	Restarter Restarter
	Clock     Clock
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type noopGateway struct{}

func (noopGateway) Start() error { return nil }
func (noopGateway) Stop() error  { return nil }
func (noopGateway) Service()     {}

type noopStatus struct{}

func (noopStatus) SetStatus(StatusCode) {}

type noopNames struct{}

func (noopNames) Register(string) error { return nil }
func (noopNames) Withdraw() error       { return nil }

type noopRestarter struct{}

func (noopRestarter) Restart() {}

// StatusFunc adapts a function to StatusSink.
type StatusFunc func(code StatusCode)

// SetStatus calls f(code).
func (f StatusFunc) SetStatus(code StatusCode) { f(code) }

// RestartFunc adapts a function to Restarter.
type RestartFunc func()

// Restart calls f().
func (f RestartFunc) Restart() { f() }
