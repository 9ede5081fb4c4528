package connection

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandbot-io/wifimgr/pkg/log"
)

// Connection errors.
var (
	ErrInvalidConfig = errors.New("invalid connection config")
	ErrNoRadio       = errors.New("no radio driver")
	ErrNoStore       = errors.New("no credential store")
	ErrEmptySSID     = errors.New("empty ssid")
)

// Mode is the connection mode of the Manager.
type Mode uint8

const (
	// ModeDisconnected indicates no link and no outstanding attempt.
	ModeDisconnected Mode = iota

	// ModeConnecting indicates a connection attempt was issued.
	ModeConnecting

	// ModeConnected indicates the station has an address.
	ModeConnected

	// ModePortal indicates the local setup access point is active.
	ModePortal
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeDisconnected:
		return "DISCONNECTED"
	case ModeConnecting:
		return "CONNECTING"
	case ModeConnected:
		return "CONNECTED"
	case ModePortal:
		return "PORTAL"
	default:
		return "UNKNOWN"
	}
}

// StatusCode is the value published to the StatusSink on each mode change.
type StatusCode uint8

const (
	StatusDisconnected StatusCode = 0
	StatusConnected    StatusCode = 1
	StatusPortal       StatusCode = 2
)

// String returns the status name.
func (c StatusCode) String() string {
	switch c {
	case StatusDisconnected:
		return "disconnected"
	case StatusConnected:
		return "connected"
	case StatusPortal:
		return "portal"
	default:
		return fmt.Sprintf("status(%d)", uint8(c))
	}
}

// Default timing and naming values.
const (
	DefaultAttemptTimeout    = 30 * time.Second
	DefaultFirstAttemptDelay = 2 * time.Second
	DefaultRetryInterval     = 60 * time.Second
	DefaultFailureThreshold  = 3
	DefaultDisconnectGrace   = 5 * time.Second
	DefaultRestartDelay      = 1 * time.Second
	DefaultHostname          = "sandbot"
	DefaultAPPrefix          = "sandBot-"
	DefaultAPPassword        = "SecureThis"
)

// Config configures a Manager.
type Config struct {
	// AttemptTimeout is how long an attempt may run without an address
	// before it counts as a failure.
	AttemptTimeout time.Duration

	// FirstAttemptDelay is the wait before the very first attempt.
	FirstAttemptDelay time.Duration

	// RetryInterval is the wait between later attempts.
	RetryInterval time.Duration

	// RetryMultiplier grows the retry interval after each attempt (1 = constant).
	RetryMultiplier float64

	// RetryMax caps a growing retry interval.
	RetryMax time.Duration

	// RetryJitter adds up to this fraction of the interval at random.
	RetryJitter float64

	// FailureThreshold is the number of failures that escalates to the portal.
	FailureThreshold int

	// PortalTimeout leaves the portal after this long. Zero disables it.
	PortalTimeout time.Duration

	// DisconnectGrace is the window after an attempt starts in which a
	// generic disconnect is attributed to that attempt.
	DisconnectGrace time.Duration

	// RestartDelay is the wait between a restart request and the restart.
	RestartDelay time.Duration

	// DefaultHostname is used when no hostname is stored.
	DefaultHostname string

	// APPrefix is prepended to the hardware suffix to form the access point name.
	APPrefix string

	// APPassword is the access point passphrase. Empty means an open network.
	APPassword string

	// BootID tags every trace event. Generated if empty.
	BootID string

	// Logger is the optional logger for operational output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// TraceLogger receives structured trace events.
	// If nil, tracing is disabled.
	TraceLogger log.Logger
}

// DefaultConfig returns the default Manager configuration.
func DefaultConfig() Config {
	return Config{
		AttemptTimeout:    DefaultAttemptTimeout,
		FirstAttemptDelay: DefaultFirstAttemptDelay,
		RetryInterval:     DefaultRetryInterval,
		RetryMultiplier:   1.0,
		RetryMax:          DefaultRetryInterval,
		FailureThreshold:  DefaultFailureThreshold,
		DisconnectGrace:   DefaultDisconnectGrace,
		RestartDelay:      DefaultRestartDelay,
		DefaultHostname:   DefaultHostname,
		APPrefix:          DefaultAPPrefix,
		APPassword:        DefaultAPPassword,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch {
	case c.AttemptTimeout <= 0:
		return fmt.Errorf("%w: attempt timeout must be positive", ErrInvalidConfig)
	case c.FirstAttemptDelay < 0:
		return fmt.Errorf("%w: first attempt delay must not be negative", ErrInvalidConfig)
	case c.RetryInterval <= 0:
		return fmt.Errorf("%w: retry interval must be positive", ErrInvalidConfig)
	case c.RetryInterval < c.AttemptTimeout:
		// A shorter interval re-issues before the outstanding attempt can time out.
		return fmt.Errorf("%w: retry interval %v below attempt timeout %v", ErrInvalidConfig, c.RetryInterval, c.AttemptTimeout)
	case c.RetryMultiplier < 1:
		return fmt.Errorf("%w: retry multiplier must be at least 1", ErrInvalidConfig)
	case c.RetryMultiplier > 1 && c.RetryMax < c.RetryInterval:
		return fmt.Errorf("%w: retry max %v below retry interval %v", ErrInvalidConfig, c.RetryMax, c.RetryInterval)
	case c.RetryJitter < 0 || c.RetryJitter > 1:
		return fmt.Errorf("%w: retry jitter must be within [0, 1]", ErrInvalidConfig)
	case c.FailureThreshold < 1:
		return fmt.Errorf("%w: failure threshold must be at least 1", ErrInvalidConfig)
	case c.PortalTimeout < 0:
		return fmt.Errorf("%w: portal timeout must not be negative", ErrInvalidConfig)
	case c.DisconnectGrace < 0:
		return fmt.Errorf("%w: disconnect grace must not be negative", ErrInvalidConfig)
	case c.RestartDelay < 0:
		return fmt.Errorf("%w: restart delay must not be negative", ErrInvalidConfig)
	case c.DefaultHostname == "":
		return fmt.Errorf("%w: default hostname is required", ErrInvalidConfig)
	case c.APPrefix == "":
		return fmt.Errorf("%w: access point prefix is required", ErrInvalidConfig)
	case c.APPassword != "" && len(c.APPassword) < 8:
		return fmt.Errorf("%w: access point password must be empty or at least 8 characters", ErrInvalidConfig)
	}
	return nil
}

// Status is a point-in-time snapshot of the Manager.
type Status struct {
	Mode        Mode
	Failures    int
	SSID        string
	Hostname    string
	PortalName  string
	Link        LinkStatus
	PortalSince time.Time

	// RestartPending is true while a deferred restart is armed.
	RestartPending bool
}
