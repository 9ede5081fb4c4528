package connection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sandbot-io/wifimgr/pkg/log"
)

// MaxBootstrapSize is the largest bootstrap document that is read.
const MaxBootstrapSize = 2048

// ErrInvalidBootstrap is returned for unreadable or malformed bootstrap documents.
var ErrInvalidBootstrap = errors.New("invalid bootstrap document")

// BootstrapAction is what a bootstrap document asks for.
type BootstrapAction uint8

const (
	// BootstrapIgnore leaves the stored configuration untouched.
	BootstrapIgnore BootstrapAction = iota

	// BootstrapJoin installs the document's credentials.
	BootstrapJoin

	// BootstrapAccessPoint clears the credentials and forces the portal.
	BootstrapAccessPoint
)

// String returns the action name.
func (a BootstrapAction) String() string {
	switch a {
	case BootstrapIgnore:
		return "IGNORE"
	case BootstrapJoin:
		return "JOIN"
	case BootstrapAccessPoint:
		return "ACCESS_POINT"
	default:
		return "UNKNOWN"
	}
}

// Bootstrap is a parsed bootstrap document.
type Bootstrap struct {
	Action BootstrapAction

	// Mode is the raw "wifi" value, lower-cased.
	Mode string

	SSID     string
	Password string
	Hostname string
}

type bootstrapDocument struct {
	WiFi     string `json:"wifi"`
	SSID     string `json:"WiFiSSID"`
	Password string `json:"WiFiPW"`
	Hostname string `json:"WiFiHostname"`
}

// ParseBootstrap reads a bootstrap document of at most MaxBootstrapSize bytes.
// "wifi" is matched case-insensitively: "yes" joins the given network, "ap"
// forces the portal, anything else is ignored. A "yes" document without an
// SSID yields ErrEmptySSID.
func ParseBootstrap(r io.Reader) (Bootstrap, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBootstrapSize))
	if err != nil {
		return Bootstrap{}, fmt.Errorf("%w: %v", ErrInvalidBootstrap, err)
	}

	var doc bootstrapDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Bootstrap{}, fmt.Errorf("%w: %v", ErrInvalidBootstrap, err)
	}

	b := Bootstrap{
		Mode:     strings.ToLower(doc.WiFi),
		SSID:     doc.SSID,
		Password: doc.Password,
		Hostname: doc.Hostname,
	}
	switch b.Mode {
	case "yes":
		if b.SSID == "" {
			return b, fmt.Errorf("bootstrap wifi=yes: %w", ErrEmptySSID)
		}
		b.Action = BootstrapJoin
	case "ap":
		b.Action = BootstrapAccessPoint
	default:
		b.Action = BootstrapIgnore
	}
	return b, nil
}

// LoadBootstrap applies a bootstrap document. It is meant to run once,
// before the first Tick. Returns true if the document changed the
// configuration. Problems with the document are logged, never fatal.
//
// A join document persists its credentials, leaves the portal and makes
// the next Tick attempt a connection immediately.
func (m *Manager) LoadBootstrap(r io.Reader) bool {
	b, err := ParseBootstrap(r)
	if err != nil {
		m.logger.Warn("bootstrap document ignored", "error", err)
		return false
	}

	switch b.Action {
	case BootstrapJoin:
		m.mu.Lock()
		m.applyBootstrapLocked(b)
		m.unlockAndNotify()
		return true

	case BootstrapAccessPoint:
		m.logger.Info("bootstrap requests access point mode")
		m.mu.Lock()
		m.traceLocked(log.Event{
			Category:   log.CategoryCredential,
			Credential: &log.CredentialEvent{Action: log.CredentialBootstrap},
		})
		_ = m.clearLocked()
		m.unlockAndNotify()
		return true

	default:
		m.logger.Debug("bootstrap wifi mode not recognized", "wifi", b.Mode)
		return false
	}
}

func (m *Manager) applyBootstrapLocked(b Bootstrap) {
	now := m.clock.Now()

	m.creds.SSID = b.SSID
	m.creds.Password = b.Password
	if b.Hostname != "" {
		m.creds.Hostname = b.Hostname
	}
	_ = m.saveLocked()
	m.traceLocked(log.Event{
		Category: log.CategoryCredential,
		Credential: &log.CredentialEvent{
			Action:   log.CredentialBootstrap,
			SSID:     m.creds.SSID,
			Hostname: m.creds.Hostname,
		},
	})
	m.logger.Info("bootstrap credentials loaded", "ssid", b.SSID, "hostname", m.creds.Hostname)

	if m.mode == ModePortal {
		m.stopPortalLocked(now, "bootstrap credentials")
	}

	m.failures = 0
	m.lastAttemptStart = time.Time{}
	m.lastBeginIssuedAt = time.Time{}
	m.backoff.Reset()
}
