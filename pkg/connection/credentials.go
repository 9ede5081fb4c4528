package connection

import (
	"fmt"
	"time"

	"github.com/sandbot-io/wifimgr/pkg/log"
	"github.com/sandbot-io/wifimgr/pkg/persistence"
)

// SetCredentials replaces the network credentials and persists them.
// An empty hostname keeps the current one. Leaves the portal if active.
// With requestRestart the process restarts RestartDelay later.
//
// The in-memory credentials are updated even if persisting fails; the save
// error is returned.
func (m *Manager) SetCredentials(ssid, password, hostname string, requestRestart bool) error {
	m.mu.Lock()
	now := m.clock.Now()

	m.creds.SSID = ssid
	m.creds.Password = password
	if hostname != "" {
		m.creds.Hostname = hostname
	} else {
		m.logger.Debug("hostname not set, keeping current", "hostname", m.creds.Hostname)
	}

	err := m.saveLocked()
	m.traceLocked(log.Event{
		Category: log.CategoryCredential,
		Credential: &log.CredentialEvent{
			Action:           log.CredentialSet,
			SSID:             m.creds.SSID,
			Hostname:         m.creds.Hostname,
			RestartRequested: requestRestart,
		},
	})
	m.logger.Info("credentials set", "ssid", ssid, "hostname", m.creds.Hostname, "restart", requestRestart)

	if m.mode == ModePortal {
		m.stopPortalLocked(now, "credentials updated")
	}
	if requestRestart {
		m.pendingRestartAt = now
	}

	m.unlockAndNotify()
	return err
}

// ClearCredentials forgets the network credentials, resets the hostname to
// the default and enters the portal.
func (m *Manager) ClearCredentials() error {
	m.mu.Lock()
	err := m.clearLocked()
	m.unlockAndNotify()
	return err
}

func (m *Manager) clearLocked() error {
	now := m.clock.Now()

	m.creds = persistence.Credentials{Hostname: m.config.DefaultHostname}
	err := m.saveLocked()
	m.traceLocked(log.Event{
		Category: log.CategoryCredential,
		Credential: &log.CredentialEvent{
			Action:   log.CredentialClear,
			Hostname: m.creds.Hostname,
		},
	})
	m.logger.Info("credentials cleared")

	if derr := m.radio.Disconnect(); derr != nil {
		m.reportError("radio", "disconnect", derr)
	}
	m.failures = 0
	m.lastAttemptStart = time.Time{}

	m.startPortalLocked(now, "credentials cleared")
	return err
}

func (m *Manager) saveLocked() error {
	if err := m.store.Save(m.creds); err != nil {
		m.reportError("store", "save credentials", err)
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}
