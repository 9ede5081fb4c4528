package connection

import "time"

// EnterPortal starts the setup access point and captive gateway.
// No-op if already in the portal.
func (m *Manager) EnterPortal() {
	m.mu.Lock()
	m.startPortalLocked(m.clock.Now(), "requested")
	m.unlockAndNotify()
}

// ExitPortal stops the access point and returns to station mode.
// Connection attempts resume on the next Tick. No-op outside the portal.
func (m *Manager) ExitPortal() {
	m.mu.Lock()
	m.stopPortalLocked(m.clock.Now(), "requested")
	m.unlockAndNotify()
}

func (m *Manager) startPortalLocked(now time.Time, reason string) {
	if m.mode == ModePortal {
		return
	}

	if err := m.radio.Disconnect(); err != nil {
		m.reportError("radio", "disconnect", err)
	}
	if err := m.radio.StartAccessPoint(m.portalName, m.config.APPassword); err != nil {
		m.reportError("radio", "start access point", err)
	}
	if err := m.gateway.Start(); err != nil {
		m.reportError("gateway", "start", err)
	}
	// The station address is gone; its hostname must not resolve.
	if err := m.names.Withdraw(); err != nil {
		m.reportError("mdns", "withdraw", err)
	}

	m.failures = 0
	m.lastAttemptStart = time.Time{}
	m.portalEnteredAt = now
	m.setModeLocked(ModePortal, reason)
	m.status.SetStatus(StatusPortal)

	m.logger.Info("portal started",
		"ssid", m.portalName,
		"reason", reason)
}

func (m *Manager) stopPortalLocked(now time.Time, reason string) {
	if m.mode != ModePortal {
		return
	}

	if err := m.gateway.Stop(); err != nil {
		m.reportError("gateway", "stop", err)
	}
	if err := m.radio.StopAccessPoint(); err != nil {
		m.reportError("radio", "stop access point", err)
	}

	active := now.Sub(m.portalEnteredAt)
	m.failures = 0
	m.portalEnteredAt = time.Time{}
	m.setModeLocked(ModeDisconnected, reason)
	m.status.SetStatus(StatusDisconnected)

	m.logger.Info("portal stopped",
		"reason", reason,
		"active", active)
}
