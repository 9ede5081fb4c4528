package connection

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sandbot-io/wifimgr/pkg/log"
	"github.com/sandbot-io/wifimgr/pkg/persistence"
)

type modeChange struct {
	from, to Mode
}

// Manager runs the connection lifecycle state machine.
type Manager struct {
	mu sync.RWMutex

	config Config
	bootID string

	// Collaborators
	radio     Radio
	store     CredentialStore
	gateway   Gateway
	status    StatusSink
	names     NameRegistrar
	restarter Restarter
	clock     Clock

	logger *slog.Logger
	trace  log.Logger

	// Current state
	mode       Mode
	failures   int
	creds      persistence.Credentials
	portalName string

	// Timers (zero = unset)
	lastAttemptStart  time.Time
	lastBeginIssuedAt time.Time
	portalEnteredAt   time.Time
	pendingRestartAt  time.Time

	// Attempt interval policy
	backoff *Backoff

	// Work deferred until the lock is released
	changes    []modeChange
	restartDue bool

	// Radio event queue
	qmu   sync.Mutex
	queue []queuedEvent
	wake  chan struct{}

	// Callbacks
	onModeChange func(from, to Mode)
}

// NewManager creates a Manager and loads the stored credentials.
// The first connection attempt is made FirstAttemptDelay after creation.
func NewManager(cfg Config, deps Deps) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Radio == nil {
		return nil, ErrNoRadio
	}
	if deps.Store == nil {
		return nil, ErrNoStore
	}
	if deps.Gateway == nil {
		deps.Gateway = noopGateway{}
	}
	if deps.Status == nil {
		deps.Status = noopStatus{}
	}
	if deps.Names == nil {
		deps.Names = noopNames{}
	}
	if deps.Restarter == nil {
		deps.Restarter = noopRestarter{}
	}
	if deps.Clock == nil {
		deps.Clock = systemClock{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	bootID := cfg.BootID
	if bootID == "" {
		bootID = uuid.NewString()
	}

	m := &Manager{
		config:     cfg,
		bootID:     bootID,
		radio:      deps.Radio,
		store:      deps.Store,
		gateway:    deps.Gateway,
		status:     deps.Status,
		names:      deps.Names,
		restarter:  deps.Restarter,
		clock:      deps.Clock,
		logger:     logger,
		trace:      cfg.TraceLogger,
		mode:       ModeDisconnected,
		portalName: accessPointName(cfg.APPrefix, deps.Radio.HardwareAddr()),
		wake:       make(chan struct{}, 1),
		backoff: NewBackoff(BackoffConfig{
			First:      cfg.FirstAttemptDelay,
			Interval:   cfg.RetryInterval,
			Max:        cfg.RetryMax,
			Multiplier: cfg.RetryMultiplier,
			Jitter:     cfg.RetryJitter,
		}),
	}
	m.lastBeginIssuedAt = m.clock.Now()

	creds, err := m.store.Load()
	if err != nil {
		m.reportError("store", "load credentials", err)
		creds = persistence.Credentials{}
	}
	if creds.Hostname == "" {
		creds.Hostname = cfg.DefaultHostname
	}
	m.creds = creds

	m.logger.Info("connection manager created",
		"ssid", creds.SSID,
		"hostname", creds.Hostname,
		"portal", m.portalName,
		"boot_id", bootID)

	return m, nil
}

// accessPointName forms the portal network name from the last three octets
// of the hardware address, e.g. "sandBot-A1B2C3".
func accessPointName(prefix string, hw []byte) string {
	var suffix [3]byte
	if n := len(hw); n >= 3 {
		copy(suffix[:], hw[n-3:])
	} else {
		copy(suffix[3-n:], hw)
	}
	return fmt.Sprintf("%s%02X%02X%02X", prefix, suffix[0], suffix[1], suffix[2])
}

// OnModeChange sets a callback invoked after every mode change.
// The callback runs outside the Manager's lock.
func (m *Manager) OnModeChange(fn func(from, to Mode)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onModeChange = fn
}

// queuedEvent is a radio event stamped with its arrival time.
type queuedEvent struct {
	Event
	at time.Time
}

// OnEvent queues a radio event. Safe to call from any goroutine; never blocks
// on the state machine. The event is applied by the next Tick, but the
// disconnect grace window is measured at arrival.
func (m *Manager) OnEvent(event Event) {
	at := m.clock.Now()

	m.qmu.Lock()
	m.queue = append(m.queue, queuedEvent{Event: event, at: at})
	m.qmu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
		// Already pending
	}
}

// Tick applies queued events and advances the state machine.
func (m *Manager) Tick() {
	m.mu.Lock()
	now := m.clock.Now()

	m.drainLocked(now)

	if !m.pendingRestartAt.IsZero() && now.Sub(m.pendingRestartAt) >= m.config.RestartDelay {
		m.pendingRestartAt = time.Time{}
		m.restartDue = true
		m.logger.Info("restarting")
	}

	switch m.mode {
	case ModePortal:
		m.gateway.Service()
		if m.config.PortalTimeout > 0 && now.Sub(m.portalEnteredAt) >= m.config.PortalTimeout {
			m.logger.Info("portal timeout, leaving portal", "timeout", m.config.PortalTimeout)
			m.stopPortalLocked(now, "portal timeout")
		}

	case ModeDisconnected, ModeConnecting:
		m.evaluateLocked(now)

	case ModeConnected:
		m.failures = 0
		m.lastAttemptStart = time.Time{}
	}

	m.unlockAndNotify()
}

// Run calls Tick every interval and whenever an event is queued,
// until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.Tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Tick()
		case <-m.wake:
			m.Tick()
		}
	}
}

// evaluateLocked handles the not-connected modes: attempt timeout,
// missing credentials and throttled attempt issue.
func (m *Manager) evaluateLocked(now time.Time) {
	if !m.lastAttemptStart.IsZero() {
		elapsed := now.Sub(m.lastAttemptStart)
		if elapsed >= m.config.AttemptTimeout {
			m.failures++
			m.lastAttemptStart = time.Time{}
			m.logger.Info("connection attempt timed out",
				"elapsed", elapsed,
				"failures", m.failures)
			m.setModeLocked(ModeDisconnected, "attempt timed out")
			m.traceLocked(log.Event{
				Category: log.CategoryAttempt,
				Attempt: &log.AttemptEvent{
					SSID:    m.creds.SSID,
					Number:  m.backoff.Attempts(),
					Outcome: log.AttemptTimedOut,
					Elapsed: elapsed,
				},
			})

			if m.failures >= m.config.FailureThreshold {
				m.logger.Warn("failure threshold reached, starting portal", "failures", m.failures)
				m.startPortalLocked(now, "failure threshold reached")
				return
			}
		}
	}

	if m.creds.SSID == "" {
		m.logger.Info("no credentials, starting portal")
		m.startPortalLocked(now, "no credentials")
		return
	}

	if now.Sub(m.lastBeginIssuedAt) < m.backoff.Delay() {
		return
	}

	m.backoff.Advance()
	attempt := m.backoff.Attempts()
	m.logger.Info("connecting",
		"ssid", m.creds.SSID,
		"attempt", attempt,
		"failures", m.failures)
	if err := m.radio.BeginConnect(m.creds.SSID, m.creds.Password, m.creds.Hostname); err != nil {
		m.reportError("radio", "begin connect", err)
	}
	m.lastBeginIssuedAt = now
	m.lastAttemptStart = now
	m.setModeLocked(ModeConnecting, "attempt started")
	m.traceLocked(log.Event{
		Category: log.CategoryAttempt,
		Attempt: &log.AttemptEvent{
			SSID:    m.creds.SSID,
			Number:  attempt,
			Outcome: log.AttemptStarted,
		},
	})
}

// drainLocked applies every queued radio event in arrival order.
func (m *Manager) drainLocked(now time.Time) {
	m.qmu.Lock()
	events := m.queue
	m.queue = nil
	m.qmu.Unlock()

	for _, event := range events {
		switch event.Kind {
		case EventGotAddress:
			m.applyGotAddressLocked(event.Event)
		case EventDisconnected:
			m.applyDisconnectLocked(now, event.at, event.Reason)
		default:
			m.logger.Warn("ignoring unknown radio event", "kind", event.Kind)
		}
	}
}

func (m *Manager) applyGotAddressLocked(event Event) {
	m.failures = 0
	m.lastAttemptStart = time.Time{}
	m.backoff.Settle()

	addr := ""
	if event.Address != nil {
		addr = event.Address.String()
	}

	if m.mode == ModePortal {
		m.logger.Warn("address obtained while in portal, ignoring", "address", addr)
		m.traceLocked(log.Event{
			Category: log.CategoryLink,
			Link:     &log.LinkEvent{Kind: log.LinkGotAddress, Address: addr},
		})
		return
	}

	m.logger.Info("connected", "address", addr, "ssid", m.creds.SSID)
	m.setModeLocked(ModeConnected, "address obtained")
	m.traceLocked(log.Event{
		Category: log.CategoryLink,
		Link:     &log.LinkEvent{Kind: log.LinkGotAddress, Address: addr},
	})

	if err := m.names.Register(m.creds.Hostname); err != nil {
		m.reportError("mdns", "register "+m.creds.Hostname, err)
	} else {
		m.logger.Info("hostname registered", "hostname", m.creds.Hostname)
	}
	m.status.SetStatus(StatusConnected)
}

// applyDisconnectLocked handles a disconnect that arrived at "at".
func (m *Manager) applyDisconnectLocked(now, at time.Time, reason DisconnectReason) {
	inPortal := m.mode == ModePortal
	if m.mode == ModeConnected || m.mode == ModeConnecting {
		m.setModeLocked(ModeDisconnected, "link down: "+reason.String())
	}

	class := Classify(reason)
	counted := false
	if !inPortal {
		switch class {
		case ClassNegotiation:
			counted = true
		case ClassGeneric:
			counted = m.withinGraceLocked(at)
		}
	}

	if counted {
		m.failures++
		m.lastAttemptStart = time.Time{}
	}

	m.logger.Info("disconnected",
		"reason", reason.String(),
		"class", class.String(),
		"counted", counted,
		"failures", m.failures)
	m.traceLocked(log.Event{
		Category: log.CategoryLink,
		Link: &log.LinkEvent{
			Kind:       log.LinkDisconnected,
			Reason:     reason.String(),
			ReasonCode: int(reason),
			Class:      class.String(),
			Counted:    counted,
		},
	})

	// The portal keeps reporting status 2; a station disconnect does not change it.
	if inPortal {
		return
	}

	if counted && m.failures >= m.config.FailureThreshold {
		m.logger.Warn("failure threshold reached, starting portal", "failures", m.failures)
		m.startPortalLocked(now, "failure threshold reached")
		return
	}

	if err := m.radio.Reconnect(); err != nil {
		m.reportError("radio", "reconnect", err)
	}
	m.status.SetStatus(StatusDisconnected)
}

// withinGraceLocked reports whether a generic disconnect at "at" belongs to
// the outstanding attempt.
func (m *Manager) withinGraceLocked(at time.Time) bool {
	if m.lastAttemptStart.IsZero() || at.Before(m.lastAttemptStart) {
		return false
	}
	return at.Sub(m.lastAttemptStart) <= m.config.DisconnectGrace
}

// setModeLocked changes the mode and records the transition.
func (m *Manager) setModeLocked(to Mode, reason string) {
	from := m.mode
	if from == to {
		return
	}
	m.mode = to
	m.changes = append(m.changes, modeChange{from: from, to: to})
	m.logger.Debug("mode change", "from", from, "to", to, "reason", reason)
	m.traceLocked(log.Event{
		Category: log.CategoryTransition,
		Transition: &log.TransitionEvent{
			From:   from.String(),
			To:     to.String(),
			Reason: reason,
		},
	})
}

// unlockAndNotify releases the write lock, then runs mode change callbacks
// and a due restart.
func (m *Manager) unlockAndNotify() {
	changes := m.changes
	m.changes = nil
	restart := m.restartDue
	m.restartDue = false
	fn := m.onModeChange
	restarter := m.restarter
	m.mu.Unlock()

	if fn != nil {
		for _, c := range changes {
			fn(c.from, c.to)
		}
	}
	if restart {
		restarter.Restart()
	}
}

// reportError logs and traces a collaborator failure. The state machine
// continues regardless.
func (m *Manager) reportError(component, context string, err error) {
	m.logger.Warn("collaborator call failed",
		"component", component,
		"op", context,
		"error", err)
	m.traceLocked(log.Event{
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Component: component,
			Message:   err.Error(),
			Context:   context,
		},
	})
}

func (m *Manager) traceLocked(event log.Event) {
	if m.trace == nil {
		return
	}
	event.Timestamp = m.clock.Now()
	event.BootID = m.bootID
	event.Mode = m.mode.String()
	event.Failures = m.failures
	m.trace.Log(event)
}

// Mode returns the current mode.
func (m *Manager) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// Failures returns the current failure count.
func (m *Manager) Failures() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.failures
}

// Hostname returns the active hostname.
func (m *Manager) Hostname() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creds.Hostname
}

// Credentials returns the active credentials.
func (m *Manager) Credentials() persistence.Credentials {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creds
}

// IsConnected returns true if the station has an address.
func (m *Manager) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode == ModeConnected
}

// IsPortalMode returns true while the setup access point is active.
func (m *Manager) IsPortalMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode == ModePortal
}

// PortalNetworkName returns the access point name used in the portal.
func (m *Manager) PortalNetworkName() string {
	return m.portalName
}

// BootID returns the identifier attached to trace events.
func (m *Manager) BootID() string {
	return m.bootID
}

// Status returns a snapshot of the Manager.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Status{
		Mode:           m.mode,
		Failures:       m.failures,
		SSID:           m.creds.SSID,
		Hostname:       m.creds.Hostname,
		PortalName:     m.portalName,
		Link:           m.radio.Status(),
		PortalSince:    m.portalEnteredAt,
		RestartPending: !m.pendingRestartAt.IsZero(),
	}
}
