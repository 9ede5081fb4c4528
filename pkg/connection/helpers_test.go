package connection

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/sandbot-io/wifimgr/pkg/log"
	"github.com/sandbot-io/wifimgr/pkg/persistence"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type beginCall struct {
	ssid, password, hostname string
}

type fakeRadio struct {
	mu          sync.Mutex
	hw          net.HardwareAddr
	begins      []beginCall
	disconnects int
	reconnects  int
	apStarts    []beginCall
	apStops     int
}

func (r *fakeRadio) BeginConnect(ssid, password, hostname string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.begins = append(r.begins, beginCall{ssid, password, hostname})
	return nil
}

func (r *fakeRadio) Disconnect() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disconnects++
	return nil
}

func (r *fakeRadio) Reconnect() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reconnects++
	return nil
}

func (r *fakeRadio) StartAccessPoint(ssid, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apStarts = append(r.apStarts, beginCall{ssid: ssid, password: password})
	return nil
}

func (r *fakeRadio) StopAccessPoint() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apStops++
	return nil
}

func (r *fakeRadio) Status() LinkStatus { return LinkIdle }

func (r *fakeRadio) HardwareAddr() net.HardwareAddr { return r.hw }

func (r *fakeRadio) beginCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.begins)
}

type fakeGateway struct {
	starts, stops, services int
}

func (g *fakeGateway) Start() error { g.starts++; return nil }
func (g *fakeGateway) Stop() error  { g.stops++; return nil }
func (g *fakeGateway) Service()     { g.services++ }

type statusRecorder struct {
	codes []StatusCode
}

func (s *statusRecorder) SetStatus(code StatusCode) { s.codes = append(s.codes, code) }

func (s *statusRecorder) last() StatusCode {
	if len(s.codes) == 0 {
		return 255
	}
	return s.codes[len(s.codes)-1]
}

type nameRecorder struct {
	names       []string
	withdrawals int
}

func (n *nameRecorder) Register(hostname string) error {
	n.names = append(n.names, hostname)
	return nil
}

func (n *nameRecorder) Withdraw() error {
	n.withdrawals++
	return nil
}

type traceRecorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *traceRecorder) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *traceRecorder) categories() map[log.Category]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[log.Category]int)
	for _, e := range r.events {
		out[e.Category]++
	}
	return out
}

type harness struct {
	m        *Manager
	clock    *fakeClock
	radio    *fakeRadio
	store    *persistence.MemoryCredentialStore
	gateway  *fakeGateway
	status   *statusRecorder
	names    *nameRecorder
	trace    *traceRecorder
	restarts int
}

func newHarness(t *testing.T, creds persistence.Credentials, opts ...func(*Config)) *harness {
	t.Helper()

	h := &harness{
		clock:   newFakeClock(),
		radio:   &fakeRadio{hw: net.HardwareAddr{0x24, 0x6f, 0x28, 0xa1, 0xb2, 0xc3}},
		store:   persistence.NewMemoryCredentialStore(creds),
		gateway: &fakeGateway{},
		status:  &statusRecorder{},
		names:   &nameRecorder{},
		trace:   &traceRecorder{},
	}

	cfg := DefaultConfig()
	cfg.BootID = "test-boot"
	cfg.TraceLogger = h.trace
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := NewManager(cfg, Deps{
		Radio:     h.radio,
		Store:     h.store,
		Gateway:   h.gateway,
		Status:    h.status,
		Names:     h.names,
		Restarter: RestartFunc(func() { h.restarts++ }),
		Clock:     h.clock,
	})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	h.m = m
	return h
}

// tickAfter advances the clock by d and ticks once.
func (h *harness) tickAfter(d time.Duration) {
	h.clock.Advance(d)
	h.m.Tick()
}

// deliver queues an event and ticks without moving the clock.
func (h *harness) deliver(e Event) {
	h.m.OnEvent(e)
	h.m.Tick()
}

var homeNetwork = persistence.Credentials{SSID: "home", Password: "hunter22", Hostname: "sandbot-lab"}
