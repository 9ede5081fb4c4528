package radio

import (
	"errors"
	"log/slog"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/sandbot-io/wifimgr/pkg/connection"
)

// Radio errors.
var (
	ErrAccessPointActive = errors.New("access point active")
	ErrNoCredentials     = errors.New("no network to reconnect to")
)

// Default simulation timing.
const (
	DefaultAssociationDelay = 1500 * time.Millisecond
	DefaultScanDuration     = 2 * time.Second
)

// Network is a network visible to the simulated radio.
type Network struct {
	SSID     string `yaml:"ssid"`
	Password string `yaml:"password"`
	RSSI     int    `yaml:"rssi"`

	// Hidden networks can be joined but are not reported by scans.
	Hidden bool `yaml:"hidden"`
}

// ScanResult is one network reported by a scan.
type ScanResult struct {
	SSID string `json:"ssid"`
	RSSI int    `json:"rssi"`
}

// SimConfig configures a Sim.
type SimConfig struct {
	// HardwareAddr is the station MAC address.
	HardwareAddr net.HardwareAddr

	// Networks are the networks in range.
	Networks []Network

	// Address is handed out on a successful join.
	Address net.IP

	// AssociationDelay is how long a join takes to resolve.
	AssociationDelay time.Duration

	// ScanDuration is how long a scan runs.
	ScanDuration time.Duration

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultSimConfig returns a configuration with a locally administered
// hardware address and no networks in range.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		HardwareAddr:     net.HardwareAddr{0x02, 0x53, 0x42, 0x00, 0x00, 0x01},
		Address:          net.IPv4(192, 168, 1, 50),
		AssociationDelay: DefaultAssociationDelay,
		ScanDuration:     DefaultScanDuration,
	}
}

// Sim is a simulated wireless driver.
type Sim struct {
	mu sync.Mutex

	config   SimConfig
	networks map[string]Network
	logger   *slog.Logger

	status   connection.LinkStatus
	ssid     string
	password string
	apSSID   string

	// Incremented on every join, disconnect and mode change so pending
	// join resolutions can detect they are stale.
	gen     uint64
	pending *time.Timer

	scanning    bool
	scanResults []ScanResult

	subscribers []func(connection.Event)
}

// NewSim creates a simulated radio.
func NewSim(cfg SimConfig) *Sim {
	if len(cfg.HardwareAddr) == 0 {
		cfg.HardwareAddr = DefaultSimConfig().HardwareAddr
	}
	if cfg.Address == nil {
		cfg.Address = DefaultSimConfig().Address
	}

	s := &Sim{
		config:   cfg,
		networks: make(map[string]Network),
		status:   connection.LinkIdle,
	}
	for _, n := range cfg.Networks {
		s.networks[n.SSID] = n
	}
	return s
}

// Subscribe registers fn to receive link events. fn is called from the
// simulator's timer goroutines.
func (s *Sim) Subscribe(fn func(connection.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// SetNetwork adds or replaces a network in range.
func (s *Sim) SetNetwork(n Network) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.networks[n.SSID] = n
}

// RemoveNetwork takes a network out of range. If the station was joined to
// it, the link drops with a beacon timeout.
func (s *Sim) RemoveNetwork(ssid string) {
	s.mu.Lock()
	delete(s.networks, ssid)
	drop := s.status == connection.LinkUp && s.ssid == ssid
	s.mu.Unlock()

	if drop {
		s.Drop(connection.ReasonBeaconTimeout)
	}
}

// Networks returns the networks in range, strongest first.
func (s *Sim) Networks() []Network {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Network, 0, len(s.networks))
	for _, n := range s.networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RSSI != out[j].RSSI {
			return out[i].RSSI > out[j].RSSI
		}
		return out[i].SSID < out[j].SSID
	})
	return out
}

// BeginConnect starts joining ssid. The outcome is reported after the
// association delay.
func (s *Sim) BeginConnect(ssid, password, hostname string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == connection.LinkAccessPoint {
		return ErrAccessPointActive
	}

	s.ssid = ssid
	s.password = password
	s.startJoinLocked()
	s.debugLog("begin connect", "ssid", ssid, "hostname", hostname)
	return nil
}

// Reconnect rejoins the last network.
func (s *Sim) Reconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == connection.LinkAccessPoint {
		return ErrAccessPointActive
	}
	if s.ssid == "" {
		return ErrNoCredentials
	}
	s.startJoinLocked()
	s.debugLog("reconnect", "ssid", s.ssid)
	return nil
}

// Disconnect leaves the current network. An established or pending link
// reports a disconnect.
func (s *Sim) Disconnect() error {
	s.mu.Lock()
	wasActive := s.status == connection.LinkUp || s.status == connection.LinkJoining
	s.cancelLocked()
	if s.status != connection.LinkAccessPoint {
		s.status = connection.LinkIdle
	}
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if wasActive {
		s.debugLog("disconnect")
		emit(subs, connection.Disconnected(connection.ReasonDisconnected))
	}
	return nil
}

// StartAccessPoint switches to access point mode.
func (s *Sim) StartAccessPoint(ssid, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.status = connection.LinkAccessPoint
	s.apSSID = ssid
	s.debugLog("access point started", "ssid", ssid, "secured", password != "")
	return nil
}

// StopAccessPoint returns to station mode.
func (s *Sim) StopAccessPoint() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == connection.LinkAccessPoint {
		s.status = connection.LinkIdle
	}
	s.apSSID = ""
	s.debugLog("access point stopped")
	return nil
}

// Status returns the simulated link status.
func (s *Sim) Status() connection.LinkStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// HardwareAddr returns the station MAC address.
func (s *Sim) HardwareAddr() net.HardwareAddr {
	return s.config.HardwareAddr
}

// AccessPoint returns the active access point name, or "".
func (s *Sim) AccessPoint() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apSSID
}

// Drop simulates loss of an established link.
func (s *Sim) Drop(reason connection.DisconnectReason) {
	s.mu.Lock()
	if s.status != connection.LinkUp {
		s.mu.Unlock()
		return
	}
	s.gen++
	s.status = connection.LinkIdle
	subs := s.subscribersLocked()
	s.mu.Unlock()

	s.debugLog("link dropped", "reason", reason)
	emit(subs, connection.Disconnected(reason))
}

// StartScan begins a network scan. A scan already running is left alone.
func (s *Sim) StartScan() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scanning {
		return nil
	}
	s.scanning = true
	time.AfterFunc(s.config.ScanDuration, s.finishScan)
	return nil
}

// ScanResults returns the results of the last completed scan and whether a
// scan is still running.
func (s *Sim) ScanResults() ([]ScanResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ScanResult, len(s.scanResults))
	copy(out, s.scanResults)
	return out, s.scanning
}

func (s *Sim) finishScan() {
	var results []ScanResult
	for _, n := range s.Networks() {
		if n.Hidden {
			continue
		}
		results = append(results, ScanResult{SSID: n.SSID, RSSI: n.RSSI})
	}

	s.mu.Lock()
	s.scanResults = results
	s.scanning = false
	s.mu.Unlock()

	s.debugLog("scan complete", "networks", len(results))
}

// startJoinLocked schedules resolution of a join to s.ssid.
func (s *Sim) startJoinLocked() {
	s.cancelLocked()
	s.status = connection.LinkJoining

	gen := s.gen
	s.pending = time.AfterFunc(s.config.AssociationDelay, func() {
		s.resolveJoin(gen)
	})
}

func (s *Sim) resolveJoin(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.status != connection.LinkJoining {
		s.mu.Unlock()
		return
	}
	s.pending = nil

	var event connection.Event
	network, ok := s.networks[s.ssid]
	switch {
	case !ok:
		s.status = connection.LinkFailed
		event = connection.Disconnected(connection.ReasonNoNetwork)
	case !keysMatch(network, s.password):
		s.status = connection.LinkFailed
		event = connection.Disconnected(connection.ReasonAuthFailed)
	default:
		s.status = connection.LinkUp
		event = connection.GotAddress(s.config.Address)
	}
	subs := s.subscribersLocked()
	ssid := s.ssid
	s.mu.Unlock()

	s.debugLog("join resolved", "ssid", ssid, "event", event.Kind, "reason", event.Reason)
	emit(subs, event)
}

// cancelLocked invalidates any pending join.
func (s *Sim) cancelLocked() {
	s.gen++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Sim) subscribersLocked() []func(connection.Event) {
	subs := make([]func(connection.Event), len(s.subscribers))
	copy(subs, s.subscribers)
	return subs
}

func emit(subs []func(connection.Event), event connection.Event) {
	for _, fn := range subs {
		fn(event)
	}
}

func (s *Sim) debugLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}

var _ connection.Radio = (*Sim)(nil)
