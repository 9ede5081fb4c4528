package discovery

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"

	"github.com/sandbot-io/wifimgr/pkg/connection"
)

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// ServiceType is the DNS-SD service type.
	// Default: "_http._tcp".
	ServiceType string

	// Port is the announced service port.
	// Default: 80.
	Port int

	// TTL is the DNS record TTL.
	// Default: 120 seconds.
	TTL time.Duration

	// Text holds extra TXT records announced with the hostname.
	Text TXTRecordMap

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{
		Interface:   "",
		ServiceType: ServiceTypeHTTP,
		Port:        DefaultPort,
		TTL:         DefaultTTL,
	}
}

// registration is an active mDNS announcement.
type registration interface {
	Shutdown()
}

type registerFunc func(instance, service, domain string, port int, text []string, ifaces []net.Interface, opts ...zeroconf.ServerOption) (registration, error)

func zeroconfRegister(instance, service, domain string, port int, text []string, ifaces []net.Interface, opts ...zeroconf.ServerOption) (registration, error) {
	server, err := zeroconf.Register(instance, service, domain, port, text, ifaces, opts...)
	if err != nil {
		return nil, err
	}
	return server, nil
}

// HostnameAdvertiser announces the device hostname over mDNS.
type HostnameAdvertiser struct {
	config AdvertiserConfig

	mu sync.Mutex

	// Active announcement
	server   registration
	hostname string

	register registerFunc
}

// NewHostnameAdvertiser creates a new hostname advertiser.
func NewHostnameAdvertiser(config AdvertiserConfig) *HostnameAdvertiser {
	if config.ServiceType == "" {
		config.ServiceType = ServiceTypeHTTP
	}
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	return &HostnameAdvertiser{
		config:   config,
		register: zeroconfRegister,
	}
}

// getInterfaces returns the network interfaces to use for advertising.
// Returns nil to use all interfaces.
func (a *HostnameAdvertiser) getInterfaces() []net.Interface {
	if a.config.Interface == "" {
		return nil
	}

	iface, err := net.InterfaceByName(a.config.Interface)
	if err != nil {
		a.debugLog("interface not found, using all", "interface", a.config.Interface, "error", err)
		return nil
	}
	return []net.Interface{*iface}
}

// Register announces hostname, replacing any previous announcement.
func (a *HostnameAdvertiser) Register(hostname string) error {
	if err := ValidateHostname(hostname); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Stop existing if any
	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
		a.hostname = ""
	}

	// Build TXT records
	txt := make(TXTRecordMap, len(a.config.Text)+2)
	for k, v := range a.config.Text {
		txt[k] = v
	}
	txt[TXTKeyHostname] = hostname
	txt[TXTKeyPath] = "/"

	var opts []zeroconf.ServerOption
	if a.config.TTL > 0 {
		opts = append(opts, zeroconf.TTL(uint32(a.config.TTL.Seconds())))
	}

	server, err := a.register(
		hostname,
		a.config.ServiceType,
		Domain,
		a.config.Port,
		TXTRecordsToStrings(txt),
		a.getInterfaces(),
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to register %s: %w", hostname, err)
	}

	a.server = server
	a.hostname = hostname
	a.debugLog("hostname registered", "hostname", hostname, "service", a.config.ServiceType, "port", a.config.Port)
	return nil
}

// Hostname returns the announced hostname, or "" when nothing is announced.
func (a *HostnameAdvertiser) Hostname() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hostname
}

// Withdraw removes the announcement if there is one.
func (a *HostnameAdvertiser) Withdraw() error {
	if err := a.Shutdown(); err != nil && !errors.Is(err, ErrNotRegistered) {
		return err
	}
	return nil
}

// Shutdown withdraws the announcement. It returns ErrNotRegistered when
// nothing is announced.
func (a *HostnameAdvertiser) Shutdown() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return ErrNotRegistered
	}
	a.server.Shutdown()
	a.server = nil
	a.hostname = ""
	return nil
}

func (a *HostnameAdvertiser) debugLog(msg string, args ...any) {
	if a.config.Logger != nil {
		a.config.Logger.Debug(msg, args...)
	}
}

var _ connection.NameRegistrar = (*HostnameAdvertiser)(nil)
