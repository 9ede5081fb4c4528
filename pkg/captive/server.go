// Package captive implements the wildcard DNS responder used while the
// device hosts its setup access point. Every name resolves to the access
// point address, so any page a client opens lands on the portal.
package captive

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/miekg/dns"

	"github.com/sandbot-io/wifimgr/pkg/connection"
)

// Defaults.
const (
	DefaultAddr = ":53"
	DefaultTTL  = 60
)

// DefaultAccessPointIP is the address clients are sent to.
var DefaultAccessPointIP = net.IPv4(192, 168, 4, 1)

// ErrNotIPv4 is returned when the access point address is not IPv4.
var ErrNotIPv4 = errors.New("access point address must be IPv4")

// Config configures a Server.
type Config struct {
	// Addr is the UDP listen address.
	Addr string

	// AccessPointIP is returned for every A query.
	AccessPointIP net.IP

	// TTL of the synthesized records, in seconds.
	TTL uint32

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns the default captive DNS configuration.
func DefaultConfig() Config {
	return Config{
		Addr:          DefaultAddr,
		AccessPointIP: DefaultAccessPointIP,
		TTL:           DefaultTTL,
	}
}

// Server is a wildcard DNS responder.
type Server struct {
	mu sync.Mutex

	config Config
	answer net.IP

	server *dns.Server
	conn   net.PacketConn

	// wanted is true between Start and Stop; Service rebinds while wanted
	// and not serving.
	wanted  bool
	serving bool
	lastErr error

	answered atomic.Uint64
}

// NewServer creates a captive DNS server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.AccessPointIP == nil {
		cfg.AccessPointIP = DefaultAccessPointIP
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	answer := cfg.AccessPointIP.To4()
	if answer == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotIPv4, cfg.AccessPointIP)
	}
	return &Server{config: cfg, answer: answer}, nil
}

// Start binds the listen address and serves in the background.
// A failed bind is retried by Service.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wanted = true
	if s.serving {
		return nil
	}
	return s.startLocked()
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wanted = false
	return s.shutdownLocked()
}

// Service rebinds the server if it should be running but is not, e.g. when
// the access point interface was not up yet at Start.
func (s *Server) Service() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.wanted || s.serving {
		return
	}
	if err := s.startLocked(); err != nil {
		s.debugLog("captive dns rebind failed", "error", err)
	}
}

// Addr returns the bound address, or nil when not serving.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Serving returns true while the server is answering queries.
func (s *Server) Serving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serving
}

// Answered returns the number of queries answered.
func (s *Server) Answered() uint64 {
	return s.answered.Load()
}

func (s *Server) startLocked() error {
	conn, err := net.ListenPacket("udp", s.config.Addr)
	if err != nil {
		s.lastErr = err
		return fmt.Errorf("captive dns listen %s: %w", s.config.Addr, err)
	}

	started := make(chan struct{})
	srv := &dns.Server{
		PacketConn:        conn,
		Net:               "udp",
		Handler:           dns.HandlerFunc(s.handle),
		NotifyStartedFunc: func() { close(started) },
	}
	failed := make(chan error, 1)

	go func() {
		err := srv.ActivateAndServe()
		failed <- err
		s.served(srv, err)
	}()

	select {
	case <-started:
	case err := <-failed:
		conn.Close()
		return fmt.Errorf("captive dns serve: %w", err)
	}

	s.server = srv
	s.conn = conn
	s.serving = true
	s.lastErr = nil
	s.debugLog("captive dns started", "addr", conn.LocalAddr(), "answer", s.answer)
	return nil
}

// served records that srv stopped serving.
func (s *Server) served(srv *dns.Server, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != srv {
		return
	}
	s.serving = false
	s.server = nil
	s.conn = nil
	if err != nil {
		s.lastErr = err
		s.debugLog("captive dns stopped", "error", err)
	}
}

func (s *Server) shutdownLocked() error {
	srv := s.server
	if srv == nil {
		return nil
	}
	s.server = nil
	s.conn = nil
	s.serving = false

	if err := srv.Shutdown(); err != nil {
		return fmt.Errorf("captive dns shutdown: %w", err)
	}
	s.debugLog("captive dns stopped")
	return nil
}

func (s *Server) handle(w dns.ResponseWriter, r *dns.Msg) {
	m := new(dns.Msg)
	m.SetReply(r)
	m.Authoritative = true

	for _, q := range r.Question {
		switch q.Qtype {
		case dns.TypeA, dns.TypeANY:
			m.Answer = append(m.Answer, &dns.A{
				Hdr: dns.RR_Header{
					Name:   q.Name,
					Rrtype: dns.TypeA,
					Class:  dns.ClassINET,
					Ttl:    s.config.TTL,
				},
				A: s.answer,
			})
		}
	}

	if err := w.WriteMsg(m); err != nil {
		s.debugLog("captive dns write failed", "error", err)
		return
	}
	s.answered.Add(1)
}

func (s *Server) debugLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}

var _ connection.Gateway = (*Server)(nil)
