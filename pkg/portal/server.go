package portal

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:embed index.html
var indexPage []byte

// Server errors.
var (
	ErrAlreadyStarted = errors.New("portal already started")
	ErrNotStarted     = errors.New("portal not started")
	ErrNoProvisioner  = errors.New("provisioner is required")
)

// Default server settings.
const (
	DefaultAddr              = ":80"
	DefaultReadHeaderTimeout = 5 * time.Second
)

// captiveProbes are the connectivity-check paths of common clients.
var captiveProbes = []string{
	"/generate_204",
	"/gen_204",
	"/hotspot-detect.html",
	"/library/test/success.html",
	"/connecttest.txt",
	"/ncsi.txt",
	"/redirect",
}

// Config configures the portal server.
type Config struct {
	// Addr is the HTTP listen address.
	// Default: ":80".
	Addr string

	// RedirectURL is where captive probes and unknown paths are sent.
	// Default: "/".
	RedirectURL string

	// Logger is the optional logger for request and debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns the default portal configuration.
func DefaultConfig() Config {
	return Config{
		Addr:        DefaultAddr,
		RedirectURL: "/",
	}
}

// Server is the provisioning HTTP server.
type Server struct {
	config  Config
	prov    Provisioner
	scanner Scanner
	router  chi.Router

	mu       sync.Mutex
	http     *http.Server
	listener net.Listener
	done     chan struct{}
}

// NewServer creates a portal server. scanner may be nil, in which case
// /wifiscan reports an error.
func NewServer(config Config, prov Provisioner, scanner Scanner) (*Server, error) {
	if prov == nil {
		return nil, ErrNoProvisioner
	}
	if config.Addr == "" {
		config.Addr = DefaultAddr
	}
	if config.RedirectURL == "" {
		config.RedirectURL = "/"
	}

	s := &Server{
		config:  config,
		prov:    prov,
		scanner: scanner,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/wifiscan", s.handleScan)
	r.Get("/w/*", s.handleJoin)
	r.Get("/status", s.handleStatus)
	r.Delete("/credentials", s.handleClear)

	for _, p := range captiveProbes {
		r.Get(p, s.handleRedirect)
	}
	r.NotFound(s.handleRedirect)

	return r
}

// Handler returns the portal's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the listen address and serves in the background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.http != nil {
		return ErrAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Addr, err)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
	}
	if s.config.Logger != nil {
		srv.ErrorLog = slog.NewLogLogger(s.config.Logger.Handler(), slog.LevelWarn)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.debugLog("portal server exited", "error", err)
		}
	}()

	s.http = srv
	s.listener = ln
	s.done = done
	s.debugLog("portal listening", "addr", ln.Addr().String())
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones to finish
// or for ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.http, s.done
	s.http = nil
	s.listener = nil
	s.done = nil
	s.mu.Unlock()

	if srv == nil {
		return ErrNotStarted
	}

	err := srv.Shutdown(ctx)
	select {
	case <-done:
	case <-ctx.Done():
	}
	return err
}

// Addr returns the bound address, or nil if the server is not running.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.Logger == nil {
			next.ServeHTTP(w, r)
			return
		}
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.config.Logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.EscapedPath(),
			"status", ww.Status(),
			"duration", time.Since(start),
			"remote", r.RemoteAddr)
	})
}

func (s *Server) debugLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}
