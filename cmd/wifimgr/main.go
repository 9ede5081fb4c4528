// Command wifimgr keeps the device on a wireless network and falls back to
// a provisioning portal when it cannot.
//
// It runs the connection manager against the radio driver, serves the
// setup portal over HTTP, answers DNS for captive clients while the access
// point is up and announces the hostname over mDNS once connected.
//
// Usage:
//
//	wifimgr [flags]
//
// Flags:
//
//	-config string       Configuration file path (YAML)
//	-state string        Credential document path (default "/var/lib/wifimgr/wifi.json")
//	-bootstrap string    Bootstrap document read once at startup (default "/boot/wifimgr.json")
//	-listen string       Portal HTTP listen address (default ":80")
//	-dns-listen string   Captive DNS listen address (default ":53")
//	-ap-ip string        Access point address returned by captive DNS (default "192.168.4.1")
//	-log-level string    Log level: debug, info, warn, error (default "info")
//	-log-format string   Log format: text, json (default "text")
//	-trace string        Trace file (.wlog)
//	-status-file string  File receiving the status code
//	-interactive         Start the interactive console
//	-version             Print the version and exit
//
// Every setting can also be given in the configuration file or as a
// WIFIMGR_* environment variable (WIFIMGR_LISTEN, WIFIMGR_CONNECTION_ATTEMPT_TIMEOUT, ...).
// Flags win over the environment, which wins over the file.
//
// Examples:
//
//	# Run unprivileged against the simulated radio
//	wifimgr -config wifimgr.yaml -listen :8080 -dns-listen :5353 -interactive
//
//	# Record a trace for wifimgr-log
//	wifimgr -trace /var/log/wifimgr/boot.wlog -log-level debug
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/google/uuid"

	"github.com/sandbot-io/wifimgr/cmd/wifimgr/interactive"
	"github.com/sandbot-io/wifimgr/pkg/captive"
	"github.com/sandbot-io/wifimgr/pkg/connection"
	"github.com/sandbot-io/wifimgr/pkg/discovery"
	"github.com/sandbot-io/wifimgr/pkg/persistence"
	"github.com/sandbot-io/wifimgr/pkg/portal"
	"github.com/sandbot-io/wifimgr/pkg/radio"
	"github.com/sandbot-io/wifimgr/pkg/version"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	switch {
	case errors.Is(err, errVersionRequested):
		fmt.Println("wifimgr", version.Full())
		return
	case errors.Is(err, flag.ErrHelp):
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "wifimgr: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "wifimgr: %v\n", err)
		os.Exit(1)
	}
}

// daemon holds the wired services.
type daemon struct {
	logger     *slog.Logger
	manager    *connection.Manager
	sim        *radio.Sim
	gateway    *captive.Server
	advertiser *discovery.HostnameAdvertiser
	web        *portal.Server
	status     *statusReporter
	closeTrace func() error

	shutdownOnce sync.Once
}

func run(cfg Config) error {
	out := &switchWriter{w: os.Stderr}
	logger := newLogger(out, cfg.LogLevel, cfg.LogFormat)

	bootID := uuid.NewString()
	logger.Info("wifimgr starting", "version", version.Full(), "boot_id", bootID, "radio", cfg.Radio, "state", cfg.State)

	d, err := newDaemon(cfg, bootID, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := d.web.Start(); err != nil {
		d.shutdown(context.Background())
		return err
	}

	go d.manager.Run(ctx, cfg.TickInterval)

	if cfg.Interactive {
		console, err := interactive.New(d.manager, d.sim)
		if err != nil {
			logger.Warn("interactive console unavailable", "error", err)
		} else {
			out.Set(console.Stdout())
			go console.Run(ctx, stop)
		}
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	d.shutdown(shutdownCtx)

	logger.Info("goodbye")
	return nil
}

// newDaemon wires the services. Nothing is started except what the
// manager starts while loading its state.
func newDaemon(cfg Config, bootID string, logger *slog.Logger) (*daemon, error) {
	d := &daemon{logger: logger}

	trace, closeTrace, err := newTraceLogger(cfg.Trace, logger)
	if err != nil {
		return nil, err
	}
	d.closeTrace = closeTrace

	simCfg, err := cfg.SimConfig()
	if err != nil {
		return nil, err
	}
	simCfg.Logger = logger.With("component", "radio")
	d.sim = radio.NewSim(simCfg)

	dnsCfg := captive.DefaultConfig()
	dnsCfg.Addr = cfg.DNSListen
	dnsCfg.AccessPointIP = net.ParseIP(cfg.APAddress)
	dnsCfg.Logger = logger.With("component", "captive")
	d.gateway, err = captive.NewServer(dnsCfg)
	if err != nil {
		return nil, err
	}

	advCfg := discovery.DefaultAdvertiserConfig()
	advCfg.Interface = cfg.Interface
	advCfg.Port = listenPort(cfg.Listen)
	advCfg.Text = discovery.TXTRecordMap{
		discovery.TXTKeyBootID:  bootID,
		discovery.TXTKeyVersion: version.Current,
	}
	advCfg.Logger = logger.With("component", "mdns")
	d.advertiser = discovery.NewHostnameAdvertiser(advCfg)

	d.status = newStatusReporter(logger, cfg.StatusFile)
	restarter := newExecRestarter(logger, d.shutdown)

	connCfg := cfg.ConnectionConfig(bootID)
	connCfg.Logger = logger.With("component", "connection")
	connCfg.TraceLogger = trace

	d.manager, err = connection.NewManager(connCfg, connection.Deps{
		Radio:     d.sim,
		Store:     persistence.NewCredentialFileStore(cfg.State),
		Gateway:   d.gateway,
		Status:    d.status,
		Names:     d.advertiser,
		Restarter: restarter,
	})
	if err != nil {
		return nil, fmt.Errorf("connection manager: %w", err)
	}

	d.sim.Subscribe(d.manager.OnEvent)
	d.manager.OnModeChange(func(from, to connection.Mode) {
		logger.Info("mode changed", "from", from.String(), "to", to.String())
	})

	applyBootstrap(cfg.Bootstrap, d.manager, logger)

	webCfg := portal.DefaultConfig()
	webCfg.Addr = cfg.Listen
	webCfg.RedirectURL = "http://" + cfg.APAddress + "/"
	webCfg.Logger = logger.With("component", "portal")
	d.web, err = portal.NewServer(webCfg, d.manager, d.sim)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// shutdown stops the services. It runs once, either on exit or before a
// restart.
func (d *daemon) shutdown(ctx context.Context) {
	d.shutdownOnce.Do(func() {
		if d.web != nil {
			if err := d.web.Shutdown(ctx); err != nil && !errors.Is(err, portal.ErrNotStarted) {
				d.logger.Warn("portal shutdown", "error", err)
			}
		}
		if err := d.gateway.Stop(); err != nil {
			d.logger.Debug("captive dns stop", "error", err)
		}
		if err := d.advertiser.Shutdown(); err != nil && !errors.Is(err, discovery.ErrNotRegistered) {
			d.logger.Debug("mdns shutdown", "error", err)
		}
		if err := d.closeTrace(); err != nil {
			d.logger.Warn("trace close", "error", err)
		}
	})
}

// applyBootstrap feeds the bootstrap document, if present, to the manager.
func applyBootstrap(path string, mgr *connection.Manager, logger *slog.Logger) bool {
	if path == "" {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("bootstrap unreadable", "path", path, "error", err)
		}
		return false
	}
	defer f.Close()

	if !mgr.LoadBootstrap(f) {
		return false
	}
	logger.Info("bootstrap applied", "path", path)
	return true
}

// listenPort extracts the port of a listen address, defaulting to 80.
func listenPort(addr string) int {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return discovery.DefaultPort
	}
	n, err := strconv.Atoi(port)
	if err != nil || n <= 0 {
		return discovery.DefaultPort
	}
	return n
}

// switchWriter is an io.Writer whose target can be replaced, so log output
// can move to the console once it is up.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Set replaces the target writer.
func (s *switchWriter) Set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}
