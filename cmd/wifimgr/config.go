package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/sandbot-io/wifimgr/pkg/connection"
	"github.com/sandbot-io/wifimgr/pkg/radio"
)

// EnvPrefix is the prefix of environment overrides (WIFIMGR_LISTEN, ...).
const EnvPrefix = "WIFIMGR"

// Config holds the daemon configuration.
//
// Values are layered: built-in defaults, then the YAML file given with
// -config, then WIFIMGR_* environment variables, then flags given on the
// command line.
type Config struct {
	// Credential document path.
	State string `yaml:"state" envconfig:"STATE"`

	// Bootstrap document read once at startup. Missing file is ignored.
	Bootstrap string `yaml:"bootstrap" envconfig:"BOOTSTRAP"`

	// Portal HTTP listen address.
	Listen string `yaml:"listen" envconfig:"LISTEN"`

	// Captive DNS listen address.
	DNSListen string `yaml:"dns_listen" envconfig:"DNS_LISTEN"`

	// Address handed out by captive DNS while in the portal.
	APAddress string `yaml:"ap_ip" envconfig:"AP_IP"`

	// Network interface for mDNS. Empty means all.
	Interface string `yaml:"interface" envconfig:"INTERFACE"`

	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" envconfig:"LOG_FORMAT"`

	// Trace file (.wlog). Empty disables tracing.
	Trace string `yaml:"trace" envconfig:"TRACE"`

	// File receiving the numeric status code. Empty disables it.
	StatusFile string `yaml:"status_file" envconfig:"STATUS_FILE"`

	TickInterval time.Duration `yaml:"tick_interval" envconfig:"TICK_INTERVAL"`

	// Radio driver. Only "sim" is available.
	Radio string `yaml:"radio" envconfig:"RADIO"`

	Interactive bool `yaml:"interactive" envconfig:"INTERACTIVE"`

	Connection ConnectionSettings `yaml:"connection" envconfig:"CONNECTION"`
	Sim        SimSettings        `yaml:"sim" envconfig:"SIM"`
}

// ConnectionSettings mirror connection.Config.
type ConnectionSettings struct {
	AttemptTimeout    time.Duration `yaml:"attempt_timeout" envconfig:"ATTEMPT_TIMEOUT"`
	FirstAttemptDelay time.Duration `yaml:"first_attempt_delay" envconfig:"FIRST_ATTEMPT_DELAY"`
	RetryInterval     time.Duration `yaml:"retry_interval" envconfig:"RETRY_INTERVAL"`
	RetryMultiplier   float64       `yaml:"retry_multiplier" envconfig:"RETRY_MULTIPLIER"`
	RetryMax          time.Duration `yaml:"retry_max" envconfig:"RETRY_MAX"`
	RetryJitter       float64       `yaml:"retry_jitter" envconfig:"RETRY_JITTER"`
	FailureThreshold  int           `yaml:"failure_threshold" envconfig:"FAILURE_THRESHOLD"`
	PortalTimeout     time.Duration `yaml:"portal_timeout" envconfig:"PORTAL_TIMEOUT"`
	DisconnectGrace   time.Duration `yaml:"disconnect_grace" envconfig:"DISCONNECT_GRACE"`
	RestartDelay      time.Duration `yaml:"restart_delay" envconfig:"RESTART_DELAY"`
	DefaultHostname   string        `yaml:"default_hostname" envconfig:"DEFAULT_HOSTNAME"`
	APPrefix          string        `yaml:"ap_prefix" envconfig:"AP_PREFIX"`
	APPassword        string        `yaml:"ap_password" envconfig:"AP_PASSWORD"`
}

// SimSettings configure the simulated radio.
type SimSettings struct {
	HardwareAddr     string          `yaml:"mac" envconfig:"MAC"`
	Address          string          `yaml:"address" envconfig:"ADDRESS"`
	AssociationDelay time.Duration   `yaml:"association_delay" envconfig:"ASSOCIATION_DELAY"`
	ScanDuration     time.Duration   `yaml:"scan_duration" envconfig:"SCAN_DURATION"`
	Networks         []radio.Network `yaml:"networks" ignored:"true"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	cc := connection.DefaultConfig()
	sc := radio.DefaultSimConfig()
	return Config{
		State:        "/var/lib/wifimgr/wifi.json",
		Bootstrap:    "/boot/wifimgr.json",
		Listen:       ":80",
		DNSListen:    ":53",
		APAddress:    "192.168.4.1",
		LogLevel:     "info",
		LogFormat:    "text",
		TickInterval: 250 * time.Millisecond,
		Radio:        "sim",
		Connection: ConnectionSettings{
			AttemptTimeout:    cc.AttemptTimeout,
			FirstAttemptDelay: cc.FirstAttemptDelay,
			RetryInterval:     cc.RetryInterval,
			RetryMultiplier:   cc.RetryMultiplier,
			RetryMax:          cc.RetryMax,
			RetryJitter:       cc.RetryJitter,
			FailureThreshold:  cc.FailureThreshold,
			PortalTimeout:     cc.PortalTimeout,
			DisconnectGrace:   cc.DisconnectGrace,
			RestartDelay:      cc.RestartDelay,
			DefaultHostname:   cc.DefaultHostname,
			APPrefix:          cc.APPrefix,
			APPassword:        cc.APPassword,
		},
		Sim: SimSettings{
			HardwareAddr:     sc.HardwareAddr.String(),
			Address:          sc.Address.String(),
			AssociationDelay: sc.AssociationDelay,
			ScanDuration:     sc.ScanDuration,
		},
	}
}

// flagValues collects command-line flags. Only flags actually given
// override the lower layers.
type flagValues struct {
	config      string
	state       string
	bootstrap   string
	listen      string
	dnsListen   string
	apIP        string
	logLevel    string
	logFormat   string
	trace       string
	statusFile  string
	interactive bool
	version     bool
}

// errVersionRequested is returned by loadConfig for -version.
var errVersionRequested = errors.New("version requested")

// loadConfig builds the configuration from args and the environment.
func loadConfig(args []string, stderr io.Writer) (Config, error) {
	defaults := DefaultConfig()

	var fv flagValues
	fs := flag.NewFlagSet("wifimgr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&fv.config, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&fv.state, "state", defaults.State, "Credential document path")
	fs.StringVar(&fv.bootstrap, "bootstrap", defaults.Bootstrap, "Bootstrap document read once at startup")
	fs.StringVar(&fv.listen, "listen", defaults.Listen, "Portal HTTP listen address")
	fs.StringVar(&fv.dnsListen, "dns-listen", defaults.DNSListen, "Captive DNS listen address")
	fs.StringVar(&fv.apIP, "ap-ip", defaults.APAddress, "Access point address returned by captive DNS")
	fs.StringVar(&fv.logLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&fv.logFormat, "log-format", defaults.LogFormat, "Log format: text, json")
	fs.StringVar(&fv.trace, "trace", "", "Trace file (.wlog)")
	fs.StringVar(&fv.statusFile, "status-file", "", "File receiving the status code")
	fs.BoolVar(&fv.interactive, "interactive", false, "Start the interactive console")
	fs.BoolVar(&fv.version, "version", false, "Print the version and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fv.version {
		return Config{}, errVersionRequested
	}

	cfg := defaults
	if fv.config != "" {
		if err := loadConfigFile(fv.config, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "state":
			cfg.State = fv.state
		case "bootstrap":
			cfg.Bootstrap = fv.bootstrap
		case "listen":
			cfg.Listen = fv.listen
		case "dns-listen":
			cfg.DNSListen = fv.dnsListen
		case "ap-ip":
			cfg.APAddress = fv.apIP
		case "log-level":
			cfg.LogLevel = fv.logLevel
		case "log-format":
			cfg.LogFormat = fv.logFormat
		case "trace":
			cfg.Trace = fv.trace
		case "status-file":
			cfg.StatusFile = fv.statusFile
		case "interactive":
			cfg.Interactive = fv.interactive
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the daemon settings. Connection settings are checked by
// connection.Config.Validate.
func (c Config) Validate() error {
	switch {
	case c.State == "":
		return errors.New("state path is required")
	case c.Listen == "":
		return errors.New("listen address is required")
	case c.TickInterval <= 0:
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	case c.Radio != "sim":
		return fmt.Errorf("unknown radio driver %q", c.Radio)
	}

	if ip := net.ParseIP(c.APAddress); ip == nil || ip.To4() == nil {
		return fmt.Errorf("ap_ip %q is not an IPv4 address", c.APAddress)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if _, err := c.SimConfig(); err != nil {
		return err
	}
	return c.ConnectionConfig("").Validate()
}

// ConnectionConfig returns the connection manager configuration.
func (c Config) ConnectionConfig(bootID string) connection.Config {
	cc := connection.DefaultConfig()
	s := c.Connection
	cc.AttemptTimeout = s.AttemptTimeout
	cc.FirstAttemptDelay = s.FirstAttemptDelay
	cc.RetryInterval = s.RetryInterval
	cc.RetryMultiplier = s.RetryMultiplier
	cc.RetryMax = s.RetryMax
	cc.RetryJitter = s.RetryJitter
	cc.FailureThreshold = s.FailureThreshold
	cc.PortalTimeout = s.PortalTimeout
	cc.DisconnectGrace = s.DisconnectGrace
	cc.RestartDelay = s.RestartDelay
	cc.DefaultHostname = s.DefaultHostname
	cc.APPrefix = s.APPrefix
	cc.APPassword = s.APPassword
	cc.BootID = bootID
	return cc
}

// SimConfig returns the simulated radio configuration.
func (c Config) SimConfig() (radio.SimConfig, error) {
	sc := radio.DefaultSimConfig()

	if c.Sim.HardwareAddr != "" {
		hw, err := net.ParseMAC(c.Sim.HardwareAddr)
		if err != nil {
			return radio.SimConfig{}, fmt.Errorf("sim mac: %w", err)
		}
		sc.HardwareAddr = hw
	}
	if c.Sim.Address != "" {
		ip := net.ParseIP(c.Sim.Address)
		if ip == nil {
			return radio.SimConfig{}, fmt.Errorf("sim address %q is not an IP address", c.Sim.Address)
		}
		sc.Address = ip
	}
	if c.Sim.AssociationDelay > 0 {
		sc.AssociationDelay = c.Sim.AssociationDelay
	}
	if c.Sim.ScanDuration > 0 {
		sc.ScanDuration = c.Sim.ScanDuration
	}
	for _, n := range c.Sim.Networks {
		if n.SSID == "" {
			return radio.SimConfig{}, errors.New("sim network without ssid")
		}
		if err := radio.ValidatePassphrase(n.Password); err != nil {
			return radio.SimConfig{}, fmt.Errorf("sim network %q: %w", n.SSID, err)
		}
	}
	sc.Networks = append([]radio.Network(nil), c.Sim.Networks...)
	return sc, nil
}
