package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandbot-io/wifimgr/pkg/connection"
	"github.com/sandbot-io/wifimgr/pkg/radio"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wifimgr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, ":80", cfg.Listen)
	assert.Equal(t, ":53", cfg.DNSListen)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)

	cc := cfg.ConnectionConfig("boot-1")
	assert.Equal(t, connection.DefaultAttemptTimeout, cc.AttemptTimeout)
	assert.Equal(t, connection.DefaultFailureThreshold, cc.FailureThreshold)
	assert.Equal(t, "boot-1", cc.BootID)
	assert.NoError(t, cc.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
listen: ":8080"
state: /tmp/wifi.json
tick_interval: 100ms
connection:
  attempt_timeout: 10s
  failure_threshold: 5
  default_hostname: bot
sim:
  mac: "24:6f:28:a1:b2:c3"
  association_delay: 200ms
  networks:
    - ssid: home
      password: hunter22
      rssi: -40
    - ssid: hidden-net
      hidden: true
`)

	cfg, err := loadConfig([]string{"-config", path}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "/tmp/wifi.json", cfg.State)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 10*time.Second, cfg.Connection.AttemptTimeout)
	assert.Equal(t, 5, cfg.Connection.FailureThreshold)
	// Unset keys keep their defaults
	assert.Equal(t, connection.DefaultRetryInterval, cfg.Connection.RetryInterval)
	assert.Equal(t, ":53", cfg.DNSListen)

	sc, err := cfg.SimConfig()
	require.NoError(t, err)
	assert.Equal(t, "24:6f:28:a1:b2:c3", sc.HardwareAddr.String())
	assert.Equal(t, 200*time.Millisecond, sc.AssociationDelay)
	assert.Equal(t, []radio.Network{
		{SSID: "home", Password: "hunter22", RSSI: -40},
		{SSID: "hidden-net", Hidden: true},
	}, sc.Networks)
}

func TestLoadConfigFileErrors(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := loadConfig([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		path := writeConfigFile(t, "listne: \":8080\"\n")
		_, err := loadConfig([]string{"-config", path}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("BadDuration", func(t *testing.T) {
		path := writeConfigFile(t, "tick_interval: soon\n")
		_, err := loadConfig([]string{"-config", path}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		path := writeConfigFile(t, "")
		cfg, err := loadConfig([]string{"-config", path}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfigFile(t, `
listen: ":8080"
dns_listen: ":5353"
log_level: warn
connection:
  retry_interval: 2m
`)

	t.Setenv("WIFIMGR_LISTEN", ":9090")
	t.Setenv("WIFIMGR_LOG_LEVEL", "error")
	t.Setenv("WIFIMGR_CONNECTION_RETRY_INTERVAL", "90s")
	t.Setenv("WIFIMGR_CONNECTION_FAILURE_THRESHOLD", "4")

	cfg, err := loadConfig([]string{"-config", path, "-log-level", "debug"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen, "env over file")
	assert.Equal(t, ":5353", cfg.DNSListen, "file over default")
	assert.Equal(t, "debug", cfg.LogLevel, "flag over env")
	assert.Equal(t, 90*time.Second, cfg.Connection.RetryInterval)
	assert.Equal(t, 4, cfg.Connection.FailureThreshold)
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, err := loadConfig([]string{
		"-state", "/data/wifi.json",
		"-bootstrap", "",
		"-listen", "127.0.0.1:8080",
		"-dns-listen", "127.0.0.1:5353",
		"-ap-ip", "10.0.0.1",
		"-log-format", "json",
		"-trace", "/tmp/boot.wlog",
		"-status-file", "/run/wifimgr.status",
		"-interactive",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "/data/wifi.json", cfg.State)
	assert.Empty(t, cfg.Bootstrap, "explicit empty flag disables bootstrap")
	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "127.0.0.1:5353", cfg.DNSListen)
	assert.Equal(t, "10.0.0.1", cfg.APAddress)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/boot.wlog", cfg.Trace)
	assert.Equal(t, "/run/wifimgr.status", cfg.StatusFile)
	assert.True(t, cfg.Interactive)
}

func TestLoadConfigUnknownFlag(t *testing.T) {
	_, err := loadConfig([]string{"-frobnicate"}, io.Discard)
	assert.Error(t, err)
}

func TestLoadConfigVersion(t *testing.T) {
	_, err := loadConfig([]string{"-version", "-listen", ":8080"}, io.Discard)
	assert.ErrorIs(t, err, errVersionRequested)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"EmptyState", func(c *Config) { c.State = "" }},
		{"EmptyListen", func(c *Config) { c.Listen = "" }},
		{"ZeroTick", func(c *Config) { c.TickInterval = 0 }},
		{"UnknownRadio", func(c *Config) { c.Radio = "esp32" }},
		{"IPv6AccessPoint", func(c *Config) { c.APAddress = "fe80::1" }},
		{"BadAccessPoint", func(c *Config) { c.APAddress = "portal" }},
		{"BadLevel", func(c *Config) { c.LogLevel = "loud" }},
		{"BadFormat", func(c *Config) { c.LogFormat = "xml" }},
		{"BadMAC", func(c *Config) { c.Sim.HardwareAddr = "nope" }},
		{"BadSimAddress", func(c *Config) { c.Sim.Address = "nope" }},
		{"ZeroThreshold", func(c *Config) { c.Connection.FailureThreshold = 0 }},
		{"ShortAPPassword", func(c *Config) { c.Connection.APPassword = "short" }},
		{"ShortSimPassphrase", func(c *Config) { c.Sim.Networks = []radio.Network{{SSID: "home", Password: "pw"}} }},
		{"SimNetworkNoSSID", func(c *Config) { c.Sim.Networks = []radio.Network{{Password: "hunter22"}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	t.Run("Defaults", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})
}

func TestListenPort(t *testing.T) {
	assert.Equal(t, 8080, listenPort(":8080"))
	assert.Equal(t, 80, listenPort("127.0.0.1:80"))
	assert.Equal(t, 80, listenPort("no-port"))
	assert.Equal(t, 80, listenPort(":http"))
}
