package wifimgr_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandbot-io/wifimgr/pkg/captive"
	"github.com/sandbot-io/wifimgr/pkg/connection"
	"github.com/sandbot-io/wifimgr/pkg/log"
	"github.com/sandbot-io/wifimgr/pkg/persistence"
	"github.com/sandbot-io/wifimgr/pkg/portal"
	"github.com/sandbot-io/wifimgr/pkg/radio"
)

type recordingStatus struct {
	mu    sync.Mutex
	codes []connection.StatusCode
}

func (r *recordingStatus) SetStatus(code connection.StatusCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = append(r.codes, code)
}

func (r *recordingStatus) last() (connection.StatusCode, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.codes) == 0 {
		return 0, false
	}
	return r.codes[len(r.codes)-1], true
}

type recordingNames struct {
	mu          sync.Mutex
	names       []string
	withdrawals int
}

func (r *recordingNames) Register(hostname string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, hostname)
	return nil
}

func (r *recordingNames) Withdraw() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.withdrawals++
	return nil
}

func (r *recordingNames) withdrawn() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.withdrawals
}

func (r *recordingNames) registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

type chanRestarter chan struct{}

func (c chanRestarter) Restart() {
	select {
	case c <- struct{}{}:
	default:
	}
}

type stack struct {
	sim       *radio.Sim
	store     *persistence.CredentialFileStore
	gateway   *captive.Server
	manager   *connection.Manager
	web       *httptest.Server
	status    *recordingStatus
	names     *recordingNames
	restarts  chanRestarter
	tracePath string
}

func startStack(t *testing.T, networks ...radio.Network) *stack {
	t.Helper()

	dir := t.TempDir()
	s := &stack{
		store:     persistence.NewCredentialFileStore(filepath.Join(dir, "wifi.json")),
		status:    &recordingStatus{},
		names:     &recordingNames{},
		restarts:  make(chanRestarter, 1),
		tracePath: filepath.Join(dir, "trace.cbor"),
	}

	simCfg := radio.DefaultSimConfig()
	simCfg.Networks = networks
	simCfg.AssociationDelay = 20 * time.Millisecond
	simCfg.ScanDuration = 20 * time.Millisecond
	s.sim = radio.NewSim(simCfg)

	dnsCfg := captive.DefaultConfig()
	dnsCfg.Addr = "127.0.0.1:0"
	var err error
	s.gateway, err = captive.NewServer(dnsCfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.gateway.Stop() })

	trace, err := log.NewFileLogger(s.tracePath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = trace.Close() })

	cfg := connection.DefaultConfig()
	cfg.FirstAttemptDelay = 0
	cfg.AttemptTimeout = 500 * time.Millisecond
	cfg.RetryInterval = 500 * time.Millisecond
	cfg.RetryMax = cfg.RetryInterval
	cfg.RestartDelay = 50 * time.Millisecond
	cfg.BootID = "integration"
	cfg.TraceLogger = trace

	s.manager, err = connection.NewManager(cfg, connection.Deps{
		Radio:     s.sim,
		Store:     s.store,
		Gateway:   s.gateway,
		Status:    s.status,
		Names:     s.names,
		Restarter: s.restarts,
	})
	require.NoError(t, err)
	s.sim.Subscribe(s.manager.OnEvent)

	srv, err := portal.NewServer(portal.DefaultConfig(), s.manager, s.sim)
	require.NoError(t, err)
	s.web = httptest.NewServer(srv.Handler())
	t.Cleanup(s.web.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.manager.Run(ctx, 10*time.Millisecond)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return s
}

func (s *stack) waitMode(t *testing.T, want connection.Mode) {
	t.Helper()
	require.Eventually(t, func() bool {
		return s.manager.Mode() == want
	}, 5*time.Second, 10*time.Millisecond, "mode never reached %s (now %s)", want, s.manager.Mode())
}

func (s *stack) get(t *testing.T, path string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(s.web.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestProvisioningRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	s := startStack(t, radio.Network{SSID: "home", Password: "hunter22", RSSI: -48})

	// Nothing stored: straight to the portal.
	s.waitMode(t, connection.ModePortal)
	assert.Equal(t, "sandBot-000001", s.sim.AccessPoint())
	assert.True(t, s.gateway.Serving())
	code, ok := s.status.last()
	require.True(t, ok)
	assert.Equal(t, connection.StatusPortal, code)

	// Any name resolves to the access point.
	msg := new(dns.Msg)
	msg.SetQuestion("connectivitycheck.gstatic.com.", dns.TypeA)
	reply, _, err := new(dns.Client).Exchange(msg, s.gateway.Addr().String())
	require.NoError(t, err)
	require.Len(t, reply.Answer, 1)
	a, ok := reply.Answer[0].(*dns.A)
	require.True(t, ok)
	assert.True(t, a.A.Equal(captive.DefaultAccessPointIP))

	// Scan from the setup page.
	status, _ := s.get(t, "/wifiscan?start=1")
	require.Equal(t, http.StatusOK, status)
	var scan portal.ScanResponse
	require.Eventually(t, func() bool {
		_, body := s.get(t, "/wifiscan")
		scan = portal.ScanResponse{}
		return json.Unmarshal(body, &scan) == nil && !scan.Scanning && len(scan.Networks) > 0
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "home", scan.Networks[0].SSID)

	// Submit credentials.
	status, body := s.get(t, "/w/home/hunter22/sandbot-lab")
	require.Equal(t, http.StatusOK, status, string(body))

	select {
	case <-s.restarts:
	case <-time.After(5 * time.Second):
		t.Fatal("restart was not requested")
	}

	stored, err := s.store.Load()
	require.NoError(t, err)
	assert.Equal(t, persistence.Credentials{SSID: "home", Password: "hunter22", Hostname: "sandbot-lab"}, stored)

	s.waitMode(t, connection.ModeConnected)
	assert.False(t, s.gateway.Serving())
	assert.Contains(t, s.names.registered(), "sandbot-lab")
	code, _ = s.status.last()
	assert.Equal(t, connection.StatusConnected, code)

	status, body = s.get(t, "/status")
	require.Equal(t, http.StatusOK, status)
	var st portal.StatusResponse
	require.NoError(t, json.Unmarshal(body, &st))
	assert.True(t, st.Connected)
	assert.Equal(t, "home", st.SSID)
	assert.Equal(t, "sandbot-lab", st.Hostname)
}

func TestPasswordChangeFallsBackToPortal(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	s := startStack(t, radio.Network{SSID: "home", Password: "hunter22"})
	require.NoError(t, s.manager.SetCredentials("home", "hunter22", "", false))
	s.waitMode(t, connection.ModeConnected)

	// The access point changes its passphrase and kicks the station.
	s.sim.SetNetwork(radio.Network{SSID: "home", Password: "changed-passphrase"})
	s.sim.Drop(connection.ReasonAuthFailed)

	s.waitMode(t, connection.ModePortal)
	assert.Equal(t, 0, s.manager.Failures())
	assert.True(t, s.gateway.Serving())
	assert.Positive(t, s.names.withdrawn(), "hostname withdrawn on portal entry")

	// Stored credentials survive the fallback.
	stored, err := s.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "home", stored.SSID)

	// The trace records the counted failures that led to the portal.
	require.Eventually(t, func() bool {
		return countedAuthFailures(t, s.tracePath) >= connection.DefaultFailureThreshold
	}, 5*time.Second, 20*time.Millisecond)
}

func TestTransientDropReconnects(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	s := startStack(t, radio.Network{SSID: "home", Password: "hunter22"})
	require.NoError(t, s.manager.SetCredentials("home", "hunter22", "", false))
	s.waitMode(t, connection.ModeConnected)

	for range 5 {
		s.sim.Drop(connection.ReasonConnectionLost)
		s.waitMode(t, connection.ModeConnected)
	}
	assert.Equal(t, 0, s.manager.Failures())
	assert.Empty(t, s.sim.AccessPoint())
}

func countedAuthFailures(t *testing.T, path string) int {
	t.Helper()

	category := log.CategoryLink
	r, err := log.NewFilteredReader(path, log.Filter{BootID: "integration", Category: &category})
	require.NoError(t, err)
	defer r.Close()

	n := 0
	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			return n
		}
		require.NoError(t, err)
		if event.Link.Counted && event.Link.ReasonCode == int(connection.ReasonAuthFailed) {
			n++
		}
	}
}
