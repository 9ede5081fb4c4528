package portal_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandbot-io/wifimgr/pkg/connection"
	"github.com/sandbot-io/wifimgr/pkg/portal"
	"github.com/sandbot-io/wifimgr/pkg/portal/mocks"
	"github.com/sandbot-io/wifimgr/pkg/radio"
	"github.com/sandbot-io/wifimgr/pkg/version"
)

func newTestServer(t *testing.T) (*portal.Server, *mocks.MockProvisioner, *mocks.MockScanner) {
	t.Helper()
	prov := mocks.NewMockProvisioner(t)
	scanner := mocks.NewMockScanner(t)
	srv, err := portal.NewServer(portal.DefaultConfig(), prov, scanner)
	require.NoError(t, err)
	return srv, prov, scanner
}

func serve(srv *portal.Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestNewServerRequiresProvisioner(t *testing.T) {
	_, err := portal.NewServer(portal.DefaultConfig(), nil, nil)
	assert.ErrorIs(t, err, portal.ErrNoProvisioner)
}

func TestIndex(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := serve(srv, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "/wifiscan")
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		ssid     string
		password string
		hostname string
	}{
		{"SSIDOnly", "/w/home", "home", "", ""},
		{"SSIDAndPassword", "/w/home/hunter22", "home", "hunter22", ""},
		{"AllFields", "/w/home/hunter22/sandbot-lab", "home", "hunter22", "sandbot-lab"},
		{"Escaped", "/w/My%20Net/p%2Fw%3Fx/bot", "My Net", "p/w?x", "bot"},
		{"EmptyPassword", "/w/home//bot", "home", "", "bot"},
		{"Unicode", "/w/Caf%C3%A9", "Café", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, prov, _ := newTestServer(t)
			prov.EXPECT().SetCredentials(tt.ssid, tt.password, tt.hostname, true).Return(nil).Once()

			rec := serve(srv, http.MethodGet, tt.path)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.ssid)
		})
	}
}

func TestJoinRejected(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"EmptySSID", "/w/"},
		{"EmptySSIDWithPassword", "/w//secret"},
		{"TooManySegments", "/w/a/b/c/d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No SetCredentials expectation: the mock fails the test if called.
			srv, _, _ := newTestServer(t)

			rec := serve(srv, http.MethodGet, tt.path)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestJoinSaveError(t *testing.T) {
	srv, prov, _ := newTestServer(t)
	prov.EXPECT().SetCredentials("home", "pw", "", true).Return(errors.New("disk full")).Once()

	rec := serve(srv, http.MethodGet, "/w/home/pw")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "disk full")
}

func TestScan(t *testing.T) {
	t.Run("StartScan", func(t *testing.T) {
		srv, _, scanner := newTestServer(t)
		scanner.EXPECT().StartScan().Return(nil).Once()
		scanner.EXPECT().ScanResults().Return(nil, true).Once()

		rec := serve(srv, http.MethodGet, "/wifiscan?start=1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp portal.ScanResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Scanning)
		assert.NotNil(t, resp.Networks)
		assert.Empty(t, resp.Networks)
		assert.Empty(t, resp.Error)
	})

	t.Run("Results", func(t *testing.T) {
		srv, _, scanner := newTestServer(t)
		scanner.EXPECT().ScanResults().Return([]radio.ScanResult{
			{SSID: "home", RSSI: -40},
			{SSID: "cafe", RSSI: -70},
		}, false).Once()

		rec := serve(srv, http.MethodGet, "/wifiscan")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"scanning":false,"networks":[{"ssid":"home","rssi":-40},{"ssid":"cafe","rssi":-70}]}`,
			rec.Body.String())
	})

	t.Run("StartError", func(t *testing.T) {
		srv, _, scanner := newTestServer(t)
		scanner.EXPECT().StartScan().Return(radio.ErrAccessPointActive).Once()
		scanner.EXPECT().ScanResults().Return(nil, false).Once()

		rec := serve(srv, http.MethodGet, "/wifiscan?start=1")
		var resp portal.ScanResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, radio.ErrAccessPointActive.Error(), resp.Error)
	})

	t.Run("NoScanner", func(t *testing.T) {
		prov := mocks.NewMockProvisioner(t)
		srv, err := portal.NewServer(portal.DefaultConfig(), prov, nil)
		require.NoError(t, err)

		rec := serve(srv, http.MethodGet, "/wifiscan?start=1")
		var resp portal.ScanResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Error)
	})
}

func TestStatus(t *testing.T) {
	since := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Portal", func(t *testing.T) {
		srv, prov, _ := newTestServer(t)
		prov.EXPECT().Status().Return(connection.Status{
			Mode:        connection.ModePortal,
			Failures:    0,
			Hostname:    "sandbot",
			PortalName:  "sandBot-A1B2C3",
			Link:        connection.LinkAccessPoint,
			PortalSince: since,
		}).Once()

		rec := serve(srv, http.MethodGet, "/status")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp portal.StatusResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "PORTAL", resp.Mode)
		assert.True(t, resp.Portal)
		assert.False(t, resp.Connected)
		assert.Equal(t, "sandBot-A1B2C3", resp.PortalName)
		require.NotNil(t, resp.PortalSince)
		assert.True(t, since.Equal(*resp.PortalSince))
		assert.Equal(t, version.Current, resp.Version)
	})

	t.Run("Connected", func(t *testing.T) {
		srv, prov, _ := newTestServer(t)
		prov.EXPECT().Status().Return(connection.Status{
			Mode:     connection.ModeConnected,
			SSID:     "home",
			Hostname: "sandbot-lab",
			Link:     connection.LinkUp,
		}).Once()

		rec := serve(srv, http.MethodGet, "/status")
		var resp portal.StatusResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Connected)
		assert.False(t, resp.Portal)
		assert.Equal(t, "home", resp.SSID)
		assert.Nil(t, resp.PortalSince)
	})
}

func TestClearCredentials(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv, prov, _ := newTestServer(t)
		prov.EXPECT().ClearCredentials().Return(nil).Once()

		rec := serve(srv, http.MethodDelete, "/credentials")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Error", func(t *testing.T) {
		srv, prov, _ := newTestServer(t)
		prov.EXPECT().ClearCredentials().Return(errors.New("read-only")).Once()

		rec := serve(srv, http.MethodDelete, "/credentials")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "read-only")
	})

	t.Run("GetNotAllowed", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		rec := serve(srv, http.MethodGet, "/credentials")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestCaptiveRedirects(t *testing.T) {
	paths := []string{
		"/generate_204",
		"/hotspot-detect.html",
		"/connecttest.txt",
		"/ncsi.txt",
		"/some/unknown/page",
		"/w",
	}

	for _, p := range paths {
		t.Run(strings.TrimPrefix(p, "/"), func(t *testing.T) {
			srv, _, _ := newTestServer(t)

			rec := serve(srv, http.MethodGet, p)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
		})
	}

	t.Run("CustomTarget", func(t *testing.T) {
		prov := mocks.NewMockProvisioner(t)
		cfg := portal.DefaultConfig()
		cfg.RedirectURL = "http://192.168.4.1/"
		srv, err := portal.NewServer(cfg, prov, nil)
		require.NoError(t, err)

		rec := serve(srv, http.MethodGet, "/generate_204")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "http://192.168.4.1/", rec.Header().Get("Location"))
	})
}

func TestServerLifecycle(t *testing.T) {
	prov := mocks.NewMockProvisioner(t)
	prov.EXPECT().ClearCredentials().Return(nil).Once()

	cfg := portal.DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	srv, err := portal.NewServer(cfg, prov, nil)
	require.NoError(t, err)

	assert.Nil(t, srv.Addr())
	require.NoError(t, srv.Start())
	assert.ErrorIs(t, srv.Start(), portal.ErrAlreadyStarted)

	addr := srv.Addr()
	require.NotNil(t, addr)

	req, err := http.NewRequest(http.MethodDelete, "http://"+addr.String()+"/credentials", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.Nil(t, srv.Addr())
	assert.ErrorIs(t, srv.Shutdown(ctx), portal.ErrNotStarted)
}
