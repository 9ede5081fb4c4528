package portal

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sandbot-io/wifimgr/pkg/connection"
	"github.com/sandbot-io/wifimgr/pkg/radio"
	"github.com/sandbot-io/wifimgr/pkg/version"
)

// ScanResponse is the /wifiscan payload.
type ScanResponse struct {
	Scanning bool               `json:"scanning"`
	Networks []radio.ScanResult `json:"networks"`
	Error    string             `json:"error,omitempty"`
}

// StatusResponse is the /status payload.
type StatusResponse struct {
	Mode           string     `json:"mode"`
	Connected      bool       `json:"connected"`
	Portal         bool       `json:"portal"`
	Failures       int        `json:"failures"`
	SSID           string     `json:"ssid,omitempty"`
	Hostname       string     `json:"hostname"`
	PortalName     string     `json:"portalName,omitempty"`
	Link           string     `json:"link"`
	PortalSince    *time.Time `json:"portalSince,omitempty"`
	RestartPending bool       `json:"restartPending"`
	Version        string     `json:"version"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(indexPage)
}

func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.config.RedirectURL, http.StatusFound)
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if s.scanner == nil {
		writeJSON(w, http.StatusOK, ScanResponse{Networks: []radio.ScanResult{}, Error: "scanning not supported"})
		return
	}

	var resp ScanResponse
	if r.URL.Query().Get("start") == "1" {
		if err := s.scanner.StartScan(); err != nil {
			s.debugLog("scan start failed", "error", err)
			resp.Error = err.Error()
		}
	}

	networks, scanning := s.scanner.ScanResults()
	if networks == nil {
		networks = []radio.ScanResult{}
	}
	resp.Networks = networks
	resp.Scanning = scanning
	writeJSON(w, http.StatusOK, resp)
}

// handleJoin stores credentials taken from the path segments after /w/.
// Segments are split on the escaped path so an encoded "/" stays inside
// its segment.
func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.EscapedPath(), "/w/")
	parts := strings.Split(raw, "/")
	if len(parts) > 3 {
		http.Error(w, "too many path segments", http.StatusBadRequest)
		return
	}

	var fields [3]string
	for i, p := range parts {
		v, err := url.PathUnescape(p)
		if err != nil {
			http.Error(w, "malformed path segment", http.StatusBadRequest)
			return
		}
		fields[i] = v
	}
	ssid, password, hostname := fields[0], fields[1], fields[2]

	if ssid == "" {
		http.Error(w, "missing network name", http.StatusBadRequest)
		return
	}

	if err := s.prov.SetCredentials(ssid, password, hostname, true); err != nil {
		http.Error(w, "could not save credentials: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Saved. Restarting to join " + ssid + "...\n"))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.prov.Status()
	resp := StatusResponse{
		Mode:           st.Mode.String(),
		Connected:      st.Mode == connection.ModeConnected,
		Portal:         st.Mode == connection.ModePortal,
		Failures:       st.Failures,
		SSID:           st.SSID,
		Hostname:       st.Hostname,
		PortalName:     st.PortalName,
		Link:           st.Link.String(),
		RestartPending: st.RestartPending,
		Version:        version.Current,
	}
	if !st.PortalSince.IsZero() {
		since := st.PortalSince
		resp.PortalSince = &since
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.prov.ClearCredentials(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
