package portal

import (
	"github.com/sandbot-io/wifimgr/pkg/connection"
	"github.com/sandbot-io/wifimgr/pkg/radio"
)

// Provisioner accepts credentials and reports connection state.
// *connection.Manager implements it.
type Provisioner interface {
	SetCredentials(ssid, password, hostname string, requestRestart bool) error
	ClearCredentials() error
	Status() connection.Status
}

// Scanner lists networks in range. *radio.Sim implements it.
type Scanner interface {
	// StartScan begins a scan; a scan already running is left alone.
	StartScan() error

	// ScanResults returns the last completed scan and whether a scan is
	// still running.
	ScanResults() ([]radio.ScanResult, bool)
}

var (
	_ Provisioner = (*connection.Manager)(nil)
	_ Scanner     = (*radio.Sim)(nil)
)
