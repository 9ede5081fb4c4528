package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/sandbot-io/wifimgr/pkg/connection"
)

// statusReporter publishes status codes to the log and, if configured,
// to a file holding the decimal code for other processes to poll.
type statusReporter struct {
	logger *slog.Logger
	path   string

	mu   sync.Mutex
	last connection.StatusCode
	set  bool
}

func newStatusReporter(logger *slog.Logger, path string) *statusReporter {
	return &statusReporter{logger: logger, path: path}
}

// SetStatus implements connection.StatusSink.
func (r *statusReporter) SetStatus(code connection.StatusCode) {
	r.mu.Lock()
	changed := !r.set || r.last != code
	r.last, r.set = code, true
	r.mu.Unlock()

	if changed {
		r.logger.Info("status", "code", int(code), "status", code.String())
	}
	if r.path == "" {
		return
	}
	if err := writeFileAtomic(r.path, []byte(fmt.Sprintf("%d\n", code))); err != nil {
		r.logger.Warn("status file write failed", "path", r.path, "error", err)
	}
}

// Last returns the last published code and whether one was published.
func (r *statusReporter) Last() (connection.StatusCode, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.set
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".status-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

var _ connection.StatusSink = (*statusReporter)(nil)
