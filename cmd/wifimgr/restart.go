package main

import (
	"context"
	"log/slog"
	"os"
	"syscall"
	"time"
)

// ShutdownTimeout bounds the graceful shutdown before a restart or exit.
const ShutdownTimeout = 3 * time.Second

// execRestarter restarts the daemon by shutting its services down and
// re-executing its own binary with the original arguments.
type execRestarter struct {
	logger *slog.Logger

	// shutdown stops the HTTP portal and closes files.
	shutdown func(ctx context.Context)

	// exec replaces the process image. syscall.Exec by default.
	exec func(argv0 string, argv []string, envv []string) error

	// exit is called when exec fails.
	exit func(code int)

	executable func() (string, error)
	args       []string
}

func newExecRestarter(logger *slog.Logger, shutdown func(ctx context.Context)) *execRestarter {
	return &execRestarter{
		logger:     logger,
		shutdown:   shutdown,
		exec:       syscall.Exec,
		exit:       os.Exit,
		executable: os.Executable,
		args:       os.Args,
	}
}

// Restart implements connection.Restarter. It does not return on success.
func (r *execRestarter) Restart() {
	r.logger.Info("restarting")

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	r.shutdown(ctx)
	cancel()

	path, err := r.executable()
	if err != nil {
		r.logger.Error("restart: locate executable", "error", err)
		r.exit(1)
		return
	}

	if err := r.exec(path, r.args, os.Environ()); err != nil {
		// Exit non-zero so a supervisor starts us again.
		r.logger.Error("restart: exec failed", "path", path, "error", err)
		r.exit(1)
	}
}
