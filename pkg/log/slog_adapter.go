package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates an adapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("boot_id", event.BootID),
		slog.String("category", event.Category.String()),
	}
	if event.Mode != "" {
		attrs = append(attrs, slog.String("mode", event.Mode))
	}
	attrs = append(attrs, slog.Int("failures", event.Failures))

	switch {
	case event.Transition != nil:
		attrs = append(attrs,
			slog.String("from", event.Transition.From),
			slog.String("to", event.Transition.To),
		)
		if event.Transition.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Transition.Reason))
		}
	case event.Attempt != nil:
		attrs = append(attrs,
			slog.String("ssid", event.Attempt.SSID),
			slog.Int("attempt", event.Attempt.Number),
			slog.String("outcome", event.Attempt.Outcome.String()),
		)
		if event.Attempt.Elapsed > 0 {
			attrs = append(attrs, slog.Duration("elapsed", event.Attempt.Elapsed))
		}
	case event.Link != nil:
		attrs = append(attrs, slog.String("link", event.Link.Kind.String()))
		if event.Link.Address != "" {
			attrs = append(attrs, slog.String("address", event.Link.Address))
		}
		if event.Link.Kind == LinkDisconnected {
			attrs = append(attrs,
				slog.String("reason", event.Link.Reason),
				slog.Int("reason_code", event.Link.ReasonCode),
				slog.String("class", event.Link.Class),
				slog.Bool("counted", event.Link.Counted),
			)
		}
	case event.Credential != nil:
		attrs = append(attrs,
			slog.String("action", event.Credential.Action.String()),
			slog.String("ssid", event.Credential.SSID),
			slog.String("hostname", event.Credential.Hostname),
		)
		if event.Credential.RestartRequested {
			attrs = append(attrs, slog.Bool("restart", true))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("component", event.Error.Component),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "trace", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
