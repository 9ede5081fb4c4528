// Package commands implements the wifimgr-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sandbot-io/wifimgr/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	BootID   string
	Category *log.Category
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [boot:id] CATEGORY MODE failures=N
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	bootID := shortenID(event.BootID)

	mode := event.Mode
	if mode == "" {
		mode = "-"
	}

	fmt.Fprintf(w, "%s [boot:%s] %-10s %-12s failures=%d\n", ts, bootID, event.Category.String(), mode, event.Failures)

	// Type-specific details
	switch {
	case event.Transition != nil:
		formatTransitionDetails(w, event.Transition)
	case event.Attempt != nil:
		formatAttemptDetails(w, event.Attempt)
	case event.Link != nil:
		formatLinkDetails(w, event.Link)
	case event.Credential != nil:
		formatCredentialDetails(w, event.Credential)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of an ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatTransitionDetails(w io.Writer, t *log.TransitionEvent) {
	fmt.Fprintf(w, "  %s -> %s\n", t.From, t.To)
	if t.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", t.Reason)
	}
}

func formatAttemptDetails(w io.Writer, a *log.AttemptEvent) {
	fmt.Fprintf(w, "  Attempt %d to %q: %s\n", a.Number, a.SSID, a.Outcome.String())
	if a.Elapsed > 0 {
		fmt.Fprintf(w, "  Elapsed: %s\n", formatDuration(a.Elapsed))
	}
}

func formatLinkDetails(w io.Writer, l *log.LinkEvent) {
	fmt.Fprintf(w, "  Link: %s\n", l.Kind.String())
	if l.Address != "" {
		fmt.Fprintf(w, "  Address: %s\n", l.Address)
	}
	if l.Kind == log.LinkDisconnected {
		counted := "not counted"
		if l.Counted {
			counted = "counted"
		}
		fmt.Fprintf(w, "  Reason: %s (%d), %s, %s\n", l.Reason, l.ReasonCode, l.Class, counted)
	}
}

func formatCredentialDetails(w io.Writer, c *log.CredentialEvent) {
	fmt.Fprintf(w, "  Action: %s\n", c.Action.String())
	if c.SSID != "" {
		fmt.Fprintf(w, "  SSID: %s\n", c.SSID)
	}
	if c.Hostname != "" {
		fmt.Fprintf(w, "  Hostname: %s\n", c.Hostname)
	}
	if c.RestartRequested {
		fmt.Fprintln(w, "  Restart requested")
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Component: %s\n", err.Component)
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(s)
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be %s)", s, strings.Join(categoryNames(), ", "))
	}
	return c, nil
}

func categoryNames() []string {
	names := make([]string, 0, len(allCategories))
	for _, c := range allCategories {
		names = append(names, strings.ToLower(c.String()))
	}
	return names
}

var allCategories = []log.Category{
	log.CategoryTransition,
	log.CategoryAttempt,
	log.CategoryLink,
	log.CategoryCredential,
	log.CategoryError,
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		BootID:   filter.BootID,
		Category: filter.Category,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}
