package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCollectStats(t *testing.T) {
	start := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := append(bootSequence("boot-a", start), bootSequence("boot-b", start.Add(time.Hour))...)
	path := createTestLogFile(t, events)

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if stats.TotalEvents != len(events) {
		t.Errorf("TotalEvents = %d, want %d", stats.TotalEvents, len(events))
	}
	if stats.Errors != 2 {
		t.Errorf("Errors = %d, want 2", stats.Errors)
	}
	if len(stats.Boots) != 2 {
		t.Fatalf("Boots = %d, want 2", len(stats.Boots))
	}
	if !stats.TimeRange.Start.Equal(start) {
		t.Errorf("TimeRange.Start = %v, want %v", stats.TimeRange.Start, start)
	}

	b := stats.Boots["boot-a"]
	if b.Events != len(events)/2 {
		t.Errorf("Events = %d, want %d", b.Events, len(events)/2)
	}
	if b.Attempts != 2 || b.Timeouts != 1 {
		t.Errorf("Attempts/Timeouts = %d/%d, want 2/1", b.Attempts, b.Timeouts)
	}
	if b.CountedFailures != 1 || b.IgnoredDisconnects != 1 {
		t.Errorf("Counted/Ignored = %d/%d, want 1/1", b.CountedFailures, b.IgnoredDisconnects)
	}
	if b.PortalEntries != 1 {
		t.Errorf("PortalEntries = %d, want 1", b.PortalEntries)
	}
	if b.LastMode != "DISCONNECTED" {
		t.Errorf("LastMode = %q, want DISCONNECTED", b.LastMode)
	}
	if got := b.LastSeen.Sub(b.FirstSeen); got != 120*time.Second {
		t.Errorf("duration = %v, want 2m", got)
	}
}

func TestRunStatsOutput(t *testing.T) {
	start := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, bootSequence("3f2a9c1e-6789", start))

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 9",
		"TRANSITION:",
		"ATTEMPT:",
		"LINK:",
		"CREDENTIAL:",
		"ERROR:",
		"Boots: 1",
		"[3f2a9c1e]",
		"Attempts: 2 (timeouts 1), connects 0",
		"Disconnects: 1 counted, 1 ignored",
		"Portal entries: 1",
		"Errors: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("expected zero events, got: %s", buf.String())
	}
	if strings.Contains(buf.String(), "Time Range") {
		t.Errorf("unexpected time range for empty file")
	}
}
