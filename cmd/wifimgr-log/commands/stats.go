package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sandbot-io/wifimgr/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Boots            map[string]*BootStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// BootStats holds statistics for a single process run.
type BootStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int

	Attempts           int
	Timeouts           int
	CountedFailures    int
	IgnoredDisconnects int
	PortalEntries      int
	Connects           int

	// LastMode is the mode after the last event of the boot.
	LastMode string
}

// CollectStats reads the log file and aggregates its events.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Boots:            make(map[string]*BootStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track boot stats
		boot, ok := stats.Boots[event.BootID]
		if !ok {
			boot = &BootStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Boots[event.BootID] = boot
		}
		boot.Events++
		if event.Timestamp.After(boot.LastSeen) {
			boot.LastSeen = event.Timestamp
		}
		if event.Mode != "" {
			boot.LastMode = event.Mode
		}

		switch {
		case event.Attempt != nil:
			switch event.Attempt.Outcome {
			case log.AttemptStarted:
				boot.Attempts++
			case log.AttemptTimedOut:
				boot.Timeouts++
			}
		case event.Link != nil:
			switch {
			case event.Link.Kind == log.LinkGotAddress:
				boot.Connects++
			case event.Link.Counted:
				boot.CountedFailures++
			default:
				boot.IgnoredDisconnects++
			}
		case event.Transition != nil:
			if event.Transition.To == "PORTAL" {
				boot.PortalEntries++
			}
		case event.Error != nil:
			stats.Errors++
		}
	}

	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== wifimgr Trace Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	// Total events
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	// Events by category
	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range allCategories {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Boots
	fmt.Fprintf(w, "Boots: %d\n", len(stats.Boots))
	if len(stats.Boots) > 0 {
		// Sort by first seen time
		type bootInfo struct {
			id    string
			stats *BootStats
		}
		boots := make([]bootInfo, 0, len(stats.Boots))
		for id, bs := range stats.Boots {
			boots = append(boots, bootInfo{id, bs})
		}
		sort.Slice(boots, func(i, j int) bool {
			return boots[i].stats.FirstSeen.Before(boots[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, b := range boots {
			duration := b.stats.LastSeen.Sub(b.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s, last mode %s\n",
				shortenID(b.id), b.stats.Events, duration, b.stats.LastMode)
			fmt.Fprintf(w, "           Attempts: %d (timeouts %d), connects %d\n",
				b.stats.Attempts, b.stats.Timeouts, b.stats.Connects)
			fmt.Fprintf(w, "           Disconnects: %d counted, %d ignored\n",
				b.stats.CountedFailures, b.stats.IgnoredDisconnects)
			if b.stats.PortalEntries > 0 {
				fmt.Fprintf(w, "           Portal entries: %d\n", b.stats.PortalEntries)
			}
		}
	}

	// Errors
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
