package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sandbot-io/wifimgr/pkg/log"
)

// RunExport exports the log file to the specified format. An empty output
// writes to stdout.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// jsonEvent is the JSON form of an event with enums spelled out.
type jsonEvent struct {
	Timestamp string `json:"timestamp"`
	BootID    string `json:"bootId"`
	Category  string `json:"category"`
	Mode      string `json:"mode,omitempty"`
	Failures  int    `json:"failures"`
	Type      string `json:"type"`
	Detail    any    `json:"detail,omitempty"`
}

func toJSONEvent(event log.Event) jsonEvent {
	je := jsonEvent{
		Timestamp: event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		BootID:    event.BootID,
		Category:  event.Category.String(),
		Mode:      event.Mode,
		Failures:  event.Failures,
		Type:      eventType(event),
	}

	switch {
	case event.Transition != nil:
		je.Detail = map[string]any{
			"from":   event.Transition.From,
			"to":     event.Transition.To,
			"reason": event.Transition.Reason,
		}
	case event.Attempt != nil:
		je.Detail = map[string]any{
			"ssid":      event.Attempt.SSID,
			"number":    event.Attempt.Number,
			"outcome":   event.Attempt.Outcome.String(),
			"elapsedMs": event.Attempt.Elapsed.Milliseconds(),
		}
	case event.Link != nil:
		je.Detail = map[string]any{
			"kind":       event.Link.Kind.String(),
			"address":    event.Link.Address,
			"reason":     event.Link.Reason,
			"reasonCode": event.Link.ReasonCode,
			"class":      event.Link.Class,
			"counted":    event.Link.Counted,
		}
	case event.Credential != nil:
		je.Detail = map[string]any{
			"action":   event.Credential.Action.String(),
			"ssid":     event.Credential.SSID,
			"hostname": event.Credential.Hostname,
			"restart":  event.Credential.RestartRequested,
		}
	case event.Error != nil:
		je.Detail = map[string]any{
			"component": event.Error.Component,
			"message":   event.Error.Message,
			"context":   event.Error.Context,
		}
	}
	return je
}

// eventType returns a short label for the event payload.
func eventType(event log.Event) string {
	switch {
	case event.Transition != nil:
		return "transition"
	case event.Attempt != nil:
		return "attempt"
	case event.Link != nil:
		return "link"
	case event.Credential != nil:
		return "credential"
	case event.Error != nil:
		return "error"
	default:
		return "unknown"
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toJSONEvent(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	// Write header
	header := []string{"timestamp", "boot_id", "category", "mode", "failures", "type", "summary"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.BootID,
			event.Category.String(),
			event.Mode,
			strconv.Itoa(event.Failures),
			eventType(event),
			summary(event),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return cw.Error()
}

// summary returns a one-line description of the event payload.
func summary(event log.Event) string {
	switch {
	case event.Transition != nil:
		return fmt.Sprintf("%s -> %s", event.Transition.From, event.Transition.To)
	case event.Attempt != nil:
		return fmt.Sprintf("#%d %s %s", event.Attempt.Number, event.Attempt.SSID, event.Attempt.Outcome)
	case event.Link != nil:
		if event.Link.Kind == log.LinkGotAddress {
			return fmt.Sprintf("%s %s", event.Link.Kind, event.Link.Address)
		}
		return fmt.Sprintf("%s %s", event.Link.Kind, event.Link.Reason)
	case event.Credential != nil:
		return fmt.Sprintf("%s %s", event.Credential.Action, event.Credential.SSID)
	case event.Error != nil:
		return fmt.Sprintf("%s: %s", event.Error.Component, event.Error.Message)
	default:
		return ""
	}
}
