package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sandbot-io/wifimgr/pkg/log"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.wlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// bootSequence is a boot that fails to join twice, opens the portal and
// receives new credentials.
func bootSequence(bootID string, start time.Time) []log.Event {
	at := func(s int) time.Time { return start.Add(time.Duration(s) * time.Second) }
	return []log.Event{
		{Timestamp: at(0), BootID: bootID, Category: log.CategoryTransition, Mode: "CONNECTING",
			Transition: &log.TransitionEvent{From: "DISCONNECTED", To: "CONNECTING", Reason: "first attempt"}},
		{Timestamp: at(0), BootID: bootID, Category: log.CategoryAttempt, Mode: "CONNECTING",
			Attempt: &log.AttemptEvent{SSID: "home", Number: 1, Outcome: log.AttemptStarted}},
		{Timestamp: at(2), BootID: bootID, Category: log.CategoryLink, Mode: "DISCONNECTED", Failures: 1,
			Link: &log.LinkEvent{Kind: log.LinkDisconnected, Reason: "AUTH_FAILED", ReasonCode: 202, Class: "NEGOTIATION", Counted: true}},
		{Timestamp: at(3), BootID: bootID, Category: log.CategoryLink, Mode: "DISCONNECTED", Failures: 1,
			Link: &log.LinkEvent{Kind: log.LinkDisconnected, Reason: "CONNECTION_LOST", ReasonCode: 206, Class: "TRANSIENT"}},
		{Timestamp: at(60), BootID: bootID, Category: log.CategoryAttempt, Mode: "CONNECTING", Failures: 1,
			Attempt: &log.AttemptEvent{SSID: "home", Number: 2, Outcome: log.AttemptStarted}},
		{Timestamp: at(90), BootID: bootID, Category: log.CategoryAttempt, Mode: "DISCONNECTED", Failures: 2,
			Attempt: &log.AttemptEvent{SSID: "home", Number: 2, Outcome: log.AttemptTimedOut, Elapsed: 30 * time.Second}},
		{Timestamp: at(91), BootID: bootID, Category: log.CategoryTransition, Mode: "PORTAL", Failures: 2,
			Transition: &log.TransitionEvent{From: "DISCONNECTED", To: "PORTAL", Reason: "failure threshold"}},
		{Timestamp: at(95), BootID: bootID, Category: log.CategoryError, Mode: "PORTAL",
			Error: &log.ErrorEventData{Component: "gateway", Message: "bind: address in use", Context: "start"}},
		{Timestamp: at(120), BootID: bootID, Category: log.CategoryCredential, Mode: "DISCONNECTED",
			Credential: &log.CredentialEvent{Action: log.CredentialSet, SSID: "home2", Hostname: "sandbot", RestartRequested: true}},
	}
}
