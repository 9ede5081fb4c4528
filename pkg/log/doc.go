// Package log provides a structured trace of the connection lifecycle.
//
// The trace is separate from operational logging (slog). It records every
// mode transition, connection attempt, link event and credential change as a
// machine-readable Event so field failures can be reconstructed afterwards.
//
// # Basic Usage
//
//	// Development: trace to console via slog
//	cfg.Trace = log.NewSlogAdapter(slog.Default())
//
//	// Device: append to a binary trace file
//	cfg.Trace, _ = log.NewFileLogger("/var/lib/wifimgr/trace.wlog")
//
//	// Both
//	cfg.Trace = log.NewMultiLogger(console, file)
//
// # Event Categories
//
//   - TRANSITION: the connection mode changed
//   - ATTEMPT: a connection attempt started or timed out
//   - LINK: the radio reported an address or a disconnect
//   - CREDENTIAL: credentials were set, cleared or bootstrapped
//   - ERROR: a collaborator call failed
//
// Every event carries the boot ID of the process that produced it so traces
// appended across restarts can be told apart.
//
// # File Format
//
// Trace files are a sequence of CBOR-encoded events with the .wlog
// extension. The wifimgr-log command views, summarises and exports them.
package log
