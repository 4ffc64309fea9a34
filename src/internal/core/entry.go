// FILE: framelog/src/internal/core/entry.go
package core

import "time"

// DefaultSubsystem tags entries whose caller declared no origin.
const DefaultSubsystem = "unknown"

// SentinelCode substitutes for a missing or empty event code. The write
// path never rejects a call outright; the substitution is counted so tests
// can assert on caller misuse.
const SentinelCode = "UNSPECIFIED"

// LogEntry is a single structured record flowing through the pipeline.
// Entries are immutable once inserted into the ring buffer.
type LogEntry struct {
	Level     Level          `json:"level"`
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Subsystem string         `json:"subsystem"`
	Timestamp time.Time      `json:"timestamp"`
	Frame     uint64         `json:"frame"`
	Fields    map[string]any `json:"fields,omitempty"`
	Context   any            `json:"context,omitempty"`

	// Populated for error/fatal entries carrying a causal error value.
	ErrorMessage string `json:"errorMessage,omitempty"`
	Stack        string `json:"stack,omitempty"`

	// Assigned by the ring buffer on insert; strictly increasing for the
	// buffer's lifetime, including entries already evicted.
	Sequence uint64 `json:"sequence"`
}
