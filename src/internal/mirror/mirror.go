// FILE: framelog/src/internal/mirror/mirror.go
package mirror

import "framelog/src/internal/core"

// Mirror is a secondary, best-effort output channel fed in parallel with
// buffer insertion. Implementations must never panic back into the pipeline;
// the pipeline additionally guards the call, so a misbehaving mirror can
// degrade output but not availability.
type Mirror interface {
	// Emit forwards one accepted entry, routed by its severity.
	Emit(entry core.LogEntry)

	// Warnf is the self-monitoring bypass channel: it writes directly to
	// the mirror without traversing the pipeline, so the pipeline can
	// report on itself without recursive amplification.
	Warnf(format string, args ...any)
}

// Nop discards everything. Used when mirroring is structurally absent
// (tests, headless hosts).
type Nop struct{}

func (Nop) Emit(core.LogEntry) {}

func (Nop) Warnf(string, ...any) {}
