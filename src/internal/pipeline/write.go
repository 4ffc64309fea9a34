// FILE: framelog/src/internal/pipeline/write.go
package pipeline

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"framelog/src/internal/core"
)

// stats holds the pipeline's write-path counters. The fixed counters are
// atomics so the query surface reads them without taking the pipeline lock;
// the open-ended subsystem map carries its own lock.
type stats struct {
	totalLogged    atomic.Uint64
	byLevel        [5]atomic.Uint64
	throttled      atomic.Uint64
	sampledOut     atomic.Uint64
	droppedByLevel atomic.Uint64
	badCalls       atomic.Uint64

	subsystemMu sync.Mutex
	bySubsystem map[string]uint64
}

func (s *stats) countSubsystem(name string) {
	s.subsystemMu.Lock()
	if s.bySubsystem == nil {
		s.bySubsystem = make(map[string]uint64)
	}
	s.bySubsystem[name]++
	s.subsystemMu.Unlock()
}

func (s *stats) subsystemCounts() map[string]uint64 {
	s.subsystemMu.Lock()
	defer s.subsystemMu.Unlock()

	out := make(map[string]uint64, len(s.bySubsystem))
	for k, v := range s.bySubsystem {
		out[k] = v
	}
	return out
}

// Dev logs a development/trace event.
func (p *Pipeline) Dev(code string, data map[string]any) {
	p.write(core.LevelDev, code, data)
}

// Info logs an informational event.
func (p *Pipeline) Info(code string, data map[string]any) {
	p.write(core.LevelInfo, code, data)
}

// Warn logs a warning.
func (p *Pipeline) Warn(code string, data map[string]any) {
	p.write(core.LevelWarn, code, data)
}

// Error logs a host failure. Never sampled; exempt from frame throttling.
func (p *Pipeline) Error(code string, data map[string]any) {
	p.write(core.LevelError, code, data)
}

// Fatal logs a terminal host failure. Never sampled; exempt from frame
// throttling. The pipeline itself does not terminate the process.
func (p *Pipeline) Fatal(code string, data map[string]any) {
	p.write(core.LevelFatal, code, data)
}

// write runs the full synchronous pipeline. It never panics and never
// returns an error: this subsystem observes failures elsewhere and must stay
// available while the host is failing.
func (p *Pipeline) write(level core.Level, code string, data map[string]any) {
	start := time.Now()

	if code == "" {
		code = core.SentinelCode
		p.stats.badCalls.Add(1)
	}

	p.mu.Lock()

	// Level gate. Below-minimum calls are counted but have no other side
	// effects.
	if !core.ShouldLog(level, p.minLevel) {
		p.mu.Unlock()
		p.stats.droppedByLevel.Add(1)
		return
	}

	// Frame-throttle gate. Error and fatal entries are exempt: critical
	// events must never be silently dropped by a frame's exhausted budget.
	if level < core.LevelError &&
		p.frameThrottleMax > 0 && p.emittedThisFrame >= p.frameThrottleMax {
		p.mu.Unlock()
		p.stats.throttled.Add(1)
		return
	}

	// Sampling gate. One uniform draw per call for non-exempt levels.
	if !core.SamplingExempt(level) {
		if p.randFunc() >= p.samplingRates[level] {
			p.mu.Unlock()
			p.stats.sampledOut.Add(1)
			return
		}
	}

	entry := p.enrich(level, code, data)

	// Context injection: the only place a collaborator runs inside the
	// write path. Failure is confined here.
	if p.prov != nil {
		entry.Context = captureContext(p.prov.Snapshot)
	}

	p.ring.Add(entry)

	p.emittedThisFrame++
	mirrored := p.mirrorEnabled
	p.mu.Unlock()

	p.stats.totalLogged.Add(1)
	p.stats.byLevel[level].Add(1)
	p.stats.countSubsystem(entry.Subsystem)

	if mirrored {
		p.emitMirror(entry)
	}

	if elapsed := time.Since(start); elapsed > slowWriteThreshold {
		// Bypass the pipeline to avoid recursive self-logging.
		if p.slowWarnLimiter.Allow() {
			p.warnMirror("slow log write: %s (code=%s level=%s)",
				elapsed, entry.Code, level)
		}
	}
}

// enrich builds the entry: base fields first, then the caller's extension
// map with later-wins precedence. Caller must hold p.mu (frame id read).
func (p *Pipeline) enrich(level core.Level, code string, data map[string]any) core.LogEntry {
	entry := core.LogEntry{
		Level:     level,
		Code:      code,
		Message:   code,
		Subsystem: core.DefaultSubsystem,
		Timestamp: time.Now(),
		Frame:     p.currentFrame,
	}

	if len(data) == 0 {
		return entry
	}

	// Error detail extraction happens before the merge so the caller's map
	// can still override the dedicated fields explicitly.
	if level >= core.LevelError {
		switch v := data["error"].(type) {
		case error:
			entry.ErrorMessage = v.Error()
			entry.Stack = string(debug.Stack())
		case string:
			if v != "" {
				entry.ErrorMessage = v
				entry.Stack = string(debug.Stack())
			}
		}
	}

	fields := make(map[string]any, len(data))
	for k, v := range data {
		switch k {
		case "message":
			if s, ok := v.(string); ok && s != "" {
				entry.Message = s
				continue
			}
		case "subsystem":
			if s, ok := v.(string); ok && s != "" {
				entry.Subsystem = s
				continue
			}
		}
		fields[k] = v
	}
	if len(fields) > 0 {
		entry.Fields = fields
	}
	return entry
}

// captureContext invokes a provider snapshot with panic isolation. A failed
// snapshot degrades to an error marker; it never propagates.
func captureContext(snapshot func() any) (ctx any) {
	defer func() {
		if r := recover(); r != nil {
			ctx = map[string]any{"error": fmt.Sprintf("context snapshot failed: %v", r)}
		}
	}()
	return snapshot()
}

// emitMirror forwards the entry to the mirror sink. Mirror failures are
// swallowed; at worst the entry is only visible in the buffer.
func (p *Pipeline) emitMirror(entry core.LogEntry) {
	defer func() {
		recover()
	}()
	p.mir.Emit(entry)
}

// warnMirror writes to the mirror bypass channel with the same failure
// isolation as emitMirror.
func (p *Pipeline) warnMirror(format string, args ...any) {
	defer func() {
		recover()
	}()
	p.mir.Warnf(format, args...)
}
