// FILE: framelog/src/internal/pipeline/query.go
package pipeline

import (
	"time"

	"framelog/src/internal/core"

	"github.com/google/uuid"
)

// Recent returns the count most recent entries, newest-first.
func (p *Pipeline) Recent(count int) []core.LogEntry {
	return p.ring.Last(count)
}

// ByLevel returns up to count entries at exactly the given level,
// newest-first.
func (p *Pipeline) ByLevel(level core.Level, count int) []core.LogEntry {
	return p.ring.Filter(func(e core.LogEntry) bool {
		return e.Level == level
	}, count)
}

// ByCode returns up to count entries with the given event code,
// newest-first.
func (p *Pipeline) ByCode(code string, count int) []core.LogEntry {
	return p.ring.Filter(func(e core.LogEntry) bool {
		return e.Code == code
	}, count)
}

// Clear empties the ring buffer. Configuration, frame accounting and
// pipeline counters are unaffected.
func (p *Pipeline) Clear() {
	p.ring.Clear()
}

// GetStats returns pipeline and buffer statistics.
func (p *Pipeline) GetStats() map[string]any {
	p.mu.Lock()
	frame := p.currentFrame
	emitted := p.emittedThisFrame
	p.mu.Unlock()

	byLevel := make(map[string]uint64, len(core.AllLevels()))
	for _, lv := range core.AllLevels() {
		byLevel[lv.String()] = p.stats.byLevel[lv].Load()
	}

	return map[string]any{
		"total_logged":       p.stats.totalLogged.Load(),
		"by_level":           byLevel,
		"by_subsystem":       p.stats.subsystemCounts(),
		"throttled":          p.stats.throttled.Load(),
		"sampled_out":        p.stats.sampledOut.Load(),
		"dropped_by_level":   p.stats.droppedByLevel.Load(),
		"bad_calls":          p.stats.badCalls.Load(),
		"current_frame":      frame,
		"emitted_this_frame": emitted,
		"uptime_seconds":     int(time.Since(p.startTime).Seconds()),
		"buffer":             p.ring.GetStats(),
	}
}

// ConfigView is a read-only snapshot of the live configuration, serialized
// into the export bundle.
type ConfigView struct {
	MinLevel         string             `json:"minLevel"`
	SamplingRates    map[string]float64 `json:"samplingRates"`
	FrameThrottleMax int                `json:"frameThrottleMax"`
	BufferCapacity   int                `json:"bufferCapacity"`
	MirrorEnabled    bool               `json:"mirrorEnabled"`
}

// ConfigSnapshot returns the current configuration values.
func (p *Pipeline) ConfigSnapshot() ConfigView {
	p.mu.Lock()
	defer p.mu.Unlock()

	rates := make(map[string]float64, len(p.samplingRates))
	for lv, r := range p.samplingRates {
		rates[lv.String()] = r
	}
	return ConfigView{
		MinLevel:         p.minLevel.String(),
		SamplingRates:    rates,
		FrameThrottleMax: p.frameThrottleMax,
		BufferCapacity:   p.ring.Cap(),
		MirrorEnabled:    p.mirrorEnabled,
	}
}

// Metadata describes an export bundle.
type Metadata struct {
	ExportTime time.Time      `json:"exportTime"`
	ExportID   string         `json:"exportId"`
	TotalLogs  int            `json:"totalLogs"`
	BufferSize int            `json:"bufferSize"`
	Stats      map[string]any `json:"stats"`
}

// Bundle is the export payload: the only serialization contract this
// subsystem exposes. Tooling consuming exports should treat its shape as
// stable.
type Bundle struct {
	Metadata Metadata        `json:"metadata"`
	Logs     []core.LogEntry `json:"logs"`
	Config   ConfigView      `json:"config"`
}

// Export captures the full buffer (chronological order), statistics and the
// live configuration. Runs in time proportional to the buffer size; the
// write path is not held up beyond the buffer copy.
func (p *Pipeline) Export() Bundle {
	logs := p.ring.All()
	return Bundle{
		Metadata: Metadata{
			ExportTime: time.Now(),
			ExportID:   uuid.NewString(),
			TotalLogs:  len(logs),
			BufferSize: p.ring.Len(),
			Stats:      p.GetStats(),
		},
		Logs:   logs,
		Config: p.ConfigSnapshot(),
	}
}
