// FILE: framelog/src/internal/pipeline/pipeline.go
package pipeline

import (
	"math/rand"
	"sync"
	"time"

	"framelog/src/internal/buffer"
	"framelog/src/internal/config"
	"framelog/src/internal/core"
	"framelog/src/internal/mirror"
	"framelog/src/internal/provider"

	"github.com/lixenwraith/log"
	"golang.org/x/time/rate"
)

// slowWriteThreshold is the per-call latency above which the pipeline
// reports itself to the mirror bypass channel.
const slowWriteThreshold = time.Millisecond

// Pipeline is the telemetry orchestrator: it accepts leveled structured
// events, runs them through the level / frame-throttle / sampling gates,
// enriches accepted entries and stores them in the ring buffer. One instance
// serves the whole host; construct it at startup and inject it into call
// sites.
//
// The write path is guarded by a mutex so a concurrent debug surface can
// query safely, but it is designed to be driven from a single host loop.
type Pipeline struct {
	mu sync.Mutex

	// Runtime configuration, mutated only via Configure
	minLevel         core.Level
	samplingRates    map[core.Level]float64
	frameThrottleMax int
	mirrorEnabled    bool

	// Per-frame accounting, reset by Tick
	currentFrame     uint64
	emittedThisFrame int

	ring     *buffer.Ring
	prov     provider.Provider
	mir      mirror.Mirror
	logger   *log.Logger
	randFunc func() float64

	slowWarnLimiter *rate.Limiter
	startTime       time.Time

	stats stats
}

// New creates a pipeline from configuration. The mirror may be nil, which
// disables mirroring structurally (mirror_enabled then has no effect).
func New(cfg config.PipelineConfig, logger *log.Logger, mir mirror.Mirror) *Pipeline {
	if mir == nil {
		mir = mirror.Nop{}
	}

	capacity := cfg.BufferCapacity
	if capacity <= 0 {
		capacity = buffer.DefaultCapacity
	}

	p := &Pipeline{
		minLevel:         cfg.MinLevelValue(),
		samplingRates:    cfg.SamplingRateValues(),
		frameThrottleMax: cfg.FrameThrottleMax,
		mirrorEnabled:    cfg.MirrorEnabled,
		ring:             buffer.NewRing(capacity),
		mir:              mir,
		logger:           logger,
		randFunc:         rand.Float64,
		slowWarnLimiter:  rate.NewLimiter(rate.Every(5*time.Second), 1),
		startTime:        time.Now(),
	}

	logger.Debug("msg", "Pipeline created",
		"component", "pipeline",
		"min_level", p.minLevel.String(),
		"frame_throttle_max", p.frameThrottleMax,
		"buffer_capacity", capacity,
		"mirror_enabled", p.mirrorEnabled)

	return p
}

// Tick advances the host frame counter. A new frame id resets the per-frame
// emission budget; repeated calls with the same id are no-ops. Frame ids are
// monotonically non-decreasing by convention but not enforced.
func (p *Pipeline) Tick(frame uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if frame == p.currentFrame {
		return
	}
	p.currentFrame = frame
	p.emittedThisFrame = 0
}

// Overrides is a partial configuration change. Nil fields keep their
// current values; SamplingRates merges per level.
type Overrides struct {
	MinLevel         *core.Level
	SamplingRates    map[core.Level]float64
	FrameThrottleMax *int
	MirrorEnabled    *bool
}

// Configure shallow-merges overrides into the live configuration. Changes
// take effect on the next log call; no restart required.
func (p *Pipeline) Configure(o Overrides) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if o.MinLevel != nil {
		p.minLevel = *o.MinLevel
	}
	for lv, r := range o.SamplingRates {
		p.samplingRates[lv] = r
	}
	if o.FrameThrottleMax != nil {
		p.frameThrottleMax = *o.FrameThrottleMax
	}
	if o.MirrorEnabled != nil {
		p.mirrorEnabled = *o.MirrorEnabled
	}

	p.logger.Debug("msg", "Pipeline reconfigured",
		"component", "pipeline",
		"min_level", p.minLevel.String(),
		"frame_throttle_max", p.frameThrottleMax,
		"mirror_enabled", p.mirrorEnabled)
}

// SetContextProvider attaches or replaces the context provider; nil
// disables enrichment.
func (p *Pipeline) SetContextProvider(prov provider.Provider) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prov = prov
}

// SetRandFunc replaces the sampling source with a deterministic one.
// Intended for tests; the default source is math/rand, which makes the
// retained set non-reproducible across runs.
func (p *Pipeline) SetRandFunc(fn func() float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.randFunc = fn
}
