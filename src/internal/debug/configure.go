// FILE: framelog/src/internal/debug/configure.go
package debug

import (
	"framelog/src/internal/core"
	"framelog/src/internal/pipeline"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

var configParserPool fastjson.ParserPool

// handleConfigure applies a partial configuration from a JSON body of the
// shape:
//
//	{"minLevel": "warn", "samplingRates": {"info": 0.2},
//	 "frameThrottleMax": 50, "mirrorEnabled": false}
//
// Unknown keys are ignored; recognized keys with invalid values reject the
// whole request so a half-applied configuration never results.
func (s *Server) handleConfigure(ctx *fasthttp.RequestCtx) {
	parser := configParserPool.Get()
	defer configParserPool.Put(parser)

	v, err := parser.ParseBytes(ctx.PostBody())
	if err != nil {
		s.badRequests.Add(1)
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSON(ctx, map[string]any{"error": "invalid JSON: " + err.Error()})
		return
	}

	var o pipeline.Overrides

	if raw := v.GetStringBytes("minLevel"); raw != nil {
		level, ok := core.ParseLevel(string(raw))
		if !ok {
			s.badRequests.Add(1)
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			s.writeJSON(ctx, map[string]any{"error": "invalid minLevel: " + string(raw)})
			return
		}
		o.MinLevel = &level
	}

	if rates := v.GetObject("samplingRates"); rates != nil {
		o.SamplingRates = make(map[core.Level]float64)
		var badKey string
		rates.Visit(func(key []byte, val *fastjson.Value) {
			level, ok := core.ParseLevel(string(key))
			if !ok {
				badKey = string(key)
				return
			}
			o.SamplingRates[level] = val.GetFloat64()
		})
		if badKey != "" {
			s.badRequests.Add(1)
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			s.writeJSON(ctx, map[string]any{"error": "invalid samplingRates level: " + badKey})
			return
		}
		for level, rate := range o.SamplingRates {
			if rate < 0 || rate > 1 {
				s.badRequests.Add(1)
				ctx.SetStatusCode(fasthttp.StatusBadRequest)
				s.writeJSON(ctx, map[string]any{
					"error": "sampling rate out of range for " + level.String(),
				})
				return
			}
		}
	}

	if v.Exists("frameThrottleMax") {
		max := v.GetInt("frameThrottleMax")
		if max < 0 {
			s.badRequests.Add(1)
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			s.writeJSON(ctx, map[string]any{"error": "frameThrottleMax must be >= 0"})
			return
		}
		o.FrameThrottleMax = &max
	}

	if v.Exists("mirrorEnabled") {
		enabled := v.GetBool("mirrorEnabled")
		o.MirrorEnabled = &enabled
	}

	s.pipe.Configure(o)

	s.logger.Info("msg", "Configuration updated via debug surface",
		"component", "debug_server")

	s.writeJSON(ctx, map[string]any{
		"status": "ok",
		"config": s.pipe.ConfigSnapshot(),
	})
}
