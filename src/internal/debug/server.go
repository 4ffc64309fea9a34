// FILE: framelog/src/internal/debug/server.go
package debug

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"framelog/src/internal/config"
	"framelog/src/internal/core"
	"framelog/src/internal/pipeline"

	"github.com/lixenwraith/log"
	"github.com/valyala/fasthttp"
)

// defaultQueryCount bounds queries that omit an explicit count.
const defaultQueryCount = 50

// Server exposes the pipeline's query/export surface over local HTTP for
// interactive inspection by external tooling. It serves reads plus live
// reconfiguration; log entries are never pushed out, so this is an
// inspection port, not a transport.
type Server struct {
	cfg    config.DebugConfig
	pipe   *pipeline.Pipeline
	server *fasthttp.Server
	logger *log.Logger

	startTime     time.Time
	totalRequests atomic.Uint64
	badRequests   atomic.Uint64
}

// NewServer creates a debug server bound to the pipeline.
func NewServer(cfg config.DebugConfig, pipe *pipeline.Pipeline, logger *log.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		pipe:      pipe,
		logger:    logger,
		startTime: time.Now(),
	}
	s.server = &fasthttp.Server{
		Handler:         s.handleRequest,
		CloseOnShutdown: true,
	}
	return s
}

// Start begins serving in a background goroutine.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	ln, err := net.Listen("tcp4", addr)
	if err != nil {
		return fmt.Errorf("debug server listen failed on %s: %w", addr, err)
	}

	go func() {
		if err := s.server.Serve(ln); err != nil {
			s.logger.Error("msg", "Debug server failed",
				"component", "debug_server",
				"addr", addr,
				"error", err)
		}
	}()

	s.logger.Info("msg", "Debug server started",
		"component", "debug_server",
		"addr", addr)
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() {
	if err := s.server.Shutdown(); err != nil {
		s.logger.Warn("msg", "Debug server shutdown error",
			"component", "debug_server",
			"error", err)
	}
}

func (s *Server) handleRequest(ctx *fasthttp.RequestCtx) {
	s.totalRequests.Add(1)

	path := string(ctx.Path())
	switch {
	case path == "/healthz":
		s.writeJSON(ctx, map[string]any{"status": "ok"})
	case path == "/recent" && ctx.IsGet():
		s.handleRecent(ctx)
	case path == "/logs" && ctx.IsGet():
		s.handleLogs(ctx)
	case path == "/stats" && ctx.IsGet():
		s.writeJSON(ctx, s.pipe.GetStats())
	case path == "/export" && ctx.IsGet():
		s.writeJSON(ctx, s.pipe.Export())
	case path == "/config" && ctx.IsGet():
		s.writeJSON(ctx, s.pipe.ConfigSnapshot())
	case path == "/configure" && ctx.IsPost():
		s.handleConfigure(ctx)
	case path == "/clear" && ctx.IsPost():
		s.pipe.Clear()
		s.writeJSON(ctx, map[string]any{"status": "cleared"})
	default:
		s.badRequests.Add(1)
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSON(ctx, map[string]any{"error": "not found"})
	}
}

func (s *Server) handleRecent(ctx *fasthttp.RequestCtx) {
	count := queryCount(ctx)
	s.writeJSON(ctx, map[string]any{
		"count": count,
		"logs":  s.pipe.Recent(count),
	})
}

func (s *Server) handleLogs(ctx *fasthttp.RequestCtx) {
	count := queryCount(ctx)

	var logs []core.LogEntry
	if levelArg := string(ctx.QueryArgs().Peek("level")); levelArg != "" {
		level, ok := core.ParseLevel(levelArg)
		if !ok {
			s.badRequests.Add(1)
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			s.writeJSON(ctx, map[string]any{"error": "invalid level: " + levelArg})
			return
		}
		logs = s.pipe.ByLevel(level, count)
	} else if code := string(ctx.QueryArgs().Peek("code")); code != "" {
		logs = s.pipe.ByCode(code, count)
	} else {
		logs = s.pipe.Recent(count)
	}

	s.writeJSON(ctx, map[string]any{
		"count": len(logs),
		"logs":  logs,
	})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, v any) {
	ctx.SetContentType("application/json; charset=utf-8")
	data, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":"marshal failed"}`)
		return
	}
	ctx.SetBody(data)
}

// GetStats returns debug server statistics.
func (s *Server) GetStats() map[string]any {
	return map[string]any{
		"addr":           fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
		"total_requests": s.totalRequests.Load(),
		"bad_requests":   s.badRequests.Load(),
	}
}

func queryCount(ctx *fasthttp.RequestCtx) int {
	if raw := string(ctx.QueryArgs().Peek("count")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return defaultQueryCount
}
