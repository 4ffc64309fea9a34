// FILE: framelog/src/internal/mirror/logger.go
package mirror

import (
	"fmt"

	"framelog/src/internal/core"

	"github.com/lixenwraith/log"
)

// Logger adapts a lixenwraith/log logger as the mirror target, mapping
// entry severity onto the logger's own levels: error and fatal route to the
// error channel, warn to warn, info to info, dev to debug.
type Logger struct {
	logger *log.Logger
}

// NewLogger wraps an initialized logger.
func NewLogger(logger *log.Logger) *Logger {
	return &Logger{logger: logger}
}

func (m *Logger) Emit(entry core.LogEntry) {
	args := []any{
		"msg", entry.Message,
		"code", entry.Code,
		"subsystem", entry.Subsystem,
		"frame", entry.Frame,
		"sequence", entry.Sequence,
	}
	if entry.ErrorMessage != "" {
		args = append(args, "error", entry.ErrorMessage)
	}
	for k, v := range entry.Fields {
		args = append(args, k, v)
	}

	switch entry.Level {
	case core.LevelError, core.LevelFatal:
		m.logger.Error(args...)
	case core.LevelWarn:
		m.logger.Warn(args...)
	case core.LevelInfo:
		m.logger.Info(args...)
	default:
		m.logger.Debug(args...)
	}
}

func (m *Logger) Warnf(format string, args ...any) {
	m.logger.Warn("msg", "framelog self-monitor",
		"detail", fmt.Sprintf(format, args...))
}
