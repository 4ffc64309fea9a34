// FILE: framelog/src/internal/mirror/console.go
package mirror

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"framelog/src/internal/core"

	"golang.org/x/term"
)

// ANSI color codes per level.
const (
	colorDev   = "\033[36m" // cyan
	colorInfo  = "\033[32m" // green
	colorWarn  = "\033[33m" // yellow
	colorError = "\033[31m" // red
	colorFatal = "\033[35m" // magenta
	colorReset = "\033[0m"
)

// Console mirrors entries to stdout/stderr, routed by severity: error and
// fatal go to the error stream, everything else to the output stream.
// Output is colorized when the stream is a terminal.
type Console struct {
	out      io.Writer
	err      io.Writer
	colorOut bool
	colorErr bool
}

// NewConsole creates a console mirror over os.Stdout/os.Stderr.
func NewConsole() *Console {
	return &Console{
		out:      os.Stdout,
		err:      os.Stderr,
		colorOut: term.IsTerminal(int(os.Stdout.Fd())),
		colorErr: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// NewConsoleWriters creates a console mirror over arbitrary writers, with
// color disabled. Used by tests.
func NewConsoleWriters(out, err io.Writer) *Console {
	return &Console{out: out, err: err}
}

func (c *Console) Emit(entry core.LogEntry) {
	w, colored := c.out, c.colorOut
	if entry.Level >= core.LevelError {
		w, colored = c.err, c.colorErr
	}
	fmt.Fprint(w, c.formatLine(entry, colored))
}

func (c *Console) Warnf(format string, args ...any) {
	line := fmt.Sprintf("[%s] [%sWARN%s] framelog - %s\n",
		time.Now().Format(time.RFC3339),
		c.color(core.LevelWarn, c.colorErr), c.reset(c.colorErr),
		fmt.Sprintf(format, args...))
	fmt.Fprint(c.err, line)
}

func (c *Console) formatLine(entry core.LogEntry, colored bool) string {
	line := fmt.Sprintf("[%s] [%s%s%s] %s %s - %s",
		entry.Timestamp.Format(time.RFC3339),
		c.color(entry.Level, colored), entry.Level.String(), c.reset(colored),
		entry.Subsystem,
		entry.Code,
		entry.Message)

	if entry.ErrorMessage != "" {
		line += " error=" + entry.ErrorMessage
	}
	if len(entry.Fields) > 0 {
		if data, err := json.Marshal(entry.Fields); err == nil {
			line += " | " + string(data)
		}
	}
	return line + "\n"
}

func (c *Console) color(l core.Level, enabled bool) string {
	if !enabled {
		return ""
	}
	switch l {
	case core.LevelDev:
		return colorDev
	case core.LevelInfo:
		return colorInfo
	case core.LevelWarn:
		return colorWarn
	case core.LevelError:
		return colorError
	case core.LevelFatal:
		return colorFatal
	default:
		return ""
	}
}

func (c *Console) reset(enabled bool) string {
	if !enabled {
		return ""
	}
	return colorReset
}
