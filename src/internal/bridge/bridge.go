// FILE: framelog/src/internal/bridge/bridge.go
package bridge

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"framelog/src/internal/pipeline"
)

// CaptureCode tags entries captured from unstructured print output.
const CaptureCode = "PRINT"

// Bridge is an explicit, opt-in adapter for hosts with legacy print-style
// output: every print is forwarded to the structured pipeline and also
// written through to the original destination. Wire it up once at startup;
// nothing is intercepted globally.
type Bridge struct {
	pipe      *pipeline.Pipeline
	out       io.Writer
	subsystem string

	mu      sync.Mutex
	partial bytes.Buffer
}

// New creates a bridge forwarding to pipe and passing through to out. A nil
// out disables passthrough. The subsystem tags every captured entry.
func New(pipe *pipeline.Pipeline, out io.Writer, subsystem string) *Bridge {
	if subsystem == "" {
		subsystem = "print"
	}
	return &Bridge{
		pipe:      pipe,
		out:       out,
		subsystem: subsystem,
	}
}

// Print captures the arguments fmt.Sprint-style.
func (b *Bridge) Print(args ...any) {
	b.capture(fmt.Sprint(args...))
}

// Printf captures a formatted message.
func (b *Bridge) Printf(format string, args ...any) {
	b.capture(fmt.Sprintf(format, args...))
}

// Println captures the arguments fmt.Sprintln-style.
func (b *Bridge) Println(args ...any) {
	b.capture(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (b *Bridge) capture(text string) {
	b.pipe.Info(CaptureCode, map[string]any{
		"message":   text,
		"subsystem": b.subsystem,
	})
	if b.out != nil {
		fmt.Fprintln(b.out, text)
	}
}

// Write implements io.Writer so an existing output stream can be redirected
// through the bridge. Input is split on newlines; an unterminated trailing
// fragment is buffered until the next write.
func (b *Bridge) Write(data []byte) (int, error) {
	b.mu.Lock()
	b.partial.Write(data)
	var lines []string
	for {
		raw := b.partial.Bytes()
		idx := bytes.IndexByte(raw, '\n')
		if idx < 0 {
			break
		}
		lines = append(lines, string(raw[:idx]))
		b.partial.Next(idx + 1)
	}
	b.mu.Unlock()

	for _, line := range lines {
		if line = strings.TrimRight(line, "\r"); line != "" {
			b.capture(line)
		}
	}
	return len(data), nil
}

// Flush captures any buffered unterminated fragment.
func (b *Bridge) Flush() {
	b.mu.Lock()
	line := strings.TrimSpace(b.partial.String())
	b.partial.Reset()
	b.mu.Unlock()

	if line != "" {
		b.capture(line)
	}
}
