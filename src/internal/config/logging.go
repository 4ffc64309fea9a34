// FILE: framelog/src/internal/config/logging.go
package config

// LogConfig configures framelog's own component logger. This is the
// logger the library uses to report on itself; it is distinct from both the
// entry pipeline and the mirror sink.
type LogConfig struct {
	// Output mode: "stdout", "stderr", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`
}
