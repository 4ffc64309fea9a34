// FILE: framelog/src/internal/core/level.go
package core

import (
	"encoding/json"
	"strings"
)

// Level represents log severity. Order is verbosity-inverted: the most
// verbose level has the lowest priority.
type Level int

const (
	LevelDev Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the canonical upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelDev:
		return "DEV"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON serializes the level as its canonical name. The export bundle
// is consumed by external tooling; names are stable, ordinals are not.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts either a level name or a raw ordinal.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, _ := ParseLevel(s)
		*l = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = Level(n)
	return nil
}

// Valid reports whether l is a member of the closed severity set.
func (l Level) Valid() bool {
	return l >= LevelDev && l <= LevelFatal
}

// ParseLevel converts a string to a Level. Case-insensitive.
// Returns LevelInfo and false for unrecognized input.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEV", "DEBUG", "TRACE":
		return LevelDev, true
	case "INFO":
		return LevelInfo, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "ERROR", "ERR":
		return LevelError, true
	case "FATAL", "CRITICAL":
		return LevelFatal, true
	default:
		return LevelInfo, false
	}
}

// AllLevels returns every level in ascending priority order.
func AllLevels() []Level {
	return []Level{LevelDev, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// ShouldLog reports whether a call at level passes the configured minimum.
func ShouldLog(level, minLevel Level) bool {
	return level >= minLevel
}

// SamplingExempt reports whether a level bypasses the sampling gate
// unconditionally. Error and fatal events are the host's failures; they are
// retained at full fidelity regardless of configured rates.
func SamplingExempt(level Level) bool {
	return level >= LevelError
}

// DefaultSamplingRates returns the per-level retention probabilities used
// when no override is configured. Exempt levels carry 1.0 for clarity, but
// the pipeline does not consult the value for them.
func DefaultSamplingRates() map[Level]float64 {
	return map[Level]float64{
		LevelDev:   0.01,
		LevelInfo:  0.5,
		LevelWarn:  1.0,
		LevelError: 1.0,
		LevelFatal: 1.0,
	}
}
