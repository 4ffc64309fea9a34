// FILE: framelog/src/cmd/framelog/bootstrap.go
package main

import (
	"fmt"
	"strings"
	"time"

	"framelog/src/internal/config"
	"framelog/src/internal/debug"
	"framelog/src/internal/mirror"
	"framelog/src/internal/pipeline"

	"github.com/lixenwraith/log"
)

// bootstrap wires the pipeline, its console mirror and the optional debug
// surface.
func bootstrap(cfg *config.Config) (*pipeline.Pipeline, *debug.Server, error) {
	pipe := pipeline.New(cfg.Pipeline, logger, mirror.NewConsole())

	var dbgServer *debug.Server
	if cfg.Debug.Enabled {
		dbgServer = debug.NewServer(cfg.Debug, pipe, logger)
		if err := dbgServer.Start(); err != nil {
			return nil, nil, fmt.Errorf("failed to start debug server: %w", err)
		}
	}

	return pipe, dbgServer, nil
}

// shutdownLogger flushes and stops the component logger
func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			fmt.Printf("Logger shutdown error: %v\n", err)
		}
	}
}

// initializeLogger sets up the component logger based on configuration
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()

	var configArgs []string

	if *quiet {
		// In quiet mode, disable ALL component logging output
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=false",
			"level=255")

		return logger.ApplyConfigString(configArgs...)
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_stdout=false")

	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stdout")

	case "stderr", "":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stderr")

	default:
		return fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	return logger.ApplyConfigString(configArgs...)
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info", "":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
