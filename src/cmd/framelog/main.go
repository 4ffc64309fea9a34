// FILE: framelog/src/cmd/framelog/main.go
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"framelog/src/internal/bridge"
	"framelog/src/internal/config"
	"framelog/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

func main() {
	if err := parseFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if *configFile != "" {
		os.Setenv("FRAMELOG_CONFIG_FILE", *configFile)
	}

	cfg, err := config.LoadWithCLI(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := initializeLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer shutdownLogger()

	logger.Info("msg", "framelog starting",
		"version", version.String(),
		"config_file", *configFile,
		"debug_enabled", cfg.Debug.Enabled)

	pipe, dbgServer, err := bootstrap(cfg)
	if err != nil {
		logger.Error("msg", "Failed to bootstrap", "error", err)
		os.Exit(1)
	}

	// Stand-in host loop: advance the frame counter on a fixed interval.
	frameTicker := time.NewTicker(time.Duration(*frameMs) * time.Millisecond)
	defer frameTicker.Stop()
	stopFrames := make(chan struct{})
	go func() {
		var frame uint64
		for {
			select {
			case <-frameTicker.C:
				frame++
				pipe.Tick(frame)
			case <-stopFrames:
				return
			}
		}
	}()

	// Feed stdin through the print bridge so an external process can be
	// piped in and inspected over the debug surface.
	br := bridge.New(pipe, nil, "stdin")
	stdinDone := make(chan struct{})
	go func() {
		defer close(stdinDone)
		io.Copy(br, os.Stdin)
		br.Flush()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("msg", "Shutdown signal received")
	case <-stdinDone:
		logger.Info("msg", "Input stream closed")
	}

	close(stopFrames)
	if dbgServer != nil {
		dbgServer.Shutdown()
	}

	stats := pipe.GetStats()
	logger.Info("msg", "framelog stopped",
		"total_logged", stats["total_logged"],
		"throttled", stats["throttled"],
		"sampled_out", stats["sampled_out"])
}
