// FILE: framelog/src/cmd/framelog/flags.go
package main

import (
	"flag"
	"fmt"
	"os"
)

// Command-line flags
var (
	configFile  = flag.String("config", "", "Config file path")
	showVersion = flag.Bool("version", false, "Show version information")
	quiet       = flag.Bool("quiet", false, "Suppress component logging")
	frameMs     = flag.Int("frame-ms", 16, "Frame interval in milliseconds for the stand-in host loop")
)

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "framelog - frame-budgeted structured log core\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")
	fmt.Fprintf(os.Stderr, "  -quiet\n\tSuppress component logging\n")
	fmt.Fprintf(os.Stderr, "  -frame-ms int\n\tFrame interval in milliseconds (default 16)\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Pipe a process through framelog and inspect it over HTTP\n")
	fmt.Fprintf(os.Stderr, "  ./game | %s --config framelog.toml\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  # 30 fps frame accounting\n")
	fmt.Fprintf(os.Stderr, "  %s --frame-ms 33\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  FRAMELOG_CONFIG_FILE  Config file path\n")
	fmt.Fprintf(os.Stderr, "  FRAMELOG_CONFIG_DIR   Config directory\n")
}

func parseFlags() error {
	flag.Parse()

	if *frameMs <= 0 {
		return fmt.Errorf("frame-ms must be positive, got %d", *frameMs)
	}
	return nil
}
