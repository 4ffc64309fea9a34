// FILE: framelog/src/internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

func defaults() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			MinLevel:         "dev",
			FrameThrottleMax: 100,
			BufferCapacity:   2000,
			MirrorEnabled:    true,
		},
		Debug: DebugConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    8190,
		},
		Logging: LogConfig{
			Output: "stderr",
			Level:  "info",
		},
	}
}

// LoadWithCLI loads configuration from defaults, the config file, the
// FRAMELOG_* environment and CLI arguments, in ascending precedence.
func LoadWithCLI(cliArgs []string) (*Config, error) {
	configPath := GetConfigPath()

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix("FRAMELOG_").
		WithFile(configPath).
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	return finalConfig, finalConfig.validate()
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	return "FRAMELOG_" + env
}

// GetConfigPath resolves the config file location from the environment,
// falling back to ~/.config/framelog.toml.
func GetConfigPath() string {
	if configFile := os.Getenv("FRAMELOG_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("FRAMELOG_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("FRAMELOG_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "framelog.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "framelog.toml")
	}

	return "framelog.toml"
}
