// Package config loads and saves Crewboard configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the full Crewboard configuration
type Config struct {
	StatePath string       `yaml:"statePath"`
	AI        AIConfig     `yaml:"ai"`
	UI        UIConfig     `yaml:"ui"`
	Logging   LoggingConfig `yaml:"logging"`
}

// AIConfig contains settings for the analysis service
type AIConfig struct {
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"maxTokens"`
	APIKeyEnv string `yaml:"apiKeyEnv"`
	TimeoutMs int    `yaml:"timeoutMs"`
}

// UIConfig contains dashboard presentation settings
type UIConfig struct {
	ShowHints   bool   `yaml:"showHints"`
	AccentColor string `yaml:"accentColor"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		StatePath: filepath.Join(homeDir, ".crewboard", "state.json"),
		AI: AIConfig{
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 2048,
			APIKeyEnv: "ANTHROPIC_API_KEY",
			TimeoutMs: 30000,
		},
		UI: UIConfig{
			ShowHints:   true,
			AccentColor: "#8aadf4",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, ".crewboard", "crewboard.log"),
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".crewboard", "config.yaml")
}

// LoadConfig loads configuration with priority:
// 1. The file at path, when it exists
// 2. Defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(&cfg), nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.StatePath == "" {
		cfg.StatePath = defaults.StatePath
	}

	if cfg.AI.Model == "" {
		cfg.AI.Model = defaults.AI.Model
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = defaults.AI.MaxTokens
	}
	if cfg.AI.APIKeyEnv == "" {
		cfg.AI.APIKeyEnv = defaults.AI.APIKeyEnv
	}
	if cfg.AI.TimeoutMs == 0 {
		cfg.AI.TimeoutMs = defaults.AI.TimeoutMs
	}

	if cfg.UI.AccentColor == "" {
		cfg.UI.AccentColor = defaults.UI.AccentColor
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaults.Logging.File
	}

	return cfg
}
