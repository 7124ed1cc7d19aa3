// Package config loads the optional ~/.vida/config.yaml. Environment
// variables (VIDA_DB, VIDA_LLM_*) override whatever the file says; the
// file exists so settings survive without a wall of exports.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LLMConfig mirrors the model-related knobs of the llm package.
type LLMConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

type Config struct {
	// DatabasePath is where the SQLite store lives.
	DatabasePath string `yaml:"database_path"`

	// OriginHour anchors the agenda timeline (vertical offset zero).
	OriginHour int `yaml:"origin_hour"`

	LLM LLMConfig `yaml:"llm"`
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DatabasePath: filepath.Join(home, ".vida", "vida.db"),
		OriginHour:   7,
		LLM: LLMConfig{
			Enabled:  false,
			Endpoint: "http://localhost:11434",
			Model:    "llama3.2",
		},
	}
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".vida", "config.yaml")
}

// Normalize backfills zero values so partially-filled configs behave.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.DatabasePath == "" {
		c.DatabasePath = def.DatabasePath
	}
	if c.OriginHour < 0 || c.OriginHour > 23 {
		c.OriginHour = def.OriginHour
	}
	if c.LLM.Endpoint == "" {
		c.LLM.Endpoint = def.LLM.Endpoint
	}
	if c.LLM.Model == "" {
		c.LLM.Model = def.LLM.Model
	}
}

// Load reads the YAML config at path. A missing file is first-run: the
// default config is written there (0600) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg as YAML, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
