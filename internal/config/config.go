package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultCompactWidth is the terminal width below which the list and the
// detail pane stop sharing the screen.
const DefaultCompactWidth = 100

// Config holds settings stored at ~/.wordroom/config. Environment variables
// override file values.
type Config struct {
	APIKey       string `yaml:"api_key" env:"WORDROOM_API_KEY"`
	APIURL       string `yaml:"api_url,omitempty" env:"WORDROOM_API_URL"`
	DataFile     string `yaml:"data_file,omitempty" env:"WORDROOM_DATA_FILE"`
	Backend      string `yaml:"backend,omitempty" env:"WORDROOM_BACKEND"`
	CompactWidth int    `yaml:"compact_width,omitempty" env:"WORDROOM_COMPACT_WIDTH"`
	Theme        string `yaml:"theme,omitempty" env:"WORDROOM_THEME"`
}

// Dir returns the config directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wordroom")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// LoadFile reads the config file only. A missing file is an empty config;
// a file readable by others is rejected.
func LoadFile() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file, applies environment overrides and fills in
// defaults.
func Load() (*Config, error) {
	return LoadWithFlags("", "")
}

// LoadWithFlags is Load with command line values for the data file and the
// backend, which win over the file and the environment when non-empty.
func LoadWithFlags(dataFile, backend string) (*Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if backend != "" {
		cfg.Backend = backend
	}
	cfg.applyDefaults()
	return cfg, nil
}

// SaveAPIKey stores key in the config file. Only the file contents are
// rewritten; environment overrides never end up on disk.
func SaveAPIKey(key string) error {
	cfg, err := LoadFile()
	if err != nil {
		return err
	}
	cfg.APIKey = key
	return cfg.Save()
}

// ParseEnv overlays environment variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = "json"
	}
	if c.CompactWidth <= 0 {
		c.CompactWidth = DefaultCompactWidth
	}
	if c.DataFile == "" {
		name := "vocabulary.json"
		if c.Backend == "sqlite" {
			name = "vocabulary.sqlite"
		}
		c.DataFile = filepath.Join(Dir(), name)
	}
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
