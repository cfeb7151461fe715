package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// Config holds file locations and logging for the tracker. The defaults
// put expenses.txt and settings.txt in the working directory.
type Config struct {
	DataDir      string `yaml:"data_dir"`
	RecordFile   string `yaml:"record_file"`
	SettingsFile string `yaml:"settings_file"`
	Backend      string `yaml:"backend"` // text, sqlite
	SQLiteFile   string `yaml:"sqlite_file"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		DataDir:      ".",
		RecordFile:   "expenses.txt",
		SettingsFile: "settings.txt",
		Backend:      BackendText,
		SQLiteFile:   "expenses.db",
		LogFile:      "",
		LogLevel:     "info",
	}
}

// Load reads a YAML config file on top of the defaults and applies env
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	cfg.applyEnvOverrides()
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := getEnv("EXPENSES_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := getEnv("EXPENSES_BACKEND"); v != "" {
		c.Backend = strings.ToLower(v)
	}
	if v := getEnv("EXPENSES_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := getEnv("EXPENSES_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

func getEnv(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendText, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendText, BackendSQLite)
	}
	if strings.TrimSpace(c.RecordFile) == "" && c.Backend == BackendText {
		return fmt.Errorf("record_file is empty")
	}
	if strings.TrimSpace(c.SQLiteFile) == "" && c.Backend == BackendSQLite {
		return fmt.Errorf("sqlite_file is empty")
	}
	if strings.TrimSpace(c.SettingsFile) == "" {
		return fmt.Errorf("settings_file is empty")
	}
	return nil
}

func (c *Config) RecordPath() string   { return c.resolve(c.RecordFile) }
func (c *Config) SettingsPath() string { return c.resolve(c.SettingsFile) }
func (c *Config) SQLitePath() string   { return c.resolve(c.SQLiteFile) }

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) || c.DataDir == "" {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
