// Package config loads bot configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"ytfetch-bot/internal/fault"
)

// Config holds all application configuration.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Access   AccessConfig   `yaml:"access"`
	Download DownloadConfig `yaml:"download"`
	Log      LogConfig      `yaml:"log"`
}

// TelegramConfig holds transport configuration.
type TelegramConfig struct {
	Token       string        `yaml:"token" envconfig:"TELEGRAM_TOKEN"`
	PollTimeout time.Duration `yaml:"poll_timeout" envconfig:"POLL_TIMEOUT"`
}

// AccessConfig holds the approval gate configuration. When the gate is
// enabled an admin identity is mandatory and the process refuses to start
// without one.
type AccessConfig struct {
	Enabled bool  `yaml:"enabled" envconfig:"ACCESS_GATE"`
	AdminID int64 `yaml:"admin_id" envconfig:"ADMIN_ID"`
}

// DownloadConfig holds extraction service configuration.
type DownloadConfig struct {
	Binary       string        `yaml:"binary" envconfig:"YTDLP_BIN"`
	CookiesFile  string        `yaml:"cookies_file" envconfig:"COOKIES_FILE"`
	TempDir      string        `yaml:"temp_dir" envconfig:"DOWNLOAD_TEMP_DIR"`
	ProbeTimeout time.Duration `yaml:"probe_timeout" envconfig:"PROBE_TIMEOUT"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" envconfig:"FETCH_TIMEOUT"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`
}

// Load reads configuration from the YAML file at path, then applies
// environment overrides. A missing file is not an error: the bot can run on
// environment variables alone.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// env-only mode
		case err != nil:
			return nil, fault.Wrap(fault.Config, err, "read config file")
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fault.Wrap(fault.Config, err, "parse config file")
			}
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fault.Wrap(fault.Config, err, "process environment")
	}

	if cfg.Download.TempDir == "" {
		cfg.Download.TempDir = os.TempDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Telegram.PollTimeout = 10 * time.Second
	cfg.Access.Enabled = true
	cfg.Download.Binary = "yt-dlp"
	cfg.Download.ProbeTimeout = 30 * time.Second
	cfg.Download.FetchTimeout = 10 * time.Minute
	cfg.Log.Level = "info"
	return cfg
}

// Validate checks that required values for the selected mode are set.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fault.New(fault.Config, errors.New("TELEGRAM_TOKEN is required"))
	}
	if c.Access.Enabled && c.Access.AdminID == 0 {
		return fault.New(fault.Config, errors.New("ADMIN_ID is required when the access gate is enabled"))
	}
	return nil
}
