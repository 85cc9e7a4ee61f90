package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/NunoEdgarGub1/tidyhydat/hydat"
	"github.com/NunoEdgarGub1/tidyhydat/realtime"
)

// Config is the top-level configuration for the hydat CLI.
type Config struct {
	DBPath    string         `mapstructure:"db_path"`
	LogFormat string         `mapstructure:"log_format"`
	Realtime  RealtimeConfig `mapstructure:"realtime"`
	Download  DownloadConfig `mapstructure:"download"`
}

// RealtimeConfig points at the datamart serving realtime CSV files.
type RealtimeConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// DownloadConfig points at the published HYDAT release archive.
type DownloadConfig struct {
	URL string `mapstructure:"url"`
}

// Load reads configuration from flag path, env vars, then default file paths.
// Precedence: flag → $HYDAT_CONFIG env → ~/.config/hydat/config.yaml → /etc/hydat/config.yaml
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("db_path", hydat.DefaultDBPath())
	v.SetDefault("log_format", "text")
	v.SetDefault("realtime.base_url", realtime.DefaultBaseURL)
	v.SetDefault("realtime.timeout_seconds", 30)
	v.SetDefault("download.url", hydat.DefaultDownloadURL)

	// Env var support (HYDAT_DB_PATH, HYDAT_REALTIME_BASE_URL, ...)
	v.SetEnvPrefix("HYDAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if envPath := os.Getenv("HYDAT_CONFIG"); envPath != "" {
		v.SetConfigFile(envPath)
	} else {
		// Try ~/.config/hydat/config.yaml first
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "hydat"))
		}
		// Fall back to /etc/hydat/config.yaml
		v.AddConfigPath("/etc/hydat")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration is complete and correct.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be 'text' or 'json', got %q", c.LogFormat)
	}

	if c.Realtime.TimeoutSeconds <= 0 {
		return fmt.Errorf("realtime.timeout_seconds must be positive, got %d", c.Realtime.TimeoutSeconds)
	}
	if err := validateURL("realtime.base_url", c.Realtime.BaseURL); err != nil {
		return err
	}
	if err := validateURL("download.url", c.Download.URL); err != nil {
		return err
	}

	return nil
}

func validateURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s %q is not a valid URL: %w", key, raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s %q must be an absolute URL", key, raw)
	}
	return nil
}

// Source returns the HYDAT source for the configured database path.
func (c *Config) Source() hydat.Source {
	return hydat.FromPath(c.DBPath)
}

// RealtimeTimeout returns the configured datamart request timeout.
func (c *Config) RealtimeTimeout() time.Duration {
	return time.Duration(c.Realtime.TimeoutSeconds) * time.Second
}
