package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// AppDirName is the directory name used under the XDG config home
const AppDirName = "lol-cooldowns"

// Data Dragon defaults
const (
	DefaultDataVersion = "14.14.1"
	DefaultBaseURL     = "https://ddragon.leagueoflegends.com"
	DefaultLocale      = "en_US"
	LatestDataVersion  = "latest"
)

// Network and cache defaults
const (
	DefaultHTTPTimeout  = 10 * time.Second
	DefaultRetries      = 2
	DefaultRetryBackoff = 500 * time.Millisecond
	DefaultCacheSize    = 64
	MaxRetries          = 5
)

// UI defaults
const (
	DefaultToastDuration = 1 * time.Second
)

// FileConfig represents the optional TOML configuration file
type FileConfig struct {
	Data  DataConfig  `toml:"data"`
	HTTP  HTTPConfig  `toml:"http"`
	Cache CacheConfig `toml:"cache"`
	UI    UIConfig    `toml:"ui"`
}

// DataConfig maps Data Dragon settings
type DataConfig struct {
	Version *string `toml:"version"`
	BaseURL *string `toml:"base_url"`
	Locale  *string `toml:"locale"`
}

// HTTPConfig maps network settings. Durations use Go syntax ("10s", "500ms").
type HTTPConfig struct {
	Timeout      *string `toml:"timeout"`
	Retries      *int    `toml:"retries"`
	RetryBackoff *string `toml:"retry_backoff"`
}

// CacheConfig maps in-memory cache settings
type CacheConfig struct {
	Size *int `toml:"size"`
}

// UIConfig maps interface settings
type UIConfig struct {
	ToastDuration *string `toml:"toast_duration"`
}

// Config holds resolved runtime configuration
type Config struct {
	DataVersion   string
	BaseURL       string
	Locale        string
	HTTPTimeout   time.Duration
	Retries       int
	RetryBackoff  time.Duration
	CacheSize     int
	ToastDuration time.Duration
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		DataVersion:   DefaultDataVersion,
		BaseURL:       DefaultBaseURL,
		Locale:        DefaultLocale,
		HTTPTimeout:   DefaultHTTPTimeout,
		Retries:       DefaultRetries,
		RetryBackoff:  DefaultRetryBackoff,
		CacheSize:     DefaultCacheSize,
		ToastDuration: DefaultToastDuration,
	}
}

// XDGConfigHome returns the XDG config home or a default fallback
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), AppDirName, "config.toml")
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return fc, nil
}

// Load reads the config file at path and applies it over the defaults
func Load(path string) (Config, error) {
	fc, err := LoadFile(path)
	if err != nil {
		return Default(), err
	}
	return fc.Resolve()
}

// Resolve applies the file values over the defaults, validating each one
func (fc FileConfig) Resolve() (Config, error) {
	cfg := Default()

	if v := fc.Data.Version; v != nil && strings.TrimSpace(*v) != "" {
		cfg.DataVersion = strings.TrimSpace(*v)
	}
	if v := fc.Data.BaseURL; v != nil && strings.TrimSpace(*v) != "" {
		cfg.BaseURL = strings.TrimRight(strings.TrimSpace(*v), "/")
	}
	if v := fc.Data.Locale; v != nil && strings.TrimSpace(*v) != "" {
		cfg.Locale = strings.TrimSpace(*v)
	}

	if v := fc.HTTP.Timeout; v != nil {
		d, err := parsePositiveDuration("http.timeout", *v)
		if err != nil {
			return Default(), err
		}
		cfg.HTTPTimeout = d
	}
	if v := fc.HTTP.Retries; v != nil {
		if *v < 0 || *v > MaxRetries {
			return Default(), fmt.Errorf("http.retries must be between 0 and %d, got %d", MaxRetries, *v)
		}
		cfg.Retries = *v
	}
	if v := fc.HTTP.RetryBackoff; v != nil {
		d, err := parsePositiveDuration("http.retry_backoff", *v)
		if err != nil {
			return Default(), err
		}
		cfg.RetryBackoff = d
	}

	if v := fc.Cache.Size; v != nil {
		if *v <= 0 {
			return Default(), fmt.Errorf("cache.size must be positive, got %d", *v)
		}
		cfg.CacheSize = *v
	}

	if v := fc.UI.ToastDuration; v != nil {
		d, err := parsePositiveDuration("ui.toast_duration", *v)
		if err != nil {
			return Default(), err
		}
		cfg.ToastDuration = d
	}

	return cfg, nil
}

func parsePositiveDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, value)
	}
	return d, nil
}
