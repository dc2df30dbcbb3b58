package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
[data]
version = "latest"
base_url = "http://localhost:8080/"
locale = "ru_RU"

[http]
timeout = "3s"
retries = 4
retry_backoff = "250ms"

[cache]
size = 16

[ui]
toast_duration = "2s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := Config{
		DataVersion:   LatestDataVersion,
		BaseURL:       "http://localhost:8080",
		Locale:        "ru_RU",
		HTTPTimeout:   3 * time.Second,
		Retries:       4,
		RetryBackoff:  250 * time.Millisecond,
		CacheSize:     16,
		ToastDuration: 2 * time.Second,
	}
	if cfg != expected {
		t.Errorf("Expected %+v, got %+v", expected, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[data]
version = "14.20.1"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.DataVersion != "14.20.1" {
		t.Errorf("Expected version 14.20.1, got %s", cfg.DataVersion)
	}
	if cfg.HTTPTimeout != DefaultHTTPTimeout {
		t.Errorf("Expected default timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL, got %s", cfg.BaseURL)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad timeout", "[http]\ntimeout = \"soon\"\n", "http.timeout"},
		{"negative timeout", "[http]\ntimeout = \"-1s\"\n", "http.timeout"},
		{"too many retries", "[http]\nretries = 50\n", "http.retries"},
		{"zero cache", "[cache]\nsize = 0\n", "cache.size"},
		{"bad toast", "[ui]\ntoast_duration = \"0s\"\n", "ui.toast_duration"},
		{"bad toml", "[http\n", "decode"},
	}

	for _, test := range tests {
		path := writeConfig(t, test.content)
		cfg, err := Load(path)
		if err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.errPart) {
			t.Errorf("%s: expected error containing %q, got %v", test.name, test.errPart, err)
		}
		if cfg != Default() {
			t.Errorf("%s: expected defaults on error, got %+v", test.name, cfg)
		}
	}
}

func TestDefaultConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	expected := filepath.Join(dir, AppDirName, "config.toml")
	if path := DefaultConfigPath(); path != expected {
		t.Errorf("Expected %s, got %s", expected, path)
	}
}
