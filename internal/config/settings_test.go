package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	width, height := settings.GetWindowSize()
	if width != DefaultWindowWidth || height != DefaultWindowHeight {
		t.Errorf("Expected default size %dx%d, got %dx%d", DefaultWindowWidth, DefaultWindowHeight, width, height)
	}

	// Test setting custom value
	settings.SetWindowSize(640, 300)
	width, height = settings.GetWindowSize()
	if width != 640 || height != 300 {
		t.Errorf("Expected size 640x300, got %dx%d", width, height)
	}

	// Test boundary values
	settings.SetWindowSize(10, 100000)
	width, height = settings.GetWindowSize()
	if width != MinWindowSide {
		t.Errorf("Width should be clamped to %d, got %d", MinWindowSide, width)
	}
	if height != MaxWindowSide {
		t.Errorf("Height should be clamped to %d, got %d", MaxWindowSide, height)
	}
}
