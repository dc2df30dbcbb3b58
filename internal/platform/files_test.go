package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNearestExisting_ExistingFile(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "config.toml")
	if err := os.WriteFile(file, []byte("[data]\n"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	found, err := NearestExisting(file)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if found != file {
		t.Errorf("Expected %s, got %s", file, found)
	}
}

func TestNearestExisting_MissingFileFallsBackToParent(t *testing.T) {
	tempDir := t.TempDir()
	missing := filepath.Join(tempDir, "lol-cooldowns", "config.toml")

	found, err := NearestExisting(missing)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if found != tempDir {
		t.Errorf("Expected %s, got %s", tempDir, found)
	}
}

func TestNearestExisting_EmptyPath(t *testing.T) {
	_, err := NearestExisting("")
	if !errors.Is(err, ErrNoExistingPath) {
		t.Errorf("Expected ErrNoExistingPath, got %v", err)
	}
}

func TestRevealPath_WithExistingDirectory(t *testing.T) {
	tempDir := t.TempDir()

	// We can't really test the actual opening without user interaction
	err := RevealPath(filepath.Join(tempDir, "missing.toml"))

	// On CI or headless systems, this might fail, which is expected
	if err != nil {
		t.Logf("RevealPath failed (expected on headless systems): %v", err)
	}
}
