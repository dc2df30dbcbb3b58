package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrNoExistingPath means neither the path nor any of its parents exist
var ErrNoExistingPath = errors.New("no existing path")

// NearestExisting returns path if it exists, otherwise its closest existing
// parent directory. The config file is optional, so revealing it usually
// lands on the config directory or its parent.
func NearestExisting(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrNoExistingPath)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for current := absPath; ; {
		if _, err := os.Stat(current); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: %s", ErrNoExistingPath, path)
		}
		current = parent
	}
}

// RevealPath opens the system file manager at path, selecting it when it is
// a file. Missing paths fall back to the nearest existing parent.
func RevealPath(path string) error {
	target, err := NearestExisting(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return revealMacOS(target, info.IsDir())
	case OSWindows:
		return revealWindows(target, info.IsDir())
	case OSLinux:
		return revealLinux(target, info.IsDir())
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// revealMacOS opens Finder, selecting files
func revealMacOS(path string, isDir bool) error {
	if isDir {
		return exec.Command(OpenCommand, path).Run()
	}
	return exec.Command(OpenCommand, MacOSSelectFlag, path).Run()
}

// revealWindows opens Explorer, selecting files
func revealWindows(path string, isDir bool) error {
	if isDir {
		return exec.Command(ExplorerCommand, path).Run()
	}
	return exec.Command(ExplorerCommand, WindowsSelectParam+path).Run()
}

// revealLinux opens the directory holding path.
// File selection is not standardized on Linux.
func revealLinux(path string, isDir bool) error {
	dir := path
	if !isDir {
		dir = filepath.Dir(path)
	}

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
