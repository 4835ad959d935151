package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Platform tags returned to the UI layer.
const (
	PlatformMac     = "macos"
	PlatformWindows = "windows"
	PlatformLinux   = "linux"
)

// Platform maps the runtime OS onto one of the three supported tags.
// Anything that is not macOS or Windows reports as linux.
func Platform() string {
	switch runtime.GOOS {
	case "darwin":
		return PlatformMac
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// configDir returns the per-app config directory, respecting
// XDG_CONFIG_HOME and falling back to ~/.config.
func configDir(app string) (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, app), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(home, ".config", app), nil
}

// localAppDataDir returns the Windows local-app-data root, falling back to
// the conventional location under the home directory when the environment
// variable is unset.
func localAppDataDir() (string, error) {
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("local app data: %w", err)
	}
	return filepath.Join(home, "AppData", "Local"), nil
}

// roamingAppDataDir returns the Windows roaming app-data root.
func roamingAppDataDir() (string, error) {
	if dir := os.Getenv("APPDATA"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("app data: %w", err)
	}
	return filepath.Join(home, "AppData", "Roaming"), nil
}
