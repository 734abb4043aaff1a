package store

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "weekendly"

// DefaultDataDir resolves the directory holding the record files: the
// WEEKENDLY_DIR environment variable when set, otherwise the platform's
// conventional per-user data location (Application Support on macOS, the
// XDG data dir on Linux, LOCALAPPDATA on Windows).
func DefaultDataDir() string {
	if dir := os.Getenv("WEEKENDLY_DIR"); dir != "" {
		return dir
	}
	return dataDirFor(runtime.GOOS)
}

func dataDirFor(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appDirName)
	case "windows":
		for _, env := range []string{"LOCALAPPDATA", "APPDATA"} {
			if dir := os.Getenv(env); dir != "" {
				return filepath.Join(dir, appDirName)
			}
		}
		return filepath.Join(home, appDirName)
	}

	// Everything else follows the XDG convention.
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(home, ".local", "share", appDirName)
}
