package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDataDirEnvOverride(t *testing.T) {
	t.Setenv("WEEKENDLY_DIR", "/srv/plans")
	assert.Equal(t, "/srv/plans", DefaultDataDir())
}

func TestDataDirMacOS(t *testing.T) {
	home, _ := os.UserHomeDir()
	dir := dataDirFor("darwin")
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "weekendly"), dir)
}

func TestDataDirLinux(t *testing.T) {
	home, _ := os.UserHomeDir()

	// Without XDG_DATA_HOME
	t.Setenv("XDG_DATA_HOME", "")
	dir := dataDirFor("linux")
	assert.Equal(t, filepath.Join(home, ".local", "share", "weekendly"), dir)

	// With XDG_DATA_HOME
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	dir = dataDirFor("linux")
	assert.Equal(t, filepath.Join("/custom/data", "weekendly"), dir)
}

func TestDataDirWindows(t *testing.T) {
	// With LOCALAPPDATA
	t.Setenv("LOCALAPPDATA", `C:\Users\test\AppData\Local`)
	dir := dataDirFor("windows")
	assert.Equal(t, filepath.Join(`C:\Users\test\AppData\Local`, "weekendly"), dir)

	// Without LOCALAPPDATA, with APPDATA
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("APPDATA", `C:\Users\test\AppData\Roaming`)
	dir = dataDirFor("windows")
	assert.Equal(t, filepath.Join(`C:\Users\test\AppData\Roaming`, "weekendly"), dir)
}
