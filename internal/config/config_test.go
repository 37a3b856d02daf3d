package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points both config locations at empty temp dirs so tests
// never pick up the developer's real config.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cwd := t.TempDir()
	t.Chdir(cwd)
	return cwd
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Icons)
	assert.Equal(t, 1.0, cfg.Volume)
	assert.Equal(t, 5, cfg.SeekStep)
}

func TestLoad_ReadsFile(t *testing.T) {
	cwd := isolate(t)
	writeConfig(t, cwd, "icons = \"ascii\"\nvolume = 0.5\nseek_step = 10\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ascii", cfg.Icons)
	assert.Equal(t, 0.5, cfg.Volume)
	assert.Equal(t, 10, cfg.SeekStep)
}

func TestLoad_LocalFileWinsOverXDG(t *testing.T) {
	cwd := isolate(t)

	xdgDir := filepath.Join(xdg.ConfigHome, appName)
	require.NoError(t, os.MkdirAll(xdgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdgDir, "config.toml"),
		[]byte("icons = \"nerd\"\nvolume = 0.25\n"), 0o644))

	writeConfig(t, cwd, "icons = \"unicode\"\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "unicode", cfg.Icons)
	// Keys the local file does not set still come from the XDG file.
	assert.Equal(t, 0.25, cfg.Volume)
}

func TestLoad_ClampsValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		volume   float64
		seekStep int
	}{
		{"volume above max", "volume = 9.0\n", 2.0, 5},
		{"negative volume", "volume = -1.0\n", 0, 5},
		{"zero seek step", "seek_step = 0\n", 1.0, 5},
		{"negative seek step", "seek_step = -3\n", 1.0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cwd := isolate(t)
			writeConfig(t, cwd, tt.contents)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.volume, cfg.Volume)
			assert.Equal(t, tt.seekStep, cfg.SeekStep)
		})
	}
}

func TestLoad_BadTOML(t *testing.T) {
	cwd := isolate(t)
	writeConfig(t, cwd, "volume = [not toml\n")

	_, err := Load()
	assert.Error(t, err)
}

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0o644))
}
