package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Force the embedded tier by pointing at no custom file and running
	// from a directory without configs/.
	t.Chdir(t.TempDir())

	cfg, err := LoadGolf("")
	require.NoError(t, err)
	assert.Equal(t, DefaultGolfConfig(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"power:\n  min_speed_f10: 20\n  max_speed_f10: 90\ntheme: gray\n"), 0o644))

	cfg, err := LoadGolf(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Power.MinSpeedF10)
	assert.Equal(t, 90, cfg.Power.MaxSpeedF10)
	assert.Equal(t, ThemeGray, cfg.Theme)
	// Unset fields backfill from defaults.
	assert.Equal(t, DefaultGolfConfig().Aim.StepWD, cfg.Aim.StepWD)
	assert.Equal(t, DefaultGolfConfig().Power.SweepMS, cfg.Power.SweepMS)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "inverted.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"power:\n  min_speed_f10: 90\n  max_speed_f10: 20\n"), 0o644))
	_, err := LoadGolf(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: plaid\n"), 0o644))
	_, err = LoadGolf(path)
	assert.Error(t, err)

	_, err = LoadGolf(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadClampsTinySweep(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"power:\n  sweep_ms: 1\n"), 0o644))

	cfg, err := LoadGolf(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultGolfConfig().Power.SweepMS, cfg.Power.SweepMS)
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("")
	require.NoError(t, err)
	assert.Equal(t, ThemeGreen, th)

	th, err = ParseTheme("gray")
	require.NoError(t, err)
	assert.Equal(t, ThemeGray, th)

	_, err = ParseTheme("sepia")
	assert.Error(t, err)
}
