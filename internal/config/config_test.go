package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringrace/internal/race"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, "desktop", GetString("frontend"))
	assert.Equal(t, race.DefaultTuning(), GetTuning())
	assert.Equal(t, WindowConfig{Width: 1280, Height: 800, Title: "Ring Race", VSync: true}, GetWindowConfig())
	assert.Equal(t, AudioConfig{Enabled: true, Volume: 0.58}, GetAudioConfig())
	assert.Equal(t, 16*time.Millisecond, GetHeadlessConfig().Step)
	assert.False(t, GetLoggingConfig().GraylogEnabled)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"seed": 42,
		"frontend": "terminal",
		"tuning": { "baseSpeed": 2.5, "pickupCount": 3, "maxStepMs": 0 },
		"window": { "width": 640 },
		"graylog": { "enabled": true, "address": "10.0.0.1:12201" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, "terminal", GetString("frontend"))
	assert.Equal(t, uint64(42), GetSeed())

	tu := GetTuning()
	assert.Equal(t, 2.5, tu.BaseSpeed)
	assert.Equal(t, 3, tu.PickupCount)
	assert.Zero(t, tu.MaxStep)
	assert.Equal(t, race.DefaultTuning().HalfWidth, tu.HalfWidth)

	assert.Equal(t, 640, GetWindowConfig().Width)
	assert.Equal(t, 800, GetWindowConfig().Height)

	lc := GetLoggingConfig()
	assert.True(t, lc.GraylogEnabled)
	assert.Equal(t, "10.0.0.1:12201", lc.GraylogAddress)
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0644))

	err := Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("RINGRACE_SEED", "7")
	t.Setenv("RINGRACE_TUNING_BASESPEED", "3.25")

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, uint64(7), GetSeed())
	assert.Equal(t, 3.25, GetTuning().BaseSpeed)
}

func TestGetSeed_FallsBackToClock(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, Load(t.TempDir()))

	assert.NotZero(t, GetSeed())
}
