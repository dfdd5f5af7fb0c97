package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/popit/engine"
)

// chdirTemp moves into an empty directory so no stray config.yaml is picked up
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := chdirTemp(t)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, engine.DefaultSettings(), cfg.Settings())
	assert.True(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.3, cfg.Audio.Volume, 1e-9)
	assert.Equal(t, 16*time.Millisecond, cfg.UI.FrameInterval)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
	assert.Empty(t, cfg.Log.File)
}

func TestLoadFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := []byte(`game:
  round_start_seconds: 8
  advance_delay: 1500ms
audio:
  enabled: false
log:
  level: debug
  file: logs/custom.log
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Game.RoundStartSeconds)
	assert.Equal(t, 4, cfg.Game.PhaseAdvanceSeconds, "unset keys keep defaults")
	assert.Equal(t, 1500*time.Millisecond, cfg.Game.AdvanceDelay)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
	assert.Equal(t, "logs/custom.log", cfg.Log.File)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("GAME_PHASE_ADVANCE_SECONDS", "7")
	t.Setenv("AUDIO_VOLUME", "0.8")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Game.PhaseAdvanceSeconds)
	assert.InDelta(t, 0.8, cfg.Audio.Volume, 1e-9)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel())
}

func TestLoadMalformedFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("game: [unclosed"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("GAME_ROUND_START_SECONDS", "0")

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Game: GameConfig{
				RoundStartSeconds:   5,
				PhaseAdvanceSeconds: 4,
				AdvanceDelay:        2 * time.Second,
				TickInterval:        time.Second,
			},
			Audio: AudioConfig{Enabled: true, Volume: 0.3},
			UI:    UIConfig{FrameInterval: 16 * time.Millisecond},
			Log:   LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero round start", func(c *Config) { c.Game.RoundStartSeconds = 0 }},
		{"negative phase advance", func(c *Config) { c.Game.PhaseAdvanceSeconds = -1 }},
		{"negative idle", func(c *Config) { c.Game.IdleSeconds = -1 }},
		{"zero advance delay", func(c *Config) { c.Game.AdvanceDelay = 0 }},
		{"zero tick", func(c *Config) { c.Game.TickInterval = 0 }},
		{"volume above one", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"zero frame interval", func(c *Config) { c.UI.FrameInterval = 0 }},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}
