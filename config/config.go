// Package config loads game settings from an optional YAML file with environment overrides
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/popit/constants"
	"github.com/lixenwraith/popit/engine"
)

// Config holds all application configuration
type Config struct {
	Game  GameConfig  `mapstructure:"game"`
	Audio AudioConfig `mapstructure:"audio"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
}

// GameConfig holds round timing
type GameConfig struct {
	RoundStartSeconds   int           `mapstructure:"round_start_seconds"`
	PhaseAdvanceSeconds int           `mapstructure:"phase_advance_seconds"`
	IdleSeconds         int           `mapstructure:"idle_seconds"`
	AdvanceDelay        time.Duration `mapstructure:"advance_delay"`
	TickInterval        time.Duration `mapstructure:"tick_interval"`
}

// AudioConfig holds sound cue output settings
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// UIConfig holds terminal rendering settings
type UIConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // Empty disables file logging unless --debug
}

// Load reads configuration from file and environment variables
// It looks for config.yaml in configPath, the working directory and ./config
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// e.g., GAME_ROUND_START_SECONDS, AUDIO_ENABLED, LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, defaults and env cover every key
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("game.round_start_seconds", constants.RoundStartSeconds)
	v.SetDefault("game.phase_advance_seconds", constants.PhaseAdvanceSeconds)
	v.SetDefault("game.idle_seconds", constants.IdleSeconds)
	v.SetDefault("game.advance_delay", constants.AdvanceDelay.String())
	v.SetDefault("game.tick_interval", constants.ClockTickInterval.String())

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", constants.DefaultAudioVolume)

	v.SetDefault("ui.frame_interval", constants.FrameUpdateInterval.String())

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Validate rejects values the engine cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Game.RoundStartSeconds <= 0:
		return fmt.Errorf("%w: game.round_start_seconds must be positive, got %d", ErrInvalidConfig, c.Game.RoundStartSeconds)
	case c.Game.PhaseAdvanceSeconds <= 0:
		return fmt.Errorf("%w: game.phase_advance_seconds must be positive, got %d", ErrInvalidConfig, c.Game.PhaseAdvanceSeconds)
	case c.Game.IdleSeconds < 0:
		return fmt.Errorf("%w: game.idle_seconds must not be negative, got %d", ErrInvalidConfig, c.Game.IdleSeconds)
	case c.Game.AdvanceDelay <= 0:
		return fmt.Errorf("%w: game.advance_delay must be positive, got %s", ErrInvalidConfig, c.Game.AdvanceDelay)
	case c.Game.TickInterval <= 0:
		return fmt.Errorf("%w: game.tick_interval must be positive, got %s", ErrInvalidConfig, c.Game.TickInterval)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalidConfig, c.Audio.Volume)
	case c.UI.FrameInterval <= 0:
		return fmt.Errorf("%w: ui.frame_interval must be positive, got %s", ErrInvalidConfig, c.UI.FrameInterval)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Settings converts the game section to engine settings
func (c *Config) Settings() engine.Settings {
	return engine.Settings{
		RoundStartSeconds:   c.Game.RoundStartSeconds,
		PhaseAdvanceSeconds: c.Game.PhaseAdvanceSeconds,
		IdleSeconds:         c.Game.IdleSeconds,
		TickInterval:        c.Game.TickInterval,
		AdvanceDelay:        c.Game.AdvanceDelay,
	}
}

// LogLevel returns the parsed log level, Validate guarantees it parses
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
