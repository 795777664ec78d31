package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

const (
	DriverWindow   = "window"
	DriverTerminal = "terminal"
)

// ErrInvalidConfig is returned by Validate for values the game cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	ScreenWidth    int    `json:"screen_width"`
	ScreenHeight   int    `json:"screen_height"`
	TicksPerSecond int    `json:"ticks_per_second"`
	TicksPerStep   int    `json:"ticks_per_step"`
	InitMode       string `json:"init_mode"`
	Seed           int64  `json:"seed"`
	StartRunning   bool   `json:"start_running"`
	MaxGenerations uint64 `json:"max_generations"`
	Title          string `json:"title"`
	Driver         string `json:"driver"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          32,
		Height:         32,
		ScreenWidth:    640,
		ScreenHeight:   640,
		TicksPerSecond: 60,
		TicksPerStep:   30, // two generations per second
		InitMode:       "empty",
		Seed:           0, // time based
		StartRunning:   false,
		MaxGenerations: 0, // unlimited
		Title:          "Game of Life",
		Driver:         DriverWindow,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid values in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values the drivers depend on
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.ScreenWidth < c.Width || c.ScreenHeight < c.Height:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] screen %dx%d smaller than grid %dx%d",
			c.ScreenWidth, c.ScreenHeight, c.Width, c.Height)
	case c.TicksPerSecond <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] ticks_per_second must be positive, got %d", c.TicksPerSecond)
	case c.TicksPerStep <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] ticks_per_step must be positive, got %d", c.TicksPerStep)
	}
	switch c.Driver {
	case DriverWindow, DriverTerminal:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown driver %q", c.Driver)
	}
	return nil
}
