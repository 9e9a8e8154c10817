package config

import (
	"strconv"
	"time"

	"github.com/faryon93/fbdisp/internal/errors"
	"github.com/faryon93/fbdisp/internal/presenter"
)

const (
	// Title is the fixed window title.
	Title = "fbdisp"

	DefaultScale    = 1
	DefaultInterval = presenter.DefaultInterval
)

// Config holds all runtime configuration.
type Config struct {
	DevicePath string
	Scale      int
	Interval   time.Duration
	Title      string
	Debug      bool
}

// Default returns a Config with every optional value set.
func Default() *Config {
	return &Config{
		Scale:    DefaultScale,
		Interval: DefaultInterval,
		Title:    Title,
	}
}

// ParseArgs fills the positional values: <device-path> [scale].
func (c *Config) ParseArgs(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.Errorf("expected <device-path> [scale], got %d argument(s)", len(args))
	}
	c.DevicePath = args[0]
	if len(args) == 2 {
		scale, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Errorf("invalid scale %q: not an integer", args[1])
		}
		c.Scale = scale
	}
	return c.Validate()
}

// Validate checks the values a window and a frame loop can be built from.
func (c *Config) Validate() error {
	if c.DevicePath == "" {
		return errors.New("device path is required")
	}
	if c.Scale < 1 {
		return errors.Errorf("invalid scale %d: must be a positive integer", c.Scale)
	}
	if c.Interval <= 0 {
		return errors.Errorf("invalid interval %s: must be positive", c.Interval)
	}
	return nil
}
