// Package config resolves game settings from defaults, an optional YAML file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds all runtime settings
type Config struct {
	TickInterval time.Duration     `yaml:"tick"`
	Seed         int64             `yaml:"seed"` // 0 = seeded from the clock
	Sound        bool              `yaml:"sound"`
	LogFile      string            `yaml:"log"` // Empty discards logs
	Verbose      bool              `yaml:"verbose"`
	Height       int               `yaml:"height"`
	Width        int               `yaml:"width"`
	Keys         map[string]string `yaml:"keys"` // Key name -> action overrides
}

// Default returns the classic 20x60 board at 120ms with sound on
func Default() Config {
	return Config{
		TickInterval: constants.TickInterval,
		Sound:        true,
		Height:       constants.BoardHeight,
		Width:        constants.BoardWidth,
	}
}

// Load applies defaults, then the YAML file at path if non-empty, then env overrides, and validates
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays fields present in the YAML file onto c
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return nil
}

// ApplyEnv overlays VI_SNAKE_TICK_MS and VI_SNAKE_SEED
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("VI_SNAKE_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: VI_SNAKE_TICK_MS=%q", ErrInvalid, v)
		}
		c.TickInterval = time.Duration(ms) * time.Millisecond
	}

	if v := os.Getenv("VI_SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: VI_SNAKE_SEED=%q", ErrInvalid, v)
		}
		c.Seed = seed
	}

	return nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalid, c.TickInterval)
	}
	if c.Height < constants.MinBoardSide || c.Width < constants.MinBoardSide {
		return fmt.Errorf("%w: board %dx%d below minimum %d", ErrInvalid, c.Height, c.Width, constants.MinBoardSide)
	}
	return nil
}

// ResolveSeed returns the configured seed, or a clock-derived one when unset
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
