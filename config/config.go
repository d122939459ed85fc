// Package config loads the optional vi-pong.toml settings file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
)

// DefaultPath is read when no -config flag is given; its absence is not an error
const DefaultPath = "vi-pong.toml"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the decoded settings file
// Physics constants live in parameter and are deliberately absent
type Config struct {
	Display DisplayConfig       `toml:"display"`
	Audio   AudioConfig         `toml:"audio"`
	Input   InputConfig         `toml:"input"`
	Keys    map[string][]string `toml:"keys"`
	Log     LogConfig           `toml:"log"`
}

type DisplayConfig struct {
	FPS       int  `toml:"fps"`
	ShowStats bool `toml:"show_stats"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type InputConfig struct {
	// HoldTimeout accepts duration strings ("120ms")
	HoldTimeout time.Duration `toml:"hold_timeout"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			FPS: parameter.FrameRate,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioDefaultVolume,
		},
		Input: InputConfig{
			HoldTimeout: parameter.HoldTimeout,
		},
	}
}

// Load decodes path over Default and validates the result
// An empty path, or a missing file at DefaultPath, yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges; key bindings are checked by KeyTable
func (c *Config) Validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("display.fps %d out of range 1..240: %w", c.Display.FPS, ErrInvalidConfig)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v out of range 0..1: %w", c.Audio.Volume, ErrInvalidConfig)
	}
	if c.Input.HoldTimeout <= 0 {
		return fmt.Errorf("input.hold_timeout must be positive: %w", ErrInvalidConfig)
	}
	return nil
}

// FrameInterval converts display.fps to a render period
func (c *Config) FrameInterval() time.Duration {
	if c.Display.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Display.FPS)
}

// KeyTable returns the default bindings with [keys] overrides merged in
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, err := input.ParseBindings(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(base, override), nil
}

// Save writes c as TOML
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
