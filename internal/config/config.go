package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWonder = "lorenz"
	DefaultWidth  = 1280
	DefaultHeight = 800
	DefaultFPS    = 60
	DefaultFrames = 120
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Wonder string `yaml:"wonder"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	// Frames is the number of ticks run by headless commands.
	Frames int   `yaml:"frames"`
	Seed   int64 `yaml:"seed"`
	// Params holds per-wonder parameter overrides keyed by wonder id.
	Params map[string]map[string]float64 `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Wonder: DefaultWonder,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		FPS:    DefaultFPS,
		Frames: DefaultFrames,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.FPS <= 0 || c.FPS > 240:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	case c.Wonder == "":
		return fmt.Errorf("%w: empty wonder", ErrInvalid)
	}
	return nil
}

// ParamsFor returns a copy of the overrides for one wonder.
func (c *Config) ParamsFor(id string) map[string]float64 {
	out := make(map[string]float64, len(c.Params[id]))
	for k, v := range c.Params[id] {
		out[k] = v
	}
	return out
}

func (c *Config) SetParam(id, name string, value float64) {
	if c.Params == nil {
		c.Params = make(map[string]map[string]float64)
	}
	if c.Params[id] == nil {
		c.Params[id] = make(map[string]float64)
	}
	c.Params[id][name] = value
}

// ApplyPreset merges a named preset into the overrides for id. Values
// already set are replaced.
func (c *Config) ApplyPreset(id, preset string) error {
	p, err := GetPreset(id, preset)
	if err != nil {
		return err
	}
	for k, v := range p {
		c.SetParam(id, k, v)
	}
	return nil
}

// ParseParam splits a "name=value" flag argument.
func ParseParam(s string) (string, float64, error) {
	name, raw, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", 0, fmt.Errorf("%w: parameter %q, want name=value", ErrInvalid, s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: parameter %q: %v", ErrInvalid, s, err)
	}
	return strings.ToLower(name), v, nil
}
