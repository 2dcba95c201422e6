package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config shapes the demo window and frame loop. Unknown fields are an
// error so config typos surface instead of silently using defaults.
type Config struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	ClearColor string  `yaml:"clear_color"`
	Pulse      bool    `yaml:"pulse"`
	Triangle   bool    `yaml:"triangle"`
	MaxSeconds float64 `yaml:"max_seconds"`
}

// palette is the set of clear colors the config accepts by name.
var palette = map[string][4]float32{
	"white":     {1, 1, 1, 1},
	"black":     {0, 0, 0, 1},
	"red":       {1, 0, 0, 1},
	"green":     {0, 1, 0, 1},
	"blue":      {0, 0, 1, 1},
	"magenta":   {1, 0, 1, 1},
	"cyan":      {0, 1, 1, 1},
	"yellow":    {1, 1, 0, 1},
	"gray":      {0.5, 0.5, 0.5, 1},
	"dark-gray": {0.08, 0.10, 0.12, 1},
}

func DefaultConfig() Config {
	return Config{
		Title:      "rill-glfw sandbox",
		Width:      1280,
		Height:     720,
		ClearColor: "dark-gray",
		Pulse:      true,
		Triangle:   true,
	}
}

// LoadConfig reads path over the defaults. A missing file is not an
// error; the defaults run as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Width, c.Height)
	}
	if _, ok := palette[c.ClearColor]; !ok {
		return fmt.Errorf("unknown clear_color %q", c.ClearColor)
	}
	if c.MaxSeconds < 0 {
		return fmt.Errorf("max_seconds must not be negative")
	}
	return nil
}
