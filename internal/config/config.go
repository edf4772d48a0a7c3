package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Button dimensions
	ButtonWidth  = 110
	ButtonHeight = 32
	ButtonX      = 20
	ButtonY      = 36
	ButtonGap    = 10

	// Speed slider
	SliderX      = 20
	SliderY      = ButtonY + ButtonHeight + 16
	SliderWidth  = 240
	SliderHeight = 10

	// Bar area
	BarAreaTop    = SliderY + 40
	BarAreaBottom = WindowHeight - 50
	BarMaxWidth   = 48
	BarGapRatio   = 0.25

	// Tone synthesis
	SampleRate   = 44100
	ToneDuration = 60 * time.Millisecond
	ToneLowHz    = 220.0
	ToneHighHz   = 880.0
	ToneQueue    = 16
	ToneVolume   = 0.2
)

// Config is the user-tunable part of the visualizer.
type Config struct {
	Algorithm   string        `yaml:"algorithm"`
	Size        int           `yaml:"size"`
	MaxValue    int           `yaml:"max_value"`
	Values      []float64     `yaml:"values,omitempty"`
	Interval    time.Duration `yaml:"interval"`
	MinInterval time.Duration `yaml:"min_interval"`
	MaxInterval time.Duration `yaml:"max_interval"`
	Sound       bool          `yaml:"sound"`
	Seed        int64         `yaml:"seed,omitempty"`
}

// Default mirrors the classic setup: 15 random bars below 250, bubble sort,
// one tick every 200ms.
func Default() Config {
	return Config{
		Algorithm:   "Bubble Sort",
		Size:        15,
		MaxValue:    250,
		Interval:    200 * time.Millisecond,
		MinInterval: 10 * time.Millisecond,
		MaxInterval: 1000 * time.Millisecond,
		Sound:       true,
	}
}

// Parse overlays YAML onto the defaults. Keys absent from data keep their
// default value.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML file. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Validate rejects settings the visualizer cannot honor.
func (c Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("invalid config: size %d is negative", c.Size)
	}
	if c.MaxValue < 1 {
		return fmt.Errorf("invalid config: max_value %d must be positive", c.MaxValue)
	}
	if c.MinInterval <= 0 || c.MaxInterval <= 0 {
		return fmt.Errorf("invalid config: interval bounds must be positive")
	}
	if c.MinInterval > c.MaxInterval {
		return fmt.Errorf("invalid config: min_interval %v exceeds max_interval %v", c.MinInterval, c.MaxInterval)
	}
	if c.Interval < c.MinInterval || c.Interval > c.MaxInterval {
		return fmt.Errorf("invalid config: interval %v outside [%v, %v]", c.Interval, c.MinInterval, c.MaxInterval)
	}
	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
