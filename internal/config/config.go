// Package config provides YAML-based configuration loading for the
// puzzle runner.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Config contains all runner settings.
type Config struct {
	InputDir string      `yaml:"input_dir"`
	Workers  int         `yaml:"workers"`
	LogLevel string      `yaml:"log_level"`
	Watch    WatchConfig `yaml:"watch"`
	Bench    BenchConfig `yaml:"bench"`
}

// WatchConfig tunes the animated patrol view.
type WatchConfig struct {
	TickRate int `yaml:"tick_rate"` // Walker steps per second
	MaxSteps int `yaml:"max_steps"` // Stop animating after this many steps (0 = unlimited)
}

// BenchConfig tunes the bench command.
type BenchConfig struct {
	Iterations int `yaml:"iterations"`
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir must not be empty")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Watch.TickRate <= 0 || c.Watch.TickRate > 240 {
		return fmt.Errorf("watch.tick_rate must be in 1..240, got %d", c.Watch.TickRate)
	}
	if c.Watch.MaxSteps < 0 {
		return fmt.Errorf("watch.max_steps must be >= 0, got %d", c.Watch.MaxSteps)
	}
	if c.Bench.Iterations <= 0 {
		return fmt.Errorf("bench.iterations must be > 0, got %d", c.Bench.Iterations)
	}
	return nil
}
