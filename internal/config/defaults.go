package config

import (
	_ "embed"
	"runtime"
)

//go:embed defaults/advent.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		InputDir: "input/2024",
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
		Watch: WatchConfig{
			TickRate: 30,
			MaxSteps: 0,
		},
		Bench: BenchConfig{
			Iterations: 100,
		},
	}
}
