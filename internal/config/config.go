// Package config provides YAML-based run configuration loading for
// the minebench CLI.
package config

import (
	"fmt"

	"github.com/vovakirdan/minebench/internal/game"
)

// RunConfig mirrors the CLI surface of an evaluation run.
type RunConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Run      RunOptions     `yaml:"run"`
	Observer ObserverConfig `yaml:"observer"`
	Storage  StorageConfig  `yaml:"storage"`
}

// BoardConfig selects a board: a named preset, or explicit dimensions
// when the preset is empty.
type BoardConfig struct {
	Preset string `yaml:"preset"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mines  int    `yaml:"mines"`
}

// Resolve turns the board selection into a validated game config.
func (b BoardConfig) Resolve() (game.Config, error) {
	if b.Preset != "" {
		cfg, ok := game.Preset(b.Preset)
		if !ok {
			return game.Config{}, fmt.Errorf("config: unknown board preset %q", b.Preset)
		}
		return cfg, nil
	}
	cfg := game.Config{Width: b.Width, Height: b.Height, Mines: b.Mines}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

// RunOptions tunes the harness.
type RunOptions struct {
	Games     int    `yaml:"games"`
	Seed      int64  `yaml:"seed"`       // board generation seed, 0 = time
	Bot       string `yaml:"bot"`        // registered bot id
	BotSeed   int64  `yaml:"bot_seed"`   // bot RNG seed, 0 = time
	OnInvalid string `yaml:"on_invalid"` // "continue" or "abort"
	MaxStall  int    `yaml:"max_stall"`
}

// ObserverConfig selects the presentation of a run.
type ObserverConfig struct {
	Mode    string `yaml:"mode"`     // "none", "console" or "step"
	DelayMS int    `yaml:"delay_ms"` // console pacing delay
}

// StorageConfig points at the results database.
type StorageConfig struct {
	Path string `yaml:"path"`
	Save bool   `yaml:"save"` // record runs by default
}

// Default returns the hardcoded fallback configuration.
func Default() RunConfig {
	return RunConfig{
		Board: BoardConfig{Preset: "beginner"},
		Run: RunOptions{
			Games:     100,
			Bot:       "random",
			OnInvalid: "continue",
			MaxStall:  32,
		},
		Observer: ObserverConfig{
			Mode:    "none",
			DelayMS: 200,
		},
		Storage: StorageConfig{
			Path: "~/.minebench/runs.db",
		},
	}
}
