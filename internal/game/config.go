// Package game implements the minesweeper board, move resolution and
// the single-game state machine. It contains no external dependencies
// (especially no Bubble Tea) to keep the engine pure and testable.
package game

import "sort"

// Config describes the board for one game. It is immutable once a
// game has started.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// Validate checks the board dimensions and mine count.
// The mine count must leave at least one safe square.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "width", Value: c.Width, Reason: "must be positive"}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "height", Value: c.Height, Reason: "must be positive"}
	}
	if c.Mines < 0 {
		return &ConfigError{Field: "mines", Value: c.Mines, Reason: "must not be negative"}
	}
	if c.Mines >= c.Width*c.Height {
		return &ConfigError{Field: "mines", Value: c.Mines, Reason: "must be less than width*height"}
	}
	return nil
}

// Squares returns the total number of squares on the board.
func (c Config) Squares() int {
	return c.Width * c.Height
}

// Standard board presets. These are data, not behavior: any valid
// width/height/mines combination plays the same way.
var presets = map[string]Config{
	"beginner":     {Width: 8, Height: 8, Mines: 10},
	"intermediate": {Width: 16, Height: 16, Mines: 40},
	"expert":       {Width: 30, Height: 16, Mines: 99},
}

// Preset looks up a standard board by name.
func Preset(name string) (Config, bool) {
	cfg, ok := presets[name]
	return cfg, ok
}

// MustPreset looks up a standard board by name and panics when the
// name is unknown. For use with the compiled-in preset names.
func MustPreset(name string) Config {
	cfg, ok := presets[name]
	if !ok {
		panic("game: unknown preset " + name)
	}
	return cfg
}

// PresetNames returns the known preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
