package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte(`
board:
  width: 10
  height: 12
  mines: 14
run:
  games: 5
  bot: counter
  seed: 77
observer:
  mode: console
  delay_ms: 50
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 12 || cfg.Board.Mines != 14 {
		t.Errorf("board not parsed: %+v", cfg.Board)
	}
	if cfg.Run.Games != 5 || cfg.Run.Bot != "counter" || cfg.Run.Seed != 77 {
		t.Errorf("run options not parsed: %+v", cfg.Run)
	}
	if cfg.Observer.Mode != "console" || cfg.Observer.DelayMS != 50 {
		t.Errorf("observer not parsed: %+v", cfg.Observer)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	// Run from a temp dir and home so no local configs interfere.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("Chdir() back failed: %v", err)
		}
	})
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Run.Games <= 0 {
		t.Errorf("default games should be positive, got %d", cfg.Run.Games)
	}
	if cfg.Run.Bot == "" {
		t.Error("default bot should be set")
	}
	if _, err := cfg.Board.Resolve(); err != nil {
		t.Errorf("default board should resolve: %v", err)
	}
}

func TestBoardResolve(t *testing.T) {
	if _, err := (BoardConfig{Preset: "beginner"}).Resolve(); err != nil {
		t.Errorf("preset should resolve: %v", err)
	}
	if _, err := (BoardConfig{Preset: "nightmare"}).Resolve(); err == nil {
		t.Error("unknown preset should fail")
	}
	if _, err := (BoardConfig{Width: 5, Height: 5, Mines: 4}).Resolve(); err != nil {
		t.Errorf("explicit dimensions should resolve: %v", err)
	}
	if _, err := (BoardConfig{Width: 0, Height: 5, Mines: 4}).Resolve(); err == nil {
		t.Error("invalid dimensions should fail")
	}
}
