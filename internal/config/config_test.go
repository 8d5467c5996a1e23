package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultFroggerConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFroggerConfig()) {
		t.Errorf("embedded YAML differs from DefaultFroggerConfig:\n%+v\n%+v", cfg, DefaultFroggerConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("cars:\n  count: 3\nstork:\n  enabled: false\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Cars.Count != 3 {
		t.Errorf("Cars.Count = %d, want 3", cfg.Cars.Count)
	}
	if cfg.Stork.Enabled {
		t.Error("stork should be disabled")
	}
	if cfg.Board.Width != 30 || cfg.Player.JumpDelayMs != 200 {
		t.Errorf("defaults lost: board width %d, jump delay %d", cfg.Board.Width, cfg.Player.JumpDelayMs)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *FroggerConfig)
		want   string
	}{
		{"zero width", func(c *FroggerConfig) { c.Board.Width = 0 }, "must be positive"},
		{"too large", func(c *FroggerConfig) { c.Board.Height = MaxBoardSize + 1 }, "exceeds"},
		{"no grid", func(c *FroggerConfig) { c.Board.Grid = nil }, "no grid"},
		{"short grid", func(c *FroggerConfig) { c.Board.Grid = c.Board.Grid[:5] }, "rows"},
		{"short row", func(c *FroggerConfig) { c.Board.Grid[3] = "RRR" }, "columns"},
		{"narrow with cars", func(c *FroggerConfig) { c.Board.Width = 5 }, "too narrow"},
		{"delay range", func(c *FroggerConfig) { c.Cars.MaxDelayMs = c.Cars.MinDelayMs - 1 }, "delay range"},
		{"categories over 100", func(c *FroggerConfig) {
			c.Cars.Categories = CategoriesConfig{Friendly: 70, Neutral: 40}
		}, "categories"},
		{"negative lanes", func(c *FroggerConfig) { c.Board.RoadLanes = -1 }, "road_lanes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFroggerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("error %T is not *config.Error", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestNarrowBoardWithoutCarsIsValid(t *testing.T) {
	cfg := DefaultFroggerConfig()
	cfg.Board.Width = 3
	cfg.Cars.Count = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  width: 8\n  height: 3\n  road_lanes: 0\n  grid:\n    - \"GGGGGGGG\"\n    - \"RRRRRRRR\"\n    - \"RRRRRRRR\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 3 || len(cfg.Board.Grid) != 3 {
		t.Errorf("board = %+v", cfg.Board)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(path)
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Load(missing) error = %v, want *config.Error", err)
	}
	if cerr.Source != path {
		t.Errorf("Source = %q, want %q", cerr.Source, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("error should wrap os.ErrNotExist")
	}
}

func TestLoadInvalidCustomPathCarriesSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  height: 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Source != path {
		t.Fatalf("Load error = %v, want *config.Error from %s", err, path)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("board: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"normal", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"classic", DifficultyClassic, true},
		{"nightmare", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultFroggerConfig()

	easy := DefaultFroggerConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Stork.Enabled {
		t.Error("easy should disable the stork")
	}
	if easy.Cars.MinDelayMs <= base.Cars.MinDelayMs {
		t.Error("easy should slow cars down")
	}

	hard := DefaultFroggerConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Cars.MaxDelayMs >= base.Cars.MaxDelayMs {
		t.Error("hard should speed cars up")
	}
	jump := hard.Player.JumpDelay()
	if hard.Stork.Delay(jump) >= base.Stork.Delay(jump) {
		t.Error("hard should speed the stork up")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	classic := DefaultFroggerConfig()
	ApplyPreset(&classic, DifficultyClassic)
	if classic.Stork.Enabled || classic.Cars.Categories.Hostile() != 100 {
		t.Errorf("classic = stork %v, hostile %d", classic.Stork.Enabled, classic.Cars.Categories.Hostile())
	}

	normal := DefaultFroggerConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}
}

func TestDurations(t *testing.T) {
	p := PlayerConfig{JumpDelayMs: 200, InvincibilityMs: 500}
	if p.JumpDelay() != 200*time.Millisecond || p.Invincibility() != 500*time.Millisecond {
		t.Errorf("durations = %v, %v", p.JumpDelay(), p.Invincibility())
	}
	if got := (StorkConfig{}).Delay(p.JumpDelay()); got != 400*time.Millisecond {
		t.Errorf("default stork delay = %v, want 400ms", got)
	}
	if got := (StorkConfig{DelayMs: 150}).Delay(p.JumpDelay()); got != 150*time.Millisecond {
		t.Errorf("stork delay = %v, want 150ms", got)
	}
}

func TestErrorFormatting(t *testing.T) {
	err := Errorf("bad value %d", 3)
	if err.Error() != "config: bad value 3" {
		t.Errorf("Error() = %q", err.Error())
	}
	err = withSource("a.yaml", errors.New("boom"))
	if err.Error() != "config a.yaml: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}
