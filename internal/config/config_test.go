package config

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/sim"
)

const smallMaze = `id: small
name: Small
layout:
  - "#####"
  - "#P..#"
  - "#.#.#"
  - "#...#"
  - "#####"
adversaries:
  - {col: 3, row: 3, dir: left}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestPresetsLoadAndBuild(t *testing.T) {
	ids := Presets()
	want := []string{"classic", "compact", "turbo"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Fatalf("Presets() = %v, want %v", ids, want)
	}

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	for _, id := range ids {
		cfg, err := Load(id, "")
		if err != nil {
			t.Fatalf("Load(%q): %v", id, err)
		}
		if cfg.ID != id {
			t.Errorf("Load(%q).ID = %q", id, cfg.ID)
		}
		g, err := cfg.NewGame(rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("%s: NewGame: %v", id, err)
		}
		if g.Status() != sim.StatusRunning {
			t.Errorf("%s: new game status = %v", id, g.Status())
		}
		if g.Grid().ItemsLeft() == 0 {
			t.Errorf("%s: maze has no items", id)
		}
	}
}

func TestClassicMatchesSourceGeometry(t *testing.T) {
	data, err := presetData("classic")
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	l, err := cfg.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if l.Grid.W() != 20 || l.Grid.H() != 15 {
		t.Errorf("classic is %dx%d, want 20x15", l.Grid.W(), l.Grid.H())
	}
	if cfg.CellSize != 20 || cfg.Speed != 5 || cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("classic timing = cell %d speed %d tick %v", cfg.CellSize, cfg.Speed, cfg.TickInterval())
	}
	if len(cfg.Adversaries) != 4 {
		t.Errorf("classic has %d adversaries, want 4", len(cfg.Adversaries))
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(smallMaze))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.CellSize != DefaultCellSize {
		t.Errorf("CellSize = %d, want %d", cfg.CellSize, DefaultCellSize)
	}
	if cfg.Speed != DefaultSpeed {
		t.Errorf("Speed = %d, want %d", cfg.Speed, DefaultSpeed)
	}
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 100ms", cfg.TickInterval())
	}
	if cfg.AgentDir != "right" {
		t.Errorf("AgentDir = %q, want right", cfg.AgentDir)
	}
	if cfg.Item.Rune('?') != '·' {
		t.Errorf("item rune = %q", cfg.Item.Rune('?'))
	}
	if cfg.Trail.Rune(' ') != ' ' {
		t.Errorf("trail rune = %q, want blank", cfg.Trail.Rune(' '))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		invalid bool
	}{
		{"missing id", [2]string{"id: small", "id: \"\""}, true},
		{"ragged layout", [2]string{`"#.#.#"`, `"#.#."`}, true},
		{"two spawns", [2]string{`"#.#.#"`, `"#P#.#"`}, true},
		{"speed not dividing cell", [2]string{"name: Small", "name: Small\nspeed: 7"}, true},
		{"adversary on wall", [2]string{"col: 3, row: 3", "col: 2, row: 2"}, true},
		{"adversary off grid", [2]string{"col: 3, row: 3", "col: 9, row: 3"}, true},
		{"unknown direction", [2]string{"dir: left", "dir: sideways"}, true},
		{"no adversaries", [2]string{"  - {col: 3, row: 3, dir: left}\n", ""}, true},
		{"unknown color", [2]string{"name: Small", "name: Small\nitem: {color: plaid}"}, true},
		{"bad yaml", [2]string{"layout:", "layout: ["}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := strings.Replace(smallMaze, tc.replace[0], tc.replace[1], 1)
			if data == smallMaze {
				t.Fatalf("replacement %q did not apply", tc.replace[0])
			}
			_, err := Parse([]byte(data))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if got := errors.Is(err, ErrInvalid); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v for %v", got, err)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	user := strings.Replace(smallMaze, "id: small", "id: classic", 1)
	user = strings.Replace(user, "name: Small", "name: From Home", 1)
	writeFile(t, filepath.Join(home, ".maze", "mazes", "classic.yaml"), user)

	local := strings.Replace(smallMaze, "id: small", "id: compact", 1)
	local = strings.Replace(local, "name: Small", "name: From Workdir", 1)
	writeFile(t, filepath.Join(work, "mazes", "compact.yaml"), local)
	writeFile(t, filepath.Join(work, "mazes", "classic.yaml"), local)

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, smallMaze)

	tests := []struct {
		id, custom string
		wantName   string
	}{
		{"classic", "", "From Home"},
		{"compact", "", "From Workdir"},
		{"turbo", "", "Turbo"},
		{"classic", custom, "Small"},
	}
	for _, tc := range tests {
		cfg, err := Load(tc.id, tc.custom)
		if err != nil {
			t.Fatalf("Load(%q, %q): %v", tc.id, tc.custom, err)
		}
		if cfg.Name != tc.wantName {
			t.Errorf("Load(%q, %q).Name = %q, want %q", tc.id, tc.custom, cfg.Name, tc.wantName)
		}
	}

	if _, err := Load("nope", ""); !errors.Is(err, ErrUnknownMaze) {
		t.Errorf("Load(nope) error = %v, want ErrUnknownMaze", err)
	}
	if _, err := Load("classic", filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("Load with missing custom path succeeded")
	}
}

func TestLoadRejectsBrokenOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	writeFile(t, filepath.Join(home, ".maze", "mazes", "classic.yaml"), "id: classic\nlayout: []\n")

	_, err := Load("classic", "")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load error = %v, want ErrInvalid", err)
	}
}

func TestGridIsFreshPerCall(t *testing.T) {
	cfg, err := Parse([]byte(smallMaze))
	if err != nil {
		t.Fatal(err)
	}
	a, err := cfg.Grid()
	if err != nil {
		t.Fatal(err)
	}
	b, err := cfg.Grid()
	if err != nil {
		t.Fatal(err)
	}

	before := b.Grid.ItemsLeft()
	if err := a.Grid.SetTile(2+1*5, maze.TileEmpty); err != nil {
		t.Fatalf("SetTile: %v", err)
	}
	if b.Grid.ItemsLeft() != before {
		t.Error("grids returned by Grid() share tiles")
	}
}
