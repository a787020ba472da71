// Package config provides YAML-based maze definitions, the embedded presets
// and the file search order used to load them.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/sim"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid maze")

// MazeConfig is one maze definition as written in a YAML file.
type MazeConfig struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	CellSize    int           `yaml:"cell_size"`
	TickMS      int           `yaml:"tick_ms"`
	Speed       int           `yaml:"speed"` // World units per tick
	AgentDir    string        `yaml:"agent_dir"`
	Layout      []string      `yaml:"layout"`
	Adversaries []SpawnConfig `yaml:"adversaries"`
	Item        GlyphConfig   `yaml:"item"`
	Trail       GlyphConfig   `yaml:"trail"` // Drawn on consumed cells; blank when unset
}

// SpawnConfig places an adversary on a grid cell.
type SpawnConfig struct {
	Col int    `yaml:"col"`
	Row int    `yaml:"row"`
	Dir string `yaml:"dir"`
}

// GlyphConfig describes how a tile is drawn.
type GlyphConfig struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Rune returns the first rune of the glyph, or fallback when unset.
func (g GlyphConfig) Rune(fallback rune) rune {
	if g.Glyph == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(g.Glyph)
	return r
}

// ParsedColor returns the glyph color. Unknown names have already been
// rejected by Validate.
func (g GlyphConfig) ParsedColor() core.Color {
	c, _ := core.ParseColor(g.Color)
	return c
}

// Defaults for fields a maze file may omit.
const (
	DefaultCellSize = 20
	DefaultTickMS   = 100
	DefaultSpeed    = 5
	DefaultAgentDir = "right"
	DefaultItem     = "·"
)

func (c *MazeConfig) applyDefaults() {
	if c.CellSize == 0 {
		c.CellSize = DefaultCellSize
	}
	if c.TickMS == 0 {
		c.TickMS = DefaultTickMS
	}
	if c.Speed == 0 {
		c.Speed = DefaultSpeed
	}
	if c.AgentDir == "" {
		c.AgentDir = DefaultAgentDir
	}
	if c.Item.Glyph == "" {
		c.Item.Glyph = DefaultItem
	}
	if c.Item.Color == "" {
		c.Item.Color = "yellow"
	}
	if c.Name == "" {
		c.Name = c.ID
	}
}

// Validate checks everything a game needs before it can be built from c.
func (c MazeConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %d must be positive", ErrInvalid, c.CellSize)
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms %d must be positive", ErrInvalid, c.TickMS)
	}
	if c.Speed <= 0 || c.Speed > c.CellSize || c.CellSize%c.Speed != 0 {
		return fmt.Errorf("%w: speed %d must divide cell_size %d", ErrInvalid, c.Speed, c.CellSize)
	}
	if _, err := sim.ParseHeading(c.AgentDir); err != nil {
		return fmt.Errorf("%w: agent_dir: %v", ErrInvalid, err)
	}

	l, err := maze.ParseLayout(c.Layout, c.CellSize)
	if err != nil {
		return fmt.Errorf("%w: layout: %v", ErrInvalid, err)
	}

	if len(c.Adversaries) == 0 {
		return fmt.Errorf("%w: at least one adversary is required", ErrInvalid)
	}
	for i, a := range c.Adversaries {
		if _, err := sim.ParseHeading(a.Dir); err != nil {
			return fmt.Errorf("%w: adversary %d: %v", ErrInvalid, i, err)
		}
		if !spawnable(l.Grid, a.Col, a.Row) {
			return fmt.Errorf("%w: adversary %d: cell (%d, %d) is not a path cell", ErrInvalid, i, a.Col, a.Row)
		}
	}

	if _, ok := core.ParseColor(c.Item.Color); !ok {
		return fmt.Errorf("%w: item: unknown color %q", ErrInvalid, c.Item.Color)
	}
	if _, ok := core.ParseColor(c.Trail.Color); !ok {
		return fmt.Errorf("%w: trail: unknown color %q", ErrInvalid, c.Trail.Color)
	}
	return nil
}

func spawnable(g *maze.Grid, col, row int) bool {
	if col < 0 || col >= g.W() || row < 0 || row >= g.H() {
		return false
	}
	t, err := g.TileAt(col + row*g.W())
	return err == nil && t.Passable()
}

// TickInterval returns the fixed duration between ticks.
func (c MazeConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Grid parses the layout into a fresh grid. Every call returns a new grid,
// so restarted games never share consumed tiles.
func (c MazeConfig) Grid() (maze.Layout, error) {
	l, err := maze.ParseLayout(c.Layout, c.CellSize)
	if err != nil {
		return maze.Layout{}, fmt.Errorf("config: %s: %w", c.ID, err)
	}
	return l, nil
}

// Options builds simulation options on a fresh grid.
func (c MazeConfig) Options(rng sim.RandSource) (sim.Options, error) {
	l, err := c.Grid()
	if err != nil {
		return sim.Options{}, err
	}
	agentDir, err := sim.ParseHeading(c.AgentDir)
	if err != nil {
		return sim.Options{}, fmt.Errorf("config: %s: %w", c.ID, err)
	}

	spawns := make([]sim.Spawn, len(c.Adversaries))
	for i, a := range c.Adversaries {
		h, err := sim.ParseHeading(a.Dir)
		if err != nil {
			return sim.Options{}, fmt.Errorf("config: %s: adversary %d: %w", c.ID, i, err)
		}
		spawns[i] = sim.Spawn{Col: a.Col, Row: a.Row, Heading: h}
	}

	return sim.Options{
		Grid:        l.Grid,
		Agent:       sim.Spawn{Col: l.SpawnCol, Row: l.SpawnRow, Heading: agentDir},
		Adversaries: spawns,
		Speed:       c.Speed,
		Rand:        rng,
	}, nil
}

// NewGame builds a running game from the maze definition.
func (c MazeConfig) NewGame(rng sim.RandSource) (*sim.Game, error) {
	opts, err := c.Options(rng)
	if err != nil {
		return nil, err
	}
	g, err := sim.New(opts)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", c.ID, err)
	}
	return g, nil
}
