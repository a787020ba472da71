package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Layout symbols.
const (
	SymbolWall  = '#'
	SymbolItem  = '.'
	SymbolEmpty = ' '
	SymbolAgent = 'P' // Agent spawn, an empty path cell
)

// ErrBadLayout is returned when layout rows cannot form a grid.
var ErrBadLayout = errors.New("maze: bad layout")

// Layout is a parsed maze: the grid plus the agent spawn cell.
type Layout struct {
	Grid     *Grid
	SpawnCol int
	SpawnRow int
}

// ParseLayout builds a grid from text rows. All rows must have the same width
// and exactly one agent spawn must be present.
func ParseLayout(rows []string, cellSize int) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, fmt.Errorf("%w: no rows", ErrBadLayout)
	}

	width := len([]rune(rows[0]))
	tiles := make([]Tile, 0, width*len(rows))
	spawnCol, spawnRow := -1, -1

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return Layout{}, fmt.Errorf("%w: row %d has width %d, expected %d", ErrBadLayout, y, len(runes), width)
		}
		for x, ch := range runes {
			switch ch {
			case SymbolWall:
				tiles = append(tiles, TileWall)
			case SymbolItem:
				tiles = append(tiles, TileItem)
			case SymbolEmpty:
				tiles = append(tiles, TileEmpty)
			case SymbolAgent:
				if spawnCol >= 0 {
					return Layout{}, fmt.Errorf("%w: second agent spawn at (%d, %d)", ErrBadLayout, x, y)
				}
				spawnCol, spawnRow = x, y
				tiles = append(tiles, TileEmpty)
			default:
				return Layout{}, fmt.Errorf("%w: unknown symbol %q at (%d, %d)", ErrBadLayout, ch, x, y)
			}
		}
	}

	if spawnCol < 0 {
		return Layout{}, fmt.Errorf("%w: no agent spawn %q", ErrBadLayout, SymbolAgent)
	}

	g, err := NewGrid(width, len(rows), cellSize, tiles)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Grid: g, SpawnCol: spawnCol, SpawnRow: spawnRow}, nil
}

// String renders the grid with layout symbols, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for row := 0; row < g.h; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.w; col++ {
			switch g.tiles[col+row*g.w] {
			case TileWall:
				b.WriteRune(SymbolWall)
			case TileItem:
				b.WriteRune(SymbolItem)
			default:
				b.WriteRune(SymbolEmpty)
			}
		}
	}
	return b.String()
}
