// Package maze holds the static maze grid: tile states, world-to-cell
// conversion and the single permitted tile mutation (item consumed).
//
// World coordinates have x growing right and y growing up. A cell is
// anchored at its top-left corner: cell (col, row) is anchored at
//
//	x = col*cellSize - originX
//	y = originY - row*cellSize
//
// and covers x in [anchorX, anchorX+cellSize) and y in (anchorY-cellSize, anchorY].
package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Tile is the state of one maze cell.
type Tile uint8

const (
	TileWall  Tile = iota // Impassable
	TileItem              // Path with a collectible
	TileEmpty             // Path, collectible already consumed (or never present)
)

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileItem:
		return "item"
	case TileEmpty:
		return "empty"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// Passable reports whether entities may occupy the tile.
func (t Tile) Passable() bool {
	return t == TileItem || t == TileEmpty
}

var (
	// ErrIndexOutOfRange is returned when an index or position falls outside the grid.
	ErrIndexOutOfRange = errors.New("maze: index out of range")
	// ErrIllegalTransition is returned for any tile mutation other than item -> empty.
	ErrIllegalTransition = errors.New("maze: illegal tile transition")
)

// Grid is a fixed-size W x H maze stored in row-major order: index = col + row*W.
type Grid struct {
	w, h     int
	cellSize int
	originX  int
	originY  int
	tiles    []Tile
	items    int
}

// NewGrid creates a grid from row-major tiles. The world origin is placed so the
// maze is centred on (0, 0) with every cell anchor a multiple of cellSize.
func NewGrid(w, h, cellSize int, tiles []Tile) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("maze: invalid dimensions %dx%d", w, h)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("maze: invalid cell size %d", cellSize)
	}
	if len(tiles) != w*h {
		return nil, fmt.Errorf("maze: expected %d tiles, got %d", w*h, len(tiles))
	}

	g := &Grid{
		w:        w,
		h:        h,
		cellSize: cellSize,
		originX:  (w / 2) * cellSize,
		originY:  ((h - 1) / 2) * cellSize,
		tiles:    make([]Tile, len(tiles)),
	}
	for i, t := range tiles {
		if t > TileEmpty {
			return nil, fmt.Errorf("maze: unknown tile %d at index %d", t, i)
		}
		g.tiles[i] = t
		if t == TileItem {
			g.items++
		}
	}
	return g, nil
}

// W returns the grid width in cells.
func (g *Grid) W() int { return g.w }

// H returns the grid height in cells.
func (g *Grid) H() int { return g.h }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.tiles) }

// CellSize returns the world size of one cell.
func (g *Grid) CellSize() int { return g.cellSize }

// ItemsLeft returns the number of tiles still holding a collectible.
func (g *Grid) ItemsLeft() int { return g.items }

// TileAt returns the tile at index.
func (g *Grid) TileAt(index int) (Tile, error) {
	if index < 0 || index >= len(g.tiles) {
		return TileWall, fmt.Errorf("%w: index %d not in [0, %d)", ErrIndexOutOfRange, index, len(g.tiles))
	}
	return g.tiles[index], nil
}

// IndexOf converts a world position to the index of the cell containing it.
func (g *Grid) IndexOf(pos core.Vec) (int, error) {
	col := core.FloorDiv(pos.X+g.originX, g.cellSize)
	row := core.FloorDiv(g.originY-pos.Y, g.cellSize)
	if col < 0 || col >= g.w || row < 0 || row >= g.h {
		return -1, fmt.Errorf("%w: position (%d, %d) maps to cell (%d, %d)", ErrIndexOutOfRange, pos.X, pos.Y, col, row)
	}
	return col + row*g.w, nil
}

// TileOf returns the tile under a world position.
func (g *Grid) TileOf(pos core.Vec) (Tile, error) {
	index, err := g.IndexOf(pos)
	if err != nil {
		return TileWall, err
	}
	return g.tiles[index], nil
}

// Cell returns the column and row of an index. The index must be in range.
func (g *Grid) Cell(index int) (col, row int) {
	return index % g.w, index / g.w
}

// Anchor returns the world position of the cell at (col, row).
func (g *Grid) Anchor(col, row int) core.Vec {
	return core.V(col*g.cellSize-g.originX, g.originY-row*g.cellSize)
}

// Aligned reports whether pos is an exact cell anchor on both axes.
func (g *Grid) Aligned(pos core.Vec) bool {
	return g.AlignedX(pos.X) && g.AlignedY(pos.Y)
}

// AlignedX reports whether x lies on a column boundary.
func (g *Grid) AlignedX(x int) bool {
	return core.FloorMod(x+g.originX, g.cellSize) == 0
}

// AlignedY reports whether y lies on a row boundary.
func (g *Grid) AlignedY(y int) bool {
	return core.FloorMod(g.originY-y, g.cellSize) == 0
}

// SetTile mutates a tile. The only permitted transition is item -> empty;
// anything else returns ErrIllegalTransition and leaves the grid unchanged.
func (g *Grid) SetTile(index int, t Tile) error {
	cur, err := g.TileAt(index)
	if err != nil {
		return err
	}
	if cur != TileItem || t != TileEmpty {
		return fmt.Errorf("%w: %s -> %s at index %d", ErrIllegalTransition, cur, t, index)
	}
	g.tiles[index] = TileEmpty
	g.items--
	return nil
}
