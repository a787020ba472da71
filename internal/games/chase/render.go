package chase

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/sim"
)

// Each grid cell is drawn two columns wide so the maze keeps its aspect.
const (
	cellWidth = 2
	hudHeight = 2
)

const (
	wallRune      = '█'
	agentRune     = '●'
	adversaryRune = '●'
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	grid := g.sim.Grid()
	snap := g.sim.Snapshot()

	g.renderHUD(dst, snap)

	mapW := grid.W() * cellWidth
	mapH := grid.H()
	if dst.Width() < mapW || dst.Height() < mapH+hudHeight {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", mapW, mapH+hudHeight))
		return
	}
	offX := (dst.Width() - mapW) / 2
	offY := hudHeight

	g.renderTiles(dst, grid, offX, offY)
	for _, a := range snap.Adversaries {
		x, y := project(grid, a.Pos, offX, offY)
		dst.SetColored(x, y, adversaryRune, core.ColorRed)
	}
	x, y := project(grid, snap.Agent.Pos, offX, offY)
	dst.SetColored(x, y, agentRune, core.ColorBrightYellow)

	if snap.Status == sim.StatusEnded {
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R restart  Q quit", snap.Score))
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawText(0, 0, " "+g.title)
	score := fmt.Sprintf("Score: %d ", snap.Score)
	dst.DrawTextColored(dst.Width()-len(score), 0, score, core.ColorWhite)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderTiles(dst *core.Screen, grid *maze.Grid, offX, offY int) {
	item := g.cfg.Item.Rune('·')
	itemColor := g.cfg.Item.ParsedColor()
	trail := g.cfg.Trail.Rune(' ')
	trailColor := g.cfg.Trail.ParsedColor()

	for i := 0; i < grid.Len(); i++ {
		t, err := grid.TileAt(i)
		if err != nil {
			continue
		}
		col, row := grid.Cell(i)
		x := offX + col*cellWidth
		y := offY + row
		switch {
		case t == maze.TileWall:
			dst.SetColored(x, y, wallRune, core.ColorBlue)
			dst.SetColored(x+1, y, wallRune, core.ColorBlue)
		case t == maze.TileItem:
			dst.SetColored(x, y, item, itemColor)
		case g.consumed[i]:
			dst.SetColored(x, y, trail, trailColor)
		}
	}
}

// project maps a world position to screen coordinates, rounding to the
// nearest half cell horizontally and the nearest cell vertically.
func project(grid *maze.Grid, pos core.Vec, offX, offY int) (int, int) {
	origin := grid.Anchor(0, 0)
	cs := grid.CellSize()
	dx := pos.X - origin.X
	dy := origin.Y - pos.Y
	x := offX + core.FloorDiv(dx*cellWidth+cs/2, cs)
	y := offY + core.FloorDiv(dy+cs/2, cs)
	return x, y
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
