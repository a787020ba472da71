// Package tui provides the Bubble Tea integration for the maze game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the game
// the tick was armed for, so ticks left over from a replaced game are dropped.
type TickMsg struct {
	At  time.Time
	Gen int
}

// tickCmd arms a single tick after interval. The next tick is only armed
// once this one has been handled, so ticks never overlap.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
