package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores   = 10 // Runs listed per maze
	tableHeight = maxScores + 1
)

// Scoreboard shows the runs recorded in this session for one maze.
type Scoreboard struct {
	store  *storage.Store
	mazeID string
	title  string
	runs   []storage.RunRecord
	stats  storage.Stats
	table  table.Model
}

func newScoreboard(store *storage.Store, mazeID, title string) Scoreboard {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "End", Width: 10},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Scoreboard{store: store, mazeID: mazeID, title: title, table: t}
}

// Refresh reloads the runs from the journal.
func (s *Scoreboard) Refresh() error {
	if s.store == nil {
		return nil
	}

	runs, err := s.store.TopRuns(s.mazeID, maxScores)
	if err != nil {
		return err
	}
	stats, err := s.store.Stats(s.mazeID)
	if err != nil {
		return err
	}
	s.runs = runs
	s.stats = stats

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.Reason,
			r.EndedAt.Format("15:04:05"),
		}
	}
	s.table.SetRows(rows)
	s.table.GotoTop()
	return nil
}

// View renders the scoreboard panel.
func (s Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("SESSION SCORES - %s", s.title)))
	b.WriteString("\n\n")

	if len(s.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No runs finished yet."))
	} else {
		b.WriteString(s.table.View())
		b.WriteString("\n")
		statStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(statStyle.Render(fmt.Sprintf("runs %d  best %d  avg %.1f",
			s.stats.Runs, s.stats.BestScore, s.stats.AvgScore)))
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return panel.Render(b.String())
}
