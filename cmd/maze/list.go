package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available mazes",
	Long: `Shows every registered maze. User files in ~/.maze/mazes/ and
./mazes/ override the built-in definition with the same id.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No mazes available.")
		return nil
	}

	fmt.Fprintln(out, "Available mazes:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-10s  %-7s  %-6s  %s\n", maxIDLen, "ID", "Title", "Size", "Tick", "Items")
	fmt.Fprintf(out, "  %-*s  %-10s  %-7s  %-6s  %s\n", maxIDLen, "--", "-----", "----", "----", "-----")

	for _, g := range games {
		cfg, err := config.Load(g.ID, "")
		if err != nil {
			fmt.Fprintf(out, "  %-*s  %-10s  (invalid: %v)\n", maxIDLen, g.ID, g.Title, err)
			continue
		}
		l, err := cfg.Grid()
		if err != nil {
			return err
		}
		size := fmt.Sprintf("%dx%d", l.Grid.W(), l.Grid.H())
		fmt.Fprintf(out, "  %-*s  %-10s  %-7s  %-6s  %d\n",
			maxIDLen, g.ID, cfg.Name, size, cfg.TickInterval(), l.Grid.ItemsLeft())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'maze play <id>' to play a maze.")
	return nil
}
