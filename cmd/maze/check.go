package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate maze files",
	Long: `Parses and validates each maze file, reporting every problem found.
Exits non-zero if any file is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		cfg, err := config.LoadFile(path)
		if err != nil {
			fmt.Fprintf(out, "FAIL %v\n", err)
			failed++
			continue
		}
		l, err := cfg.Grid()
		if err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "ok   %s (%s: %dx%d, %d items, %d adversaries)\n",
			path, cfg.ID, l.Grid.W(), l.Grid.H(), l.Grid.ItemsLeft(), len(cfg.Adversaries))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d maze files invalid", failed, len(args))
	}
	return nil
}
