package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/chase"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <maze>",
	Short: "Play a maze",
	Long: `Start playing the specified maze.

Controls:
  Arrows/WASD  - Steer (applied at the next tick if the way is open)
  Tab          - Session scores
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  maze play classic
  maze play compact --seed 7
  maze play mine --config ./mine.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a maze YAML file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	mazeID := args[0]

	logOut, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(logOut)

	var game registry.Game
	if flagConfig != "" {
		cfg, err := config.LoadFile(flagConfig)
		if err != nil {
			return err
		}
		game = chase.FromConfig(cfg)
	} else {
		if !registry.Exists(mazeID) {
			return fmt.Errorf("unknown maze %q, run 'maze list' to see available mazes", mazeID)
		}
		var err error
		if game, err = registry.Create(mazeID); err != nil {
			return err
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: flagTick,
		Seed:         seed(),
	}

	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("session scores unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger, cfg); err != nil {
		logger.Error("session ended with error", "maze", game.ID(), "error", err)
		return err
	}
	return nil
}
