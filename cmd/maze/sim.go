package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/autopilot"
	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/sim"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagMaxTicks  uint64
	flagRealtime  bool
	flagShowMaze  bool
	flagSimConfig string
)

var simCmd = &cobra.Command{
	Use:   "sim <maze>",
	Short: "Run a maze headless with the autopilot",
	Long: `Runs the game loop without a terminal UI. The autopilot steers the
agent; the run ends on contact, after --max-ticks, or on Ctrl+C.

Ticks run back to back unless --realtime is set, in which case they follow
the maze's tick interval (or --tick).

Examples:
  maze sim classic --seed 42
  maze sim turbo --max-ticks 500 --realtime
  maze sim mine --config ./mine.yaml --show`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 5000, "Stop after this many ticks")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the tick interval")
	simCmd.Flags().BoolVar(&flagShowMaze, "show", false, "Print the maze after the run")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to a maze YAML file")
}

// simOptions configures one headless run.
type simOptions struct {
	Seed     int64
	MaxTicks uint64
	Interval time.Duration
}

// simOutcome summarises a headless run.
type simOutcome struct {
	Snapshot sim.Snapshot
	Reason   string
	Grid     string
}

// runSimulation plays cfg with the autopilot until contact, the tick limit
// or cancellation of ctx.
func runSimulation(ctx context.Context, cfg config.MazeConfig, opts simOptions, logger *log.Logger) (simOutcome, error) {
	game, err := cfg.NewGame(rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return simOutcome{}, err
	}
	pilot := autopilot.New(rand.New(rand.NewSource(opts.Seed + 1)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	limitHit := false
	pilot.Steer(game)
	err = sim.Run(ctx, game, opts.Interval, func(res sim.TickResult) {
		for _, ev := range res.Events {
			switch ev.Kind {
			case sim.EventTileConsumed:
				logger.Debug("item eaten", "tick", res.Tick, "index", ev.Index, "score", res.Score)
			case sim.EventGameEnded:
				logger.Info("caught", "tick", res.Tick, "adversary", ev.Adversary, "score", res.Score)
			}
		}
		if opts.MaxTicks > 0 && res.Tick >= opts.MaxTicks && res.Status == sim.StatusRunning {
			limitHit = true
			cancel()
			return
		}
		pilot.Steer(game)
	})

	out := simOutcome{Snapshot: game.Snapshot(), Grid: game.Grid().String()}
	switch {
	case err == nil:
		out.Reason = storage.ReasonContact
	case errors.Is(err, context.Canceled) && limitHit:
		out.Reason = storage.ReasonTickLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		out.Reason = storage.ReasonQuit
	default:
		return out, err
	}
	return out, nil
}

func runSim(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	var cfg config.MazeConfig
	var err error
	if flagSimConfig != "" {
		cfg, err = config.LoadFile(flagSimConfig)
	} else {
		cfg, err = config.Load(args[0], "")
	}
	if err != nil {
		return err
	}

	opts := simOptions{Seed: seed(), MaxTicks: flagMaxTicks}
	if flagRealtime {
		opts.Interval = cfg.TickInterval()
		if flagTick > 0 {
			opts.Interval = flagTick
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "maze", cfg.ID, "seed", opts.Seed, "max_ticks", opts.MaxTicks, "interval", opts.Interval)
	out, err := runSimulation(ctx, cfg, opts, logger)
	if err != nil {
		logger.Error("simulation failed", "maze", cfg.ID, "tick", out.Snapshot.Tick, "error", err)
		return err
	}

	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("run journal unavailable", "error", err)
	} else {
		defer store.Close()
		id, err := store.RecordRun(storage.RunRecord{
			MazeID: cfg.ID,
			Score:  out.Snapshot.Score,
			Ticks:  out.Snapshot.Tick,
			Seed:   opts.Seed,
			Reason: out.Reason,
		})
		if err != nil {
			logger.Warn("could not record run", "error", err)
		} else {
			logger.Debug("run recorded", "id", id)
		}
	}

	printOutcome(cmd.OutOrStdout(), cfg, opts, out)
	return nil
}

func printOutcome(w io.Writer, cfg config.MazeConfig, opts simOptions, out simOutcome) {
	s := out.Snapshot
	fmt.Fprintf(w, "maze:   %s\n", cfg.ID)
	fmt.Fprintf(w, "seed:   %d\n", opts.Seed)
	fmt.Fprintf(w, "ticks:  %d\n", s.Tick)
	fmt.Fprintf(w, "score:  %d\n", s.Score)
	fmt.Fprintf(w, "left:   %d\n", s.ItemsLeft)
	fmt.Fprintf(w, "state:  %s (%s)\n", s.Status, out.Reason)
	if flagShowMaze {
		fmt.Fprintln(w)
		fmt.Fprintln(w, out.Grid)
	}
}
