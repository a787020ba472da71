package sim

import (
	"context"
	"time"
)

// Observer is notified after every completed tick.
type Observer func(TickResult)

// Run drives the game on a fixed cadence: it runs one tick, notifies the
// observer, and only then arms the timer for the next tick, so ticks never
// overlap. Run returns nil once the game ends, ctx.Err() when cancelled, or
// the first tick error.
func Run(ctx context.Context, g *Game, interval time.Duration, observe Observer) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		// A cancelled context wins over a timer that is already due.
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		res, err := g.Tick()
		if err != nil {
			return err
		}
		if observe != nil {
			observe(res)
		}
		if res.Status == StatusEnded {
			return nil
		}
		timer.Reset(interval)
	}
}
