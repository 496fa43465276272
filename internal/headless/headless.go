// Package headless runs the race without a display, driven by an autopilot.
package headless

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"ringrace/internal/race"
)

// ErrFrameLimit is returned when the run hits Options.MaxFrames first.
var ErrFrameLimit = errors.New("frame limit reached")

type Options struct {
	Step      time.Duration
	MaxFrames int
	// Resets is how many extra runs to play after the first game over.
	Resets int
}

// Report summarises a headless session.
type Report struct {
	Results []race.Result
	Frames  int
	MaxLive int
	// BoundViolations counts frames where live traffic exceeded the spawn
	// bound for the lap count. Always zero for a correct simulation.
	BoundViolations int
}

// Run drives loop with the autopilot at a fixed step until every run has
// ended, the frame limit is hit, or ctx is cancelled.
func Run(ctx context.Context, loop *race.Loop, pilot Autopilot, opts Options, log zerolog.Logger) (Report, error) {
	log = log.With().Str("component", "headless").Logger()
	var rep Report

	step := opts.Step
	if step <= 0 {
		step = 16 * time.Millisecond
	}
	resets := opts.Resets

	loop.Bus.Subscribe(race.EventGameOver, func(race.Event) {
		rep.Results = append(rep.Results, loop.State().Result)
	})

	f := loop.State().Frame()
	for opts.MaxFrames <= 0 || rep.Frames < opts.MaxFrames {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		if f.HUD.Phase == race.PhaseGameOver {
			if resets == 0 {
				log.Info().
					Int("runs", len(rep.Results)).
					Int("frames", rep.Frames).
					Int("maxLive", rep.MaxLive).
					Msg("headless session finished")
				return rep, nil
			}
			resets--
			loop.Latch.Reset()
		}

		pilot.Drive(f, &loop.Latch)
		f = loop.Advance(ctx, time.Duration(rep.Frames)*step)
		rep.Frames++

		live := len(f.Traffic)
		if live > rep.MaxLive {
			rep.MaxLive = live
		}
		if live > race.SpawnBound(f.HUD.Laps) {
			rep.BoundViolations++
		}
	}

	log.Warn().Int("frames", rep.Frames).Msg("headless frame limit reached")
	return rep, ErrFrameLimit
}
