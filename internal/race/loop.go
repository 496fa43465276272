package race

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Loop owns a State and the latch that feeds it. Frontends call the latch
// handlers as devices report, then Advance once per rendered frame from the
// same goroutine.
type Loop struct {
	Latch InputLatch
	Bus   *EventBus

	state   State
	log     zerolog.Logger
	metrics *Metrics
}

func NewLoop(t Tuning, seed uint64, log zerolog.Logger, m *Metrics) *Loop {
	return &Loop{
		Bus:     NewEventBus(),
		state:   NewState(t, seed),
		log:     log.With().Str("component", "race").Logger(),
		metrics: m,
	}
}

func (l *Loop) State() State { return l.state }

// Advance samples input, runs one tick at now and dispatches its events.
func (l *Loop) Advance(ctx context.Context, now time.Duration) Frame {
	in := l.Latch.Sample()
	prev := l.state
	next, events := Tick(prev, in, now)
	l.state = next

	if next.Phase != prev.Phase {
		l.log.Info().
			Str("from", prev.Phase.String()).
			Str("to", next.Phase.String()).
			Msg("phase change")
	}
	for _, e := range events {
		l.logEvent(e)
		l.Bus.Emit(e)
	}
	l.metrics.Record(ctx, next.Ticks != prev.Ticks, len(next.Traffic.Live), events)
	return next.Frame()
}

func (l *Loop) logEvent(e Event) {
	switch e.Type {
	case EventSpawn:
		l.log.Debug().Str("kind", e.Kind.String()).Int("spawned", e.Data).Msg("traffic spawned")
	case EventLap:
		l.log.Debug().Int("laps", e.Data).Msg("lap")
	case EventCollision:
		l.log.Trace().Str("kind", e.Kind.String()).Msg("contact")
	case EventPickup:
		l.log.Debug().Msg("refuelled")
	case EventGameOver:
		r := l.state.Result
		l.log.Info().
			Int("score", r.Score).
			Int("rank", r.Rank).
			Int("field", r.Field).
			Float64("elapsed", r.Elapsed).
			Msg("game over")
	}
}
