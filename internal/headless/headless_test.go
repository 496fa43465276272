package headless

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringrace/internal/race"
)

func fastTuning() race.Tuning {
	tu := race.DefaultTuning()
	tu.BaseSpeed = 4
	tu.BaseDrain = 0.2
	tu.AccelerateDrain = 0.3
	tu.PickupCount = 0
	return tu
}

func TestRun_EndsWithResult(t *testing.T) {
	loop := race.NewLoop(fastTuning(), 3, zerolog.Nop(), nil)

	rep, err := Run(context.Background(), loop, DefaultAutopilot(), Options{Step: 16 * time.Millisecond, MaxFrames: 100000}, zerolog.Nop())

	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	assert.Zero(t, rep.BoundViolations)
	assert.Equal(t, race.PhaseGameOver, loop.State().Phase)

	r := rep.Results[0]
	assert.Equal(t, loop.State().Res.Retained, r.Score)
	assert.Positive(t, r.Score)
	assert.GreaterOrEqual(t, r.Rank, 1)
	assert.LessOrEqual(t, r.Rank, r.Field)
	assert.Positive(t, r.Elapsed)
}

func TestRun_ResetsKeepHistory(t *testing.T) {
	loop := race.NewLoop(fastTuning(), 9, zerolog.Nop(), nil)

	rep, err := Run(context.Background(), loop, DefaultAutopilot(), Options{MaxFrames: 300000, Resets: 2}, zerolog.Nop())

	require.NoError(t, err)
	assert.Len(t, rep.Results, 3)
	assert.Zero(t, rep.BoundViolations)
	assert.Equal(t, rep.Results[2].Field-1, loop.State().Traffic.Spawned)
	assert.Len(t, loop.State().Traffic.Credits, loop.State().Traffic.Spawned)
}

func TestRun_FrameLimit(t *testing.T) {
	loop := race.NewLoop(race.DefaultTuning(), 1, zerolog.Nop(), nil)

	rep, err := Run(context.Background(), loop, DefaultAutopilot(), Options{MaxFrames: 50}, zerolog.Nop())

	assert.ErrorIs(t, err, ErrFrameLimit)
	assert.Equal(t, 50, rep.Frames)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loop := race.NewLoop(race.DefaultTuning(), 1, zerolog.Nop(), nil)

	_, err := Run(ctx, loop, DefaultAutopilot(), Options{}, zerolog.Nop())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAutopilot_StartsFromIntro(t *testing.T) {
	s := race.NewState(race.DefaultTuning(), 1)
	var l race.InputLatch

	DefaultAutopilot().Drive(s.Frame(), &l)

	assert.True(t, l.Sample().Confirm)
}

func TestAutopilot_SteersAwayFromTrafficAhead(t *testing.T) {
	tu := race.DefaultTuning()
	tr := tu.Track()
	player := race.Transform{Kind: race.KindPlayer, X: -100, Y: 0}

	// Forward is clockwise: from angle π toward π-0.2, i.e. up the left side.
	x, y := tr.Position(3.0, 95)
	f := race.Frame{
		Track:   tr,
		Player:  player,
		Traffic: []race.Transform{{Kind: race.KindTruck, X: x, Y: y}},
		HUD:     race.HUD{Phase: race.PhaseRunning, Active: true, FuelFraction: 1},
	}

	assert.Equal(t, race.SteerOut, DefaultAutopilot().steer(f))

	x, y = tr.Position(3.0, 110)
	f.Traffic[0].X, f.Traffic[0].Y = x, y
	assert.Equal(t, race.SteerIn, DefaultAutopilot().steer(f))

	// Behind the player: ignored.
	x, y = tr.Position(3.3, 100)
	f.Traffic[0].X, f.Traffic[0].Y = x, y
	assert.Equal(t, race.SteerNone, DefaultAutopilot().steer(f))
}

func TestAutopilot_EasesOffWhenFuelLow(t *testing.T) {
	var l race.InputLatch
	f := race.Frame{Track: race.DefaultTuning().Track(), HUD: race.HUD{Phase: race.PhaseRunning, Active: true, FuelFraction: 0.1}}
	f.Player.X = -100

	DefaultAutopilot().Drive(f, &l)

	assert.False(t, l.Sample().Accelerate)
}
