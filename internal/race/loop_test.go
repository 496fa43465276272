package race

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_AdvanceDispatchesEvents(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	m, err := NewMetrics()
	require.NoError(t, err)

	l := NewLoop(DefaultTuning(), 1, log, m)
	var got []EventType
	l.Bus.SubscribeAll(func(e Event) { got = append(got, e.Type) })
	starts := 0
	l.Bus.Subscribe(EventStart, func(Event) { starts++ })

	ctx := context.Background()
	l.Latch.Confirm()
	f := l.Advance(ctx, 0)
	assert.Equal(t, PhaseRunning, f.HUD.Phase)
	assert.Equal(t, 1, starts)
	assert.Equal(t, []EventType{EventStart}, got)
	assert.Contains(t, buf.String(), "phase change")

	l.Latch.Accelerate(true)
	l.Advance(ctx, 0)
	l.Latch.SelectView(3)
	f = l.Advance(ctx, 16*time.Millisecond)

	assert.True(t, f.HUD.Active)
	assert.InDelta(t, 0.016, f.HUD.Elapsed, 1e-9)
	assert.Equal(t, ViewClose, f.View)
	assert.Equal(t, EventView, got[len(got)-1])
	assert.Equal(t, uint64(1), l.State().Ticks)
}

func TestLoop_NilMetrics(t *testing.T) {
	l := NewLoop(DefaultTuning(), 1, zerolog.Nop(), nil)
	l.Latch.Confirm()

	assert.NotPanics(t, func() { l.Advance(context.Background(), 0) })
}
