package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringrace/internal/race"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(s tcell.Screen, row int) string {
	w, _ := s.Size()
	var b strings.Builder
	for col := 0; col < w; col++ {
		mainc, _, _, _ := s.GetContent(col, row)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	var b strings.Builder
	for row := 0; row < h; row++ {
		b.WriteString(rowText(s, row))
		b.WriteByte('\n')
	}
	return b.String()
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestApp_IntroBannerAndHUD(t *testing.T) {
	screen := newTestScreen(t)
	loop := race.NewLoop(race.DefaultTuning(), 1, zerolog.Nop(), nil)
	app := New(screen, loop, zerolog.Nop())

	app.Frame(context.Background(), time.Unix(100, 0))

	assert.Contains(t, rowText(screen, 0), "HEALTH 100.0")
	assert.Contains(t, rowText(screen, 0), "FUEL 100.0")
	assert.Contains(t, screenText(screen), "RING RACE")
}

func TestApp_StartAndDrive(t *testing.T) {
	screen := newTestScreen(t)
	loop := race.NewLoop(race.DefaultTuning(), 1, zerolog.Nop(), nil)
	app := New(screen, loop, zerolog.Nop())
	ctx := context.Background()
	t0 := time.Unix(100, 0)

	assert.True(t, app.HandleEvent(key(' '), t0))
	f := app.Frame(ctx, t0)
	assert.Equal(t, race.PhaseRunning, f.HUD.Phase)
	assert.Contains(t, screenText(screen), "hold W or UP")

	assert.True(t, app.HandleEvent(key('w'), t0))
	app.Frame(ctx, t0.Add(10*time.Millisecond))
	f = app.Frame(ctx, t0.Add(110*time.Millisecond))

	assert.True(t, f.HUD.Active)
	assert.InDelta(t, 0.1, f.HUD.Elapsed, 1e-9)
	assert.Less(t, loop.State().Player.Moved, 0.0)
	assert.NotContains(t, screenText(screen), "hold W or UP")
}

func TestApp_ThrottleReleasesAfterHoldWindow(t *testing.T) {
	screen := newTestScreen(t)
	loop := race.NewLoop(race.DefaultTuning(), 1, zerolog.Nop(), nil)
	app := New(screen, loop, zerolog.Nop())
	t0 := time.Unix(100, 0)

	app.HandleEvent(key('w'), t0)
	app.Frame(context.Background(), t0.Add(holdWindow/2))
	assert.True(t, loop.Latch.Sample().Accelerate)

	app.Frame(context.Background(), t0.Add(holdWindow+time.Millisecond))
	assert.False(t, loop.Latch.Sample().Accelerate)
}

func TestApp_SteeringAndViewKeys(t *testing.T) {
	screen := newTestScreen(t)
	tu := race.DefaultTuning()
	loop := race.NewLoop(tu, 1, zerolog.Nop(), nil)
	app := New(screen, loop, zerolog.Nop())
	ctx := context.Background()
	t0 := time.Unix(100, 0)

	app.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), t0)
	app.Frame(ctx, t0)

	app.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), t0)
	app.Frame(ctx, t0)
	assert.Equal(t, tu.CenterRadius-tu.SteerStep, loop.State().Player.Radius)

	app.HandleEvent(key('d'), t0)
	app.HandleEvent(key('3'), t0)
	f := app.Frame(ctx, t0)
	assert.Equal(t, tu.CenterRadius, loop.State().Player.Radius)
	assert.Equal(t, race.ViewClose, f.View)
	assert.Contains(t, rowText(screen, 0), "VIEW 3")
}

func TestApp_QuitKeys(t *testing.T) {
	screen := newTestScreen(t)
	app := New(screen, race.NewLoop(race.DefaultTuning(), 1, zerolog.Nop(), nil), zerolog.Nop())

	assert.False(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), time.Now()))
	assert.False(t, app.HandleEvent(key('q'), time.Now()))
	assert.True(t, app.HandleEvent(key('x'), time.Now()))
}

func TestDraw_PlayerVisibleInEveryView(t *testing.T) {
	screen := newTestScreen(t)
	s := race.NewState(race.DefaultTuning(), 1)

	for _, v := range []race.View{race.ViewOverview, race.ViewFollow, race.ViewClose} {
		f := s.Frame()
		f.View = v
		Draw(screen, f, 0)
		assert.Contains(t, screenText(screen), "▓", "view %d", v)
	}
}

func TestBanner(t *testing.T) {
	assert.Contains(t, Banner(race.HUD{Phase: race.PhaseIntro}), "RING RACE")
	assert.Empty(t, Banner(race.HUD{Phase: race.PhaseRunning, Active: true}))

	over := Banner(race.HUD{Phase: race.PhaseGameOver, Result: race.Result{Score: 4, Rank: 2, Field: 6}})
	assert.Contains(t, over, "laps 4")
	assert.Contains(t, over, "rank 2 of 6")
}

func TestRun_StopsOnContext(t *testing.T) {
	screen := newTestScreen(t)
	app := New(screen, race.NewLoop(race.DefaultTuning(), 1, zerolog.Nop(), nil), zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := app.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_QuitsOnEscape(t *testing.T) {
	screen := newTestScreen(t)
	app := New(screen, race.NewLoop(race.DefaultTuning(), 1, zerolog.Nop(), nil), zerolog.Nop())

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Escape")
	}
}

func TestBuzzGenerator_Bounded(t *testing.T) {
	g := NewBuzzGenerator(sampleRate, 110)
	buf := make([][2]float64, 2048)

	n, ok := g.Stream(buf)

	require.True(t, ok)
	assert.Equal(t, len(buf), n)
	for _, s := range buf {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.Equal(t, s[0], s[1])
	}
	assert.NoError(t, g.Err())
}

func TestSounds_UninitializedIsSilent(t *testing.T) {
	s := NewSounds(0.5)
	bus := race.NewEventBus()
	s.Subscribe(bus)

	assert.NotPanics(t, func() {
		bus.Emit(race.Event{Type: race.EventLap, Data: 1})
		bus.Emit(race.Event{Type: race.EventCollision})
		s.Close()
	})
}
