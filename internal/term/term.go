// Package term runs the race in a terminal with tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"ringrace/internal/race"
)

const frameInterval = 16 * time.Millisecond

// Terminals report key presses and repeats but never releases, so a throttle
// key counts as held until holdWindow after its last event. The window has to
// outlast the keyboard's initial repeat delay.
const holdWindow = 400 * time.Millisecond

// Shake applied in the close view after contact.
const shakeDuration = 250 * time.Millisecond

// App couples a tcell screen to a race loop.
type App struct {
	screen tcell.Screen
	loop   *race.Loop
	log    zerolog.Logger

	start      time.Time
	accelUntil time.Time
	decelUntil time.Time
	shakeUntil time.Time
	frame      race.Frame
}

func New(screen tcell.Screen, loop *race.Loop, log zerolog.Logger) *App {
	a := &App{
		screen: screen,
		loop:   loop,
		log:    log.With().Str("component", "term").Logger(),
	}
	loop.Bus.Subscribe(race.EventCollision, func(race.Event) {
		if a.frame.View == race.ViewClose {
			a.shakeUntil = time.Now().Add(shakeDuration)
		}
	})
	return a
}

// NewScreen creates and initialises the process terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return screen, nil
}

// HandleEvent applies one tcell event to the input latch. It returns false
// when the user asked to quit.
func (a *App) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev, now)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey, now time.Time) bool {
	l := &a.loop.Latch
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.accelUntil = now.Add(holdWindow)
	case tcell.KeyDown:
		a.decelUntil = now.Add(holdWindow)
	case tcell.KeyLeft:
		l.SteerIn()
	case tcell.KeyRight:
		l.SteerOut()
	case tcell.KeyEnter:
		l.Confirm()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'w', 'W':
			a.accelUntil = now.Add(holdWindow)
		case 's', 'S':
			a.decelUntil = now.Add(holdWindow)
		case 'a', 'A':
			l.SteerIn()
		case 'd', 'D':
			l.SteerOut()
		case '1', '2', '3':
			l.SelectView(int(ev.Rune() - '0'))
		case ' ':
			l.Confirm()
		case 'r', 'R':
			l.Reset()
		}
	}
	return true
}

// Frame advances the simulation to now and redraws.
func (a *App) Frame(ctx context.Context, now time.Time) race.Frame {
	if a.start.IsZero() {
		a.start = now
	}
	a.loop.Latch.Accelerate(now.Before(a.accelUntil))
	a.loop.Latch.Decelerate(now.Before(a.decelUntil))

	a.frame = a.loop.Advance(ctx, now.Sub(a.start))

	shake := 0
	if now.Before(a.shakeUntil) {
		shake = 1 - 2*int(now.UnixMilli()/40%2)
	}
	Draw(a.screen, a.frame, shake)
	return a.frame
}

// Run polls terminal events on their own goroutine and drives frames from a
// ticker until the user quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.log.Info().Msg("terminal frontend started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.HandleEvent(ev, time.Now()) {
				a.log.Info().Msg("quit requested")
				return nil
			}
		case now := <-ticker.C:
			a.Frame(ctx, now)
		}
	}
}
