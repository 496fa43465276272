package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"ringrace/internal/race"
)

type Input struct {
	prevKeys map[glfw.Key]bool

	steerDir    int
	steerRepeat float64
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func anyDown(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Poll reads the keyboard into the latch. Throttle keys are levels; steering
// fires on press and then repeats while held.
func (in *Input) Poll(window *glfw.Window, l *race.InputLatch, dt float64) {
	l.Accelerate(anyDown(window, glfw.KeyW, glfw.KeyUp))
	l.Decelerate(anyDown(window, glfw.KeyS, glfw.KeyDown))

	inPressed := in.JustPressed(window, glfw.KeyA)
	inPressed = in.JustPressed(window, glfw.KeyLeft) || inPressed
	outPressed := in.JustPressed(window, glfw.KeyD)
	outPressed = in.JustPressed(window, glfw.KeyRight) || outPressed

	switch {
	case inPressed:
		in.steerDir, in.steerRepeat = race.SteerIn, steerRepeatDelay
		l.SteerIn()
	case outPressed:
		in.steerDir, in.steerRepeat = race.SteerOut, steerRepeatDelay
		l.SteerOut()
	default:
		held := (in.steerDir == race.SteerIn && anyDown(window, glfw.KeyA, glfw.KeyLeft)) ||
			(in.steerDir == race.SteerOut && anyDown(window, glfw.KeyD, glfw.KeyRight))
		if !held {
			in.steerDir = race.SteerNone
			break
		}
		in.steerRepeat -= dt
		if in.steerRepeat <= 0 {
			in.steerRepeat += steerRepeatRate
			if in.steerDir == race.SteerIn {
				l.SteerIn()
			} else {
				l.SteerOut()
			}
		}
	}

	for i, k := range []glfw.Key{glfw.Key1, glfw.Key2, glfw.Key3} {
		if in.JustPressed(window, k) {
			l.SelectView(i + 1)
		}
	}
	confirm := in.JustPressed(window, glfw.KeySpace)
	confirm = in.JustPressed(window, glfw.KeyEnter) || confirm
	if confirm {
		l.Confirm()
	}
	if in.JustPressed(window, glfw.KeyR) {
		l.Reset()
	}
}
