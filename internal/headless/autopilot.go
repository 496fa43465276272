package headless

import (
	"math"

	"ringrace/internal/race"
)

// Autopilot is a simple driving policy: start, keep the throttle open while
// fuel allows, and sidestep traffic coming up ahead.
type Autopilot struct {
	// LowFuel is the fuel fraction below which the autopilot stops accelerating.
	LowFuel float64
	// Lookahead is the angular distance ahead that counts as a threat.
	Lookahead float64
	// Clearance is the radial gap the autopilot tries to keep from traffic.
	Clearance float64
}

func DefaultAutopilot() Autopilot {
	return Autopilot{LowFuel: 0.25, Lookahead: 0.5, Clearance: 16}
}

// Drive sets latch inputs for the next tick from the last frame.
func (a Autopilot) Drive(f race.Frame, l *race.InputLatch) {
	switch f.HUD.Phase {
	case race.PhaseIntro:
		l.Confirm()
		return
	case race.PhaseGameOver:
		l.Accelerate(false)
		l.Decelerate(false)
		return
	}

	if !f.HUD.Active {
		l.Accelerate(true)
		return
	}
	l.Accelerate(f.HUD.FuelFraction > a.LowFuel)
	l.Decelerate(false)

	switch a.steer(f) {
	case race.SteerIn:
		l.SteerIn()
	case race.SteerOut:
		l.SteerOut()
	}
}

// steer picks a direction away from the nearest threat ahead, or back toward
// the centre line when the road is clear.
func (a Autopilot) steer(f race.Frame) int {
	pr := math.Hypot(f.Player.X, f.Player.Y)
	pa := math.Atan2(f.Player.Y, f.Player.X)

	nearest := math.Inf(1)
	threatR := 0.0
	for _, t := range f.Traffic {
		// Forward is decreasing angle.
		ahead := wrap(pa - math.Atan2(t.Y, t.X))
		if ahead < 0 || ahead > a.Lookahead {
			continue
		}
		r := math.Hypot(t.X, t.Y)
		if math.Abs(r-pr) > a.Clearance {
			continue
		}
		if ahead < nearest {
			nearest = ahead
			threatR = r
		}
	}

	if !math.IsInf(nearest, 1) {
		roomIn := threatR - f.Track.MinRadius()
		roomOut := f.Track.MaxRadius() - threatR
		if roomOut > roomIn {
			return race.SteerOut
		}
		return race.SteerIn
	}

	const slack = 2.0
	switch {
	case pr > f.Track.CenterRadius+slack:
		return race.SteerIn
	case pr < f.Track.CenterRadius-slack:
		return race.SteerOut
	}
	return race.SteerNone
}

// wrap maps a into [-π, π).
func wrap(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
