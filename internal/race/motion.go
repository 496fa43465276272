package race

import "math"

// initialAngle places the player on the left of the ring.
const initialAngle = math.Pi

// Throttle is the accelerate/decelerate input pair.
type Throttle struct {
	Accelerate bool
	Decelerate bool
}

// Multiplier scales the base angular speed. Accelerate is checked first, so
// holding both pedals accelerates.
func (th Throttle) Multiplier(t Tuning) float64 {
	if th.Accelerate {
		return t.AccelMultiplier
	}
	if th.Decelerate {
		return t.DecelMultiplier
	}
	return 1.0
}

// Player is the single vehicle driven by input. Moved accumulates without
// wrapping so laps can be read back exactly.
type Player struct {
	Moved  float64
	Radius float64
}

func NewPlayer(t Track) Player {
	return Player{Radius: t.ClampRadius(t.CenterRadius)}
}

// Advance moves the player forward (decreasing angle) and returns the angle
// travelled this tick.
func (p *Player) Advance(dt float64, th Throttle, t Tuning) float64 {
	if dt <= 0 {
		return 0
	}
	d := t.BaseSpeed * th.Multiplier(t) * dt
	p.Moved -= d
	return d
}

// Steer shifts the radial position by delta, clamped to the track.
func (p *Player) Steer(delta float64, t Track) {
	p.Radius = t.ClampRadius(p.Radius + delta)
}

func (p Player) TotalAngle() float64 { return initialAngle + p.Moved }

// Laps is the number of full revolutions completed.
func (p Player) Laps() int {
	return int(math.Floor(math.Abs(p.Moved) / twoPi))
}

func (p Player) Transform(t Track) Transform {
	a := p.TotalAngle()
	x, y := t.Position(a, p.Radius)
	return place(KindPlayer, x, y, a-math.Pi/2)
}

// TrafficVehicle is a spawned car or truck circling at a fixed radius.
type TrafficVehicle struct {
	Kind        Kind
	Angle       float64 // wrapped to [0, 2π)
	Radius      float64
	SpeedFactor float64
	Clockwise   bool
	Credit      int // index into TrafficRegistry.Credits
}

// Advance moves the vehicle along its direction and returns how many times it
// crossed its starting line (angle wrap) this tick.
func (v *TrafficVehicle) Advance(dt, baseSpeed float64) int {
	if dt <= 0 {
		return 0
	}
	d := baseSpeed * dt * v.SpeedFactor
	next := v.Angle + d
	if v.Clockwise {
		next = v.Angle - d
	}
	laps := int(math.Abs(math.Floor(next / twoPi)))
	v.Angle = wrapAngle(next)
	return laps
}

func (v TrafficVehicle) Heading() float64 {
	if v.Clockwise {
		return v.Angle - math.Pi/2
	}
	return v.Angle + math.Pi/2
}

func (v TrafficVehicle) Transform(t Track) Transform {
	x, y := t.Position(v.Angle, v.Radius)
	return place(v.Kind, x, y, v.Heading())
}
