package race

import "math"

// Resources is the per-run health, fuel, time and scoring state.
type Resources struct {
	Health  Health
	Fuel    float64
	FuelMax float64
	Elapsed float64 // seconds

	Laps     int
	Score    int
	Retained int // last score snapshot, read at game over

	DistanceRemaining float64
	distanceInitial   float64
}

func NewResources(t Tuning) Resources {
	return Resources{
		Health:            NewHealth(t.HealthMax),
		Fuel:              t.FuelMax,
		FuelMax:           t.FuelMax,
		DistanceRemaining: t.DistanceInitial,
		distanceInitial:   t.DistanceInitial,
	}
}

// Burn applies the per-tick fuel drain. Braking recovers fuel; when both
// pedals are held, accelerate wins as it does for speed.
func (r *Resources) Burn(th Throttle, t Tuning) {
	r.Fuel -= t.BaseDrain
	switch {
	case th.Accelerate:
		r.Fuel -= t.AccelerateDrain
	case th.Decelerate:
		r.Fuel += t.DecelerateRegen
	}
}

// Refuel fills the tank.
func (r *Resources) Refuel() {
	r.Fuel = r.FuelMax
}

// Travel counts down the cosmetic distance display, wrapping back to its
// initial value instead of reaching zero.
func (r *Resources) Travel(arc float64, t Tuning) {
	if t.DistanceScale <= 0 || arc <= 0 {
		return
	}
	next := r.DistanceRemaining - arc/t.DistanceScale
	if next < 1 {
		next = r.distanceInitial
	}
	r.DistanceRemaining = next
}

// UpdateLaps records a new lap count and reports whether it changed.
func (r *Resources) UpdateLaps(laps int) bool {
	if laps == r.Laps {
		return false
	}
	r.Laps = laps
	r.Score = laps
	r.Retained = laps
	return true
}

// Exhausted reports the game-over condition.
func (r Resources) Exhausted() bool {
	return r.Health.IsDead() || r.Fuel < 0
}

// FuelFraction is fuel relative to the tank, clamped for display.
func (r Resources) FuelFraction() float64 {
	if r.FuelMax <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, r.Fuel/r.FuelMax))
}
