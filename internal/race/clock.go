package race

import "time"

// FrameClock turns successive frame timestamps into dt. The first timestamp
// after a restart only seeds the clock.
type FrameClock struct {
	last   time.Duration
	seeded bool
}

func (c *FrameClock) Restart() {
	c.seeded = false
	c.last = 0
}

func (c FrameClock) Seeded() bool { return c.seeded }

// Advance returns the seconds since the previous timestamp. ok is false on the
// seeding call. A backwards clock yields zero; maxStep > 0 caps the step.
func (c *FrameClock) Advance(now, maxStep time.Duration) (dt float64, ok bool) {
	if !c.seeded {
		c.last = now
		c.seeded = true
		return 0, false
	}
	d := now - c.last
	c.last = now
	if d < 0 {
		d = 0
	}
	if maxStep > 0 && d > maxStep {
		d = maxStep
	}
	return d.Seconds(), true
}
