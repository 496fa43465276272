package race

// Steering directions. SteerIn moves toward the inner edge.
const (
	SteerNone = 0
	SteerIn   = -1
	SteerOut  = 1
)

// Input is the snapshot the simulation consumes once per tick.
type Input struct {
	Accelerate bool
	Decelerate bool
	Steer      int
	View       View // zero when no view was selected
	Confirm    bool
	Reset      bool
}

// InputLatch records device signals between ticks. Throttle flags are levels;
// steering, view, confirm and reset are edges cleared by Sample. The latest
// value of each wins.
type InputLatch struct {
	accel   bool
	decel   bool
	steer   int
	view    View
	confirm bool
	reset   bool
}

func (l *InputLatch) Accelerate(on bool) { l.accel = on }
func (l *InputLatch) Decelerate(on bool) { l.decel = on }
func (l *InputLatch) SteerIn()           { l.steer = SteerIn }
func (l *InputLatch) SteerOut()          { l.steer = SteerOut }
func (l *InputLatch) Confirm()           { l.confirm = true }
func (l *InputLatch) Reset()             { l.reset = true }

// SelectView records a camera choice; anything but 1, 2 or 3 is ignored.
func (l *InputLatch) SelectView(n int) {
	if v := View(n); v.Valid() {
		l.view = v
	}
}

// Sample returns the current snapshot and clears the edge signals.
func (l *InputLatch) Sample() Input {
	in := Input{
		Accelerate: l.accel,
		Decelerate: l.decel,
		Steer:      l.steer,
		View:       l.view,
		Confirm:    l.confirm,
		Reset:      l.reset,
	}
	l.steer = SteerNone
	l.view = 0
	l.confirm = false
	l.reset = false
	return in
}
