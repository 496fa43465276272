package race

import "time"

type Phase int

const (
	PhaseIntro Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// State is the whole simulation. Tick takes a State and returns the next one;
// nothing else mutates it.
type State struct {
	Tuning Tuning
	Track  Track

	Phase Phase
	// Active is set once accelerate is pressed in Running. Until then no dt
	// is consumed.
	Active bool
	View   View
	Ticks  uint64

	Player  Player
	Traffic TrafficRegistry
	Pickups []Pickup
	Res     Resources

	Result    Result
	HasResult bool

	Clock FrameClock
	rng   Rand
}

func NewState(t Tuning, seed uint64) State {
	s := State{
		Tuning: t,
		Track:  t.Track(),
		Phase:  PhaseIntro,
		View:   ViewOverview,
		rng:    NewRand(seed),
	}
	s.Player = NewPlayer(s.Track)
	s.Res = NewResources(t)
	s.placePickups()
	return s
}

func (s State) clone() State {
	out := s
	out.Traffic = s.Traffic.clone()
	if s.Pickups != nil {
		out.Pickups = append([]Pickup(nil), s.Pickups...)
	}
	return out
}

// Tick applies one input snapshot at timestamp now and returns the next state
// with the events it produced. The input state is never modified.
func Tick(s State, in Input, now time.Duration) (State, []Event) {
	n := s.clone()
	var ev []Event

	switch n.Phase {
	case PhaseIntro:
		if in.Confirm {
			n.Phase = PhaseRunning
			n.Active = false
			n.Clock.Restart()
			ev = append(ev, Event{Type: EventStart})
		}
		return n, ev

	case PhaseGameOver:
		if in.Reset {
			n.reset()
			ev = append(ev, Event{Type: EventReset})
		}
		return n, ev
	}

	// Running: steering and view apply with or without throttle.
	if in.Steer != SteerNone {
		n.Player.Steer(float64(in.Steer)*n.Tuning.SteerStep, n.Track)
	}
	if in.View.Valid() && in.View != n.View {
		n.View = in.View
		ev = append(ev, Event{Type: EventView, Data: int(in.View)})
	}

	if !n.Active {
		if !in.Accelerate {
			return n, ev
		}
		n.Active = true
		n.Clock.Restart()
	}

	dt, ok := n.Clock.Advance(now, n.Tuning.MaxStep)
	if !ok {
		return n, ev
	}
	n.Ticks++
	ev = n.step(dt, in, ev)
	return n, ev
}

// step advances motion, resources, spawning and collisions by dt seconds.
func (s *State) step(dt float64, in Input, ev []Event) []Event {
	t := s.Tuning
	th := Throttle{Accelerate: in.Accelerate, Decelerate: in.Decelerate}

	d := s.Player.Advance(dt, th, t)
	s.Res.Travel(d*s.Player.Radius, t)
	s.advanceTraffic(dt)

	s.Res.Burn(th, t)
	s.Res.Elapsed += dt

	laps := s.Player.Laps()
	if s.Res.UpdateLaps(laps) {
		ev = append(ev, Event{Type: EventLap, Data: laps})
	}
	if v, ok := s.maybeSpawn(laps); ok {
		x, y := s.Track.Position(v.Angle, v.Radius)
		ev = append(ev, Event{Type: EventSpawn, Kind: v.Kind, X: x, Y: y, Data: s.Traffic.Spawned})
	}

	player := s.Player.Transform(s.Track)
	traffic, pickups := s.transforms()
	hits := DetectCollisions(player, traffic, pickups)
	s.Res.Health.Damage(-hits.HealthDelta(t.CollisionPenalty))
	for _, i := range hits.Traffic {
		ev = append(ev, Event{Type: EventCollision, Kind: traffic[i].Kind, X: player.X, Y: player.Y, Data: i})
	}
	for _, i := range hits.Pickups {
		s.Res.Refuel()
		s.relocatePickup(i)
		ev = append(ev, Event{Type: EventPickup, Kind: KindFuelCan, X: pickups[i].X, Y: pickups[i].Y, Data: i})
	}

	if s.Res.Exhausted() {
		s.gameOver()
		ev = append(ev, Event{Type: EventGameOver, Data: s.Result.Score})
	}
	return ev
}

func (s *State) gameOver() {
	score := s.Res.Retained
	s.Result = Result{
		Score:   score,
		Rank:    Rank(s.Traffic.Credits, s.Traffic.Spawned, score),
		Field:   s.Traffic.Spawned + 1,
		Elapsed: s.Res.Elapsed,
	}
	s.HasResult = true
	s.Phase = PhaseGameOver
	s.Active = false
}

// reset returns to an idle Running phase. The lap-credit history, spawn total
// and last result survive.
func (s *State) reset() {
	s.Phase = PhaseRunning
	s.Active = false
	s.Clock.Restart()
	s.Player = NewPlayer(s.Track)
	s.Traffic.Live = nil
	s.Res = NewResources(s.Tuning)
	s.placePickups()
}
