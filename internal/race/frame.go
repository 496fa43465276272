package race

// View is the active camera selection.
type View int

const (
	ViewOverview View = 1
	ViewFollow   View = 2
	ViewClose    View = 3
)

func (v View) Valid() bool { return v >= ViewOverview && v <= ViewClose }

// Zoom is the magnification a renderer should apply for the view.
func (v View) Zoom() float64 {
	switch v {
	case ViewFollow:
		return 2
	case ViewClose:
		return 4
	}
	return 1
}

// HUD is everything a presentation layer shows besides the scene.
type HUD struct {
	Phase             Phase
	Active            bool
	Health            float64
	HealthFraction    float64
	Fuel              float64
	FuelFraction      float64
	Score             int
	Laps              int
	Elapsed           float64
	DistanceRemaining float64
	Result            Result
	HasResult         bool
}

// Frame is the per-tick render export.
type Frame struct {
	Track       Track
	PlayerAngle float64
	Player      Transform
	Traffic     []Transform
	Pickups     []Transform
	View        View
	HUD         HUD
}

func (s State) Frame() Frame {
	f := Frame{
		Track:       s.Track,
		PlayerAngle: s.Player.TotalAngle(),
		Player:      s.Player.Transform(s.Track),
		View:        s.View,
		HUD:         s.HUD(),
	}
	f.Traffic, f.Pickups = s.transforms()
	return f
}

func (s State) HUD() HUD {
	return HUD{
		Phase:             s.Phase,
		Active:            s.Active,
		Health:            s.Res.Health.Current,
		HealthFraction:    s.Res.Health.Fraction(),
		Fuel:              s.Res.Fuel,
		FuelFraction:      s.Res.FuelFraction(),
		Score:             s.Res.Score,
		Laps:              s.Res.Laps,
		Elapsed:           s.Res.Elapsed,
		DistanceRemaining: s.Res.DistanceRemaining,
		Result:            s.Result,
		HasResult:         s.HasResult,
	}
}

// transforms rebuilds every traffic and pickup placement from current state.
func (s State) transforms() ([]Transform, []Transform) {
	traffic := make([]Transform, 0, len(s.Traffic.Live))
	for _, v := range s.Traffic.Live {
		traffic = append(traffic, v.Transform(s.Track))
	}
	pickups := make([]Transform, 0, len(s.Pickups))
	for _, p := range s.Pickups {
		pickups = append(pickups, p.Transform(s.Track))
	}
	return traffic, pickups
}
