package race

import "time"

// Track geometry (world units). The arcade scene lays the ring around the origin.
const (
	DefaultCenterRadius = 100.0
	DefaultHalfWidth    = 25.0
	DefaultTrackMargin  = 8.0
)

// Footprints in world units: length along the heading, width across it.
// Car meshes are 60x30 at 0.3 scale, trucks 105x35 at 0.5.
const (
	CarLength   = 18.0
	CarWidth    = 9.0
	TruckLength = 52.5
	TruckWidth  = 17.5
	FuelCanSize = 8.0
)

// Resource defaults.
const (
	DefaultHealthMax       = 100.0
	DefaultFuelMax         = 100.0
	DefaultDistanceInitial = 1000.0
)

// Tuning holds every knob the simulation reads. A zero Tuning is not usable;
// start from DefaultTuning and override.
type Tuning struct {
	CenterRadius float64
	HalfWidth    float64
	Margin       float64

	BaseSpeed       float64 // rad/s
	AccelMultiplier float64
	DecelMultiplier float64
	SteerStep       float64 // world units per steer press

	CollisionPenalty float64 // health per tick of contact

	// Fuel is drained per tick, not per second.
	BaseDrain       float64
	AccelerateDrain float64
	DecelerateRegen float64

	HealthMax float64
	FuelMax   float64

	DistanceInitial float64
	DistanceScale   float64 // world units of arc per distance unit

	SpawnBand     float64 // half width of the traffic radius band around the centre line
	CarSpeedMin   float64
	CarSpeedMax   float64
	TruckSpeedMin float64
	TruckSpeedMax float64

	PickupCount int

	// MaxStep clamps a single frame's dt. Zero disables clamping.
	MaxStep time.Duration
}

func DefaultTuning() Tuning {
	return Tuning{
		CenterRadius: DefaultCenterRadius,
		HalfWidth:    DefaultHalfWidth,
		Margin:       DefaultTrackMargin,

		BaseSpeed:       1.7,
		AccelMultiplier: 2.0,
		DecelMultiplier: 0.5,
		SteerStep:       4.0,

		CollisionPenalty: 0.5,

		BaseDrain:       0.02,
		AccelerateDrain: 0.03,
		DecelerateRegen: 0.02,

		HealthMax: DefaultHealthMax,
		FuelMax:   DefaultFuelMax,

		DistanceInitial: DefaultDistanceInitial,
		DistanceScale:   10.0,

		SpawnBand:     15.0,
		CarSpeedMin:   0.8,
		CarSpeedMax:   1.5,
		TruckSpeedMin: 0.4,
		TruckSpeedMax: 1.2,

		PickupCount: 1,

		MaxStep: 250 * time.Millisecond,
	}
}

// Track builds the track described by the tuning.
func (t Tuning) Track() Track {
	return NewTrack(t.CenterRadius, t.HalfWidth, t.Margin)
}
