package race

import "math"

// Pickup is a fuel can sitting on the centre line.
type Pickup struct {
	Angle  float64
	Radius float64
}

func (p Pickup) Transform(t Track) Transform {
	x, y := t.Position(p.Angle, p.Radius)
	return place(KindFuelCan, x, y, p.Angle+math.Pi/2)
}

// pickupAngle picks a spot at least 60 degrees from the player on either side.
func (s *State) pickupAngle() float64 {
	return wrapAngle(s.Player.TotalAngle() + math.Pi/3 + s.rng.Float64()*4*math.Pi/3)
}

func (s *State) placePickups() {
	s.Pickups = s.Pickups[:0]
	for i := 0; i < s.Tuning.PickupCount; i++ {
		s.Pickups = append(s.Pickups, Pickup{
			Angle:  s.pickupAngle(),
			Radius: s.Track.ClampRadius(s.Track.CenterRadius),
		})
	}
}

func (s *State) relocatePickup(i int) {
	s.Pickups[i].Angle = s.pickupAngle()
}
