package race

// TrafficRegistry holds the live traffic plus the lap-credit history of every
// vehicle ever spawned. Live vehicles are appended and never reordered; the
// history and Spawned survive resets.
type TrafficRegistry struct {
	Live    []TrafficVehicle
	Credits []int
	Spawned int
}

// SpawnBound is the maximum live traffic allowed at the given lap count.
func SpawnBound(lapCount int) int {
	if lapCount < 0 {
		return 0
	}
	return (lapCount + 1) / 3
}

func (tr TrafficRegistry) clone() TrafficRegistry {
	out := TrafficRegistry{Spawned: tr.Spawned}
	if tr.Live != nil {
		out.Live = append(make([]TrafficVehicle, 0, len(tr.Live)+1), tr.Live...)
	}
	if tr.Credits != nil {
		out.Credits = append(make([]int, 0, len(tr.Credits)+1), tr.Credits...)
	}
	return out
}

// maybeSpawn adds at most one vehicle when the live count is under the bound.
// A jump of several laps in one tick still yields a single spawn.
func (s *State) maybeSpawn(lapCount int) (TrafficVehicle, bool) {
	if len(s.Traffic.Live) >= SpawnBound(lapCount) {
		return TrafficVehicle{}, false
	}
	t := s.Tuning
	r := &s.rng

	kind := KindCar
	if r.Bool() {
		kind = KindTruck
	}
	var speed float64
	switch kind {
	case KindCar:
		speed = r.RangeF(t.CarSpeedMin, t.CarSpeedMax)
	case KindTruck:
		speed = r.RangeF(t.TruckSpeedMin, t.TruckSpeedMax)
	}
	v := TrafficVehicle{
		Kind:        kind,
		Clockwise:   r.Bool(),
		SpeedFactor: speed,
		Radius:      s.Track.ClampRadius(r.RangeF(t.CenterRadius-t.SpawnBand, t.CenterRadius+t.SpawnBand)),
		// Opposite side of the ring from the player.
		Angle:  wrapAngle(s.Player.TotalAngle() + pi),
		Credit: len(s.Traffic.Credits),
	}
	s.Traffic.Live = append(s.Traffic.Live, v)
	s.Traffic.Credits = append(s.Traffic.Credits, 0)
	s.Traffic.Spawned++
	return v, true
}

// advanceTraffic moves every live vehicle and credits completed laps.
func (s *State) advanceTraffic(dt float64) {
	for i := range s.Traffic.Live {
		v := &s.Traffic.Live[i]
		if laps := v.Advance(dt, s.Tuning.BaseSpeed); laps > 0 {
			s.Traffic.Credits[v.Credit] += laps
		}
	}
}
