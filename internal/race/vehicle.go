package race

import "math"

// Kind tags every entity the render surface exports.
type Kind int

const (
	KindPlayer Kind = iota
	KindCar
	KindTruck
	KindFuelCan
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCar:
		return "car"
	case KindTruck:
		return "truck"
	case KindFuelCan:
		return "fuel"
	}
	return "unknown"
}

// Footprint returns the length (along heading) and width of the entity.
func (k Kind) Footprint() (float64, float64) {
	switch k {
	case KindPlayer, KindCar:
		return CarLength, CarWidth
	case KindTruck:
		return TruckLength, TruckWidth
	case KindFuelCan:
		return FuelCanSize, FuelCanSize
	}
	return 0, 0
}

// Transform is the world placement of one entity for a single tick.
type Transform struct {
	Kind    Kind
	X, Y    float64
	Heading float64
	// Axis-aligned half extents of the rotated footprint.
	HalfX, HalfY float64
}

// place computes the transform and its axis-aligned extents. Extents depend on
// the heading, so they have to be rebuilt whenever the entity moves.
func place(k Kind, x, y, heading float64) Transform {
	length, width := k.Footprint()
	c := math.Abs(math.Cos(heading))
	s := math.Abs(math.Sin(heading))
	return Transform{
		Kind:    k,
		X:       x,
		Y:       y,
		Heading: heading,
		HalfX:   (c*length + s*width) * 0.5,
		HalfY:   (s*length + c*width) * 0.5,
	}
}

// Box returns the axis-aligned bounding box of the transform.
func (t Transform) Box() RectF {
	return RectF{
		X0: t.X - t.HalfX, Y0: t.Y - t.HalfY,
		X1: t.X + t.HalfX, Y1: t.Y + t.HalfY,
	}
}
