package view

import (
	"math"

	"ringrace/internal/race"
)

// SpriteStride is the float count per sprite: x, y, size, r, g, b, a, rotation.
const SpriteStride = 8

func appendSprite(buf []float32, x, y, size float64, c RGB, a float32) []float32 {
	r, g, b := c.Floats()
	return append(buf, float32(x), float32(-y), float32(size), r, g, b, a, 0)
}

// TrackSprites fills the annulus with square road tiles, then lays kerbs on
// both edges and a dashed centre line. The buffer is reset internally.
func TrackSprites(tr race.Track, buf []float32) []float32 {
	buf = buf[:0]

	width := tr.OuterRadius() - tr.InnerRadius()
	const tile = 6.0
	rows := int(math.Ceil(width / tile))
	for i := 0; i < rows; i++ {
		r := tr.InnerRadius() + (float64(i)+0.5)*width/float64(rows)
		n := int(math.Ceil(2 * math.Pi * r / (tile * 0.7)))
		col := Palette.Road
		if i == 0 || i == rows-1 {
			col = Palette.RoadEdge
		}
		for k := 0; k < n; k++ {
			a := 2 * math.Pi * float64(k) / float64(n)
			x, y := tr.Position(a, r)
			buf = appendSprite(buf, x, y, tile, col, 1)
		}
	}

	for _, r := range []float64{tr.InnerRadius(), tr.OuterRadius()} {
		n := int(math.Ceil(2 * math.Pi * r / 3))
		for k := 0; k < n; k++ {
			a := 2 * math.Pi * float64(k) / float64(n)
			x, y := tr.Position(a, r)
			col := Palette.KerbWhite
			if (k/2)%2 == 0 {
				col = Palette.KerbRed
			}
			buf = appendSprite(buf, x, y, 3, col, 1)
		}
	}

	n := int(math.Ceil(2 * math.Pi * tr.CenterRadius / 2))
	for k := 0; k < n; k++ {
		if (k/3)%2 == 1 {
			continue
		}
		a := 2 * math.Pi * float64(k) / float64(n)
		x, y := tr.Position(a, tr.CenterRadius)
		buf = appendSprite(buf, x, y, 1.2, Palette.Line, 1)
	}
	return buf
}

// PickupGlow returns additive glow sprites under each fuel can.
func PickupGlow(f race.Frame, pulse float64, buf []float32) []float32 {
	buf = buf[:0]
	b := 0.35 + 0.15*math.Sin(pulse*4)
	for _, p := range f.Pickups {
		c := Palette.Fuel
		r, g, bl := c.Floats()
		buf = append(buf, float32(p.X), float32(-p.Y), float32(p.HalfX*5),
			r*float32(b), g*float32(b), bl*float32(b), 1, 0)
	}
	return buf
}

// Quad is a rotated rectangle for one entity, in y-down world space.
type Quad struct {
	Kind     race.Kind
	X, Y     float64 // centre
	W, H     float64 // width across, length along heading
	Rotation float64
	Index    int
}

// Origin returns the top-left corner of the unrotated quad.
func (q Quad) Origin() (float64, float64) {
	return q.X - q.W*0.5, q.Y - q.H*0.5
}

func quadFor(t race.Transform, index int) Quad {
	length, width := t.Kind.Footprint()
	return Quad{
		Kind:  t.Kind,
		X:     t.X,
		Y:     -t.Y,
		W:     width,
		H:     length,
		Index: index,
		// Texture front is at local -Y; the y flip mirrors the heading.
		Rotation: -t.Heading + math.Pi*0.5,
	}
}

// VehicleQuads lists pickups, traffic, then the player, in draw order.
func VehicleQuads(f race.Frame, buf []Quad) []Quad {
	buf = buf[:0]
	for i, p := range f.Pickups {
		buf = append(buf, quadFor(p, i))
	}
	for i, t := range f.Traffic {
		buf = append(buf, quadFor(t, i))
	}
	return append(buf, quadFor(f.Player, 0))
}

// ShadowSprites returns soft shadows offset south-east of every vehicle.
func ShadowSprites(f race.Frame, buf []float32) []float32 {
	buf = buf[:0]
	add := func(t race.Transform) {
		length, width := t.Kind.Footprint()
		fwdX := math.Cos(t.Heading)
		fwdY := math.Sin(t.Heading)
		step := length * 0.3
		for _, k := range [3]float64{-1, 0, 1} {
			buf = append(buf,
				float32(t.X+fwdX*step*k+1.2), float32(-(t.Y+fwdY*step*k)+1.6),
				float32(width*0.95), 0, 0, 0, 0.22, 0)
		}
	}
	for _, t := range f.Traffic {
		add(t)
	}
	add(f.Player)
	return buf
}

// HUDSprites draws health and fuel bars in the top-left corner. Sprites are in
// world space so they share the sprite program; sizes are divided by zoom to
// stay a fixed number of pixels.
func HUDSprites(hud race.HUD, cam Camera, fbW, fbH int, buf []float32) []float32 {
	buf = buf[:0]
	const (
		cells = 24
		cell  = 10.0 // pixels
		gap   = 2.0
		left  = 14.0
		top   = 14.0
	)
	bar := func(row int, frac float64, col RGB) {
		filled := int(math.Round(frac * cells))
		for i := 0; i < cells; i++ {
			c := Palette.BarEmpty
			if i < filled {
				c = col
			}
			px := left + float64(i)*(cell+gap) + cell*0.5
			py := top + float64(row)*(cell+gap*3) + cell*0.5
			wx, wy := cam.ScreenToWorld(px, py, fbW, fbH)
			r, g, b := c.Floats()
			buf = append(buf, float32(wx), float32(wy), float32(cell/cam.Zoom), r, g, b, 0.9, 0)
		}
	}
	bar(0, hud.HealthFraction, HealthBarColor(hud.HealthFraction))
	fuelCol := Palette.Fuel
	if hud.FuelFraction < 0.2 {
		fuelCol = RGB{R: 220, G: 60, B: 60}
	}
	bar(1, hud.FuelFraction, fuelCol)
	return buf
}
