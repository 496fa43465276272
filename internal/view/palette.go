package view

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: addU8(c.R, dr), G: addU8(c.G, dg), B: addU8(c.B, db)}
}

func addU8(v uint8, d int) uint8 {
	n := int(v) + d
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Floats returns the colour as 0..1 components.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Grass     RGB
	Road      RGB
	RoadEdge  RGB
	Line      RGB
	KerbRed   RGB
	KerbWhite RGB
	Player    RGB
	Car       RGB
	Truck     RGB
	Fuel      RGB
	BarEmpty  RGB
	Glow      RGB
}{
	Grass:     RGB{R: 96, G: 128, B: 72},
	Road:      RGB{R: 60, G: 66, B: 79},
	RoadEdge:  RGB{R: 48, G: 52, B: 62},
	Line:      RGB{R: 235, G: 235, B: 220},
	KerbRed:   RGB{R: 200, G: 50, B: 45},
	KerbWhite: RGB{R: 230, G: 230, B: 230},
	Player:    RGB{R: 240, G: 200, B: 40},
	Car:       RGB{R: 180, G: 80, B: 70},
	Truck:     RGB{R: 70, G: 110, B: 170},
	Fuel:      RGB{R: 60, G: 200, B: 90},
	BarEmpty:  RGB{R: 30, G: 30, B: 34},
	Glow:      RGB{R: 255, G: 200, B: 90},
}

// HealthBarColor returns green/yellow/red based on fraction.
func HealthBarColor(frac float64) RGB {
	if frac > 0.6 {
		return RGB{R: 60, G: 220, B: 60}
	}
	if frac > 0.3 {
		return RGB{R: 220, G: 220, B: 60}
	}
	return RGB{R: 220, G: 60, B: 60}
}
