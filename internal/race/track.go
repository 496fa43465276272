package race

import "math"

// Track is the annular drivable region centred on the origin.
type Track struct {
	CenterRadius float64
	HalfWidth    float64
	Margin       float64
}

// NewTrack normalises negative widths and keeps the margin inside the half
// width so the drivable band never inverts.
func NewTrack(centerRadius, halfWidth, margin float64) Track {
	halfWidth = math.Abs(halfWidth)
	margin = clampF(margin, 0, halfWidth)
	return Track{CenterRadius: centerRadius, HalfWidth: halfWidth, Margin: margin}
}

func (t Track) InnerRadius() float64 { return t.CenterRadius - t.HalfWidth }
func (t Track) OuterRadius() float64 { return t.CenterRadius + t.HalfWidth }

// MinRadius and MaxRadius bound every vehicle's radial position.
func (t Track) MinRadius() float64 { return t.InnerRadius() + t.Margin }
func (t Track) MaxRadius() float64 { return t.OuterRadius() - t.Margin }

// ClampRadius corrects r into [MinRadius, MaxRadius].
func (t Track) ClampRadius(r float64) float64 {
	return clampF(r, t.MinRadius(), t.MaxRadius())
}

// Position converts a polar placement to world coordinates.
func (t Track) Position(angle, radius float64) (float64, float64) {
	return radius * math.Cos(angle), radius * math.Sin(angle)
}
