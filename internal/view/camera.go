// Package view turns race frames into camera placement, sprite buffers and
// HUD text for the desktop renderer.
package view

import (
	"math"

	"ringrace/internal/race"
)

// The world is drawn y-down: screen Y is the negated race Y.

type Camera struct {
	X, Y float64 // world space (y-down), camera centre
	Zoom float64 // screen pixels per world unit

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in world units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := race.NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// Shaken returns a copy positioned at its effective position, ready to hand
// to the renderer.
func (c Camera) Shaken() Camera {
	c.X, c.Y = c.EffectivePos()
	c.ShakeX, c.ShakeY = 0, 0
	return c
}

// ScreenToWorld maps a framebuffer pixel to world space.
func (c Camera) ScreenToWorld(px, py float64, fbW, fbH int) (float64, float64) {
	return c.X + (px-float64(fbW)*0.5)/c.Zoom, c.Y + (py-float64(fbH)*0.5)/c.Zoom
}

// FitZoom is the zoom at which the whole ring fits the framebuffer.
func FitZoom(tr race.Track, fbW, fbH int) float64 {
	side := math.Min(float64(fbW), float64(fbH))
	if side <= 0 {
		return 1
	}
	return side / (2 * tr.OuterRadius() * 1.1)
}

// Follow places the camera for the frame's view: the overview fits the whole
// ring, the follow views track the player at their zoom factor. Zoom eases
// toward its target so switching views is not a jump cut.
func (c *Camera) Follow(f race.Frame, dt float64, fbW, fbH int) {
	target := FitZoom(f.Track, fbW, fbH) * f.View.Zoom()
	if c.Zoom <= 0 || dt <= 0 {
		c.Zoom = target
	} else {
		c.Zoom += (target - c.Zoom) * math.Min(1, dt*8)
	}

	if f.View == race.ViewOverview {
		c.X, c.Y = 0, 0
		return
	}
	c.X, c.Y = f.Player.X, -f.Player.Y
}
