package race

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrack_Radii(t *testing.T) {
	tr := NewTrack(100, 25, 8)

	assert.Equal(t, 75.0, tr.InnerRadius())
	assert.Equal(t, 125.0, tr.OuterRadius())
	assert.Equal(t, 83.0, tr.MinRadius())
	assert.Equal(t, 117.0, tr.MaxRadius())
}

func TestTrack_ClampRadiusIdempotentAndBounded(t *testing.T) {
	tr := DefaultTuning().Track()

	for r := -50.0; r <= 250; r += 0.75 {
		c := tr.ClampRadius(r)
		assert.Equal(t, c, tr.ClampRadius(c), "r=%v", r)
		assert.GreaterOrEqual(t, c, tr.MinRadius())
		assert.LessOrEqual(t, c, tr.MaxRadius())
	}
}

func TestNewTrack_MarginNeverInvertsBand(t *testing.T) {
	tr := NewTrack(100, 10, 30)

	assert.Equal(t, 10.0, tr.Margin)
	assert.Equal(t, 100.0, tr.ClampRadius(0))
	assert.Equal(t, 100.0, tr.ClampRadius(500))
}

func TestTrack_Position(t *testing.T) {
	tr := DefaultTuning().Track()

	x, y := tr.Position(pi, 100)
	assert.InDelta(t, -100, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}
