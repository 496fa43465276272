package race

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResources_Burn(t *testing.T) {
	tu := DefaultTuning()

	tests := []struct {
		name string
		th   Throttle
		want float64
	}{
		{"coast", Throttle{}, 100 - 0.02},
		{"accelerate", Throttle{Accelerate: true}, 100 - 0.02 - 0.03},
		{"decelerate regains", Throttle{Decelerate: true}, 100},
		{"both pedals drain", Throttle{Accelerate: true, Decelerate: true}, 100 - 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResources(tu)
			r.Burn(tt.th, tu)
			assert.InDelta(t, tt.want, r.Fuel, 1e-12)
		})
	}
}

func TestResources_BrakingOverfillsTank(t *testing.T) {
	tu := DefaultTuning()
	tu.DecelerateRegen = 0.05
	r := NewResources(tu)

	r.Burn(Throttle{Decelerate: true}, tu)

	assert.Greater(t, r.Fuel, r.FuelMax)
	assert.Equal(t, 1.0, r.FuelFraction())
}

func TestResources_TravelWraps(t *testing.T) {
	tu := DefaultTuning()
	r := NewResources(tu)

	r.Travel(5000, tu)
	assert.InDelta(t, 500, r.DistanceRemaining, 1e-9)

	r.Travel(4995, tu)
	assert.InDelta(t, tu.DistanceInitial, r.DistanceRemaining, 1e-9, "below 1 wraps to the start value")
}

func TestResources_UpdateLaps(t *testing.T) {
	r := NewResources(DefaultTuning())

	assert.False(t, r.UpdateLaps(0))
	assert.True(t, r.UpdateLaps(3))
	assert.Equal(t, 3, r.Score)
	assert.Equal(t, 3, r.Retained)
}

func TestResources_Exhausted(t *testing.T) {
	r := NewResources(DefaultTuning())
	assert.False(t, r.Exhausted())

	r.Fuel = 0
	assert.False(t, r.Exhausted(), "empty tank is still running")

	r.Fuel = -0.01
	assert.True(t, r.Exhausted())

	r = NewResources(DefaultTuning())
	r.Health.Damage(100)
	assert.True(t, r.Exhausted())
}

func TestHealth_DamageGoesNegative(t *testing.T) {
	h := NewHealth(1)
	h.Damage(1.5)

	assert.InDelta(t, -0.5, h.Current, 1e-12)
	assert.True(t, h.IsDead())
	assert.Equal(t, 0.0, h.Fraction())
}
