package race

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottle_Multiplier(t *testing.T) {
	tu := DefaultTuning()

	tests := []struct {
		name string
		th   Throttle
		want float64
	}{
		{"coast", Throttle{}, 1.0},
		{"accelerate", Throttle{Accelerate: true}, 2.0},
		{"decelerate", Throttle{Decelerate: true}, 0.5},
		{"both pedals accelerate", Throttle{Accelerate: true, Decelerate: true}, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.th.Multiplier(tu))
		})
	}
}

func TestPlayer_AdvanceDecreasesMovedBySpeedTimesDt(t *testing.T) {
	tu := DefaultTuning()
	p := NewPlayer(tu.Track())

	for _, dt := range []float64{0, 0.001, 0.016, 0.25, 1, 3.5} {
		for _, th := range []Throttle{{}, {Accelerate: true}, {Decelerate: true}} {
			before := p.Moved
			d := p.Advance(dt, th, tu)
			want := tu.BaseSpeed * th.Multiplier(tu) * dt
			assert.InDelta(t, want, d, 1e-12)
			assert.InDelta(t, before-want, p.Moved, 1e-9)
			if dt > 0 {
				assert.Less(t, p.Moved, before)
			}
		}
	}
}

func TestPlayer_ScenarioOneSecondAccelerating(t *testing.T) {
	tu := DefaultTuning()
	tu.BaseSpeed = 0.0017
	p := NewPlayer(tu.Track())
	require.Equal(t, tu.CenterRadius, p.Radius)

	p.Advance(1.0, Throttle{Accelerate: true}, tu)

	assert.InDelta(t, -0.0034, p.Moved, 1e-12)
}

func TestPlayer_LapsMonotonic(t *testing.T) {
	tu := DefaultTuning()
	p := NewPlayer(tu.Track())

	last := 0
	for i := 0; i < 2000; i++ {
		p.Advance(0.05, Throttle{Accelerate: i%3 == 0}, tu)
		laps := p.Laps()
		assert.GreaterOrEqual(t, laps, last)
		last = laps
	}
	assert.Equal(t, int(math.Floor(math.Abs(p.Moved)/twoPi)), last)
	assert.Positive(t, last)
}

func TestPlayer_TransformAtStart(t *testing.T) {
	tu := DefaultTuning()
	tr := tu.Track()
	p := NewPlayer(tr)

	tf := p.Transform(tr)

	assert.Equal(t, KindPlayer, tf.Kind)
	assert.InDelta(t, -100, tf.X, 1e-9)
	assert.InDelta(t, 0, tf.Y, 1e-9)
	assert.InDelta(t, pi/2, tf.Heading, 1e-9)
	// Heading is vertical, so the long side lies along Y.
	assert.InDelta(t, CarWidth/2, tf.HalfX, 1e-9)
	assert.InDelta(t, CarLength/2, tf.HalfY, 1e-9)
}

func TestPlayer_SteerClamps(t *testing.T) {
	tr := DefaultTuning().Track()
	p := NewPlayer(tr)

	for i := 0; i < 50; i++ {
		p.Steer(-4, tr)
	}
	assert.Equal(t, tr.MinRadius(), p.Radius)

	for i := 0; i < 50; i++ {
		p.Steer(4, tr)
	}
	assert.Equal(t, tr.MaxRadius(), p.Radius)
}

func TestTrafficVehicle_AdvanceWrapsAndCountsLaps(t *testing.T) {
	ccw := TrafficVehicle{Kind: KindCar, Angle: twoPi - 0.1, SpeedFactor: 1}
	laps := ccw.Advance(0.2, 1)
	assert.Equal(t, 1, laps)
	assert.InDelta(t, 0.1, ccw.Angle, 1e-9)

	cw := TrafficVehicle{Kind: KindTruck, Angle: 0.1, SpeedFactor: 1, Clockwise: true}
	laps = cw.Advance(0.2, 1)
	assert.Equal(t, 1, laps)
	assert.InDelta(t, twoPi-0.1, cw.Angle, 1e-9)

	still := TrafficVehicle{Kind: KindCar, Angle: 1, SpeedFactor: 1}
	assert.Zero(t, still.Advance(0.5, 1))
	assert.InDelta(t, 1.5, still.Angle, 1e-12)
}

func TestTrafficVehicle_Heading(t *testing.T) {
	v := TrafficVehicle{Angle: 1}
	assert.InDelta(t, 1+pi/2, v.Heading(), 1e-12)

	v.Clockwise = true
	assert.InDelta(t, 1-pi/2, v.Heading(), 1e-12)
}
