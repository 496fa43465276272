package race

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnBound(t *testing.T) {
	tests := []struct {
		laps int
		want int
	}{
		{0, 0}, {1, 0}, {2, 1}, {4, 1}, {5, 2}, {8, 3}, {9, 3}, {-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpawnBound(tt.laps), "laps=%d", tt.laps)
	}
}

func TestMaybeSpawn_Attributes(t *testing.T) {
	tu := DefaultTuning()
	s := NewState(tu, 7)

	for i := 0; i < 200; i++ {
		v, ok := s.maybeSpawn(1000)
		require.True(t, ok)

		switch v.Kind {
		case KindCar:
			assert.GreaterOrEqual(t, v.SpeedFactor, tu.CarSpeedMin)
			assert.LessOrEqual(t, v.SpeedFactor, tu.CarSpeedMax)
		case KindTruck:
			assert.GreaterOrEqual(t, v.SpeedFactor, tu.TruckSpeedMin)
			assert.LessOrEqual(t, v.SpeedFactor, tu.TruckSpeedMax)
		default:
			t.Fatalf("unexpected kind %v", v.Kind)
		}
		assert.GreaterOrEqual(t, v.Radius, tu.CenterRadius-tu.SpawnBand)
		assert.LessOrEqual(t, v.Radius, tu.CenterRadius+tu.SpawnBand)
		assert.Equal(t, i, v.Credit)
	}
	assert.Equal(t, 200, s.Traffic.Spawned)
	assert.Len(t, s.Traffic.Credits, 200)
}

func TestMaybeSpawn_OppositePlayer(t *testing.T) {
	s := NewState(DefaultTuning(), 1)

	v, ok := s.maybeSpawn(2)
	require.True(t, ok)
	assert.InDelta(t, 0, v.Angle, 1e-9)

	_, ok = s.maybeSpawn(2)
	assert.False(t, ok, "bound at lap 2 is one vehicle")
}

func TestTick_LapJumpSpawnsAtMostOne(t *testing.T) {
	tu := DefaultTuning()
	tu.MaxStep = 0
	s := running(t, tu, 3)

	s.Player.Moved = -(5*twoPi + 0.01)
	s.Res.UpdateLaps(5)
	s.Traffic.Live = []TrafficVehicle{
		{Kind: KindCar, Angle: 0.5, Radius: tu.CenterRadius, SpeedFactor: 1},
		{Kind: KindTruck, Angle: 1.0, Radius: tu.CenterRadius, SpeedFactor: 1},
	}
	s.Traffic.Credits = []int{0, 0}
	s.Traffic.Spawned = 2
	s.Tuning.BaseSpeed = 4 * twoPi // accelerate doubles it, dt is half a second

	n, events := Tick(s, Input{Accelerate: true}, 500*time.Millisecond)

	assert.Equal(t, 9, n.Res.Laps)
	assert.Len(t, n.Traffic.Live, 3)
	assert.Equal(t, 3, n.Traffic.Spawned)
	assert.Equal(t, 1, countEvents(events, EventSpawn))
}

func TestTick_SpawnInvariantOverLongRun(t *testing.T) {
	tu := DefaultTuning()
	tu.CollisionPenalty = 0
	tu.BaseDrain = 0
	tu.AccelerateDrain = 0
	tu.BaseSpeed = 6
	s := running(t, tu, 11)

	now := time.Duration(0)
	for i := 0; i < 5000; i++ {
		now += 16 * time.Millisecond
		before := len(s.Traffic.Live)
		s, _ = Tick(s, Input{Accelerate: true}, now)
		require.Equal(t, PhaseRunning, s.Phase)
		live := len(s.Traffic.Live)
		assert.LessOrEqual(t, live, SpawnBound(s.Res.Laps))
		assert.LessOrEqual(t, live-before, 1)
	}
	assert.Positive(t, len(s.Traffic.Live))
}

func TestAdvanceTraffic_CreditsLaps(t *testing.T) {
	s := NewState(DefaultTuning(), 5)
	s.Traffic.Live = []TrafficVehicle{{Kind: KindCar, Angle: twoPi - 0.01, Radius: 100, SpeedFactor: 1, Credit: 1}}
	s.Traffic.Credits = []int{4, 0}

	s.advanceTraffic(0.1)

	assert.Equal(t, []int{4, 1}, s.Traffic.Credits)
}
