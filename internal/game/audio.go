package game

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"

	"ringrace/internal/race"
	"ringrace/internal/sfx"
)

const (
	// Limit simultaneous crash sounds; more causes speaker clipping.
	maxCrashVoices = 2
	crashVariants  = 4
	// Contact lasts many ticks; one crash per window is enough.
	crashGap = 120 * time.Millisecond
)

// Audio plays pre-rendered sound effects through oto.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	log    zerolog.Logger

	sounds  map[sfx.Kind][]byte
	crashes [][]byte

	activeCrashes atomic.Int32
	crashCounter  atomic.Uint64

	mu        sync.Mutex
	lastCrash time.Time
}

// NewAudio opens the device and renders every effect up front.
func NewAudio(volume float64, log zerolog.Logger) (*Audio, error) {
	ctx, ready, err := oto.NewContext(sfx.SampleRate, sfx.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	a := &Audio{
		ctx:    ctx,
		ready:  ready,
		volume: volume,
		log:    log.With().Str("component", "audio").Logger(),
		sounds: make(map[sfx.Kind][]byte),
	}
	for _, k := range []sfx.Kind{sfx.Pickup, sfx.Lap, sfx.GameOver, sfx.Start, sfx.Spawn} {
		a.sounds[k] = sfx.Generate(k, 0)
	}
	for i := 0; i < crashVariants; i++ {
		a.crashes = append(a.crashes, sfx.Generate(sfx.Crash, uint64(i)))
	}
	return a, nil
}

// Subscribe wires effects to race events.
func (a *Audio) Subscribe(bus *race.EventBus) {
	bus.Subscribe(race.EventStart, func(race.Event) { a.Play(sfx.Start) })
	bus.Subscribe(race.EventReset, func(race.Event) { a.Play(sfx.Start) })
	bus.Subscribe(race.EventSpawn, func(race.Event) { a.Play(sfx.Spawn) })
	bus.Subscribe(race.EventPickup, func(race.Event) { a.Play(sfx.Pickup) })
	bus.Subscribe(race.EventLap, func(race.Event) { a.Play(sfx.Lap) })
	bus.Subscribe(race.EventGameOver, func(race.Event) { a.Play(sfx.GameOver) })
	bus.Subscribe(race.EventCollision, func(race.Event) { a.crash(time.Now()) })
}

func (a *Audio) crash(now time.Time) {
	a.mu.Lock()
	if now.Sub(a.lastCrash) < crashGap {
		a.mu.Unlock()
		return
	}
	a.lastCrash = now
	a.mu.Unlock()

	if a.activeCrashes.Add(1) > maxCrashVoices {
		a.activeCrashes.Add(-1)
		return
	}
	n := a.crashCounter.Add(1)
	if !a.play(a.crashes[n%uint64(len(a.crashes))], func() { a.activeCrashes.Add(-1) }) {
		a.activeCrashes.Add(-1)
	}
}

// Play starts kind without blocking. Sounds requested before the device is
// ready are dropped.
func (a *Audio) Play(kind sfx.Kind) {
	if kind == sfx.Crash {
		a.crash(time.Now())
		return
	}
	a.play(a.sounds[kind], nil)
}

func (a *Audio) play(samples []byte, done func()) bool {
	if len(samples) == 0 || a.volume <= 0 {
		return false
	}
	select {
	case <-a.ready:
	default:
		return false
	}
	go func() {
		if done != nil {
			defer done()
		}
		player := a.ctx.NewPlayer(sfx.NewReader(samples))
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			a.log.Debug().Err(err).Msg("closing player")
		}
	}()
	return true
}
