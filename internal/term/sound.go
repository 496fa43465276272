package term

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"ringrace/internal/race"
)

const sampleRate = beep.SampleRate(44100)

// Contact lasts many ticks; one buzz per window is enough.
const collisionSoundGap = 120 * time.Millisecond

// Sounds plays short cues for race events through the beep speaker.
type Sounds struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	lastBuzz    time.Time
}

func NewSounds(volume float64) *Sounds {
	return &Sounds{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Failure is not fatal; callers keep playing
// silently.
func (s *Sounds) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *Sounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.mixer.Clear()
	speaker.Close()
	s.initialized = false
}

// Subscribe wires the cues to race events.
func (s *Sounds) Subscribe(bus *race.EventBus) {
	bus.Subscribe(race.EventStart, func(race.Event) { s.tones(50*time.Millisecond, 660, 880) })
	bus.Subscribe(race.EventReset, func(race.Event) { s.tones(50*time.Millisecond, 660, 880) })
	bus.Subscribe(race.EventLap, func(race.Event) { s.tones(60*time.Millisecond, 523, 659, 784) })
	bus.Subscribe(race.EventPickup, func(race.Event) { s.tones(40*time.Millisecond, 880, 1175) })
	bus.Subscribe(race.EventGameOver, func(race.Event) { s.tones(180*time.Millisecond, 392, 330, 262) })
	bus.Subscribe(race.EventCollision, func(race.Event) { s.buzz(time.Now()) })
}

func (s *Sounds) buzz(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || now.Sub(s.lastBuzz) < collisionSoundGap {
		return
	}
	s.lastBuzz = now
	st := beep.Take(sampleRate.N(90*time.Millisecond), NewBuzzGenerator(sampleRate, 110))
	s.mixer.Add(s.gain(st))
}

// tones plays a sequence of sine notes of equal length.
func (s *Sounds) tones(each time.Duration, freqs ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	var seq []beep.Streamer
	for _, f := range freqs {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			continue
		}
		seq = append(seq, beep.Take(sampleRate.N(each), sine))
	}
	s.mixer.Add(s.gain(beep.Seq(seq...)))
}

func (s *Sounds) gain(st beep.Streamer) beep.Streamer {
	// Sine tones are full scale; keep cues well below clipping.
	return &effects.Gain{Streamer: st, Gain: s.volume*0.4 - 1}
}

// BuzzGenerator is a harmonic-rich buzz with a short fade in.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.5 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.125 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.01, 1.0)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
