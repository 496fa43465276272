// Package sfx synthesises the race sound effects as interleaved stereo
// float32 little-endian PCM, ready to hand to an audio device.
package sfx

import (
	"io"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8
)

// Kind identifies a sound effect.
type Kind int

const (
	Crash Kind = iota
	Pickup
	Lap
	GameOver
	Start
	Spawn
)

func (k Kind) String() string {
	switch k {
	case Crash:
		return "crash"
	case Pickup:
		return "pickup"
	case Lap:
		return "lap"
	case GameOver:
		return "game_over"
	case Start:
		return "start"
	case Spawn:
		return "spawn"
	}
	return "unknown"
}

// Generate renders kind. The variant seeds noise so repeated crashes do not
// sound identical; other kinds ignore it.
func Generate(kind Kind, variant uint64) []byte {
	switch kind {
	case Crash:
		return genCrash(variant)
	case Pickup:
		return genPickup()
	case Lap:
		return genLap()
	case GameOver:
		return genGameOver()
	case Start:
		return genStart()
	case Spawn:
		return genSpawn()
	}
	return nil
}

// Reader streams a rendered buffer once.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader { return &Reader{data: data} }

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Frames is the number of stereo frames in a rendered buffer.
func Frames(buf []byte) int { return len(buf) / frameBytes }

// Sample decodes the left channel of frame i.
func Sample(buf []byte, i int) float32 {
	o := i * frameBytes
	v := uint32(buf[o]) | uint32(buf[o+1])<<8 | uint32(buf[o+2])<<16 | uint32(buf[o+3])<<24
	return math.Float32frombits(v)
}

func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat is a cubic soft clipper, continuous at |x| = 1.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 1.0/(3*x)
	}
	if x < -1.0 {
		return -1.0 + 1.0/(3*-x)
	}
	return x - x*x*x/3.0
}

func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

func render(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// arpeggio layers FM notes that start step samples apart and ring out to the
// shared tail.
func arpeggio(freqs []float64, step, tail int, ratio, index, gain float64) []float64 {
	total := len(freqs)*step + tail
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, ratio, index*env) * env * gain
			s += math.Sin(2*math.Pi*freq*2*t) * env * gain * 0.25
			mix[start+j] += s
		}
	}
	return mix
}

// genCrash is a falling FM thud over a burst of filtered noise.
func genCrash(variant uint64) []byte {
	n := int(0.22 * SampleRate)
	mix := make([]float64, n)
	seed := variant*0x9E3779B97F4A7C15 + 1
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.1, 0.3)
		freq := 300 - 220*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.45
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
		lp += (lcg(&seed) - lp) * 0.25
		s += lp * (1 - p) * (1 - p) * 0.5
		mix[i] = s
	}
	return render(mix)
}

// genPickup is a bright major arpeggio.
func genPickup() []byte {
	return render(arpeggio(
		[]float64{523.25, 659.25, 783.99, 1046.5}, // C5 E5 G5 C6
		SampleRate*75/1000, int(0.18*SampleRate), 2.756, 5.0, 0.38))
}

// genLap is a longer rising fanfare.
func genLap() []byte {
	return render(arpeggio(
		[]float64{440, 554.37, 659.25, 880, 1108.73},
		int(0.09*SampleRate), int(0.25*SampleRate), 3.5, 5.5, 0.28))
}

// genGameOver is a descending minor triad with a sub octave.
func genGameOver() []byte {
	n := int(0.75 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	return render(mix)
}

// genStart is a short downward blip.
func genStart() []byte {
	n := SampleRate * 65 / 1000
	mix := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		mix[i] = fm(t, freq, 1.0, 0.6) * env * 0.38
	}
	return render(mix)
}

// genSpawn is a two-tone horn, quiet so it sits under the other effects.
func genSpawn() []byte {
	n := int(0.18 * SampleRate)
	mix := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.6, 0.2)
		s := math.Sin(2*math.Pi*392*t) + math.Sin(2*math.Pi*494*t)
		s += 0.3 * fm(t, 196, 1.0, 1.2)
		mix[i] = s * env * 0.12
	}
	return render(mix)
}
