package race

import "math"

const pi = math.Pi

const twoPi = 2 * math.Pi

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapAngle maps a into [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}

func angDiff(a, b float64) float64 {
	d := b - a
	for d <= -math.Pi {
		d += twoPi
	}
	for d > math.Pi {
		d -= twoPi
	}
	return d
}

// Rand is a tiny deterministic RNG (xorshift64*). It is a plain value so a
// State can be copied without sharing generator state.
type Rand struct {
	s uint64
}

func NewRand(seed uint64) Rand {
	seed = splitmix64(seed)
	if seed == 0 {
		seed = 1
	}
	return Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	if r.s == 0 {
		r.s = 1
	}
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// Bool returns true with probability 1/2.
func (r *Rand) Bool() bool {
	return r.NextU64()>>63 == 1
}
