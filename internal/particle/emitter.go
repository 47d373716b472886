package particle

import (
	"image/color"
	"math"

	"github.com/diegok/brickburst/internal/physics"
)

// Emission distribution parameters
const (
	AngleNoise  = 2.0  // stddev of the per-particle angle noise, radians
	OffsetNoise = 20.0 // stddev of the spawn offset on each axis
)

// Source supplies the random draws for emission.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	NormFloat64() float64
	IntN(n int) int
}

// Range is a closed interval sampled uniformly
type Range struct {
	Min, Max float64
}

func (r Range) sample(src Source) float64 {
	return r.Min + (r.Max-r.Min)*src.Float64()
}

// Burst describes one emission at a collision site
type Burst struct {
	Origin physics.Vec2
	Count  int
	Speed  Range
	Angle  Range
	Tint   color.RGBA
}

// Emit produces a fresh batch of b.Count particles around b.Origin.
// Each call is independent; the only shared state is src.
func Emit(src Source, b Burst) []Particle {
	if b.Count <= 0 {
		return nil
	}

	out := make([]Particle, 0, b.Count)
	for i := 0; i < b.Count; i++ {
		angle := b.Angle.sample(src) + src.NormFloat64()*AngleNoise
		speed := b.Speed.sample(src)

		offset := physics.V(src.NormFloat64()*OffsetNoise, src.NormFloat64()*OffsetNoise)
		lifetime := intBetween(src, 20, 50)

		out = append(out, Particle{
			Pos:    b.Origin.Add(offset),
			Vel:    physics.V(math.Cos(angle), math.Sin(angle)).Scale(speed),
			Radius: float64(intBetween(src, 3, 6)),
			Color: color.RGBA{
				R: uint8(intBetween(src, 200, 255)),
				G: uint8(intBetween(src, 100, 200)),
				B: uint8(intBetween(src, 50, 100)),
				A: uint8(intBetween(src, 100, 255)),
			},
			Tint:            b.Tint,
			Lifetime:        lifetime,
			InitialLifetime: lifetime,
		})
	}
	return out
}

// intBetween draws uniformly from [lo, hi]
func intBetween(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
