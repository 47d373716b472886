package particle

import (
	"image/color"

	"github.com/diegok/brickburst/internal/physics"
)

const (
	Gravity   = 300.0 // units/s², downward
	Friction  = 0.95  // velocity multiplier per tick
	Shrink    = 0.1   // radius lost per tick
	MinRadius = 1.0
)

// Particle is a single spark of a burst.
// Lifetime counts down in ticks; InitialLifetime drives the alpha fade.
type Particle struct {
	Pos             physics.Vec2
	Vel             physics.Vec2
	Radius          float64
	Color           color.RGBA
	Tint            color.RGBA // base color of the burst that produced it
	Lifetime        int
	InitialLifetime int
}

// Alive reports whether the particle still has ticks left
func (p *Particle) Alive() bool {
	return p.Lifetime > 0
}

// Update advances the particle by one tick of dt seconds.
// Gravity and position are dt-scaled; friction, shrink and lifetime are per tick.
func (p *Particle) Update(dt float64) {
	p.Vel.Y += Gravity * dt
	p.Vel = p.Vel.Scale(Friction)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	p.Radius -= Shrink
	if p.Radius < MinRadius {
		p.Radius = MinRadius
	}

	p.Color.A = fade(p.Lifetime, p.InitialLifetime)
	p.Lifetime--
}

// fade maps remaining/initial lifetime linearly onto [0, 255]
func fade(remaining, initial int) uint8 {
	if initial <= 0 {
		return 0
	}
	a := 255 * remaining / initial
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return uint8(a)
}
