package particle

// Pool holds the live particles of the scene
type Pool struct {
	particles []Particle
}

func NewPool() *Pool {
	return &Pool{particles: make([]Particle, 0, 256)}
}

func (p *Pool) Add(ps ...Particle) {
	p.particles = append(p.particles, ps...)
}

// Step updates every particle and drops the ones whose lifetime ran out.
// Survivors keep their relative order.
func (p *Pool) Step(dt float64) {
	live := p.particles[:0]
	for i := range p.particles {
		p.particles[i].Update(dt)
		if p.particles[i].Alive() {
			live = append(live, p.particles[i])
		}
	}
	clear(p.particles[len(live):])
	p.particles = live
}

func (p *Pool) Len() int {
	return len(p.particles)
}

// Particles returns the live particles; callers must not retain or modify the slice
func (p *Pool) Particles() []Particle {
	return p.particles
}

func (p *Pool) Clear() {
	p.particles = p.particles[:0]
}
