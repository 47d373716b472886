package game

import (
	"image/color"
	"math"

	"github.com/diegok/brickburst/internal/physics"
)

const (
	PaddleSpeed       = 8.0 // units per tick
	MovementTimeout   = 8   // Ticks to keep moving after last input (~133ms at 60Hz)
	MaxCurveAmplitude = 50.0
	CurveDecay        = 0.92
	OscillationSpeed  = 0.2 // phase advance per tick
	CurveThreshold    = 0.1
)

// Direction is a digital steering signal
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

type Paddle struct {
	X, Y          float64 // top-left corner
	Width         float64
	Height        float64
	Color         color.RGBA
	FieldWidth    float64
	Direction     Direction
	MovementTicks int // Countdown for movement timeout

	CurveAmplitude float64
	CurveDecay     float64
	Phase          float64
}

func NewPaddle(x, y, width, height float64, c color.RGBA, fieldWidth float64) *Paddle {
	return &Paddle{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Color:      c,
		FieldWidth: fieldWidth,
		Direction:  DirNone,
		CurveDecay: CurveDecay,
		Phase:      math.Pi / 2,
	}
}

func (p *Paddle) SetDirection(dir Direction) {
	p.Direction = dir
	if dir != DirNone {
		p.MovementTicks = MovementTimeout // Reset timeout on new input
	}
}

// Move slides the paddle one step in its current direction, staying inside the field
func (p *Paddle) Move() {
	switch p.Direction {
	case DirLeft:
		p.X -= PaddleSpeed
		if p.X < 0 {
			p.X = 0
		}
	case DirRight:
		p.X += PaddleSpeed
		maxX := p.FieldWidth - p.Width
		if p.X > maxX {
			p.X = maxX
		}
	}

	// Decrement movement timeout and stop when it expires
	if p.MovementTicks > 0 {
		p.MovementTicks--
		if p.MovementTicks == 0 {
			p.Direction = DirNone
		}
	}
}

func (p *Paddle) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Paddle) Center() physics.Vec2 {
	return p.Bounds().Center()
}

// Bounce starts the bend: full amplitude, phase at the wave's peak
func (p *Paddle) Bounce() {
	p.CurveAmplitude = MaxCurveAmplitude
	p.Phase = math.Pi / 2
}

// Animate advances the bend oscillation and decays it back to rest
func (p *Paddle) Animate() {
	if p.CurveAmplitude <= CurveThreshold {
		p.CurveAmplitude = 0
		return
	}
	p.Phase += OscillationSpeed
	p.CurveAmplitude *= p.CurveDecay
	if p.CurveAmplitude < CurveThreshold {
		p.CurveAmplitude = 0
	}
}

// Bending reports whether the bend animation is running
func (p *Paddle) Bending() bool {
	return p.CurveAmplitude > 0
}

// Offset returns the vertical displacement of the paddle's top and bottom
// edges at dx from its center: a decaying sine under a parabolic envelope
func (p *Paddle) Offset(dx float64) float64 {
	half := p.Width / 2
	if half == 0 {
		return 0
	}
	r := dx / half
	return p.CurveAmplitude * math.Sin(p.Phase) * (1 - r*r)
}
