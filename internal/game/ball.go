package game

import (
	"math"

	"github.com/diegok/brickburst/internal/physics"
)

const (
	BallRadius     = 10.0
	MinBallSpeed   = 4.0 // paddle rebounds never leave the ball slower than this
	SquishImpact   = 0.5 // squish factor right after a collision
	SquishRecovery = 0.05
	SquishEpsilon  = 0.01
	NeutralSquish  = 1.0
)

var InitialBallVelocity = physics.V(0, -5)

// Ball is the single ball in play. Pos is its center; Vel is in units per tick.
type Ball struct {
	Pos             physics.Vec2
	Vel             physics.Vec2
	Radius          float64
	Squish          float64
	TargetSquish    float64
	AngularVelocity float64 // cosmetic spin, only biases paddle rebounds
}

func NewBall(x, y float64) *Ball {
	return &Ball{
		Pos:          physics.V(x, y),
		Vel:          InitialBallVelocity,
		Radius:       BallRadius,
		Squish:       NeutralSquish,
		TargetSquish: NeutralSquish,
	}
}

// Bounds returns the ball's bounding box
func (b *Ball) Bounds() physics.Rect {
	return physics.Rect{
		X: b.Pos.X - b.Radius,
		Y: b.Pos.Y - b.Radius,
		W: 2 * b.Radius,
		H: 2 * b.Radius,
	}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// SetLeft places the ball so its left edge sits at x
func (b *Ball) SetLeft(x float64)   { b.Pos.X = x + b.Radius }
func (b *Ball) SetRight(x float64)  { b.Pos.X = x - b.Radius }
func (b *Ball) SetTop(y float64)    { b.Pos.Y = y + b.Radius }
func (b *Ball) SetBottom(y float64) { b.Pos.Y = y - b.Radius }

// Squash deforms the ball on impact; Animate relaxes it back
func (b *Ball) Squash() {
	b.Squish = SquishImpact
	b.TargetSquish = NeutralSquish
}

// Animate moves the squish factor a fixed fraction toward its target,
// snapping once it is within SquishEpsilon
func (b *Ball) Animate() {
	if math.Abs(b.Squish-b.TargetSquish) > SquishEpsilon {
		b.Squish += SquishRecovery * (b.TargetSquish - b.Squish)
		return
	}
	b.Squish = b.TargetSquish
}

// DrawSize returns the on-screen ellipse size: wider and flatter while squished
func (b *Ball) DrawSize() (w, h float64) {
	d := 2 * b.Radius
	return d / b.Squish, d * b.Squish
}

// Reset puts the ball back at (x, y) with the launch velocity and no spin
func (b *Ball) Reset(x, y float64) {
	b.Pos = physics.V(x, y)
	b.Vel = InitialBallVelocity
	b.Squish = NeutralSquish
	b.TargetSquish = NeutralSquish
	b.AngularVelocity = 0
}
