package game

import (
	"fmt"
	"image/color"

	"github.com/diegok/brickburst/internal/particle"
)

// Constants for the default level
const (
	TickRate      = 60 // Ticks per second
	FieldWidth    = 800
	FieldHeight   = 600
	PaddleWidth   = 120
	PaddleHeight  = 15
	PaddleMargin  = 30 // distance from paddle top to field bottom
	DefaultRows   = 5
	DefaultCols   = 7
	DefaultBrickW = 90
	DefaultBrickH = 30
)

var (
	BrickColor  = color.RGBA{0, 150, 255, 255}
	PaddleColor = color.RGBA{255, 50, 50, 255}
)

// Level holds the startup choices for the brick wall
type Level struct {
	Rows        int
	Cols        int
	BrickWidth  float64
	BrickHeight float64
}

func DefaultLevel() Level {
	return Level{
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		BrickWidth:  DefaultBrickW,
		BrickHeight: DefaultBrickH,
	}
}

// Validate checks that the grid is non-empty and fits above the paddle
func (l Level) Validate(field Field) error {
	if l.Rows < 1 || l.Cols < 1 {
		return fmt.Errorf("brick grid must have at least one row and column, got %dx%d", l.Rows, l.Cols)
	}
	if l.BrickWidth < 1 || l.BrickHeight < 1 {
		return fmt.Errorf("brick size must be at least 1x1, got %gx%g", l.BrickWidth, l.BrickHeight)
	}

	w := float64(l.Cols)*(l.BrickWidth+BrickGutter) + BrickGutter
	if w > field.Width {
		return fmt.Errorf("%d columns of width %g need %g units, field is %g wide", l.Cols, l.BrickWidth, w, field.Width)
	}
	h := float64(l.Rows)*(l.BrickHeight+BrickGutter) + BrickGutter
	if limit := field.Height - PaddleMargin - 2*BallRadius; h > limit {
		return fmt.Errorf("%d rows of height %g need %g units, only %g fit above the paddle", l.Rows, l.BrickHeight, h, limit)
	}
	return nil
}

// World owns every entity of the scene and advances it one tick at a time
type World struct {
	Field     Field
	Ball      *Ball
	Paddle    *Paddle
	Bricks    Bricks
	Particles *particle.Pool
	Tick      int

	resolver Resolver
}

// NewWorld builds the scene for level. The level must be valid for field.
func NewWorld(field Field, level Level, src particle.Source) *World {
	return &World{
		Field: field,
		Ball:  NewBall(field.Width/2, field.Height/2),
		Paddle: NewPaddle(
			field.Width/2-PaddleWidth/2, field.Height-PaddleMargin,
			PaddleWidth, PaddleHeight, PaddleColor, field.Width,
		),
		Bricks:    NewBrickGrid(level.Rows, level.Cols, level.BrickWidth, level.BrickHeight, BrickColor),
		Particles: particle.NewPool(),
		resolver:  Resolver{Field: field, Rand: src},
	}
}

// Steer forwards a paddle movement signal
func (w *World) Steer(dir Direction) {
	w.Paddle.SetDirection(dir)
}

// Step runs one tick: move the paddle, resolve collisions, then advance
// every animation and the particles. dt is the elapsed time in seconds.
func (w *World) Step(dt float64) []Contact {
	w.Tick++

	w.Paddle.Move()
	contacts := w.resolver.Resolve(w.Ball, w.Paddle, w.Bricks, w.Particles)

	w.Paddle.Animate()
	w.Ball.Move()
	w.Ball.Animate()
	w.Bricks.Update()
	w.Particles.Step(dt)

	return contacts
}

// BallLost reports whether the ball has left the field through the bottom
func (w *World) BallLost() bool {
	return w.Ball.Bounds().Top() > w.Field.Height
}

// Serve relaunches a lost ball from the center of the field.
// It returns false while the ball is still in play.
func (w *World) Serve() bool {
	if !w.BallLost() {
		return false
	}
	w.Ball.Reset(w.Field.Width/2, w.Field.Height/2)
	return true
}
