package game

import (
	"image/color"
	"math"

	"github.com/diegok/brickburst/internal/particle"
	"github.com/diegok/brickburst/internal/physics"
)

const (
	BurstSize   = 30
	Restitution = 1.0
)

// ContactKind identifies what the ball hit
type ContactKind int

const (
	ContactLeftWall ContactKind = iota
	ContactRightWall
	ContactTopWall
	ContactPaddle
	ContactBrick
)

func (k ContactKind) String() string {
	switch k {
	case ContactLeftWall:
		return "left wall"
	case ContactRightWall:
		return "right wall"
	case ContactTopWall:
		return "top wall"
	case ContactPaddle:
		return "paddle"
	case ContactBrick:
		return "brick"
	}
	return "unknown"
}

// Contact is one collision handled during a tick
type Contact struct {
	Kind  ContactKind
	Point physics.Vec2 // where the burst was emitted
	Brick *Brick       // set for ContactBrick
}

// Face is the side of a brick the ball was pushed out through
type Face int

const (
	FaceTop Face = iota
	FaceBottom
	FaceLeft
	FaceRight
)

// Burst tints and spreads per contact. Y grows downward, so -pi/2 points up.
var (
	sideWallTint = color.RGBA{150, 150, 255, 255}
	topWallTint  = color.RGBA{150, 255, 150, 255}
	paddleTint   = color.RGBA{255, 150, 50, 255}

	leftWallSpread  = particle.Range{Min: -math.Pi / 4, Max: math.Pi / 4}
	rightWallSpread = particle.Range{Min: 3 * math.Pi / 4, Max: 5 * math.Pi / 4}
	topWallSpread   = particle.Range{Min: math.Pi / 4, Max: 3 * math.Pi / 4}
	paddleSpread    = particle.Range{Min: -3 * math.Pi / 4, Max: -math.Pi / 4}
	brickSpread     = particle.Range{Min: 0, Max: 2 * math.Pi}

	wallSpeeds   = particle.Range{Min: 50, Max: 100}
	paddleSpeeds = particle.Range{Min: 50, Max: 150}
	brickSpeeds  = particle.Range{Min: 50, Max: 200}
)

// Field is the play area; x spans [0, Width], y spans [0, Height]
type Field struct {
	Width, Height float64
}

// Resolver detects and resolves the ball's collisions for one tick.
// It keeps no state between calls; randomness comes from Rand.
type Resolver struct {
	Field Field
	Rand  particle.Source
}

// Resolve runs the wall, paddle and brick stages in that order.
// Each stage overwrites the ball velocity on its own, so when several fire in
// one tick the last one wins. Emitted particles are appended to pool.
func (r Resolver) Resolve(ball *Ball, paddle *Paddle, bricks Bricks, pool *particle.Pool) []Contact {
	var contacts []Contact

	contacts = r.resolveWalls(ball, bricks, pool, contacts)

	if ball.Bounds().Overlaps(paddle.Bounds()) {
		contacts = append(contacts, r.resolvePaddle(ball, paddle, bricks, pool))
	}

	for _, brick := range bricks {
		if brick.Destroyed || !ball.Bounds().Overlaps(brick.Rect) {
			continue
		}
		if c, ok := r.hitBrick(ball, brick, bricks, pool); ok {
			contacts = append(contacts, c)
		}
	}

	return contacts
}

// resolveWalls bounces the ball off the side and top walls, leaving its box
// at least 1 unit inside. The bottom is open.
func (r Resolver) resolveWalls(ball *Ball, bricks Bricks, pool *particle.Pool, contacts []Contact) []Contact {
	b := ball.Bounds()

	switch {
	case b.Left() < 1:
		ball.Vel = physics.Reflect(ball.Vel, physics.V(1, 0), Restitution)
		ball.SetLeft(1)
		at := physics.V(1, ball.Pos.Y)
		r.impact(ball, bricks, pool, at, wallSpeeds, leftWallSpread, sideWallTint)
		contacts = append(contacts, Contact{Kind: ContactLeftWall, Point: at})

	case b.Right() > r.Field.Width-1:
		ball.Vel = physics.Reflect(ball.Vel, physics.V(-1, 0), Restitution)
		ball.SetRight(r.Field.Width - 1)
		at := physics.V(r.Field.Width-1, ball.Pos.Y)
		r.impact(ball, bricks, pool, at, wallSpeeds, rightWallSpread, sideWallTint)
		contacts = append(contacts, Contact{Kind: ContactRightWall, Point: at})
	}

	if ball.Bounds().Top() < 1 {
		ball.Vel = physics.Reflect(ball.Vel, physics.V(0, 1), Restitution)
		ball.SetTop(1)
		at := physics.V(ball.Pos.X, 1)
		r.impact(ball, bricks, pool, at, wallSpeeds, topWallSpread, topWallTint)
		contacts = append(contacts, Contact{Kind: ContactTopWall, Point: at})
	}

	return contacts
}

func (r Resolver) resolvePaddle(ball *Ball, paddle *Paddle, bricks Bricks, pool *particle.Pool) Contact {
	ball.Squash()

	angle := PaddleReflectionAngle(ball, paddle)
	speed := math.Max(MinBallSpeed, ball.Speed())
	ball.Vel = physics.V(speed*math.Sin(angle), -math.Abs(speed*math.Cos(angle)))

	d := 2 * ball.Radius
	ball.AngularVelocity += physics.Torque(ball.Vel, ball.Pos, paddle.Center(), d, d)

	paddle.Bounce()
	bricks.AnimateHit()

	at := physics.V(ball.Pos.X, paddle.Y)
	r.emit(pool, at, paddleSpeeds, paddleSpread, paddleTint)
	return Contact{Kind: ContactPaddle, Point: at}
}

// hitBrick destroys brick and bounces the ball off its nearest face.
// A brick that is already destroyed is left alone and reports false.
func (r Resolver) hitBrick(ball *Ball, brick *Brick, bricks Bricks, pool *particle.Pool) (Contact, bool) {
	if !brick.Hit() {
		return Contact{}, false
	}
	ball.Squash()

	rect := brick.Rect
	var at physics.Vec2
	switch MinOverlapFace(ball.Bounds(), rect) {
	case FaceTop:
		ball.Vel = physics.Reflect(ball.Vel, physics.V(0, -1), Restitution)
		ball.SetBottom(rect.Top() - 1)
		at = physics.V(ball.Pos.X, rect.Top())
	case FaceBottom:
		ball.Vel = physics.Reflect(ball.Vel, physics.V(0, 1), Restitution)
		ball.SetTop(rect.Bottom() + 1)
		at = physics.V(ball.Pos.X, rect.Bottom())
	case FaceLeft:
		ball.Vel = physics.Reflect(ball.Vel, physics.V(-1, 0), Restitution)
		ball.SetRight(rect.Left() - 1)
		at = physics.V(rect.Left(), ball.Pos.Y)
	case FaceRight:
		ball.Vel = physics.Reflect(ball.Vel, physics.V(1, 0), Restitution)
		ball.SetLeft(rect.Right() + 1)
		at = physics.V(rect.Right(), ball.Pos.Y)
	}

	bricks.AnimateHit()
	r.emit(pool, at, brickSpeeds, brickSpread, r.brickTint())
	return Contact{Kind: ContactBrick, Point: at, Brick: brick}, true
}

// impact is the shared wall response: squish, pulse the wall, emit a burst
func (r Resolver) impact(ball *Ball, bricks Bricks, pool *particle.Pool, at physics.Vec2, speed, spread particle.Range, tint color.RGBA) {
	ball.Squash()
	bricks.AnimateHit()
	r.emit(pool, at, speed, spread, tint)
}

func (r Resolver) emit(pool *particle.Pool, at physics.Vec2, speed, spread particle.Range, tint color.RGBA) {
	pool.Add(particle.Emit(r.Rand, particle.Burst{
		Origin: at,
		Count:  BurstSize,
		Speed:  speed,
		Angle:  spread,
		Tint:   tint,
	})...)
}

// brickTint draws a warm random color for a brick burst
func (r Resolver) brickTint() color.RGBA {
	return color.RGBA{
		R: uint8(200 + r.Rand.IntN(56)),
		G: uint8(50 + r.Rand.IntN(101)),
		B: uint8(50 + r.Rand.IntN(101)),
		A: 255,
	}
}

// MinOverlapFace picks the brick face with the smallest penetration.
// Ties resolve in the order top, bottom, left, right.
func MinOverlapFace(ball, brick physics.Rect) Face {
	overlaps := [...]float64{
		FaceTop:    math.Abs(ball.Bottom() - brick.Top()),
		FaceBottom: math.Abs(ball.Top() - brick.Bottom()),
		FaceLeft:   math.Abs(ball.Right() - brick.Left()),
		FaceRight:  math.Abs(ball.Left() - brick.Right()),
	}

	best := FaceTop
	for f := FaceBottom; f <= FaceRight; f++ {
		if overlaps[f] < overlaps[best] {
			best = f
		}
	}
	return best
}

// PaddleReflectionAngle maps where the ball meets the paddle, relative to its
// center and across its half-width, onto the rebound angle, biased by spin
func PaddleReflectionAngle(ball *Ball, paddle *Paddle) float64 {
	offset := ball.Pos.X - paddle.Center().X
	return physics.ReflectionAngle(offset, paddle.Width/2, ball.AngularVelocity)
}
