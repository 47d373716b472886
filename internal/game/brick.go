package game

import (
	"image/color"

	"github.com/diegok/brickburst/internal/physics"
)

const (
	PulseScale  = 1.08  // peak scale of the hit pulse
	PulseStep   = 0.005 // scale change per tick
	BrickGutter = 10.0  // spacing between bricks and around the grid
)

// Brick is one cell of the wall. Destroyed bricks stay in their collection
// so the pulse bookkeeping keeps running; they are skipped for collision and drawing.
type Brick struct {
	Rect        physics.Rect
	Color       color.RGBA
	Destroyed   bool
	Scale       float64
	TargetScale float64
	Animating   bool
}

func NewBrick(x, y, width, height float64, c color.RGBA) *Brick {
	return &Brick{
		Rect:        physics.Rect{X: x, Y: y, W: width, H: height},
		Color:       c,
		Scale:       1,
		TargetScale: 1,
	}
}

// Hit destroys the brick and starts its pulse.
// It returns false, changing nothing, if the brick was already destroyed.
func (b *Brick) Hit() bool {
	if b.Destroyed {
		return false
	}
	b.Destroyed = true
	b.AnimateHit()
	return true
}

// AnimateHit (re)starts the grow phase of the pulse
func (b *Brick) AnimateHit() {
	b.Animating = true
	b.TargetScale = PulseScale
}

// UpdateAnimation steps the pulse: grow to PulseScale, then shrink back to 1
func (b *Brick) UpdateAnimation() {
	if !b.Animating {
		return
	}

	if b.TargetScale > 1 {
		if b.Scale < b.TargetScale {
			b.Scale += PulseStep
		}
		if b.Scale >= b.TargetScale {
			b.TargetScale = 1
		}
		return
	}

	b.Scale -= PulseStep
	if b.Scale <= 1 {
		b.Scale = 1
		b.Animating = false
	}
}

// DrawRect returns the brick rectangle scaled around its center
func (b *Brick) DrawRect() physics.Rect {
	w := b.Rect.W * b.Scale
	h := b.Rect.H * b.Scale
	c := b.Rect.Center()
	return physics.Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Bricks is the whole wall, destroyed bricks included
type Bricks []*Brick

// NewBrickGrid lays out rows x cols bricks on a fixed pitch with BrickGutter spacing.
// Bricks are ordered column by column.
func NewBrickGrid(rows, cols int, width, height float64, c color.RGBA) Bricks {
	bricks := make(Bricks, 0, rows*cols)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			x := float64(col)*(width+BrickGutter) + BrickGutter
			y := float64(row)*(height+BrickGutter) + BrickGutter
			bricks = append(bricks, NewBrick(x, y, width, height, c))
		}
	}
	return bricks
}

// AnimateHit pulses every brick in the wall
func (bs Bricks) AnimateHit() {
	for _, b := range bs {
		b.AnimateHit()
	}
}

// Update steps every brick's pulse
func (bs Bricks) Update() {
	for _, b := range bs {
		b.UpdateAnimation()
	}
}

// Remaining counts bricks not yet destroyed
func (bs Bricks) Remaining() int {
	n := 0
	for _, b := range bs {
		if !b.Destroyed {
			n++
		}
	}
	return n
}
