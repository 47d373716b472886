package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/brickburst/internal/game"
	"github.com/diegok/brickburst/internal/particle"
	"github.com/diegok/brickburst/internal/physics"
)

const (
	BallChar = '\u2B24' // ⬤
	Title    = "BRICKBURST"
)

var (
	Background = color.RGBA{0, 0, 0, 255}
	BallColor  = color.RGBA{255, 255, 255, 255}
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
	bg     colorful.Color
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	bg, _ := colorful.MakeColor(Background)
	return &Renderer{screen: screen, bg: bg}
}

// viewport maps field units to terminal cells below the title row
type viewport struct {
	scaleX, scaleY float64
	top            int
	w, h           int
}

func newViewport(field game.Field, screenW, screenH int) viewport {
	return viewport{
		scaleX: float64(screenW) / field.Width,
		scaleY: float64(screenH-2) / field.Height, // -2 for title and status bars
		top:    1,
		w:      screenW,
		h:      screenH - 2,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.scaleX)) }
func (v viewport) row(y float64) int { return int(math.Floor(y*v.scaleY)) + v.top }

func (v viewport) cell(p physics.Vec2) (int, int) {
	return v.col(p.X), v.row(p.Y)
}

// center returns the field point at the middle of cell (cx, cy)
func (v viewport) center(cx, cy int) physics.Vec2 {
	return physics.V((float64(cx)+0.5)/v.scaleX, (float64(cy-v.top)+0.5)/v.scaleY)
}

func (v viewport) inside(cx, cy int) bool {
	return cx >= 0 && cx < v.w && cy >= v.top && cy < v.top+v.h
}

// RenderGame draws one frame: ball, paddle, bricks, then particles on top
func (r *Renderer) RenderGame(w *game.World, muted bool) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	if screenW < 1 || screenH < 3 {
		r.screen.Show()
		return
	}
	vp := newViewport(w.Field, screenW, screenH)

	fieldStyle := tcell.StyleDefault.Background(RGB(Background))
	r.screen.FillRect(0, vp.top, screenW, vp.h, fieldStyle, ' ')

	r.renderBall(vp, w.Ball)
	r.renderPaddle(vp, w.Paddle)
	for _, b := range w.Bricks {
		if !b.Destroyed {
			r.renderBrick(vp, b)
		}
	}
	for _, p := range w.Particles.Particles() {
		r.renderParticle(vp, p)
	}

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	r.screen.DrawCentered(0, Title, titleStyle)

	r.renderStatus(w, muted, screenW, screenH-1)

	if w.BallLost() {
		msg := "Ball lost! Press ENTER to serve"
		r.screen.DrawCentered(screenH/2, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(RGB(Background)))
	} else if w.Bricks.Remaining() == 0 {
		msg := "All bricks cleared!"
		r.screen.DrawCentered(screenH/2, msg, tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(RGB(Background)))
	}

	r.screen.Show()
}

// renderBall fills every cell whose center lies inside the squished ellipse
func (r *Renderer) renderBall(vp viewport, b *game.Ball) {
	style := tcell.StyleDefault.Background(RGB(BallColor))
	dw, dh := b.DrawSize()
	rx, ry := dw/2, dh/2
	drawn := false
	for cy := vp.row(b.Pos.Y - ry); cy <= vp.row(b.Pos.Y+ry); cy++ {
		for cx := vp.col(b.Pos.X - rx); cx <= vp.col(b.Pos.X+rx); cx++ {
			if !vp.inside(cx, cy) {
				continue
			}
			c := vp.center(cx, cy)
			nx, ny := (c.X-b.Pos.X)/rx, (c.Y-b.Pos.Y)/ry
			if nx*nx+ny*ny <= 1 {
				r.screen.SetCell(cx, cy, style, ' ')
				drawn = true
			}
		}
	}
	if !drawn {
		// Smaller than a cell
		cx, cy := vp.cell(b.Pos)
		if vp.inside(cx, cy) {
			s := tcell.StyleDefault.Foreground(RGB(BallColor)).Background(RGB(Background))
			r.screen.SetCell(cx, cy, s, BallChar)
		}
	}
}

// renderPaddle draws each column shifted by the bend offset at that column
func (r *Renderer) renderPaddle(vp viewport, p *game.Paddle) {
	style := tcell.StyleDefault.Background(RGB(p.Color))
	center := p.Center()
	for cx := vp.col(p.X); cx <= vp.col(p.X+p.Width-1e-9); cx++ {
		dx := vp.center(cx, vp.top).X - center.X
		off := p.Offset(dx)
		for cy := vp.row(p.Y + off); cy <= vp.row(p.Y+p.Height+off-1e-9); cy++ {
			if vp.inside(cx, cy) {
				r.screen.SetCell(cx, cy, style, ' ')
			}
		}
	}
}

func (r *Renderer) renderBrick(vp viewport, b *game.Brick) {
	rect := b.DrawRect()
	style := tcell.StyleDefault.Background(RGB(b.Color))
	for cy := vp.row(rect.Top()); cy <= vp.row(rect.Bottom()-1e-9); cy++ {
		for cx := vp.col(rect.Left()); cx <= vp.col(rect.Right()-1e-9); cx++ {
			if vp.inside(cx, cy) {
				r.screen.SetCell(cx, cy, style, ' ')
			}
		}
	}
}

func (r *Renderer) renderParticle(vp viewport, p particle.Particle) {
	cx, cy := vp.cell(p.Pos)
	if !vp.inside(cx, cy) {
		return
	}
	c := ParticleColor(p, r.bg)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).Background(RGB(Background))
	r.screen.SetCell(cx, cy, style, ParticleGlyph(p.Radius))
}

func (r *Renderer) renderStatus(w *game.World, muted bool, screenW, y int) {
	style := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, y, screenW, 1, style, ' ')

	sound := "on"
	if muted {
		sound = "off"
	}
	text := fmt.Sprintf(" Bricks: %d/%d | Particles: %d | Sound: %s | ←/→ move  m mute  q quit",
		w.Bricks.Remaining(), len(w.Bricks), w.Particles.Len(), sound)
	r.screen.DrawText(0, y, text, style)
}

// ParticleGlyph picks a dot size matching the particle radius
func ParticleGlyph(radius float64) rune {
	switch {
	case radius >= 5:
		return '●'
	case radius >= 3:
		return '•'
	default:
		return '·'
	}
}

// ParticleColor cools the ember toward its tint as it ages, then blends
// it over bg by its alpha. Terminals have no per-cell transparency.
func ParticleColor(p particle.Particle, bg colorful.Color) color.RGBA {
	base, _ := colorful.MakeColor(opaque(p.Color))
	life := float64(p.Color.A) / 255
	c := base
	if p.Tint != (color.RGBA{}) {
		tint, _ := colorful.MakeColor(opaque(p.Tint))
		c = base.BlendLab(tint, 1-life).Clamped()
	}
	c = bg.BlendRgb(c, life).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
