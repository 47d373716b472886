package ui

import (
	"image/color"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/brickburst/internal/game"
	"github.com/diegok/brickburst/internal/particle"
	"github.com/diegok/brickburst/internal/physics"
)

func newTestScreen(t *testing.T, w, h int) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim, NewScreen(sim)
}

func newTestWorld() *game.World {
	field := game.Field{Width: game.FieldWidth, Height: game.FieldHeight}
	return game.NewWorld(field, game.DefaultLevel(), rand.New(rand.NewPCG(1, 2)))
}

func rowText(sim tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func bgAt(sim tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := sim.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestViewportMapping(t *testing.T) {
	vp := newViewport(game.Field{Width: 800, Height: 600}, 80, 32)

	x, y := vp.cell(physics.V(0, 0))
	if x != 0 || y != 1 {
		t.Errorf("expected origin at (0, 1), got (%d, %d)", x, y)
	}
	x, y = vp.cell(physics.V(400, 300))
	if x != 40 || y != 16 {
		t.Errorf("expected center at (40, 16), got (%d, %d)", x, y)
	}
	if vp.inside(0, 0) {
		t.Error("title row should be outside the field")
	}
	if vp.inside(0, 31) {
		t.Error("status row should be outside the field")
	}
	if !vp.inside(79, 30) {
		t.Error("last field cell should be inside")
	}

	c := vp.center(40, 16)
	if math.Abs(c.X-405) > 1e-9 || math.Abs(c.Y-310) > 1e-9 {
		t.Errorf("unexpected cell center %v", c)
	}
}

func TestRenderGameHUD(t *testing.T) {
	sim, screen := newTestScreen(t, 100, 30)
	r := NewRenderer(screen)
	w := newTestWorld()

	r.RenderGame(w, false)

	title := rowText(sim, 0, 100)
	if !strings.Contains(title, Title) {
		t.Errorf("expected title in first row, got %q", title)
	}
	status := rowText(sim, 29, 100)
	if !strings.Contains(status, "Bricks: 35/35") {
		t.Errorf("expected brick count in status, got %q", status)
	}
	if !strings.Contains(status, "Sound: on") {
		t.Errorf("expected sound state in status, got %q", status)
	}

	r.RenderGame(w, true)
	if status := rowText(sim, 29, 100); !strings.Contains(status, "Sound: off") {
		t.Errorf("expected muted status, got %q", status)
	}
}

func TestRenderGameBricksAndPaddle(t *testing.T) {
	sim, screen := newTestScreen(t, 80, 62)
	r := NewRenderer(screen)
	w := newTestWorld()

	r.RenderGame(w, false)

	// First brick spans field (10..100, 10..40): cells x 1..9, rows 2..4
	if bg := bgAt(sim, 5, 3); bg != RGB(game.BrickColor) {
		t.Errorf("expected brick color at (5, 3), got %v", bg)
	}
	// Gutter between first and second column
	if bg := bgAt(sim, 10, 3); bg != RGB(Background) {
		t.Errorf("expected background in gutter, got %v", bg)
	}
	// Paddle at (340..460, 570..585)
	if bg := bgAt(sim, 40, 58); bg != RGB(game.PaddleColor) {
		t.Errorf("expected paddle color at (40, 58), got %v", bg)
	}
	// Ball centered at (400, 300)
	if bg := bgAt(sim, 40, 31); bg != RGB(BallColor) {
		t.Errorf("expected ball color at (40, 31), got %v", bg)
	}

	w.Bricks[0].Destroyed = true
	r.RenderGame(w, false)
	if bg := bgAt(sim, 5, 3); bg != RGB(Background) {
		t.Errorf("destroyed brick should not be drawn, got %v", bg)
	}
}

func TestRenderGameBallLost(t *testing.T) {
	sim, screen := newTestScreen(t, 80, 24)
	r := NewRenderer(screen)
	w := newTestWorld()
	w.Ball.Pos = physics.V(400, game.FieldHeight+50)

	r.RenderGame(w, false)

	if text := rowText(sim, 12, 80); !strings.Contains(text, "ENTER to serve") {
		t.Errorf("expected serve prompt, got %q", text)
	}
}

func TestRenderGameTinyScreen(t *testing.T) {
	_, screen := newTestScreen(t, 1, 1)
	r := NewRenderer(screen)
	r.RenderGame(newTestWorld(), false)
}

func TestParticleGlyph(t *testing.T) {
	tests := []struct {
		radius float64
		want   rune
	}{
		{6, '●'},
		{5, '●'},
		{4, '•'},
		{3, '•'},
		{2.5, '·'},
		{1, '·'},
	}
	for _, tt := range tests {
		if got := ParticleGlyph(tt.radius); got != tt.want {
			t.Errorf("ParticleGlyph(%v) = %c, want %c", tt.radius, got, tt.want)
		}
	}
}

func TestParticleColor(t *testing.T) {
	black := colorful.Color{}

	t.Run("opaque without tint keeps base color", func(t *testing.T) {
		p := particle.Particle{Color: color.RGBA{220, 150, 80, 255}}
		got := ParticleColor(p, black)
		if got.R != 220 || got.G != 150 || got.B != 80 {
			t.Errorf("expected unchanged color, got %v", got)
		}
	})

	t.Run("transparent fades to background", func(t *testing.T) {
		p := particle.Particle{Color: color.RGBA{220, 150, 80, 0}, Tint: color.RGBA{150, 150, 255, 255}}
		got := ParticleColor(p, black)
		if got.R != 0 || got.G != 0 || got.B != 0 {
			t.Errorf("expected background, got %v", got)
		}
	})

	t.Run("half faded is dimmer than base", func(t *testing.T) {
		p := particle.Particle{Color: color.RGBA{220, 150, 80, 128}}
		got := ParticleColor(p, black)
		if got.R >= 220 || got.R == 0 {
			t.Errorf("expected dimmed red channel, got %v", got)
		}
		if got.A != 255 {
			t.Errorf("expected opaque result, got alpha %d", got.A)
		}
	})

	t.Run("tint shifts the hue as it fades", func(t *testing.T) {
		tint := color.RGBA{150, 150, 255, 255}
		plain := ParticleColor(particle.Particle{Color: color.RGBA{220, 150, 80, 128}}, black)
		tinted := ParticleColor(particle.Particle{Color: color.RGBA{220, 150, 80, 128}, Tint: tint}, black)
		if tinted.B <= plain.B {
			t.Errorf("expected blue tint to raise blue channel: plain %v, tinted %v", plain, tinted)
		}
	})
}
