package game

import (
	"math"
	"testing"
)

func newTestPaddle() *Paddle {
	return NewPaddle(340, 570, PaddleWidth, PaddleHeight, PaddleColor, FieldWidth)
}

func TestPaddle_MoveLeft(t *testing.T) {
	paddle := newTestPaddle()
	paddle.SetDirection(DirLeft)
	initialX := paddle.X

	paddle.Move()

	expectedX := initialX - PaddleSpeed
	if paddle.X != expectedX {
		t.Errorf("expected X=%f, got %f", expectedX, paddle.X)
	}
}

func TestPaddle_MoveRight(t *testing.T) {
	paddle := newTestPaddle()
	paddle.SetDirection(DirRight)
	initialX := paddle.X

	paddle.Move()

	expectedX := initialX + PaddleSpeed
	if paddle.X != expectedX {
		t.Errorf("expected X=%f, got %f", expectedX, paddle.X)
	}
}

func TestPaddle_StaysInBounds(t *testing.T) {
	paddle := newTestPaddle()

	paddle.X = 3
	paddle.SetDirection(DirLeft)
	for i := 0; i < 5; i++ {
		paddle.Move()
	}
	if paddle.X != 0 {
		t.Errorf("expected paddle clamped at left edge, got X=%f", paddle.X)
	}

	paddle.X = FieldWidth - PaddleWidth - 3
	paddle.SetDirection(DirRight)
	for i := 0; i < 5; i++ {
		paddle.Move()
	}
	if paddle.X+paddle.Width != FieldWidth {
		t.Errorf("expected paddle clamped at right edge, got right=%f", paddle.X+paddle.Width)
	}
}

func TestPaddle_MovementTimeout(t *testing.T) {
	paddle := newTestPaddle()
	paddle.SetDirection(DirRight)

	for i := 0; i < MovementTimeout; i++ {
		if paddle.Direction != DirRight {
			t.Fatalf("direction cleared early at tick %d", i)
		}
		paddle.Move()
	}

	if paddle.Direction != DirNone {
		t.Errorf("expected direction to expire after %d ticks, got %v", MovementTimeout, paddle.Direction)
	}

	x := paddle.X
	paddle.Move()
	if paddle.X != x {
		t.Errorf("expected paddle to stop, moved from %f to %f", x, paddle.X)
	}
}

func TestPaddle_MoveNone(t *testing.T) {
	paddle := newTestPaddle()
	paddle.SetDirection(DirNone)
	initialX := paddle.X

	paddle.Move()

	if paddle.X != initialX {
		t.Errorf("expected X to remain unchanged with DirNone, was %f, now %f", initialX, paddle.X)
	}
}

func TestPaddle_BendDecays(t *testing.T) {
	paddle := newTestPaddle()
	if paddle.Bending() {
		t.Fatal("new paddle should be idle")
	}

	paddle.Bounce()
	if paddle.CurveAmplitude != MaxCurveAmplitude {
		t.Fatalf("expected amplitude %f, got %f", MaxCurveAmplitude, paddle.CurveAmplitude)
	}
	if paddle.Phase != math.Pi/2 {
		t.Fatalf("expected phase at the wave peak, got %f", paddle.Phase)
	}

	prev := paddle.CurveAmplitude
	ticks := 0
	for paddle.Bending() {
		paddle.Animate()
		ticks++
		if ticks > 200 {
			t.Fatalf("bend did not settle, amplitude %f", paddle.CurveAmplitude)
		}
		if paddle.CurveAmplitude > prev || paddle.CurveAmplitude < 0 {
			t.Fatalf("amplitude not decaying monotonically: %f -> %f", prev, paddle.CurveAmplitude)
		}
		prev = paddle.CurveAmplitude
	}

	phase := paddle.Phase
	paddle.Animate()
	if paddle.CurveAmplitude != 0 || paddle.Phase != phase {
		t.Error("idle paddle should not animate")
	}
}

func TestPaddle_AnimateStep(t *testing.T) {
	paddle := newTestPaddle()
	paddle.Bounce()
	paddle.Animate()

	if math.Abs(paddle.CurveAmplitude-MaxCurveAmplitude*CurveDecay) > 1e-12 {
		t.Errorf("expected amplitude %f, got %f", MaxCurveAmplitude*CurveDecay, paddle.CurveAmplitude)
	}
	if math.Abs(paddle.Phase-(math.Pi/2+OscillationSpeed)) > 1e-12 {
		t.Errorf("expected phase advanced by %f, got %f", OscillationSpeed, paddle.Phase)
	}
}

func TestPaddle_Offset(t *testing.T) {
	paddle := newTestPaddle()
	paddle.Bounce()

	tests := []struct {
		name string
		dx   float64
		want float64
	}{
		{"center", 0, MaxCurveAmplitude},
		{"left end", -60, 0},
		{"right end", 60, 0},
		{"halfway", 30, MaxCurveAmplitude * 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paddle.Offset(tt.dx)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Offset(%f) = %f, want %f", tt.dx, got, tt.want)
			}
		})
	}
}

func TestPaddle_Center(t *testing.T) {
	paddle := newTestPaddle()
	c := paddle.Center()

	if c.X != 400 || c.Y != 577.5 {
		t.Errorf("expected center (400, 577.5), got %v", c)
	}
}
