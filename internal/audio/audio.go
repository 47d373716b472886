package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/brickburst/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
	muted       atomic.Bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// SetMuted silences or restores all sounds without closing the speaker
func SetMuted(m bool) {
	muted.Store(m)
}

func Muted() bool {
	return muted.Load()
}

func enabled() bool {
	return initialized && !muted.Load()
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := math.Sin(phase) * 0.3 // 0.3 volume
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// brickBreak is a short crunch: a high blip falling into a low sine
func brickBreak() beep.Streamer {
	return beep.Seq(
		squareWave(1320, 20*time.Millisecond),
		squareWave(990, 25*time.Millisecond),
		tone(220, 40*time.Millisecond),
	)
}

func ballLost() beep.Streamer {
	return beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	)
}

func fieldCleared() beep.Streamer {
	return beep.Seq(
		squareWave(523, 80*time.Millisecond),
		squareWave(659, 80*time.Millisecond),
		squareWave(784, 80*time.Millisecond),
		tone(1047, 200*time.Millisecond),
	)
}

// contactSound returns the streamer for a contact kind, nil if it is silent
func contactSound(kind game.ContactKind) beep.Streamer {
	switch kind {
	case game.ContactLeftWall, game.ContactRightWall, game.ContactTopWall:
		return squareWave(440, 30*time.Millisecond)
	case game.ContactPaddle:
		return squareWave(880, 50*time.Millisecond)
	case game.ContactBrick:
		return brickBreak()
	}
	return nil
}

// Play plays the sound for a contact
func Play(kind game.ContactKind) {
	if !enabled() {
		return
	}
	if s := contactSound(kind); s != nil {
		speaker.Play(s)
	}
}

// PlayPaddleHit plays the sound for ball hitting the paddle
func PlayPaddleHit() {
	Play(game.ContactPaddle)
}

// PlayWallBounce plays the sound for ball hitting a side or top wall
func PlayWallBounce() {
	Play(game.ContactTopWall)
}

// PlayBrickBreak plays the sound for a destroyed brick
func PlayBrickBreak() {
	Play(game.ContactBrick)
}

// PlayBallLost plays a descending tune when the ball leaves the field
func PlayBallLost() {
	if !enabled() {
		return
	}
	speaker.Play(ballLost())
}

// PlayCleared plays a rising tune when the last brick breaks
func PlayCleared() {
	if !enabled() {
		return
	}
	speaker.Play(fieldCleared())
}
