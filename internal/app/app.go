package app

import (
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/diegok/brickburst/internal/audio"
	"github.com/diegok/brickburst/internal/config"
	"github.com/diegok/brickburst/internal/game"
	"github.com/diegok/brickburst/internal/ui"
)

// FrameInterval is the render and simulation period (~60fps)
const FrameInterval = time.Second / game.TickRate

// statsEvery controls how often world stats are logged, in ticks
const statsEvery = 5 * game.TickRate

// App is the main application controller that owns the world and the terminal.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	world    *game.World
	seed     uint64
	muted    bool
	lastTick time.Time

	// play is called once per contact; audio.Play outside of tests
	play func(game.ContactKind)

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App with a fresh world built from cfg.
func NewApp(cfg *config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	field := game.Field{Width: game.FieldWidth, Height: game.FieldHeight}
	src := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	return &App{
		cfg:   cfg,
		world: game.NewWorld(field, cfg.Level, src),
		seed:  seed,
		muted: cfg.Mute,
		play:  audio.Play,
		quit:  make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and runs the game loop.
func (a *App) Run() error {
	if !a.cfg.Mute {
		// Game works without sound
		if err := audio.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	audio.SetMuted(a.muted)

	screen, err := ui.InitScreen()
	if err != nil {
		audio.Close()
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	// Restore the terminal even when the loop panics
	defer a.cleanup()

	go func() {
		select {
		case <-a.sigChan:
			a.Stop()
		case <-a.quit:
		}
	}()

	log.Printf("starting: seed=%d level=%+v", a.seed, a.cfg.Level)
	return a.mainLoop()
}

// Stop ends the main loop. Safe to call more than once.
func (a *App) Stop() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// mainLoop is the main event loop that handles all input and state updates.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	a.lastTick = time.Now()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.Stop()
				return nil
			}

		case now := <-ticker.C:
			a.tick(now)
			a.renderer.RenderGame(a.world, a.muted)
		}
	}
}

// tick advances the world by the time measured since the previous tick.
func (a *App) tick(now time.Time) {
	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now

	wasLost := a.world.BallLost()
	remaining := a.world.Bricks.Remaining()

	for _, c := range a.world.Step(dt) {
		a.play(c.Kind)
		if c.Kind == game.ContactBrick {
			log.Printf("tick %d: brick at (%.0f, %.0f) destroyed, %d left",
				a.world.Tick, c.Brick.Rect.X, c.Brick.Rect.Y, a.world.Bricks.Remaining())
		}
	}

	if !wasLost && a.world.BallLost() {
		log.Printf("tick %d: ball lost", a.world.Tick)
		audio.PlayBallLost()
	}
	if remaining > 0 && a.world.Bricks.Remaining() == 0 {
		log.Printf("tick %d: all bricks cleared", a.world.Tick)
		audio.PlayCleared()
	}
	if a.world.Tick%statsEvery == 0 {
		log.Printf("tick %d: dt=%.4f particles=%d ball=(%.1f, %.1f) speed=%.2f spin=%.4f",
			a.world.Tick, dt, a.world.Particles.Len(),
			a.world.Ball.Pos.X, a.world.Ball.Pos.Y, a.world.Ball.Speed(), a.world.Ball.AngularVelocity)
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, r := ev.Key(), ev.Rune()
		if ui.IsQuitKey(key, r) {
			return true
		}
		if ui.IsServeKey(key, r) {
			if a.world.Serve() {
				log.Printf("tick %d: ball served", a.world.Tick)
			}
			return false
		}
		if ui.IsMuteKey(key, r) {
			a.muted = !a.muted
			audio.SetMuted(a.muted)
			return false
		}
		if dir := ui.KeyToDirection(key, r); dir != game.DirNone {
			a.world.Steer(dir)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.RenderGame(a.world, a.muted)
	}

	return false
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
