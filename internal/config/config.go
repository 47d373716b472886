package config

import (
	"flag"
	"fmt"

	"github.com/diegok/brickburst/internal/game"
)

// Default values for configuration
const (
	DefaultRows        = game.DefaultRows
	DefaultCols        = game.DefaultCols
	DefaultBrickWidth  = game.DefaultBrickW
	DefaultBrickHeight = game.DefaultBrickH
)

// Config holds the application configuration
type Config struct {
	Level game.Level
	Seed  uint64 // 0 picks a time-based seed
	Mute  bool
	Debug bool
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("brickburst", flag.ContinueOnError)

	rows := fs.Int("rows", DefaultRows, "brick rows (>=1)")
	cols := fs.Int("cols", DefaultCols, "brick columns (>=1)")
	brickW := fs.Float64("brick-width", DefaultBrickWidth, "brick width in field units")
	brickH := fs.Float64("brick-height", DefaultBrickHeight, "brick height in field units")
	seed := fs.Uint64("seed", 0, "random seed for particle bursts (0 = time based)")
	mute := fs.Bool("mute", false, "disable sound")
	debug := fs.Bool("debug", false, "write a debug log to logs/")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	level := game.Level{
		Rows:        *rows,
		Cols:        *cols,
		BrickWidth:  *brickW,
		BrickHeight: *brickH,
	}

	// Validate: the wall must fit in the field above the paddle
	field := game.Field{Width: game.FieldWidth, Height: game.FieldHeight}
	if err := level.Validate(field); err != nil {
		return nil, fmt.Errorf("invalid level: %w", err)
	}

	cfg := &Config{
		Level: level,
		Seed:  *seed,
		Mute:  *mute,
		Debug: *debug,
	}

	return cfg, nil
}
