package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"golang.org/x/term"

	"github.com/diegok/brickburst/internal/app"
	"github.com/diegok/brickburst/internal/config"
)

const (
	logDir      = "logs"
	logFileName = "brickburst.log"
	maxLogSize  = 10 * 1024 * 1024
)

func main() {
	// Print the crash after tcell has had a chance to restore the terminal
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nBRICKBURST CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: brickburst needs an interactive terminal")
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		log.Printf("exiting with error: %+v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to logs/brickburst.log when debug
// is set and discards it otherwise, so nothing is written over the game.
// A log file larger than maxLogSize is renamed with a timestamp first.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("brickburst-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  brickburst [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --rows <n>            Brick rows (default: 5)")
	fmt.Fprintln(os.Stderr, "  --cols <n>            Brick columns (default: 7)")
	fmt.Fprintln(os.Stderr, "  --brick-width <w>     Brick width in field units (default: 90)")
	fmt.Fprintln(os.Stderr, "  --brick-height <h>    Brick height in field units (default: 30)")
	fmt.Fprintln(os.Stderr, "  --seed <n>            Random seed for particles (default: time based)")
	fmt.Fprintln(os.Stderr, "  --mute                Start without sound")
	fmt.Fprintln(os.Stderr, "  --debug               Write a log to logs/brickburst.log")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  ←/→, a/d, h/l   Move the paddle")
	fmt.Fprintln(os.Stderr, "  Enter, Space    Serve a lost ball")
	fmt.Fprintln(os.Stderr, "  m               Toggle sound")
	fmt.Fprintln(os.Stderr, "  q, Esc          Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  brickburst --rows 3 --cols 5 --brick-width 140")
	fmt.Fprintln(os.Stderr, "  brickburst --seed 42 --mute")
}
