package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/brickburst/internal/game"
)

// KeyToDirection converts a key event to a paddle direction
// Arrows, a/d and h/l steer; everything else is DirNone
func KeyToDirection(key tcell.Key, r rune) game.Direction {
	switch key {
	case tcell.KeyLeft:
		return game.DirLeft
	case tcell.KeyRight:
		return game.DirRight
	case tcell.KeyRune:
		switch r {
		case 'a', 'A', 'h':
			return game.DirLeft
		case 'd', 'D', 'l':
			return game.DirRight
		}
	}
	return game.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsServeKey returns true if the key should relaunch a lost ball
func IsServeKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyEnter || (key == tcell.KeyRune && r == ' ')
}

// IsMuteKey returns true if the key toggles sound
func IsMuteKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'm' || r == 'M')
}
