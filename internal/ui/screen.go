package ui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes text one grapheme cluster at a time, advancing by display width
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		rs := g.Runes()
		s.screen.SetContent(x, y, rs[0], rs[1:], style)
		x += g.Width()
	}
}

// DrawCentered writes text centered horizontally on row y
func (s *Screen) DrawCentered(y int, text string, style tcell.Style) {
	w, _ := s.Size()
	s.DrawText((w-TextWidth(text))/2, y, text, style)
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// TextWidth returns the number of terminal columns text occupies
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// RGB converts an RGBA color to a terminal color, ignoring alpha
func RGB(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
