// Package term adapts a tcell screen to the game's Terminal and
// InputSource capabilities.
package term

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper-tui/internal/game"
)

type Screen struct {
	tc  tcell.Screen
	row int
}

func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	tc.HideCursor()
	return &Screen{tc: tc}, nil
}

// Fini restores the terminal. Must run before the process writes to
// stdout again.
func (s *Screen) Fini() {
	s.tc.Fini()
}

func (s *Screen) ClearScreen() error {
	s.tc.Clear()
	s.row = 0
	return nil
}

func (s *Screen) WriteLine(text string) error {
	col := 0
	for _, r := range text {
		s.tc.SetContent(col, s.row, r, nil, tcell.StyleDefault)
		col++
	}
	s.row++
	return nil
}

func (s *Screen) Flush() error {
	s.tc.Show()
	return nil
}

// ReadKey blocks until a key the game understands arrives. Resize
// events are absorbed with a sync; other events are ignored.
func (s *Screen) ReadKey() (game.Key, error) {
	for {
		switch ev := s.tc.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				return game.Key{Kind: game.KeyUp}, nil
			case tcell.KeyDown:
				return game.Key{Kind: game.KeyDown}, nil
			case tcell.KeyLeft:
				return game.Key{Kind: game.KeyLeft}, nil
			case tcell.KeyRight:
				return game.Key{Kind: game.KeyRight}, nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return game.Key{Kind: game.KeyEscape}, nil
			case tcell.KeyRune:
				return game.Char(ev.Rune()), nil
			}
		case *tcell.EventResize:
			s.tc.Sync()
		case nil:
			return game.Key{}, errors.New("event stream closed")
		}
	}
}
