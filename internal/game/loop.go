package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-tui/internal/mines"
)

type Action int8

const (
	Continue Action = iota
	Win
	Lose
	Quit
)

// Terminal renders one frame: clear, write the lines, flush.
type Terminal interface {
	ClearScreen() error
	WriteLine(text string) error
	Flush() error
}

// InputSource blocks until the next key arrives.
type InputSource interface {
	ReadKey() (Key, error)
}

// Loop owns the board for the lifetime of the game and translates
// input events into board operations. Single-threaded: one blocking
// read per iteration, fully processed before the next.
type Loop struct {
	board *mines.Board
	term  Terminal
	in    InputSource
	log   *logrus.Logger
}

func NewLoop(board *mines.Board, term Terminal, in InputSource, log *logrus.Logger) *Loop {
	return &Loop{board: board, term: term, in: in, log: log}
}

// ProcessKey applies one input event. Quit keys bypass evaluation;
// every other key, recognized or not, ends with a uniform status
// query on the board.
func (l *Loop) ProcessKey(k Key) Action {
	switch k.Kind {
	case KeyEscape:
		return Quit
	case KeyUp:
		l.board.MoveCursor(mines.Up)
	case KeyDown:
		l.board.MoveCursor(mines.Down)
	case KeyLeft:
		l.board.MoveCursor(mines.Left)
	case KeyRight:
		l.board.MoveCursor(mines.Right)
	case KeyChar:
		switch k.Ch {
		case 'q':
			return Quit
		case 'f':
			l.board.ToggleFlag()
		case ' ':
			l.board.Reveal()
		case 'c':
			l.board.Chord()
		}
	}
	switch l.board.Evaluate() {
	case mines.Won:
		return Win
	case mines.Lost:
		return Lose
	}
	return Continue
}

// Run drives the game to a terminal action. Win and Lose leave the
// final frame (with the minefield exposed on a loss) on screen; the
// caller prints the closing message once the terminal is released.
// A render or input failure aborts the game.
func (l *Loop) Run() (Action, error) {
	if err := l.draw(); err != nil {
		return Quit, err
	}
	for {
		k, err := l.in.ReadKey()
		if err != nil {
			return Quit, fmt.Errorf("read key: %w", err)
		}
		action := l.ProcessKey(k)
		if err := l.draw(); err != nil {
			return action, err
		}
		if action != Continue {
			cx, cy := l.board.Cursor()
			l.log.WithFields(logrus.Fields{
				"action":   action,
				"cursor_x": cx,
				"cursor_y": cy,
				"flags":    l.board.FlagCount(),
			}).Info("game over")
			return action, nil
		}
	}
}

func (l *Loop) draw() error {
	if err := l.term.ClearScreen(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	for _, line := range RenderFrame(l.board) {
		if err := l.term.WriteLine(line); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	if err := l.term.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
