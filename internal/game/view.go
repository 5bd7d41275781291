package game

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

// RenderFrame builds one frame as lines: the grid rows, a blank line,
// then the status line. The tile under the cursor is flanked by
// bracket characters in place of the usual cell gaps.
func RenderFrame(b *mines.Board) []string {
	cx, cy := b.Cursor()

	gap := func(x int) byte {
		switch cx {
		case x:
			return ')'
		case x + 1:
			return '('
		default:
			return ' '
		}
	}

	lines := make([]string, 0, b.Height+2)
	for y := range b.Height {
		var sb strings.Builder
		if y == cy {
			sb.WriteByte(gap(-1))
			for x := range b.Width {
				sb.WriteString(b.At(x, y).String())
				sb.WriteByte(gap(x))
			}
		} else {
			sb.WriteByte(' ')
			for x := range b.Width {
				sb.WriteString(b.At(x, y).String())
				sb.WriteByte(' ')
			}
		}
		lines = append(lines, sb.String())
	}

	lines = append(lines, "", fmt.Sprintf(
		"Mines: %d, Flags: %d, Remaining: %d",
		b.MineCount, b.FlagCount(), b.MineCount-b.FlagCount(),
	))
	return lines
}
