package mines

import (
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameParams struct {
	Width, Height, MineCount int
}

type Direction int8

const (
	Up Direction = iota
	Down
	Left
	Right
)

type GameStatus int8

const (
	On GameStatus = iota
	Won
	Lost
)

type point struct {
	x, y int
}

/*
 * The board is a flat array indexed y*width+x. Neighbor lookup is
 * plain coordinate arithmetic clipped at the edges, so every access
 * past the boundary checks below is in bounds by construction.
 */
type Board struct {
	GameParams
	tiles            []Tile
	cursorX, cursorY int
	flagCount        int
}

// NewBoard lays out params.MineCount mines (clamped to the cell count)
// and the rest safe tiles, applies a uniform random permutation over
// all cells, then derives each safe tile's neighboring mine count.
// This is the only place randomness is consumed; the same r always
// produces the same board.
func NewBoard(params GameParams, r *rand.Rand) *Board {
	size := params.Width * params.Height
	if params.MineCount > size {
		Log.WithFields(logrus.Fields{
			"mine_count": params.MineCount,
			"cells":      size,
		}).Warn("mine count exceeds cell count, clamping")
		params.MineCount = size
	}
	if params.MineCount < 0 {
		params.MineCount = 0
	}

	tiles := make([]Tile, size)
	for i := range params.MineCount {
		tiles[i].Content = ContentMine
	}
	r.Shuffle(size, func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	b := &Board{GameParams: params, tiles: tiles}
	b.deriveCounts()
	return b
}

/*
 * For every mine, bump the count of each adjacent safe tile.
 * Increments commute, so traversal order does not matter.
 */
func (b *Board) deriveCounts() {
	for y := range b.Height {
		for x := range b.Width {
			if b.At(x, y).Content != ContentMine {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if !b.inBounds(nx, ny) {
						continue
					}
					if t := &b.tiles[b.index(nx, ny)]; t.Content != ContentMine {
						t.Content++
					}
				}
			}
		}
	}
}

func (b *Board) index(x, y int) int {
	return y*b.Width + x
}

func (b *Board) inBounds(x, y int) bool {
	return 0 <= x && x < b.Width && 0 <= y && y < b.Height
}

func (b *Board) At(x, y int) Tile {
	return b.tiles[b.index(x, y)]
}

func (b *Board) Cursor() (x, y int) {
	return b.cursorX, b.cursorY
}

func (b *Board) FlagCount() int {
	return b.flagCount
}

// MoveCursor shifts the cursor one cell with modular wrap-around on
// both axes and in both directions.
func (b *Board) MoveCursor(dir Direction) {
	switch dir {
	case Up:
		b.cursorY = (b.cursorY - 1 + b.Height) % b.Height
	case Down:
		b.cursorY = (b.cursorY + 1) % b.Height
	case Left:
		b.cursorX = (b.cursorX - 1 + b.Width) % b.Width
	case Right:
		b.cursorX = (b.cursorX + 1) % b.Width
	}
}

// ToggleFlag flags a hidden tile or unflags a flagged one. Open tiles
// are left alone. The decrement is only reachable from Flagged, so the
// counter cannot underflow; guard anyway.
func (b *Board) ToggleFlag() {
	t := &b.tiles[b.index(b.cursorX, b.cursorY)]
	switch t.Vis {
	case Hidden:
		t.Vis = Flagged
		b.flagCount++
	case Flagged:
		t.Vis = Hidden
		if b.flagCount <= 0 {
			Log.Warn("flag count underflow, ignoring decrement")
			return
		}
		b.flagCount--
	}
}

// Reveal opens the tile under the cursor. Opening a zero-count safe
// tile cascades through its connected zero region.
func (b *Board) Reveal() {
	b.reveal(b.cursorX, b.cursorY)
}

/*
 * Worklist flood fill. Dequeued positions that are no longer hidden
 * are skipped, so duplicate entries are harmless and a flagged tile
 * is never force-opened even when the cascade reaches it. Each tile
 * goes Hidden->Open at most once, which bounds the queue.
 */
func (b *Board) reveal(x, y int) {
	if b.At(x, y).Vis != Hidden {
		return
	}
	queue := []point{{x, y}}
	for i := 0; i < len(queue); i++ {
		p := queue[i]
		t := &b.tiles[b.index(p.x, p.y)]
		if t.Vis != Hidden {
			continue
		}
		t.Vis = Open
		if t.Content != 0 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.x+dx, p.y+dy
				if !b.inBounds(nx, ny) {
					continue
				}
				if b.At(nx, ny).Vis == Open {
					continue
				}
				queue = append(queue, point{nx, ny})
			}
		}
	}
}

// Chord opens every unflagged neighbor of the open numbered tile under
// the cursor, provided exactly that many neighbors are flagged.
func (b *Board) Chord() {
	x, y := b.cursorX, b.cursorY
	t := b.At(x, y)
	if t.Vis != Open || t.Content == ContentMine {
		return
	}
	var (
		flags  int
		hidden []point
	)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !b.inBounds(nx, ny) {
				continue
			}
			switch b.At(nx, ny).Vis {
			case Flagged:
				flags++
			case Hidden:
				hidden = append(hidden, point{nx, ny})
			}
		}
	}
	if flags != int(t.Content) {
		return
	}
	for _, p := range hidden {
		b.reveal(p.x, p.y)
		if b.Evaluate() != On {
			return
		}
	}
}

// Evaluate scans the whole board. An open mine loses (and exposes the
// rest of the minefield); otherwise a board with no covered safe tile
// wins. Loss is checked first so a detonated mine always takes
// precedence. Repeated calls without mutation return the same result.
func (b *Board) Evaluate() GameStatus {
	var (
		exploded = false
		explored = true
	)
	for _, t := range b.tiles {
		if t.Content == ContentMine {
			if t.Vis == Open {
				exploded = true
			}
		} else if t.Vis != Open {
			explored = false
		}
	}
	if exploded {
		for i := range b.tiles {
			if b.tiles[i].Content == ContentMine {
				b.tiles[i].Vis = Open
			}
		}
		return Lost
	}
	if explored {
		return Won
	}
	return On
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			sb.WriteString(b.At(x, y).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
