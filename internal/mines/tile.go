package mines

import "strconv"

// Content is what a tile holds: a mine, or a safe cell carrying the
// number of mined neighbors (0..8). Counts are filled in once during
// board construction and never change afterwards.
type Content int8

const ContentMine Content = -1

// Visibility is the player-facing state of a tile. It only ever
// changes through player actions.
type Visibility int8

const (
	Hidden Visibility = iota
	Flagged
	Open
)

type Tile struct {
	Content Content
	Vis     Visibility
}

func (t Tile) String() string {
	switch t.Vis {
	case Hidden:
		return "#"
	case Flagged:
		return "F"
	}
	switch {
	case t.Content == ContentMine:
		return "*"
	case t.Content == 0:
		return " "
	default:
		return strconv.Itoa(int(t.Content))
	}
}
