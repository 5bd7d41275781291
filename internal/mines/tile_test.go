package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileString(t *testing.T) {
	tests := []struct {
		name string
		tile Tile
		want string
	}{
		{"hidden safe", Tile{Content: 3, Vis: Hidden}, "#"},
		{"hidden mine", Tile{Content: ContentMine, Vis: Hidden}, "#"},
		{"flagged safe", Tile{Content: 0, Vis: Flagged}, "F"},
		{"flagged mine", Tile{Content: ContentMine, Vis: Flagged}, "F"},
		{"open mine", Tile{Content: ContentMine, Vis: Open}, "*"},
		{"open zero", Tile{Content: 0, Vis: Open}, " "},
		{"open one", Tile{Content: 1, Vis: Open}, "1"},
		{"open eight", Tile{Content: 8, Vis: Open}, "8"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.tile.String())
		})
	}
}

func TestBoardString(t *testing.T) {
	b := testBoard(2, 2, point{1, 1})
	b.Reveal()
	assert.Equal(t, "1 # \n# # \n", b.String())
}
