package game

import (
	"fmt"
	"strconv"
)

// columns maps column letters to column indexes; "a" is the left border.
const columns = "abcdefghijklmnopqrst"

// ParseCoord decodes a column-letter plus row-number reference such as "c3"
// into a board coordinate. Border references like "a5" or "c20" parse fine;
// rejecting them as move anchors is the engine's job, not the decoder's.
func ParseCoord(s string) (Coord, error) {
	if len(s) < 2 {
		return Coord{}, fmt.Errorf("coordinate %q too short", s)
	}
	col := -1
	for i := 0; i < len(columns); i++ {
		if columns[i] == s[0] {
			col = i
			break
		}
	}
	if col < 0 {
		return Coord{}, fmt.Errorf("coordinate %q: bad column letter", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 || n > BoardSize {
		return Coord{}, fmt.Errorf("coordinate %q: row must be 1-%d", s, BoardSize)
	}
	return Coord{Row: n - 1, Col: col}, nil
}

// String renders the coordinate in column-letter row-number form.
func (c Coord) String() string {
	if c.Row < 0 || c.Row >= BoardSize || c.Col < 0 || c.Col >= BoardSize {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", columns[c.Col], c.Row+1)
}
