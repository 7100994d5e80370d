package game

// BoardSize is the full side length of the grid, border ring included.
const BoardSize = 20

type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Opponent returns the other stone color. Calling it on Empty returns Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

type Status int

const (
	Unfinished Status = iota
	BlackWon
	WhiteWon
)

func (s Status) String() string {
	switch s {
	case BlackWon:
		return "black_won"
	case WhiteWon:
		return "white_won"
	default:
		return "unfinished"
	}
}

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Board struct {
	Cells [BoardSize][BoardSize]Cell
}

// blackSetup lists the opening stones for black as {col, row} pairs.
// White mirrors them across the horizontal center line.
var blackSetup = [][2]int{
	{1, 2}, {2, 2}, {2, 1}, {2, 3}, {3, 2}, {4, 1}, {4, 3}, {5, 2},
	{6, 1}, {6, 3}, {7, 1}, {7, 2}, {7, 3}, {8, 1}, {8, 2}, {8, 3},
	{9, 1}, {9, 2}, {9, 3}, {10, 1}, {10, 2}, {10, 3}, {11, 1}, {11, 3},
	{12, 1}, {12, 2}, {12, 3}, {13, 1}, {13, 3}, {14, 2}, {15, 1}, {15, 3},
	{16, 2}, {17, 1}, {17, 2}, {17, 3}, {18, 2},
	{2, 6}, {5, 6}, {8, 6}, {11, 6}, {14, 6}, {17, 6},
}

// NewBoard returns a board with the standard opening position.
func NewBoard() *Board {
	b := &Board{}
	for _, p := range blackSetup {
		col, row := p[0], p[1]
		b.Cells[row][col] = Black
		b.Cells[BoardSize-1-row][col] = White
	}
	return b
}

func (b *Board) Get(c Coord) Cell {
	return b.Cells[c.Row][c.Col]
}

func (b *Board) Set(c Coord, v Cell) {
	b.Cells[c.Row][c.Col] = v
}

// OnBorder reports whether c lies on the outermost ring.
func (b *Board) OnBorder(c Coord) bool {
	return c.Row == 0 || c.Row == BoardSize-1 || c.Col == 0 || c.Col == BoardSize-1
}

// interior reports whether c lies strictly inside the border ring.
func interior(c Coord) bool {
	return c.Row > 0 && c.Row < BoardSize-1 && c.Col > 0 && c.Col < BoardSize-1
}

var cellRunes = [...]byte{Empty: '.', Black: 'B', White: 'W'}

// Rows renders the board as 20 strings of '.', 'B' and 'W', row 0 first.
func (b *Board) Rows() []string {
	rows := make([]string, BoardSize)
	buf := make([]byte, BoardSize)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			buf[c] = cellRunes[b.Cells[r][c]]
		}
		rows[r] = string(buf)
	}
	return rows
}
