package game

var neighborDirs = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ringAt reports whether the empty interior cell (row, col) is enclosed by
// stones of color want on all 8 sides.
func ringAt(b *Board, row, col int, want Cell) bool {
	for _, d := range neighborDirs {
		if b.Cells[row+d[0]][col+d[1]] != want {
			return false
		}
	}
	return true
}

// Evaluate scans the interior for each side's ring and returns the game
// status. A side without a ring has lost. Black's ring is checked first, so
// a position where both rings are gone resolves to WhiteWon; that ordering
// is a rule of the game, not an accident.
func Evaluate(b *Board) Status {
	blackRing, whiteRing := false, false
	for row := 1; row <= BoardSize-2; row++ {
		for col := 1; col <= BoardSize-2; col++ {
			if b.Cells[row][col] != Empty {
				continue
			}
			if !blackRing && ringAt(b, row, col, Black) {
				blackRing = true
			}
			if !whiteRing && ringAt(b, row, col, White) {
				whiteRing = true
			}
		}
	}
	if !blackRing {
		return WhiteWon
	}
	if !whiteRing {
		return BlackWon
	}
	return Unfinished
}
