package game

import "testing"

// placeRing surrounds center with 8 stones of the given color, leaving the
// center empty.
func placeRing(b *Board, center Coord, color Cell) {
	for _, d := range neighborDirs {
		b.Set(Coord{center.Row + d[0], center.Col + d[1]}, color)
	}
}

func TestInitialPositionHasBothRings(t *testing.T) {
	if got := Evaluate(NewBoard()); got != Unfinished {
		t.Fatalf("opening position evaluated to %v", got)
	}
}

func TestBothRingsMissingResolvesToWhiteWon(t *testing.T) {
	// Black's ring is checked first, so a double loss goes to white. This
	// ordering is part of the rules.
	if got := Evaluate(&Board{}); got != WhiteWon {
		t.Fatalf("empty board evaluated to %v, want WhiteWon", got)
	}
}

func TestBrokenBlackRingLosesForBlack(t *testing.T) {
	b := NewBoard()
	// The opening position holds exactly one black ring, centered at l3.
	b.Set(Coord{2, 10}, Empty)
	if got := Evaluate(b); got != WhiteWon {
		t.Fatalf("got %v, want WhiteWon", got)
	}
}

func TestBrokenWhiteRingLosesForWhite(t *testing.T) {
	b := NewBoard()
	b.Set(Coord{17, 10}, Empty)
	if got := Evaluate(b); got != BlackWon {
		t.Fatalf("got %v, want BlackWon", got)
	}
}

func TestRingNeedsAllEightNeighbors(t *testing.T) {
	b := &Board{}
	placeRing(b, Coord{5, 5}, Black)
	placeRing(b, Coord{14, 14}, White)
	b.Set(Coord{13, 15}, Empty) // seven neighbors are not a ring

	if got := Evaluate(b); got != BlackWon {
		t.Fatalf("got %v, want BlackWon with a 7-neighbor white formation", got)
	}

	b.Set(Coord{13, 15}, White)
	if got := Evaluate(b); got != Unfinished {
		t.Fatalf("got %v, want Unfinished once both rings close", got)
	}
}

func TestRingCenterMustBeEmpty(t *testing.T) {
	b := &Board{}
	placeRing(b, Coord{5, 5}, Black)
	b.Set(Coord{5, 5}, Black) // filled center disqualifies the formation
	placeRing(b, Coord{14, 14}, White)

	if got := Evaluate(b); got != WhiteWon {
		t.Fatalf("got %v, want WhiteWon when black's only formation has a filled center", got)
	}
}

func TestRingPollutedByOpponentStone(t *testing.T) {
	b := &Board{}
	placeRing(b, Coord{5, 5}, Black)
	placeRing(b, Coord{14, 14}, White)
	b.Set(Coord{4, 4}, White) // opponent stone inside black's wall

	if got := Evaluate(b); got != WhiteWon {
		t.Fatalf("got %v, want WhiteWon with a polluted black ring", got)
	}
}
