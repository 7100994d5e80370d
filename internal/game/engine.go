package game

import "sort"

// Game owns one board plus the turn and status bookkeeping around it. It is
// not safe for concurrent use; callers embedding it in a server must
// serialize access per game.
type Game struct {
	board   *Board
	status  Status
	current Cell
}

// NewGame starts a game from the standard opening position. Black moves first.
func NewGame() *Game {
	return &Game{board: NewBoard(), status: Unfinished, current: Black}
}

// NewGameFromBoard starts a game from an arbitrary position with toMove on
// turn. The status is evaluated from the position immediately.
func NewGameFromBoard(b *Board, toMove Cell) *Game {
	g := &Game{board: b, current: toMove}
	g.status = Evaluate(b)
	return g
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) Status() Status { return g.status }

// Current returns the color on turn.
func (g *Game) Current() Cell { return g.current }

// Resign ends the game in favor of loser's opponent.
func (g *Game) Resign(loser Cell) error {
	if g.status != Unfinished {
		return ErrGameOver
	}
	if loser == Black {
		g.status = WhiteWon
	} else {
		g.status = BlackWon
	}
	return nil
}

// MakeMove attempts to slide the cluster anchored at from to the anchor at
// to for the color on turn. Checks run in a fixed order and short-circuit on
// the first failure; any returned error leaves the board untouched. On
// success the board is mutated, the status re-evaluated, and, if the game is
// still open, the turn passes to the other color.
func (g *Game) MakeMove(from, to Coord) error {
	if g.status != Unfinished {
		return ErrGameOver
	}
	if !interior(from) || !interior(to) {
		return ErrInvalidAnchor
	}

	cl, err := NewCluster(g.board, from)
	if err != nil {
		return err
	}
	if cl.Mixed() || cl.Holds(g.current.Opponent()) {
		return ErrWrongCluster
	}

	if _, ok := cl.Targets()[to]; !ok {
		return ErrUnreachable
	}
	if !pathClear(g.board, cl, to) {
		return ErrObstructed
	}

	relocate(g.board, cl, to)

	g.status = Evaluate(g.board)
	if g.status == Unfinished {
		g.current = g.current.Opponent()
	}
	return nil
}

// Targets returns the reachable target anchors for the cluster at from,
// sorted by row then column. It applies the same selection checks as
// MakeMove but performs no path validation and never mutates the board.
func (g *Game) Targets(from Coord) ([]Coord, error) {
	if g.status != Unfinished {
		return nil, ErrGameOver
	}
	cl, err := NewCluster(g.board, from)
	if err != nil {
		return nil, err
	}
	if cl.Mixed() || cl.Holds(g.current.Opponent()) {
		return nil, ErrWrongCluster
	}

	set := cl.Targets()
	out := make([]Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out, nil
}
