package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot captures the current position and the color on turn. It is a
// snapshot of one position, not a move history.
type BoardSnapshot struct {
	ToMove          string `yaml:"to_move"`
	SerializedBoard string `yaml:"board,flow"`
}

// TakeSnapshot captures g's position.
func TakeSnapshot(g *Game) *BoardSnapshot {
	return &BoardSnapshot{
		ToMove:          g.Current().String(),
		SerializedBoard: strings.Join(g.Board().Rows(), "\n"),
	}
}

// Serialize renders the snapshot as a yaml document.
func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}
	return string(out)
}

// RestoreGame rebuilds a game from a serialized snapshot. The status is
// re-evaluated from the restored position.
func RestoreGame(in string) (*Game, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return snapshot.Game()
}

// Game rebuilds the game the snapshot captured.
func (snapshot *BoardSnapshot) Game() (*Game, error) {
	rows := strings.Split(snapshot.SerializedBoard, "\n")
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("snapshot has %d rows, want %d", len(rows), BoardSize)
	}

	b := &Board{}
	for r, row := range rows {
		if len(row) != BoardSize {
			return nil, fmt.Errorf("snapshot row %d has %d cells, want %d", r, len(row), BoardSize)
		}
		for c := 0; c < BoardSize; c++ {
			switch row[c] {
			case '.':
			case 'B':
				b.Cells[r][c] = Black
			case 'W':
				b.Cells[r][c] = White
			default:
				return nil, fmt.Errorf("snapshot row %d: bad cell %q", r, row[c])
			}
		}
	}

	var toMove Cell
	switch snapshot.ToMove {
	case Black.String():
		toMove = Black
	case White.String():
		toMove = White
	default:
		return nil, fmt.Errorf("snapshot to_move %q unknown", snapshot.ToMove)
	}
	return NewGameFromBoard(b, toMove), nil
}
