package room

import (
	"sync"
	"time"

	"gess/internal/game"
)

// Player holds one seat in a room. Seat colors are fixed at join time: the
// creator plays black, the joiner plays white.
type Player struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Color game.Cell `json:"-"`
}

type Room struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Players   []Player   `json:"players"`
	Game      *game.Game `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`

	// mu serializes move attempts per room; the engine itself performs no
	// locking and expects single-writer discipline.
	mu sync.Mutex
}

// seat returns the player with the given id, or nil.
func (r *Room) seat(playerID string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == playerID {
			return &r.Players[i]
		}
	}
	return nil
}

// Full reports whether both seats are taken.
func (r *Room) Full() bool {
	return len(r.Players) >= 2
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
}

type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}
