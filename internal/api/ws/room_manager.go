package ws

import "gess/internal/room"

type RoomManager interface {
	Get(code string) (*room.Room, bool)
	ApplyMove(r *room.Room, playerID, from, to string) error
	Resign(r *room.Room, playerID string) error
}
