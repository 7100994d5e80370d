package http

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"player_name"`
}

// JoinRoomRequest represents the payload for /join-room.
type JoinRoomRequest struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
}

// MoveRequest represents a move attempt in alphanumeric notation.
type MoveRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// ResignRequest represents a resignation.
type ResignRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
}
