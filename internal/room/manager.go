package room

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gess/internal/config"
	"gess/internal/game"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRoomFull    = errors.New("room already has two players")
	ErrUnknownSeat = errors.New("player not seated in this room")
	ErrNotYourTurn = errors.New("not your turn")
)

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub}
}

// SetHub swaps the broadcaster after construction; the websocket hub and the
// manager reference each other, so one of them is wired late.
func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

// CreateRoom opens a room with the creator seated as black.
func (m *Manager) CreateRoom(creatorName string) *Room {
	r := &Room{
		ID:        uuid.NewString(),
		Code:      randCode(m.cfg.RoomCodeLen),
		Game:      game.NewGame(),
		CreatedAt: time.Now(),
	}
	r.Players = append(r.Players, Player{
		ID:    uuid.NewString(),
		Name:  creatorName,
		Color: game.Black,
	})
	m.store.SaveRoom(r)
	logrus.WithFields(logrus.Fields{"room": r.Code, "player": creatorName}).Info("room created")
	return r
}

// Join seats a second player as white and returns that player.
func (m *Manager) Join(code, name string) (*Room, *Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, nil, fmt.Errorf("room %s not found", code)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Full() {
		return nil, nil, ErrRoomFull
	}
	r.Players = append(r.Players, Player{
		ID:    uuid.NewString(),
		Name:  name,
		Color: game.White,
	})
	m.store.SaveRoom(r)

	p := &r.Players[len(r.Players)-1]
	m.hub.Broadcast(r.Code, "player-joined", map[string]interface{}{
		"player": p.Name,
		"color":  p.Color.String(),
	})
	return r, p, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// ApplyMove runs one move attempt for the seated player. Coordinates arrive
// in alphanumeric notation; legality is entirely the engine's call.
func (m *Manager) ApplyMove(r *Room, playerID, from, to string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.seat(playerID)
	if p == nil {
		return ErrUnknownSeat
	}
	if r.Game.Current() != p.Color {
		return ErrNotYourTurn
	}

	fromC, err := game.ParseCoord(from)
	if err != nil {
		return err
	}
	toC, err := game.ParseCoord(to)
	if err != nil {
		return err
	}

	if err := r.Game.MakeMove(fromC, toC); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"room":   r.Code,
		"player": p.Name,
		"from":   from,
		"to":     to,
		"status": r.Game.Status().String(),
	}).Info("move applied")

	m.hub.Broadcast(r.Code, "move", map[string]interface{}{
		"player": p.Name,
		"from":   from,
		"to":     to,
		"board":  r.Game.Board().Rows(),
		"status": r.Game.Status().String(),
		"toMove": r.Game.Current().String(),
	})
	if r.Game.Status() != game.Unfinished {
		m.hub.Broadcast(r.Code, "game_over", map[string]interface{}{
			"status": r.Game.Status().String(),
		})
	}

	m.store.SaveRoom(r)
	return nil
}

// Resign ends the game in favor of the resigning player's opponent.
func (m *Manager) Resign(r *Room, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.seat(playerID)
	if p == nil {
		return ErrUnknownSeat
	}
	if err := r.Game.Resign(p.Color); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"room": r.Code, "player": p.Name}).Info("resignation")
	m.hub.Broadcast(r.Code, "game_over", map[string]interface{}{
		"status":   r.Game.Status().String(),
		"resigned": p.Name,
	})
	m.store.SaveRoom(r)
	return nil
}

// Targets lists the reachable anchors for the cluster at from, in notation
// form, for the seated player's color.
func (m *Manager) Targets(r *Room, playerID, from string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.seat(playerID)
	if p == nil {
		return nil, ErrUnknownSeat
	}
	if r.Game.Current() != p.Color {
		return nil, ErrNotYourTurn
	}

	fromC, err := game.ParseCoord(from)
	if err != nil {
		return nil, err
	}
	coords, err := r.Game.Targets(fromC)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.String()
	}
	return out, nil
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
