package room

import (
	"errors"
	"testing"

	"gess/internal/config"
	"gess/internal/game"
)

type fakeStore struct {
	rooms map[string]*Room
}

func newFakeStore() *fakeStore {
	return &fakeStore{rooms: map[string]*Room{}}
}

func (s *fakeStore) GetRoom(code string) (*Room, bool) {
	r, ok := s.rooms[code]
	return r, ok
}

func (s *fakeStore) SaveRoom(r *Room) {
	s.rooms[r.Code] = r
}

type recordingHub struct {
	actions []string
}

func (h *recordingHub) Broadcast(roomCode, action string, data interface{}) {
	h.actions = append(h.actions, action)
}

func newTestManager() (*Manager, *recordingHub) {
	hub := &recordingHub{}
	return NewManager(newFakeStore(), config.Config{RoomCodeLen: 6}, hub), hub
}

func TestCreateAndJoinRoom(t *testing.T) {
	m, _ := newTestManager()

	r := m.CreateRoom("alice")
	if len(r.Players) != 1 || r.Players[0].Color != game.Black {
		t.Fatalf("creator must take the black seat: %+v", r.Players)
	}

	_, p, err := m.Join(r.Code, "bob")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if p.Color != game.White {
		t.Fatalf("joiner must take the white seat, got %v", p.Color)
	}

	if _, _, err := m.Join(r.Code, "carol"); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("third join: got %v, want ErrRoomFull", err)
	}
	if _, _, err := m.Join("NOPE", "dave"); err == nil {
		t.Fatalf("joining a missing room must fail")
	}
}

func TestApplyMoveEnforcesSeatsAndTurns(t *testing.T) {
	m, hub := newTestManager()
	r := m.CreateRoom("alice")
	_, white, err := m.Join(r.Code, "bob")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	black := &r.Players[0]

	if err := m.ApplyMove(r, "ghost", "c3", "c6"); !errors.Is(err, ErrUnknownSeat) {
		t.Fatalf("unseated player: got %v, want ErrUnknownSeat", err)
	}
	if err := m.ApplyMove(r, white.ID, "c18", "c15"); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("white moving first: got %v, want ErrNotYourTurn", err)
	}
	if err := m.ApplyMove(r, black.ID, "c3", "zz"); err == nil {
		t.Fatalf("malformed coordinate must be rejected")
	}
	if err := m.ApplyMove(r, black.ID, "a5", "c5"); !errors.Is(err, game.ErrInvalidAnchor) {
		t.Fatalf("border anchor: got %v, want engine's ErrInvalidAnchor", err)
	}

	if err := m.ApplyMove(r, black.ID, "c3", "c6"); err != nil {
		t.Fatalf("legal opening move rejected: %v", err)
	}
	if err := m.ApplyMove(r, black.ID, "f3", "f6"); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("black moving twice: got %v, want ErrNotYourTurn", err)
	}

	found := false
	for _, a := range hub.actions {
		if a == "move" {
			found = true
		}
	}
	if !found {
		t.Fatalf("applied move was not broadcast, actions=%v", hub.actions)
	}
}

func TestResignEndsGame(t *testing.T) {
	m, hub := newTestManager()
	r := m.CreateRoom("alice")
	_, white, err := m.Join(r.Code, "bob")
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	if err := m.Resign(r, white.ID); err != nil {
		t.Fatalf("resign: %v", err)
	}
	if r.Game.Status() != game.BlackWon {
		t.Fatalf("status = %v, want BlackWon after white resigns", r.Game.Status())
	}
	if err := m.ApplyMove(r, r.Players[0].ID, "c3", "c6"); !errors.Is(err, game.ErrGameOver) {
		t.Fatalf("move after resignation: got %v, want ErrGameOver", err)
	}

	found := false
	for _, a := range hub.actions {
		if a == "game_over" {
			found = true
		}
	}
	if !found {
		t.Fatalf("resignation was not broadcast, actions=%v", hub.actions)
	}
}

func TestTargetsForSeatedPlayer(t *testing.T) {
	m, _ := newTestManager()
	r := m.CreateRoom("alice")
	black := &r.Players[0]

	targets, err := m.Targets(r, black.ID, "c3")
	if err != nil {
		t.Fatalf("targets: %v", err)
	}
	if len(targets) == 0 {
		t.Fatalf("opening cluster at c3 must have targets")
	}
	for _, s := range targets {
		if _, err := game.ParseCoord(s); err != nil {
			t.Fatalf("target %q is not valid notation", s)
		}
	}

	if _, err := m.Targets(r, black.ID, "c18"); !errors.Is(err, game.ErrWrongCluster) {
		t.Fatalf("opponent cluster: got %v, want ErrWrongCluster", err)
	}
}
