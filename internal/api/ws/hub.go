package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// SetManager wires the room manager after construction; the manager needs
// the hub as its broadcaster, so the two are connected in two steps.
func (h *Hub) SetManager(rm RoomManager) {
	h.roomManager = rm
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type wsMessage struct {
	Action string `json:"action"`
	Data   struct {
		PlayerID string `json:"player_id"`
		From     string `json:"from"`
		To       string `json:"to"`
	} `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}
	logrus.WithField("room", roomCode).Info("websocket connected")

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			logrus.WithError(err).Debug("websocket read ended")
			break
		}

		rx, ok := h.roomManager.Get(roomCode)
		if !ok {
			logrus.WithField("room", roomCode).Warn("room not found")
			continue
		}

		switch msg.Action {
		case "move":
			if err := h.roomManager.ApplyMove(rx, msg.Data.PlayerID, msg.Data.From, msg.Data.To); err != nil {
				h.sendError(conn, err)
			}
		case "resign":
			if err := h.roomManager.Resign(rx, msg.Data.PlayerID); err != nil {
				h.sendError(conn, err)
			}
		default:
			logrus.WithField("action", msg.Action).Warn("unknown action")
		}
	}
}

func (h *Hub) sendError(conn *websocket.Conn, err error) {
	payload := map[string]interface{}{
		"action": "error",
		"data":   gin.H{"error": err.Error()},
	}
	if werr := conn.WriteJSON(payload); werr != nil {
		logrus.WithError(werr).Warn("failed to send error frame")
	}
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			logrus.WithError(err).Warn("failed to send message")
			conn.Close()
			delete(clients, conn)
		}
	}
}
