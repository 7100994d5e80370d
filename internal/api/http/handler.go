package http

import (
	"net/http"

	"gess/internal/game"
	"gess/internal/room"

	"github.com/gin-gonic/gin"
)

// @Summary Create new room
// @Description Create a new room; the creator is seated as black
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player_name required"})
			return
		}
		rx := rm.CreateRoom(req.PlayerName)
		c.JSON(http.StatusOK, gin.H{
			"roomCode": rx.Code,
			"room":     rx,
			"playerId": rx.Players[0].ID,
		})
	}
}

// @Summary Join a room
// @Description Take the white seat in an existing room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Room and player info"
// @Success 200 {object} map[string]interface{}
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room_code and player_name required"})
			return
		}
		rx, p, err := rm.Join(req.RoomCode, req.PlayerName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx, "playerId": p.ID})
	}
}

// @Summary Get room state
// @Description Current board, status and color on turn
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"room":   rx,
			"board":  rx.Game.Board().Rows(),
			"status": rx.Game.Status().String(),
			"toMove": rx.Game.Current().String(),
		})
	}
}

// @Summary Get reachable targets for a cluster
// @Description Returns the target anchors the cluster at "from" could slide to
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param playerId query string true "Player ID"
// @Param from query string true "Cluster anchor, e.g. c3"
// @Success 200 {object} map[string]interface{}
// @Router /targets [get]
func TargetsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		targets, err := rm.Targets(rx, c.Query("playerId"), c.Query("from"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"targets": targets})
	}
}

// @Summary Player makes a move
// @Description Submit a from/to anchor pair for the seated player
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := rm.ApplyMove(rx, req.PlayerID, req.From, req.To); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"board":  rx.Game.Board().Rows(),
			"status": rx.Game.Status().String(),
			"toMove": rx.Game.Current().String(),
		})
	}
}

// @Summary Resign the game
// @Description The seated player resigns; their opponent wins
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.ResignRequest true "Resign data"
// @Success 200 {object} map[string]interface{}
// @Router /resign [post]
func ResignHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResignRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := rm.Resign(rx, req.PlayerID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "status": rx.Game.Status().String()})
	}
}

// @Summary Snapshot the current position
// @Description Returns the position as a yaml snapshot document
// @Tags Game
// @Produce plain
// @Param roomCode query string true "Room Code"
// @Success 200 {string} string
// @Router /snapshot [get]
func SnapshotHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.String(http.StatusOK, game.TakeSnapshot(rx.Game).Serialize())
	}
}
