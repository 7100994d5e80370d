package http

import (
	"gess/internal/api/ws"
	"gess/internal/room"

	"github.com/gin-gonic/gin"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/state", StateHandler(rm))
	r.GET("/targets", TargetsHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/resign", ResignHandler(rm))
	r.GET("/snapshot", SnapshotHandler(rm))

	return r
}
