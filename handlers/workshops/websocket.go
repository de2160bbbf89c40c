package workshops

import (
	"log"
	"net/http"

	"workshophub/realtime"
	"workshophub/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WorkshopWebSocket subscribes a client to change notifications for a workshop.
// The subscription is released when the connection drops.
func WorkshopWebSocket(c *gin.Context) {
	workshopID := c.Param("id")

	if !services.WorkshopExists(workshopID) {
		c.JSON(404, gin.H{"error": ErrWorkshopNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	sub := realtime.Subscribe(workshopID, conn)
	defer sub.Close()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			log.Printf("WebSocket read error: %v", err)
			break
		}
	}
}
