package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/IamDalemark/energy-consumption-frontend/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveWebSocket streams dataset feed frames to the browser. Each frame carries
// a monotonic seq so clients can drop frames arriving out of order.
func LiveWebSocket(feed *services.LiveFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		liveClients.Inc()
		defer liveClients.Dec()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		// Read pump: detect client disconnect
		go func() {
			defer cancel()
			for {
				_, _, err := conn.ReadMessage()
				if err != nil {
					return
				}
			}
		}()

		ch := feed.Subscribe()
		defer feed.Unsubscribe(ch)

		for {
			select {
			case <-ctx.Done():
				return
			case update, ok := <-ch:
				if !ok {
					return
				}
				if err := conn.WriteJSON(update); err != nil {
					log.Printf("ws write error: %v", err)
					return
				}
			}
		}
	}
}
