package network

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/service"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// serveWs streams the bot steps of a table as JSON messages until the table
// is closed or the client goes away.
func serveWs(c *gin.Context, table *service.Table) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error(err)
		return
	}
	defer conn.Close()

	steps, stop := table.Subscribe()
	defer stop()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := write(conn, gin.H{"type": "table", "table": table.View()}); err != nil {
		return
	}
	for {
		select {
		case <-gone:
			return
		case step, ok := <-steps:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "table closed"),
					time.Now().Add(writeWait))
				return
			}
			if err := write(conn, gin.H{"type": "step", "step": step}); err != nil {
				return
			}
		}
	}
}

func write(conn *websocket.Conn, message interface{}) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(message); err != nil {
		log.Error(err)
		return err
	}
	return nil
}
