package http

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Suraj8267/Tourist/module/core/domain"
)

// writeWait bounds each observer send so a stalled dashboard cannot block
// broadcast delivery to the others.
const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsObserver adapts a dashboard WebSocket connection to the hub observer
// contract. The mutex serializes writes; gorilla allows one writer at a time.
type wsObserver struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (o *wsObserver) Send(payload []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_ = o.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return o.conn.WriteMessage(websocket.TextMessage, payload)
}

// Dashboard upgrades the connection, registers it with the hub, and holds it
// open until the client goes away.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	obs := &wsObserver{conn: conn}
	h.hub.Register(obs)
	defer h.hub.Unregister(obs)

	greeting, err := json.Marshal(domain.ConnectionStatus{
		Type:      domain.EventConnectionStatus,
		Status:    "connected",
		Message:   "Successfully connected to police dashboard",
		Timestamp: time.Now().UTC(),
	})
	if err == nil {
		if err := obs.Send(greeting); err != nil {
			return
		}
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
