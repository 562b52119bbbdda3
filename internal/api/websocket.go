package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// metricsPushInterval is how often connected dashboards receive a
// fresh monitor snapshot.
const metricsPushInterval = 10 * time.Second

// wsConnection maintains one dashboard's WebSocket connection.
type wsConnection struct {
	conn   *websocket.Conn
	send   chan []byte
	mu     sync.Mutex
	server *Server
}

// handleWebSocket upgrades the connection and starts streaming monitor
// snapshots. The socket is push-only apart from refresh requests; no
// data ingestion happens here.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	wsConn := &wsConnection{
		conn:   conn,
		send:   make(chan []byte, 256),
		server: s,
	}

	// Start the read and write pumps
	go wsConn.writePump()
	go wsConn.readPump()
}

// readPump drains client messages so pings are answered; the only
// recognized request is a metrics refresh.
func (c *wsConnection) readPump() {
	defer func() {
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pushes snapshots on a fixed interval and keeps the
// connection alive with pings.
func (c *wsConnection) writePump() {
	pushTicker := time.NewTicker(metricsPushInterval)
	pingTicker := time.NewTicker(30 * time.Second)
	defer func() {
		pushTicker.Stop()
		pingTicker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// The channel was closed
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-pushTicker.C:
			c.sendSnapshot()
		case <-pingTicker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes incoming messages
func (c *wsConnection) handleMessage(message []byte) {
	var req struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(message, &req); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		return
	}

	if req.Action == "refresh" {
		c.sendSnapshot()
	}
}

// sendSnapshot queues the current monitor snapshot for delivery.
func (c *wsConnection) sendSnapshot() {
	data, err := json.Marshal(c.server.monitor.GetMetrics())
	if err != nil {
		log.Printf("Error marshaling metrics: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		log.Println("WebSocket buffer full, dropping message")
	}
}
