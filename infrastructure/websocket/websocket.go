package websocket

import (
	"sync"

	"github.com/gofiber/websocket/v2"

	"elfateh-admin/pkg/logger"
)

// Hub ดูแล connection ของ dashboard ที่เปิดหน้า notifications ค้างไว้
// ทุก client ได้ notification ทุกตัว (dashboard เป็นของ admin ล้วน)
type Hub struct {
	clients    map[*websocket.Conn]string // conn -> admin id
	register   chan client
	unregister chan *websocket.Conn
	broadcast  chan Message
	mutex      sync.RWMutex
}

type client struct {
	conn    *websocket.Conn
	adminID string
}

// Message ข้อความที่ส่งให้ dashboard
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewHub() *Hub {
	h := &Hub{
		clients:    make(map[*websocket.Conn]string),
		register:   make(chan client),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan Message),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.mutex.Lock()
			h.clients[c.conn] = c.adminID
			h.mutex.Unlock()
			logger.Debug("WebSocket client connected", "admin_id", c.adminID)

		case conn := <-h.unregister:
			h.mutex.Lock()
			if adminID, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
				logger.Debug("WebSocket client disconnected", "admin_id", adminID)
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.RLock()
			for conn := range h.clients {
				if err := conn.WriteJSON(message); err != nil {
					logger.Warn("WebSocket send failed, dropping client", "error", err)
					go func(c *websocket.Conn) { h.unregister <- c }(conn)
				}
			}
			h.mutex.RUnlock()
		}
	}
}

// RegisterClient ลงทะเบียน connection ใหม่
func (h *Hub) RegisterClient(conn *websocket.Conn, adminID string) {
	h.register <- client{conn: conn, adminID: adminID}
}

// UnregisterClient ถอด connection ออก
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.unregister <- conn
}

// BroadcastToAll ส่งข้อความให้ทุก client ที่ต่ออยู่
func (h *Hub) BroadcastToAll(messageType string, data interface{}) {
	h.broadcast <- Message{Type: messageType, Data: data}
}

// TotalClients จำนวน client ที่ต่ออยู่ (สำหรับ health)
func (h *Hub) TotalClients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
