package websockets

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWebSocketManager initializes a WebSocketManager
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]*Client),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
		send:       make(chan ChatPush),
	}
}

// Run starts the WebSocket manager
func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client.Conn] = client
			manager.mu.Unlock()

		case conn := <-manager.unregister:
			manager.mu.Lock()
			if client, exists := manager.clients[conn]; exists {
				delete(manager.clients, conn)
				conn.Close()
				log.Printf("Client %s disconnected", client.UserID)
			}
			manager.mu.Unlock()

		case message := <-manager.broadcast:
			manager.mu.Lock()
			for _, client := range manager.clients {
				if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
					client.Conn.Close()
					delete(manager.clients, client.Conn)
				}
			}
			manager.mu.Unlock()

		case push := <-manager.send:
			manager.mu.Lock()
			for _, client := range manager.clients {
				if _, subscribed := client.ChatIDs[push.ChatID]; !subscribed {
					continue
				}
				if err := client.Conn.WriteMessage(websocket.TextMessage, push.Payload); err != nil {
					client.Conn.Close()
					delete(manager.clients, client.Conn)
				}
			}
			manager.mu.Unlock()
		}
	}
}

// HandleConnections upgrades HTTP requests to WebSocket connections
func (manager *WebSocketManager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket Upgrade Error:", err)
		return
	}

	client := &Client{Conn: conn, ChatIDs: make(map[string]struct{})}
	manager.register <- client

	defer func() {
		manager.unregister <- conn
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			manager.unregister <- conn
			break
		}

		var message Message
		if err := json.Unmarshal(msg, &message); err != nil {
			log.Println("Invalid JSON:", err)
			continue
		}

		switch message.Type {
		case MsgTypeSubscribe:
			// Run reads UserID and ChatIDs under the same lock.
			manager.mu.Lock()
			client.UserID = message.UserID
			if message.ChatID != "" {
				client.ChatIDs[message.ChatID] = struct{}{}
			}
			manager.mu.Unlock()
		}
	}
}

// Broadcast pushes a payload to every connected client.
func (manager *WebSocketManager) Broadcast(payload []byte) {
	manager.broadcast <- payload
}

// PushChatMessage delivers a new chat message to that chat's subscribers.
func (manager *WebSocketManager) PushChatMessage(chatID string, payload []byte) {
	manager.send <- ChatPush{ChatID: chatID, Payload: payload}
}
