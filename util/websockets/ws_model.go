package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Message types
const (
	MsgTypeSubscribe   = "subscribe"
	MsgTypeChatMessage = "chat_message"
	MsgTypeCrewUpdate  = "crew_update"
	MsgTypeSaveUpdate  = "save_update"
)

// Client represents a connected WebSocket user
type Client struct {
	Conn    *websocket.Conn
	UserID  string
	ChatIDs map[string]struct{}
}

type WebSocketManager struct {
	clients    map[*websocket.Conn]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *websocket.Conn
	send       chan ChatPush
	mu         sync.Mutex
}

// ChatPush targets every subscriber of one chat transcript.
type ChatPush struct {
	ChatID  string `json:"chat_id"`
	Payload []byte `json:"-"`
}

// Message struct for incoming WebSocket messages
type Message struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
	ChatID string `json:"chat_id,omitempty"`
}
