package socket

import (
	"context"

	socketio "github.com/googollee/go-socket.io"

	"ehsaas_server/logger"
	"ehsaas_server/services"
)

type joinPayload struct {
	Room string `json:"room"`
}

type chatPayload struct {
	Room     string `json:"room"`
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
}

// NewSocketServer wires the Socket.IO transport to the hub and the chat
// service. Clients join their own userId room on connect to receive match
// notifications, and pair rooms to receive chat messages.
func NewSocketServer(hub *Hub, chat *services.ChatService) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		logger.Info("socket connected", "conn", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, data joinPayload) {
		if data.Room == "" {
			logger.Warn("join without room", "conn", c.ID())
			return
		}
		hub.Join(data.Room, c)
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, data joinPayload) {
		if data.Room == "" {
			return
		}
		hub.Leave(data.Room, c)
	})

	server.OnEvent("/", "chatMessage", func(c socketio.Conn, data chatPayload) {
		// Send broadcasts to the room itself on success, this sender's
		// connections included. Failures go back to the caller only.
		if _, err := chat.Send(context.Background(), data.Room, data.SenderID, data.Text); err != nil {
			logger.Warn("live send rejected", "conn", c.ID(), "room", data.Room, "err", err)
			c.Emit("error", map[string]string{"error": err.Error()})
		}
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		logger.Warn("socket error", "err", err)
		if c != nil {
			hub.Drop(c)
		}
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		logger.Info("socket disconnected", "conn", c.ID(), "reason", reason)
		hub.Drop(c)
	})

	return server
}
