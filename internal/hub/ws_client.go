package hub

import (
	"encoding/json"
	"time"

	"campusvoice/backend/internal/models"
	"campusvoice/backend/pkg/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// WebSocketClient is the websocket transport behind the Client
// interface. The connection is read-mostly from the server's point of
// view: clients receive change events and re-fetch over HTTP; the only
// inbound traffic is pong frames and the close handshake.
type WebSocketClient struct {
	UserID      string
	ComplaintID string
	Conn        *websocket.Conn
	Hub         *ManagerService
	Send        chan models.Event
}

func (c *WebSocketClient) GetUserID() string                   { return c.UserID }
func (c *WebSocketClient) GetComplaintID() string              { return c.ComplaintID }
func (c *WebSocketClient) GetSendChannel() chan<- models.Event { return c.Send }

// Run starts the pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops writePump. readPump stops
// itself when the connection closes.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

// readPump drains the connection until the client goes away, then
// unregisters. Closing a view must release the subscription without any
// side effect on persisted data, which is exactly what happens here.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warnf("[hub] read error for user %s: %v", c.UserID, err)
			}
			break
		}
		// Inbound data frames are ignored: all writes go through HTTP.
	}
}

// writePump serializes events from Send onto the wire and keeps the
// connection alive with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(event)
			if err != nil {
				logger.Errorf("[hub] encode error for user %s: %v", c.UserID, err)
				continue
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
