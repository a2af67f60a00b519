package handler

import (
	"net/http"

	"campusvoice/backend/internal/api/middleware"
	"campusvoice/backend/internal/hub"
	"campusvoice/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and subscribes it to one
// complaint's change feed. Access is checked before the upgrade: a
// student can only watch their own complaints.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	complaintID := c.Query("complaint_id")
	if complaintID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "complaint_id is required"})
		return
	}

	userID := middleware.GetUserID(c)
	if _, err := h.Lifecycle.Get(userID, complaintID); err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}

	client := &hub.WebSocketClient{
		Hub:         h.Hub,
		UserID:      userID,
		ComplaintID: complaintID,
		Conn:        conn,
		Send:        make(chan models.Event, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
