package handler

import (
	"net/http"

	"campusvoice/backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

type postResponseRequest struct {
	Message string `json:"message"`
}

// PostResponse appends a message to a complaint's thread.
func (h *Handler) PostResponse(c *gin.Context) {
	var req postResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	response, err := h.Thread.Post(middleware.GetUserID(c), c.Param("id"), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListResponses returns the complaint's thread in stable ascending
// order.
func (h *Handler) ListResponses(c *gin.Context) {
	responses, err := h.Thread.List(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}
