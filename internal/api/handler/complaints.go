package handler

import (
	"net/http"

	"campusvoice/backend/internal/api/middleware"
	"campusvoice/backend/internal/lifecycle"

	"github.com/gin-gonic/gin"
)

type createComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CreateComplaint files a new complaint for the authenticated student.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	complaint, err := h.Lifecycle.Create(middleware.GetUserID(c), req.Title, req.Description, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

// ListComplaints returns the complaints visible to the actor, optionally
// filtered by ?status=.
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints, err := h.Lifecycle.List(middleware.GetUserID(c), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// GetComplaint returns one complaint if the actor may see it.
func (h *Handler) GetComplaint(c *gin.Context) {
	complaint, err := h.Lifecycle.Get(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

type updateComplaintRequest struct {
	Status   *string  `json:"status"`
	Priority *string  `json:"priority"`
	Tags     []string `json:"tags"`
}

// UpdateComplaint applies an admin's status/priority/tags change. The
// lifecycle engine enforces the admin check and the resolution edge
// trigger.
func (h *Handler) UpdateComplaint(c *gin.Context) {
	var req updateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	complaint, err := h.Lifecycle.Update(middleware.GetUserID(c), c.Param("id"), lifecycle.UpdateRequest{
		Status:   req.Status,
		Priority: req.Priority,
		Tags:     req.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}
