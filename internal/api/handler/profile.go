package handler

import (
	"net/http"

	"campusvoice/backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated actor's profile.
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.Storage.GetProfileByID(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type updateProfileRequest struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department"`
	RollNo     string `json:"roll_no"`
}

// UpdateProfile saves the owner-editable fields. Email is not among
// them and cannot be changed through this endpoint.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	userID := middleware.GetUserID(c)
	profile, err := h.Storage.GetProfileByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	profile.Name = req.Name
	profile.Department = req.Department
	profile.RollNo = req.RollNo
	if err := h.Storage.UpdateProfile(profile); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
