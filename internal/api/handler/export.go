package handler

import (
	"errors"

	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/export"
	"campusvoice/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ExportComplaints streams all complaints as a CSV download. Admin only
// (enforced by route middleware).
func (h *Handler) ExportComplaints(c *gin.Context) {
	complaints, err := h.Storage.ListComplaints(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	profiles := make(map[string]*models.Profile)
	for _, complaint := range complaints {
		if _, ok := profiles[complaint.StudentID]; ok {
			continue
		}
		profile, err := h.Storage.GetProfileByID(complaint.StudentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			respondError(c, err)
			return
		}
		profiles[complaint.StudentID] = profile
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="complaints.csv"`)
	if err := export.Complaints(c.Writer, complaints, profiles); err != nil {
		respondError(c, err)
	}
}

// ExportSurveys streams all survey records as a CSV download. Admin
// only.
func (h *Handler) ExportSurveys(c *gin.Context) {
	surveys, err := h.Storage.ListSurveys()
	if err != nil {
		respondError(c, err)
		return
	}

	titles := make(map[string]string)
	for _, s := range surveys {
		if _, ok := titles[s.ComplaintID]; ok {
			continue
		}
		complaint, err := h.Storage.GetComplaintByID(s.ComplaintID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			respondError(c, err)
			return
		}
		titles[s.ComplaintID] = complaint.Title
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="surveys.csv"`)
	if err := export.Surveys(c.Writer, surveys, titles); err != nil {
		respondError(c, err)
	}
}
