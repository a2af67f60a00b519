package handler

import (
	"errors"
	"net/http"

	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/survey"

	"github.com/gin-gonic/gin"
)

// GetSurvey serves the public survey page's data: the complaint title
// and whether the survey was already answered. The token is the sole
// credential; no login is required.
func (h *Handler) GetSurvey(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	view, err := h.Survey.ResolveByToken(token)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "this survey link is invalid or has expired"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

type submitSurveyRequest struct {
	Token                string `json:"token"`
	Rating               int    `json:"rating"`
	ResponseTimeRating   int    `json:"response_time_rating"`
	SupportQualityRating int    `json:"support_quality_rating"`
	WouldRecommend       *bool  `json:"would_recommend"`
	Feedback             string `json:"feedback"`
}

// SubmitSurvey records the student's answers exactly once.
func (h *Handler) SubmitSurvey(c *gin.Context) {
	var req submitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	err := h.Survey.Submit(req.Token, survey.SubmitRequest{
		Rating:               req.Rating,
		ResponseTimeRating:   req.ResponseTimeRating,
		SupportQualityRating: req.SupportQualityRating,
		WouldRecommend:       req.WouldRecommend,
		Feedback:             req.Feedback,
	})
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "this survey link is invalid or has expired"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "thank you for your feedback"})
}

// ListSurveys returns all survey records for the admin analytics view.
func (h *Handler) ListSurveys(c *gin.Context) {
	surveys, err := h.Storage.ListSurveys()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, surveys)
}
