// Package survey implements the post-resolution feedback workflow. A
// survey is created once per resolution edge, reached through an
// unguessable token, and can be submitted exactly once.
package survey

import (
	"errors"
	"time"

	"campusvoice/backend/internal/config"
	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/notifier"
	"campusvoice/backend/internal/storage"
)

// Service creates, resolves and submits satisfaction surveys.
type Service struct {
	storage  storage.Storage
	notifier notifier.Dispatcher
}

func NewService(s storage.Storage, d notifier.Dispatcher) *Service {
	return &Service{storage: s, notifier: d}
}

// CreateForResolution creates the survey record for a freshly resolved
// complaint and triggers the invitation email carrying the tokenized
// link. Called by the lifecycle engine on the Resolved edge only.
func (s *Service) CreateForResolution(complaintID, studentID, title string) error {
	survey := &models.SatisfactionSurvey{
		ComplaintID: complaintID,
		StudentID:   studentID,
	}
	if err := s.storage.CreateSurvey(survey); err != nil {
		return domain.Dependency("create survey", err)
	}

	s.notifier.SurveyReady(complaintID, studentID, title, survey.SurveyToken)
	return nil
}

// View is what the public survey page may see: the complaint title for
// display and whether the survey was already answered. Student identity
// and other complaints are deliberately absent.
type View struct {
	ComplaintTitle string `json:"complaint_title"`
	Submitted      bool   `json:"submitted"`
}

// ResolveByToken looks a survey up for the public page. Unknown tokens
// surface as ErrNotFound ("invalid or expired link" to the user).
func (s *Service) ResolveByToken(token string) (*View, error) {
	survey, err := s.storage.GetSurveyByToken(token)
	if err != nil {
		return nil, err
	}

	complaint, err := s.storage.GetComplaintByID(survey.ComplaintID)
	if err != nil {
		return nil, err
	}

	return &View{
		ComplaintTitle: complaint.Title,
		Submitted:      survey.SubmittedAt != nil,
	}, nil
}

// SubmitRequest carries the student's answers. WouldRecommend is a
// pointer so "not answered" is distinguishable from "false".
type SubmitRequest struct {
	Rating               int
	ResponseTimeRating   int
	SupportQualityRating int
	WouldRecommend       *bool
	Feedback             string
}

// Submit records the answers exactly once. The write is a conditional
// update on submitted_at IS NULL, so concurrent double-submits resolve
// to a single winner; the loser gets ErrAlreadySubmitted.
func (s *Service) Submit(token string, req SubmitRequest) error {
	if err := validRating("rating", req.Rating); err != nil {
		return err
	}
	if err := validRating("response_time_rating", req.ResponseTimeRating); err != nil {
		return err
	}
	if err := validRating("support_quality_rating", req.SupportQualityRating); err != nil {
		return err
	}
	if req.WouldRecommend == nil {
		return domain.Invalid("would_recommend", "must be answered")
	}

	now := time.Now().UTC()
	rows, err := s.storage.SubmitSurvey(token, map[string]interface{}{
		"rating":                 req.Rating,
		"response_time_rating":   req.ResponseTimeRating,
		"support_quality_rating": req.SupportQualityRating,
		"would_recommend":        *req.WouldRecommend,
		"feedback":               req.Feedback,
		"submitted_at":           now,
	})
	if err != nil {
		return domain.Dependency("submit survey", err)
	}
	if rows > 0 {
		return nil
	}

	// Zero rows: either the token is unknown or the survey was already
	// answered. Disambiguate for the caller.
	if _, err := s.storage.GetSurveyByToken(token); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.Dependency("submit survey", err)
	}
	return domain.ErrAlreadySubmitted
}

func validRating(field string, v int) error {
	if v < config.RatingMin || v > config.RatingMax {
		return domain.Invalid(field, "must be between 1 and 5")
	}
	return nil
}
