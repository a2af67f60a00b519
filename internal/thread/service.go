// Package thread manages the append-only conversation attached to a
// complaint. Messages are immutable once written; ordering is total
// within one complaint (created_at, then insertion sequence).
package thread

import (
	"strings"

	"campusvoice/backend/internal/config"
	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/notifier"
	"campusvoice/backend/internal/storage"
	"campusvoice/backend/pkg/logger"
)

// Service posts and lists thread messages.
type Service struct {
	storage  storage.Storage
	notifier notifier.Dispatcher
}

func NewService(s storage.Storage, d notifier.Dispatcher) *Service {
	return &Service{storage: s, notifier: d}
}

// Post appends a message to the complaint's thread. The author's admin
// flag is captured at call time and never revised. When an admin
// replies, the owning student is notified; notification and realtime
// publish failures never fail the post.
func (s *Service) Post(actorID, complaintID, text string) (*models.Response, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.Invalid("message", "must not be empty")
	}
	if len(text) > config.MessageMaxLen {
		return nil, domain.Invalid("message", "must be at most 500 characters")
	}

	complaint, err := s.storage.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}

	isAdmin, err := s.storage.IsAdmin(actorID)
	if err != nil {
		return nil, domain.Dependency("post message", err)
	}
	if !isAdmin && complaint.StudentID != actorID {
		return nil, domain.ErrNotFound
	}

	response := &models.Response{
		ComplaintID: complaintID,
		UserID:      actorID,
		Message:     text,
		IsAdmin:     isAdmin,
	}
	if err := s.storage.CreateResponse(response); err != nil {
		return nil, domain.Dependency("post message", err)
	}

	if err := s.storage.PublishEvent(complaintID, models.Event{
		Type:        models.EventResponseAdded,
		ComplaintID: complaintID,
		EntityID:    response.ID,
	}); err != nil {
		logger.Errorf("[thread] publish failed for complaint %s: %v", complaintID, err)
	}

	if isAdmin {
		s.notifier.NewResponse(complaintID, complaint.StudentID, complaint.Title, text)
	}

	return response, nil
}

// List returns the complaint's full thread in stable ascending order.
// Visibility follows the complaint itself: owner or admin.
func (s *Service) List(actorID, complaintID string) ([]models.Response, error) {
	complaint, err := s.storage.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}

	if complaint.StudentID != actorID {
		isAdmin, err := s.storage.IsAdmin(actorID)
		if err != nil {
			return nil, domain.Dependency("list messages", err)
		}
		if !isAdmin {
			return nil, domain.ErrNotFound
		}
	}

	return s.storage.ListResponses(complaintID)
}
