// Package lifecycle is the complaint state machine: who may create and
// read complaints, which status/priority values exist, and what fires
// when an admin moves a complaint between states. Access policy lives
// here, not at the storage boundary.
package lifecycle

import (
	"strings"

	"campusvoice/backend/internal/config"
	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/notifier"
	"campusvoice/backend/internal/storage"
	"campusvoice/backend/pkg/logger"
)

// SurveyCreator is implemented by the survey workflow. The lifecycle
// engine calls it on the edge into Resolved and never on a repeated
// save of an already-resolved complaint.
type SurveyCreator interface {
	CreateForResolution(complaintID, studentID, title string) error
}

// Service handles complaint creation, reads and admin mutations.
type Service struct {
	storage  storage.Storage
	notifier notifier.Dispatcher
	surveys  SurveyCreator
}

func NewService(s storage.Storage, d notifier.Dispatcher, surveys SurveyCreator) *Service {
	return &Service{storage: s, notifier: d, surveys: surveys}
}

// Create files a new complaint for the acting student. Status starts at
// Pending and priority at Medium. The admin notification is triggered
// after the row is committed and cannot fail the call.
func (s *Service) Create(actorID, title, description, imageURL string) (*models.Complaint, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return nil, domain.Invalid("title", "must not be empty")
	}
	if len(title) > config.TitleMaxLen {
		return nil, domain.Invalid("title", "must be at most 100 characters")
	}
	if description == "" {
		return nil, domain.Invalid("description", "must not be empty")
	}
	if len(description) > config.DescriptionMaxLen {
		return nil, domain.Invalid("description", "must be at most 1000 characters")
	}

	profile, err := s.storage.GetProfileByID(actorID)
	if err != nil {
		return nil, domain.Dependency("create complaint", err)
	}

	complaint := &models.Complaint{
		StudentID:   actorID,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Status:      models.StatusPending,
		Priority:    models.PriorityMedium,
	}
	if err := s.storage.CreateComplaint(complaint); err != nil {
		return nil, domain.Dependency("create complaint", err)
	}

	s.notifier.NewComplaint(complaint.ID, actorID, profile.Name, complaint.Title, complaint.Description)

	return complaint, nil
}

// UpdateRequest carries the admin-editable complaint attributes. Nil
// fields are left unchanged.
type UpdateRequest struct {
	Status   *string
	Priority *string
	Tags     []string
}

// Update applies an admin's status/priority/tags change. It is a no-op
// returning the unchanged record when nothing differs. A transition
// into Resolved from any other status creates exactly one satisfaction
// survey; saving Resolved again does not.
func (s *Service) Update(actorID, complaintID string, req UpdateRequest) (*models.Complaint, error) {
	isAdmin, err := s.storage.IsAdmin(actorID)
	if err != nil {
		return nil, domain.Dependency("update complaint", err)
	}
	if !isAdmin {
		return nil, domain.NotAllowed(actorID, "update complaint status or priority")
	}

	complaint, err := s.storage.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !models.ValidStatus(*req.Status) {
		return nil, domain.Invalid("status", "must be Pending, In Progress or Resolved")
	}
	if req.Priority != nil && !models.ValidPriority(*req.Priority) {
		return nil, domain.Invalid("priority", "must be Low, Medium, High or Urgent")
	}

	prevStatus := complaint.Status
	changed := false

	if req.Status != nil && *req.Status != complaint.Status {
		complaint.Status = *req.Status
		changed = true
	}
	if req.Priority != nil && *req.Priority != complaint.Priority {
		complaint.Priority = *req.Priority
		changed = true
	}
	if req.Tags != nil && !equalTags(req.Tags, complaint.Tags) {
		complaint.Tags = req.Tags
		changed = true
	}

	if !changed {
		return complaint, nil
	}

	if err := s.storage.UpdateComplaint(complaint); err != nil {
		return nil, domain.Dependency("update complaint", err)
	}

	if err := s.storage.PublishEvent(complaint.ID, models.Event{
		Type:        models.EventComplaintUpdated,
		ComplaintID: complaint.ID,
		EntityID:    complaint.ID,
	}); err != nil {
		logger.Errorf("[lifecycle] publish failed for complaint %s: %v", complaint.ID, err)
	}

	statusChanged := complaint.Status != prevStatus
	if statusChanged {
		s.notifier.StatusChanged(complaint.ID, complaint.StudentID, complaint.Title, complaint.Status)
	}

	// Edge trigger: only the transition into Resolved creates a survey.
	if statusChanged && complaint.Status == models.StatusResolved {
		if err := s.surveys.CreateForResolution(complaint.ID, complaint.StudentID, complaint.Title); err != nil {
			logger.Errorf("[lifecycle] survey creation failed for complaint %s: %v", complaint.ID, err)
		}
	}

	return complaint, nil
}

// Get returns one complaint, scoped: students see only their own,
// admins see any.
func (s *Service) Get(actorID, complaintID string) (*models.Complaint, error) {
	complaint, err := s.storage.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}

	if complaint.StudentID != actorID {
		isAdmin, err := s.storage.IsAdmin(actorID)
		if err != nil {
			return nil, domain.Dependency("read complaint", err)
		}
		if !isAdmin {
			// Report not-found rather than forbidden so students cannot
			// probe for other students' complaint ids.
			return nil, domain.ErrNotFound
		}
	}
	return complaint, nil
}

// List returns the complaints visible to the actor: all of them for an
// admin, only their own for a student. statusFilter narrows by status
// when non-empty.
func (s *Service) List(actorID, statusFilter string) ([]models.Complaint, error) {
	if statusFilter != "" && !models.ValidStatus(statusFilter) {
		return nil, domain.Invalid("status", "unknown status filter")
	}

	isAdmin, err := s.storage.IsAdmin(actorID)
	if err != nil {
		return nil, domain.Dependency("list complaints", err)
	}
	if isAdmin {
		return s.storage.ListComplaints(statusFilter)
	}

	complaints, err := s.storage.ListComplaintsByStudent(actorID)
	if err != nil {
		return nil, err
	}
	if statusFilter == "" {
		return complaints, nil
	}
	filtered := complaints[:0]
	for _, c := range complaints {
		if c.Status == statusFilter {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
