package storage

import (
	"errors"

	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/models"

	"gorm.io/gorm"
)

// CreateComplaint inserts a new complaint row. ID, Seq and timestamps
// are filled by gorm and the BeforeCreate hook.
func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	return s.DB.Create(complaint).Error
}

// GetComplaintByID loads a single complaint.
func (s *Service) GetComplaintByID(id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.First(&complaint, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListComplaintsByStudent returns the complaints owned by one student,
// newest first.
func (s *Service) ListComplaintsByStudent(studentID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Where("student_id = ?", studentID).
		Order("created_at desc, seq desc").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// ListComplaints returns all complaints, optionally filtered by status,
// newest first. Admin-only at the service layer.
func (s *Service) ListComplaints(statusFilter string) ([]models.Complaint, error) {
	q := s.DB.Order("created_at desc, seq desc")
	if statusFilter != "" {
		q = q.Where("status = ?", statusFilter)
	}
	var complaints []models.Complaint
	if err := q.Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// UpdateComplaint persists status, priority and tags. Concurrent admin
// edits are last-write-wins at the row granularity.
func (s *Service) UpdateComplaint(complaint *models.Complaint) error {
	return s.DB.Model(&models.Complaint{ID: complaint.ID}).
		Select("status", "priority", "tags").
		Updates(map[string]interface{}{
			"status":   complaint.Status,
			"priority": complaint.Priority,
			"tags":     complaint.Tags,
		}).Error
}
