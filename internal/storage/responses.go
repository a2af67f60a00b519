package storage

import (
	"campusvoice/backend/internal/models"
)

// CreateResponse appends a message to a complaint's thread. Inserts
// never conflict: the thread is append-only and rows are immutable.
func (s *Service) CreateResponse(response *models.Response) error {
	return s.DB.Create(response).Error
}

// ListResponses returns the full thread for a complaint, ascending by
// creation time with the insertion sequence as a stable tie-break, so
// two messages written within the same timestamp still come back in
// insertion order.
func (s *Service) ListResponses(complaintID string) ([]models.Response, error) {
	var responses []models.Response
	err := s.DB.Where("complaint_id = ?", complaintID).
		Order("created_at asc, seq asc").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
