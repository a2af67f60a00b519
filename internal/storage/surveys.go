package storage

import (
	"errors"

	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/models"

	"gorm.io/gorm"
)

// CreateSurvey inserts a survey record. The token is generated by the
// model's BeforeCreate hook when unset.
func (s *Service) CreateSurvey(survey *models.SatisfactionSurvey) error {
	return s.DB.Create(survey).Error
}

// GetSurveyByToken resolves a survey by its capability token.
func (s *Service) GetSurveyByToken(token string) (*models.SatisfactionSurvey, error) {
	var survey models.SatisfactionSurvey
	err := s.DB.First(&survey, "survey_token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// SubmitSurvey writes the answers with a conditional update gated on
// submitted_at IS NULL, so a double-submit race resolves to exactly one
// winner. Returns the number of rows written: 0 means the survey was
// already completed or the token is unknown; callers disambiguate via
// GetSurveyByToken.
func (s *Service) SubmitSurvey(token string, fields map[string]interface{}) (int64, error) {
	result := s.DB.Model(&models.SatisfactionSurvey{}).
		Where("survey_token = ? AND submitted_at IS NULL", token).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListSurveys returns every survey record, newest first, for the admin
// analytics view and CSV export.
func (s *Service) ListSurveys() ([]models.SatisfactionSurvey, error) {
	var surveys []models.SatisfactionSurvey
	if err := s.DB.Order("created_at desc").Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}
