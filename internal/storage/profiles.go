package storage

import (
	"errors"

	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateProfile inserts a new account record.
func (s *Service) CreateProfile(profile *models.Profile) error {
	return s.DB.Create(profile).Error
}

// GetProfileByID loads a profile by its auth identity.
func (s *Service) GetProfileByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := s.DB.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileByEmail loads a profile for sign-in.
func (s *Service) GetProfileByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := s.DB.First(&profile, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile saves owner-editable fields. Email is never touched
// here: callers whitelist name, department and roll number.
func (s *Service) UpdateProfile(profile *models.Profile) error {
	return s.DB.Model(&models.Profile{ID: profile.ID}).
		Select("name", "department", "roll_no").
		Updates(map[string]interface{}{
			"name":       profile.Name,
			"department": profile.Department,
			"roll_no":    profile.RollNo,
		}).Error
}

// IsAdmin reports whether the user has an AdminRole row.
func (s *Service) IsAdmin(userID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.AdminRole{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GrantAdmin adds the user to the admin set. Granting twice is a no-op.
func (s *Service) GrantAdmin(userID string) error {
	role := models.AdminRole{UserID: userID}
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&role).Error
}

// RevokeAdmin removes the user from the admin set.
func (s *Service) RevokeAdmin(userID string) error {
	return s.DB.Delete(&models.AdminRole{}, "user_id = ?", userID).Error
}

// GetAdminEmails resolves the email address of every current admin.
// An empty result is not an error: the dispatcher treats it as zero
// sends.
func (s *Service) GetAdminEmails() ([]string, error) {
	var emails []string
	err := s.DB.Model(&models.Profile{}).
		Joins("JOIN admin_roles ON admin_roles.user_id = profiles.id").
		Pluck("profiles.email", &emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}
