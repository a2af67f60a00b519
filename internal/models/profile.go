package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the account record for a student or admin. The ID doubles
// as the auth identity carried in JWT claims. Email is set at
// registration and not editable afterwards.
type Profile struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Department   string    `gorm:"type:text" json:"department"`
	RollNo       string    `gorm:"type:text" json:"roll_no"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates the profile ID when the caller did not set one.
func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// AdminRole marks a profile as having admin capability. Membership is a
// flag-by-presence set: a row grants the capability, no row means
// student-only.
type AdminRole struct {
	UserID    string    `gorm:"primaryKey;type:uuid" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
