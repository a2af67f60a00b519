package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Response is a single message in a complaint's conversation thread.
// Responses are append-only: never edited, never deleted. IsAdmin is
// captured from the author's role at send time and stays fixed even if
// the role changes later.
type Response struct {
	ID string `gorm:"primaryKey" json:"id"`
	// Seq breaks ordering ties between messages inserted within the
	// same timestamp granularity.
	Seq         int64     `gorm:"autoIncrement;uniqueIndex" json:"-"`
	ComplaintID string    `gorm:"type:uuid;not null;index:idx_complaint_msg" json:"complaint_id"`
	UserID      string    `gorm:"type:uuid;not null" json:"user_id"`
	Message     string    `gorm:"type:varchar(500);not null" json:"message"`
	IsAdmin     bool      `gorm:"not null" json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate generates the response ID when the caller did not set one.
func (r *Response) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
