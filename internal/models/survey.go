package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SatisfactionSurvey is a one-shot feedback record created when a
// complaint transitions into Resolved. SurveyToken is the sole
// credential for submitting: the link works without a login, so the
// token must be unguessable. SubmittedAt is nil until the student
// answers and is set at most once.
type SatisfactionSurvey struct {
	ID                   string     `gorm:"primaryKey" json:"id"`
	ComplaintID          string     `gorm:"type:uuid;not null;index" json:"complaint_id"`
	StudentID            string     `gorm:"type:uuid;not null" json:"-"`
	SurveyToken          string     `gorm:"type:text;not null;uniqueIndex" json:"-"`
	Rating               int        `json:"rating"`
	ResponseTimeRating   int        `json:"response_time_rating"`
	SupportQualityRating int        `json:"support_quality_rating"`
	WouldRecommend       bool       `json:"would_recommend"`
	Feedback             string     `gorm:"type:text" json:"feedback"`
	SubmittedAt          *time.Time `json:"submitted_at"`
	CreatedAt            time.Time  `json:"created_at"`
}

// BeforeCreate generates the survey ID and token when unset.
func (s *SatisfactionSurvey) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.SurveyToken == "" {
		s.SurveyToken, err = NewSurveyToken()
	}
	return
}

// NewSurveyToken returns a hex-encoded 256-bit random token.
func NewSurveyToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
