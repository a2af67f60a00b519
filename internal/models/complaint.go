package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // pq.StringArray for the tags column
	"gorm.io/gorm"
)

// Complaint status values. Admins may move a complaint between any two
// of them, including backwards when a resolved case is reopened.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// Complaint priority values. Priority is orthogonal to status and has
// no transition rules.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// ValidStatus reports whether s is one of the enumerated statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusResolved
}

// ValidPriority reports whether p is one of the enumerated priorities.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh || p == PriorityUrgent
}

// Complaint is a student-submitted concern tracked through the
// status/priority lifecycle. StudentID never changes after creation.
type Complaint struct {
	ID string `gorm:"primaryKey" json:"id"`
	// Seq is a monotonically increasing insertion counter used as the
	// stable tie-break when two rows share a timestamp.
	Seq         int64          `gorm:"autoIncrement;uniqueIndex" json:"-"`
	StudentID   string         `gorm:"type:uuid;not null;index" json:"student_id"`
	Title       string         `gorm:"type:varchar(100);not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	ImageURL    string         `gorm:"type:text" json:"image_url,omitempty"`
	Status      string         `gorm:"type:text;not null;default:'Pending'" json:"status"`
	Priority    string         `gorm:"type:text;not null;default:'Medium'" json:"priority"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BeforeCreate generates the complaint ID when the caller did not set one.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
