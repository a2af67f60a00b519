package storage

import (
	"context"
	"encoding/json"

	"campusvoice/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the persistence contract consumed by the lifecycle, thread
// and survey services. Keeping it an interface lets the hub and service
// tests run against a testify mock instead of a live database.
type Storage interface {
	// Profiles and roles
	CreateProfile(profile *models.Profile) error
	GetProfileByID(id string) (*models.Profile, error)
	GetProfileByEmail(email string) (*models.Profile, error)
	UpdateProfile(profile *models.Profile) error
	IsAdmin(userID string) (bool, error)
	GrantAdmin(userID string) error
	RevokeAdmin(userID string) error
	GetAdminEmails() ([]string, error)

	// Complaints
	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id string) (*models.Complaint, error)
	ListComplaintsByStudent(studentID string) ([]models.Complaint, error)
	ListComplaints(statusFilter string) ([]models.Complaint, error)
	UpdateComplaint(complaint *models.Complaint) error

	// Responses
	CreateResponse(response *models.Response) error
	ListResponses(complaintID string) ([]models.Response, error)

	// Surveys
	CreateSurvey(survey *models.SatisfactionSurvey) error
	GetSurveyByToken(token string) (*models.SatisfactionSurvey, error)
	SubmitSurvey(token string, fields map[string]interface{}) (int64, error)
	ListSurveys() ([]models.SatisfactionSurvey, error)

	// Realtime
	PublishEvent(complaintID string, event models.Event) error
}

// Service implements Storage over PostgreSQL (gorm) and Redis.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService constructs a Service. Redis may be nil for callers
// that only touch the database (the admin CLI).
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// ComplaintTopic is the pub/sub channel carrying one complaint's change
// feed. Scoping the topic per complaint keeps unrelated viewers out of
// the fan-out.
func ComplaintTopic(complaintID string) string {
	return "complaint:" + complaintID
}

// PublishEvent broadcasts a change event to everyone viewing the
// complaint, across all server instances.
func (s *Service) PublishEvent(complaintID string, event models.Event) error {
	if s.Redis == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, ComplaintTopic(complaintID), payload).Err()
}

// SubscribeToComplaints subscribes to the change feeds of all
// complaints at once. The hub routes messages per topic when fanning
// out to its registered viewers.
func (s *Service) SubscribeToComplaints() *redis.PubSub {
	return s.Redis.PSubscribe(s.Ctx, ComplaintTopic("*"))
}
