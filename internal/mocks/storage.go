// Package mocks provides testify test doubles for the storage and
// notifier contracts, shared by the service and hub tests.
package mocks

import (
	"campusvoice/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// Storage is a mock implementation of storage.Storage.
type Storage struct {
	mock.Mock
}

// Profiles and roles

func (m *Storage) CreateProfile(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *Storage) GetProfileByID(id string) (*models.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *Storage) GetProfileByEmail(email string) (*models.Profile, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *Storage) UpdateProfile(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *Storage) IsAdmin(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *Storage) GrantAdmin(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *Storage) RevokeAdmin(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *Storage) GetAdminEmails() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Complaints

func (m *Storage) CreateComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *Storage) GetComplaintByID(id string) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *Storage) ListComplaintsByStudent(studentID string) ([]models.Complaint, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *Storage) ListComplaints(statusFilter string) ([]models.Complaint, error) {
	args := m.Called(statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *Storage) UpdateComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

// Responses

func (m *Storage) CreateResponse(response *models.Response) error {
	args := m.Called(response)
	return args.Error(0)
}

func (m *Storage) ListResponses(complaintID string) ([]models.Response, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Response), args.Error(1)
}

// Surveys

func (m *Storage) CreateSurvey(survey *models.SatisfactionSurvey) error {
	args := m.Called(survey)
	return args.Error(0)
}

func (m *Storage) GetSurveyByToken(token string) (*models.SatisfactionSurvey, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SatisfactionSurvey), args.Error(1)
}

func (m *Storage) SubmitSurvey(token string, fields map[string]interface{}) (int64, error) {
	args := m.Called(token, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Storage) ListSurveys() ([]models.SatisfactionSurvey, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SatisfactionSurvey), args.Error(1)
}

// Realtime

func (m *Storage) PublishEvent(complaintID string, event models.Event) error {
	args := m.Called(complaintID, event)
	return args.Error(0)
}
