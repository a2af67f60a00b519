package models_test

import (
	"encoding/json"
	"testing"

	"campusvoice/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, models.ValidStatus(models.StatusPending))
	assert.True(t, models.ValidStatus(models.StatusInProgress))
	assert.True(t, models.ValidStatus(models.StatusResolved))

	assert.False(t, models.ValidStatus("pending"), "status values are case sensitive")
	assert.False(t, models.ValidStatus("Closed"))
	assert.False(t, models.ValidStatus(""))
}

func TestValidPriority(t *testing.T) {
	assert.True(t, models.ValidPriority(models.PriorityLow))
	assert.True(t, models.ValidPriority(models.PriorityMedium))
	assert.True(t, models.ValidPriority(models.PriorityHigh))
	assert.True(t, models.ValidPriority(models.PriorityUrgent))

	assert.False(t, models.ValidPriority("urgent"))
	assert.False(t, models.ValidPriority("Critical"))
}

func TestComplaintBeforeCreate(t *testing.T) {
	complaint := &models.Complaint{}
	assert.NoError(t, complaint.BeforeCreate(nil))
	_, err := uuid.Parse(complaint.ID)
	assert.NoError(t, err, "generated ID must be a UUID")

	kept := &models.Complaint{ID: "preset"}
	assert.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, "preset", kept.ID)
}

func TestSurveyBeforeCreate(t *testing.T) {
	survey := &models.SatisfactionSurvey{}
	assert.NoError(t, survey.BeforeCreate(nil))

	_, err := uuid.Parse(survey.ID)
	assert.NoError(t, err)
	assert.Len(t, survey.SurveyToken, 64, "hex encoding of 32 random bytes")
}

func TestNewSurveyToken(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := models.NewSurveyToken()
		assert.NoError(t, err)
		assert.Len(t, token, 64)
		_, dup := seen[token]
		assert.False(t, dup, "tokens must not repeat")
		seen[token] = struct{}{}
	}
}

func TestSurveyJSONHidesCredentials(t *testing.T) {
	survey := models.SatisfactionSurvey{
		ID:          "s-1",
		ComplaintID: "c-1",
		StudentID:   "student-1",
		SurveyToken: "secret-token",
		Rating:      5,
	}

	out, err := json.Marshal(survey)
	assert.NoError(t, err)
	assert.NotContains(t, string(out), "secret-token")
	assert.NotContains(t, string(out), "student-1")
}

func TestDecodeEvent(t *testing.T) {
	event, err := models.DecodeEvent([]byte(`{"type":"response_added","complaint_id":"c-1","entity_id":"r-1"}`))
	assert.NoError(t, err)
	assert.Equal(t, models.EventResponseAdded, event.Type)
	assert.Equal(t, "c-1", event.ComplaintID)
	assert.Equal(t, "r-1", event.EntityID)

	_, err = models.DecodeEvent([]byte("not json"))
	assert.Error(t, err)
}
