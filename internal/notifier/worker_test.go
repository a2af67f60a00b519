package notifier

import (
	"context"
	"encoding/json"
	"testing"

	"campusvoice/backend/internal/config"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestNewWorker_NilWithoutRedis(t *testing.T) {
	cfg := &config.Config{RedisEnabled: false}
	assert.Nil(t, NewWorker(cfg, nil))
}

func TestHandleNotification_DropsUndecodablePayload(t *testing.T) {
	w := &Worker{}

	task := asynq.NewTask(TaskTypeNotification, []byte("{not json"))
	err := w.handleNotification(context.Background(), task)

	assert.NoError(t, err, "a payload that cannot decode must not be retried")
}

func TestNotificationPayloadRoundTrip(t *testing.T) {
	in := Notification{
		Kind:        KindSurveyReady,
		ComplaintID: "c-1",
		StudentID:   "student-1",
		Title:       "Broken AC",
		SurveyToken: "tok-abc",
	}

	payload, err := json.Marshal(in)
	assert.NoError(t, err)

	var out Notification
	assert.NoError(t, json.Unmarshal(payload, &out))
	assert.Equal(t, in, out)
}
