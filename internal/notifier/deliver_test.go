package notifier_test

import (
	"context"
	"testing"

	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/mocks"
	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/notifier"

	"github.com/stretchr/testify/assert"
)

// recordingSender captures outbound mail instead of talking SMTP.
type recordingSender struct {
	to      [][]string
	subject []string
	body    []string
	err     error
}

func (r *recordingSender) Send(to []string, subject, htmlBody string) error {
	r.to = append(r.to, to)
	r.subject = append(r.subject, subject)
	r.body = append(r.body, htmlBody)
	return r.err
}

func TestDeliver_NewComplaintToAllAdmins(t *testing.T) {
	storageMock := new(mocks.Storage)
	sender := &recordingSender{}
	d := notifier.NewDeliverer(storageMock, sender, nil, "https://voice.campus.edu")

	storageMock.On("GetAdminEmails").Return([]string{"dean@campus.edu", "warden@campus.edu"}, nil)

	err := d.Deliver(context.Background(), &notifier.Notification{
		Kind:        notifier.KindNewComplaint,
		ComplaintID: "c-1",
		StudentName: "Ada",
		Title:       "Broken AC",
		Description: "It blows hot air.",
	})

	assert.NoError(t, err)
	assert.Len(t, sender.to, 1)
	assert.Equal(t, []string{"dean@campus.edu", "warden@campus.edu"}, sender.to[0])
	assert.Equal(t, "New Student Concern Received: Broken AC", sender.subject[0])
	assert.Contains(t, sender.body[0], "Ada")
	assert.Contains(t, sender.body[0], "It blows hot air.")
}

func TestDeliver_NoAdminsIsSuccess(t *testing.T) {
	storageMock := new(mocks.Storage)
	sender := &recordingSender{}
	d := notifier.NewDeliverer(storageMock, sender, nil, "https://voice.campus.edu")

	storageMock.On("GetAdminEmails").Return([]string{}, nil)

	err := d.Deliver(context.Background(), &notifier.Notification{
		Kind:        notifier.KindNewComplaint,
		ComplaintID: "c-1",
		Title:       "Broken AC",
	})

	assert.NoError(t, err, "zero admins must not trigger an asynq retry")
	assert.Empty(t, sender.to)
}

func TestDeliver_ResponseToStudent(t *testing.T) {
	storageMock := new(mocks.Storage)
	sender := &recordingSender{}
	d := notifier.NewDeliverer(storageMock, sender, nil, "https://voice.campus.edu")

	storageMock.On("GetProfileByID", "student-1").
		Return(&models.Profile{ID: "student-1", Name: "Ada", Email: "ada@campus.edu"}, nil)

	err := d.Deliver(context.Background(), &notifier.Notification{
		Kind:        notifier.KindNewResponse,
		ComplaintID: "c-1",
		StudentID:   "student-1",
		Title:       "Broken AC",
		Message:     "A technician is on the way.",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"ada@campus.edu"}, sender.to[0])
	assert.Equal(t, "New Message About Your Concern: Broken AC", sender.subject[0])
	assert.Contains(t, sender.body[0], "A technician is on the way.")
}

func TestDeliver_StatusChangeToStudent(t *testing.T) {
	storageMock := new(mocks.Storage)
	sender := &recordingSender{}
	d := notifier.NewDeliverer(storageMock, sender, nil, "https://voice.campus.edu")

	storageMock.On("GetProfileByID", "student-1").
		Return(&models.Profile{ID: "student-1", Name: "Ada", Email: "ada@campus.edu"}, nil)

	err := d.Deliver(context.Background(), &notifier.Notification{
		Kind:        notifier.KindStatusChanged,
		ComplaintID: "c-1",
		StudentID:   "student-1",
		Title:       "Broken AC",
		NewStatus:   models.StatusInProgress,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Complaint Status Updated: Broken AC", sender.subject[0])
	assert.Contains(t, sender.body[0], "In Progress")
}

func TestDeliver_SurveyInvitationCarriesTokenLink(t *testing.T) {
	storageMock := new(mocks.Storage)
	sender := &recordingSender{}
	d := notifier.NewDeliverer(storageMock, sender, nil, "https://voice.campus.edu")

	storageMock.On("GetProfileByID", "student-1").
		Return(&models.Profile{ID: "student-1", Name: "Ada", Email: "ada@campus.edu"}, nil)

	err := d.Deliver(context.Background(), &notifier.Notification{
		Kind:        notifier.KindSurveyReady,
		ComplaintID: "c-1",
		StudentID:   "student-1",
		Title:       "Broken AC",
		SurveyToken: "tok-abc123",
	})

	assert.NoError(t, err)
	assert.Contains(t, sender.body[0], "https://voice.campus.edu/survey?token=tok-abc123")
}

func TestDeliver_DeletedStudentIsDropped(t *testing.T) {
	storageMock := new(mocks.Storage)
	sender := &recordingSender{}
	d := notifier.NewDeliverer(storageMock, sender, nil, "https://voice.campus.edu")

	storageMock.On("GetProfileByID", "student-gone").Return(nil, domain.ErrNotFound)

	err := d.Deliver(context.Background(), &notifier.Notification{
		Kind:      notifier.KindStatusChanged,
		StudentID: "student-gone",
		Title:     "Broken AC",
		NewStatus: models.StatusResolved,
	})

	assert.NoError(t, err, "a deleted profile cannot be fixed by retrying")
	assert.Empty(t, sender.to)
}

func TestDeliver_UnknownKindIsDropped(t *testing.T) {
	storageMock := new(mocks.Storage)
	sender := &recordingSender{}
	d := notifier.NewDeliverer(storageMock, sender, nil, "https://voice.campus.edu")

	err := d.Deliver(context.Background(), &notifier.Notification{Kind: "telegram_dm"})

	assert.NoError(t, err)
	assert.Empty(t, sender.to)
}

func TestDeliver_EscapesUserSuppliedHTML(t *testing.T) {
	storageMock := new(mocks.Storage)
	sender := &recordingSender{}
	d := notifier.NewDeliverer(storageMock, sender, nil, "https://voice.campus.edu")

	storageMock.On("GetAdminEmails").Return([]string{"dean@campus.edu"}, nil)

	err := d.Deliver(context.Background(), &notifier.Notification{
		Kind:        notifier.KindNewComplaint,
		ComplaintID: "c-1",
		StudentName: "Ada",
		Title:       `<script>alert("x")</script>`,
		Description: "plain",
	})

	assert.NoError(t, err)
	assert.NotContains(t, sender.body[0], "<script>")
	assert.Contains(t, sender.body[0], "&lt;script&gt;")
}

func TestSurveyURL(t *testing.T) {
	d := notifier.NewDeliverer(nil, nil, nil, "https://voice.campus.edu")
	assert.Equal(t, "https://voice.campus.edu/survey?token=abc", d.SurveyURL("abc"))
}
