package lifecycle_test

import (
	"strings"
	"testing"

	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/lifecycle"
	"campusvoice/backend/internal/mocks"
	"campusvoice/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeSurveys records resolution-triggered survey creations.
type fakeSurveys struct {
	calls []string
	err   error
}

func (f *fakeSurveys) CreateForResolution(complaintID, studentID, title string) error {
	f.calls = append(f.calls, complaintID)
	return f.err
}

func newService(s *mocks.Storage, d *mocks.Dispatcher) (*lifecycle.Service, *fakeSurveys) {
	surveys := &fakeSurveys{}
	return lifecycle.NewService(s, d, surveys), surveys
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
	}{
		{"empty title", "", "something broke"},
		{"whitespace title", "   ", "something broke"},
		{"title too long", strings.Repeat("a", 101), "something broke"},
		{"empty description", "Broken AC", ""},
		{"description too long", "Broken AC", strings.Repeat("a", 1001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storageMock := new(mocks.Storage)
			dispatcherMock := new(mocks.Dispatcher)
			svc, _ := newService(storageMock, dispatcherMock)

			_, err := svc.Create("student-1", tt.title, tt.description, "")
			assert.True(t, domain.IsValidation(err), "expected a validation error, got %v", err)
			storageMock.AssertNotCalled(t, "CreateComplaint", mock.Anything)
		})
	}
}

func TestCreate_MaxLengthAccepted(t *testing.T) {
	storageMock := new(mocks.Storage)
	dispatcherMock := new(mocks.Dispatcher)
	svc, _ := newService(storageMock, dispatcherMock)

	storageMock.On("GetProfileByID", "student-1").
		Return(&models.Profile{ID: "student-1", Name: "Ada"}, nil)
	storageMock.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)
	dispatcherMock.On("NewComplaint", mock.Anything, "student-1", "Ada", mock.Anything, mock.Anything).Return()

	title := strings.Repeat("t", 100)
	description := strings.Repeat("d", 1000)
	complaint, err := svc.Create("student-1", title, description, "")

	assert.NoError(t, err)
	assert.Equal(t, title, complaint.Title)
	assert.Equal(t, description, complaint.Description)
}

func TestCreate_SetsInitialState(t *testing.T) {
	storageMock := new(mocks.Storage)
	dispatcherMock := new(mocks.Dispatcher)
	svc, _ := newService(storageMock, dispatcherMock)

	storageMock.On("GetProfileByID", "student-1").
		Return(&models.Profile{ID: "student-1", Name: "Ada", Email: "ada@campus.edu"}, nil)
	storageMock.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)
	dispatcherMock.On("NewComplaint", mock.Anything, "student-1", "Ada", "Broken AC", "It blows hot air.").Return()

	complaint, err := svc.Create("student-1", "Broken AC", "It blows hot air.", "")

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, complaint.Status)
	assert.Equal(t, models.PriorityMedium, complaint.Priority)
	assert.Equal(t, "student-1", complaint.StudentID)
	dispatcherMock.AssertCalled(t, "NewComplaint", mock.Anything, "student-1", "Ada", "Broken AC", "It blows hot air.")
}

func TestUpdate_NonAdminRejected(t *testing.T) {
	storageMock := new(mocks.Storage)
	dispatcherMock := new(mocks.Dispatcher)
	svc, surveys := newService(storageMock, dispatcherMock)

	storageMock.On("IsAdmin", "student-1").Return(false, nil)

	status := models.StatusResolved
	_, err := svc.Update("student-1", "c-1", lifecycle.UpdateRequest{Status: &status})

	assert.True(t, domain.IsAuthorization(err), "expected an authorization error, got %v", err)
	storageMock.AssertNotCalled(t, "UpdateComplaint", mock.Anything)
	assert.Empty(t, surveys.calls)
}

func TestUpdate_InvalidEnumsRejected(t *testing.T) {
	storageMock := new(mocks.Storage)
	dispatcherMock := new(mocks.Dispatcher)
	svc, _ := newService(storageMock, dispatcherMock)

	storageMock.On("IsAdmin", "admin-1").Return(true, nil)
	storageMock.On("GetComplaintByID", "c-1").
		Return(&models.Complaint{ID: "c-1", Status: models.StatusPending, Priority: models.PriorityMedium}, nil)

	badStatus := "Closed"
	_, err := svc.Update("admin-1", "c-1", lifecycle.UpdateRequest{Status: &badStatus})
	assert.True(t, domain.IsValidation(err))

	badPriority := "Critical"
	_, err = svc.Update("admin-1", "c-1", lifecycle.UpdateRequest{Priority: &badPriority})
	assert.True(t, domain.IsValidation(err))

	storageMock.AssertNotCalled(t, "UpdateComplaint", mock.Anything)
}

func TestUpdate_NoopWhenNothingDiffers(t *testing.T) {
	storageMock := new(mocks.Storage)
	dispatcherMock := new(mocks.Dispatcher)
	svc, surveys := newService(storageMock, dispatcherMock)

	storageMock.On("IsAdmin", "admin-1").Return(true, nil)
	storageMock.On("GetComplaintByID", "c-1").
		Return(&models.Complaint{ID: "c-1", Status: models.StatusResolved, Priority: models.PriorityHigh}, nil)

	status := models.StatusResolved
	priority := models.PriorityHigh
	complaint, err := svc.Update("admin-1", "c-1", lifecycle.UpdateRequest{Status: &status, Priority: &priority})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusResolved, complaint.Status)
	storageMock.AssertNotCalled(t, "UpdateComplaint", mock.Anything)
	dispatcherMock.AssertNotCalled(t, "StatusChanged", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, surveys.calls, "a Resolved->Resolved save must not create another survey")
}

func TestUpdate_StatusChangeNotifiesStudent(t *testing.T) {
	storageMock := new(mocks.Storage)
	dispatcherMock := new(mocks.Dispatcher)
	svc, surveys := newService(storageMock, dispatcherMock)

	storageMock.On("IsAdmin", "admin-1").Return(true, nil)
	storageMock.On("GetComplaintByID", "c-1").
		Return(&models.Complaint{
			ID: "c-1", StudentID: "student-1", Title: "Broken AC",
			Status: models.StatusPending, Priority: models.PriorityMedium,
		}, nil)
	storageMock.On("UpdateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)
	storageMock.On("PublishEvent", "c-1", mock.AnythingOfType("models.Event")).Return(nil)
	dispatcherMock.On("StatusChanged", "c-1", "student-1", "Broken AC", models.StatusInProgress).Return()

	status := models.StatusInProgress
	complaint, err := svc.Update("admin-1", "c-1", lifecycle.UpdateRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, complaint.Status)
	dispatcherMock.AssertCalled(t, "StatusChanged", "c-1", "student-1", "Broken AC", models.StatusInProgress)
	assert.Empty(t, surveys.calls, "only the Resolved edge creates a survey")
}

func TestUpdate_ResolutionEdgeCreatesSurveyOnce(t *testing.T) {
	storageMock := new(mocks.Storage)
	dispatcherMock := new(mocks.Dispatcher)
	svc, surveys := newService(storageMock, dispatcherMock)

	storageMock.On("IsAdmin", "admin-1").Return(true, nil)
	storageMock.On("GetComplaintByID", "c-1").
		Return(&models.Complaint{
			ID: "c-1", StudentID: "student-1", Title: "Broken AC",
			Status: models.StatusInProgress, Priority: models.PriorityMedium,
		}, nil).Once()
	storageMock.On("UpdateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)
	storageMock.On("PublishEvent", "c-1", mock.AnythingOfType("models.Event")).Return(nil)
	dispatcherMock.On("StatusChanged", "c-1", "student-1", "Broken AC", models.StatusResolved).Return()

	status := models.StatusResolved
	_, err := svc.Update("admin-1", "c-1", lifecycle.UpdateRequest{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, []string{"c-1"}, surveys.calls)

	// Saving Resolved again must not re-trigger.
	storageMock.On("GetComplaintByID", "c-1").
		Return(&models.Complaint{
			ID: "c-1", StudentID: "student-1", Title: "Broken AC",
			Status: models.StatusResolved, Priority: models.PriorityMedium,
		}, nil)

	_, err = svc.Update("admin-1", "c-1", lifecycle.UpdateRequest{Status: &status})
	assert.NoError(t, err)
	assert.Len(t, surveys.calls, 1, "repeated saves while Resolved must not create more surveys")
}

func TestUpdate_ReopeningDoesNotCreateSurvey(t *testing.T) {
	storageMock := new(mocks.Storage)
	dispatcherMock := new(mocks.Dispatcher)
	svc, surveys := newService(storageMock, dispatcherMock)

	storageMock.On("IsAdmin", "admin-1").Return(true, nil)
	storageMock.On("GetComplaintByID", "c-1").
		Return(&models.Complaint{
			ID: "c-1", StudentID: "student-1", Title: "Broken AC",
			Status: models.StatusResolved, Priority: models.PriorityMedium,
		}, nil)
	storageMock.On("UpdateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)
	storageMock.On("PublishEvent", "c-1", mock.AnythingOfType("models.Event")).Return(nil)
	dispatcherMock.On("StatusChanged", "c-1", "student-1", "Broken AC", models.StatusInProgress).Return()

	status := models.StatusInProgress
	complaint, err := svc.Update("admin-1", "c-1", lifecycle.UpdateRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, complaint.Status, "Resolved is not terminal, reopening is allowed")
	assert.Empty(t, surveys.calls)
}

func TestGet_ScopesStudentsToOwnComplaints(t *testing.T) {
	storageMock := new(mocks.Storage)
	dispatcherMock := new(mocks.Dispatcher)
	svc, _ := newService(storageMock, dispatcherMock)

	storageMock.On("GetComplaintByID", "c-1").
		Return(&models.Complaint{ID: "c-1", StudentID: "student-1"}, nil)
	storageMock.On("IsAdmin", "student-2").Return(false, nil)

	_, err := svc.Get("student-2", "c-1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "cross-student reads must look like a missing record")

	complaint, err := svc.Get("student-1", "c-1")
	assert.NoError(t, err)
	assert.Equal(t, "c-1", complaint.ID)
}

func TestList_AdminSeesAllStudentsSeeOwn(t *testing.T) {
	storageMock := new(mocks.Storage)
	dispatcherMock := new(mocks.Dispatcher)
	svc, _ := newService(storageMock, dispatcherMock)

	all := []models.Complaint{{ID: "c-1"}, {ID: "c-2"}}
	own := []models.Complaint{{ID: "c-1", StudentID: "student-1"}}

	storageMock.On("IsAdmin", "admin-1").Return(true, nil)
	storageMock.On("IsAdmin", "student-1").Return(false, nil)
	storageMock.On("ListComplaints", "").Return(all, nil)
	storageMock.On("ListComplaintsByStudent", "student-1").Return(own, nil)

	got, err := svc.List("admin-1", "")
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List("student-1", "")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	storageMock.AssertNotCalled(t, "ListComplaintsByStudent", "admin-1")
}
