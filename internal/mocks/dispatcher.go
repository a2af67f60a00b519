package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Dispatcher is a mock implementation of notifier.Dispatcher. Tests
// assert which notifications fired without touching a queue or mailer.
type Dispatcher struct {
	mock.Mock
}

func (m *Dispatcher) NewComplaint(complaintID, studentID, studentName, title, description string) {
	m.Called(complaintID, studentID, studentName, title, description)
}

func (m *Dispatcher) NewResponse(complaintID, studentID, title, message string) {
	m.Called(complaintID, studentID, title, message)
}

func (m *Dispatcher) StatusChanged(complaintID, studentID, title, newStatus string) {
	m.Called(complaintID, studentID, title, newStatus)
}

func (m *Dispatcher) SurveyReady(complaintID, studentID, title, surveyToken string) {
	m.Called(complaintID, studentID, title, surveyToken)
}
