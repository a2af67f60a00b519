package notifier

import (
	"campusvoice/backend/pkg/logger"
)

// Service is the queue-backed Dispatcher handed to the domain services.
// Enqueue failures are logged and swallowed: the triggering operation
// has already committed and must report success regardless.
type Service struct {
	queue Queue
}

func NewService(queue Queue) *Service {
	return &Service{queue: queue}
}

func (s *Service) NewComplaint(complaintID, studentID, studentName, title, description string) {
	s.enqueue(&Notification{
		Kind:        KindNewComplaint,
		ComplaintID: complaintID,
		StudentID:   studentID,
		StudentName: studentName,
		Title:       title,
		Description: description,
	})
}

func (s *Service) NewResponse(complaintID, studentID, title, message string) {
	s.enqueue(&Notification{
		Kind:        KindNewResponse,
		ComplaintID: complaintID,
		StudentID:   studentID,
		Title:       title,
		Message:     message,
	})
}

func (s *Service) StatusChanged(complaintID, studentID, title, newStatus string) {
	s.enqueue(&Notification{
		Kind:        KindStatusChanged,
		ComplaintID: complaintID,
		StudentID:   studentID,
		Title:       title,
		NewStatus:   newStatus,
	})
}

func (s *Service) SurveyReady(complaintID, studentID, title, surveyToken string) {
	s.enqueue(&Notification{
		Kind:        KindSurveyReady,
		ComplaintID: complaintID,
		StudentID:   studentID,
		Title:       title,
		SurveyToken: surveyToken,
	})
}

func (s *Service) enqueue(n *Notification) {
	if err := s.queue.Enqueue(n); err != nil {
		logger.Errorf("[notifier] failed to enqueue %s for complaint %s: %v", n.Kind, n.ComplaintID, err)
	}
}
