// Package notifier implements the notification workflow: lifecycle
// events are enqueued as tasks after the primary write commits, and a
// worker drains the queue, resolves recipients and delivers email (plus
// an optional Telegram ping for admins). Delivery is best-effort by
// contract: no enqueue or send failure ever propagates back to the
// operation that triggered it.
package notifier

// TaskTypeNotification is the asynq task type for queued deliveries.
const TaskTypeNotification = "notification:deliver"

// Notification kinds, one per lifecycle trigger.
const (
	KindNewComplaint  = "new_complaint"
	KindNewResponse   = "new_response"
	KindStatusChanged = "status_changed"
	KindSurveyReady   = "survey_ready"
)

// Notification is the queued payload. Only the fields relevant to the
// Kind are set; recipient addresses are resolved at delivery time so a
// freshly granted admin still gets mail for tasks already in flight.
type Notification struct {
	Kind        string `json:"kind"`
	ComplaintID string `json:"complaint_id"`
	StudentID   string `json:"student_id,omitempty"`
	StudentName string `json:"student_name,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Message     string `json:"message,omitempty"`
	NewStatus   string `json:"new_status,omitempty"`
	SurveyToken string `json:"survey_token,omitempty"`
}

// Dispatcher is the trigger surface the lifecycle, thread and survey
// services call into. All methods are fire-and-forget.
type Dispatcher interface {
	NewComplaint(complaintID, studentID, studentName, title, description string)
	NewResponse(complaintID, studentID, title, message string)
	StatusChanged(complaintID, studentID, title, newStatus string)
	SurveyReady(complaintID, studentID, title, surveyToken string)
}
