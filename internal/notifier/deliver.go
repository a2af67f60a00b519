package notifier

import (
	"context"
	"errors"
	"fmt"

	"campusvoice/backend/internal/domain"
	"campusvoice/backend/internal/storage"
	"campusvoice/backend/pkg/logger"
)

// Deliverer turns a queued notification into outbound mail. Recipients
// are resolved against the database at delivery time, not enqueue time.
type Deliverer struct {
	storage  storage.Storage
	sender   Sender
	telegram *TelegramAlerter
	origin   string
}

// NewDeliverer wires the delivery side of the dispatcher. telegram may
// be nil when no bot token is configured.
func NewDeliverer(s storage.Storage, sender Sender, telegram *TelegramAlerter, origin string) *Deliverer {
	return &Deliverer{storage: s, sender: sender, telegram: telegram, origin: origin}
}

// Deliver sends one notification. A returned error makes asynq retry;
// conditions that a retry cannot fix (no admins, deleted profile) are
// logged and reported as success.
func (d *Deliverer) Deliver(ctx context.Context, n *Notification) error {
	switch n.Kind {
	case KindNewComplaint:
		return d.deliverNewComplaint(n)
	case KindNewResponse:
		return d.deliverToStudent(n, func(name string) (string, string, error) {
			return studentResponseEmail(n, name, d.origin+"/dashboard")
		})
	case KindStatusChanged:
		return d.deliverToStudent(n, func(name string) (string, string, error) {
			return statusChangeEmail(n, name, d.origin+"/dashboard")
		})
	case KindSurveyReady:
		return d.deliverToStudent(n, func(name string) (string, string, error) {
			return surveyEmail(n, name, d.SurveyURL(n.SurveyToken))
		})
	default:
		logger.Warnf("[notifier] unknown notification kind %q, dropping", n.Kind)
		return nil
	}
}

// SurveyURL builds the tokenized public survey link.
func (d *Deliverer) SurveyURL(token string) string {
	return fmt.Sprintf("%s/survey?token=%s", d.origin, token)
}

func (d *Deliverer) deliverNewComplaint(n *Notification) error {
	emails, err := d.storage.GetAdminEmails()
	if err != nil {
		return err
	}

	if d.telegram != nil {
		d.telegram.AlertNewComplaint(n)
	}

	// Zero registered admins is a valid state, not a failure.
	if len(emails) == 0 {
		logger.Infof("[notifier] no admins registered, nothing to send for complaint %s", n.ComplaintID)
		return nil
	}

	subject, body, err := adminNewComplaintEmail(n, d.origin+"/admin")
	if err != nil {
		return err
	}
	return d.sender.Send(emails, subject, body)
}

func (d *Deliverer) deliverToStudent(n *Notification, render func(name string) (string, string, error)) error {
	profile, err := d.storage.GetProfileByID(n.StudentID)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Warnf("[notifier] student %s not found, dropping %s", n.StudentID, n.Kind)
		return nil
	}
	if err != nil {
		return err
	}

	subject, body, err := render(profile.Name)
	if err != nil {
		return err
	}
	return d.sender.Send([]string{profile.Email}, subject, body)
}
