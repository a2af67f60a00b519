// Package domain defines the error taxonomy shared by the lifecycle,
// thread and survey services. Handlers map these onto HTTP statuses so
// that no raw storage or mailer error ever reaches a client.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals an unknown complaint id, survey token or profile.
	ErrNotFound = errors.New("not found")

	// ErrAlreadySubmitted signals a second submit on a completed survey.
	ErrAlreadySubmitted = errors.New("survey already completed")
)

// ValidationError reports rejected input: empty or over-length fields,
// unknown enum values, out-of-range ratings.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AuthorizationError reports an actor attempting an operation their role
// does not allow, e.g. a student changing a complaint status.
type AuthorizationError struct {
	ActorID string
	Action  string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("actor %s is not allowed to %s", e.ActorID, e.Action)
}

// NotAllowed builds an AuthorizationError.
func NotAllowed(actorID, action string) error {
	return &AuthorizationError{ActorID: actorID, Action: action}
}

// IsAuthorization reports whether err is an AuthorizationError.
func IsAuthorization(err error) bool {
	var ae *AuthorizationError
	return errors.As(err, &ae)
}

// DependencyError wraps a failure of a collaborator (database, mailer)
// on a primary write. Secondary notification failures are logged and
// never wrapped into one of these.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: dependency failure: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// Dependency wraps err as a DependencyError, or returns nil.
func Dependency(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DependencyError{Op: op, Err: err}
}
