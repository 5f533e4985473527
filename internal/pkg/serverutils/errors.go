package serverutils

import "fmt"

// ValidationError marks user-correctable input problems (blank answer,
// missing profile fields, unknown domain). Handled as a non-fatal 400; no
// state transition happens when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError marks lookups of resources that do not exist (session id,
// domain id, report id).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

// ExternalServiceError wraps failures of the generation/embedding services or
// the vector store. These are fatal for the current action and are not
// retried here; the user retries the action.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s service failure: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

func NewExternalServiceError(service string, err error) error {
	return &ExternalServiceError{Service: service, Err: err}
}
