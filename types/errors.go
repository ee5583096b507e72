package types

import "fmt"

// ValidationError indicates malformed or missing input. User-correctable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError indicates a referenced worker or booking does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a not-found error
func NewNotFoundError(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// PolicyError indicates a business rule violation, e.g. booking an
// unverified worker or rating a booking twice.
type PolicyError struct {
	Message string
}

func (e *PolicyError) Error() string {
	return e.Message
}

// NewPolicyError creates a policy error
func NewPolicyError(format string, args ...interface{}) *PolicyError {
	return &PolicyError{Message: fmt.Sprintf(format, args...)}
}

// InfrastructureError indicates the storage layer failed. Not locally
// recoverable; surfaces as a 500.
type InfrastructureError struct {
	Message string
	Err     error
}

func (e *InfrastructureError) Error() string {
	return e.Message
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError wraps a storage error
func NewInfrastructureError(message string, err error) *InfrastructureError {
	return &InfrastructureError{Message: message, Err: err}
}

// InvalidTransitionError indicates an illegal booking status move. The
// booking record is left unchanged when this is returned.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from '%s' to '%s'", e.From, e.To)
}

// NewInvalidTransitionError creates an invalid-transition error
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}
