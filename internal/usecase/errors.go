package usecase

import (
	"errors"
	"fmt"

	"portal_servicos/internal/domain/entities"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrPermission          = errors.New("permission denied")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrPaymentConfig       = errors.New("payment configuration error")
	ErrPaymentGateway      = errors.New("payment gateway error")
	ErrNotFound            = errors.New("not found")
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	ErrRequestDeleted         = errors.New("service request is in the trash and read-only")
	ErrRequestNotDeleted      = errors.New("service request is not in the trash")
	ErrChargeExpired          = errors.New("pix charge expired before settlement")
	ErrServiceRequestNotFound = fmt.Errorf("service request %w", ErrNotFound)
	ErrRequestTypeNotFound    = fmt.Errorf("request type %w", ErrNotFound)
	ErrAttachmentNotFound     = fmt.Errorf("attachment %w", ErrNotFound)
	ErrChargeNotFound         = fmt.Errorf("pix charge %w", ErrNotFound)
)

// TransitionError reports a workflow move the transition table rejects.
type TransitionError struct {
	From entities.RequestStatus
	To   entities.RequestStatus
	Role entities.Role
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s is not allowed for role %s", e.From, e.To, e.Role)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// GatewayError reports which step of the charge pipeline failed. It matches
// both ErrPaymentGateway and the underlying cause.
type GatewayError struct {
	Step entities.ChargeStep
	Err  error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error at step %s: %v", e.Step, e.Err)
}

func (e *GatewayError) Unwrap() []error { return []error{ErrPaymentGateway, e.Err} }

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func permissionError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPermission}, args...)...)
}

func paymentConfigError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPaymentConfig}, args...)...)
}
