package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error kinds crossing the payment-gateway boundary. Every typed error below
// matches its kind through errors.Is.
var (
	ErrValidation            = errors.New("validation error")
	ErrNetwork               = errors.New("network error")
	ErrHTTP                  = errors.New("http error")
	ErrSignature             = errors.New("signature error")
	ErrMalformedNotification = errors.New("malformed notification")
	ErrUnsupportedTopic      = errors.New("unsupported topic")
	ErrPartialFailure        = errors.New("partial failure")
)

// ValidationError reports bad caller input. It is always raised before any
// network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NetworkError is a transport failure: DNS, connect, TLS, timeout or a broken body.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx provider response.
type HTTPError struct {
	Status  int
	Body    json.RawMessage
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http error: status=%d message=%s", e.Status, e.Message)
	}
	return fmt.Sprintf("http error: status=%d", e.Status)
}

func (e *HTTPError) Is(target error) bool { return target == ErrHTTP }

// Retryable reports whether the provider may accept the same request later.
func (e *HTTPError) Retryable() bool {
	return e.Status == 429 || (e.Status >= 500 && e.Status < 600)
}

// PartialFailureError is returned when a plan was created but the subscription
// referencing it was not. The plan stays on the provider side.
type PartialFailureError struct {
	PlanID string
	Cause  error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial failure: plan %s created but subscription failed: %v", e.PlanID, e.Cause)
}

func (e *PartialFailureError) Is(target error) bool { return target == ErrPartialFailure }

func (e *PartialFailureError) Unwrap() error { return e.Cause }
