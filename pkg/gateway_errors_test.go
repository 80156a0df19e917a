package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestGatewayErrorKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "validation", err: NewValidationError("payer_email", "is required"), want: ErrValidation},
		{name: "network", err: &NetworkError{Err: errors.New("dial tcp: refused")}, want: ErrNetwork},
		{name: "http", err: &HTTPError{Status: 400}, want: ErrHTTP},
		{name: "partial failure", err: &PartialFailureError{PlanID: "plan-1", Cause: &HTTPError{Status: 500}}, want: ErrPartialFailure},
		{name: "wrapped signature", err: fmt.Errorf("%w: digest mismatch", ErrSignature), want: ErrSignature},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("expected %v to match %v", tc.err, tc.want)
			}
		})
	}
}

func TestPartialFailureError_UnwrapsCause(t *testing.T) {
	err := error(&PartialFailureError{PlanID: "plan-1", Cause: &HTTPError{Status: 400, Message: "invalid"}})

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != 400 {
		t.Fatalf("expected wrapped http error, got %v", err)
	}
	var partial *PartialFailureError
	if !errors.As(err, &partial) || partial.PlanID != "plan-1" {
		t.Fatalf("expected partial failure with plan id, got %v", err)
	}
}

func TestHTTPError_Retryable(t *testing.T) {
	for status, want := range map[int]bool{400: false, 401: false, 404: false, 429: true, 500: true, 503: true} {
		if got := (&HTTPError{Status: status}).Retryable(); got != want {
			t.Fatalf("status %d: expected %v, got %v", status, want, got)
		}
	}
}

func TestAppError_ToHTTPError(t *testing.T) {
	appErr := NewDomainErrorSimple("PARTIAL_FAILURE", "Subscription not created", 502).WithDetail("plan_id", "plan-1")
	body := appErr.ToHTTPError()
	if body.Code != "PARTIAL_FAILURE" || body.Details["plan_id"] != "plan-1" {
		t.Fatalf("unexpected body: %+v", body)
	}

	inner := errors.New("boom")
	wrapped := NewDomainError("INTERNAL_ERROR", "An internal error occurred", inner, 500)
	if !errors.Is(wrapped, inner) {
		t.Fatalf("expected app error to unwrap inner error")
	}
}
