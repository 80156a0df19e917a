package handlers

import (
	"billing_gateway/pkg"
	"errors"
	"net/http"
	"strconv"
)

// IdempotencyKeyHeader lets a client retry a create call without duplicating
// it on the provider side.
const IdempotencyKeyHeader = "X-Idempotency-Key"

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapGatewayError translates a use-case error for a direct (caller-initiated)
// request.
func mapGatewayError(err error) *pkg.AppError {
	var (
		validationErr *pkg.ValidationError
		partialErr    *pkg.PartialFailureError
		httpErr       *pkg.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).
			WithDetail("field", validationErr.Field)
	case errors.Is(err, pkg.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.As(err, &partialErr):
		return pkg.NewDomainError("PARTIAL_FAILURE", "Plan created but subscription was not", err, http.StatusBadGateway).
			WithDetail("plan_id", partialErr.PlanID)
	case errors.Is(err, pkg.ErrNetwork):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusServiceUnavailable)
	case errors.As(err, &httpErr):
		switch {
		case httpErr.Retryable():
			return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusServiceUnavailable).
				WithDetail("provider_status", strconv.Itoa(httpErr.Status))
		case httpErr.Status == http.StatusNotFound:
			return pkg.NewDomainError("RESOURCE_NOT_FOUND", "Resource not found at payment provider", err, http.StatusNotFound)
		default:
			return pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the request", err, http.StatusBadGateway).
				WithDetail("provider_status", strconv.Itoa(httpErr.Status))
		}
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapWebhookError decides how a failed delivery is answered. A nil AppError
// means the delivery is acknowledged with 200 so the provider stops resending
// it; 5xx answers ask for redelivery.
func mapWebhookError(err error) *pkg.AppError {
	var httpErr *pkg.HTTPError

	switch {
	case errors.Is(err, pkg.ErrSignature):
		return pkg.NewDomainError("INVALID_SIGNATURE", "Invalid webhook signature", err, http.StatusUnauthorized)
	case errors.Is(err, pkg.ErrMalformedNotification), errors.Is(err, pkg.ErrValidation):
		return pkg.NewDomainError("MALFORMED_NOTIFICATION", "Malformed notification", err, http.StatusBadRequest)
	case errors.Is(err, pkg.ErrUnsupportedTopic):
		return nil
	case errors.Is(err, pkg.ErrNetwork):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusServiceUnavailable)
	case errors.As(err, &httpErr):
		if httpErr.Retryable() {
			return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusServiceUnavailable)
		}
		return nil
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
