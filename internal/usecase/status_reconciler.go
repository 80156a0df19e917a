package usecase

import (
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/usecase/interfaces"
	"billing_gateway/pkg"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/sirupsen/logrus"
)

const (
	PathPayments    = "/v1/payments"
	PathPreapproval = "/preapproval"
	PathPlans       = "/preapproval_plan"
	PathPreferences = "/checkout/preferences"
)

var paymentStatuses = map[string]entities.PaymentStatus{
	"approved":     entities.PaymentStatusCompleted,
	"pending":      entities.PaymentStatusPending,
	"in_process":   entities.PaymentStatusPending,
	"in_mediation": entities.PaymentStatusPending,
	"rejected":     entities.PaymentStatusFailed,
	"cancelled":    entities.PaymentStatusCancelled,
	"refunded":     entities.PaymentStatusRefunded,
	"charged_back": entities.PaymentStatusRefunded,
}

var subscriptionStatuses = map[string]entities.SubscriptionStatus{
	"authorized": entities.SubscriptionStatusActive,
	"paused":     entities.SubscriptionStatusPaused,
	"cancelled":  entities.SubscriptionStatusCancelled,
	"finished":   entities.SubscriptionStatusExpired,
}

// MapPaymentStatus is total: unknown provider statuses map to pending.
func MapPaymentStatus(raw string) entities.PaymentStatus {
	if s, ok := paymentStatuses[raw]; ok {
		return s
	}
	return entities.PaymentStatusPending
}

// MapSubscriptionStatus is total: unknown provider statuses map to pending.
func MapSubscriptionStatus(raw string) entities.SubscriptionStatus {
	if s, ok := subscriptionStatuses[raw]; ok {
		return s
	}
	return entities.SubscriptionStatusPending
}

type IStatusReconciler interface {
	ReconcilePayment(ctx context.Context, id string) (entities.PaymentSnapshot, error)
	ReconcileSubscription(ctx context.Context, id string) (entities.SubscriptionSnapshot, error)
}

// StatusReconciler re-fetches provider resources and maps them onto the
// internal taxonomy. It never applies deltas, so reconciling the same
// resource any number of times is safe.
type StatusReconciler struct {
	gateway interfaces.IPaymentGateway
	logger  logrus.FieldLogger
}

var _ IStatusReconciler = (*StatusReconciler)(nil)

func NewStatusReconciler(gateway interfaces.IPaymentGateway) *StatusReconciler {
	return &StatusReconciler{gateway: gateway, logger: logging.NewModuleLogger("status-reconciler")}
}

func (r *StatusReconciler) ReconcilePayment(ctx context.Context, id string) (entities.PaymentSnapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentSnapshot{}, pkg.NewValidationError("id", "is required")
	}

	result := r.gateway.Execute(ctx, entities.GatewayCall{
		Method: http.MethodGet,
		Path:   PathPayments + "/" + url.PathEscape(id),
	})
	if !result.Success {
		r.logger.WithField("payment_id", id).WithError(result.Err).Warn("payment fetch failed")
		return entities.PaymentSnapshot{}, result.Err
	}

	snapshot, err := PaymentSnapshotFromResult(result)
	if err != nil {
		return entities.PaymentSnapshot{}, err
	}
	r.logger.WithFields(logrus.Fields{
		"payment_id": snapshot.ID,
		"raw_status": snapshot.RawStatus,
		"status":     snapshot.Status,
	}).Debug("payment reconciled")
	return snapshot, nil
}

func (r *StatusReconciler) ReconcileSubscription(ctx context.Context, id string) (entities.SubscriptionSnapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SubscriptionSnapshot{}, pkg.NewValidationError("id", "is required")
	}

	result := r.gateway.Execute(ctx, entities.GatewayCall{
		Method: http.MethodGet,
		Path:   PathPreapproval + "/" + url.PathEscape(id),
	})
	if !result.Success {
		r.logger.WithField("subscription_id", id).WithError(result.Err).Warn("subscription fetch failed")
		return entities.SubscriptionSnapshot{}, result.Err
	}

	snapshot, err := SubscriptionSnapshotFromResult(result)
	if err != nil {
		return entities.SubscriptionSnapshot{}, err
	}
	r.logger.WithFields(logrus.Fields{
		"subscription_id": snapshot.ID,
		"raw_status":      snapshot.RawStatus,
		"status":          snapshot.Status,
	}).Debug("subscription reconciled")
	return snapshot, nil
}

// PaymentSnapshotFromResult decodes a provider payment body.
func PaymentSnapshotFromResult(result entities.GatewayResult) (entities.PaymentSnapshot, error) {
	var resp payment.Response
	if err := result.Decode(&resp); err != nil {
		return entities.PaymentSnapshot{}, &pkg.HTTPError{
			Status:  result.HTTPStatus,
			Body:    result.Data,
			Message: "undecodable payment body: " + err.Error(),
		}
	}

	snapshot := entities.PaymentSnapshot{
		ID:                fmt.Sprintf("%d", resp.ID),
		Status:            MapPaymentStatus(resp.Status),
		RawStatus:         resp.Status,
		StatusDetail:      resp.StatusDetail,
		Amount:            resp.TransactionAmount,
		ExternalReference: resp.ExternalReference,
		PayerEmail:        resp.Payer.Email,
		Method:            resp.PaymentMethodID,
		CreatedAt:         resp.DateCreated,
		Raw:               result.Data,
	}
	snapshot.ApprovedAt = optionalTime(resp.DateApproved)
	return snapshot, nil
}

// SubscriptionSnapshotFromResult decodes a provider preapproval body.
func SubscriptionSnapshotFromResult(result entities.GatewayResult) (entities.SubscriptionSnapshot, error) {
	snapshot, _, err := decodePreapproval(result)
	return snapshot, err
}

func decodePreapproval(result entities.GatewayResult) (entities.SubscriptionSnapshot, string, error) {
	var resp preapproval.Response
	if err := result.Decode(&resp); err != nil {
		return entities.SubscriptionSnapshot{}, "", &pkg.HTTPError{
			Status:  result.HTTPStatus,
			Body:    result.Data,
			Message: "undecodable preapproval body: " + err.Error(),
		}
	}

	start := resp.AutoRecurring.StartDate
	if start.IsZero() {
		start = resp.DateCreated
	}

	snapshot := entities.SubscriptionSnapshot{
		ID:                resp.ID,
		Status:            MapSubscriptionStatus(resp.Status),
		RawStatus:         resp.Status,
		PlanID:            resp.PreapprovalPlanID,
		ExternalReference: resp.ExternalReference,
		PayerEmail:        resp.PayerEmail,
		StartAt:           start,
		EndAt:             optionalTime(resp.AutoRecurring.EndDate),
		NextPaymentAt:     optionalTime(resp.NextPaymentDate),
		Raw:               result.Data,
	}
	return snapshot, resp.InitPoint, nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
