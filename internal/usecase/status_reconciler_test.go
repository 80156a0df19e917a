package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"billing_gateway/internal/domain/entities"
	mock_interfaces "billing_gateway/internal/usecase/interfaces/mocks"
	"billing_gateway/pkg"

	"go.uber.org/mock/gomock"
)

const approvedPaymentBody = `{
	"id": 999,
	"status": "approved",
	"status_detail": "accredited",
	"transaction_amount": 50,
	"external_reference": "ord-1",
	"payment_method_id": "pix",
	"date_created": "2024-03-10T12:00:00.000-03:00",
	"date_approved": "2024-03-10T12:01:00.000-03:00",
	"payer": {"email": "a@b.com"}
}`

const authorizedPreapprovalBody = `{
	"id": "sub-1",
	"status": "authorized",
	"preapproval_plan_id": "plan-1",
	"external_reference": "acc-1",
	"payer_email": "a@b.com",
	"next_payment_date": "2024-04-10T12:00:00.000-03:00",
	"auto_recurring": {
		"start_date": "2024-03-10T12:00:00.000-03:00",
		"end_date": "2025-03-10T12:00:00.000-03:00"
	}
}`

func okResult(body string) entities.GatewayResult {
	return entities.GatewayResult{Success: true, HTTPStatus: http.StatusOK, Data: json.RawMessage(body)}
}

func TestMapPaymentStatus(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"approved":     entities.PaymentStatusCompleted,
		"pending":      entities.PaymentStatusPending,
		"in_process":   entities.PaymentStatusPending,
		"in_mediation": entities.PaymentStatusPending,
		"rejected":     entities.PaymentStatusFailed,
		"cancelled":    entities.PaymentStatusCancelled,
		"refunded":     entities.PaymentStatusRefunded,
		"charged_back": entities.PaymentStatusRefunded,
		"":             entities.PaymentStatusPending,
		"APPROVED":     entities.PaymentStatusPending,
		"authorized":   entities.PaymentStatusPending,
		"something":    entities.PaymentStatusPending,
	}
	for raw, want := range cases {
		if got := MapPaymentStatus(raw); got != want {
			t.Fatalf("status %q: expected %s, got %s", raw, want, got)
		}
	}
}

func TestMapSubscriptionStatus(t *testing.T) {
	cases := map[string]entities.SubscriptionStatus{
		"authorized": entities.SubscriptionStatusActive,
		"paused":     entities.SubscriptionStatusPaused,
		"cancelled":  entities.SubscriptionStatusCancelled,
		"finished":   entities.SubscriptionStatusExpired,
		"pending":    entities.SubscriptionStatusPending,
		"":           entities.SubscriptionStatusPending,
		"approved":   entities.SubscriptionStatusPending,
	}
	for raw, want := range cases {
		if got := MapSubscriptionStatus(raw); got != want {
			t.Fatalf("status %q: expected %s, got %s", raw, want, got)
		}
	}
}

func TestStatusReconciler_ReconcilePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	r := NewStatusReconciler(gateway)

	gateway.EXPECT().
		Execute(gomock.Any(), entities.GatewayCall{Method: http.MethodGet, Path: "/v1/payments/999"}).
		Return(okResult(approvedPaymentBody))

	snap, err := r.ReconcilePayment(context.Background(), "999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.ID != "999" || snap.Status != entities.PaymentStatusCompleted || snap.RawStatus != "approved" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Amount != 50 || snap.ExternalReference != "ord-1" || snap.PayerEmail != "a@b.com" || snap.Method != "pix" {
		t.Fatalf("unexpected snapshot fields: %+v", snap)
	}
	if snap.ApprovedAt == nil {
		t.Fatalf("expected approved_at")
	}
}

func TestStatusReconciler_ReconcilePayment_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	r := NewStatusReconciler(gateway)

	gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(okResult(approvedPaymentBody)).Times(2)

	first, err := r.ReconcilePayment(context.Background(), "999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.ReconcilePayment(context.Background(), "999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) || !bytes.Equal(first.Raw, second.Raw) {
		t.Fatalf("expected identical snapshots:\n%s\n%s", a, b)
	}
}

func TestStatusReconciler_PropagatesFailures(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		r := NewStatusReconciler(gateway)

		httpErr := &pkg.HTTPError{Status: http.StatusNotFound, Message: "not found"}
		gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).
			Return(entities.GatewayResult{HTTPStatus: http.StatusNotFound, Err: httpErr})

		_, err := r.ReconcilePayment(context.Background(), "1")
		if err != httpErr {
			t.Fatalf("expected provider error unchanged, got %v", err)
		}
	})

	t.Run("network error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		r := NewStatusReconciler(gateway)

		gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).
			Return(entities.GatewayResult{Err: &pkg.NetworkError{Err: errors.New("dial")}})

		_, err := r.ReconcileSubscription(context.Background(), "sub-1")
		if !errors.Is(err, pkg.ErrNetwork) {
			t.Fatalf("expected network error, got %v", err)
		}
	})

	t.Run("empty id never calls the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		r := NewStatusReconciler(gateway)

		if _, err := r.ReconcilePayment(context.Background(), " "); !errors.Is(err, pkg.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestStatusReconciler_ReconcileSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	r := NewStatusReconciler(gateway)

	gateway.EXPECT().
		Execute(gomock.Any(), entities.GatewayCall{Method: http.MethodGet, Path: "/preapproval/sub-1"}).
		Return(okResult(authorizedPreapprovalBody))

	snap, err := r.ReconcileSubscription(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Status != entities.SubscriptionStatusActive || snap.PlanID != "plan-1" || snap.ExternalReference != "acc-1" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.StartAt.IsZero() || snap.EndAt == nil || snap.NextPaymentAt == nil {
		t.Fatalf("expected dates to be parsed: %+v", snap)
	}
	if snap.EndAt.Year() != 2025 {
		t.Fatalf("unexpected end date %s", snap.EndAt)
	}
}

func TestSubscriptionSnapshotFromResult_StartFallsBackToCreation(t *testing.T) {
	snap, err := SubscriptionSnapshotFromResult(okResult(`{
		"id": "sub-2",
		"status": "pending",
		"date_created": "2024-03-10T12:00:00.000-03:00",
		"auto_recurring": {"frequency": 1, "frequency_type": "months"}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.StartAt.IsZero() || snap.StartAt.Day() != 10 {
		t.Fatalf("expected start to fall back to date_created, got %s", snap.StartAt)
	}
	if snap.EndAt != nil || snap.NextPaymentAt != nil {
		t.Fatalf("absent dates must stay nil: %+v", snap)
	}
	if snap.Status != entities.SubscriptionStatusPending {
		t.Fatalf("unexpected status %s", snap.Status)
	}
}
