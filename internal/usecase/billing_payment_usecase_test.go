package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"billing_gateway/internal/domain/entities"
	mock_interfaces "billing_gateway/internal/usecase/interfaces/mocks"
	"billing_gateway/pkg"

	"go.uber.org/mock/gomock"
)

type billingMocks struct {
	gateway       *mock_interfaces.MockIPaymentGateway
	payments      *mock_interfaces.MockIPaymentSnapshotRepository
	subscriptions *mock_interfaces.MockISubscriptionSnapshotRepository
	publisher     *mock_interfaces.MockIEventPublisher
}

func newTestBillingPaymentUseCase(t *testing.T, ctrl *gomock.Controller) (*BillingPaymentUseCase, billingMocks) {
	t.Helper()
	m := billingMocks{
		gateway:       mock_interfaces.NewMockIPaymentGateway(ctrl),
		payments:      mock_interfaces.NewMockIPaymentSnapshotRepository(ctrl),
		subscriptions: mock_interfaces.NewMockISubscriptionSnapshotRepository(ctrl),
		publisher:     mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	receiver, err := NewWebhookReceiver(testWebhookSecret, NewStatusReconciler(m.gateway))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewBillingPaymentUseCase(receiver, m.payments, m.subscriptions, m.publisher), m
}

func signedBody(raw string) ([]byte, string) {
	body := []byte(raw)
	return body, SignWebhookPayload(body, testWebhookSecret)
}

func TestBillingPaymentUseCase_HandleWebhook_Payment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestBillingPaymentUseCase(t, ctrl)

	m.gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(okResult(approvedPaymentBody))
	m.payments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PaymentSnapshot) (entities.PaymentSnapshot, error) {
		if p.ID != "999" || p.Status != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected snapshot persisted: %+v", p)
		}
		return p, nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), entities.SnapshotEvent{
		Kind:              entities.SnapshotKindPayment,
		ResourceID:        "999",
		ExternalReference: "ord-1",
		Status:            "completed",
		RawStatus:         "approved",
	}).Return(nil)

	body, sig := signedBody(`{"topic":"payment","id":"999"}`)
	outcome, err := uc.HandleWebhook(context.Background(), body, sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.State != entities.WebhookStateProcessed || outcome.Payment == nil {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}

func TestBillingPaymentUseCase_HandleWebhook_Subscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestBillingPaymentUseCase(t, ctrl)

	m.gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(okResult(authorizedPreapprovalBody))
	m.subscriptions.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.SubscriptionSnapshot) (entities.SubscriptionSnapshot, error) {
		return s, nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	body, sig := signedBody(`{"topic":"preapproval","id":"sub-1"}`)
	outcome, err := uc.HandleWebhook(context.Background(), body, sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Subscription == nil || outcome.Subscription.Status != entities.SubscriptionStatusActive {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}

func TestBillingPaymentUseCase_HandleWebhook_Rejections(t *testing.T) {
	t.Run("bad signature touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestBillingPaymentUseCase(t, ctrl)

		_, err := uc.HandleWebhook(context.Background(), []byte(`{"topic":"payment","id":"1"}`), "deadbeef")
		if !errors.Is(err, pkg.ErrSignature) {
			t.Fatalf("expected signature error, got %v", err)
		}
	})

	t.Run("malformed touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestBillingPaymentUseCase(t, ctrl)

		body, sig := signedBody(`{}`)
		_, err := uc.HandleWebhook(context.Background(), body, sig)
		if !errors.Is(err, pkg.ErrMalformedNotification) {
			t.Fatalf("expected malformed notification, got %v", err)
		}
	})

	t.Run("unsupported topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestBillingPaymentUseCase(t, ctrl)

		body, sig := signedBody(`{"topic":"merchant_order","id":"1"}`)
		_, err := uc.HandleWebhook(context.Background(), body, sig)
		if !errors.Is(err, pkg.ErrUnsupportedTopic) {
			t.Fatalf("expected unsupported topic, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_HandleWebhook_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestBillingPaymentUseCase(t, ctrl)

	m.gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(okResult(approvedPaymentBody))
	m.payments.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.PaymentSnapshot{}, errors.New("db"))

	body, sig := signedBody(`{"topic":"payment","id":"999"}`)
	if _, err := uc.HandleWebhook(context.Background(), body, sig); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestBillingPaymentUseCase_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestBillingPaymentUseCase(t, ctrl)

	m.gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(okResult(approvedPaymentBody))
	m.payments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PaymentSnapshot) (entities.PaymentSnapshot, error) {
		return p, nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	snap, err := uc.SyncPayment(context.Background(), "999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Status != entities.PaymentStatusCompleted {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestBillingPaymentUseCase_SyncPayment_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestBillingPaymentUseCase(t, ctrl)

	m.gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(entities.GatewayResult{HTTPStatus: http.StatusNotFound, Err: &pkg.HTTPError{Status: http.StatusNotFound}})

	if _, err := uc.SyncPayment(context.Background(), "404"); !errors.Is(err, pkg.ErrHTTP) {
		t.Fatalf("expected http error, got %v", err)
	}
}

func TestBillingPaymentUseCase_SyncSubscription_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newTestBillingPaymentUseCase(t, ctrl)

	if _, err := uc.SyncSubscription(context.Background(), "  "); !errors.Is(err, pkg.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBillingPaymentUseCase_ListByExternalReference(t *testing.T) {
	t.Run("empty reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestBillingPaymentUseCase(t, ctrl)

		if _, err := uc.ListByExternalReference(context.Background(), " "); !errors.Is(err, pkg.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestBillingPaymentUseCase(t, ctrl)

		m.payments.EXPECT().ListByExternalReference(gomock.Any(), "ord-1").
			Return([]entities.PaymentSnapshot{{ID: "1"}, {ID: "2"}}, nil)

		list, err := uc.ListByExternalReference(context.Background(), " ord-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 snapshots, got %d", len(list))
		}
	})
}

func TestBillingPaymentUseCase_NilPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	payments := mock_interfaces.NewMockIPaymentSnapshotRepository(ctrl)
	receiver, _ := NewWebhookReceiver(testWebhookSecret, NewStatusReconciler(gateway))
	uc := NewBillingPaymentUseCase(receiver, payments, nil, nil)

	gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(okResult(approvedPaymentBody))
	payments.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.PaymentSnapshot{ID: "999"}, nil)

	if _, err := uc.SyncPayment(context.Background(), "999"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBillingPaymentUseCase_HandleWebhook_SerializesSameResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestBillingPaymentUseCase(t, ctrl)

	var inFlight, overlaps, fetches int32
	upserting := make(chan struct{}, 2)
	release := make(chan struct{})

	m.gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ entities.GatewayCall) entities.GatewayResult {
		atomic.AddInt32(&fetches, 1)
		if atomic.AddInt32(&inFlight, 1) > 1 {
			atomic.AddInt32(&overlaps, 1)
		}
		return okResult(approvedPaymentBody)
	}).Times(2)
	m.payments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PaymentSnapshot) (entities.PaymentSnapshot, error) {
		upserting <- struct{}{}
		<-release
		atomic.AddInt32(&inFlight, -1)
		return p, nil
	}).Times(2)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	body, sig := signedBody(`{"topic":"payment","id":"999"}`)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := uc.HandleWebhook(context.Background(), body, sig)
			errs <- err
		}()
	}

	// Hold the first upsert open long enough for the second delivery to try.
	<-upserting
	time.Sleep(50 * time.Millisecond)
	fetchesWhileBlocked := atomic.LoadInt32(&fetches)
	close(release)

	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if fetchesWhileBlocked != 1 {
		t.Fatalf("second delivery fetched while the first was persisting: %d fetches", fetchesWhileBlocked)
	}
	if n := atomic.LoadInt32(&overlaps); n != 0 {
		t.Fatalf("fetch and upsert overlapped %d times", n)
	}
}

func TestBillingPaymentUseCase_RecordPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestBillingPaymentUseCase(t, ctrl)

	created := entities.PaymentSnapshot{ID: "123", Status: entities.PaymentStatusPending, RawStatus: "pending", ExternalReference: "ord-1"}
	m.payments.EXPECT().Upsert(gomock.Any(), created).Return(created, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), entities.SnapshotEvent{
		Kind:              entities.SnapshotKindPayment,
		ResourceID:        "123",
		ExternalReference: "ord-1",
		Status:            "pending",
		RawStatus:         "pending",
	}).Return(nil)

	saved, err := uc.RecordPayment(context.Background(), created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != "123" {
		t.Fatalf("unexpected snapshot: %+v", saved)
	}

	if _, err := uc.RecordPayment(context.Background(), entities.PaymentSnapshot{}); !errors.Is(err, pkg.ErrValidation) {
		t.Fatalf("expected validation error for a snapshot without id, got %v", err)
	}
}

func TestBillingPaymentUseCase_RecordSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestBillingPaymentUseCase(t, ctrl)

	created := entities.SubscriptionSnapshot{ID: "sub-1", Status: entities.SubscriptionStatusActive, RawStatus: "authorized", PlanID: "plan-1"}
	m.subscriptions.EXPECT().Upsert(gomock.Any(), created).Return(created, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.SnapshotEvent) error {
		if e.Kind != entities.SnapshotKindSubscription || e.ResourceID != "sub-1" || e.Status != "active" {
			t.Fatalf("unexpected event %+v", e)
		}
		return nil
	})

	if _, err := uc.RecordSubscription(context.Background(), created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBillingPaymentUseCase_RecordPayment_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestBillingPaymentUseCase(t, ctrl)

	m.payments.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.PaymentSnapshot{}, errors.New("db"))
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	if _, err := uc.RecordPayment(context.Background(), entities.PaymentSnapshot{ID: "123"}); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestBillingPaymentUseCase_TransitionSubscription(t *testing.T) {
	t.Run("stores the provider result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestBillingPaymentUseCase(t, ctrl)

		var locked bool
		op := func(_ context.Context, id string) (entities.SubscriptionSnapshot, error) {
			// A second lock attempt on the same key must wait while op runs.
			acquired := make(chan struct{})
			go func() {
				unlock := uc.locks.Lock("subscription:" + id)
				close(acquired)
				unlock()
			}()
			select {
			case <-acquired:
			case <-time.After(20 * time.Millisecond):
				locked = true
			}
			return entities.SubscriptionSnapshot{ID: id, Status: entities.SubscriptionStatusCancelled, RawStatus: "cancelled"}, nil
		}
		m.subscriptions.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.SubscriptionSnapshot) (entities.SubscriptionSnapshot, error) {
			if s.ID != "sub-1" || s.Status != entities.SubscriptionStatusCancelled {
				t.Fatalf("unexpected snapshot persisted: %+v", s)
			}
			return s, nil
		})
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		snap, err := uc.TransitionSubscription(context.Background(), " sub-1 ", op)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Status != entities.SubscriptionStatusCancelled {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		if !locked {
			t.Fatalf("transition must run under the subscription lock")
		}
	})

	t.Run("provider failure stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestBillingPaymentUseCase(t, ctrl)

		rejected := &pkg.HTTPError{Status: http.StatusBadRequest}
		m.subscriptions.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.TransitionSubscription(context.Background(), "sub-1", func(context.Context, string) (entities.SubscriptionSnapshot, error) {
			return entities.SubscriptionSnapshot{}, rejected
		})
		if err != rejected {
			t.Fatalf("expected provider error unchanged, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestBillingPaymentUseCase(t, ctrl)

		_, err := uc.TransitionSubscription(context.Background(), " ", func(context.Context, string) (entities.SubscriptionSnapshot, error) {
			t.Fatalf("op must not run without an id")
			return entities.SubscriptionSnapshot{}, nil
		})
		if !errors.Is(err, pkg.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_StoredSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestBillingPaymentUseCase(t, ctrl)

	m.payments.EXPECT().GetByID(gomock.Any(), "999").Return(entities.PaymentSnapshot{ID: "999", Status: entities.PaymentStatusCompleted}, nil)
	m.payments.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.PaymentSnapshot{}, nil)
	m.subscriptions.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.SubscriptionSnapshot{}, errors.New("db"))
	m.gateway.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

	got, err := uc.StoredPayment(context.Background(), " 999 ")
	if err != nil || got.Status != entities.PaymentStatusCompleted {
		t.Fatalf("unexpected stored payment %+v err=%v", got, err)
	}
	if _, err := uc.StoredPayment(context.Background(), "nope"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.StoredSubscription(context.Background(), "sub-1"); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
	if _, err := uc.StoredSubscription(context.Background(), ""); !errors.Is(err, pkg.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
