package usecase

import (
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/usecase/interfaces"
	"billing_gateway/pkg"
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrSnapshotNotFound is returned when no snapshot was ever stored for an id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SubscriptionTransition is a provider-side status change such as
// ISubscriptionUseCase.Cancel.
type SubscriptionTransition func(ctx context.Context, id string) (entities.SubscriptionSnapshot, error)

// IBillingPaymentUseCase is the caller side of the gateway core: it runs the
// webhook receiver, persists every snapshot the provider hands back and
// announces it.
//
// Fetch-map-persist for one resource always runs under a per-resource lock so
// two deliveries for the same payment cannot interleave their writes. Snapshots
// returned by create and transition calls go through the same lock.
type IBillingPaymentUseCase interface {
	HandleWebhook(ctx context.Context, body []byte, signature string) (entities.WebhookOutcome, error)
	SyncPayment(ctx context.Context, id string) (entities.PaymentSnapshot, error)
	SyncSubscription(ctx context.Context, id string) (entities.SubscriptionSnapshot, error)
	RecordPayment(ctx context.Context, snapshot entities.PaymentSnapshot) (entities.PaymentSnapshot, error)
	RecordSubscription(ctx context.Context, snapshot entities.SubscriptionSnapshot) (entities.SubscriptionSnapshot, error)
	TransitionSubscription(ctx context.Context, id string, op SubscriptionTransition) (entities.SubscriptionSnapshot, error)
	StoredPayment(ctx context.Context, id string) (entities.PaymentSnapshot, error)
	StoredSubscription(ctx context.Context, id string) (entities.SubscriptionSnapshot, error)
	ListByExternalReference(ctx context.Context, externalReference string) ([]entities.PaymentSnapshot, error)
}

type BillingPaymentUseCase struct {
	receiver      IWebhookReceiver
	payments      interfaces.IPaymentSnapshotRepository
	subscriptions interfaces.ISubscriptionSnapshotRepository
	publisher     interfaces.IEventPublisher
	locks         *KeyedMutex
	logger        logrus.FieldLogger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

// NewBillingPaymentUseCase wires the caller layer. publisher may be nil when
// event publication is disabled.
func NewBillingPaymentUseCase(
	receiver IWebhookReceiver,
	payments interfaces.IPaymentSnapshotRepository,
	subscriptions interfaces.ISubscriptionSnapshotRepository,
	publisher interfaces.IEventPublisher,
) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		receiver:      receiver,
		payments:      payments,
		subscriptions: subscriptions,
		publisher:     publisher,
		locks:         NewKeyedMutex(),
		logger:        logging.NewModuleLogger("billing-payment-usecase"),
	}
}

func (u *BillingPaymentUseCase) HandleWebhook(ctx context.Context, body []byte, signature string) (entities.WebhookOutcome, error) {
	n, err := u.receiver.Authenticate(body, signature)
	if err != nil {
		return entities.WebhookOutcome{State: entities.WebhookStateRejected}, err
	}
	return u.reconcile(ctx, n)
}

func (u *BillingPaymentUseCase) SyncPayment(ctx context.Context, id string) (entities.PaymentSnapshot, error) {
	outcome, err := u.reconcile(ctx, entities.WebhookNotification{
		Topic:      entities.TopicPayment,
		RawTopic:   string(entities.TopicPayment),
		ResourceID: strings.TrimSpace(id),
	})
	if err != nil {
		return entities.PaymentSnapshot{}, err
	}
	return *outcome.Payment, nil
}

func (u *BillingPaymentUseCase) SyncSubscription(ctx context.Context, id string) (entities.SubscriptionSnapshot, error) {
	outcome, err := u.reconcile(ctx, entities.WebhookNotification{
		Topic:      entities.TopicSubscription,
		RawTopic:   string(entities.TopicSubscription),
		ResourceID: strings.TrimSpace(id),
	})
	if err != nil {
		return entities.SubscriptionSnapshot{}, err
	}
	return *outcome.Subscription, nil
}

// RecordPayment stores a snapshot returned by a create call and announces it.
func (u *BillingPaymentUseCase) RecordPayment(ctx context.Context, snapshot entities.PaymentSnapshot) (entities.PaymentSnapshot, error) {
	if strings.TrimSpace(snapshot.ID) == "" {
		return entities.PaymentSnapshot{}, pkg.NewValidationError("id", "is required")
	}
	unlock := u.locks.Lock(resourceKey(entities.TopicPayment, snapshot.ID))
	defer unlock()
	return u.persistPayment(ctx, snapshot)
}

// RecordSubscription stores a snapshot returned by a create call and announces it.
func (u *BillingPaymentUseCase) RecordSubscription(ctx context.Context, snapshot entities.SubscriptionSnapshot) (entities.SubscriptionSnapshot, error) {
	if strings.TrimSpace(snapshot.ID) == "" {
		return entities.SubscriptionSnapshot{}, pkg.NewValidationError("id", "is required")
	}
	unlock := u.locks.Lock(resourceKey(entities.TopicSubscription, snapshot.ID))
	defer unlock()
	return u.persistSubscription(ctx, snapshot)
}

// TransitionSubscription runs op and stores its result while holding the
// subscription lock, so a webhook for the same id cannot write an older state
// in between.
func (u *BillingPaymentUseCase) TransitionSubscription(ctx context.Context, id string, op SubscriptionTransition) (entities.SubscriptionSnapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SubscriptionSnapshot{}, pkg.NewValidationError("id", "is required")
	}
	unlock := u.locks.Lock(resourceKey(entities.TopicSubscription, id))
	defer unlock()

	snapshot, err := op(ctx, id)
	if err != nil {
		return entities.SubscriptionSnapshot{}, err
	}
	return u.persistSubscription(ctx, snapshot)
}

// StoredPayment reads the last stored snapshot without calling the provider.
func (u *BillingPaymentUseCase) StoredPayment(ctx context.Context, id string) (entities.PaymentSnapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentSnapshot{}, pkg.NewValidationError("id", "is required")
	}
	snapshot, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentSnapshot{}, err
	}
	if snapshot.ID == "" {
		return entities.PaymentSnapshot{}, ErrSnapshotNotFound
	}
	return snapshot, nil
}

// StoredSubscription reads the last stored snapshot without calling the provider.
func (u *BillingPaymentUseCase) StoredSubscription(ctx context.Context, id string) (entities.SubscriptionSnapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SubscriptionSnapshot{}, pkg.NewValidationError("id", "is required")
	}
	snapshot, err := u.subscriptions.GetByID(ctx, id)
	if err != nil {
		return entities.SubscriptionSnapshot{}, err
	}
	if snapshot.ID == "" {
		return entities.SubscriptionSnapshot{}, ErrSnapshotNotFound
	}
	return snapshot, nil
}

func (u *BillingPaymentUseCase) ListByExternalReference(ctx context.Context, externalReference string) ([]entities.PaymentSnapshot, error) {
	externalReference = strings.TrimSpace(externalReference)
	if externalReference == "" {
		return nil, pkg.NewValidationError("external_reference", "is required")
	}
	return u.payments.ListByExternalReference(ctx, externalReference)
}

func (u *BillingPaymentUseCase) reconcile(ctx context.Context, n entities.WebhookNotification) (entities.WebhookOutcome, error) {
	if n.ResourceID == "" {
		return entities.WebhookOutcome{State: entities.WebhookStateRejected, Notification: n}, pkg.NewValidationError("id", "is required")
	}

	unlock := u.locks.Lock(n.Key())
	defer unlock()

	outcome, err := u.receiver.Dispatch(ctx, n)
	if err != nil {
		return outcome, err
	}

	switch {
	case outcome.Payment != nil:
		saved, err := u.persistPayment(ctx, *outcome.Payment)
		if err != nil {
			return outcome, err
		}
		outcome.Payment = &saved
	case outcome.Subscription != nil:
		saved, err := u.persistSubscription(ctx, *outcome.Subscription)
		if err != nil {
			return outcome, err
		}
		outcome.Subscription = &saved
	}
	return outcome, nil
}

// persistPayment and persistSubscription expect the resource lock to be held.

func (u *BillingPaymentUseCase) persistPayment(ctx context.Context, snapshot entities.PaymentSnapshot) (entities.PaymentSnapshot, error) {
	log := u.logger.WithFields(logrus.Fields{"topic": entities.TopicPayment, "resource_id": snapshot.ID})

	saved, err := u.payments.Upsert(ctx, snapshot)
	if err != nil {
		log.WithError(err).Error("payment snapshot upsert failed")
		return entities.PaymentSnapshot{}, err
	}
	u.publish(ctx, log, entities.SnapshotEvent{
		Kind:              entities.SnapshotKindPayment,
		ResourceID:        saved.ID,
		ExternalReference: saved.ExternalReference,
		Status:            string(saved.Status),
		RawStatus:         saved.RawStatus,
	})
	return saved, nil
}

func (u *BillingPaymentUseCase) persistSubscription(ctx context.Context, snapshot entities.SubscriptionSnapshot) (entities.SubscriptionSnapshot, error) {
	log := u.logger.WithFields(logrus.Fields{"topic": entities.TopicSubscription, "resource_id": snapshot.ID})

	saved, err := u.subscriptions.Upsert(ctx, snapshot)
	if err != nil {
		log.WithError(err).Error("subscription snapshot upsert failed")
		return entities.SubscriptionSnapshot{}, err
	}
	u.publish(ctx, log, entities.SnapshotEvent{
		Kind:              entities.SnapshotKindSubscription,
		ResourceID:        saved.ID,
		ExternalReference: saved.ExternalReference,
		Status:            string(saved.Status),
		RawStatus:         saved.RawStatus,
	})
	return saved, nil
}

func (u *BillingPaymentUseCase) publish(ctx context.Context, log logrus.FieldLogger, event entities.SnapshotEvent) {
	// The snapshot is already stored; a lost event is recovered by the next
	// delivery for the same resource.
	if u.publisher != nil {
		if err := u.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("snapshot event publish failed")
		}
	}
	log.WithField("status", event.Status).Info("snapshot persisted")
}

func resourceKey(topic entities.Topic, id string) string {
	return entities.WebhookNotification{Topic: topic, ResourceID: id}.Key()
}
