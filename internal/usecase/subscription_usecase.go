package usecase

import (
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/usecase/interfaces"
	"billing_gateway/pkg"
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/mercadopago/sdk-go/pkg/preapprovalplan"
	"github.com/sirupsen/logrus"
)

// Provider statuses written by the lifecycle transitions.
const (
	providerStatusCancelled  = "cancelled"
	providerStatusPaused     = "paused"
	providerStatusAuthorized = "authorized"
)

// ISubscriptionUseCase manages recurring billing on the provider.
//
// CreateSubscription is a two-step saga without compensation: a failed plan
// step stops before anything else is sent, a failed subscription step returns
// a *pkg.PartialFailureError naming the orphaned plan.
type ISubscriptionUseCase interface {
	CreateSubscription(ctx context.Context, in SubscriptionInput, idempotencyKey string) (entities.SubscriptionCreation, error)
	Cancel(ctx context.Context, id string) (entities.SubscriptionSnapshot, error)
	Pause(ctx context.Context, id string) (entities.SubscriptionSnapshot, error)
	Reactivate(ctx context.Context, id string) (entities.SubscriptionSnapshot, error)
}

type SubscriptionUseCase struct {
	gateway  interfaces.IPaymentGateway
	defaults RequestDefaults
	now      func() time.Time
	logger   logrus.FieldLogger
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(gateway interfaces.IPaymentGateway, defaults RequestDefaults) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		gateway:  gateway,
		defaults: defaults,
		now:      time.Now,
		logger:   logging.NewModuleLogger("subscription-usecase"),
	}
}

func (u *SubscriptionUseCase) CreateSubscription(ctx context.Context, in SubscriptionInput, idempotencyKey string) (entities.SubscriptionCreation, error) {
	if err := ValidateSubscriptionInput(in); err != nil {
		return entities.SubscriptionCreation{}, err
	}
	planPayload, err := BuildPlanRequest(in, u.defaults)
	if err != nil {
		return entities.SubscriptionCreation{}, err
	}

	log := u.logger.WithField("external_reference", in.ExternalReference)

	planResult := u.gateway.Execute(ctx, entities.GatewayCall{
		Method:         http.MethodPost,
		Path:           PathPlans,
		Body:           planPayload,
		IdempotencyKey: derivedKey(idempotencyKey, "plan"),
	})
	if !planResult.Success {
		log.WithError(planResult.Err).Warn("plan creation failed")
		return entities.SubscriptionCreation{}, planResult.Err
	}

	var plan preapprovalplan.Response
	if err := planResult.Decode(&plan); err != nil || strings.TrimSpace(plan.ID) == "" {
		log.Warn("plan created without a usable id")
		return entities.SubscriptionCreation{}, &pkg.HTTPError{
			Status:  planResult.HTTPStatus,
			Body:    planResult.Data,
			Message: "plan response carries no id",
		}
	}
	log = log.WithField("plan_id", plan.ID)

	subPayload, err := BuildSubscriptionRequest(plan.ID, in, u.defaults, u.now())
	if err != nil {
		return entities.SubscriptionCreation{PlanID: plan.ID}, &pkg.PartialFailureError{PlanID: plan.ID, Cause: err}
	}

	subResult := u.gateway.Execute(ctx, entities.GatewayCall{
		Method:         http.MethodPost,
		Path:           PathPreapproval,
		Body:           subPayload,
		IdempotencyKey: derivedKey(idempotencyKey, "subscription"),
	})
	if !subResult.Success {
		log.WithError(subResult.Err).Error("subscription creation failed, plan left orphaned")
		return entities.SubscriptionCreation{PlanID: plan.ID}, &pkg.PartialFailureError{PlanID: plan.ID, Cause: subResult.Err}
	}

	snapshot, initPoint, err := decodePreapproval(subResult)
	if err != nil {
		return entities.SubscriptionCreation{PlanID: plan.ID}, &pkg.PartialFailureError{PlanID: plan.ID, Cause: err}
	}
	if snapshot.PlanID == "" {
		snapshot.PlanID = plan.ID
	}

	log.WithField("subscription_id", snapshot.ID).Info("subscription created")
	return entities.SubscriptionCreation{PlanID: plan.ID, InitPoint: initPoint, Subscription: snapshot}, nil
}

func (u *SubscriptionUseCase) Cancel(ctx context.Context, id string) (entities.SubscriptionSnapshot, error) {
	return u.transition(ctx, id, providerStatusCancelled)
}

func (u *SubscriptionUseCase) Pause(ctx context.Context, id string) (entities.SubscriptionSnapshot, error) {
	return u.transition(ctx, id, providerStatusPaused)
}

func (u *SubscriptionUseCase) Reactivate(ctx context.Context, id string) (entities.SubscriptionSnapshot, error) {
	return u.transition(ctx, id, providerStatusAuthorized)
}

// transition forwards the status change as-is. Terminal subscriptions are not
// short-circuited; the provider decides.
func (u *SubscriptionUseCase) transition(ctx context.Context, id, status string) (entities.SubscriptionSnapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SubscriptionSnapshot{}, pkg.NewValidationError("id", "is required")
	}

	result := u.gateway.Execute(ctx, entities.GatewayCall{
		Method: http.MethodPut,
		Path:   PathPreapproval + "/" + url.PathEscape(id),
		Body:   preapproval.UpdateRequest{Status: status},
	})
	log := u.logger.WithFields(logrus.Fields{"subscription_id": id, "target_status": status})
	if !result.Success {
		log.WithError(result.Err).Warn("subscription transition failed")
		return entities.SubscriptionSnapshot{}, result.Err
	}

	snapshot, _, err := decodePreapproval(result)
	if err != nil {
		return entities.SubscriptionSnapshot{}, err
	}
	if snapshot.ID == "" {
		snapshot.ID = id
	}
	if snapshot.RawStatus == "" {
		snapshot.RawStatus = status
		snapshot.Status = MapSubscriptionStatus(status)
	}
	log.Info("subscription transitioned")
	return snapshot, nil
}

// derivedKey scopes a caller idempotency key to one saga step. An empty key
// stays empty so the gateway mints a fresh one.
func derivedKey(key, step string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	return key + ":" + step
}
