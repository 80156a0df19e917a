package handlers

import (
	request "billing_gateway/internal/adapter/http/dto/request"
	response "billing_gateway/internal/adapter/http/dto/response"
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/usecase"
	"billing_gateway/pkg"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SubscriptionHandler struct {
	subscriptions usecase.ISubscriptionUseCase
	payments      usecase.IBillingPaymentUseCase
	logger        logrus.FieldLogger
}

func NewSubscriptionHandler(subscriptions usecase.ISubscriptionUseCase, payments usecase.IBillingPaymentUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		payments:      payments,
		logger:        logging.NewModuleLogger("subscription-handler"),
	}
}

// CreateSubscription godoc
// @Summary      Create a plan and a subscription bound to it
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        X-Idempotency-Key  header  string                       false  "Client idempotency key"
// @Param        body               body    request.SubscriptionRequest  true   "Subscription"
// @Success      201  {object}  response.SubscriptionCreatedResponse
// @Failure      400  {object}  pkg.HTTPErrorBody
// @Failure      502  {object}  pkg.HTTPErrorBody  "Provider rejection or partial failure (details.plan_id)"
// @Failure      503  {object}  pkg.HTTPErrorBody
// @Router       /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var payload request.SubscriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.subscriptions.CreateSubscription(c.Request.Context(), payload.ToInput(), c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		log := h.logger.WithError(err).WithField("external_reference", payload.ExternalReference)
		if errors.Is(err, pkg.ErrPartialFailure) {
			log = log.WithField("plan_id", created.PlanID)
		}
		log.Warn("create subscription failed")
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if created.Subscription.ID != "" {
		saved, err := h.payments.RecordSubscription(c.Request.Context(), created.Subscription)
		if err != nil {
			h.logger.WithError(err).WithField("subscription_id", created.Subscription.ID).Error("subscription created but not stored")
			appErr := mapGatewayError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		created.Subscription = saved
	}

	c.JSON(http.StatusCreated, response.FromSubscriptionCreation(created))
}

// GetSubscription godoc
// @Summary      Reconcile a subscription with the provider
// @Tags         subscriptions
// @Produce      json
// @Param        id   path      string  true  "Provider preapproval id"
// @Success      200  {object}  response.SubscriptionResponse
// @Failure      404  {object}  pkg.HTTPErrorBody
// @Failure      503  {object}  pkg.HTTPErrorBody
// @Router       /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	h.respondWith(c, h.payments.SyncSubscription)
}

// CancelSubscription godoc
// @Summary      Cancel a subscription
// @Tags         subscriptions
// @Produce      json
// @Param        id   path      string  true  "Provider preapproval id"
// @Success      200  {object}  response.SubscriptionResponse
// @Failure      502  {object}  pkg.HTTPErrorBody
// @Router       /subscriptions/{id}/cancel [patch]
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	h.respondWith(c, h.stored(h.subscriptions.Cancel))
}

// PauseSubscription godoc
// @Summary      Pause a subscription
// @Tags         subscriptions
// @Produce      json
// @Param        id   path      string  true  "Provider preapproval id"
// @Success      200  {object}  response.SubscriptionResponse
// @Failure      502  {object}  pkg.HTTPErrorBody
// @Router       /subscriptions/{id}/pause [patch]
func (h *SubscriptionHandler) PauseSubscription(c *gin.Context) {
	h.respondWith(c, h.stored(h.subscriptions.Pause))
}

// ReactivateSubscription godoc
// @Summary      Reactivate a paused subscription
// @Tags         subscriptions
// @Produce      json
// @Param        id   path      string  true  "Provider preapproval id"
// @Success      200  {object}  response.SubscriptionResponse
// @Failure      502  {object}  pkg.HTTPErrorBody
// @Router       /subscriptions/{id}/reactivate [patch]
func (h *SubscriptionHandler) ReactivateSubscription(c *gin.Context) {
	h.respondWith(c, h.stored(h.subscriptions.Reactivate))
}

// stored runs a lifecycle transition through the billing use case so its
// result is persisted under the subscription lock.
func (h *SubscriptionHandler) stored(op usecase.SubscriptionTransition) usecase.SubscriptionTransition {
	return func(ctx context.Context, id string) (entities.SubscriptionSnapshot, error) {
		return h.payments.TransitionSubscription(ctx, id, op)
	}
}

func (h *SubscriptionHandler) respondWith(
	c *gin.Context,
	op usecase.SubscriptionTransition,
) {
	id := c.Param("id")

	snapshot, err := op(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("subscription_id", id).Warn("subscription request failed")
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubscriptionSnapshot(snapshot))
}
