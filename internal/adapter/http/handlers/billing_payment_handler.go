package handlers

import (
	request "billing_gateway/internal/adapter/http/dto/request"
	response "billing_gateway/internal/adapter/http/dto/response"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/usecase"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BillingPaymentHandler serves checkout creation and payment lookups.
type BillingPaymentHandler struct {
	checkout usecase.ICheckoutUseCase
	payments usecase.IBillingPaymentUseCase
	logger   logrus.FieldLogger
}

func NewBillingPaymentHandler(checkout usecase.ICheckoutUseCase, payments usecase.IBillingPaymentUseCase) *BillingPaymentHandler {
	return &BillingPaymentHandler{
		checkout: checkout,
		payments: payments,
		logger:   logging.NewModuleLogger("payment-handler"),
	}
}

// CreatePreference godoc
// @Summary      Create a hosted checkout preference
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        X-Idempotency-Key  header  string                      false  "Client idempotency key"
// @Param        body               body    request.PreferenceRequest   true   "Preference"
// @Success      201  {object}  response.PreferenceResponse
// @Failure      400  {object}  pkg.HTTPErrorBody
// @Failure      502  {object}  pkg.HTTPErrorBody
// @Failure      503  {object}  pkg.HTTPErrorBody
// @Router       /checkout/preferences [post]
func (h *BillingPaymentHandler) CreatePreference(c *gin.Context) {
	var payload request.PreferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.checkout.CreatePreference(c.Request.Context(), payload.ToInput(), c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		h.logger.WithError(err).WithField("external_reference", payload.ExternalReference).Warn("create preference failed")
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPreference(created))
}

// CreatePixPayment godoc
// @Summary      Create a PIX payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Idempotency-Key  header  string                     false  "Client idempotency key"
// @Param        body               body    request.PixPaymentRequest  true   "PIX payment"
// @Success      201  {object}  response.PixPaymentResponse
// @Failure      400  {object}  pkg.HTTPErrorBody
// @Failure      502  {object}  pkg.HTTPErrorBody
// @Failure      503  {object}  pkg.HTTPErrorBody
// @Router       /payments/pix [post]
func (h *BillingPaymentHandler) CreatePixPayment(c *gin.Context) {
	var payload request.PixPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.checkout.CreatePixPayment(c.Request.Context(), payload.ToInput(), c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		h.logger.WithError(err).WithField("external_reference", payload.ExternalReference).Warn("create pix payment failed")
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.payments.RecordPayment(c.Request.Context(), created.Payment)
	if err != nil {
		h.logger.WithError(err).WithField("payment_id", created.Payment.ID).Error("pix payment created but not stored")
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	created.Payment = saved

	c.JSON(http.StatusCreated, response.FromPixPayment(created))
}

// GetPayment godoc
// @Summary      Reconcile a payment with the provider
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Provider payment id"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPErrorBody
// @Failure      503  {object}  pkg.HTTPErrorBody
// @Router       /payments/{id} [get]
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")

	snapshot, err := h.payments.SyncPayment(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("payment_id", id).Warn("payment reconcile failed")
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentSnapshot(snapshot))
}

// ListPayments godoc
// @Summary      List stored payment snapshots for an external reference
// @Tags         payments
// @Produce      json
// @Param        external_reference  query     string  true  "Caller reference"
// @Success      200  {array}   response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPErrorBody
// @Router       /payments [get]
func (h *BillingPaymentHandler) ListPayments(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("external_reference"))

	list, err := h.payments.ListByExternalReference(c.Request.Context(), ref)
	if err != nil {
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentSnapshots(list))
}
