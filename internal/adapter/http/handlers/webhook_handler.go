package handlers

import (
	response "billing_gateway/internal/adapter/http/dto/response"
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const SignatureHeader = "X-Signature"

// WebhookHandler receives provider notifications. The raw body is handed to
// the use case untouched because the signature is computed over its bytes.
type WebhookHandler struct {
	payments usecase.IBillingPaymentUseCase
	logger   logrus.FieldLogger
}

func NewWebhookHandler(payments usecase.IBillingPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{
		payments: payments,
		logger:   logging.NewModuleLogger("webhook-handler"),
	}
}

// ReceiveMercadoPago godoc
// @Summary      Receive a Mercado Pago notification
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Signature  header  string  true  "HMAC-SHA256 of the raw body"
// @Success      200  {object}  response.WebhookAckResponse
// @Failure      400  {object}  pkg.HTTPErrorBody
// @Failure      401  {object}  pkg.HTTPErrorBody
// @Failure      503  {object}  pkg.HTTPErrorBody
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) ReceiveMercadoPago(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	outcome, err := h.payments.HandleWebhook(c.Request.Context(), body, c.GetHeader(SignatureHeader))
	if err == nil {
		c.JSON(http.StatusOK, response.FromWebhookOutcome(outcome))
		return
	}

	log := h.logger.WithError(err).WithFields(logrus.Fields{
		"topic":       outcome.Notification.RawTopic,
		"resource_id": outcome.Notification.ResourceID,
	})
	appErr := mapWebhookError(err)
	if appErr == nil {
		log.Warn("webhook acknowledged without processing")
		outcome.State = entities.WebhookStateRejected
		c.JSON(http.StatusOK, response.FromWebhookOutcome(outcome))
		return
	}

	log.WithField("http_status", appErr.HTTPStatus).Warn("webhook rejected")
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
