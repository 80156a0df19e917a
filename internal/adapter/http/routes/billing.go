package routes

import (
	"billing_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout      = "/checkout"
	PathPayments      = "/payments"
	PathSubscriptions = "/subscriptions"
	PathWebhooks      = "/webhooks"
)

func addBillingRoutes(rg *gin.RouterGroup, paymentHandler *handlers.BillingPaymentHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/preferences", paymentHandler.CreatePreference)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/pix", paymentHandler.CreatePixPayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
	}
}

func addSubscriptionRoutes(rg *gin.RouterGroup, subscriptionHandler *handlers.SubscriptionHandler) {
	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.POST("", subscriptionHandler.CreateSubscription)
		subscriptions.GET("/:id", subscriptionHandler.GetSubscription)
		subscriptions.PATCH("/:id/cancel", subscriptionHandler.CancelSubscription)
		subscriptions.PATCH("/:id/pause", subscriptionHandler.PauseSubscription)
		subscriptions.PATCH("/:id/reactivate", subscriptionHandler.ReactivateSubscription)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", webhookHandler.ReceiveMercadoPago)
	}
}
