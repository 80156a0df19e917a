package cli

import (
	"billing_gateway/config"
	"billing_gateway/internal/adapter/http/handlers"
	"billing_gateway/internal/adapter/http/routes"
	"billing_gateway/internal/adapter/persistence/repository"
	"billing_gateway/internal/infrastructure/database"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/infrastructure/messaging"
	"billing_gateway/internal/infrastructure/payments"
	"billing_gateway/internal/usecase"
	"billing_gateway/internal/usecase/interfaces"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// dependencies is the wired object graph shared by every command.
type dependencies struct {
	cfg           *config.Config
	billing       *usecase.BillingPaymentUseCase
	checkout      *usecase.CheckoutUseCase
	subscriptions *usecase.SubscriptionUseCase
	cleanup       func()
}

func (d dependencies) httpHandlers() routes.Handlers {
	return routes.Handlers{
		Payments:      handlers.NewBillingPaymentHandler(d.checkout, d.billing),
		Subscriptions: handlers.NewSubscriptionHandler(d.subscriptions, d.billing),
		Webhooks:      handlers.NewWebhookHandler(d.billing),
	}
}

func buildDependencies(ctx context.Context) (dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return dependencies{}, fmt.Errorf("load configuration: %w", err)
	}
	if err := logging.Configure(cfg.Log.Level); err != nil {
		return dependencies{}, fmt.Errorf("configure logging: %w", err)
	}
	logger := logging.NewModuleLogger("bootstrap")

	client, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		return dependencies{}, err
	}
	gateway := payments.NewRetryingGateway(client, cfg.MercadoPago.MaxAttempts, cfg.MercadoPago.RetryBackoff, cfg.MercadoPago.HTTPTimeout)

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return dependencies{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	paymentRepo := repository.NewPaymentSnapshotDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)
	subscriptionRepo := repository.NewSubscriptionSnapshotDynamoRepository(ddb, cfg.DynamoDB.SubscriptionsTable)

	cleanup := func() {}
	var publisher interfaces.IEventPublisher
	if cfg.Kafka.Enabled() {
		kafkaPublisher, err := messaging.NewSnapshotPublisher(cfg.Kafka)
		if err != nil {
			return dependencies{}, fmt.Errorf("create kafka publisher: %w", err)
		}
		publisher = kafkaPublisher
		cleanup = func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.WithError(err).Warn("kafka publisher close failed")
			}
		}
	} else {
		logger.Info("snapshot publication disabled: no kafka brokers configured")
	}

	receiver, err := usecase.NewWebhookReceiver(cfg.MercadoPago.WebhookSecret, usecase.NewStatusReconciler(gateway))
	if err != nil {
		return dependencies{}, err
	}

	defaults := usecase.RequestDefaults{
		BackURLs: usecase.BackURLs{
			Success: cfg.MercadoPago.BackURLs.Success,
			Failure: cfg.MercadoPago.BackURLs.Failure,
			Pending: cfg.MercadoPago.BackURLs.Pending,
		},
		NotificationURL: cfg.MercadoPago.NotificationURL,
		SubscriptionURL: cfg.MercadoPago.SubscriptionURL,
	}

	logger.WithFields(logrus.Fields{
		"service":      cfg.App.ServiceName,
		"base_url":     cfg.MercadoPago.BaseURL,
		"max_attempts": cfg.MercadoPago.MaxAttempts,
	}).Info("dependencies ready")

	return dependencies{
		cfg:           cfg,
		billing:       usecase.NewBillingPaymentUseCase(receiver, paymentRepo, subscriptionRepo, publisher),
		checkout:      usecase.NewCheckoutUseCase(gateway, defaults),
		subscriptions: usecase.NewSubscriptionUseCase(gateway, defaults),
		cleanup:       cleanup,
	}, nil
}
