package usecase

import (
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/usecase/interfaces"
	"billing_gateway/pkg"
	"context"
	"net/http"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/sirupsen/logrus"
)

// ICheckoutUseCase creates one-off charges: hosted checkout preferences and
// direct PIX payments.
type ICheckoutUseCase interface {
	CreatePreference(ctx context.Context, in PreferenceInput, idempotencyKey string) (entities.PreferenceCreated, error)
	CreatePixPayment(ctx context.Context, in PixPaymentInput, idempotencyKey string) (entities.PixPaymentCreated, error)
}

type CheckoutUseCase struct {
	gateway  interfaces.IPaymentGateway
	defaults RequestDefaults
	now      func() time.Time
	logger   logrus.FieldLogger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.IPaymentGateway, defaults RequestDefaults) *CheckoutUseCase {
	return &CheckoutUseCase{
		gateway:  gateway,
		defaults: defaults,
		now:      time.Now,
		logger:   logging.NewModuleLogger("checkout-usecase"),
	}
}

func (u *CheckoutUseCase) CreatePreference(ctx context.Context, in PreferenceInput, idempotencyKey string) (entities.PreferenceCreated, error) {
	payload, err := BuildPreferenceRequest(in, u.defaults, u.now())
	if err != nil {
		return entities.PreferenceCreated{}, err
	}

	log := u.logger.WithField("external_reference", payload.ExternalReference)
	result := u.gateway.Execute(ctx, entities.GatewayCall{
		Method:         http.MethodPost,
		Path:           PathPreferences,
		Body:           payload,
		IdempotencyKey: idempotencyKey,
	})
	if !result.Success {
		log.WithError(result.Err).Warn("preference creation failed")
		return entities.PreferenceCreated{}, result.Err
	}

	var body preference.Response
	if err := result.Decode(&body); err != nil || body.ID == "" {
		return entities.PreferenceCreated{}, &pkg.HTTPError{
			Status:  result.HTTPStatus,
			Body:    result.Data,
			Message: "preference response carries no id",
		}
	}

	log.WithField("preference_id", body.ID).Info("preference created")
	return entities.PreferenceCreated{
		ID:                body.ID,
		InitPoint:         body.InitPoint,
		SandboxInitPoint:  body.SandboxInitPoint,
		ExternalReference: payload.ExternalReference,
	}, nil
}

func (u *CheckoutUseCase) CreatePixPayment(ctx context.Context, in PixPaymentInput, idempotencyKey string) (entities.PixPaymentCreated, error) {
	payload, err := BuildPixPaymentRequest(in, u.defaults)
	if err != nil {
		return entities.PixPaymentCreated{}, err
	}

	log := u.logger.WithField("external_reference", payload.ExternalReference)
	result := u.gateway.Execute(ctx, entities.GatewayCall{
		Method:         http.MethodPost,
		Path:           PathPayments,
		Body:           payload,
		IdempotencyKey: idempotencyKey,
	})
	if !result.Success {
		log.WithError(result.Err).Warn("pix payment creation failed")
		return entities.PixPaymentCreated{}, result.Err
	}

	snapshot, err := PaymentSnapshotFromResult(result)
	if err != nil {
		return entities.PixPaymentCreated{}, err
	}

	var resp payment.Response
	_ = result.Decode(&resp)
	td := resp.PointOfInteraction.TransactionData

	log.WithFields(logrus.Fields{"payment_id": snapshot.ID, "status": snapshot.Status}).Info("pix payment created")
	return entities.PixPaymentCreated{
		Payment:      snapshot,
		QRCode:       td.QRCode,
		QRCodeBase64: td.QRCodeBase64,
		TicketURL:    td.TicketURL,
	}, nil
}
