package interfaces

import (
	"billing_gateway/internal/domain/entities"
	"context"
)

// IPaymentGateway abstracts the HTTP surface of the payment provider (Mercado Pago).
//
// Execute never returns an error separately: transport failures and non-2xx
// responses are classified into the GatewayResult and the caller decides what
// to do with them.
type IPaymentGateway interface {
	Execute(ctx context.Context, call entities.GatewayCall) entities.GatewayResult
}
