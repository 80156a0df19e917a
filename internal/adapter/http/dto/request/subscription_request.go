package request

import (
	"billing_gateway/internal/usecase"
	"strings"
)

// SubscriptionRequest is the body of POST /v1/subscriptions. Cycle accepts
// "monthly" (default) or "annual".
type SubscriptionRequest struct {
	Title             string  `json:"title"`
	Amount            float64 `json:"amount"`
	Cycle             string  `json:"cycle" binding:"omitempty,oneof=monthly annual MONTHLY ANNUAL"`
	PayerEmail        string  `json:"payer_email"`
	ExternalReference string  `json:"external_reference"`
	CardTokenID       string  `json:"card_token_id"`
}

func (r SubscriptionRequest) ToInput() usecase.SubscriptionInput {
	return usecase.SubscriptionInput{
		Title:             r.Title,
		Amount:            r.Amount,
		Cycle:             strings.ToLower(strings.TrimSpace(r.Cycle)),
		PayerEmail:        r.PayerEmail,
		ExternalReference: r.ExternalReference,
		CardTokenID:       r.CardTokenID,
	}
}
