package response

import (
	"billing_gateway/internal/domain/entities"
	"time"
)

type SubscriptionResponse struct {
	SubscriptionID    string     `json:"subscription_id"`
	Status            string     `json:"status"`
	ProviderStatus    string     `json:"provider_status"`
	PlanID            string     `json:"plan_id,omitempty"`
	ExternalReference string     `json:"external_reference"`
	PayerEmail        string     `json:"payer_email,omitempty"`
	StartAt           *time.Time `json:"start_at,omitempty"`
	EndAt             *time.Time `json:"end_at,omitempty"`
	NextPaymentAt     *time.Time `json:"next_payment_at,omitempty"`
}

func FromSubscriptionSnapshot(s entities.SubscriptionSnapshot) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID:    s.ID,
		Status:            string(s.Status),
		ProviderStatus:    s.RawStatus,
		PlanID:            s.PlanID,
		ExternalReference: s.ExternalReference,
		PayerEmail:        s.PayerEmail,
		StartAt:           optionalTime(s.StartAt),
		EndAt:             s.EndAt,
		NextPaymentAt:     s.NextPaymentAt,
	}
}

type SubscriptionCreatedResponse struct {
	SubscriptionResponse
	InitPoint string `json:"init_point,omitempty"`
}

func FromSubscriptionCreation(c entities.SubscriptionCreation) SubscriptionCreatedResponse {
	res := SubscriptionCreatedResponse{
		SubscriptionResponse: FromSubscriptionSnapshot(c.Subscription),
		InitPoint:            c.InitPoint,
	}
	if res.PlanID == "" {
		res.PlanID = c.PlanID
	}
	return res
}
