package response

import (
	"billing_gateway/internal/domain/entities"
	"time"
)

type PaymentResponse struct {
	PaymentID         string     `json:"payment_id"`
	Status            string     `json:"status"`
	ProviderStatus    string     `json:"provider_status"`
	StatusDetail      string     `json:"status_detail,omitempty"`
	Amount            float64    `json:"amount"`
	ExternalReference string     `json:"external_reference"`
	PayerEmail        string     `json:"payer_email,omitempty"`
	Method            string     `json:"method,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
}

func FromPaymentSnapshot(p entities.PaymentSnapshot) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.ID,
		Status:            string(p.Status),
		ProviderStatus:    p.RawStatus,
		StatusDetail:      p.StatusDetail,
		Amount:            p.Amount,
		ExternalReference: p.ExternalReference,
		PayerEmail:        p.PayerEmail,
		Method:            p.Method,
		CreatedAt:         optionalTime(p.CreatedAt),
		ApprovedAt:        p.ApprovedAt,
	}
}

func FromPaymentSnapshots(list []entities.PaymentSnapshot) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPaymentSnapshot(p))
	}
	return out
}

type PixPaymentResponse struct {
	PaymentResponse
	QRCode       string `json:"qr_code,omitempty"`
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`
}

func FromPixPayment(p entities.PixPaymentCreated) PixPaymentResponse {
	return PixPaymentResponse{
		PaymentResponse: FromPaymentSnapshot(p.Payment),
		QRCode:          p.QRCode,
		QRCodeBase64:    p.QRCodeBase64,
		TicketURL:       p.TicketURL,
	}
}

type PreferenceResponse struct {
	PreferenceID      string `json:"preference_id"`
	InitPoint         string `json:"init_point"`
	SandboxInitPoint  string `json:"sandbox_init_point,omitempty"`
	ExternalReference string `json:"external_reference"`
}

func FromPreference(p entities.PreferenceCreated) PreferenceResponse {
	return PreferenceResponse{
		PreferenceID:      p.ID,
		InitPoint:         p.InitPoint,
		SandboxInitPoint:  p.SandboxInitPoint,
		ExternalReference: p.ExternalReference,
	}
}

// WebhookAckResponse acknowledges a delivery. Status is the terminal state of
// the notification; Resource carries the reconciled internal status, if any.
type WebhookAckResponse struct {
	Status     string `json:"status"`
	Topic      string `json:"topic,omitempty"`
	ResourceID string `json:"resource_id,omitempty"`
	Resource   string `json:"resource_status,omitempty"`
}

func FromWebhookOutcome(o entities.WebhookOutcome) WebhookAckResponse {
	ack := WebhookAckResponse{
		Status:     string(o.State),
		Topic:      o.Notification.RawTopic,
		ResourceID: o.Notification.ResourceID,
	}
	switch {
	case o.Payment != nil:
		ack.Resource = string(o.Payment.Status)
	case o.Subscription != nil:
		ack.Resource = string(o.Subscription.Status)
	}
	return ack
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
