package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the internal payment taxonomy. Provider statuses are mapped
// onto it by the status reconciler; unknown provider values become pending.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentSnapshot is the reconciled view of a provider payment.
//
// Snapshots are derived only from the provider body, so fetching an unchanged
// payment twice yields identical snapshots. Callers persist them with
// upsert-by-id semantics.
//
// Raw keeps the provider body for traceability/audit.
type PaymentSnapshot struct {
	ID                string        `json:"id"`
	Status            PaymentStatus `json:"status"`
	RawStatus         string        `json:"raw_status"`
	StatusDetail      string        `json:"status_detail,omitempty"`
	Amount            float64       `json:"amount"`
	ExternalReference string        `json:"external_reference"`
	PayerEmail        string        `json:"payer_email"`
	Method            string        `json:"method"`
	CreatedAt         time.Time     `json:"created_at"`
	ApprovedAt        *time.Time    `json:"approved_at,omitempty"`

	Raw json.RawMessage `json:"-"`
}
