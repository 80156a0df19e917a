package entities

import (
	"encoding/json"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// SubscriptionSnapshot is the reconciled view of a provider preapproval.
type SubscriptionSnapshot struct {
	ID                string             `json:"id"`
	Status            SubscriptionStatus `json:"status"`
	RawStatus         string             `json:"raw_status"`
	PlanID            string             `json:"plan_id,omitempty"`
	ExternalReference string             `json:"external_reference"`
	PayerEmail        string             `json:"payer_email"`
	StartAt           time.Time          `json:"start_at"`
	EndAt             *time.Time         `json:"end_at,omitempty"`
	NextPaymentAt     *time.Time         `json:"next_payment_at,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// BillingCycle selects the plan frequency: monthly plans charge every month,
// annual plans every twelve months.
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleAnnual  BillingCycle = "annual"
)

// SubscriptionCreation is the outcome of the plan-then-subscription saga.
//
// PlanID is empty when plan creation failed. When the subscription step fails
// PlanID still names the orphaned plan so the caller can clean it up.
type SubscriptionCreation struct {
	PlanID       string               `json:"plan_id,omitempty"`
	InitPoint    string               `json:"init_point,omitempty"`
	Subscription SubscriptionSnapshot `json:"subscription"`
}
