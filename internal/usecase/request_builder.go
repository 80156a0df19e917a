package usecase

import (
	"billing_gateway/internal/domain/entities"
	"billing_gateway/pkg"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/mercadopago/sdk-go/pkg/preapprovalplan"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const (
	CurrencyBRL         = "BRL"
	PaymentMethodPix    = "pix"
	MaxInstallments     = 12
	PreferenceTTL       = 24 * time.Hour
	FrequencyMonths     = "months"
	AutoReturnOnApprove = "approved"
)

// BuildPreferenceRequest validates a checkout request and shapes it for
// POST /checkout/preferences. The preference expires 24 hours after now.
func BuildPreferenceRequest(in PreferenceInput, defaults RequestDefaults, now time.Time) (preference.Request, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return preference.Request{}, pkg.NewValidationError("title", "is required")
	}
	if err := validateAmount(in.Amount); err != nil {
		return preference.Request{}, err
	}
	email, err := requireEmail(in.Payer.Email)
	if err != nil {
		return preference.Request{}, err
	}
	ref, err := requireExternalReference(in.ExternalReference)
	if err != nil {
		return preference.Request{}, err
	}

	installments := in.Installments
	if installments < 1 || installments > MaxInstallments {
		installments = MaxInstallments
	}

	payer := &preference.PayerRequest{
		Name:    strings.TrimSpace(in.Payer.FirstName),
		Surname: strings.TrimSpace(in.Payer.LastName),
		Email:   email,
	}
	if docType, number, ok := identification(in.Payer); ok {
		payer.Identification = &preference.IdentificationRequest{Type: docType, Number: number}
	}

	backURLs := mergeBackURLs(in.BackURLs, defaults.BackURLs)
	from := now
	to := now.Add(PreferenceTTL)

	return preference.Request{
		Items: []preference.ItemRequest{{
			Title:       title,
			Description: strings.TrimSpace(in.Description),
			Quantity:    1,
			UnitPrice:   in.Amount,
			CurrencyID:  CurrencyBRL,
		}},
		Payer:          payer,
		PaymentMethods: &preference.PaymentMethodsRequest{Installments: installments},
		BackURLs: &preference.BackURLsRequest{
			Success: backURLs.Success,
			Failure: backURLs.Failure,
			Pending: backURLs.Pending,
		},
		AutoReturn:         AutoReturnOnApprove,
		ExternalReference:  ref,
		NotificationURL:    defaults.NotificationURL,
		Expires:            true,
		ExpirationDateFrom: &from,
		ExpirationDateTo:   &to,
	}, nil
}

// BuildPixPaymentRequest shapes a direct PIX payment for POST /v1/payments.
func BuildPixPaymentRequest(in PixPaymentInput, defaults RequestDefaults) (payment.Request, error) {
	if err := validateAmount(in.Amount); err != nil {
		return payment.Request{}, err
	}
	email, err := requireEmail(in.Payer.Email)
	if err != nil {
		return payment.Request{}, err
	}
	ref, err := requireExternalReference(in.ExternalReference)
	if err != nil {
		return payment.Request{}, err
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = fmt.Sprintf("Payment %s", ref)
	}

	payer := &payment.PayerRequest{
		Email:     email,
		FirstName: strings.TrimSpace(in.Payer.FirstName),
		LastName:  strings.TrimSpace(in.Payer.LastName),
	}
	if docType, number, ok := identification(in.Payer); ok {
		payer.Identification = &payment.IdentificationRequest{Type: docType, Number: number}
	}

	return payment.Request{
		TransactionAmount: in.Amount,
		Description:       description,
		PaymentMethodID:   PaymentMethodPix,
		ExternalReference: ref,
		NotificationURL:   defaults.NotificationURL,
		Payer:             payer,
	}, nil
}

// BuildPlanRequest shapes the recurring template for POST /preapproval_plan.
// Only credit and debit cards may pay a plan.
func BuildPlanRequest(in SubscriptionInput, defaults RequestDefaults) (preapprovalplan.Request, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return preapprovalplan.Request{}, pkg.NewValidationError("title", "is required")
	}
	if err := validateAmount(in.Amount); err != nil {
		return preapprovalplan.Request{}, err
	}
	frequency, err := cycleFrequency(in.Cycle)
	if err != nil {
		return preapprovalplan.Request{}, err
	}

	return preapprovalplan.Request{
		Reason: title,
		AutoRecurring: &preapprovalplan.AutoRecurringRequest{
			Frequency:         frequency,
			FrequencyType:     FrequencyMonths,
			TransactionAmount: in.Amount,
			CurrencyID:        CurrencyBRL,
		},
		PaymentMethodsAllowed: &preapprovalplan.PaymentMethodsAllowedRequest{
			PaymentTypes: []preapprovalplan.PaymentTypeRequest{{ID: "credit_card"}, {ID: "debit_card"}},
		},
		BackURL: defaults.SubscriptionURL,
	}, nil
}

// BuildSubscriptionRequest shapes POST /preapproval for an existing plan. The
// subscription starts now, ends one year later and is created authorized.
func BuildSubscriptionRequest(planID string, in SubscriptionInput, defaults RequestDefaults, now time.Time) (preapproval.Request, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return preapproval.Request{}, pkg.NewValidationError("preapproval_plan_id", "is required")
	}
	if err := validateAmount(in.Amount); err != nil {
		return preapproval.Request{}, err
	}
	email, err := requireEmail(in.PayerEmail)
	if err != nil {
		return preapproval.Request{}, err
	}
	ref, err := requireExternalReference(in.ExternalReference)
	if err != nil {
		return preapproval.Request{}, err
	}
	frequency, err := cycleFrequency(in.Cycle)
	if err != nil {
		return preapproval.Request{}, err
	}

	start := now
	end := now.AddDate(1, 0, 0)

	return preapproval.Request{
		PreapprovalPlanID: planID,
		Reason:            strings.TrimSpace(in.Title),
		ExternalReference: ref,
		PayerEmail:        email,
		CardTokenID:       strings.TrimSpace(in.CardTokenID),
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         frequency,
			FrequencyType:     FrequencyMonths,
			StartDate:         &start,
			EndDate:           &end,
			TransactionAmount: in.Amount,
			CurrencyID:        CurrencyBRL,
		},
		BackURL: defaults.SubscriptionURL,
		Status:  providerStatusAuthorized,
	}, nil
}

// ValidateSubscriptionInput checks every field the saga needs before the first
// provider call, so a bad request never leaves an orphaned plan behind.
func ValidateSubscriptionInput(in SubscriptionInput) error {
	if _, err := BuildPlanRequest(in, RequestDefaults{}); err != nil {
		return err
	}
	_, err := BuildSubscriptionRequest("pending-plan", in, RequestDefaults{}, time.Time{})
	return err
}

func cycleFrequency(cycle string) (int, error) {
	switch entities.BillingCycle(strings.ToLower(strings.TrimSpace(cycle))) {
	case entities.BillingCycleMonthly, "":
		return 1, nil
	case entities.BillingCycleAnnual:
		return 12, nil
	default:
		return 0, pkg.NewValidationError("cycle", "must be monthly or annual")
	}
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return pkg.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

func requireEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", pkg.NewValidationError("payer_email", "is required")
	}
	if at := strings.Index(email, "@"); at < 1 || at == len(email)-1 {
		return "", pkg.NewValidationError("payer_email", "is invalid")
	}
	return email, nil
}

func requireExternalReference(raw string) (string, error) {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return "", pkg.NewValidationError("external_reference", "is required")
	}
	return ref, nil
}

// identification defaults the document type to CPF. ok is false when the
// payer carries no document number.
func identification(p PayerInput) (docType, number string, ok bool) {
	number = strings.TrimSpace(p.DocumentNumber)
	if number == "" {
		return "", "", false
	}
	docType = strings.ToUpper(strings.TrimSpace(p.DocumentType))
	if docType == "" {
		docType = "CPF"
	}
	return docType, number, true
}

func mergeBackURLs(in, defaults BackURLs) BackURLs {
	out := defaults
	if v := strings.TrimSpace(in.Success); v != "" {
		out.Success = v
	}
	if v := strings.TrimSpace(in.Failure); v != "" {
		out.Failure = v
	}
	if v := strings.TrimSpace(in.Pending); v != "" {
		out.Pending = v
	}
	return out
}
