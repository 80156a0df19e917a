package usecase

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"billing_gateway/pkg"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.FixedZone("BRT", -3*60*60))

func TestBuildPixPaymentRequest_Scenario(t *testing.T) {
	payload, err := BuildPixPaymentRequest(PixPaymentInput{
		Amount:            50.00,
		Payer:             PayerInput{Email: "a@b.com"},
		ExternalReference: "ord-1",
	}, RequestDefaults{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["transaction_amount"] != 50.0 {
		t.Fatalf("expected transaction_amount 50, got %v", body["transaction_amount"])
	}
	if body["payment_method_id"] != "pix" {
		t.Fatalf("expected payment_method_id pix, got %v", body["payment_method_id"])
	}
	if body["external_reference"] != "ord-1" {
		t.Fatalf("expected external_reference ord-1, got %v", body["external_reference"])
	}
	if body["description"] != "Payment ord-1" {
		t.Fatalf("expected default description, got %v", body["description"])
	}
	if _, ok := body["notification_url"]; ok {
		t.Fatalf("empty notification_url must be omitted")
	}
}

func TestBuildPixPaymentRequest_Identification(t *testing.T) {
	payload, err := BuildPixPaymentRequest(PixPaymentInput{
		Amount:            10,
		Payer:             PayerInput{Email: "a@b.com", DocumentNumber: "12345678909"},
		ExternalReference: "ord-2",
	}, RequestDefaults{NotificationURL: "https://hooks.example.com/mp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Payer.Identification == nil || payload.Payer.Identification.Type != "CPF" {
		t.Fatalf("expected CPF identification, got %+v", payload.Payer.Identification)
	}
	if payload.NotificationURL != "https://hooks.example.com/mp" {
		t.Fatalf("expected notification url default, got %q", payload.NotificationURL)
	}
}

func TestBuildPreferenceRequest(t *testing.T) {
	defaults := RequestDefaults{BackURLs: BackURLs{
		Success: "https://shop/success",
		Failure: "https://shop/failure",
		Pending: "https://shop/pending",
	}}
	in := PreferenceInput{
		Title:             "Pro plan",
		Amount:            99.9,
		Installments:      3,
		Payer:             PayerInput{Email: "buyer@shop.com", FirstName: "Ana"},
		ExternalReference: "inv-7",
		BackURLs:          BackURLs{Success: "https://custom/ok"},
	}

	payload, err := BuildPreferenceRequest(in, defaults, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.Items) != 1 || payload.Items[0].Quantity != 1 || payload.Items[0].UnitPrice != 99.9 {
		t.Fatalf("unexpected items: %+v", payload.Items)
	}
	if payload.Items[0].CurrencyID != CurrencyBRL {
		t.Fatalf("expected BRL, got %s", payload.Items[0].CurrencyID)
	}
	if payload.PaymentMethods.Installments != 3 {
		t.Fatalf("expected 3 installments, got %d", payload.PaymentMethods.Installments)
	}
	if payload.BackURLs.Success != "https://custom/ok" || payload.BackURLs.Failure != "https://shop/failure" {
		t.Fatalf("unexpected back urls: %+v", payload.BackURLs)
	}
	if payload.AutoReturn != "approved" || !payload.Expires {
		t.Fatalf("expected auto_return approved and expires, got %+v", payload)
	}

	if payload.ExpirationDateFrom == nil || payload.ExpirationDateTo == nil {
		t.Fatalf("expected an expiration window, got %+v", payload)
	}
	if !payload.ExpirationDateFrom.Equal(fixedNow) {
		t.Fatalf("expected window to open at now, got %s", payload.ExpirationDateFrom)
	}
	if d := payload.ExpirationDateTo.Sub(*payload.ExpirationDateFrom); d != 24*time.Hour {
		t.Fatalf("expected 24h window, got %s", d)
	}

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["expiration_date_to"] != "2024-03-11T12:00:00-03:00" {
		t.Fatalf("unexpected expiration_date_to %v", body["expiration_date_to"])
	}
}

func TestBuildPreferenceRequest_InstallmentsCap(t *testing.T) {
	for _, tc := range []struct {
		in   int
		want int
	}{{0, 12}, {1, 1}, {12, 12}, {13, 12}, {-4, 12}} {
		payload, err := BuildPreferenceRequest(PreferenceInput{
			Title: "t", Amount: 1, Installments: tc.in,
			Payer: PayerInput{Email: "a@b.com"}, ExternalReference: "r",
		}, RequestDefaults{}, fixedNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.PaymentMethods.Installments != tc.want {
			t.Fatalf("installments %d: expected %d, got %d", tc.in, tc.want, payload.PaymentMethods.Installments)
		}
	}
}

func TestBuildPreferenceRequest_Validation(t *testing.T) {
	valid := PreferenceInput{Title: "t", Amount: 1, Payer: PayerInput{Email: "a@b.com"}, ExternalReference: "r"}

	cases := map[string]func(in *PreferenceInput){
		"title":              func(in *PreferenceInput) { in.Title = "  " },
		"amount":             func(in *PreferenceInput) { in.Amount = 0 },
		"payer_email":        func(in *PreferenceInput) { in.Payer.Email = "" },
		"external_reference": func(in *PreferenceInput) { in.ExternalReference = "" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, err := BuildPreferenceRequest(in, RequestDefaults{}, fixedNow)
			if !errors.Is(err, pkg.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var vErr *pkg.ValidationError
			if !errors.As(err, &vErr) || vErr.Field != field {
				t.Fatalf("expected field %s, got %v", field, err)
			}
		})
	}
}

func TestBuildPlanRequest(t *testing.T) {
	t.Run("monthly", func(t *testing.T) {
		payload, err := BuildPlanRequest(SubscriptionInput{Title: "Basic", Amount: 29.9, Cycle: "monthly"}, RequestDefaults{SubscriptionURL: "https://shop/sub"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.AutoRecurring.Frequency != 1 || payload.AutoRecurring.FrequencyType != "months" {
			t.Fatalf("unexpected recurring: %+v", payload.AutoRecurring)
		}
		if len(payload.PaymentMethodsAllowed.PaymentTypes) != 2 {
			t.Fatalf("expected card types only, got %+v", payload.PaymentMethodsAllowed)
		}
		if payload.BackURL != "https://shop/sub" {
			t.Fatalf("expected back url, got %q", payload.BackURL)
		}
	})

	t.Run("annual", func(t *testing.T) {
		payload, err := BuildPlanRequest(SubscriptionInput{Title: "Basic", Amount: 299, Cycle: "ANNUAL"}, RequestDefaults{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.AutoRecurring.Frequency != 12 {
			t.Fatalf("expected frequency 12, got %d", payload.AutoRecurring.Frequency)
		}
	})

	t.Run("unknown cycle", func(t *testing.T) {
		_, err := BuildPlanRequest(SubscriptionInput{Title: "Basic", Amount: 1, Cycle: "weekly"}, RequestDefaults{})
		if !errors.Is(err, pkg.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestBuildSubscriptionRequest(t *testing.T) {
	in := SubscriptionInput{Title: "Basic", Amount: 29.9, Cycle: "monthly", PayerEmail: "a@b.com", ExternalReference: "acc-1"}

	payload, err := BuildSubscriptionRequest("plan-1", in, RequestDefaults{}, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.PreapprovalPlanID != "plan-1" || payload.Status != "authorized" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.AutoRecurring == nil || payload.AutoRecurring.StartDate == nil || payload.AutoRecurring.EndDate == nil {
		t.Fatalf("expected recurring dates, got %+v", payload.AutoRecurring)
	}
	if !payload.AutoRecurring.StartDate.Equal(fixedNow) {
		t.Fatalf("unexpected start date %s", payload.AutoRecurring.StartDate)
	}
	if !payload.AutoRecurring.EndDate.Equal(fixedNow.AddDate(1, 0, 0)) {
		t.Fatalf("unexpected end date %s", payload.AutoRecurring.EndDate)
	}

	if _, err := BuildSubscriptionRequest(" ", in, RequestDefaults{}, fixedNow); !errors.Is(err, pkg.ErrValidation) {
		t.Fatalf("expected validation error for empty plan id, got %v", err)
	}
}

func TestValidateSubscriptionInput(t *testing.T) {
	if err := ValidateSubscriptionInput(SubscriptionInput{Title: "Basic", Amount: 1, PayerEmail: "a@b.com", ExternalReference: "r"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateSubscriptionInput(SubscriptionInput{Title: "Basic", Amount: 1, PayerEmail: "not-an-email", ExternalReference: "r"}); !errors.Is(err, pkg.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
