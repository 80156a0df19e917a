package request

import (
	"testing"
)

func TestPreferenceRequest_ToInput(t *testing.T) {
	r := PreferenceRequest{
		Title:             "Plan",
		Amount:            100,
		Installments:      3,
		Payer:             PayerRequest{Email: "a@b.com", DocumentType: " cnpj ", DocumentNumber: "123"},
		ExternalReference: "ord-1",
		BackURLs:          &BackURLsRequest{Success: "https://s"},
	}

	in := r.ToInput()
	if in.Title != "Plan" || in.Amount != 100 || in.Installments != 3 || in.ExternalReference != "ord-1" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Payer.DocumentType != "CNPJ" || in.Payer.DocumentNumber != "123" {
		t.Fatalf("unexpected payer: %+v", in.Payer)
	}
	if in.BackURLs.Success != "https://s" || in.BackURLs.Failure != "" {
		t.Fatalf("unexpected back urls: %+v", in.BackURLs)
	}

	if got := (PreferenceRequest{}).ToInput(); got.BackURLs.Success != "" {
		t.Fatalf("expected empty back urls, got %+v", got.BackURLs)
	}
}

func TestPixPaymentRequest_ToInput(t *testing.T) {
	in := PixPaymentRequest{Amount: 50.5, Payer: PayerRequest{Email: "a@b.com"}, ExternalReference: "ord-1"}.ToInput()
	if in.Amount != 50.5 || in.Payer.Email != "a@b.com" || in.ExternalReference != "ord-1" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestSubscriptionRequest_ToInput(t *testing.T) {
	in := SubscriptionRequest{Title: "Pro", Amount: 29.9, Cycle: " ANNUAL ", PayerEmail: "a@b.com"}.ToInput()
	if in.Cycle != "annual" {
		t.Fatalf("expected normalized cycle, got %q", in.Cycle)
	}
	if in.Title != "Pro" || in.PayerEmail != "a@b.com" {
		t.Fatalf("unexpected input: %+v", in)
	}
}
