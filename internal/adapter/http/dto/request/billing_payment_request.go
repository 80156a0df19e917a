package request

import (
	"billing_gateway/internal/usecase"
	"strings"
)

type PayerRequest struct {
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
}

func (p PayerRequest) toInput() usecase.PayerInput {
	return usecase.PayerInput{
		Email:          p.Email,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DocumentType:   strings.ToUpper(strings.TrimSpace(p.DocumentType)),
		DocumentNumber: p.DocumentNumber,
	}
}

type BackURLsRequest struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest is the body of POST /v1/checkout/preferences.
//
// Field validation (amount, email, external reference) is left to the use
// case so the caller gets the offending field name back.
type PreferenceRequest struct {
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Amount            float64          `json:"amount"`
	Installments      int              `json:"installments" binding:"gte=0"`
	Payer             PayerRequest     `json:"payer"`
	ExternalReference string           `json:"external_reference"`
	BackURLs          *BackURLsRequest `json:"back_urls"`
}

func (r PreferenceRequest) ToInput() usecase.PreferenceInput {
	in := usecase.PreferenceInput{
		Title:             r.Title,
		Description:       r.Description,
		Amount:            r.Amount,
		Installments:      r.Installments,
		Payer:             r.Payer.toInput(),
		ExternalReference: r.ExternalReference,
	}
	if r.BackURLs != nil {
		in.BackURLs = usecase.BackURLs{
			Success: r.BackURLs.Success,
			Failure: r.BackURLs.Failure,
			Pending: r.BackURLs.Pending,
		}
	}
	return in
}

// PixPaymentRequest is the body of POST /v1/payments/pix.
type PixPaymentRequest struct {
	Amount            float64      `json:"amount"`
	Description       string       `json:"description"`
	Payer             PayerRequest `json:"payer"`
	ExternalReference string       `json:"external_reference"`
}

func (r PixPaymentRequest) ToInput() usecase.PixPaymentInput {
	return usecase.PixPaymentInput{
		Amount:            r.Amount,
		Description:       r.Description,
		Payer:             r.Payer.toInput(),
		ExternalReference: r.ExternalReference,
	}
}
