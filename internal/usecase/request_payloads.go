package usecase

// Caller-supplied inputs.

type PayerInput struct {
	Email          string
	FirstName      string
	LastName       string
	DocumentType   string
	DocumentNumber string
}

type PreferenceInput struct {
	Title             string
	Description       string
	Amount            float64
	Installments      int
	Payer             PayerInput
	ExternalReference string
	BackURLs          BackURLs
}

type PixPaymentInput struct {
	Amount            float64
	Description       string
	Payer             PayerInput
	ExternalReference string
}

type SubscriptionInput struct {
	Title             string
	Amount            float64
	Cycle             string
	PayerEmail        string
	ExternalReference string
	CardTokenID       string
}

// RequestDefaults carries the process-wide values the builders fill in when
// the caller leaves them empty.
type RequestDefaults struct {
	BackURLs        BackURLs
	NotificationURL string
	SubscriptionURL string
}

type BackURLs struct {
	Success string
	Failure string
	Pending string
}
