package entities

// PreferenceCreated is returned after a checkout preference is created.
type PreferenceCreated struct {
	ID                string `json:"id"`
	InitPoint         string `json:"init_point"`
	SandboxInitPoint  string `json:"sandbox_init_point,omitempty"`
	ExternalReference string `json:"external_reference"`
}

// PixPaymentCreated carries the payment snapshot plus the data the payer needs
// to complete the transfer.
type PixPaymentCreated struct {
	Payment      PaymentSnapshot `json:"payment"`
	QRCode       string          `json:"qr_code,omitempty"`
	QRCodeBase64 string          `json:"qr_code_base64,omitempty"`
	TicketURL    string          `json:"ticket_url,omitempty"`
}

type SnapshotKind string

const (
	SnapshotKindPayment      SnapshotKind = "payment"
	SnapshotKindSubscription SnapshotKind = "subscription"
)

// SnapshotEvent is published after a reconciled snapshot has been persisted.
type SnapshotEvent struct {
	Kind              SnapshotKind `json:"kind"`
	ResourceID        string       `json:"resource_id"`
	ExternalReference string       `json:"external_reference"`
	Status            string       `json:"status"`
	RawStatus         string       `json:"raw_status"`
}
