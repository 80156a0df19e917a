package interfaces

import (
	"billing_gateway/internal/domain/entities"
	"context"
)

// IPaymentSnapshotRepository persists reconciled payment snapshots.
//
// Upsert replaces the stored snapshot with the same id. Concurrent upserts for
// the same id must be serialized by the caller.

type IPaymentSnapshotRepository interface {
	Upsert(ctx context.Context, p entities.PaymentSnapshot) (entities.PaymentSnapshot, error)
	GetByID(ctx context.Context, id string) (entities.PaymentSnapshot, error)
	ListByExternalReference(ctx context.Context, externalReference string) ([]entities.PaymentSnapshot, error)
}
