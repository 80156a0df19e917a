package interfaces

import (
	"billing_gateway/internal/domain/entities"
	"context"
)

// ISubscriptionSnapshotRepository persists reconciled subscription snapshots
// with upsert-by-id semantics.

type ISubscriptionSnapshotRepository interface {
	Upsert(ctx context.Context, s entities.SubscriptionSnapshot) (entities.SubscriptionSnapshot, error)
	GetByID(ctx context.Context, id string) (entities.SubscriptionSnapshot, error)
}
