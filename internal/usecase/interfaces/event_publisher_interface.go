package interfaces

import (
	"billing_gateway/internal/domain/entities"
	"context"
)

// IEventPublisher announces persisted snapshots to downstream consumers.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.SnapshotEvent) error
}
