package repositories

import (
	"context"
	"time"

	"ecoscrap.backend/internal/domain/entities"
)

// PickupRepository defines pickup data operations
type PickupRepository interface {
	Create(ctx context.Context, pickup *entities.Pickup) error
	GetByID(ctx context.Context, id string) (*entities.Pickup, error)
	UpdateStatus(ctx context.Context, id string, status entities.PickupStatus) error
	List(ctx context.Context) ([]*entities.Pickup, error)
	ListByUser(ctx context.Context, userEmail string) ([]*entities.Pickup, error)
	Count(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userEmail string) (int64, error)
	// GetStaleScheduled returns pickups still scheduled whose date is before
	// the cutoff, capped at limit.
	GetStaleScheduled(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Pickup, error)
	// CancelBatch marks the given pickups cancelled.
	CancelBatch(ctx context.Context, ids []string) error
}
