package repositories

import (
	"context"

	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
)

// RateRepository defines material rate operations
type RateRepository interface {
	GetByMaterial(ctx context.Context, material string) (*entities.Rate, error)
	List(ctx context.Context) ([]*entities.Rate, error)
	// Upsert creates the rate row for a material or updates it in place.
	Upsert(ctx context.Context, rate *entities.Rate) error
}

// TipRepository defines educational content operations
type TipRepository interface {
	Create(ctx context.Context, tip *entities.Tip) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Tip, error)
	Update(ctx context.Context, tip *entities.Tip) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category string) ([]*entities.Tip, error)
}
