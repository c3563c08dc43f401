package repositories

import (
	"context"

	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
)

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProductStatus) error
	// DecrementStock subtracts quantity from stock, failing with
	// ErrInsufficientStock when not enough units remain.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountByDealer(ctx context.Context, dealerEmail string, status entities.ProductStatus) (int64, error)
}
