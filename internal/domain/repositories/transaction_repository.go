package repositories

import (
	"context"

	"ecoscrap.backend/internal/domain/entities"
)

// TransactionRepository defines order data operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *entities.Transaction) error
	GetByID(ctx context.Context, id string) (*entities.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status entities.TransactionStatus) error
	List(ctx context.Context) ([]*entities.Transaction, error)
	ListByCustomer(ctx context.Context, customerEmail string) ([]*entities.Transaction, error)
	ListByDealer(ctx context.Context, dealerEmail string) ([]*entities.Transaction, error)
	SumAmount(ctx context.Context) (float64, error)
	SumAmountByCustomer(ctx context.Context, customerEmail string) (float64, error)
	SumAmountByDealer(ctx context.Context, dealerEmail string) (float64, error)
	CountByCustomer(ctx context.Context, customerEmail string) (int64, error)
	CountByDealer(ctx context.Context, dealerEmail string) (int64, error)
}
