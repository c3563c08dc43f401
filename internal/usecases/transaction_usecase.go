package usecases

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"ecoscrap.backend/internal/config"
	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/domain/repositories"
)

var transactionNow = time.Now

// TransactionUsecase handles order business logic
type TransactionUsecase struct {
	txnRepo     repositories.TransactionRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	uow         repositories.UnitOfWork
	pricing     config.PricingConfig
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(
	txnRepo repositories.TransactionRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	pricing config.PricingConfig,
) *TransactionUsecase {
	return &TransactionUsecase{
		txnRepo:     txnRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		uow:         uow,
		pricing:     pricing,
	}
}

// Create places an order. Line prices come from the stored listings, never
// from the client. The order row and every stock decrement commit together or
// not at all.
func (u *TransactionUsecase) Create(ctx context.Context, customerID uuid.UUID, input *entities.CreateTransactionInput) (*entities.Transaction, error) {
	customer, err := u.userRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.TransactionItem, 0, len(input.Items))
	subtotal := 0.0
	for _, line := range input.Items {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, domainerrors.NewError("invalid product id: "+line.ProductID, domainerrors.ErrBadRequest)
		}

		product, err := u.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product.Status != entities.ProductStatusApproved {
			return nil, domainerrors.NewError("product is not available: "+product.Name, domainerrors.ErrBadRequest)
		}
		if product.Stock < line.Quantity {
			return nil, domainerrors.ErrInsufficientStock
		}

		items = append(items, entities.TransactionItem{
			ProductID: product.ID.String(),
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
		subtotal += product.Price * float64(line.Quantity)
	}

	amount := math.Round(subtotal*(1+u.pricing.TaxPercent/100)*100) / 100

	status := entities.TransactionStatusCompleted
	if input.PaymentMethod == entities.PaymentMethodCOD {
		status = entities.TransactionStatusPending
	}

	txn := &entities.Transaction{
		ID:            timestampID("TXN", transactionNow()),
		CustomerEmail: customer.Email,
		CustomerName:  customer.Name,
		DealerEmail:   input.DealerEmail,
		Items:         items,
		Amount:        amount,
		PaymentMethod: input.PaymentMethod,
		Address:       input.Address,
		Status:        status,
		Timestamp:     transactionNow(),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.txnRepo.Create(txCtx, txn); err != nil {
			return err
		}
		for _, item := range txn.Items {
			productID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return domainerrors.ErrInvalidInput
			}
			if err := u.productRepo.DecrementStock(txCtx, productID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// List lists orders scoped by role: customers see orders they placed, dealers
// see orders they received, admins see everything.
func (u *TransactionUsecase) List(ctx context.Context, userEmail string, role entities.UserRole) ([]*entities.Transaction, error) {
	switch role {
	case entities.UserRoleCustomer:
		return u.txnRepo.ListByCustomer(ctx, userEmail)
	case entities.UserRoleDealer:
		return u.txnRepo.ListByDealer(ctx, userEmail)
	default:
		return u.txnRepo.List(ctx)
	}
}
