package usecases

import (
	"context"

	"ecoscrap.backend/internal/domain/entities"
	"ecoscrap.backend/internal/domain/repositories"
)

// DashboardUsecase aggregates role-specific stats
type DashboardUsecase struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	pickupRepo  repositories.PickupRepository
	txnRepo     repositories.TransactionRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	pickupRepo repositories.PickupRepository,
	txnRepo repositories.TransactionRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		userRepo:    userRepo,
		productRepo: productRepo,
		pickupRepo:  pickupRepo,
		txnRepo:     txnRepo,
	}
}

// AdminStats returns platform-wide totals
func (u *DashboardUsecase) AdminStats(ctx context.Context) (*entities.AdminStats, error) {
	users, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := u.productRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := u.txnRepo.SumAmount(ctx)
	if err != nil {
		return nil, err
	}
	pickups, err := u.pickupRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.AdminStats{
		TotalUsers:     users,
		TotalProducts:  products,
		TotalRevenue:   revenue,
		PickupRequests: pickups,
	}, nil
}

// DealerStats returns the dealer's listing and order totals
func (u *DashboardUsecase) DealerStats(ctx context.Context, dealerEmail string) (*entities.DealerStats, error) {
	products, err := u.productRepo.CountByDealer(ctx, dealerEmail, "")
	if err != nil {
		return nil, err
	}
	pending, err := u.productRepo.CountByDealer(ctx, dealerEmail, entities.ProductStatusPending)
	if err != nil {
		return nil, err
	}
	earnings, err := u.txnRepo.SumAmountByDealer(ctx, dealerEmail)
	if err != nil {
		return nil, err
	}
	orders, err := u.txnRepo.CountByDealer(ctx, dealerEmail)
	if err != nil {
		return nil, err
	}

	return &entities.DealerStats{
		TotalProducts:   products,
		TotalEarnings:   earnings,
		PendingApproval: pending,
		OrdersReceived:  orders,
	}, nil
}

// CustomerStats returns the customer's pickup and order totals
func (u *DashboardUsecase) CustomerStats(ctx context.Context, customerEmail string) (*entities.CustomerStats, error) {
	pickups, err := u.pickupRepo.CountByUser(ctx, customerEmail)
	if err != nil {
		return nil, err
	}
	orders, err := u.txnRepo.CountByCustomer(ctx, customerEmail)
	if err != nil {
		return nil, err
	}
	spent, err := u.txnRepo.SumAmountByCustomer(ctx, customerEmail)
	if err != nil {
		return nil, err
	}

	return &entities.CustomerStats{
		TotalPickups: pickups,
		TotalOrders:  orders,
		TotalSpent:   spent,
	}, nil
}
