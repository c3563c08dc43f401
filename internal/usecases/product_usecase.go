package usecases

import (
	"context"

	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/domain/repositories"
	"ecoscrap.backend/pkg/utils"
)

// ProductUsecase handles marketplace listing business logic
type ProductUsecase struct {
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository, userRepo repositories.UserRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Create creates a listing for the dealer. New listings always start pending
// and only show up in the public catalog after admin approval.
func (u *ProductUsecase) Create(ctx context.Context, dealerID uuid.UUID, input *entities.CreateProductInput) (*entities.Product, error) {
	dealer, err := u.userRepo.GetByID(ctx, dealerID)
	if err != nil {
		return nil, err
	}

	product := &entities.Product{
		ID:          utils.GenerateUUIDv7(),
		DealerEmail: dealer.Email,
		DealerName:  dealer.Name,
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Description: input.Description,
		Status:      entities.ProductStatusPending,
		Stock:       input.Stock,
		Image:       input.Image,
	}
	if dealer.BusinessName.Valid {
		product.DealerName = dealer.BusinessName.String
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID gets a listing by ID
func (u *ProductUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// List lists listings for the catalog. Non-admin callers only see approved
// listings unless they explicitly filter.
func (u *ProductUsecase) List(ctx context.Context, filter entities.ProductFilter, role entities.UserRole) ([]*entities.Product, int64, error) {
	if filter.Status == "" && role != entities.UserRoleAdmin {
		filter.Status = string(entities.ProductStatusApproved)
	}
	return u.productRepo.List(ctx, filter)
}

// Update updates a listing. Only the owning dealer or an admin may touch it.
func (u *ProductUsecase) Update(ctx context.Context, actorEmail string, actorRole entities.UserRole, id uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != entities.UserRoleAdmin && product.DealerEmail != actorEmail {
		return nil, domainerrors.ErrForbidden
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Image != nil {
		product.Image = *input.Image
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a listing. Only the owning dealer or an admin may do it.
func (u *ProductUsecase) Delete(ctx context.Context, actorEmail string, actorRole entities.UserRole, id uuid.UUID) error {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actorRole != entities.UserRoleAdmin && product.DealerEmail != actorEmail {
		return domainerrors.ErrForbidden
	}
	return u.productRepo.SoftDelete(ctx, id)
}

// SetStatus flips the approval status of a listing (admin workflow)
func (u *ProductUsecase) SetStatus(ctx context.Context, id uuid.UUID, status entities.ProductStatus) (*entities.Product, error) {
	if err := u.productRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.productRepo.GetByID(ctx, id)
}
