package usecases

import (
	"context"

	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/domain/repositories"
)

// AdminUsecase handles user moderation
type AdminUsecase struct {
	userRepo repositories.UserRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(userRepo repositories.UserRepository) *AdminUsecase {
	return &AdminUsecase{userRepo: userRepo}
}

// ListUsers lists users with an optional search filter
func (u *AdminUsecase) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, search)
}

// UpdateUser applies status and/or role changes to a user
func (u *AdminUsecase) UpdateUser(ctx context.Context, id uuid.UUID, input *entities.AdminUpdateUserInput) (*entities.User, error) {
	if input.Status == nil && input.Role == nil {
		return nil, domainerrors.NewError("nothing to update", domainerrors.ErrBadRequest)
	}

	var status *entities.UserStatus
	if input.Status != nil {
		s := entities.UserStatus(*input.Status)
		status = &s
	}
	var role *entities.UserRole
	if input.Role != nil {
		r := entities.UserRole(*input.Role)
		role = &r
	}

	if err := u.userRepo.UpdateModeration(ctx, id, status, role); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, id)
}

// DeleteUser soft deletes a user account
func (u *AdminUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return u.userRepo.SoftDelete(ctx, id)
}
