package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ecoscrap.backend/internal/config"
	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/domain/repositories"
)

var pickupNow = time.Now

// PickupUsecase handles scrap pickup scheduling business logic
type PickupUsecase struct {
	pickupRepo repositories.PickupRepository
	rateRepo   repositories.RateRepository
	userRepo   repositories.UserRepository
	pricing    config.PricingConfig
}

// NewPickupUsecase creates a new pickup usecase
func NewPickupUsecase(
	pickupRepo repositories.PickupRepository,
	rateRepo repositories.RateRepository,
	userRepo repositories.UserRepository,
	pricing config.PricingConfig,
) *PickupUsecase {
	return &PickupUsecase{
		pickupRepo: pickupRepo,
		rateRepo:   rateRepo,
		userRepo:   userRepo,
		pricing:    pricing,
	}
}

// Estimate calculates the scrap value for a material and weight. Unknown
// materials are a hard 404 here, unlike pickup creation which degrades to a
// zero estimate.
func (u *PickupUsecase) Estimate(ctx context.Context, input *entities.EstimateInput) (*entities.Estimate, error) {
	rate, err := u.rateRepo.GetByMaterial(ctx, input.Material)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnknownMaterial
		}
		return nil, err
	}

	bonus := 0.0
	if input.Weight >= u.pricing.BulkBonusThresholdKg {
		bonus = u.pricing.BulkBonusAmount
	}

	return &entities.Estimate{
		Material:       input.Material,
		Weight:         input.Weight,
		RatePerKg:      rate.RatePerKg,
		BulkBonus:      bonus,
		EstimatedValue: rate.RatePerKg*input.Weight + bonus,
	}, nil
}

// Create schedules a pickup for the user
func (u *PickupUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreatePickupInput) (*entities.Pickup, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, domainerrors.NewError("date must be YYYY-MM-DD", domainerrors.ErrBadRequest)
	}

	estimated := 0.0
	if est, err := u.Estimate(ctx, &entities.EstimateInput{Material: input.Material, Weight: input.Weight}); err == nil {
		estimated = est.EstimatedValue
	} else if !errors.Is(err, domainerrors.ErrUnknownMaterial) {
		return nil, err
	}

	now := pickupNow()
	pickup := &entities.Pickup{
		ID:             timestampID("PU", now),
		UserEmail:      user.Email,
		UserName:       user.Name,
		Material:       input.Material,
		Weight:         input.Weight,
		Date:           date,
		Time:           input.Time,
		Address:        input.Address,
		EstimatedValue: estimated,
		Status:         entities.PickupStatusScheduled,
		BookedDate:     now,
	}

	if err := u.pickupRepo.Create(ctx, pickup); err != nil {
		return nil, err
	}
	return pickup, nil
}

// List lists pickups scoped by role: customers see their own bookings,
// dealers and admins see everything.
func (u *PickupUsecase) List(ctx context.Context, userEmail string, role entities.UserRole) ([]*entities.Pickup, error) {
	if role == entities.UserRoleCustomer {
		return u.pickupRepo.ListByUser(ctx, userEmail)
	}
	return u.pickupRepo.List(ctx)
}

// UpdateStatus updates a pickup's status. Only the booking user or an admin
// may change it.
func (u *PickupUsecase) UpdateStatus(ctx context.Context, actorEmail string, actorRole entities.UserRole, id string, status entities.PickupStatus) (*entities.Pickup, error) {
	pickup, err := u.pickupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != entities.UserRoleAdmin && pickup.UserEmail != actorEmail {
		return nil, domainerrors.ErrForbidden
	}

	if err := u.pickupRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	pickup.Status = status
	return pickup, nil
}
