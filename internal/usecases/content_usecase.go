package usecases

import (
	"context"

	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
	"ecoscrap.backend/internal/domain/repositories"
	"ecoscrap.backend/pkg/utils"
)

// ContentUsecase handles material rates and recycling tips
type ContentUsecase struct {
	rateRepo repositories.RateRepository
	tipRepo  repositories.TipRepository
}

// NewContentUsecase creates a new content usecase
func NewContentUsecase(rateRepo repositories.RateRepository, tipRepo repositories.TipRepository) *ContentUsecase {
	return &ContentUsecase{
		rateRepo: rateRepo,
		tipRepo:  tipRepo,
	}
}

// ListRates lists all material rates
func (u *ContentUsecase) ListRates(ctx context.Context) ([]*entities.Rate, error) {
	return u.rateRepo.List(ctx)
}

// UpdateRates bulk upserts rates and returns the full board afterwards
func (u *ContentUsecase) UpdateRates(ctx context.Context, updates []entities.RateUpdate) ([]*entities.Rate, error) {
	for _, upd := range updates {
		rate := &entities.Rate{
			Material:  upd.Material,
			RatePerKg: upd.RatePerKg,
			Trend:     entities.RateTrend(upd.Trend),
			Icon:      upd.Icon,
		}
		if rate.Trend == "" {
			rate.Trend = entities.RateTrendStable
		}
		if err := u.rateRepo.Upsert(ctx, rate); err != nil {
			return nil, err
		}
	}
	return u.rateRepo.List(ctx)
}

// ListTips lists tips, optionally filtered by category
func (u *ContentUsecase) ListTips(ctx context.Context, category string) ([]*entities.Tip, error) {
	return u.tipRepo.List(ctx, category)
}

// CreateTip creates a tip
func (u *ContentUsecase) CreateTip(ctx context.Context, input *entities.TipInput) (*entities.Tip, error) {
	tip := &entities.Tip{
		ID:          utils.GenerateUUIDv7(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Icon:        input.Icon,
		Impact:      input.Impact,
	}
	if err := u.tipRepo.Create(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// UpdateTip updates a tip
func (u *ContentUsecase) UpdateTip(ctx context.Context, id uuid.UUID, input *entities.TipInput) (*entities.Tip, error) {
	tip, err := u.tipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tip.Title = input.Title
	tip.Description = input.Description
	tip.Category = input.Category
	tip.Icon = input.Icon
	tip.Impact = input.Impact

	if err := u.tipRepo.Update(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// DeleteTip deletes a tip
func (u *ContentUsecase) DeleteTip(ctx context.Context, id uuid.UUID) error {
	return u.tipRepo.Delete(ctx, id)
}
