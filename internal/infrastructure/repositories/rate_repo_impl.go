package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/infrastructure/models"
	"ecoscrap.backend/pkg/utils"
)

// RateRepository implements material rate operations
type RateRepository struct {
	db *gorm.DB
}

// NewRateRepository creates a new rate repository
func NewRateRepository(db *gorm.DB) *RateRepository {
	return &RateRepository{db: db}
}

// GetByMaterial gets the current rate for a material
func (r *RateRepository) GetByMaterial(ctx context.Context, material string) (*entities.Rate, error) {
	var m models.Rate
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("material = ?", material).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return rateToEntity(&m), nil
}

// List lists the rates of all materials
func (r *RateRepository) List(ctx context.Context) ([]*entities.Rate, error) {
	var rateModels []models.Rate
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("material ASC").Find(&rateModels).Error; err != nil {
		return nil, err
	}

	rates := make([]*entities.Rate, 0, len(rateModels))
	for i := range rateModels {
		rates = append(rates, rateToEntity(&rateModels[i]))
	}
	return rates, nil
}

// Upsert creates the rate row for a material or updates it in place
func (r *RateRepository) Upsert(ctx context.Context, rate *entities.Rate) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Rate{}).Where("material = ?", rate.Material).Updates(map[string]interface{}{
		"rate_per_kg": rate.RatePerKg,
		"trend":       string(rate.Trend),
		"icon":        rate.Icon,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if rate.ID == uuid.Nil {
		rate.ID = utils.GenerateUUIDv7()
	}
	m := &models.Rate{
		ID:        rate.ID,
		Material:  rate.Material,
		RatePerKg: rate.RatePerKg,
		Trend:     string(rate.Trend),
		Icon:      rate.Icon,
	}
	return db.Create(m).Error
}

func rateToEntity(m *models.Rate) *entities.Rate {
	return &entities.Rate{
		ID:        m.ID,
		Material:  m.Material,
		RatePerKg: m.RatePerKg,
		Trend:     entities.RateTrend(m.Trend),
		Icon:      m.Icon,
	}
}
