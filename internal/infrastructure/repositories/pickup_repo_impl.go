package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/infrastructure/models"
)

// PickupRepository implements pickup data operations
type PickupRepository struct {
	db *gorm.DB
}

// NewPickupRepository creates a new pickup repository
func NewPickupRepository(db *gorm.DB) *PickupRepository {
	return &PickupRepository{db: db}
}

// Create creates a new pickup request
func (r *PickupRepository) Create(ctx context.Context, pickup *entities.Pickup) error {
	m := &models.Pickup{
		ID:             pickup.ID,
		UserEmail:      pickup.UserEmail,
		UserName:       pickup.UserName,
		Material:       pickup.Material,
		Weight:         pickup.Weight,
		Date:           pickup.Date,
		Time:           pickup.Time,
		Address:        pickup.Address,
		EstimatedValue: pickup.EstimatedValue,
		Status:         string(pickup.Status),
		BookedDate:     pickup.BookedDate,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a pickup by ID
func (r *PickupRepository) GetByID(ctx context.Context, id string) (*entities.Pickup, error) {
	var m models.Pickup
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return pickupToEntity(&m), nil
}

// UpdateStatus updates a pickup's status
func (r *PickupRepository) UpdateStatus(ctx context.Context, id string, status entities.PickupStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Pickup{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all pickups, newest booking first
func (r *PickupRepository) List(ctx context.Context) ([]*entities.Pickup, error) {
	var pickupModels []models.Pickup
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("booked_date DESC").Find(&pickupModels).Error; err != nil {
		return nil, err
	}
	return pickupsToEntities(pickupModels), nil
}

// ListByUser lists pickups booked by a user
func (r *PickupRepository) ListByUser(ctx context.Context, userEmail string) ([]*entities.Pickup, error) {
	var pickupModels []models.Pickup
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_email = ?", userEmail).Order("booked_date DESC").Find(&pickupModels).Error; err != nil {
		return nil, err
	}
	return pickupsToEntities(pickupModels), nil
}

// Count returns the number of pickups
func (r *PickupRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Pickup{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByUser returns the number of pickups booked by a user
func (r *PickupRepository) CountByUser(ctx context.Context, userEmail string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Pickup{}).Where("user_email = ?", userEmail).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetStaleScheduled returns scheduled pickups dated before the cutoff
func (r *PickupRepository) GetStaleScheduled(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Pickup, error) {
	var pickupModels []models.Pickup
	query := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ? AND date < ?", string(entities.PickupStatusScheduled), cutoff).
		Order("date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&pickupModels).Error; err != nil {
		return nil, err
	}
	return pickupsToEntities(pickupModels), nil
}

// CancelBatch marks the given pickups cancelled
func (r *PickupRepository) CancelBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.Pickup{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     string(entities.PickupStatusCancelled),
			"updated_at": time.Now(),
		}).Error
}

func pickupsToEntities(pickupModels []models.Pickup) []*entities.Pickup {
	pickups := make([]*entities.Pickup, 0, len(pickupModels))
	for i := range pickupModels {
		pickups = append(pickups, pickupToEntity(&pickupModels[i]))
	}
	return pickups
}

func pickupToEntity(m *models.Pickup) *entities.Pickup {
	return &entities.Pickup{
		ID:             m.ID,
		UserEmail:      m.UserEmail,
		UserName:       m.UserName,
		Material:       m.Material,
		Weight:         m.Weight,
		Date:           m.Date,
		Time:           m.Time,
		Address:        m.Address,
		EstimatedValue: m.EstimatedValue,
		Status:         entities.PickupStatus(m.Status),
		BookedDate:     m.BookedDate,
	}
}
