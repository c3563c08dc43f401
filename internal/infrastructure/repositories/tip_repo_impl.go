package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/infrastructure/models"
)

// TipRepository implements educational content operations
type TipRepository struct {
	db *gorm.DB
}

// NewTipRepository creates a new tip repository
func NewTipRepository(db *gorm.DB) *TipRepository {
	return &TipRepository{db: db}
}

// Create creates a new tip
func (r *TipRepository) Create(ctx context.Context, tip *entities.Tip) error {
	m := &models.Tip{
		ID:          tip.ID,
		Title:       tip.Title,
		Description: tip.Description,
		Category:    tip.Category,
		Icon:        tip.Icon,
		Impact:      tip.Impact,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a tip by ID
func (r *TipRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Tip, error) {
	var m models.Tip
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tipToEntity(&m), nil
}

// Update updates a tip
func (r *TipRepository) Update(ctx context.Context, tip *entities.Tip) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Tip{}).Where("id = ?", tip.ID).Updates(map[string]interface{}{
		"title":       tip.Title,
		"description": tip.Description,
		"category":    tip.Category,
		"icon":        tip.Icon,
		"impact":      tip.Impact,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a tip
func (r *TipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Tip{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists tips, optionally narrowed to a category
func (r *TipRepository) List(ctx context.Context, category string) ([]*entities.Tip, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Order("title ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var tipModels []models.Tip
	if err := query.Find(&tipModels).Error; err != nil {
		return nil, err
	}

	tips := make([]*entities.Tip, 0, len(tipModels))
	for i := range tipModels {
		tips = append(tips, tipToEntity(&tipModels[i]))
	}
	return tips, nil
}

func tipToEntity(m *models.Tip) *entities.Tip {
	return &entities.Tip{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Icon:        m.Icon,
		Impact:      m.Impact,
	}
}
