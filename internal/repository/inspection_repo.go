package repository

import (
	"context"

	"attareports/internal/domain"

	"gorm.io/gorm"
)

type InspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) CreateCategory(ctx context.Context, c *domain.InspectionCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *InspectionRepository) GetCategoryByID(ctx context.Context, id int64) (*domain.InspectionCategory, error) {
	var c domain.InspectionCategory
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *InspectionRepository) CategoryExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.InspectionCategory{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// GetActiveCategories returns active categories in catalog order.
func (r *InspectionRepository) GetActiveCategories(ctx context.Context) ([]domain.InspectionCategory, error) {
	var categories []domain.InspectionCategory
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("order_index").
		Find(&categories).Error
	return categories, err
}

func (r *InspectionRepository) CreateItem(ctx context.Context, item *domain.InspectionItemTemplate) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *InspectionRepository) GetActiveItemsByCategory(ctx context.Context, categoryID int64) ([]domain.InspectionItemTemplate, error) {
	var items []domain.InspectionItemTemplate
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("order_index").
		Find(&items).Error
	return items, err
}

func (r *InspectionRepository) GetAllActiveItems(ctx context.Context) ([]domain.InspectionItemTemplate, error) {
	var items []domain.InspectionItemTemplate
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category_id, order_index").
		Find(&items).Error
	return items, err
}

func (r *InspectionRepository) CreateOperationPoint(ctx context.Context, t *domain.OperationPointTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *InspectionRepository) GetActiveOperationPoints(ctx context.Context) ([]domain.OperationPointTemplate, error) {
	var templates []domain.OperationPointTemplate
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("order_index").
		Find(&templates).Error
	return templates, err
}
