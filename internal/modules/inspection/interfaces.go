package inspection

import (
	"context"

	"attareports/internal/domain"
)

type InspectionRepositoryInterface interface {
	CreateCategory(ctx context.Context, c *domain.InspectionCategory) error
	GetCategoryByID(ctx context.Context, id int64) (*domain.InspectionCategory, error)
	CategoryExistsByName(ctx context.Context, name string) (bool, error)
	GetActiveCategories(ctx context.Context) ([]domain.InspectionCategory, error)
	CreateItem(ctx context.Context, item *domain.InspectionItemTemplate) error
	GetActiveItemsByCategory(ctx context.Context, categoryID int64) ([]domain.InspectionItemTemplate, error)
	GetAllActiveItems(ctx context.Context) ([]domain.InspectionItemTemplate, error)
	CreateOperationPoint(ctx context.Context, t *domain.OperationPointTemplate) error
	GetActiveOperationPoints(ctx context.Context) ([]domain.OperationPointTemplate, error)
}
