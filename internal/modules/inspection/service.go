package inspection

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"attareports/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	templates InspectionRepositoryInterface
}

func NewService(templates InspectionRepositoryInterface) *Service {
	return &Service{templates: templates}
}

func isAdmin(role string) bool {
	return role == string(domain.RoleAdmin)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.InspectionCategory, error) {
	return s.templates.GetActiveCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, actorRole string, req CreateCategoryRequest) (*domain.InspectionCategory, error) {
	if !isAdmin(actorRole) {
		return nil, ErrForbidden
	}
	name := strings.TrimSpace(req.Name)
	exists, err := s.templates.CategoryExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateCategory
	}
	category := &domain.InspectionCategory{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		OrderIndex:  req.OrderIndex,
		IsActive:    true,
	}
	if err := s.templates.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListItems(ctx context.Context, categoryID int64) ([]domain.InspectionItemTemplate, error) {
	if _, err := s.getCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.templates.GetActiveItemsByCategory(ctx, categoryID)
}

// ListAllItems returns every active item across categories in catalog order.
func (s *Service) ListAllItems(ctx context.Context) ([]domain.InspectionItemTemplate, error) {
	return s.templates.GetAllActiveItems(ctx)
}

func (s *Service) CreateItem(ctx context.Context, actorRole string, categoryID int64, req CreateItemRequest) (*domain.InspectionItemTemplate, error) {
	if !isAdmin(actorRole) {
		return nil, ErrForbidden
	}
	if _, err := s.getCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	item := &domain.InspectionItemTemplate{
		CategoryID:  categoryID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		OrderIndex:  req.OrderIndex,
		IsActive:    true,
	}
	if err := s.templates.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) ListOperationPoints(ctx context.Context) ([]domain.OperationPointTemplate, error) {
	return s.templates.GetActiveOperationPoints(ctx)
}

func (s *Service) CreateOperationPoint(ctx context.Context, actorRole string, req CreateOperationPointRequest) (*domain.OperationPointTemplate, error) {
	if !isAdmin(actorRole) {
		return nil, ErrForbidden
	}
	switch req.FieldType {
	case "number", "select", "text":
	default:
		return nil, ErrInvalidFieldType
	}
	point := &domain.OperationPointTemplate{
		Name:            strings.TrimSpace(req.Name),
		DisplayName:     strings.TrimSpace(req.DisplayName),
		FieldType:       req.FieldType,
		Options:         req.Options,
		ValidationRules: req.ValidationRules,
		OrderIndex:      req.OrderIndex,
		IsActive:        true,
	}
	if point.DisplayName == "" {
		point.DisplayName = point.Name
	}
	if err := s.templates.CreateOperationPoint(ctx, point); err != nil {
		return nil, err
	}
	return point, nil
}

// ServiceReportTemplate assembles the blank checklist a client renders when
// starting a new report: active categories keyed by a stable slug, their
// active items with composite ids, the operation point fields and the status
// vocabulary.
func (s *Service) ServiceReportTemplate(ctx context.Context) (*ServiceReportTemplate, error) {
	categories, err := s.templates.GetActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.templates.GetAllActiveItems(ctx)
	if err != nil {
		return nil, err
	}
	points, err := s.templates.GetActiveOperationPoints(ctx)
	if err != nil {
		return nil, err
	}

	itemsByCategory := make(map[int64][]domain.InspectionItemTemplate)
	for _, item := range items {
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], item)
	}

	template := &ServiceReportTemplate{
		Categories:      make(map[string]TemplateCategory, len(categories)),
		OperationPoints: make([]TemplateOperationPoint, 0, len(points)),
		StatusOptions:   domain.StatusOptions(),
	}
	for _, category := range categories {
		key := CategoryKey(category.Name)
		tc := TemplateCategory{Name: category.Name}
		for _, item := range itemsByCategory[category.ID] {
			tc.Items = append(tc.Items, TemplateItem{
				ID:          ItemID(key, item.ID),
				Name:        item.Name,
				Description: item.Description,
			})
		}
		template.Categories[key] = tc
	}
	for _, point := range points {
		template.OperationPoints = append(template.OperationPoints, TemplateOperationPoint{
			Name:            point.Name,
			DisplayName:     point.DisplayName,
			FieldType:       point.FieldType,
			Options:         point.Options,
			ValidationRules: point.ValidationRules,
		})
	}
	return template, nil
}

// CategoryKey turns a display name into the stable map key used in stored
// reports, e.g. "FUGAS DE ACEITE" -> "fugas_de_aceite".
func CategoryKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// ItemID builds the composite item identifier copied into report results,
// e.g. "ruedas_012".
func ItemID(categoryKey string, itemID int64) string {
	return fmt.Sprintf("%s_%03d", categoryKey, itemID)
}

func (s *Service) getCategory(ctx context.Context, id int64) (*domain.InspectionCategory, error) {
	c, err := s.templates.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}
