package inspection

import (
	"context"
	"testing"

	"attareports/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInspectionRepository struct {
	mock.Mock
}

func (m *MockInspectionRepository) CreateCategory(ctx context.Context, c *domain.InspectionCategory) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockInspectionRepository) GetCategoryByID(ctx context.Context, id int64) (*domain.InspectionCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InspectionCategory), args.Error(1)
}

func (m *MockInspectionRepository) CategoryExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockInspectionRepository) GetActiveCategories(ctx context.Context) ([]domain.InspectionCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InspectionCategory), args.Error(1)
}

func (m *MockInspectionRepository) CreateItem(ctx context.Context, item *domain.InspectionItemTemplate) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInspectionRepository) GetActiveItemsByCategory(ctx context.Context, categoryID int64) ([]domain.InspectionItemTemplate, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]domain.InspectionItemTemplate), args.Error(1)
}

func (m *MockInspectionRepository) GetAllActiveItems(ctx context.Context) ([]domain.InspectionItemTemplate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InspectionItemTemplate), args.Error(1)
}

func (m *MockInspectionRepository) CreateOperationPoint(ctx context.Context, t *domain.OperationPointTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockInspectionRepository) GetActiveOperationPoints(ctx context.Context) ([]domain.OperationPointTemplate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.OperationPointTemplate), args.Error(1)
}

func TestCategoryKey(t *testing.T) {
	assert.Equal(t, "fugas_de_aceite", CategoryKey("FUGAS DE ACEITE"))
	assert.Equal(t, "ruedas", CategoryKey(" Ruedas "))
}

func TestItemID(t *testing.T) {
	assert.Equal(t, "ruedas_007", ItemID("ruedas", 7))
	assert.Equal(t, "seguridad_120", ItemID("seguridad", 120))
}

func TestCreateCategory_Duplicate(t *testing.T) {
	repo := new(MockInspectionRepository)
	repo.On("CategoryExistsByName", mock.Anything, "RUEDAS").Return(true, nil)

	service := NewService(repo)

	_, err := service.CreateCategory(context.Background(), string(domain.RoleAdmin), CreateCategoryRequest{
		Name: "RUEDAS",
	})

	assert.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestCreateCategory_RequiresAdmin(t *testing.T) {
	service := NewService(new(MockInspectionRepository))

	_, err := service.CreateCategory(context.Background(), string(domain.RoleOperador), CreateCategoryRequest{
		Name: "NUEVA",
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateOperationPoint_InvalidFieldType(t *testing.T) {
	service := NewService(new(MockInspectionRepository))

	_, err := service.CreateOperationPoint(context.Background(), string(domain.RoleAdmin), CreateOperationPointRequest{
		Name:      "presion",
		FieldType: "checkbox",
	})

	assert.ErrorIs(t, err, ErrInvalidFieldType)
}

func TestServiceReportTemplate(t *testing.T) {
	repo := new(MockInspectionRepository)
	repo.On("GetActiveCategories", mock.Anything).Return([]domain.InspectionCategory{
		{ID: 1, Name: "ESTRUCTURAL", OrderIndex: 1, IsActive: true},
		{ID: 2, Name: "FUGAS DE ACEITE", OrderIndex: 2, IsActive: true},
	}, nil)
	repo.On("GetAllActiveItems", mock.Anything).Return([]domain.InspectionItemTemplate{
		{ID: 1, CategoryID: 1, Name: "Chasis", OrderIndex: 1},
		{ID: 2, CategoryID: 1, Name: "Mástil", OrderIndex: 2},
		{ID: 9, CategoryID: 2, Name: "Mangueras", OrderIndex: 1},
	}, nil)
	repo.On("GetActiveOperationPoints", mock.Anything).Return([]domain.OperationPointTemplate{
		{Name: "velocidad_avance", DisplayName: "Velocidad de avance", FieldType: "number"},
	}, nil)

	service := NewService(repo)

	template, err := service.ServiceReportTemplate(context.Background())

	assert.NoError(t, err)
	assert.Len(t, template.Categories, 2)

	estructural := template.Categories["estructural"]
	assert.Equal(t, "ESTRUCTURAL", estructural.Name)
	assert.Len(t, estructural.Items, 2)
	assert.Equal(t, "estructural_001", estructural.Items[0].ID)

	fugas := template.Categories["fugas_de_aceite"]
	assert.Equal(t, "fugas_de_aceite_009", fugas.Items[0].ID)

	assert.Len(t, template.OperationPoints, 1)
	assert.Equal(t, "Requiere atención/reparación", template.StatusOptions["R"])
}
