package users

import (
	"context"
	"testing"

	"attareports/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context, skip, limit int) ([]domain.User, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func TestList_NonAdminForbidden(t *testing.T) {
	service := NewService(new(MockUserRepository))

	_, err := service.List(context.Background(), string(domain.RoleJefe), ListUsersQuery{})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreate_InvalidRole(t *testing.T) {
	service := NewService(new(MockUserRepository))

	_, err := service.Create(context.Background(), string(domain.RoleAdmin), CreateUserRequest{
		Name:     "Test",
		Email:    "test@atta.mx",
		Password: "secret123",
		Role:     "supervisor",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("ExistsByEmail", mock.Anything, "test@atta.mx").Return(true, nil)

	service := NewService(repo)

	_, err := service.Create(context.Background(), string(domain.RoleAdmin), CreateUserRequest{
		Name:     "Test",
		Email:    "test@atta.mx",
		Password: "secret123",
		Role:     "operador",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreate_Success(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("ExistsByEmail", mock.Anything, "test@atta.mx").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "test@atta.mx" && u.Role == domain.RoleOperador && u.IsActive
	})).Return(nil)

	service := NewService(repo)

	user, err := service.Create(context.Background(), string(domain.RoleAdmin), CreateUserRequest{
		Name:     "Test",
		Email:    "Test@ATTA.mx",
		Password: "secret123",
		Role:     "Operador",
	})

	assert.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	repo.AssertExpectations(t)
}

func TestUpdate_RoleChangeRequiresAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID:   5,
		Role: domain.RoleOperador,
	}, nil)

	service := NewService(repo)

	jefe := "jefe"
	_, err := service.Update(context.Background(), 5, string(domain.RoleOperador), 5, UpdateUserRequest{
		Role: &jefe,
	})

	assert.ErrorIs(t, err, ErrRoleChange)
}

func TestUpdate_OtherUserForbidden(t *testing.T) {
	service := NewService(new(MockUserRepository))

	name := "New Name"
	_, err := service.Update(context.Background(), 5, string(domain.RoleOperador), 9, UpdateUserRequest{
		Name: &name,
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDelete_Self(t *testing.T) {
	service := NewService(new(MockUserRepository))

	err := service.Delete(context.Background(), 1, string(domain.RoleAdmin), 1)

	assert.ErrorIs(t, err, ErrSelfDelete)
}

func TestDelete_LastAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{
		ID:   2,
		Role: domain.RoleAdmin,
	}, nil)
	repo.On("CountByRole", mock.Anything, domain.RoleAdmin).Return(int64(1), nil)

	service := NewService(repo)

	err := service.Delete(context.Background(), 1, string(domain.RoleAdmin), 2)

	assert.ErrorIs(t, err, ErrLastAdmin)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	err := service.Delete(context.Background(), 1, string(domain.RoleAdmin), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}
