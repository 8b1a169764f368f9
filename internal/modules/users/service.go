package users

import (
	"context"
	"errors"
	"strings"

	"attareports/internal/domain"
	"attareports/internal/modules/auth"
	"attareports/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

// List returns a page of users. Admin only.
func (s *Service) List(ctx context.Context, actorRole string, q ListUsersQuery) ([]domain.User, error) {
	if actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 100
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
	list, err := s.users.GetAll(ctx, q.Skip, q.Limit)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].PasswordHash = ""
	}
	return list, nil
}

// Get returns one user. Any authenticated user can read their own record,
// admins can read anyone.
func (s *Service) Get(ctx context.Context, actorID int64, actorRole string, id int64) (*domain.User, error) {
	if actorID != id && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// Create registers a new user. Admin only.
func (s *Service) Create(ctx context.Context, actorRole string, req CreateUserRequest) (*domain.User, error) {
	if actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	roleStr := strings.ToLower(strings.TrimSpace(req.Role))
	if !domain.ValidRole(roleStr) {
		return nil, ErrInvalidRole
	}
	role := domain.UserRole(roleStr)

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
		Position:     strings.TrimSpace(req.Position),
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// Update patches a user record. Users may edit themselves, admins anyone.
// Changing the role field requires admin regardless of target.
func (s *Service) Update(ctx context.Context, actorID int64, actorRole string, id int64, req UpdateUserRequest) (*domain.User, error) {
	isAdmin := actorRole == string(domain.RoleAdmin)
	if actorID != id && !isAdmin {
		return nil, ErrForbidden
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Role != nil {
		if !isAdmin {
			return nil, ErrRoleChange
		}
		roleStr := strings.ToLower(strings.TrimSpace(*req.Role))
		if !domain.ValidRole(roleStr) {
			return nil, ErrInvalidRole
		}
		role := domain.UserRole(roleStr)
		if u.Role == domain.RoleAdmin && role != domain.RoleAdmin {
			if err := s.ensureNotLastAdmin(ctx); err != nil {
				return nil, err
			}
		}
		u.Role = role
	}
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != u.Email {
			exists, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrEmailTaken
			}
			u.Email = email
		}
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, ErrWeakPassword
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if req.Position != nil {
		u.Position = strings.TrimSpace(*req.Position)
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}
	if req.IsActive != nil {
		if !isAdmin {
			return nil, ErrForbidden
		}
		u.IsActive = *req.IsActive
	}

	if err := s.users.Update(ctx, u); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// Delete removes a user. Admin only, and never the acting admin itself.
func (s *Service) Delete(ctx context.Context, actorID int64, actorRole string, id int64) error {
	if actorRole != string(domain.RoleAdmin) {
		return ErrForbidden
	}
	if actorID == id {
		return ErrSelfDelete
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if u.Role == domain.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx); err != nil {
			return err
		}
	}
	return s.users.Delete(ctx, id)
}

func (s *Service) ensureNotLastAdmin(ctx context.Context) error {
	count, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastAdmin
	}
	return nil
}
