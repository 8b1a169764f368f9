package report

import (
	"context"

	"attareports/internal/domain"
	"attareports/internal/repository"
)

type ReportRepositoryInterface interface {
	Create(ctx context.Context, report *domain.ServiceReport) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceReport, error)
	GetByIDWithRelations(ctx context.Context, id int64) (*domain.ServiceReport, error)
	Update(ctx context.Context, report *domain.ServiceReport) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f repository.ReportFilters) ([]domain.ServiceReport, error)
	CountByStatus(ctx context.Context, scopeTechnicianID int64) (repository.ReportCounts, error)
}

// ClientReader is the slice of the client repository the report service needs
// to validate references and feed the dashboard.
type ClientReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetContactByID(ctx context.Context, id int64) (*domain.Contact, error)
	Count(ctx context.Context) (int64, error)
}

type EquipmentReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Count(ctx context.Context) (int64, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
}
