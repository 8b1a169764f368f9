package repository

import (
	"context"

	"attareports/internal/domain"

	"gorm.io/gorm"
)

// firstReportNumber is where the human-facing sequence starts.
const firstReportNumber = 1001

// ReportFilters narrows report listings. Zero values mean "not set".
// ScopeTechnicianID is the server-side visibility scope and is applied before
// any caller-supplied filter.
type ReportFilters struct {
	Status            string
	ClientID          int64
	TechnicianID      int64
	ScopeTechnicianID int64
	Skip              int
	Limit             int
}

type ReportCounts struct {
	Total     int64
	Pending   int64
	Completed int64
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create persists the report and assigns the next report number inside the
// same transaction, so numbers stay unique and monotonic under concurrency.
func (r *ReportRepository) Create(ctx context.Context, report *domain.ServiceReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxNumber int64
		row := tx.Model(&domain.ServiceReport{}).Select("COALESCE(MAX(report_number), 0)").Row()
		if err := row.Scan(&maxNumber); err != nil {
			return err
		}
		if maxNumber < firstReportNumber {
			report.ReportNumber = firstReportNumber
		} else {
			report.ReportNumber = maxNumber + 1
		}
		return tx.Create(report).Error
	})
}

func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceReport, error) {
	var report domain.ServiceReport
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByIDWithRelations loads the report plus the catalog rows the export and
// detail views need.
func (r *ReportRepository) GetByIDWithRelations(ctx context.Context, id int64) (*domain.ServiceReport, error) {
	var report domain.ServiceReport
	err := r.db.WithContext(ctx).
		Preload("Technician").
		Preload("Client").
		Preload("Client.Contacts").
		Preload("RequestedBy").
		Preload("Equipment").
		First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) Update(ctx context.Context, report *domain.ServiceReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.ServiceReport{}, id).Error
}

func (r *ReportRepository) scoped(ctx context.Context, f ReportFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.ServiceReport{})
	if f.ScopeTechnicianID != 0 {
		q = q.Where("technician_id = ?", f.ScopeTechnicianID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ClientID != 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.TechnicianID != 0 {
		q = q.Where("technician_id = ?", f.TechnicianID)
	}
	return q
}

// List returns reports newest first (id descending, stable).
func (r *ReportRepository) List(ctx context.Context, f ReportFilters) ([]domain.ServiceReport, error) {
	var reports []domain.ServiceReport
	err := r.scoped(ctx, f).
		Preload("Technician").
		Preload("Client").
		Preload("RequestedBy").
		Preload("Equipment").
		Order("id DESC").
		Offset(f.Skip).
		Limit(f.Limit).
		Find(&reports).Error
	return reports, err
}

// CountByStatus counts reports in the given visibility scope
// (scopeTechnicianID of 0 means all reports).
func (r *ReportRepository) CountByStatus(ctx context.Context, scopeTechnicianID int64) (ReportCounts, error) {
	var counts ReportCounts

	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.ServiceReport{})
		if scopeTechnicianID != 0 {
			q = q.Where("technician_id = ?", scopeTechnicianID)
		}
		return q
	}

	if err := base().Count(&counts.Total).Error; err != nil {
		return counts, err
	}
	if err := base().Where("status = ?", string(domain.ReportPending)).Count(&counts.Pending).Error; err != nil {
		return counts, err
	}
	if err := base().Where("status = ?", string(domain.ReportCompleted)).Count(&counts.Completed).Error; err != nil {
		return counts, err
	}
	return counts, nil
}
