package repository

import (
	"context"
	"testing"

	"attareports/internal/database"
	"attareports/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Client{},
		&domain.Contact{},
		&domain.Equipment{},
		&domain.ServiceReport{},
	))
	return db
}

func newReport(technicianID int64) *domain.ServiceReport {
	return &domain.ServiceReport{
		Date:          "2025-03-18",
		CreatedBy:     technicianID,
		TechnicianID:  technicianID,
		ClientID:      1,
		RequestedByID: 1,
		EquipmentID:   1,
		ServiceType:   string(domain.ServicePreventivo),
		BillingType:   string(domain.BillingFacturacion),
		Status:        domain.ReportPending,
	}
}

func TestReportNumberSequence(t *testing.T) {
	repo := NewReportRepository(testDB(t))
	ctx := context.Background()

	first := newReport(1)
	require.NoError(t, repo.Create(ctx, first))
	require.Equal(t, int64(1001), first.ReportNumber)

	second := newReport(1)
	require.NoError(t, repo.Create(ctx, second))
	require.Equal(t, int64(1002), second.ReportNumber)
}

func TestSubDocumentsSurviveRoundTrip(t *testing.T) {
	repo := NewReportRepository(testDB(t))
	ctx := context.Background()

	velocidad := 12.5
	r := newReport(1)
	r.OperationPoints = &domain.OperationPoints{
		VelocidadAvance:             &velocidad,
		FuncionesAuxiliaresOperando: "SÍ",
	}
	r.InspectionItems = []domain.InspectionCategoryResult{
		{
			Category: "estructural",
			Items: []domain.InspectionItemResult{
				{ID: "estructural_001", Name: "GOLPES DEFORMACIONES", Status: "OK"},
				{ID: "estructural_002", Name: "SOLDADURA FISURADAS", Status: "R", Notes: "fisura en base"},
			},
		},
		{
			Category: "ruedas",
			Items: []domain.InspectionItemResult{
				{ID: "ruedas_007", Name: "TRACCIÓN", Status: "N/A"},
			},
		},
	}
	r.WorkTime = &domain.WorkTime{
		Fecha:       "2025-03-18",
		HoraEntrada: "09:00",
		HoraSalida:  "13:30",
		TotalHoras:  4.5,
	}
	r.AppliedParts = []domain.AppliedPart{
		{Kind: domain.PartRefaccion, Description: "Manguera hidráulica", Quantity: "2"},
	}
	require.NoError(t, repo.Create(ctx, r))

	loaded, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)

	// Category and item order must survive.
	require.Len(t, loaded.InspectionItems, 2)
	require.Equal(t, "estructural", loaded.InspectionItems[0].Category)
	require.Equal(t, "estructural_002", loaded.InspectionItems[0].Items[1].ID)
	require.Equal(t, "fisura en base", loaded.InspectionItems[0].Items[1].Notes)

	require.NotNil(t, loaded.OperationPoints)
	require.Equal(t, 12.5, *loaded.OperationPoints.VelocidadAvance)
	require.Equal(t, "SÍ", loaded.OperationPoints.FuncionesAuxiliaresOperando)

	require.Equal(t, 4.5, loaded.WorkTime.TotalHoras)
	require.Equal(t, domain.PartRefaccion, loaded.AppliedParts[0].Kind)
}

func TestListScopeRestrictsByTechnician(t *testing.T) {
	repo := NewReportRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newReport(1)))
	require.NoError(t, repo.Create(ctx, newReport(2)))
	require.NoError(t, repo.Create(ctx, newReport(2)))

	all, err := repo.List(ctx, ReportFilters{Limit: 50})
	require.NoError(t, err)
	require.Len(t, all, 3)

	scoped, err := repo.List(ctx, ReportFilters{ScopeTechnicianID: 2, Limit: 50})
	require.NoError(t, err)
	require.Len(t, scoped, 2)

	// A caller filter cannot widen the scope.
	widened, err := repo.List(ctx, ReportFilters{ScopeTechnicianID: 2, TechnicianID: 1, Limit: 50})
	require.NoError(t, err)
	require.Empty(t, widened)
}

func TestCountByStatus(t *testing.T) {
	repo := NewReportRepository(testDB(t))
	ctx := context.Background()

	pending := newReport(1)
	require.NoError(t, repo.Create(ctx, pending))

	completed := newReport(2)
	completed.Status = domain.ReportCompleted
	require.NoError(t, repo.Create(ctx, completed))

	counts, err := repo.CountByStatus(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), counts.Total)
	require.Equal(t, int64(1), counts.Pending)
	require.Equal(t, int64(1), counts.Completed)

	scoped, err := repo.CountByStatus(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), scoped.Total)
	require.Equal(t, int64(0), scoped.Completed)
}
