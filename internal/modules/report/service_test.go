package report

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"attareports/internal/domain"
	"attareports/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, r *domain.ServiceReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceReport), args.Error(1)
}

func (m *MockReportRepository) GetByIDWithRelations(ctx context.Context, id int64) (*domain.ServiceReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceReport), args.Error(1)
}

func (m *MockReportRepository) Update(ctx context.Context, r *domain.ServiceReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReportRepository) List(ctx context.Context, f repository.ReportFilters) ([]domain.ServiceReport, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.ServiceReport), args.Error(1)
}

func (m *MockReportRepository) CountByStatus(ctx context.Context, scopeTechnicianID int64) (repository.ReportCounts, error) {
	args := m.Called(ctx, scopeTechnicianID)
	return args.Get(0).(repository.ReportCounts), args.Error(1)
}

type MockClientReader struct {
	mock.Mock
}

func (m *MockClientReader) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientReader) GetContactByID(ctx context.Context, id int64) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockClientReader) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockEquipmentReader struct {
	mock.Mock
}

func (m *MockEquipmentReader) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentReader) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

type fixture struct {
	reports   *MockReportRepository
	clients   *MockClientReader
	equipment *MockEquipmentReader
	users     *MockUserReader
	blobs     *MockBlobStore
	service   *Service
}

func newFixture() *fixture {
	f := &fixture{
		reports:   new(MockReportRepository),
		clients:   new(MockClientReader),
		equipment: new(MockEquipmentReader),
		users:     new(MockUserReader),
		blobs:     new(MockBlobStore),
	}
	f.service = NewService(f.reports, f.clients, f.equipment, f.users, f.blobs, UploadLimits{
		MaxSize:      10 << 20,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/jpg"},
	})
	return f
}

func (f *fixture) expectValidReferences(clientID, contactID, equipmentID int64) {
	f.clients.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	f.clients.On("GetContactByID", mock.Anything, contactID).Return(&domain.Contact{ID: contactID, ClientID: clientID}, nil)
	f.equipment.On("GetByID", mock.Anything, equipmentID).Return(&domain.Equipment{ID: equipmentID}, nil)
}

func validCreateRequest() CreateReportRequest {
	return CreateReportRequest{
		Date:          "2025-03-18",
		ClientID:      1,
		RequestedByID: 2,
		EquipmentID:   3,
		ServiceType:   string(domain.ServicePreventivo),
		BillingType:   string(domain.BillingFacturacion),
	}
}

func TestCreate_CreatorBecomesTechnician(t *testing.T) {
	f := newFixture()
	f.expectValidReferences(1, 2, 3)
	f.reports.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ServiceReport) bool {
		return r.TechnicianID == 42 && r.CreatedBy == 42 && r.Status == domain.ReportPending
	})).Return(nil)

	r, err := f.service.Create(context.Background(), 42, string(domain.RoleOperador), validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), r.TechnicianID)
	f.reports.AssertExpectations(t)
}

func TestCreate_OperadorCannotFileCompleted(t *testing.T) {
	f := newFixture()

	req := validCreateRequest()
	req.Status = string(domain.ReportCompleted)

	_, err := f.service.Create(context.Background(), 42, string(domain.RoleOperador), req)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreate_JefeMayFileCompleted(t *testing.T) {
	f := newFixture()
	f.expectValidReferences(1, 2, 3)
	f.reports.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ServiceReport) bool {
		return r.Status == domain.ReportCompleted && r.PendingReason == nil
	})).Return(nil)

	req := validCreateRequest()
	req.Status = string(domain.ReportCompleted)

	_, err := f.service.Create(context.Background(), 8, string(domain.RoleJefe), req)

	assert.NoError(t, err)
}

func TestCreate_ExplicitPendingRequiresReason(t *testing.T) {
	f := newFixture()

	req := validCreateRequest()
	req.Status = string(domain.ReportPending)

	_, err := f.service.Create(context.Background(), 42, string(domain.RoleOperador), req)

	assert.ErrorIs(t, err, ErrMissingPendingReason)
}

func TestCreate_ContactClientMismatch(t *testing.T) {
	f := newFixture()
	f.clients.On("GetByID", mock.Anything, int64(1)).Return(&domain.Client{ID: 1}, nil)
	f.clients.On("GetContactByID", mock.Anything, int64(2)).Return(&domain.Contact{ID: 2, ClientID: 99}, nil)

	_, err := f.service.Create(context.Background(), 42, string(domain.RoleOperador), validCreateRequest())

	assert.ErrorIs(t, err, ErrContactClientMismatch)
}

func TestCreate_BatteryBounds(t *testing.T) {
	cases := []struct {
		name    string
		battery int
		wantErr error
	}{
		{"below range", -1, ErrBatteryOutOfRange},
		{"lower bound", 0, nil},
		{"upper bound", 100, nil},
		{"above range", 101, ErrBatteryOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			if tc.wantErr == nil {
				f.expectValidReferences(1, 2, 3)
				f.reports.On("Create", mock.Anything, mock.Anything).Return(nil)
			}

			req := validCreateRequest()
			battery := tc.battery
			req.BatteryPercentage = &battery

			_, err := f.service.Create(context.Background(), 42, string(domain.RoleOperador), req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreate_InvalidServiceType(t *testing.T) {
	f := newFixture()

	req := validCreateRequest()
	req.ServiceType = "Mantenimiento"

	_, err := f.service.Create(context.Background(), 42, string(domain.RoleOperador), req)

	assert.ErrorIs(t, err, ErrInvalidServiceType)
}

func TestGet_MissingReport(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByIDWithRelations", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.service.Get(context.Background(), 1, string(domain.RoleAdmin), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_OperadorCannotSeeOthersReport(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByIDWithRelations", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 99,
		Status:       domain.ReportPending,
	}, nil)

	_, err := f.service.Get(context.Background(), 42, string(domain.RoleOperador), 10)

	// Invisible, not forbidden: existence must not leak.
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_JefeSeesAnyReport(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByIDWithRelations", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 99,
	}, nil)

	r, err := f.service.Get(context.Background(), 8, string(domain.RoleJefe), 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), r.ID)
}

func TestUpdate_OperadorLockedOutOfCompleted(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportCompleted,
	}, nil)

	comments := "ajuste final"
	_, err := f.service.Update(context.Background(), 42, string(domain.RoleOperador), 10, UpdateReportRequest{
		TechnicianComments: &comments,
	})

	assert.ErrorIs(t, err, ErrReportLocked)
}

func TestUpdate_OperadorOthersReportIsNotFound(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 99,
		Status:       domain.ReportPending,
	}, nil)

	comments := "ajuste"
	_, err := f.service.Update(context.Background(), 42, string(domain.RoleOperador), 10, UpdateReportRequest{
		TechnicianComments: &comments,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_JefeCannotReopenCompleted(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 99,
		Status:       domain.ReportCompleted,
	}, nil)

	status := string(domain.ReportPending)
	reason := "faltan refacciones"
	_, err := f.service.Update(context.Background(), 8, string(domain.RoleJefe), 10, UpdateReportRequest{
		Status:        &status,
		PendingReason: &reason,
	})

	assert.ErrorIs(t, err, ErrTerminalStatusLock)
}

func TestUpdate_AdminReopensCompleted(t *testing.T) {
	f := newFixture()
	stored := &domain.ServiceReport{
		ID:           10,
		TechnicianID: 99,
		Status:       domain.ReportCompleted,
	}
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	f.reports.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.ServiceReport) bool {
		return r.Status == domain.ReportPending && r.PendingReason != nil && *r.PendingReason == "faltan refacciones"
	})).Return(nil)
	f.reports.On("GetByIDWithRelations", mock.Anything, int64(10)).Return(stored, nil)

	status := string(domain.ReportPending)
	reason := "faltan refacciones"
	_, err := f.service.Update(context.Background(), 1, string(domain.RoleAdmin), 10, UpdateReportRequest{
		Status:        &status,
		PendingReason: &reason,
	})

	assert.NoError(t, err)
	f.reports.AssertExpectations(t)
}

func TestUpdate_PendingWithoutReason(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportPending,
	}, nil)

	status := string(domain.ReportPending)
	blank := "   "
	_, err := f.service.Update(context.Background(), 42, string(domain.RoleOperador), 10, UpdateReportRequest{
		Status:        &status,
		PendingReason: &blank,
	})

	assert.ErrorIs(t, err, ErrMissingPendingReason)
}

func TestUpdate_CompletingClearsPendingReason(t *testing.T) {
	f := newFixture()
	reason := "esperando refacciones"
	stored := &domain.ServiceReport{
		ID:            10,
		TechnicianID:  42,
		Status:        domain.ReportPending,
		PendingReason: &reason,
	}
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	f.reports.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.ServiceReport) bool {
		return r.Status == domain.ReportCompleted && r.PendingReason == nil
	})).Return(nil)
	f.reports.On("GetByIDWithRelations", mock.Anything, int64(10)).Return(stored, nil)

	status := string(domain.ReportCompleted)
	_, err := f.service.Update(context.Background(), 1, string(domain.RoleJefe), 10, UpdateReportRequest{
		Status: &status,
	})

	assert.NoError(t, err)
	f.reports.AssertExpectations(t)
}

func TestUpdate_OperadorCannotComplete(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportPending,
	}, nil)

	status := string(domain.ReportCompleted)
	_, err := f.service.Update(context.Background(), 42, string(domain.RoleOperador), 10, UpdateReportRequest{
		Status: &status,
	})

	assert.ErrorIs(t, err, ErrForbidden)
	f.reports.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_ChangedReferencesAreRevalidated(t *testing.T) {
	f := newFixture()
	stored := &domain.ServiceReport{
		ID:            10,
		TechnicianID:  42,
		Status:        domain.ReportPending,
		ClientID:      1,
		RequestedByID: 2,
		EquipmentID:   3,
	}
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	f.clients.On("GetByID", mock.Anything, int64(5)).Return(&domain.Client{ID: 5}, nil)
	// Old contact now belongs to the wrong client.
	f.clients.On("GetContactByID", mock.Anything, int64(2)).Return(&domain.Contact{ID: 2, ClientID: 1}, nil)

	newClient := int64(5)
	_, err := f.service.Update(context.Background(), 42, string(domain.RoleOperador), 10, UpdateReportRequest{
		ClientID: &newClient,
	})

	assert.ErrorIs(t, err, ErrContactClientMismatch)
}

func TestUpdate_OperadorCannotReassignTechnician(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportPending,
	}, nil)

	other := int64(7)
	_, err := f.service.Update(context.Background(), 42, string(domain.RoleOperador), 10, UpdateReportRequest{
		TechnicianID: &other,
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdate_ReassignToUnknownTechnician(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportPending,
	}, nil)
	f.users.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	other := int64(7)
	_, err := f.service.Update(context.Background(), 1, string(domain.RoleJefe), 10, UpdateReportRequest{
		TechnicianID: &other,
	})

	assert.ErrorIs(t, err, ErrTechnicianNotFound)
}

func TestUpdate_JefeReassignsTechnician(t *testing.T) {
	f := newFixture()
	stored := &domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportPending,
	}
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleOperador}, nil)
	f.reports.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.ServiceReport) bool {
		return r.TechnicianID == 7
	})).Return(nil)
	f.reports.On("GetByIDWithRelations", mock.Anything, int64(10)).Return(stored, nil)

	other := int64(7)
	_, err := f.service.Update(context.Background(), 1, string(domain.RoleJefe), 10, UpdateReportRequest{
		TechnicianID: &other,
	})

	assert.NoError(t, err)
	f.reports.AssertExpectations(t)
}

func TestDelete_OperadorDeletesOwnPending(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportPending,
	}, nil)
	f.reports.On("Delete", mock.Anything, int64(10)).Return(nil)

	err := f.service.Delete(context.Background(), 42, string(domain.RoleOperador), 10)

	assert.NoError(t, err)
	f.reports.AssertExpectations(t)
}

func TestDelete_OperadorCompletedReportLocked(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportCompleted,
	}, nil)

	err := f.service.Delete(context.Background(), 42, string(domain.RoleOperador), 10)

	assert.ErrorIs(t, err, ErrReportLocked)
	f.reports.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_JefeDeletesAnyReport(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportCompleted,
	}, nil)
	f.reports.On("Delete", mock.Anything, int64(10)).Return(nil)

	err := f.service.Delete(context.Background(), 1, string(domain.RoleJefe), 10)

	assert.NoError(t, err)
	f.reports.AssertExpectations(t)
}

func TestRenderPDF_FilenameUsesReportDate(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByIDWithRelations", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportPending,
		Date:         "2025-03-14",
	}, nil)

	data, filename, err := f.service.RenderPDF(context.Background(), 42, string(domain.RoleOperador), 10)

	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "reporte_servicio_10_20250314.pdf", filename)
}

func TestDelete_AdminSucceeds(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceReport{ID: 10, TechnicianID: 42}, nil)
	f.reports.On("Delete", mock.Anything, int64(10)).Return(nil)

	err := f.service.Delete(context.Background(), 1, string(domain.RoleAdmin), 10)

	assert.NoError(t, err)
	f.reports.AssertExpectations(t)
}

func TestList_OperadorIsScopedToOwnReports(t *testing.T) {
	f := newFixture()
	f.reports.On("List", mock.Anything, mock.MatchedBy(func(filters repository.ReportFilters) bool {
		return filters.ScopeTechnicianID == 42
	})).Return([]domain.ServiceReport{}, nil)

	// Asking for another technician's reports does not widen the scope.
	_, err := f.service.List(context.Background(), 42, string(domain.RoleOperador), ListReportsQuery{
		TechnicianID: 99,
	})

	assert.NoError(t, err)
	f.reports.AssertExpectations(t)
}

func TestDashboardStats_OperadorGetsNoCatalogTotals(t *testing.T) {
	f := newFixture()
	f.reports.On("CountByStatus", mock.Anything, int64(42)).Return(repository.ReportCounts{
		Total: 3, Pending: 2, Completed: 1,
	}, nil)

	stats, err := f.service.DashboardStats(context.Background(), 42, string(domain.RoleOperador))

	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalReports)
	assert.Nil(t, stats.TotalClients)
	f.clients.AssertNotCalled(t, "Count", mock.Anything)
}

func TestDashboardStats_AdminGetsCatalogTotals(t *testing.T) {
	f := newFixture()
	f.reports.On("CountByStatus", mock.Anything, int64(0)).Return(repository.ReportCounts{
		Total: 12, Pending: 4, Completed: 8,
	}, nil)
	f.clients.On("Count", mock.Anything).Return(int64(5), nil)
	f.equipment.On("Count", mock.Anything).Return(int64(9), nil)
	f.users.On("CountByRole", mock.Anything, domain.RoleOperador).Return(int64(3), nil)

	stats, err := f.service.DashboardStats(context.Background(), 1, string(domain.RoleAdmin))

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalReports)
	assert.Equal(t, int64(5), *stats.TotalClients)
	assert.Equal(t, int64(9), *stats.TotalEquipment)
	assert.Equal(t, int64(3), *stats.TotalTechnicians)
}

func TestAttachSignature_InvalidType(t *testing.T) {
	f := newFixture()

	_, err := f.service.AttachSignature(context.Background(), 42, string(domain.RoleOperador), 10, "supervisor", strings.NewReader("img"), 3, "image/png")

	assert.ErrorIs(t, err, ErrInvalidSignatureRole)
}

func TestAttachSignature_UnsupportedMediaType(t *testing.T) {
	f := newFixture()

	_, err := f.service.AttachSignature(context.Background(), 42, string(domain.RoleOperador), 10, SignatureClient, strings.NewReader("img"), 3, "image/gif")

	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestAttachSignature_FileTooLarge(t *testing.T) {
	f := newFixture()

	_, err := f.service.AttachSignature(context.Background(), 42, string(domain.RoleOperador), 10, SignatureClient, strings.NewReader("img"), 11<<20, "image/png")

	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestAttachSignature_BlobFailureLeavesReportUnchanged(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByIDWithRelations", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportPending,
	}, nil)
	f.blobs.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("connection refused"))

	_, err := f.service.AttachSignature(context.Background(), 42, string(domain.RoleOperador), 10, SignatureClient, strings.NewReader("img"), 3, "image/png")

	assert.Error(t, err)
	f.reports.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAttachSignature_Success(t *testing.T) {
	f := newFixture()
	f.reports.On("GetByIDWithRelations", mock.Anything, int64(10)).Return(&domain.ServiceReport{
		ID:           10,
		TechnicianID: 42,
		Status:       domain.ReportPending,
		Technician:   &domain.User{ID: 42, Name: "Carlos"},
		RequestedBy:  &domain.Contact{ID: 2, Name: "Ana"},
	}, nil)
	f.blobs.On("Put", mock.Anything, mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "signatures/client_signature_10_") && strings.HasSuffix(name, ".png")
	}), mock.Anything, int64(3), "image/png").Return("http://files/signatures/x.png", nil)
	f.reports.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.ServiceReport) bool {
		return r.ClientSignature == "http://files/signatures/x.png" &&
			r.Signatures != nil &&
			r.Signatures.Client != nil &&
			r.Signatures.Client.SignerName == "Ana"
	})).Return(nil)

	r, err := f.service.AttachSignature(context.Background(), 42, string(domain.RoleOperador), 10, SignatureClient, strings.NewReader("img"), 3, "image/png")

	assert.NoError(t, err)
	assert.Equal(t, "http://files/signatures/x.png", r.ClientSignature)
	f.reports.AssertExpectations(t)
}
