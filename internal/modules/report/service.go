package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"attareports/internal/domain"
	"attareports/internal/pkg/blob"
	"attareports/internal/pkg/pdf"
	"attareports/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadLimits caps signature uploads. AllowedTypes is a content-type
// allow-list.
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

type Service struct {
	reports   ReportRepositoryInterface
	clients   ClientReader
	equipment EquipmentReader
	users     UserReader
	blobs     blob.Store
	limits    UploadLimits
	policy    Policy
}

func NewService(reports ReportRepositoryInterface, clients ClientReader, equipment EquipmentReader, users UserReader, blobs blob.Store, limits UploadLimits) *Service {
	return &Service{
		reports:   reports,
		clients:   clients,
		equipment: equipment,
		users:     users,
		blobs:     blobs,
		limits:    limits,
	}
}

// Create files a new report. The caller becomes the assigned technician
// regardless of role; created_by records the same fact for auditing.
func (s *Service) Create(ctx context.Context, actorID int64, actorRole string, req CreateReportRequest) (*domain.ServiceReport, error) {
	if !domain.ValidServiceType(req.ServiceType) {
		return nil, ErrInvalidServiceType
	}
	if !domain.ValidBillingType(req.BillingType) {
		return nil, ErrInvalidBillingType
	}
	if err := validateBattery(req.BatteryPercentage); err != nil {
		return nil, err
	}

	status := domain.ReportPending
	if req.Status != "" {
		if !domain.ValidReportStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		status = domain.ReportStatus(req.Status)
	}
	if status == domain.ReportCompleted && !s.policy.CanCreateCompleted(actorRole) {
		return nil, ErrForbidden
	}

	pendingReason := normalizeReason(req.PendingReason)
	if req.Status == string(domain.ReportPending) && pendingReason == nil {
		return nil, ErrMissingPendingReason
	}
	if status == domain.ReportCompleted {
		pendingReason = nil
	}

	if err := s.validateReferences(ctx, req.ClientID, req.RequestedByID, req.EquipmentID); err != nil {
		return nil, err
	}

	r := &domain.ServiceReport{
		Date:                    strings.TrimSpace(req.Date),
		CreatedBy:               actorID,
		TechnicianID:            actorID,
		ClientID:                req.ClientID,
		RequestedByID:           req.RequestedByID,
		EquipmentID:             req.EquipmentID,
		ServiceType:             req.ServiceType,
		BillingType:             req.BillingType,
		BatteryPercentage:       req.BatteryPercentage,
		HorometerReadings:       req.HorometerReadings,
		EquipmentSpecifications: req.EquipmentSpecifications,
		WorkPerformed:           req.WorkPerformed,
		DetectedDamages:         req.DetectedDamages,
		PossibleCauses:          req.PossibleCauses,
		ActivitiesPerformed:     req.ActivitiesPerformed,
		OperationPoints:         req.OperationPoints,
		InspectionItems:         req.InspectionItems,
		TechnicianComments:      req.TechnicianComments,
		ClientObservations:      req.ClientObservations,
		AppliedParts:            req.AppliedParts,
		WorkTime:                req.WorkTime,
		Status:                  status,
		PendingReason:           pendingReason,
	}
	if err := s.reports.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Get loads one report with its relations. Reports outside the actor's
// visibility answer not-found.
func (s *Service) Get(ctx context.Context, actorID int64, actorRole string, id int64) (*domain.ServiceReport, error) {
	r, err := s.reports.GetByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !s.policy.CanView(actorRole, actorID, r) {
		return nil, ErrNotFound
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, actorID int64, actorRole string, q ListReportsQuery) ([]domain.ServiceReport, error) {
	if q.Status != "" && !domain.ValidReportStatus(q.Status) {
		return nil, ErrInvalidStatus
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 100
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
	return s.reports.List(ctx, repository.ReportFilters{
		Status:            q.Status,
		ClientID:          q.ClientID,
		TechnicianID:      q.TechnicianID,
		ScopeTechnicianID: s.policy.ListScope(actorRole, actorID),
		Skip:              q.Skip,
		Limit:             q.Limit,
	})
}

// Update patches a report under the role rules: an operador only touches
// their own pending reports, and only admin reopens a completed one.
func (s *Service) Update(ctx context.Context, actorID int64, actorRole string, id int64, req UpdateReportRequest) (*domain.ServiceReport, error) {
	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.policy.CanModify(actorRole, actorID, r); err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !domain.ValidReportStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		next := domain.ReportStatus(*req.Status)
		if err := s.policy.CanSetStatus(actorRole, r, next); err != nil {
			return nil, err
		}
		if next == domain.ReportPending {
			reason := normalizeReason(req.PendingReason)
			if reason == nil {
				return nil, ErrMissingPendingReason
			}
			r.PendingReason = reason
		} else {
			// Completing a report retires its reason.
			r.PendingReason = nil
		}
		r.Status = next
	} else if req.PendingReason != nil && r.Status == domain.ReportPending {
		r.PendingReason = normalizeReason(req.PendingReason)
	}

	if req.TechnicianID != nil && *req.TechnicianID != r.TechnicianID {
		if !s.policy.CanReassign(actorRole) {
			return nil, ErrForbidden
		}
		if _, err := s.users.GetByID(ctx, *req.TechnicianID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTechnicianNotFound
			}
			return nil, err
		}
		r.TechnicianID = *req.TechnicianID
	}

	if req.ServiceType != nil {
		if !domain.ValidServiceType(*req.ServiceType) {
			return nil, ErrInvalidServiceType
		}
		r.ServiceType = *req.ServiceType
	}
	if req.BillingType != nil {
		if !domain.ValidBillingType(*req.BillingType) {
			return nil, ErrInvalidBillingType
		}
		r.BillingType = *req.BillingType
	}
	if req.BatteryPercentage != nil {
		if err := validateBattery(req.BatteryPercentage); err != nil {
			return nil, err
		}
		r.BatteryPercentage = req.BatteryPercentage
	}

	clientID := r.ClientID
	if req.ClientID != nil {
		clientID = *req.ClientID
	}
	contactID := r.RequestedByID
	if req.RequestedByID != nil {
		contactID = *req.RequestedByID
	}
	equipmentID := r.EquipmentID
	if req.EquipmentID != nil {
		equipmentID = *req.EquipmentID
	}
	if clientID != r.ClientID || contactID != r.RequestedByID || equipmentID != r.EquipmentID {
		if err := s.validateReferences(ctx, clientID, contactID, equipmentID); err != nil {
			return nil, err
		}
		r.ClientID, r.RequestedByID, r.EquipmentID = clientID, contactID, equipmentID
	}

	if req.Date != nil {
		r.Date = strings.TrimSpace(*req.Date)
	}
	if req.HorometerReadings != nil {
		r.HorometerReadings = *req.HorometerReadings
	}
	if req.EquipmentSpecifications != nil {
		r.EquipmentSpecifications = req.EquipmentSpecifications
	}
	if req.WorkPerformed != nil {
		r.WorkPerformed = *req.WorkPerformed
	}
	if req.DetectedDamages != nil {
		r.DetectedDamages = *req.DetectedDamages
	}
	if req.PossibleCauses != nil {
		r.PossibleCauses = *req.PossibleCauses
	}
	if req.ActivitiesPerformed != nil {
		r.ActivitiesPerformed = *req.ActivitiesPerformed
	}
	if req.OperationPoints != nil {
		r.OperationPoints = req.OperationPoints
	}
	if req.InspectionItems != nil {
		r.InspectionItems = *req.InspectionItems
	}
	if req.TechnicianComments != nil {
		r.TechnicianComments = *req.TechnicianComments
	}
	if req.ClientObservations != nil {
		r.ClientObservations = *req.ClientObservations
	}
	if req.AppliedParts != nil {
		r.AppliedParts = *req.AppliedParts
	}
	if req.WorkTime != nil {
		r.WorkTime = req.WorkTime
	}

	if err := s.reports.Update(ctx, r); err != nil {
		return nil, err
	}
	return s.reports.GetByIDWithRelations(ctx, r.ID)
}

func (s *Service) Delete(ctx context.Context, actorID int64, actorRole string, id int64) error {
	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !s.policy.CanView(actorRole, actorID, r) {
		return ErrNotFound
	}
	if err := s.policy.CanDelete(actorRole, actorID, r); err != nil {
		return err
	}
	return s.reports.Delete(ctx, id)
}

// DashboardStats returns the report counters in the actor's visibility scope.
// Admin and jefe additionally get catalog-wide totals.
func (s *Service) DashboardStats(ctx context.Context, actorID int64, actorRole string) (*DashboardStats, error) {
	counts, err := s.reports.CountByStatus(ctx, s.policy.ListScope(actorRole, actorID))
	if err != nil {
		return nil, err
	}
	stats := &DashboardStats{
		TotalReports:     counts.Total,
		PendingReports:   counts.Pending,
		CompletedReports: counts.Completed,
	}
	if !s.policy.CanViewDashboardTotals(actorRole) {
		return stats, nil
	}

	clientCount, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}
	equipmentCount, err := s.equipment.Count(ctx)
	if err != nil {
		return nil, err
	}
	technicianCount, err := s.users.CountByRole(ctx, domain.RoleOperador)
	if err != nil {
		return nil, err
	}
	stats.TotalClients = &clientCount
	stats.TotalEquipment = &equipmentCount
	stats.TotalTechnicians = &technicianCount
	return stats, nil
}

// RenderPDF produces the printable report and its download filename.
func (s *Service) RenderPDF(ctx context.Context, actorID int64, actorRole string, id int64) ([]byte, string, error) {
	r, err := s.Get(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, "", err
	}

	view := pdf.NewReportView(r, r.Client, r.RequestedBy, r.Equipment, r.Technician)
	data, err := pdf.Render(view)
	if err != nil {
		return nil, "", fmt.Errorf("generate pdf: %w", err)
	}

	filename := fmt.Sprintf("reporte_servicio_%d_%s.pdf", r.ID, strings.ReplaceAll(r.Date, "-", ""))
	return data, filename, nil
}

// Signature roles accepted by AttachSignature.
const (
	SignatureClient     = "client"
	SignatureTechnician = "technician"
)

// AttachSignature stores a signature image in the blob store and records its
// URL on the report. The object is uploaded before the record is touched, so
// a failed upload leaves the report unchanged.
func (s *Service) AttachSignature(ctx context.Context, actorID int64, actorRole string, id int64, sigRole string, file io.Reader, size int64, contentType string) (*domain.ServiceReport, error) {
	if sigRole != SignatureClient && sigRole != SignatureTechnician {
		return nil, ErrInvalidSignatureRole
	}
	if !s.allowedType(contentType) {
		return nil, ErrUnsupportedMediaType
	}
	if size <= 0 || size > s.limits.MaxSize {
		return nil, ErrFileTooLarge
	}

	r, err := s.reports.GetByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.policy.CanModify(actorRole, actorID, r); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("signatures/%s_signature_%d_%s%s", sigRole, r.ID, uuid.NewString(), extensionFor(contentType))
	url, err := s.blobs.Put(ctx, objectName, file, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("store signature: %w", err)
	}

	entry := &domain.SignatureEntry{
		SignerName: s.signerName(r, sigRole),
		URL:        url,
		SignedAt:   time.Now().UTC(),
	}
	if r.Signatures == nil {
		r.Signatures = &domain.Signatures{}
	}
	switch sigRole {
	case SignatureClient:
		r.ClientSignature = url
		r.Signatures.Client = entry
	case SignatureTechnician:
		r.TechnicianSignature = url
		r.Signatures.Technician = entry
	}

	if err := s.reports.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) signerName(r *domain.ServiceReport, sigRole string) string {
	switch sigRole {
	case SignatureClient:
		if r.RequestedBy != nil {
			return r.RequestedBy.Name
		}
	case SignatureTechnician:
		if r.Technician != nil {
			return r.Technician.Name
		}
	}
	return ""
}

func (s *Service) allowedType(contentType string) bool {
	for _, t := range s.limits.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

func extensionFor(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	// Allow-list should make this unreachable.
	return ""
}

func (s *Service) validateReferences(ctx context.Context, clientID, contactID, equipmentID int64) error {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	contact, err := s.clients.GetContactByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	if contact.ClientID != clientID {
		return ErrContactClientMismatch
	}
	if _, err := s.equipment.GetByID(ctx, equipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	return nil
}

func validateBattery(p *int) error {
	if p != nil && (*p < 0 || *p > 100) {
		return ErrBatteryOutOfRange
	}
	return nil
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
