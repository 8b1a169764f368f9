package report

import "attareports/internal/domain"

type CreateReportRequest struct {
	Date          string `json:"date" binding:"required"`
	ClientID      int64  `json:"client_id" binding:"required"`
	RequestedByID int64  `json:"requested_by_id" binding:"required"`
	EquipmentID   int64  `json:"equipment_id" binding:"required"`

	ServiceType string `json:"service_type" binding:"required"`
	BillingType string `json:"billing_type" binding:"required"`

	BatteryPercentage *int                `json:"battery_percentage"`
	HorometerReadings map[string]*float64 `json:"horometer_readings"`

	EquipmentSpecifications *domain.EquipmentSpecs `json:"equipment_specifications"`

	WorkPerformed       string                 `json:"work_performed"`
	DetectedDamages     string                 `json:"detected_damages"`
	PossibleCauses      []domain.PossibleCause `json:"possible_causes"`
	ActivitiesPerformed string                 `json:"activities_performed"`

	OperationPoints *domain.OperationPoints           `json:"operation_points"`
	InspectionItems []domain.InspectionCategoryResult `json:"inspection_items"`

	TechnicianComments string               `json:"technician_comments"`
	ClientObservations string               `json:"client_observations"`
	AppliedParts       []domain.AppliedPart `json:"applied_parts"`
	WorkTime           *domain.WorkTime     `json:"work_time"`

	Status        string  `json:"status"`
	PendingReason *string `json:"pending_reason"`
}

// UpdateReportRequest patches a report. Nil fields are left untouched, so a
// partial update never clobbers sub-documents the caller did not send.
type UpdateReportRequest struct {
	Date          *string `json:"date"`
	ClientID      *int64  `json:"client_id"`
	RequestedByID *int64  `json:"requested_by_id"`
	EquipmentID   *int64  `json:"equipment_id"`

	ServiceType *string `json:"service_type"`
	BillingType *string `json:"billing_type"`

	BatteryPercentage *int                 `json:"battery_percentage"`
	HorometerReadings *map[string]*float64 `json:"horometer_readings"`

	EquipmentSpecifications *domain.EquipmentSpecs `json:"equipment_specifications"`

	WorkPerformed       *string                 `json:"work_performed"`
	DetectedDamages     *string                 `json:"detected_damages"`
	PossibleCauses      *[]domain.PossibleCause `json:"possible_causes"`
	ActivitiesPerformed *string                 `json:"activities_performed"`

	OperationPoints *domain.OperationPoints            `json:"operation_points"`
	InspectionItems *[]domain.InspectionCategoryResult `json:"inspection_items"`

	TechnicianComments *string               `json:"technician_comments"`
	ClientObservations *string               `json:"client_observations"`
	AppliedParts       *[]domain.AppliedPart `json:"applied_parts"`
	WorkTime           *domain.WorkTime      `json:"work_time"`

	Status        *string `json:"status"`
	PendingReason *string `json:"pending_reason"`
	TechnicianID  *int64  `json:"technician_id"`
}

type ListReportsQuery struct {
	Status       string `form:"status"`
	ClientID     int64  `form:"client_id"`
	TechnicianID int64  `form:"technician_id"`
	Skip         int    `form:"skip"`
	Limit        int    `form:"limit"`
}

// DashboardStats always carries the report counters; the catalog totals are
// present only for admin and jefe.
type DashboardStats struct {
	TotalReports     int64  `json:"total_reports"`
	PendingReports   int64  `json:"pending_reports"`
	CompletedReports int64  `json:"completed_reports"`
	TotalClients     *int64 `json:"client_count,omitempty"`
	TotalEquipment   *int64 `json:"equipment_count,omitempty"`
	TotalTechnicians *int64 `json:"technician_count,omitempty"`
}
