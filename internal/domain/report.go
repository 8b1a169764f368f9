package domain

import "time"

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportCompleted ReportStatus = "completed"
)

func ValidReportStatus(s string) bool {
	return ReportStatus(s) == ReportPending || ReportStatus(s) == ReportCompleted
}

type ServiceType string

const (
	ServicePreventivo  ServiceType = "Preventivo"
	ServiceCorrectivo  ServiceType = "Correctivo"
	ServiceInstalacion ServiceType = "Instalación"
	ServiceReparacion  ServiceType = "Reparación"
	ServiceOtro        ServiceType = "Otro"
)

func ValidServiceType(t string) bool {
	switch ServiceType(t) {
	case ServicePreventivo, ServiceCorrectivo, ServiceInstalacion, ServiceReparacion, ServiceOtro:
		return true
	}
	return false
}

type BillingType string

const (
	BillingFacturacion BillingType = "Facturación"
	BillingRenta       BillingType = "Renta"
	BillingGarantia    BillingType = "Garantía"
	BillingSinCosto    BillingType = "Sin costo"
)

func ValidBillingType(t string) bool {
	switch BillingType(t) {
	case BillingFacturacion, BillingRenta, BillingGarantia, BillingSinCosto:
		return true
	}
	return false
}

// EquipmentSpecs holds datasheet values recorded at service time. They are a
// snapshot, independent of the Equipment catalog row.
type EquipmentSpecs struct {
	ModelYear string `json:"model_year,omitempty"`
	Capacity  string `json:"capacity,omitempty"`
	FuelType  string `json:"fuel_type,omitempty"`
}

type PossibleCause struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// OperationPoints field names match the stored JSON shape the PDF layout reads.
type OperationPoints struct {
	VelocidadAvance              *float64 `json:"velocidad_avance,omitempty"`
	FuncionesAuxiliaresOperando  string   `json:"funciones_auxiliares_operando,omitempty"` // SÍ, NO, N/A
	ParoEmergenciaEspecificacion string   `json:"paro_emergencia_especificaciones,omitempty"`
	Sistema                      string   `json:"sistema,omitempty"`
	ObjetoInspeccion             string   `json:"objeto_inspeccion,omitempty"`
}

type InspectionItemResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"` // OK, N/A, R
	Notes  string `json:"notes,omitempty"`
}

// InspectionCategoryResult groups the checked items of one checklist category.
// Category and item order is significant and must survive a round trip.
type InspectionCategoryResult struct {
	Category string                 `json:"category"`
	Items    []InspectionItemResult `json:"items"`
}

type PartKind string

const (
	PartRefaccion  PartKind = "refacciones"
	PartConsumible PartKind = "consumibles"
)

type AppliedPart struct {
	Kind        PartKind `json:"kind"`
	Description string   `json:"description"`
	Quantity    string   `json:"quantity"` // free-form, may encode units
}

type WorkTime struct {
	Fecha       string  `json:"fecha,omitempty"`
	HoraEntrada string  `json:"hora_entrada,omitempty"`
	HoraSalida  string  `json:"hora_salida,omitempty"`
	TotalHoras  float64 `json:"total_horas"`
	HorasExtra  float64 `json:"horas_extra,omitempty"`
}

type SignatureEntry struct {
	SignerName string    `json:"signer_name"`
	URL        string    `json:"url"`
	SignedAt   time.Time `json:"signed_at"`
}

// Signatures is the structured signature block. The legacy direct URL fields on
// ServiceReport remain authoritative for the PDF layout.
type Signatures struct {
	Client     *SignatureEntry `json:"client,omitempty"`
	Technician *SignatureEntry `json:"technician,omitempty"`
	Supervisor *SignatureEntry `json:"supervisor,omitempty"`
}

// ServiceReport is the central aggregate: one row plus embedded JSON
// sub-documents, treated as a single unit of consistency. Sub-documents are
// copied at write time and never share structure with the catalog templates.
type ServiceReport struct {
	ID           int64  `json:"id"`
	ReportNumber int64  `json:"report_number" gorm:"uniqueIndex"`
	Date         string `json:"date"`

	CreatedBy     int64 `json:"created_by"`
	TechnicianID  int64 `json:"technician_id"`
	ClientID      int64 `json:"client_id"`
	RequestedByID int64 `json:"requested_by_id"`
	EquipmentID   int64 `json:"equipment_id"`

	ServiceType string `json:"service_type"`
	BillingType string `json:"billing_type"`

	BatteryPercentage *int                `json:"battery_percentage,omitempty"`
	HorometerReadings map[string]*float64 `json:"horometer_readings,omitempty" gorm:"serializer:json"`

	EquipmentSpecifications *EquipmentSpecs `json:"equipment_specifications,omitempty" gorm:"serializer:json"`

	WorkPerformed       string          `json:"work_performed,omitempty" gorm:"type:text"`
	DetectedDamages     string          `json:"detected_damages,omitempty" gorm:"type:text"`
	PossibleCauses      []PossibleCause `json:"possible_causes,omitempty" gorm:"serializer:json"`
	ActivitiesPerformed string          `json:"activities_performed,omitempty" gorm:"type:text"`

	OperationPoints *OperationPoints           `json:"operation_points,omitempty" gorm:"serializer:json"`
	InspectionItems []InspectionCategoryResult `json:"inspection_items,omitempty" gorm:"serializer:json"`

	TechnicianComments string        `json:"technician_comments,omitempty" gorm:"type:text"`
	ClientObservations string        `json:"client_observations,omitempty" gorm:"type:text"`
	AppliedParts       []AppliedPart `json:"applied_parts,omitempty" gorm:"serializer:json"`
	WorkTime           *WorkTime     `json:"work_time,omitempty" gorm:"serializer:json"`

	Signatures          *Signatures `json:"signatures,omitempty" gorm:"serializer:json"`
	ClientSignature     string      `json:"client_signature,omitempty"`
	TechnicianSignature string      `json:"technician_signature,omitempty"`

	Status        ReportStatus `json:"status"`
	PendingReason *string      `json:"pending_reason,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	Technician  *User      `json:"technician,omitempty" gorm:"foreignKey:TechnicianID"`
	Client      *Client    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	RequestedBy *Contact   `json:"requested_by,omitempty" gorm:"foreignKey:RequestedByID"`
	Equipment   *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
}
