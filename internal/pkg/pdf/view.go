package pdf

import "attareports/internal/domain"

// ReportView is the projection the renderer consumes. It is assembled from the
// report aggregate plus its related catalog rows and carries no references back
// to them, so rendering can never mutate state.
type ReportView struct {
	ReportNumber int64
	Date         string

	ClientName    string
	ClientAddress string

	RequestedByName     string
	RequestedByPosition string

	EquipmentType   string
	EquipmentBrand  string
	EquipmentModel  string
	EquipmentSerial string

	TechnicianName     string
	TechnicianPosition string

	ServiceType string
	BillingType string

	BatteryPercentage *int
	HorometerReadings map[string]*float64

	EquipmentSpecs *domain.EquipmentSpecs

	WorkPerformed       string
	DetectedDamages     string
	PossibleCauses      []domain.PossibleCause
	ActivitiesPerformed string

	OperationPoints *domain.OperationPoints
	InspectionItems []domain.InspectionCategoryResult

	TechnicianComments string
	ClientObservations string
	AppliedParts       []domain.AppliedPart
	WorkTime           *domain.WorkTime

	Status string
}

// NewReportView copies the renderable fields out of the aggregate and its
// relations. Missing relations degrade to "N/A" the way the printed form does.
func NewReportView(r *domain.ServiceReport, client *domain.Client, contact *domain.Contact, equipment *domain.Equipment, technician *domain.User) ReportView {
	v := ReportView{
		ReportNumber:        r.ReportNumber,
		Date:                orNA(r.Date),
		ServiceType:         orNA(r.ServiceType),
		BillingType:         orNA(r.BillingType),
		BatteryPercentage:   r.BatteryPercentage,
		HorometerReadings:   r.HorometerReadings,
		EquipmentSpecs:      r.EquipmentSpecifications,
		WorkPerformed:       r.WorkPerformed,
		DetectedDamages:     r.DetectedDamages,
		PossibleCauses:      r.PossibleCauses,
		ActivitiesPerformed: r.ActivitiesPerformed,
		OperationPoints:     r.OperationPoints,
		InspectionItems:     r.InspectionItems,
		TechnicianComments:  r.TechnicianComments,
		ClientObservations:  r.ClientObservations,
		AppliedParts:        r.AppliedParts,
		WorkTime:            r.WorkTime,
		Status:              string(r.Status),
	}

	v.ClientName, v.ClientAddress = "N/A", "N/A"
	if client != nil {
		v.ClientName, v.ClientAddress = client.Name, client.Address
	}
	v.RequestedByName, v.RequestedByPosition = "N/A", "N/A"
	if contact != nil {
		v.RequestedByName, v.RequestedByPosition = contact.Name, contact.Position
	}
	v.EquipmentType, v.EquipmentBrand, v.EquipmentModel, v.EquipmentSerial = "N/A", "N/A", "N/A", "N/A"
	if equipment != nil {
		v.EquipmentType = equipment.Type
		v.EquipmentBrand = equipment.Brand
		v.EquipmentModel = equipment.Model
		v.EquipmentSerial = equipment.SerialNumber
	}
	v.TechnicianName, v.TechnicianPosition = "N/A", "N/A"
	if technician != nil {
		v.TechnicianName, v.TechnicianPosition = technician.Name, technician.Position
	}
	return v
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
