package pdf

import (
	"testing"

	"attareports/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleView() ReportView {
	battery := 85
	velocidad := 11.0
	return ReportView{
		ReportNumber:      1001,
		Date:              "2025-03-18",
		ClientName:        "Logística del Bajío",
		ClientAddress:     "Av. Industrial 1200, León",
		RequestedByName:   "Ana Martínez",
		EquipmentType:     string(domain.EquipmentElectrico),
		EquipmentBrand:    "Yale",
		EquipmentModel:    "ERP030VT",
		EquipmentSerial:   "A908N01234X",
		TechnicianName:    "Carlos Técnico",
		ServiceType:       string(domain.ServicePreventivo),
		BillingType:       string(domain.BillingRenta),
		BatteryPercentage: &battery,
		WorkPerformed:     "Revisión general y ajuste de frenos",
		PossibleCauses: []domain.PossibleCause{
			{ID: "desgaste", Name: "Desgaste normal", Selected: true},
			{ID: "operacion", Name: "Mala operación", Selected: false},
		},
		OperationPoints: sampleOperationPoints(velocidad),
		InspectionItems: []domain.InspectionCategoryResult{
			{
				Category: "ESTRUCTURAL",
				Items: []domain.InspectionItemResult{
					{ID: "estructural_001", Name: "GOLPES DEFORMACIONES", Status: "OK"},
					{ID: "estructural_002", Name: "SOLDADURA FISURADAS", Status: "R"},
				},
			},
		},
		WorkTime: &domain.WorkTime{Fecha: "2025-03-18", TotalHoras: 4.5},
		Status:   string(domain.ReportCompleted),
	}
}

func sampleOperationPoints(velocidad float64) *domain.OperationPoints {
	return &domain.OperationPoints{
		VelocidadAvance:             &velocidad,
		FuncionesAuxiliaresOperando: "SÍ",
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	data, err := Render(sampleView())

	require.NoError(t, err)
	assert.Greater(t, len(data), 1000)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_SameViewSameBytes(t *testing.T) {
	first, err := Render(sampleView())
	require.NoError(t, err)

	second, err := Render(sampleView())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_EmptyViewStillRenders(t *testing.T) {
	data, err := Render(ReportView{ReportNumber: 1001})

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestNewReportView_MissingRelationsDegradeToNA(t *testing.T) {
	r := &domain.ServiceReport{ReportNumber: 1001, Status: domain.ReportPending}

	v := NewReportView(r, nil, nil, nil, nil)

	assert.Equal(t, "N/A", v.ClientName)
	assert.Equal(t, "N/A", v.RequestedByName)
	assert.Equal(t, "N/A", v.EquipmentSerial)
	assert.Equal(t, "N/A", v.TechnicianName)
	assert.Equal(t, "N/A", v.Date)
}

func TestNewReportView_CopiesRelations(t *testing.T) {
	r := &domain.ServiceReport{ReportNumber: 1002, Date: "2025-03-18"}

	v := NewReportView(r,
		&domain.Client{Name: "Cliente", Address: "Dirección"},
		&domain.Contact{Name: "Ana", Position: "Jefa de Almacén"},
		&domain.Equipment{Type: "Manual", Brand: "Crown", Model: "PTH50", SerialNumber: "X1"},
		&domain.User{Name: "Carlos", Position: "Técnico"},
	)

	assert.Equal(t, "Cliente", v.ClientName)
	assert.Equal(t, "Jefa de Almacén", v.RequestedByPosition)
	assert.Equal(t, "X1", v.EquipmentSerial)
	assert.Equal(t, "Carlos", v.TechnicianName)
}
