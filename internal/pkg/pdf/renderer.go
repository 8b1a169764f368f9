package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin  = 8.0
	sectionFill = 60 // grey level for section header bars
	lineHeight  = 4.0
	labelWidth  = 42.0
)

// Render produces the fixed single-page service-report layout. It is a pure
// function of the view: the same view always yields the same document body.
func Render(v ReportView) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "Letter", "")
	// Pinned so the same view always produces identical bytes.
	doc.SetCreationDate(time.Unix(0, 0).UTC())
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	header(doc, tr, v)
	mainInfo(doc, tr, v)
	workSections(doc, tr, v)
	operationPoints(doc, tr, v)
	inspectionTable(doc, tr, v)
	bottomSections(doc, tr, v)
	signatureLines(doc, tr, v)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report %d: %w", v.ReportNumber, err)
	}
	return buf.Bytes(), nil
}

func header(doc *gofpdf.Fpdf, tr func(string) string, v ReportView) {
	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(110, 7, tr("ATTA MONTACARGAS"), "", 0, "L", false, 0, "")
	doc.CellFormat(0, 7, tr(fmt.Sprintf("REPORTE DE SERVICIO #%d", v.ReportNumber)), "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(110, 4, "www.attamontacargas.com", "", 0, "L", false, 0, "")
	doc.CellFormat(0, 4, tr("FECHA: "+v.Date), "", 1, "R", false, 0, "")
	doc.Ln(2)
}

func sectionBar(doc *gofpdf.Fpdf, tr func(string) string, title string) {
	doc.SetFillColor(sectionFill, sectionFill, sectionFill)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 8)
	doc.CellFormat(0, 5, tr(title), "1", 1, "C", true, 0, "")
	doc.SetTextColor(0, 0, 0)
}

func labelRow(doc *gofpdf.Fpdf, tr func(string) string, label, value string) {
	doc.SetFont("Helvetica", "B", 7)
	doc.CellFormat(labelWidth, lineHeight, tr(label), "1", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 7)
	doc.CellFormat(0, lineHeight, tr(value), "1", 1, "L", false, 0, "")
}

func mainInfo(doc *gofpdf.Fpdf, tr func(string) string, v ReportView) {
	sectionBar(doc, tr, "INFORMACIÓN DEL CLIENTE")
	labelRow(doc, tr, "Cliente:", v.ClientName)
	labelRow(doc, tr, "Dirección:", v.ClientAddress)
	labelRow(doc, tr, "Solicitado por:", v.RequestedByName)
	labelRow(doc, tr, "Puesto:", v.RequestedByPosition)

	sectionBar(doc, tr, "INFORMACIÓN DEL EQUIPO Y TÉCNICO")
	labelRow(doc, tr, "Tipo de Equipo:", v.EquipmentType)
	labelRow(doc, tr, "Marca:", v.EquipmentBrand)
	labelRow(doc, tr, "Modelo:", v.EquipmentModel)
	labelRow(doc, tr, "No. Serie:", v.EquipmentSerial)
	if s := v.EquipmentSpecs; s != nil {
		labelRow(doc, tr, "Año del Modelo:", orNA(s.ModelYear))
		labelRow(doc, tr, "Capacidad:", orNA(s.Capacity))
		labelRow(doc, tr, "Tipo de Combustible:", orNA(s.FuelType))
	}
	labelRow(doc, tr, "Técnico de Servicio:", v.TechnicianName)
	labelRow(doc, tr, "Posición:", v.TechnicianPosition)
	labelRow(doc, tr, "Tipo de Servicio:", v.ServiceType)
	labelRow(doc, tr, "Tipo de Facturación:", v.BillingType)

	battery := "N/A"
	if v.BatteryPercentage != nil {
		battery = fmt.Sprintf("%d%%", *v.BatteryPercentage)
	}
	labelRow(doc, tr, "Batería:", battery)

	if len(v.HorometerReadings) > 0 {
		keys := make([]string, 0, len(v.HorometerReadings))
		for k := range v.HorometerReadings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			val := "N/A"
			if r := v.HorometerReadings[k]; r != nil {
				val = fmt.Sprintf("%g", *r)
			}
			labelRow(doc, tr, strings.ToUpper(k)+":", val)
		}
	}
	doc.Ln(1)
}

func textBlock(doc *gofpdf.Fpdf, tr func(string) string, title, body string) {
	if body == "" {
		body = "N/A"
	}
	sectionBar(doc, tr, title)
	doc.SetFont("Helvetica", "", 7)
	doc.MultiCell(0, lineHeight, tr(body), "1", "L", false)
}

func workSections(doc *gofpdf.Fpdf, tr func(string) string, v ReportView) {
	textBlock(doc, tr, "TRABAJO REALIZADO", v.WorkPerformed)
	textBlock(doc, tr, "DAÑOS DETECTADOS", v.DetectedDamages)

	causes := make([]string, 0, len(v.PossibleCauses))
	for _, c := range v.PossibleCauses {
		if c.Selected {
			causes = append(causes, c.Name)
		}
	}
	textBlock(doc, tr, "POSIBLES CAUSAS", strings.Join(causes, ", "))
	textBlock(doc, tr, "ACTIVIDADES REALIZADAS", v.ActivitiesPerformed)
	doc.Ln(1)
}

func operationPoints(doc *gofpdf.Fpdf, tr func(string) string, v ReportView) {
	op := v.OperationPoints
	if op == nil {
		return
	}
	sectionBar(doc, tr, "PUNTOS DE OPERACIÓN")
	speed := "N/A"
	if op.VelocidadAvance != nil {
		speed = fmt.Sprintf("%g Km/h", *op.VelocidadAvance)
	}
	labelRow(doc, tr, "Velocidad de Avance:", speed)
	labelRow(doc, tr, "Funciones Auxiliares:", orNA(op.FuncionesAuxiliaresOperando))
	labelRow(doc, tr, "Paro de Emergencia:", orNA(op.ParoEmergenciaEspecificacion))
	labelRow(doc, tr, "Sistema:", orNA(op.Sistema))
	labelRow(doc, tr, "Objeto de Inspección:", orNA(op.ObjetoInspeccion))
	doc.Ln(1)
}

func inspectionTable(doc *gofpdf.Fpdf, tr func(string) string, v ReportView) {
	if len(v.InspectionItems) == 0 {
		return
	}
	sectionBar(doc, tr, "INSPECCIÓN")

	doc.SetFont("Helvetica", "B", 6)
	doc.SetFillColor(sectionFill, sectionFill, sectionFill)
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(50, 4, tr("SISTEMA"), "1", 0, "C", true, 0, "")
	doc.CellFormat(110, 4, tr("OBJETO DE INSPECCIÓN"), "1", 0, "C", true, 0, "")
	doc.CellFormat(12, 4, "OK", "1", 0, "C", true, 0, "")
	doc.CellFormat(12, 4, "N/A", "1", 0, "C", true, 0, "")
	doc.CellFormat(0, 4, "R", "1", 1, "C", true, 0, "")
	doc.SetTextColor(0, 0, 0)

	mark := func(status, want string) string {
		if status == want {
			return "X"
		}
		return ""
	}

	for _, cat := range v.InspectionItems {
		for i, item := range cat.Items {
			catCell := ""
			if i == 0 {
				catCell = cat.Category
			}
			doc.SetFont("Helvetica", "B", 5)
			doc.CellFormat(50, 3.5, tr(catCell), "1", 0, "C", false, 0, "")
			doc.SetFont("Helvetica", "", 5)
			doc.CellFormat(110, 3.5, tr(item.Name), "1", 0, "L", false, 0, "")
			doc.CellFormat(12, 3.5, mark(item.Status, "OK"), "1", 0, "C", false, 0, "")
			doc.CellFormat(12, 3.5, mark(item.Status, "N/A"), "1", 0, "C", false, 0, "")
			doc.CellFormat(0, 3.5, mark(item.Status, "R"), "1", 1, "C", false, 0, "")
		}
	}
	doc.Ln(1)
}

func bottomSections(doc *gofpdf.Fpdf, tr func(string) string, v ReportView) {
	if len(v.AppliedParts) > 0 {
		sectionBar(doc, tr, "REFACCIONES Y CONSUMIBLES")
		for _, p := range v.AppliedParts {
			labelRow(doc, tr, strings.ToUpper(string(p.Kind))+":", fmt.Sprintf("%s  (%s)", p.Description, p.Quantity))
		}
	}

	if wt := v.WorkTime; wt != nil {
		sectionBar(doc, tr, "TIEMPO DE TRABAJO")
		labelRow(doc, tr, "Fecha:", orNA(wt.Fecha))
		labelRow(doc, tr, "Hora Entrada:", orNA(wt.HoraEntrada))
		labelRow(doc, tr, "Hora Salida:", orNA(wt.HoraSalida))
		labelRow(doc, tr, "Total Horas:", fmt.Sprintf("%g", wt.TotalHoras))
		if wt.HorasExtra > 0 {
			labelRow(doc, tr, "Horas Extra:", fmt.Sprintf("%g", wt.HorasExtra))
		}
	}

	if v.TechnicianComments != "" {
		textBlock(doc, tr, "COMENTARIOS DEL TÉCNICO", v.TechnicianComments)
	}
	if v.ClientObservations != "" {
		textBlock(doc, tr, "OBSERVACIONES DEL CLIENTE", v.ClientObservations)
	}
	doc.Ln(1)
}

func signatureLines(doc *gofpdf.Fpdf, tr func(string) string, v ReportView) {
	sectionBar(doc, tr, "FIRMAS")
	doc.SetFont("Helvetica", "B", 7)
	doc.CellFormat(105, 5, tr("TÉCNICO"), "1", 0, "C", false, 0, "")
	doc.CellFormat(0, 5, tr("CLIENTE"), "1", 1, "C", false, 0, "")
	doc.CellFormat(105, 14, "", "1", 0, "C", false, 0, "")
	doc.CellFormat(0, 14, "", "1", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 7)
	doc.CellFormat(105, 5, tr("Nombre: "+v.TechnicianName), "1", 0, "L", false, 0, "")
	doc.CellFormat(0, 5, tr("Nombre: "+v.RequestedByName), "1", 1, "L", false, 0, "")
	doc.CellFormat(105, 5, tr("Fecha: "+v.Date), "1", 0, "L", false, 0, "")
	doc.CellFormat(0, 5, tr("Fecha: "+v.Date), "1", 1, "L", false, 0, "")
}
