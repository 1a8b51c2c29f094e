package finiquito

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

var causalText = map[string]string{
	CausalNecesidadesEmpresa: "Necesidades de la empresa (Art. 161 Codigo del Trabajo)",
	CausalMutuoAcuerdo:       "Mutuo acuerdo de las partes (Art. 159 N1)",
	CausalNoConcurrencia:     "No concurrencia del trabajador (Art. 160 N3)",
	CausalRenuncia:           "Renuncia voluntaria (Art. 159 N2)",
}

// RenderDocument writes the finiquito for a completed session as a PDF and
// returns the file path. Generation requires the termination parameters to be
// set; there is no partial document.
func RenderDocument(session Session, outDir string) (string, error) {
	params := session.Input.Params
	if params.LastWorkDay.IsZero() || params.Causal == "" {
		return "", ErrMissingParameters
	}
	if !ValidCausal(params.Causal) {
		return "", ErrUnknownCausal
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	result := session.Result
	folio := uuid.NewString()
	filePath := filepath.Join(outDir, fmt.Sprintf("finiquito-%s-%s.pdf", session.RUT, folio[:8]))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Finiquito de Trabajo")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Trabajador: %s  RUT: %s", session.Input.Employee.Name, session.RUT))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Cargo: %s  Empleador: %s", session.Input.Employee.Position, session.Input.Employee.Company))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Fecha de ingreso: %s", session.Input.Employee.HireDate.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Ultimo dia trabajado: %s", params.LastWorkDay.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Causal de termino: %s", causalText[params.Causal]))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Anos de servicio: %.2f (indemnizables: %.0f)", result.YearsOfService, result.IndemnityYears))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Haberes")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeLine(pdf, "Indemnizacion sustitutiva de aviso previo", result.NoticeIndemnity)
	writeLine(pdf, "Indemnizacion por anos de servicio", result.YearsIndemnity)
	writeLine(pdf, "Indemnizacion por feriado pendiente", result.VacationIndemnity)
	writeLine(pdf, "Remuneraciones pendientes", result.OutstandingWages)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Descuentos")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range result.Deductions {
		label := line.Concepto
		if line.Detail != "" {
			label = fmt.Sprintf("%s (%s)", line.Concepto, line.Detail)
		}
		writeLine(pdf, label, line.Total)
	}
	writeLine(pdf, "Total descuentos", result.TotalDeductions)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	writeLine(pdf, "Liquido a pagar", result.Net)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf(
		"El trabajador declara recibir a su entera satisfaccion la suma indicada, "+
			"otorgando el mas amplio y total finiquito respecto del contrato de trabajo "+
			"que lo unia con %s, sin reserva de acciones. Folio %s.",
		session.Input.Employee.Company, folio), "", "L", false)
	pdf.Ln(16)
	pdf.Cell(90, 7, session.Input.Employee.Name)
	pdf.Cell(90, 7, params.Signer)
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(90, 6, "Trabajador")
	pdf.Cell(90, 6, "Representante legal")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

func writeLine(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.Cell(130, 7, label)
	pdf.CellFormat(40, 7, fmt.Sprintf("$ %.0f", amount), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
