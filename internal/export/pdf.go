// Package export renders the assets-by-agent report as PDF and CSV.
package export

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// ReportRow is one flattened line of the assets-by-agent report.
type ReportRow struct {
	Agent        string
	Role         string
	AssetName    string
	SerialNumber string
	Status       string
	Value        string
}

var reportHeaders = []string{"Agente", "Rol", "Activo", "Nro. de serie", "Estado", "Valor"}

// Column widths in mm, landscape A4 content width ~277mm.
var reportWidths = []float64{55, 40, 65, 45, 35, 37}

// AssetsByAgentPDF renders the report as a landscape A4 table.
func AssetsByAgentPDF(rows []ReportRow) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, "Activos por agente", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range reportHeaders {
			pdf.CellFormat(reportWidths[i], 7, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	writeHeader()

	_, pageH := pdf.GetPageSize()
	for _, row := range rows {
		if pdf.GetY() > pageH-20 {
			pdf.AddPage()
			writeHeader()
		}
		cells := []string{row.Agent, row.Role, row.AssetName, row.SerialNumber, row.Status, row.Value}
		for i, cell := range cells {
			align := "L"
			if i == len(cells)-1 {
				align = "R"
			}
			pdf.CellFormat(reportWidths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(rows) == 0 {
		pdf.CellFormat(0, 8, "Sin datos", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
