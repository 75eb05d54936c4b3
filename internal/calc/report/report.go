package report

import (
	"fmt"
	"io"

	sheet "Wiresheet/internal/calc/sheet"
	"github.com/phpdave11/gofpdf"
)

// Render writes sh as a one-page A4 process sheet.
func Render(w io.Writer, h sheet.Header, sh sheet.Sheet) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Process Sheet Calculation")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Company: %s", h.Company))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Sheet No: %s", h.Number))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", h.Issued.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, sh.Title())
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, 7, "Parameter", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Result", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "Unit", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Decimals", "1", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, o := range sh.Outcomes {
		if o.Result == nil {
			pdf.CellFormat(80, 7, o.Kind.Label(), "1", 0, "L", false, 0, "")
			pdf.CellFormat(100, 7, o.Error, "1", 1, "L", false, 0, "")
			continue
		}
		pdf.CellFormat(80, 7, o.Result.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, o.Result.Formatted(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, o.Result.Unit, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprint(o.Result.Precision), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)
	if lines := formulas(sh); len(lines) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "Formulas")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		for _, l := range lines {
			pdf.MultiCell(0, 5, l, "", "L", false)
		}
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
	}
	pdf.MultiCell(0, 6, "Inputs: "+sh.Inputs, "", "L", false)

	return pdf.Output(w)
}

// formulas lists "label = formula" for every outcome that produced a value.
func formulas(sh sheet.Sheet) []string {
	var lines []string
	for _, o := range sh.Outcomes {
		if o.Result == nil || o.Result.Formula == "" {
			continue
		}
		lines = append(lines, o.Result.Label+" = "+o.Result.Formula)
	}
	return lines
}
