package export

import (
	"fmt"
	"io"
	"strings"

	sheet "Wiresheet/internal/calc/sheet"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Process Sheet"

// first result row; rows above hold the header block and column titles
const firstRow = 9

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// Render writes sh as a single-sheet workbook. Result cells keep their numeric
// value and are formatted to the parameter's precision.
func Render(w io.Writer, h sheet.Header, sh sheet.Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := [][2]string{
		{"Company", h.Company},
		{"Sheet No", h.Number},
		{"Date", h.Issued.Format("2006-01-02")},
		{"Standard", sh.Standard.Label()},
		{"Mode", sh.Mode.Label()},
	}
	if err := f.SetCellStr(SheetName, "A1", "Process Sheet Calculation"); err != nil {
		return err
	}
	for i, kv := range header {
		if err := f.SetSheetRow(SheetName, cell(1, i+2), &[]any{kv[0], kv[1]}); err != nil {
			return err
		}
	}
	titles := []any{"Parameter", "Result", "Unit", "Decimals", "Formula"}
	if err := f.SetSheetRow(SheetName, cell(1, firstRow-1), &titles); err != nil {
		return err
	}

	row := firstRow
	for _, o := range sh.Outcomes {
		if o.Result == nil {
			if err := f.SetSheetRow(SheetName, cell(1, row), &[]any{o.Kind.Label(), o.Error}); err != nil {
				return err
			}
			row++
			continue
		}
		res := o.Result
		if err := f.SetSheetRow(SheetName, cell(1, row), &[]any{res.Label, nil, res.Unit, res.Precision, res.Formula}); err != nil {
			return err
		}
		if err := f.SetCellFloat(SheetName, cell(2, row), res.Value, -1, 64); err != nil {
			return err
		}
		style, err := f.NewStyle(&excelize.Style{CustomNumFmt: numFmt(res.Precision)})
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, cell(2, row), cell(2, row), style); err != nil {
			return err
		}
		row++
	}

	row++
	if err := f.SetSheetRow(SheetName, cell(1, row), &[]any{"Inputs", sh.Inputs}); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", "A", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "B", 40); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "E", "E", 56); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func numFmt(places int) *string {
	s := "0"
	if places > 0 {
		s += "." + strings.Repeat("0", places)
	}
	return &s
}
