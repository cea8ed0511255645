package envelope

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FootingLabel marks the spreadsheet row holding the footing values
const FootingLabel = "footing"

// LoadXLSX reads an envelope from a spreadsheet. The first row is a header;
// each following row holds y (m), Md (N·m/m) and Vd (N/m). A row whose first
// cell is "footing" holds the footing Md and Vd. An empty sheet name selects
// the first sheet.
func LoadXLSX(path, sheet string) (*InternalForces, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, &DataError{msg: fmt.Sprintf("sheet %q has no envelope rows", sheet)}
	}

	var y, md, vd []float64
	var mdFooting, vdFooting float64
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) < 3 {
			return nil, &DataError{msg: fmt.Sprintf("row %d: expected 3 columns, got %d", i+1, len(row))}
		}
		if strings.EqualFold(strings.TrimSpace(row[0]), FootingLabel) {
			if mdFooting, err = toFloat(row[1]); err != nil {
				return nil, &DataError{msg: fmt.Sprintf("row %d: footing moment: %v", i+1, err)}
			}
			if vdFooting, err = toFloat(row[2]); err != nil {
				return nil, &DataError{msg: fmt.Sprintf("row %d: footing shear: %v", i+1, err)}
			}
			continue
		}
		vals := make([]float64, 3)
		for j := range vals {
			if vals[j], err = toFloat(row[j]); err != nil {
				return nil, &DataError{msg: fmt.Sprintf("row %d, column %d: %v", i+1, j+1, err)}
			}
		}
		y = append(y, vals[0])
		md = append(md, vals[1])
		vd = append(vd, vals[2])
	}

	return New(y, md, vd, mdFooting, vdFooting)
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// SaveXLSX writes the envelope in the layout read by LoadXLSX
func (e *InternalForces) SaveXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"y (m)", "Md (N m/m)", "Vd (N/m)"}); err != nil {
		return err
	}
	for i := range e.Y {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{e.Y[i], e.MdMax[i], e.VdMax[i]}); err != nil {
			return err
		}
	}
	cell, err := excelize.CoordinatesToCellName(1, len(e.Y)+2)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &[]interface{}{FootingLabel, e.MdFooting, e.VdFooting}); err != nil {
		return err
	}
	return f.SaveAs(path)
}
