package report

import (
	"fmt"

	"github.com/alexiusacademia/gorcw/internal/wall"
	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet holding the summary
const SheetName = "Summary"

// WriteXLSX writes one row per check of the blocks to path
func WriteXLSX(blocks []wall.Block, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i, r := range Rows(blocks) {
		values := []interface{}{r.Position, r.Title, r.Kind, r.Check, r.Unit}
		if r.hasValues() {
			values = append(values, r.Demand, r.Capacity, r.FactorString())
		} else {
			values = append(values, "", "", "")
		}
		values = append(values, r.Verdict, r.Error)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("summary row %d: %w", i+1, err)
		}
	}

	return f.SaveAs(path)
}
