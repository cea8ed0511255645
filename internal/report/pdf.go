package report

import (
	"fmt"
	"time"

	"github.com/alexiusacademia/gorcw/internal/wall"
	"github.com/phpdave11/gofpdf"
)

var pdfColumns = []struct {
	title string
	width float64 // mm
	align string
}{
	{"Pos.", 10, "C"},
	{"Title", 58, "L"},
	{"Check", 26, "L"},
	{"Demand", 24, "R"},
	{"Resistance", 24, "R"},
	{"Factor", 16, "R"},
	{"Verdict", 16, "C"},
}

// WritePDF writes the summary table of the blocks of wall name to path.
// Failed blocks are listed with their error below the table.
func WritePDF(name string, blocks []wall.Block, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Wall %s: verification summary", name)))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	var failed []Row
	for _, r := range Rows(blocks) {
		if r.Error != "" {
			failed = append(failed, r)
		}
		cells := []string{fmt.Sprint(r.Position), tr(r.Title), "", "", "", "", r.Verdict}
		if r.hasValues() {
			cells[2] = fmt.Sprintf("%s %s", r.Kind, r.Check)
			cells[3] = fmt.Sprintf("%.2f %s", r.Demand, r.Unit)
			cells[4] = fmt.Sprintf("%.2f %s", r.Capacity, r.Unit)
			cells[5] = r.FactorString()
		}
		for i, c := range pdfColumns {
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(failed) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "Failed verifications")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, r := range failed {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d (%s): %s", r.Position, r.Title, r.Error)), "", "L", false)
		}
	}

	return pdf.OutputFileAndClose(path)
}
