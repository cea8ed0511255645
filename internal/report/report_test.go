package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gorcw/internal/rcsection"
	"github.com/alexiusacademia/gorcw/internal/rebar"
	"github.com/alexiusacademia/gorcw/internal/sia262"
	"github.com/alexiusacademia/gorcw/internal/wall"
	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

func sampleBlocks(tst *testing.T) []wall.Block {
	s := rcsection.New(rebar.New(sia262.B500B, 12e-3, 0.15, 40e-3), sia262.C25_30, 1.0, 0.30)
	flexion, err := s.CheckFlexion(0, 40e3, 100e3)
	if err != nil {
		tst.Fatal(err)
	}
	crown, err := s.CheckFlexion(0, 0, 0)
	if err != nil {
		tst.Fatal(err)
	}
	return []wall.Block{
		{Position: 1, Title: "outer starter bars", Results: []*rcsection.Result{flexion}},
		{Position: 2, Title: "outer stem bars", Err: errors.New("reinforcement 2: out of range")},
		{Position: 6, Title: "crown bars", Results: []*rcsection.Result{crown}},
		{Position: 10, Title: "footing skin bars"},
	}
}

func Test_report01(tst *testing.T) {

	chk.PrintTitle("report01. summary rows")

	rows := Rows(sampleBlocks(tst))
	chk.Int(tst, "rows", len(rows), 6)

	positions := make([]int, len(rows))
	for i, r := range rows {
		positions[i] = r.Position
	}
	chk.Ints(tst, "positions", positions, []int{1, 1, 1, 2, 6, 10})

	m := rows[1]
	chk.String(tst, m.Check, "M")
	chk.String(tst, m.Unit, "kNm/m")
	chk.Float64(tst, "Md", 1e-12, m.Demand, 40)
	chk.Float64(tst, "MR", 1e-6, m.Capacity, 80.04191802824865)

	chk.String(tst, rows[3].Verdict, "failed")
	chk.String(tst, rows[3].Error, "reinforcement 2: out of range")
	chk.String(tst, rows[5].Verdict, "--")
	chk.String(tst, Row{Factor: 1.2345}.FactorString(), "1.23")
}

func Test_report02(tst *testing.T) {

	chk.PrintTitle("report02. spreadsheet summary")

	path := filepath.Join(tst.TempDir(), "summary.xlsx")
	if err := WriteXLSX(sampleBlocks(tst), path); err != nil {
		tst.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		tst.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Int(tst, "rows", len(rows), 7)
	chk.String(tst, rows[0][0], "Position")
	chk.String(tst, rows[2][3], "M")
	chk.String(tst, rows[2][5], "40")
	chk.String(tst, rows[4][8], "failed")
}

func Test_report03(tst *testing.T) {

	chk.PrintTitle("report03. pdf summary")

	path := filepath.Join(tst.TempDir(), "summary.pdf")
	if err := WritePDF("M1", sampleBlocks(tst), path); err != nil {
		tst.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		tst.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		tst.Errorf("not a pdf file")
	}
}
