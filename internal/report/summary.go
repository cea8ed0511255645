// Package report writes summaries of wall verifications as spreadsheets and
// PDF tables.
package report

import (
	"math"
	"strconv"

	"github.com/alexiusacademia/gorcw/internal/wall"
)

// Row is one line of a verification summary, in report units
type Row struct {
	Position int
	Title    string
	Kind     string
	Check    string
	Unit     string
	Demand   float64
	Capacity float64
	Factor   float64
	Verdict  string
	Error    string
}

// units converts SI check values to report units
var units = map[string]struct {
	label string
	scale float64
}{
	"As":    {"cm2/m", 1e4},
	"M":     {"kNm/m", 1e-3},
	"V":     {"kN/m", 1e-3},
	"sigma": {"MPa", 1e-6},
}

// Rows flattens the blocks into one row per check. Blocks without checks
// give a single row carrying their error, if any.
func Rows(blocks []wall.Block) []Row {
	var rows []Row
	for _, b := range blocks {
		if b.Err != nil || !b.Verified() {
			r := Row{Position: b.Position, Title: b.Title, Verdict: "--"}
			if b.Err != nil {
				r.Verdict = "failed"
				r.Error = b.Err.Error()
			}
			rows = append(rows, r)
			continue
		}
		for _, res := range b.Results {
			for _, c := range res.Checks {
				u, ok := units[c.Name]
				if !ok {
					u.scale = 1
				}
				rows = append(rows, Row{
					Position: b.Position,
					Title:    b.Title,
					Kind:     string(res.Kind),
					Check:    c.Name,
					Unit:     u.label,
					Demand:   c.Demand * u.scale,
					Capacity: c.Capacity * u.scale,
					Factor:   c.Factor(),
					Verdict:  c.Verdict().String(),
				})
			}
		}
	}
	return rows
}

// Header is the column header of the summaries
var Header = []string{"Position", "Title", "Verification", "Check", "Unit", "Demand", "Resistance", "Factor", "Verdict", "Error"}

// hasValues reports whether the row holds a check
func (r Row) hasValues() bool {
	return r.Check != ""
}

// FactorString formats the factor, "-" for a null demand
func (r Row) FactorString() string {
	if math.IsInf(r.Factor, 0) || math.IsNaN(r.Factor) {
		return "-"
	}
	return strconv.FormatFloat(r.Factor, 'f', 2, 64)
}
