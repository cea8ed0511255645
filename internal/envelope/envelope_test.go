package envelope

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func sample(tst *testing.T) *InternalForces {
	e, err := New(
		[]float64{0, 1, 2, 1, 0},
		[]float64{10, 20, 30, 25, 15},
		[]float64{1, 2, 3, 4, 5},
		40, 8)
	if err != nil {
		tst.Fatal(err)
	}
	return e
}

func Test_envelope01(tst *testing.T) {

	chk.PrintTitle("envelope01. repeated heights, last value wins")

	e := sample(tst)
	chk.Array(tst, "y ", 1e-15, e.Y, []float64{0, 1, 2})
	chk.Array(tst, "Md", 1e-15, e.MdMax, []float64{15, 25, 30})
	chk.Array(tst, "Vd", 1e-15, e.VdMax, []float64{5, 4, 3})
	chk.Float64(tst, "stem height", 1e-15, e.StemHeight, 2)

	md, err := e.Md(1)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "Md(1)", 1e-15, md, 25)
}

func Test_envelope02(tst *testing.T) {

	chk.PrintTitle("envelope02. absolute heights, sorting and interpolation")

	e, err := New(
		[]float64{-3, 0, -1.5, 1.5},
		[]float64{-90, 0, -20, -22},
		[]float64{-60, 0, -30, -32},
		0, 0)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Array(tst, "y", 1e-15, e.Y, []float64{0, 1.5, 3})
	for i := 1; i < len(e.Y); i++ {
		if e.Y[i] <= e.Y[i-1] {
			tst.Errorf("heights must be strictly increasing: %v", e.Y)
		}
	}

	// exact at knots, magnitudes reported
	for i, yi := range e.Y {
		md, _ := e.Md(yi)
		vd, _ := e.Vd(yi)
		chk.Float64(tst, "Md knot", 1e-15, md, math.Abs(e.MdMax[i]))
		chk.Float64(tst, "Vd knot", 1e-15, vd, math.Abs(e.VdMax[i]))
	}

	md, _ := e.Md(2.25)
	chk.Float64(tst, "Md(2.25)", 1e-12, md, 56)
	vd, _ := e.Vd(0.75)
	chk.Float64(tst, "Vd(0.75)", 1e-12, vd, 16)
}

func Test_envelope03(tst *testing.T) {

	chk.PrintTitle("envelope03. range and data errors")

	e := sample(tst)
	for _, y := range []float64{-0.1, 2.0001, math.NaN()} {
		_, err := e.Md(y)
		var rerr *RangeError
		if !errors.As(err, &rerr) {
			tst.Errorf("Md(%g): expected RangeError, got %v", y, err)
		}
		_, err = e.Vd(y)
		if !errors.As(err, &rerr) {
			tst.Errorf("Vd(%g): expected RangeError, got %v", y, err)
		}
	}

	tcs := []struct {
		name      string
		y, md, vd []float64
		mf        float64
	}{
		{"empty", nil, nil, nil, 0},
		{"lengths", []float64{0, 1}, []float64{1}, []float64{1, 2}, 0},
		{"nan", []float64{0, math.NaN()}, []float64{1, 2}, []float64{1, 2}, 0},
		{"footing", []float64{0, 1}, []float64{1, 2}, []float64{1, 2}, math.Inf(1)},
	}
	for _, tc := range tcs {
		tst.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.y, tc.md, tc.vd, tc.mf, 0)
			var derr *DataError
			if !errors.As(err, &derr) {
				t.Errorf("expected DataError, got %v", err)
			}
		})
	}
}

func Test_envelope04(tst *testing.T) {

	chk.PrintTitle("envelope04. scaling")

	e := sample(tst)
	s := e.Scaled(2)
	chk.Array(tst, "Md x2", 1e-15, s.MdMax, []float64{30, 50, 60})
	chk.Array(tst, "y x2 ", 1e-15, s.Y, e.Y)
	chk.Float64(tst, "MdFooting x2", 1e-15, s.MdFooting, 80)
	chk.Float64(tst, "VdFooting x2", 1e-15, s.VdFooting, 16)
	md, _ := s.Md(2)
	chk.Float64(tst, "Md(2) x2", 1e-15, md, 60)

	// the original is untouched by the non-mutating form
	chk.Array(tst, "Md orig", 1e-15, e.MdMax, []float64{15, 25, 30})

	// linearity at arbitrary heights, negative factors keep magnitudes
	for _, f := range []float64{0.5, 1.35, -2} {
		sf := e.Scaled(f)
		for _, y := range []float64{0, 0.3, 1.7, 2} {
			want, _ := e.Md(y)
			got, _ := sf.Md(y)
			chk.Float64(tst, "linear Md", 1e-12, got, math.Abs(f)*want)
			want, _ = e.Vd(y)
			got, _ = sf.Vd(y)
			chk.Float64(tst, "linear Vd", 1e-12, got, math.Abs(f)*want)
		}
	}

	// in place round trip
	f := 1.35
	e.Scale(f).Scale(1 / f)
	chk.Array(tst, "Md round trip", 1e-12, e.MdMax, []float64{15, 25, 30})
	chk.Array(tst, "Vd round trip", 1e-12, e.VdMax, []float64{5, 4, 3})
	chk.Float64(tst, "MdFooting round trip", 1e-12, e.MdFooting, 40)
}

func Test_envelope05(tst *testing.T) {

	chk.PrintTitle("envelope05. single sample and stem base values")

	one, err := New([]float64{-2}, []float64{-7}, []float64{3}, 0, 0)
	if err != nil {
		tst.Fatal(err)
	}
	md, err := one.Md(2)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "Md single", 1e-15, md, 7)
	if _, err = one.Vd(1); err == nil {
		tst.Errorf("single sample must only answer at its own height")
	}

	e, err := New([]float64{0, 4}, []float64{0, 100}, []float64{0, 80}, 0, 0)
	if err != nil {
		tst.Fatal(err)
	}
	md, _ = e.MdEncastrement(0.5)
	chk.Float64(tst, "Md encastrement", 1e-12, md, 100*3.75/4)
	vd, _ := e.VdEncastrement(0.4)
	chk.Float64(tst, "Vd encastrement", 1e-12, vd, 80*3.6/4)
	chk.Float64(tst, "y stem", 1e-15, e.YStem(1), 3)

	c := e.Curves()
	chk.Array(tst, "z", 1e-15, c.Z, []float64{4, 0})
	chk.Array(tst, "M kN", 1e-15, c.Moment, []float64{0, 0.1})
}

func Test_envelope06(tst *testing.T) {

	chk.PrintTitle("envelope06. spreadsheet import and export")

	e := sample(tst)
	path := filepath.Join(tst.TempDir(), "envelope.xlsx")
	if err := e.SaveXLSX(path); err != nil {
		tst.Fatal(err)
	}
	r, err := LoadXLSX(path, "")
	if err != nil {
		tst.Fatal(err)
	}
	chk.Array(tst, "y ", 1e-12, r.Y, e.Y)
	chk.Array(tst, "Md", 1e-12, r.MdMax, e.MdMax)
	chk.Array(tst, "Vd", 1e-12, r.VdMax, e.VdMax)
	chk.Float64(tst, "MdFooting", 1e-12, r.MdFooting, 40)
	chk.Float64(tst, "VdFooting", 1e-12, r.VdFooting, 8)

	if _, err = LoadXLSX(filepath.Join(tst.TempDir(), "missing.xlsx"), ""); err == nil {
		tst.Errorf("missing file must fail")
	}
}
