package rebar

import (
	"testing"

	"github.com/alexiusacademia/gorcw/internal/sia262"
	"github.com/cpmech/gosl/chk"
)

func Test_family01(tst *testing.T) {

	chk.PrintTitle("family01. areas and covers")

	f := New(sia262.B500B, 12e-3, 0.15, 40e-3)
	if err := f.Validate(); err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "bars/m", 1e-12, f.BarsPerMeter(), 1/0.15)
	chk.Float64(tst, "As    ", 1e-15, f.As(), 7.539822368615504e-4)
	chk.Float64(tst, "c_eff ", 1e-15, f.EffectiveCover(), 0.046)
	chk.String(tst, f.DefString(), "ø12 s=150")
	chk.String(tst, f.LaTeXDefString(), "$\\phi$12 s=150")
}

func Test_family02(tst *testing.T) {

	chk.PrintTitle("family02. basic anchorage length")

	f8 := New(sia262.B500B, 8e-3, 0.15, 40e-3)
	chk.Float64(tst, "lbd ø8 ", 1e-9, f8.BasicAnchorageLength(sia262.C25_30), 0.36323201716930026)

	f20 := New(sia262.B500B, 20e-3, 0.15, 40e-3)
	chk.Float64(tst, "lbd ø20", 1e-9, f20.BasicAnchorageLength(sia262.C25_30), 0.9080800429232505)

	// low strength steel: the 15 diameters floor governs
	weak := sia262.Steel{Name: "S100", Fsk: 100e6}
	fw := New(weak, 20e-3, 0.15, 40e-3)
	chk.Float64(tst, "lbd min", 1e-15, fw.BasicAnchorageLength(sia262.C25_30), 0.3)
}

func Test_family03(tst *testing.T) {

	chk.PrintTitle("family03. resistance and minimum areas")

	f := New(sia262.B500B, 12e-3, 0.15, 40e-3)
	c := sia262.C25_30
	chk.Float64(tst, "MR       ", 1e-6, f.MR(c, 1.0, 0.30), 80041.91802824865)
	chk.Float64(tst, "As,min,f ", 1e-12, f.MinAreaFlexion(c, 0.30), 3.3660943832218435e-4)
	chk.Float64(tst, "As,min,t ", 1e-12, f.MinAreaTension(c, 0.30), 1.538978352009027e-3)
	chk.Float64(tst, "MR thin  ", 1e-15, f.MR(c, 1.0, 0.04), 0)
}

func Test_family04(tst *testing.T) {

	chk.PrintTitle("family04. validation")

	tcs := []struct {
		name string
		f    Family
	}{
		{"diameter", New(sia262.B500B, 0, 0.15, 0.04)},
		{"spacing", New(sia262.B500B, 12e-3, 0, 0.04)},
		{"cover", New(sia262.B500B, 12e-3, 0.15, -0.01)},
		{"steel", New(sia262.Steel{}, 12e-3, 0.15, 0.04)},
	}
	for _, tc := range tcs {
		tst.Run(tc.name, func(t *testing.T) {
			if err := tc.f.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
