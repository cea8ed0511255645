package roughcalc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cable01(tst *testing.T) {

	chk.PrintTitle("cable01. cable-stayed bridge simple model")

	c, err := NewCableStayed(10)
	if err != nil {
		tst.Fatal(err)
	}
	n, err := c.NCable(5e3, math.Pi/6)
	if err != nil {
		tst.Fatal(err)
	}
	h, err := c.HCable(5e3, math.Pi/6)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "N", 1e-8, n, 1e5)
	chk.Float64(tst, "V", 1e-15, c.VCable(5e3), 5e4)
	chk.Float64(tst, "H", 1e-8, h, 86602.54037844387)

	// vertical cable
	h, err = c.HCable(5e3, math.Pi/2)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "H(90°)", 1e-8, h, 0)

	for _, theta := range []float64{0, -0.1, 2} {
		if _, err := c.NCable(5e3, theta); err == nil {
			tst.Errorf("angle %g should be rejected", theta)
		}
	}
	if _, err := NewCableStayed(0); err == nil {
		tst.Errorf("null tributary length should be rejected")
	}
}

func Test_ec301(tst *testing.T) {

	chk.PrintTitle("ec301. imperfection factors")

	expected := []float64{0.13, 0.21, 0.34, 0.49, 0.76}
	for i, curve := range BucklingCurves {
		alpha, err := ImperfectionFactor(curve)
		if err != nil {
			tst.Fatal(err)
		}
		chk.Float64(tst, "alpha "+curve, 1e-15, alpha, expected[i])
	}
	if _, err := ImperfectionFactor("e"); err == nil {
		tst.Errorf("unknown curve should be rejected")
	}
}

func Test_ec302(tst *testing.T) {

	chk.PrintTitle("ec302. buckling reduction factor")

	cases := []struct {
		lambda float64
		curve  string
		chi    float64
	}{
		{1.0, "b", 0.5970231915935528},
		{0.5, "a", 0.9242726422837295},
		{1.5, "c", 0.31453502185079096},
		{0.2, "d", 1},
		{0.1, "a0", 1},
	}
	for _, c := range cases {
		chi, err := ReductionFactor(c.lambda, c.curve)
		if err != nil {
			tst.Fatal(err)
		}
		chk.Float64(tst, "chi "+c.curve, 1e-12, chi, c.chi)
	}
	if _, err := ReductionFactor(-1, "a"); err == nil {
		tst.Errorf("negative slenderness should be rejected")
	}

	lmb, err := RelativeSlenderness(3.0, 0.05, 235e6, 210e9)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "lambda1", 1e-10, Lambda1(235e6, 210e9), 93.9129729381402)
	chk.Float64(tst, "lambda ", 1e-12, lmb, 0.6388893687725291)
	chk.Float64(tst, "Nb,Rd  ", 1e-6, BucklingResistance(0.5, 1e-3, 235e6, 1.0), 117500)
}
