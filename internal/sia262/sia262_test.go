package sia262

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_concrete01(tst *testing.T) {

	chk.PrintTitle("concrete01. C25/30 design values")

	c := C25_30
	chk.Float64(tst, "ηfc ", 1e-15, c.EtaFc(), 1.0)
	chk.Float64(tst, "fcd ", 1e-6, c.Fcd(), 25e6/1.5)
	chk.Float64(tst, "fctm", 1e-4, c.Fctm(), 2.564963920015045e6)
	chk.Float64(tst, "τcd ", 1e-6, c.TauCd(), 1e6)
	chk.Float64(tst, "fbd ", 1e-4, c.Fbd(), 1.4*2.564963920015045e6/1.5)
	chk.Float64(tst, "kg  ", 1e-15, c.Kg(), 1.0)

	high := C50_60
	chk.Float64(tst, "ηfc C50/60", 1e-12, high.EtaFc(), 0.843432665301749)
}

func Test_steel01(tst *testing.T) {

	chk.PrintTitle("steel01. B500B design values")

	s := B500B
	chk.Float64(tst, "fsd ", 1e-6, s.Fsd(), 500e6/1.15)
	chk.Float64(tst, "εsd ", 1e-15, s.EpsilonSd(), 500e6/1.15/205e9)
}

func Test_lookup01(tst *testing.T) {

	chk.PrintTitle("lookup01. grades by name")

	c, err := ConcreteByName(" c30/37 ")
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "fck", 1e-15, c.Fck, 30e6)

	if _, err := ConcreteByName("C12/15"); err == nil {
		tst.Errorf("unknown grade must fail")
	}

	s, err := SteelByName("B500C")
	if err != nil {
		tst.Fatal(err)
	}
	chk.String(tst, s.Name, "B500C")
}

func Test_combinations01(tst *testing.T) {

	chk.PrintTitle("combinations01. governing moment and SLS ratio")

	m := LoadMoments{Dead: 10, Earth: 40, Surcharge: 20}
	mu, combo := CalculateGoverningMoment(m, ULSCombinations)
	chk.Float64(tst, "Mu", 1e-12, mu, 1.35*10+1.35*40+1.5*20)
	chk.String(tst, combo.ID, "ULS-1")

	f := SLSFromULSFactor(m)
	chk.Float64(tst, "SLS/ULS", 1e-12, f, (10+40+0.3*20)/mu)

	chk.Float64(tst, "no load", 1e-15, SLSFromULSFactor(LoadMoments{}), 0)
}
