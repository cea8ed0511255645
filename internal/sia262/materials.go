package sia262

import (
	"fmt"
	"math"
	"strings"
)

// SIA 262:2013 material constants. SI units (Pa, m).

const (
	// Partial safety factors (Section 2.3.2)
	GammaC = 1.5  // concrete
	GammaS = 1.15 // reinforcing steel

	// Modulus of elasticity for reinforcing steel (Section 3.2.2.4)
	Es = 205e9 // Pa

	// Maximum aggregate size used by default for the shear size factor kg
	DMaxDefault = 32e-3 // m

	// Steel stress limit under permanent loads, normal crack requirements (Figure 31)
	StressLimitPermanent = 230e6 // Pa
)

// Concrete is a concrete grade
type Concrete struct {
	Name   string
	Fck    float64 // Characteristic cylinder strength (Pa)
	GammaC float64 // Partial factor, GammaC when zero
	DMax   float64 // Maximum aggregate size (m), DMaxDefault when zero
}

func (c Concrete) gammaC() float64 {
	if c.GammaC > 0 {
		return c.GammaC
	}
	return GammaC
}

// EtaFc reduces the strength of brittle high-strength concretes
// SIA 262 Eq. (26)
func (c Concrete) EtaFc() float64 {
	return math.Min(math.Pow(30e6/c.Fck, 1.0/3.0), 1.0)
}

// Fcd is the design compressive strength
// SIA 262 Eq. (2)
func (c Concrete) Fcd() float64 {
	return c.EtaFc() * c.Fck / c.gammaC()
}

// Fctm is the mean tensile strength
// SIA 262 Eq. (98)
func (c Concrete) Fctm() float64 {
	return 0.3 * math.Pow(c.Fck/1e6, 2.0/3.0) * 1e6
}

// TauCd is the design shear stress limit
// SIA 262 Eq. (3)
func (c Concrete) TauCd() float64 {
	return 0.3 * math.Sqrt(c.Fck/1e6) / c.gammaC() * 1e6
}

// Fbd is the design bond strength
// SIA 262 Eq. (101)
func (c Concrete) Fbd() float64 {
	return 1.4 * c.Fctm() / c.gammaC()
}

// Kg accounts for the aggregate size in the shear resistance of slabs
// SIA 262 Eq. (37)
func (c Concrete) Kg() float64 {
	dMax := c.DMax
	if dMax <= 0 {
		dMax = DMaxDefault
	}
	return 48 / (16 + dMax*1e3)
}

// Steel is a reinforcing steel grade
type Steel struct {
	Name   string
	Fsk    float64 // Characteristic yield strength (Pa)
	GammaS float64 // Partial factor, GammaS when zero
	Es     float64 // Modulus of elasticity (Pa), Es when zero
}

// Fsd is the design yield strength
func (s Steel) Fsd() float64 {
	gamma := s.GammaS
	if gamma <= 0 {
		gamma = GammaS
	}
	return s.Fsk / gamma
}

// Modulus returns the modulus of elasticity
func (s Steel) Modulus() float64 {
	if s.Es > 0 {
		return s.Es
	}
	return Es
}

// EpsilonSd is the design yield strain
func (s Steel) EpsilonSd() float64 {
	return s.Fsd() / s.Modulus()
}

// Concrete grades (SIA 262 Table 3)
var (
	C20_25 = Concrete{Name: "C20/25", Fck: 20e6}
	C25_30 = Concrete{Name: "C25/30", Fck: 25e6}
	C30_37 = Concrete{Name: "C30/37", Fck: 30e6}
	C35_45 = Concrete{Name: "C35/45", Fck: 35e6}
	C40_50 = Concrete{Name: "C40/50", Fck: 40e6}
	C45_55 = Concrete{Name: "C45/55", Fck: 45e6}
	C50_60 = Concrete{Name: "C50/60", Fck: 50e6}
)

// Reinforcing steel grades (SIA 262 Table 9)
var (
	B500A = Steel{Name: "B500A", Fsk: 500e6}
	B500B = Steel{Name: "B500B", Fsk: 500e6}
	B500C = Steel{Name: "B500C", Fsk: 500e6}
)

var concretes = []Concrete{C20_25, C25_30, C30_37, C35_45, C40_50, C45_55, C50_60}

var steels = []Steel{B500A, B500B, B500C}

// ConcreteByName looks up a concrete grade, e.g. "C25/30"
func ConcreteByName(name string) (Concrete, error) {
	for _, c := range concretes {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return Concrete{}, fmt.Errorf("unknown concrete grade %q", name)
}

// SteelByName looks up a reinforcing steel grade, e.g. "B500B"
func SteelByName(name string) (Steel, error) {
	for _, s := range steels {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return Steel{}, fmt.Errorf("unknown steel grade %q", name)
}
