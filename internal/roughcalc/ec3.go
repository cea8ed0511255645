package roughcalc

import (
	"fmt"
	"math"
	"strings"
)

// Imperfection factors of the EC3 buckling curves (EN 1993-1-1 table 6.1)
var imperfectionFactors = map[string]float64{
	"a0": 0.13,
	"a":  0.21,
	"b":  0.34,
	"c":  0.49,
	"d":  0.76,
}

// BucklingCurves lists the known buckling curves
var BucklingCurves = []string{"a0", "a", "b", "c", "d"}

// ImperfectionFactor returns alpha for the buckling curve (a0, a, b, c or d)
func ImperfectionFactor(curve string) (float64, error) {
	alpha, ok := imperfectionFactors[strings.ToLower(strings.TrimSpace(curve))]
	if !ok {
		return 0, fmt.Errorf("unknown buckling curve %q", curve)
	}
	return alpha, nil
}

// Lambda1 returns the reference slenderness pi*sqrt(E/fy)
func Lambda1(fy, e float64) float64 {
	return math.Pi * math.Sqrt(e/fy)
}

// RelativeSlenderness returns the non-dimensional slenderness of a class 1
// to 3 member of buckling length leq and radius of gyration i
func RelativeSlenderness(leq, i, fy, e float64) (float64, error) {
	if i <= 0 || fy <= 0 || e <= 0 || leq < 0 {
		return 0, fmt.Errorf("invalid member data: Leq=%g m, i=%g m, fy=%g Pa, E=%g Pa", leq, i, fy, e)
	}
	return leq / i / Lambda1(fy, e), nil
}

// ReductionFactor returns chi for the relative slenderness lambda and the
// buckling curve (EN 1993-1-1 6.3.1.2)
func ReductionFactor(lambda float64, curve string) (float64, error) {
	alpha, err := ImperfectionFactor(curve)
	if err != nil {
		return 0, err
	}
	if lambda < 0 || math.IsNaN(lambda) {
		return 0, fmt.Errorf("relative slenderness must not be negative: %g", lambda)
	}
	phi := 0.5 * (1 + alpha*(lambda-0.2) + lambda*lambda)
	return math.Min(1/(phi+math.Sqrt(phi*phi-lambda*lambda)), 1), nil
}

// BucklingResistance returns chi*A*fy/gammaM1 (N)
func BucklingResistance(chi, area, fy, gammaM1 float64) float64 {
	return chi * area * fy / gammaM1
}
