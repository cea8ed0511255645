package rcsection

import (
	"math"

	"github.com/alexiusacademia/gorcw/internal/rebar"
)

// Kind identifies a verification type
type Kind string

const (
	Flexion     Kind = "flexion"
	Compression Kind = "compression"
	Traction    Kind = "traction"
	Stress      Kind = "stress"
)

// Verdict classifies a safety factor
type Verdict int

const (
	Fail Verdict = iota
	Marginal
	Pass
)

// VerdictOf returns Pass above 1.0, Marginal down to 0.95 and Fail below
func VerdictOf(factor float64) Verdict {
	switch {
	case factor > 1:
		return Pass
	case factor >= 0.95:
		return Marginal
	}
	return Fail
}

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "OK!"
	case Marginal:
		return "~OK!"
	}
	return "Error!"
}

// Check is one demand/capacity comparison
type Check struct {
	Name     string  // "As", "M", "V" or "sigma"
	Demand   float64 // SI units
	Capacity float64 // SI units
}

// Factor returns capacity over demand, +Inf for a null demand
func (c Check) Factor() float64 {
	if c.Demand == 0 {
		return math.Inf(1)
	}
	return c.Capacity / c.Demand
}

// Verdict classifies the check factor
func (c Check) Verdict() Verdict {
	return VerdictOf(c.Factor())
}

// Result holds the outcome of one verification of a section
type Result struct {
	Kind Kind

	// Section
	B, H            float64
	Rebars          rebar.Family
	AnchorageLength float64 // basic anchorage length of the bars (m)

	Checks []Check
}

// IsAdequate reports whether no check failed
func (r *Result) IsAdequate() bool {
	for _, c := range r.Checks {
		if c.Verdict() == Fail {
			return false
		}
	}
	return true
}

// MinFactor returns the smallest factor of the result, +Inf without checks
func (r *Result) MinFactor() float64 {
	f := math.Inf(1)
	for _, c := range r.Checks {
		f = math.Min(f, c.Factor())
	}
	return f
}

func (s *Section) newResult(kind Kind) *Result {
	return &Result{
		Kind:            kind,
		B:               s.B,
		H:               s.H,
		Rebars:          s.Rebars,
		AnchorageLength: s.Rebars.BasicAnchorageLength(s.Concrete),
	}
}

func (s *Section) areaCheck(asMin float64) Check {
	return Check{Name: "As", Demand: asMin, Capacity: s.As()}
}

// CheckFlexion verifies the tension reinforcement under bending moment md
// and shear vd. Axial force must be zero.
func (s *Section) CheckFlexion(nd, md, vd float64) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if nd != 0 {
		return nil, ErrAxialNotSupported
	}

	result := s.newResult(Flexion)
	result.Checks = append(result.Checks, s.areaCheck(s.MinAreaFlexion()))

	if md != 0 {
		result.Checks = append(result.Checks, Check{Name: "M", Demand: math.Abs(md), Capacity: s.MR()})
	}
	if vd != 0 {
		result.Checks = append(result.Checks, Check{Name: "V", Demand: math.Abs(vd), Capacity: s.VR(md)})
	}

	return result, nil
}

// CheckCompression verifies bars in a compressed face: they must provide at
// least 20% of the transverse reinforcement area asTrsv.
func (s *Section) CheckCompression(nd, asTrsv float64) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if nd != 0 {
		return nil, ErrAxialNotSupported
	}

	result := s.newResult(Compression)
	result.Checks = append(result.Checks, s.areaCheck(0.2*asTrsv))
	return result, nil
}

// CheckTraction verifies distribution bars against half the minimum
// tension reinforcement of the section.
func (s *Section) CheckTraction(nd float64) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if nd != 0 {
		return nil, ErrAxialNotSupported
	}

	result := s.newResult(Traction)
	result.Checks = append(result.Checks, s.areaCheck(s.MinAreaTension()/2))
	return result, nil
}

// CheckStress verifies the steel stress under the permanent moment m
// SIA 262 Figure 31
func (s *Section) CheckStress(m float64) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	result := s.newResult(Stress)
	if m != 0 {
		sigma := math.Abs(m) / (0.9 * s.H * s.As())
		result.Checks = append(result.Checks, Check{Name: "sigma", Demand: sigma, Capacity: s.StressLimit})
	}
	return result, nil
}
