package rcsection

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcw/internal/rebar"
	"github.com/alexiusacademia/gorcw/internal/sia262"
)

// ErrAxialNotSupported is returned when a tension or compression check
// receives an axial force; only the minimum reinforcement is verified.
var ErrAxialNotSupported = errors.New("axial force verification not implemented")

// Section represents a rectangular reinforced concrete strip with one
// layer of tension reinforcement
type Section struct {
	Rebars   rebar.Family
	Concrete sia262.Concrete

	// Geometry (m)
	B float64 // width
	H float64 // total depth

	// Steel stress limit under permanent loads (Pa)
	StressLimit float64
}

// New creates a section with the default permanent load stress limit
func New(rebars rebar.Family, concrete sia262.Concrete, b, h float64) *Section {
	return &Section{
		Rebars:      rebars,
		Concrete:    concrete,
		B:           b,
		H:           h,
		StressLimit: sia262.StressLimitPermanent,
	}
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if s.B <= 0 || s.H <= 0 {
		return fmt.Errorf("invalid section dimensions: b=%.3f m, h=%.3f m", s.B, s.H)
	}
	if s.Concrete.Fck <= 0 {
		return fmt.Errorf("invalid concrete strength: fck=%g Pa", s.Concrete.Fck)
	}
	if err := s.Rebars.Validate(); err != nil {
		return err
	}
	if s.EffectiveDepth() <= 0 {
		return fmt.Errorf("reinforcement does not fit in the section: h=%.3f m, cover=%.3f m", s.H, s.Rebars.EffectiveCover())
	}
	return nil
}

// EffectiveDepth returns d, the depth to the tension steel centroid (m)
func (s *Section) EffectiveDepth() float64 {
	return s.H - s.Rebars.EffectiveCover()
}

// MR returns the bending resistance (N·m)
func (s *Section) MR() float64 {
	return s.Rebars.MR(s.Concrete, s.B, s.H)
}

// VR returns the shear resistance (N) of a slab without shear
// reinforcement under the design moment md
// SIA 262 Eqs. (35) to (39)
func (s *Section) VR(md float64) float64 {
	d := s.EffectiveDepth()
	mr := s.MR()
	if d <= 0 || mr <= 0 {
		return 0
	}
	epsilonV := s.Rebars.Steel.EpsilonSd() * math.Abs(md) / mr
	kd := 1 / (1 + epsilonV*d*1e3*s.Concrete.Kg())
	return kd * s.Concrete.TauCd() * s.B * d
}

// MinAreaFlexion returns the minimum tension steel area under bending (m²/m)
func (s *Section) MinAreaFlexion() float64 {
	return s.Rebars.MinAreaFlexion(s.Concrete, s.H)
}

// MinAreaTension returns the minimum steel area under tension (m²/m)
func (s *Section) MinAreaTension() float64 {
	return s.Rebars.MinAreaTension(s.Concrete, s.H)
}

// As returns the tension steel area (m²/m)
func (s *Section) As() float64 {
	return s.Rebars.As()
}
