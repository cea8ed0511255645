package rebar

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcw/internal/sia262"
)

// Family is a reinforcement pattern: bars of one diameter at a constant
// spacing, per metre of wall. SI units.
type Family struct {
	Steel   sia262.Steel
	Diam    float64 // Bar diameter (m)
	Spacing float64 // Bar spacing (m)
	Cover   float64 // Concrete cover to the bar surface (m)
}

// New creates a rebar family
func New(steel sia262.Steel, diam, spacing, cover float64) Family {
	return Family{
		Steel:   steel,
		Diam:    diam,
		Spacing: spacing,
		Cover:   cover,
	}
}

// Validate checks if the family definition is valid
func (f Family) Validate() error {
	if f.Diam <= 0 {
		return fmt.Errorf("invalid bar diameter: %g m", f.Diam)
	}
	if f.Spacing <= 0 {
		return fmt.Errorf("invalid bar spacing: %g m", f.Spacing)
	}
	if f.Cover < 0 {
		return fmt.Errorf("invalid concrete cover: %g m", f.Cover)
	}
	if f.Steel.Fsk <= 0 {
		return fmt.Errorf("invalid steel yield strength: %g Pa", f.Steel.Fsk)
	}
	return nil
}

// BarArea returns the cross-sectional area of one bar (m²)
func (f Family) BarArea() float64 {
	return math.Pi * math.Pow(f.Diam/2, 2)
}

// BarsPerMeter returns the number of bars in one metre of width
func (f Family) BarsPerMeter() float64 {
	return 1.0 / f.Spacing
}

// As returns the steel area per metre (m²/m)
func (f Family) As() float64 {
	return f.BarsPerMeter() * f.BarArea()
}

// EffectiveCover returns the distance from the face to the bar centroid (m)
func (f Family) EffectiveCover() float64 {
	return f.Cover + f.Diam/2
}

// BasicAnchorageLength returns the anchorage length needed to develop fsd
// SIA 262 Eq. (102), never less than 15 diameters
func (f Family) BasicAnchorageLength(concrete sia262.Concrete) float64 {
	lbd := f.Diam / 4 * f.Steel.Fsd() / concrete.Fbd()
	return math.Max(lbd, 15*f.Diam)
}

// MinAreaFlexion returns the minimum steel area (m²/m) that carries the
// cracking moment of a slab of thickness h
func (f Family) MinAreaFlexion(concrete sia262.Concrete, h float64) float64 {
	d := h - f.EffectiveCover()
	if d <= 0 {
		return math.Inf(1)
	}
	// Mcr = fctm * b * h² / 6 for b = 1 m
	mcr := concrete.Fctm() * h * h / 6
	return mcr / (0.9 * d * f.Steel.Fsk)
}

// MinAreaTension returns the minimum steel area (m²/m) for a slab of
// thickness h in pure tension, both faces together
func (f Family) MinAreaTension(concrete sia262.Concrete, h float64) float64 {
	return concrete.Fctm() * h / f.Steel.Fsk
}

// MR returns the bending resistance (N·m) of a rectangular section of
// width b and depth h with this family as tension reinforcement.
// Rectangular stress block at fcd, compression reinforcement neglected.
func (f Family) MR(concrete sia262.Concrete, b, h float64) float64 {
	d := h - f.EffectiveCover()
	if d <= 0 {
		return 0
	}
	t := f.As() * f.Steel.Fsd()
	x := t / (concrete.Fcd() * b)
	if x > d {
		x = d
	}
	return t * (d - x/2)
}

// DefString returns the bar definition, e.g. "ø12 s=150"
func (f Family) DefString() string {
	return fmt.Sprintf("ø%.0f s=%.0f", f.Diam*1e3, f.Spacing*1e3)
}

// LaTeXDefString returns the bar definition in LaTeX math notation
func (f Family) LaTeXDefString() string {
	return fmt.Sprintf("$\\phi$%.0f s=%.0f", f.Diam*1e3, f.Spacing*1e3)
}
