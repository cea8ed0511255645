package rcsection

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gorcw/internal/latex"
)

// WriteLaTeX writes the result as report lines
func (r *Result) WriteLaTeX(w io.Writer) error {
	lw := latex.NewWriter(w)

	if r.Kind != Stress {
		lw.Line(fmt.Sprintf("  Section: b= "+latex.Longs+" m, h= "+latex.Longs+" m", r.B, r.H))
		lw.Line(fmt.Sprintf("  Bars: $\\phi$ "+latex.Diam+" mm, spacing: %3.0f mm, cover: %2.0f mm, $l_b$= "+latex.Longs+" m",
			r.Rebars.Diam*1e3, r.Rebars.Spacing*1e3, r.Rebars.Cover*1e3, r.AnchorageLength))
	}

	for _, c := range r.Checks {
		switch c.Name {
		case "As":
			lw.Printf("  Area: As= "+latex.Esf+" cm$^2$/m, As,min= "+latex.Esf+" cm$^2$/m", c.Capacity*1e4, c.Demand*1e4)
			writeF(lw, "F(As)", c.Factor())
		case "M":
			lw.Printf("  Bending: Md= "+latex.Esf+" kN m/m, MR= "+latex.Esf+" kN m/m", c.Demand/1e3, c.Capacity/1e3)
			writeF(lw, "F(M)", c.Factor())
		case "V":
			lw.Printf("  Shear: Vd= "+latex.Esf+" kN/m, VR= "+latex.Esf+" kN/m", c.Demand/1e3, c.Capacity/1e3)
			writeF(lw, "F(V)", c.Factor())
		case "sigma":
			lw.Printf("  Stresses: $\\sigma_s$= "+latex.Esf+" MPa, $\\sigma_{lim}$= "+latex.Esf+" MPa", c.Demand/1e6, c.Capacity/1e6)
			writeF(lw, "F($\\sigma$)", c.Factor())
		}
	}

	return lw.Err()
}

func writeF(lw *latex.Writer, text string, factor float64) {
	lw.Line(fmt.Sprintf("  %s= %4.2f %s", text, factor, VerdictOf(factor)))
}

// WriteResultFlexion checks bending and shear and writes the result
func (s *Section) WriteResultFlexion(w io.Writer, nd, md, vd float64) error {
	r, err := s.CheckFlexion(nd, md, vd)
	if err != nil {
		return err
	}
	return r.WriteLaTeX(w)
}

// WriteResultCompression checks compressed face bars and writes the result
func (s *Section) WriteResultCompression(w io.Writer, nd, asTrsv float64) error {
	r, err := s.CheckCompression(nd, asTrsv)
	if err != nil {
		return err
	}
	return r.WriteLaTeX(w)
}

// WriteResultTraction checks distribution bars and writes the result
func (s *Section) WriteResultTraction(w io.Writer, nd float64) error {
	r, err := s.CheckTraction(nd)
	if err != nil {
		return err
	}
	return r.WriteLaTeX(w)
}

// WriteResultStress checks steel stresses under permanent loads and writes the result
func (s *Section) WriteResultStress(w io.Writer, m float64) error {
	r, err := s.CheckStress(m)
	if err != nil {
		return err
	}
	return r.WriteLaTeX(w)
}
