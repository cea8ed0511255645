// Package envelope stores the internal force envelopes of a retaining wall
// stem: maximum bending moment and shear per metre of wall, sampled at
// heights measured downwards from the crown, plus the values at the
// footing top. SI units (m, N/m, N·m/m).
package envelope

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// InternalForces holds the envelope samples and their interpolants
type InternalForces struct {
	Y     []float64 // Heights below the crown, strictly increasing (m)
	MdMax []float64 // Bending moment envelope (N·m/m)
	VdMax []float64 // Shear force envelope (N/m)

	StemHeight float64 // Largest sampled height (m)

	MdFooting float64 // Bending moment at the footing top (N·m/m)
	VdFooting float64 // Shear force at the footing top (N/m)

	md interp.PiecewiseLinear
	vd interp.PiecewiseLinear
}

// New builds an envelope from raw samples. Heights are taken in absolute
// value and, for repeated heights, the last sample wins.
func New(y, mdMax, vdMax []float64, mdFooting, vdFooting float64) (*InternalForces, error) {
	if len(y) == 0 {
		return nil, &DataError{"envelope has no samples"}
	}
	if len(mdMax) != len(y) || len(vdMax) != len(y) {
		return nil, &DataError{msg: fmt.Sprintf("sample count mismatch: %d heights, %d moments, %d shears", len(y), len(mdMax), len(vdMax))}
	}
	for i := range y {
		if !isFinite(y[i]) || !isFinite(mdMax[i]) || !isFinite(vdMax[i]) {
			return nil, &DataError{msg: fmt.Sprintf("sample %d is not finite", i)}
		}
	}
	if !isFinite(mdFooting) || !isFinite(vdFooting) {
		return nil, &DataError{"footing values are not finite"}
	}

	e := &InternalForces{
		MdFooting: mdFooting,
		VdFooting: vdFooting,
	}
	e.Y, e.MdMax, e.VdMax = filterRepeatedValues(y, mdMax, vdMax)
	e.StemHeight = e.Y[len(e.Y)-1]
	if err := e.interpolate(); err != nil {
		return nil, err
	}
	return e, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// filterRepeatedValues keys the samples by |y|, later samples overwriting
// earlier ones, and returns them sorted by height
func filterRepeatedValues(y, m, v []float64) ([]float64, []float64, []float64) {
	mapM := make(map[float64]float64, len(y))
	mapV := make(map[float64]float64, len(y))
	for i := range y {
		yi := math.Abs(y[i])
		mapM[yi] = m[i]
		mapV[yi] = v[i]
	}

	retY := make([]float64, 0, len(mapM))
	for yi := range mapM {
		retY = append(retY, yi)
	}
	sort.Float64s(retY)

	retM := make([]float64, len(retY))
	retV := make([]float64, len(retY))
	for i, yi := range retY {
		retM[i] = mapM[yi]
		retV[i] = mapV[yi]
	}
	return retY, retM, retV
}

// interpolate rebuilds the interpolants from the samples
func (e *InternalForces) interpolate() error {
	if len(e.Y) < 2 {
		// a single sample is answered directly by value
		return nil
	}
	if err := e.md.Fit(e.Y, e.MdMax); err != nil {
		return &DataError{msg: fmt.Sprintf("moment interpolant: %v", err)}
	}
	if err := e.vd.Fit(e.Y, e.VdMax); err != nil {
		return &DataError{msg: fmt.Sprintf("shear interpolant: %v", err)}
	}
	return nil
}

// MinHeight returns the lowest sampled height
func (e *InternalForces) MinHeight() float64 {
	return e.Y[0]
}

func (e *InternalForces) predict(pl *interp.PiecewiseLinear, values []float64, y float64) (float64, error) {
	if math.IsNaN(y) || y < e.Y[0] || y > e.StemHeight {
		return 0, &RangeError{Y: y, Min: e.Y[0], Max: e.StemHeight}
	}
	if len(e.Y) == 1 {
		return math.Abs(values[0]), nil
	}
	return math.Abs(pl.Predict(y)), nil
}

// Md returns the bending moment envelope magnitude at height y
func (e *InternalForces) Md(y float64) (float64, error) {
	return e.predict(&e.md, e.MdMax, y)
}

// Vd returns the shear force envelope magnitude at height y
func (e *InternalForces) Vd(y float64) (float64, error) {
	return e.predict(&e.vd, e.VdMax, y)
}

// MdEncastrement returns the bending moment at the stem base, taken at
// half the footing thickness above the footing top
func (e *InternalForces) MdEncastrement(footingThickness float64) (float64, error) {
	return e.Md(e.StemHeight - footingThickness/2)
}

// VdEncastrement returns the shear force at the stem base, taken one
// stem thickness above the footing top
func (e *InternalForces) VdEncastrement(stemBottomWidth float64) (float64, error) {
	return e.Vd(e.StemHeight - stemBottomWidth)
}

// YStem converts a distance above the stem base into a height below the crown
func (e *InternalForces) YStem(hCut float64) float64 {
	return e.StemHeight - hCut
}

// Clone returns a deep copy
func (e *InternalForces) Clone() *InternalForces {
	c := &InternalForces{
		Y:          append([]float64(nil), e.Y...),
		MdMax:      append([]float64(nil), e.MdMax...),
		VdMax:      append([]float64(nil), e.VdMax...),
		StemHeight: e.StemHeight,
		MdFooting:  e.MdFooting,
		VdFooting:  e.VdFooting,
	}
	// samples were valid when e was built
	_ = c.interpolate()
	return c
}

// Scale multiplies every moment and shear, footing values included, by f.
// Heights are left untouched.
func (e *InternalForces) Scale(f float64) *InternalForces {
	for i := range e.MdMax {
		e.MdMax[i] *= f
	}
	for i := range e.VdMax {
		e.VdMax[i] *= f
	}
	e.MdFooting *= f
	e.VdFooting *= f
	_ = e.interpolate()
	return e
}

// Scaled returns a scaled copy, leaving e unchanged
func (e *InternalForces) Scaled(f float64) *InternalForces {
	return e.Clone().Scale(f)
}

// Curves holds the envelope in drawing units: height above the stem base
// (m), moment (kN·m/m) and shear (kN/m)
type Curves struct {
	Z      []float64
	Moment []float64
	Shear  []float64
}

// Curves returns the samples converted for plotting
func (e *InternalForces) Curves() Curves {
	c := Curves{
		Z:      make([]float64, len(e.Y)),
		Moment: make([]float64, len(e.Y)),
		Shear:  make([]float64, len(e.Y)),
	}
	for i, yi := range e.Y {
		c.Z[i] = e.StemHeight - yi
		c.Moment[i] = e.MdMax[i] / 1e3
		c.Shear[i] = e.VdMax[i] / 1e3
	}
	return c
}
