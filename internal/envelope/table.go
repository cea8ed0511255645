package envelope

// Table is an envelope written out as columns, as found in wall files.
// Values in SI units.
type Table struct {
	Y         []float64 `json:"y" yaml:"y"`
	Md        []float64 `json:"md" yaml:"md"`
	Vd        []float64 `json:"vd" yaml:"vd"`
	MdFooting float64   `json:"md_footing" yaml:"md_footing"`
	VdFooting float64   `json:"vd_footing" yaml:"vd_footing"`
}

// FromTable builds the envelope of table t
func FromTable(t Table) (*InternalForces, error) {
	return New(t.Y, t.Md, t.Vd, t.MdFooting, t.VdFooting)
}

// Table returns the samples of the envelope
func (e *InternalForces) Table() Table {
	c := e.Clone()
	return Table{
		Y:         c.Y,
		Md:        c.MdMax,
		Vd:        c.VdMax,
		MdFooting: c.MdFooting,
		VdFooting: c.VdFooting,
	}
}
