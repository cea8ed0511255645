package wall

import (
	stderrors "errors"
	"fmt"

	"github.com/Konstantin8105/errors"
	"github.com/alexiusacademia/gorcw/internal/rcsection"
)

// Block is the verification of one rebar position
type Block struct {
	Position int
	Title    string
	Results  []*rcsection.Result // empty for positions without verification
	Err      error               // failure of this block only
}

// Verified reports whether the block has results to show
func (b Block) Verified() bool {
	return len(b.Results) > 0
}

type blockDef struct {
	pos   int
	title string
	run   func() ([]*rcsection.Result, error)
}

func (w *Wall) blockDefs() []blockDef {
	return []blockDef{
		{1, "outer starter bars", w.checkStemBase},
		{2, "outer stem bars", w.checkStem},
		{3, "footing top bars", w.checkFooting},
		{4, "inner starter bars", w.compressionCheck(4, 12)},
		{5, "inner stem bars", w.compressionCheck(5, 12)},
		{6, "crown bars", w.checkCrown},
		{7, "footing bottom transverse bars", w.compressionCheck(7, 8)},
		{8, "footing bottom longitudinal bars", w.tractionCheck(8)},
		{9, "footing top longitudinal bars", w.tractionCheck(9)},
		{10, "footing skin bars", nil},
		{11, "stem outer longitudinal bars", w.tractionCheck(11)},
		{12, "stem inner longitudinal bars", w.tractionCheck(12)},
		{13, "crown longitudinal bars", nil},
	}
}

// Check verifies every rebar position in report order. A failing block is
// recorded and the following blocks still run; the returned error lists
// all block failures.
func (w *Wall) Check() ([]Block, error) {
	if w.Phase() != EnvelopesAssigned {
		return nil, fmt.Errorf("wall %s: %s phase, both ULS and SLS envelopes are needed", w.Name(), w.Phase())
	}

	et := errors.New(fmt.Sprintf("wall %s verification", w.Name()))
	defs := w.blockDefs()
	blocks := make([]Block, 0, len(defs))
	for _, s := range defs {
		b := Block{Position: s.pos, Title: s.title}
		if s.run != nil {
			results, err := s.run()
			if err != nil {
				b.Err = fmt.Errorf("reinforcement %d: %w", s.pos, err)
				et.Add(b.Err)
			} else {
				b.Results = results
			}
		}
		blocks = append(blocks, b)
	}

	if et.IsError() {
		return blocks, et
	}
	return blocks, nil
}

// IsBlockFailure reports whether err only lists failed blocks, the
// verification of the other blocks having completed
func IsBlockFailure(err error) bool {
	var et *errors.Tree
	return stderrors.As(err, &et)
}

func flexionAndStress(sec *rcsection.Section, md, vd, mSLS float64) ([]*rcsection.Result, error) {
	// axial force neglected
	flexion, err := sec.CheckFlexion(0, md, vd)
	if err != nil {
		return nil, err
	}
	stress, err := sec.CheckStress(mSLS)
	if err != nil {
		return nil, err
	}
	return []*rcsection.Result{flexion, stress}, nil
}

// checkStemBase verifies position 1 at the stem encastrement
func (w *Wall) checkStemBase() ([]*rcsection.Result, error) {
	g := w.Geometry
	sec, err := w.Section(1)
	if err != nil {
		return nil, err
	}
	vd, err := w.uls.VdEncastrement(g.StemBottomWidth)
	if err != nil {
		return nil, err
	}
	md, err := w.uls.MdEncastrement(g.FootingThickness)
	if err != nil {
		return nil, err
	}
	mSLS, err := w.sls.MdEncastrement(g.FootingThickness)
	if err != nil {
		return nil, err
	}
	return flexionAndStress(sec, md, vd, mSLS)
}

// checkStem verifies position 2 where the starter bars end
func (w *Wall) checkStem() ([]*rcsection.Result, error) {
	y, err := w.AnchorageCut()
	if err != nil {
		return nil, err
	}
	sec, err := w.Section2At(y)
	if err != nil {
		return nil, err
	}
	vd, err := w.uls.Vd(y)
	if err != nil {
		return nil, err
	}
	md, err := w.uls.Md(y)
	if err != nil {
		return nil, err
	}
	mSLS, err := w.sls.Md(y)
	if err != nil {
		return nil, err
	}
	return flexionAndStress(sec, md, vd, mSLS)
}

// checkFooting verifies position 3 with the footing values
func (w *Wall) checkFooting() ([]*rcsection.Result, error) {
	sec, err := w.Section(3)
	if err != nil {
		return nil, err
	}
	return flexionAndStress(sec, w.uls.MdFooting, w.uls.VdFooting, w.sls.MdFooting)
}

// checkCrown verifies position 6 for minimum reinforcement only
func (w *Wall) checkCrown() ([]*rcsection.Result, error) {
	sec, err := w.Section(6)
	if err != nil {
		return nil, err
	}
	r, err := sec.CheckFlexion(0, 0, 0)
	if err != nil {
		return nil, err
	}
	return []*rcsection.Result{r}, nil
}

// compressionCheck verifies the bars at pos against the transverse
// reinforcement of position trsv
func (w *Wall) compressionCheck(pos, trsv int) func() ([]*rcsection.Result, error) {
	return func() ([]*rcsection.Result, error) {
		sec, err := w.Section(pos)
		if err != nil {
			return nil, err
		}
		other, err := w.Section(trsv)
		if err != nil {
			return nil, err
		}
		r, err := sec.CheckCompression(0, other.As())
		if err != nil {
			return nil, err
		}
		return []*rcsection.Result{r}, nil
	}
}

// tractionCheck verifies distribution bars at pos
func (w *Wall) tractionCheck(pos int) func() ([]*rcsection.Result, error) {
	return func() ([]*rcsection.Result, error) {
		sec, err := w.Section(pos)
		if err != nil {
			return nil, err
		}
		r, err := sec.CheckTraction(0)
		if err != nil {
			return nil, err
		}
		return []*rcsection.Result{r}, nil
	}
}
