package wall

import (
	"fmt"

	"github.com/alexiusacademia/gorcw/internal/rcsection"
)

// NoSectionError reports a position without a verified section
type NoSectionError struct {
	Position int
}

func (e *NoSectionError) Error() string {
	return fmt.Sprintf("rebar position %d has no section to verify", e.Position)
}

func (w *Wall) newSection(pos int, h float64) (*rcsection.Section, error) {
	f, err := w.Reinforcement.Armature(pos)
	if err != nil {
		return nil, err
	}
	return rcsection.New(f, w.Concrete, B, h), nil
}

// Section returns the RC section checked for rebar position pos.
// Positions 5, 9 and 12 share the sections of positions 4, 8 and 11.
// Position 2 needs the ULS envelope to locate its cut.
func (w *Wall) Section(pos int) (*rcsection.Section, error) {
	g := w.Geometry
	switch pos {
	case 1:
		return w.newSection(1, g.StemBottomWidth)
	case 2:
		y, err := w.AnchorageCut()
		if err != nil {
			return nil, err
		}
		return w.Section2At(y)
	case 3:
		return w.newSection(3, g.FootingThickness)
	case 4, 5:
		return w.newSection(4, g.StemBottomWidth)
	case 6:
		return w.newSection(6, g.StemTopWidth)
	case 7:
		return w.newSection(7, g.FootingThickness)
	case 8, 9:
		return w.newSection(8, g.FootingThickness)
	case 11, 12:
		return w.newSection(11, (g.StemTopWidth+g.StemBottomWidth)/2)
	}
	if pos < FirstPosition || pos > LastPosition {
		return nil, &PositionError{Position: pos}
	}
	return nil, &NoSectionError{Position: pos}
}

// Section2At returns the section of position 2 at height y below the crown
func (w *Wall) Section2At(y float64) (*rcsection.Section, error) {
	return w.newSection(2, w.Geometry.Depth(y))
}

// AnchorageCut returns the height below the crown where the outer starter
// bars (position 1) are fully anchored and position 2 takes over
func (w *Wall) AnchorageCut() (float64, error) {
	if w.uls == nil {
		return 0, fmt.Errorf("wall %s: ULS envelope not assigned", w.Name())
	}
	lb, err := w.BasicAnchorageLength(1)
	if err != nil {
		return 0, err
	}
	return w.uls.YStem(lb), nil
}
