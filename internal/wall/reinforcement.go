package wall

import (
	"fmt"

	"github.com/alexiusacademia/gorcw/internal/rebar"
	"github.com/alexiusacademia/gorcw/internal/sia262"
)

// Rebar positions of a cantilever retaining wall
const (
	FirstPosition = 1
	LastPosition  = 14
)

// Default reinforcement assigned to every position
const (
	DefaultDiam    = 8e-3 // m
	DefaultSpacing = 0.15 // m
	DefaultCover   = 40e-3
)

// PositionError reports a rebar position outside 1..14
type PositionError struct {
	Position int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("rebar position %d outside %d..%d", e.Position, FirstPosition, LastPosition)
}

// Reinforcement maps each rebar position to its rebar family
type Reinforcement struct {
	Cover float64 // Concrete cover (m)
	Steel sia262.Steel

	families map[int]rebar.Family
}

// NewReinforcement assigns the default family to every position
func NewReinforcement(cover float64, steel sia262.Steel) *Reinforcement {
	r := &Reinforcement{
		Cover:    cover,
		Steel:    steel,
		families: make(map[int]rebar.Family, LastPosition),
	}
	def := rebar.New(steel, DefaultDiam, DefaultSpacing, cover)
	for i := FirstPosition; i <= LastPosition; i++ {
		r.families[i] = def
	}
	return r
}

// SetArmature assigns the rebar family at position pos
func (r *Reinforcement) SetArmature(pos int, family rebar.Family) error {
	if pos < FirstPosition || pos > LastPosition {
		return &PositionError{Position: pos}
	}
	if err := family.Validate(); err != nil {
		return fmt.Errorf("position %d: %w", pos, err)
	}
	r.families[pos] = family
	return nil
}

// Armature returns the rebar family at position pos
func (r *Reinforcement) Armature(pos int) (rebar.Family, error) {
	f, ok := r.families[pos]
	if !ok {
		return rebar.Family{}, &PositionError{Position: pos}
	}
	return f, nil
}
