// Package wall implements the rough design of cantilever retaining walls:
// reinforcement table, section factory and the verification report.
package wall

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcw/internal/envelope"
	"github.com/alexiusacademia/gorcw/internal/geometry"
	"github.com/alexiusacademia/gorcw/internal/sia262"
	"github.com/cpmech/gosl/io"
)

// B is the width of the design strip (m)
const B = 1.0

// Phase tells whether the wall can be verified
type Phase int

const (
	// GeometryOnly until both envelopes are assigned
	GeometryOnly Phase = iota
	// EnvelopesAssigned once ULS and SLS envelopes are known
	EnvelopesAssigned
)

func (p Phase) String() string {
	if p == EnvelopesAssigned {
		return "geometry+envelopes"
	}
	return "geometry-only"
}

// ConsistencyWarning reports an envelope whose stem height differs from the
// wall geometry. It never stops the computation: the envelope keeps its own
// stem height for its queries.
type ConsistencyWarning struct {
	Envelope       string  // "ULS" or "SLS"
	WallHeight     float64 // m
	EnvelopeHeight float64 // m
}

func (w ConsistencyWarning) Error() string {
	return fmt.Sprintf("stem height (%g m) different from length of %s internal forces envelope (%g m)",
		w.WallHeight, w.Envelope, w.EnvelopeHeight)
}

// Wall is a cantilever retaining wall
type Wall struct {
	Geometry      geometry.Cantilever
	Concrete      sia262.Concrete
	Reinforcement *Reinforcement

	// Logf receives the consistency warnings, gosl yellow output by default
	Logf func(msg string, prm ...interface{})

	uls, sls *envelope.InternalForces

	warnings []ConsistencyWarning
}

// New creates a wall in C25/30 concrete with B500B reinforcement
func New(g geometry.Cantilever, concreteCover float64) *Wall {
	return &Wall{
		Geometry:      g,
		Concrete:      sia262.C25_30,
		Reinforcement: NewReinforcement(concreteCover, sia262.B500B),
		Logf:          io.PfYel,
	}
}

// Name returns the wall name
func (w *Wall) Name() string {
	return w.Geometry.Name
}

// Phase returns the current phase
func (w *Wall) Phase() Phase {
	if w.uls != nil && w.sls != nil {
		return EnvelopesAssigned
	}
	return GeometryOnly
}

// ULS returns the ultimate limit state envelope, nil until assigned
func (w *Wall) ULS() *envelope.InternalForces {
	return w.uls
}

// SLS returns the serviceability limit state envelope, nil until assigned
func (w *Wall) SLS() *envelope.InternalForces {
	return w.sls
}

// Warnings returns the consistency warnings raised so far
func (w *Wall) Warnings() []ConsistencyWarning {
	return w.warnings
}

// SetULSEnvelope assigns the ultimate limit state envelope of the stem
func (w *Wall) SetULSEnvelope(e *envelope.InternalForces) error {
	if e == nil {
		return fmt.Errorf("wall %s: nil ULS envelope", w.Name())
	}
	w.uls = e
	w.checkHeights()
	return nil
}

// SetSLSEnvelope assigns the serviceability limit state envelope of the stem
func (w *Wall) SetSLSEnvelope(e *envelope.InternalForces) error {
	if e == nil {
		return fmt.Errorf("wall %s: nil SLS envelope", w.Name())
	}
	w.sls = e
	w.checkHeights()
	return nil
}

// checkHeights adopts the stem height of the first envelope when the
// geometry has none and compares every assigned envelope afterwards
func (w *Wall) checkHeights() {
	envs := []struct {
		name string
		e    *envelope.InternalForces
	}{{"ULS", w.uls}, {"SLS", w.sls}}

	for _, env := range envs {
		if env.e == nil {
			continue
		}
		if w.Geometry.StemHeight == 0 {
			w.Geometry.StemHeight = env.e.StemHeight
			continue
		}
		if !sameHeight(w.Geometry.StemHeight, env.e.StemHeight) && !w.warned(env.name, env.e.StemHeight) {
			warning := ConsistencyWarning{
				Envelope:       env.name,
				WallHeight:     w.Geometry.StemHeight,
				EnvelopeHeight: env.e.StemHeight,
			}
			w.warnings = append(w.warnings, warning)
			if w.Logf != nil {
				w.Logf("warning: wall %s: %v\n", w.Name(), warning)
			}
		}
	}
}

func (w *Wall) warned(name string, height float64) bool {
	for _, wn := range w.warnings {
		if wn.Envelope == name && wn.EnvelopeHeight == height {
			return true
		}
	}
	return false
}

func sameHeight(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

// BasicAnchorageLength returns the anchorage length of the bars at pos
func (w *Wall) BasicAnchorageLength(pos int) (float64, error) {
	f, err := w.Reinforcement.Armature(pos)
	if err != nil {
		return 0, err
	}
	return f.BasicAnchorageLength(w.Concrete), nil
}
