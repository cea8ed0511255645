// Package config reads wall input files and the tool environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gorcw/internal/envelope"
	"github.com/alexiusacademia/gorcw/internal/geometry"
	"github.com/alexiusacademia/gorcw/internal/rebar"
	"github.com/alexiusacademia/gorcw/internal/sia262"
	"github.com/alexiusacademia/gorcw/internal/wall"
	"gopkg.in/yaml.v3"
)

// Armature overrides the default bars of one rebar position
type Armature struct {
	Position int     `json:"position" yaml:"position"`
	Diam     float64 `json:"diam" yaml:"diam"`       // m
	Spacing  float64 `json:"spacing" yaml:"spacing"` // m
}

// EnvelopeSource gives an envelope either inline or as a spreadsheet
type EnvelopeSource struct {
	Table *envelope.Table `json:"table,omitempty" yaml:"table,omitempty"`
	XLSX  string          `json:"xlsx,omitempty" yaml:"xlsx,omitempty"`
	Sheet string          `json:"sheet,omitempty" yaml:"sheet,omitempty"`
}

// WallFile is the content of a wall input file. Lengths in metres, forces
// in N and N·m per metre of wall.
type WallFile struct {
	Geometry      geometry.Cantilever `json:"geometry" yaml:"geometry"`
	Concrete      string              `json:"concrete,omitempty" yaml:"concrete,omitempty"`
	Steel         string              `json:"steel,omitempty" yaml:"steel,omitempty"`
	Cover         float64             `json:"cover,omitempty" yaml:"cover,omitempty"`
	Reinforcement []Armature          `json:"reinforcement,omitempty" yaml:"reinforcement,omitempty"`

	ULS EnvelopeSource  `json:"uls" yaml:"uls"`
	SLS *EnvelopeSource `json:"sls,omitempty" yaml:"sls,omitempty"`

	// Without SLS envelope, the ULS one is scaled by SLSFactor or by the
	// factor derived from the characteristic moments.
	SLSFactor      float64             `json:"sls_factor,omitempty" yaml:"sls_factor,omitempty"`
	Characteristic *sia262.LoadMoments `json:"characteristic,omitempty" yaml:"characteristic,omitempty"`

	dir string
}

// Load reads a wall file. The format follows the extension: .json, .yaml
// or .yml.
func Load(path string) (*WallFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wf WallFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &wf)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &wf)
	default:
		return nil, fmt.Errorf("%s: unknown wall file format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	wf.dir = filepath.Dir(path)

	if err := wf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &wf, nil
}

// Validate checks the file content that does not need the envelopes
func (wf *WallFile) Validate() error {
	if err := wf.Geometry.Validate(); err != nil {
		return err
	}
	if wf.Cover < 0 {
		return fmt.Errorf("cover must not be negative: %g m", wf.Cover)
	}
	if wf.ULS.Table == nil && wf.ULS.XLSX == "" {
		return fmt.Errorf("wall %s: ULS envelope missing", wf.Geometry.Name)
	}
	if wf.SLS == nil && wf.SLSFactor <= 0 && wf.Characteristic == nil {
		return fmt.Errorf("wall %s: SLS envelope, sls_factor or characteristic moments needed", wf.Geometry.Name)
	}
	return nil
}

// Envelope builds the envelope of the source. Relative spreadsheet paths
// are taken from dir.
func (s EnvelopeSource) Envelope(dir string) (*envelope.InternalForces, error) {
	if s.Table != nil {
		return envelope.FromTable(*s.Table)
	}
	path := s.XLSX
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return envelope.LoadXLSX(path, s.Sheet)
}

// Build returns the wall with its reinforcement and both envelopes assigned
func (wf *WallFile) Build() (*wall.Wall, error) {
	concrete := sia262.C25_30
	if wf.Concrete != "" {
		c, err := sia262.ConcreteByName(wf.Concrete)
		if err != nil {
			return nil, err
		}
		concrete = c
	}
	steel := sia262.B500B
	if wf.Steel != "" {
		s, err := sia262.SteelByName(wf.Steel)
		if err != nil {
			return nil, err
		}
		steel = s
	}
	cover := wf.Cover
	if cover == 0 {
		cover = wall.DefaultCover
	}

	w := wall.New(wf.Geometry, cover)
	w.Concrete = concrete
	w.Reinforcement = wall.NewReinforcement(cover, steel)
	for _, a := range wf.Reinforcement {
		if err := w.Reinforcement.SetArmature(a.Position, rebar.New(steel, a.Diam, a.Spacing, cover)); err != nil {
			return nil, err
		}
	}

	uls, err := wf.ULS.Envelope(wf.dir)
	if err != nil {
		return nil, fmt.Errorf("ULS envelope: %w", err)
	}
	if err := w.SetULSEnvelope(uls); err != nil {
		return nil, err
	}

	sls, err := wf.slsEnvelope(uls)
	if err != nil {
		return nil, fmt.Errorf("SLS envelope: %w", err)
	}
	if err := w.SetSLSEnvelope(sls); err != nil {
		return nil, err
	}
	return w, nil
}

func (wf *WallFile) slsEnvelope(uls *envelope.InternalForces) (*envelope.InternalForces, error) {
	if wf.SLS != nil {
		return wf.SLS.Envelope(wf.dir)
	}
	f := wf.SLSFactor
	if f <= 0 && wf.Characteristic != nil {
		f = sia262.SLSFromULSFactor(*wf.Characteristic)
	}
	if f <= 0 {
		return nil, fmt.Errorf("no factor to derive it from the ULS envelope")
	}
	return uls.Scaled(f), nil
}
