package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// EnvelopeDiagramData holds the stem envelope curves to draw
type EnvelopeDiagramData struct {
	Title string

	// Height above the stem base (m), one entry per sample
	Height []float64

	// Envelope values at each height
	Moment []float64 // kN·m/m
	Shear  []float64 // kN/m
}

// Validate checks the curves can be drawn
func (d EnvelopeDiagramData) Validate() error {
	if len(d.Height) == 0 {
		return fmt.Errorf("envelope diagram has no samples")
	}
	if len(d.Moment) != len(d.Height) || len(d.Shear) != len(d.Height) {
		return fmt.Errorf("envelope diagram sample count mismatch")
	}
	return nil
}

// ExportEnvelope draws the moment and shear envelopes against the stem
// height. The file format follows the extension: eps, pdf, png or svg.
func ExportEnvelope(data EnvelopeDiagramData, filename string) error {
	if err := data.Validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Internal forces"
	}
	p.X.Label.Text = "Envelope"
	p.Y.Label.Text = "Height above stem base (m)"
	p.Legend.Top = true

	moment := make(plotter.XYs, len(data.Height))
	shear := make(plotter.XYs, len(data.Height))
	for i, z := range data.Height {
		moment[i] = plotter.XY{X: data.Moment[i], Y: z}
		shear[i] = plotter.XY{X: data.Shear[i], Y: z}
	}

	momentLine, err := plotter.NewLine(moment)
	if err != nil {
		return err
	}
	momentLine.LineStyle.Width = vg.Points(2)
	momentLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(momentLine)
	p.Legend.Add("Md (kN m/m)", momentLine)

	shearLine, err := plotter.NewLine(shear)
	if err != nil {
		return err
	}
	shearLine.LineStyle.Width = vg.Points(1.5)
	shearLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	shearLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(shearLine)
	p.Legend.Add("Vd (kN/m)", shearLine)

	// Mark the samples on the moment curve
	samples, err := plotter.NewScatter(moment)
	if err != nil {
		return err
	}
	samples.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	samples.GlyphStyle.Radius = vg.Points(2)
	samples.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(samples)

	// Zero reference line
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: minOf(data.Height)},
		{X: 0, Y: maxOf(data.Height)},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	p.Add(zeroLine)

	width := 6 * vg.Inch
	height := 8 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".eps", ".pdf", ".png", ".svg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func minOf(v []float64) float64 {
	m := v[0]
	for _, x := range v {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}
