package geometry

import (
	"fmt"
	"io"
	"math"

	"github.com/alexiusacademia/gorcw/internal/latex"
)

// Cantilever describes the cross-section of a cantilever retaining wall.
// Lengths in metres. Stem heights are measured downwards from the crown.
//
//	        top
//	       |<->|
//	       +---+   ---
//	      /    |    |
//	     /     |    | stemHeight      earth side
//	    /      |    |
//	+--+-------+--------------+  ---
//	|  toe     bottom   heel  |   | footingThickness
//	+-------------------------+  ---
type Cantilever struct {
	Name             string  `json:"name" yaml:"name"`
	StemHeight       float64 `json:"stem_height" yaml:"stem_height"`
	StemTopWidth     float64 `json:"stem_top_width" yaml:"stem_top_width"`
	StemBottomWidth  float64 `json:"stem_bottom_width" yaml:"stem_bottom_width"`
	FootingThickness float64 `json:"footing_thickness" yaml:"footing_thickness"`
	ToeLength        float64 `json:"toe_length" yaml:"toe_length"`
	HeelLength       float64 `json:"heel_length" yaml:"heel_length"`
}

// Point represents a 2D coordinate (m)
type Point struct {
	X float64
	Y float64
}

// NewCantilever creates a wall with the given stem and footing thickness.
// Stem height stays unknown (zero) until an envelope provides it.
func NewCantilever(name string, stemBottomWidth, stemTopWidth, footingThickness float64) Cantilever {
	return Cantilever{
		Name:             name,
		StemTopWidth:     stemTopWidth,
		StemBottomWidth:  stemBottomWidth,
		FootingThickness: footingThickness,
	}
}

// Validate checks if the geometry is valid
func (g Cantilever) Validate() error {
	if g.Name == "" {
		return &ValidationError{"wall must have a name"}
	}
	if g.StemTopWidth <= 0 || g.StemBottomWidth <= 0 {
		return &ValidationError{msg: fmt.Sprintf("stem widths must be positive: top=%g m, bottom=%g m", g.StemTopWidth, g.StemBottomWidth)}
	}
	if g.FootingThickness <= 0 {
		return &ValidationError{msg: fmt.Sprintf("footing thickness must be positive: %g m", g.FootingThickness)}
	}
	if g.StemHeight < 0 || g.ToeLength < 0 || g.HeelLength < 0 {
		return &ValidationError{"stem height, toe and heel lengths must not be negative"}
	}
	return nil
}

// Depth returns the stem thickness at distance y below the crown
func (g Cantilever) Depth(y float64) float64 {
	if g.StemHeight <= 0 {
		return g.StemTopWidth
	}
	return (g.StemBottomWidth-g.StemTopWidth)/g.StemHeight*y + g.StemTopWidth
}

// FootingWidth returns the total width of the footing
func (g Cantilever) FootingWidth() float64 {
	return g.ToeLength + g.StemBottomWidth + g.HeelLength
}

// TotalHeight returns the height from footing underside to crown
func (g Cantilever) TotalHeight() float64 {
	return g.StemHeight + g.FootingThickness
}

// Outline returns the wall cross-section counter-clockwise from the toe
// corner at the footing underside. The earth side face of the stem is vertical.
func (g Cantilever) Outline() []Point {
	w := g.FootingWidth()
	t := g.FootingThickness
	xBack := g.ToeLength + g.StemBottomWidth
	top := t + g.StemHeight
	return []Point{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: t},
		{X: xBack, Y: t},
		{X: xBack, Y: top},
		{X: xBack - g.StemTopWidth, Y: top},
		{X: g.ToeLength, Y: t},
		{X: 0, Y: t},
	}
}

// Area returns the cross-section area per metre of wall (m²)
func (g Cantilever) Area() float64 {
	area, _, _ := calculateAreaAndCentroid(g.Outline())
	return area
}

// Centroid returns the centroid of the cross-section
func (g Cantilever) Centroid() Point {
	_, cx, cy := calculateAreaAndCentroid(g.Outline())
	return Point{X: cx, Y: cy}
}

// calculateAreaAndCentroid uses the shoelace formula
func calculateAreaAndCentroid(vertices []Point) (area, cx, cy float64) {
	n := len(vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
		signedArea += cross
		sumX += (vertices[i].X + vertices[j].X) * cross
		sumY += (vertices[i].Y + vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// WriteGeometry writes the dimensions as the rows of a two column LaTeX tabular
func (g Cantilever) WriteGeometry(w io.Writer) error {
	lw := latex.NewWriter(w)
	lw.Raw("\\begin{tabular}{ll}\n")
	lw.Printf("\\multicolumn{2}{c}{\\textsc{Dimensions}}\\\\\n")
	lw.Printf("Stem height: & "+latex.Longs+" m\\\\\n", g.StemHeight)
	lw.Printf("Stem top width: & "+latex.Longs+" m\\\\\n", g.StemTopWidth)
	lw.Printf("Stem bottom width: & "+latex.Longs+" m\\\\\n", g.StemBottomWidth)
	lw.Printf("Footing thickness: & "+latex.Longs+" m\\\\\n", g.FootingThickness)
	lw.Printf("Toe length: & "+latex.Longs+" m\\\\\n", g.ToeLength)
	lw.Printf("Heel length: & "+latex.Longs+" m\\\\\n", g.HeelLength)
	lw.Printf("Footing width: & "+latex.Longs+" m\\\\\n", g.FootingWidth())
	lw.Printf("Concrete area: & "+latex.Longs+" m$^2$/m\\\\\n", g.Area())
	lw.Raw("\\end{tabular}\n")
	return lw.Err()
}

// ValidationError represents a geometry validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
