package wall

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gorcw/internal/latex"
)

// SchemaPositions are the rebar positions annotated on the schema
var SchemaPositions = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

// schemaHeight is the drawn wall height (cm)
const schemaHeight = 9.0

// DefStrings returns the LaTeX bar definition of every annotated position.
// Positions without a section (10) map to "--".
func (w *Wall) DefStrings() (map[int]string, error) {
	defs := make(map[int]string, len(SchemaPositions))
	for _, pos := range SchemaPositions {
		sec, err := w.Section(pos)
		if _, ok := err.(*NoSectionError); ok {
			defs[pos] = "--"
			continue
		}
		if err != nil {
			return nil, err
		}
		defs[pos] = sec.Rebars.LaTeXDefString()
	}
	return defs, nil
}

type annotation struct {
	x, y   float64 // anchor on the outline (m)
	dx, dy float64 // leader direction (cm)
	anchor string  // TikZ node anchor
}

func (w *Wall) annotations() map[int]annotation {
	g := w.Geometry
	t := g.FootingThickness
	h := g.StemHeight
	xBack := g.ToeLength + g.StemBottomWidth
	front := func(z float64) float64 {
		if h <= 0 {
			return g.ToeLength
		}
		return g.ToeLength + (g.StemBottomWidth-g.StemTopWidth)*z/h
	}
	width := g.FootingWidth()
	return map[int]annotation{
		1:  {xBack, t + 0.15*h, 1.5, 0, "west"},
		2:  {xBack, t + 0.65*h, 1.5, 0, "west"},
		3:  {xBack + g.HeelLength/2, t, 0.5, 1.2, "south west"},
		4:  {front(0.15 * h), t + 0.15*h, -1.5, 0, "east"},
		5:  {front(0.65 * h), t + 0.65*h, -1.5, 0, "east"},
		6:  {xBack - g.StemTopWidth/2, t + h, 0, 0.8, "south"},
		7:  {width / 2, 0, 0, -0.8, "north"},
		8:  {width / 4, 0, -0.5, -1.6, "north"},
		9:  {g.ToeLength / 2, t, -0.5, 1.2, "south east"},
		10: {width, t / 2, 1.0, 0, "west"},
		11: {xBack, t + 0.4*h, 1.5, 0, "west"},
		12: {front(0.4 * h), t + 0.4*h, -1.5, 0, "east"},
	}
}

// WriteSchema writes the TikZ figure of the wall with its rebar annotations
func (w *Wall) WriteSchema(out io.Writer) error {
	defs, err := w.DefStrings()
	if err != nil {
		return err
	}
	total := w.Geometry.TotalHeight()
	if total <= 0 {
		return fmt.Errorf("wall %s: unknown wall height", w.Name())
	}
	scale := schemaHeight / total

	lw := latex.NewWriter(out)
	lw.Raw("\\begin{figure}\n")
	lw.Raw("\\begin{center}\n")
	lw.Printf("\\begin{tikzpicture}[x=%.4fcm,y=%.4fcm]\n", scale, scale)
	lw.Raw("\\draw[thick] ")
	for i, p := range w.Geometry.Outline() {
		if i > 0 {
			lw.Raw(" -- ")
		}
		lw.Printf("(%.3f,%.3f)", p.X, p.Y)
	}
	lw.Raw(" -- cycle;\n")

	notes := w.annotations()
	for _, pos := range SchemaPositions {
		a := notes[pos]
		lw.Printf("\\draw[->] (%.3f,%.3f) ++(%.2fcm,%.2fcm) node[anchor=%s] {\\small %d: %s} -- (%.3f,%.3f);\n",
			a.x, a.y, a.dx, a.dy, a.anchor, pos, defs[pos], a.x, a.y)
	}
	lw.Raw("\\end{tikzpicture}\n")
	lw.Raw("\\end{center}\n")
	name := latex.Escape(w.Name())
	lw.Printf("\\caption{Reinforcement schema of wall %s} \\label{fg_%s}\n", name, w.Name())
	lw.Raw("\\end{figure}\n")
	return lw.Err()
}

// DrawSchema writes schema_<name>.tex in dir
func (w *Wall) DrawSchema(dir string) error {
	var buf bytes.Buffer
	if err := w.WriteSchema(&buf); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(dir, "schema_"+w.Name()+".tex"), buf.Bytes())
}
