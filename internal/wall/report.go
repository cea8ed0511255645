package wall

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gorcw/internal/diagram"
	"github.com/alexiusacademia/gorcw/internal/latex"
)

// EnvelopeDiagram returns the ULS envelope in drawing units
func (w *Wall) EnvelopeDiagram() (diagram.EnvelopeDiagramData, error) {
	if w.uls == nil {
		return diagram.EnvelopeDiagramData{}, fmt.Errorf("wall %s: ULS envelope not assigned", w.Name())
	}
	c := w.uls.Curves()
	return diagram.EnvelopeDiagramData{
		Title:  fmt.Sprintf("Internal forces, wall %s", w.Name()),
		Height: c.Z,
		Moment: c.Moment,
		Shear:  c.Shear,
	}, nil
}

// WriteGraphics draws the ULS envelope as <name>.eps and <name>.pdf in dir
func (w *Wall) WriteGraphics(dir string) error {
	data, err := w.EnvelopeDiagram()
	if err != nil {
		return err
	}
	for _, ext := range []string{".eps", ".pdf"} {
		if err := diagram.ExportEnvelope(data, filepath.Join(dir, w.Name()+ext)); err != nil {
			return err
		}
	}
	return nil
}

// WriteDef writes the wall definition table: envelope graphic, dimensions
// and materials
func (w *Wall) WriteDef(out io.Writer) error {
	name := latex.Escape(w.Name())
	lw := latex.NewWriter(out)
	lw.Raw("\\begin{table}\n")
	lw.Raw("\\begin{center}\n")
	lw.Raw("\\begin{tabular}[H]{|l|}\n")
	lw.Raw("\\hline\n")
	lw.Printf("\\multicolumn{1}{|c|}{\\textsc{%s}}\\\\\n", name)
	lw.Raw("\\hline\n")
	lw.Raw("\\begin{tabular}{c|l}\n")
	lw.Raw("\\begin{minipage}{85mm}\n")
	lw.Raw("\\vspace{2mm}\n")
	lw.Raw("\\begin{center}\n")
	lw.Printf("\\includegraphics[width=80mm]{%s}\n", w.Name())
	lw.Raw("\\end{center}\n")
	lw.Raw("\\vspace{1pt}\n")
	lw.Raw("\\end{minipage} & \n")
	if err := lw.Err(); err != nil {
		return err
	}
	if err := w.Geometry.WriteGeometry(out); err != nil {
		return err
	}
	lw.Raw("\\end{tabular} \\\\\n")
	lw.Raw("\\hline\n")
	lw.Raw("\\begin{tabular}{llll}\n")
	lw.Raw("\\multicolumn{3}{c}{\\textsc{Materials}}\\\\\n")
	lw.Printf("  Concrete: %s & ", latex.Escape(w.Concrete.Name))
	lw.Printf("  Steel: %s & ", latex.Escape(w.Reinforcement.Steel.Name))
	lw.Printf("  Cover: "+latex.Diam+" mm\\\\\n", w.Reinforcement.Cover*1e3)
	lw.Raw("\\end{tabular} \\\\\n")
	lw.Raw("\\hline\n")
	lw.Raw("\\end{tabular}\n")
	lw.Printf("\\caption{Materials and dimensions of wall %s} \\label{tb_def_%s}\n", name, w.Name())
	lw.Raw("\\end{center}\n")
	lw.Raw("\\end{table}\n")
	return lw.Err()
}

// WriteBlocks writes the verification of every block as a supertabular
func (w *Wall) WriteBlocks(out io.Writer, blocks []Block) error {
	name := latex.Escape(w.Name())
	lw := latex.NewWriter(out)
	lw.Printf("\\bottomcaption{Reinforcement of wall %s} \\label{tb_%s}\n", name, w.Name())
	lw.Printf("\\tablefirsthead{\\hline\n\\multicolumn{1}{|c|}{\\textsc{Reinforcement wall %s}}\\\\\\hline\n}\n", name)
	lw.Printf("\\tablehead{\\hline\n\\multicolumn{1}{|c|}{\\textsc{%s (continued)}}\\\\\\hline\n}\n", name)
	lw.Raw("\\tabletail{\\hline \\multicolumn{1}{|r|}{../..}\\\\\\hline}\n")
	lw.Raw("\\tablelasttail{\\hline}\n")
	lw.Raw("\\begin{center}\n")
	lw.Raw("\\begin{supertabular}[H]{|l|}\n")
	lw.Raw("\\hline\n")
	for _, b := range blocks {
		lw.Printf("\\textbf{Reinforcement %d (%s):}\\\\\n", b.Position, b.Title)
		if err := lw.Err(); err != nil {
			return err
		}
		switch {
		case b.Err != nil:
			lw.Line("  \\textit{Verification failed: " + latex.Escape(b.Err.Error()) + "}")
		case !b.Verified():
			lw.Line("  --")
		default:
			for _, r := range b.Results {
				if err := r.WriteLaTeX(out); err != nil {
					return err
				}
			}
		}
	}
	lw.Raw("\\hline\n")
	lw.Raw("\\end{supertabular}\n")
	lw.Raw("\\end{center}\n")
	return lw.Err()
}

// WriteResult writes the verification report <name>.tex in dir together
// with the envelope graphics. The document lists every block, failed ones
// included, and is written in one go so no partial file is left behind.
// The returned error lists the failed blocks.
func (w *Wall) WriteResult(dir string) error {
	blocks, checkErr := w.Check()
	if blocks == nil {
		return checkErr
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := w.WriteGraphics(dir); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := w.WriteDef(&buf); err != nil {
		return err
	}
	if err := w.WriteBlocks(&buf, blocks); err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(dir, w.Name()+".tex"), buf.Bytes()); err != nil {
		return err
	}
	return checkErr
}

// writeFileAtomic replaces path with data through a temporary file
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
