// Package latex holds the small helpers used to emit LaTeX report fragments.
package latex

import (
	"fmt"
	"io"
	"strings"
)

// Number formats used across the reports
const (
	Esf   = "%6.2f" // forces and moments
	Diam  = "%2.0f" // bar diameters
	Longs = "%5.2f" // lengths
)

// Writer remembers the first write error so that a long sequence of
// fragments can be emitted without checking every call.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Printf writes a formatted fragment
func (lw *Writer) Printf(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

// Line writes s followed by a LaTeX line break and a newline
func (lw *Writer) Line(s string) {
	lw.Printf("%s\\\\\n", s)
}

// Raw writes s unchanged
func (lw *Writer) Raw(s string) {
	lw.Printf("%s", s)
}

// Err returns the first error encountered
func (lw *Writer) Err() error {
	return lw.err
}

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape quotes the LaTeX special characters in free text
func Escape(s string) string {
	return escaper.Replace(s)
}
