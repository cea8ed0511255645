package diagram

import (
	"strings"

	"github.com/guptarohit/asciigraph"
)

// DrawASCIIEnvelope renders the envelopes for the terminal, crown on the
// left and stem base on the right
func DrawASCIIEnvelope(data EnvelopeDiagramData, height int) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	if height <= 0 {
		height = 12
	}

	// plot from the crown (largest height) down to the base
	moment := make([]float64, len(data.Moment))
	shear := make([]float64, len(data.Shear))
	n := len(data.Height)
	reverse := n > 1 && data.Height[0] < data.Height[n-1]
	for i := range data.Height {
		j := i
		if reverse {
			j = n - 1 - i
		}
		moment[i] = data.Moment[j]
		shear[i] = data.Shear[j]
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(moment,
		asciigraph.Height(height),
		asciigraph.Caption("Md (kN m/m), crown to base")))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(shear,
		asciigraph.Height(height),
		asciigraph.Caption("Vd (kN/m), crown to base")))
	sb.WriteString("\n")
	return sb.String(), nil
}
