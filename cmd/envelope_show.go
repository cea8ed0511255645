package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcw/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	envelopeShowXLSX   string
	envelopeShowSheet  string
	envelopeShowWall   string
	envelopeShowLimit  string
	envelopeShowHeight int
	envelopeShowExport string
)

var envelopeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print and plot an envelope",
	Long: `Print the samples of an envelope and plot Md and Vd from the
crown to the stem base.

Examples:
  gorcw envelope show --xlsx envelopes.xlsx --sheet ULS
  gorcw envelope show -f m1.yaml --limit SLS
  gorcw envelope show -f m1.yaml -o m1.png`,
	Run: runEnvelopeShow,
}

func init() {
	envelopeCmd.AddCommand(envelopeShowCmd)

	envelopeShowCmd.Flags().StringVar(&envelopeShowXLSX, "xlsx", "", "Path to envelope spreadsheet")
	envelopeShowCmd.Flags().StringVar(&envelopeShowSheet, "sheet", "", "Sheet name (default first sheet)")
	envelopeShowCmd.Flags().StringVarP(&envelopeShowWall, "file", "f", "", "Path to wall file (json, yaml)")
	envelopeShowCmd.Flags().StringVar(&envelopeShowLimit, "limit", "ULS", "Envelope of the wall file (ULS or SLS)")
	envelopeShowCmd.Flags().IntVar(&envelopeShowHeight, "height", 12, "Plot height in lines")
	envelopeShowCmd.Flags().StringVarP(&envelopeShowExport, "output", "o", "", "Export diagram to file (png, svg, pdf, eps)")
}

func runEnvelopeShow(cmd *cobra.Command, args []string) {
	e, err := readEnvelope(envelopeShowXLSX, envelopeShowSheet, envelopeShowWall, envelopeShowLimit)
	if err != nil {
		fmt.Printf("Error reading envelope: %v\n", err)
		return
	}

	printHeader("INTERNAL FORCES ENVELOPE")

	printSection("SAMPLES:")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  y (m)\tMd (kN m/m)\tVd (kN/m)\n")
	fmt.Fprintf(tw, "  ─────\t───────────\t─────────\n")
	for i, y := range e.Y {
		fmt.Fprintf(tw, "  %.3f\t%.2f\t%.2f\n", y, e.MdMax[i]/1e3, e.VdMax[i]/1e3)
	}
	fmt.Fprintf(tw, "  footing\t%.2f\t%.2f\n", e.MdFooting/1e3, e.VdFooting/1e3)
	tw.Flush()
	fmt.Println()

	c := e.Curves()
	data := diagram.EnvelopeDiagramData{
		Title:  "Internal forces envelope",
		Height: c.Z,
		Moment: c.Moment,
		Shear:  c.Shear,
	}
	plot, err := diagram.DrawASCIIEnvelope(data, envelopeShowHeight)
	if err != nil {
		fmt.Printf("Error plotting envelope: %v\n", err)
		return
	}
	fmt.Println(plot)

	if envelopeShowExport != "" {
		if err := diagram.ExportEnvelope(data, envelopeShowExport); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  ✓ Diagram exported to: %s\n", envelopeShowExport)
	}
}
