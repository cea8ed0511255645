package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	envelopeScaleXLSX   string
	envelopeScaleSheet  string
	envelopeScaleWall   string
	envelopeScaleLimit  string
	envelopeScaleFactor float64
	envelopeScaleOutput string
)

var envelopeScaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Scale an envelope",
	Long: `Multiply the moments and shears of an envelope (footing values
included) by a factor and write the result to a new spreadsheet.
Heights are unchanged.

Examples:
  # SLS envelope approximated from the ULS one
  gorcw envelope scale --xlsx uls.xlsx --factor 0.7 -o sls.xlsx`,
	Run: runEnvelopeScale,
}

func init() {
	envelopeCmd.AddCommand(envelopeScaleCmd)

	envelopeScaleCmd.Flags().StringVar(&envelopeScaleXLSX, "xlsx", "", "Path to envelope spreadsheet")
	envelopeScaleCmd.Flags().StringVar(&envelopeScaleSheet, "sheet", "", "Sheet name (default first sheet)")
	envelopeScaleCmd.Flags().StringVarP(&envelopeScaleWall, "file", "f", "", "Path to wall file (json, yaml)")
	envelopeScaleCmd.Flags().StringVar(&envelopeScaleLimit, "limit", "ULS", "Envelope of the wall file (ULS or SLS)")
	envelopeScaleCmd.Flags().Float64Var(&envelopeScaleFactor, "factor", 1, "Scale factor [required]")
	envelopeScaleCmd.MarkFlagRequired("factor")
	envelopeScaleCmd.Flags().StringVarP(&envelopeScaleOutput, "output", "o", "", "Output xlsx file [required]")
	envelopeScaleCmd.MarkFlagRequired("output")
}

func runEnvelopeScale(cmd *cobra.Command, args []string) {
	e, err := readEnvelope(envelopeScaleXLSX, envelopeScaleSheet, envelopeScaleWall, envelopeScaleLimit)
	if err != nil {
		fmt.Printf("Error reading envelope: %v\n", err)
		return
	}

	scaled := e.Scaled(envelopeScaleFactor)
	if err := scaled.SaveXLSX(envelopeScaleOutput); err != nil {
		fmt.Printf("Error writing envelope: %v\n", err)
		return
	}
	fmt.Printf("  ✓ Envelope x %.3f written to: %s\n", envelopeScaleFactor, envelopeScaleOutput)
	fmt.Printf("    Md at base: %.2f -> %.2f kN m/m\n", e.MdMax[len(e.MdMax)-1]/1e3, scaled.MdMax[len(scaled.MdMax)-1]/1e3)
}
