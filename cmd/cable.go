package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcw/internal/roughcalc"
	"github.com/spf13/cobra"
)

var (
	cableL1    float64
	cableQ     float64
	cableAngle float64
)

var cableCmd = &cobra.Command{
	Use:   "cable",
	Short: "Cable forces of a cable-stayed deck (simple model)",
	Long: `Preliminary cable forces of a cable-stayed bridge: every cable
carries the deck load over its tributary length.

Examples:
  gorcw cable --l1 10 --q 120 --angle 30`,
	Run: runCable,
}

func init() {
	rootCmd.AddCommand(cableCmd)

	cableCmd.Flags().Float64Var(&cableL1, "l1", 0, "Tributary length of a cable (m) [required]")
	cableCmd.MarkFlagRequired("l1")
	cableCmd.Flags().Float64Var(&cableQ, "q", 0, "Deck load (kN/m) [required]")
	cableCmd.MarkFlagRequired("q")
	cableCmd.Flags().Float64Var(&cableAngle, "angle", 0, "Angle of the cable with the deck (degrees) [required]")
	cableCmd.MarkFlagRequired("angle")
}

func runCable(cmd *cobra.Command, args []string) {
	model, err := roughcalc.NewCableStayed(cableL1)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	theta := cableAngle * math.Pi / 180
	n, err := model.NCable(cableQ, theta)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	h, err := model.HCable(cableQ, theta)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeader("CABLE-STAYED DECK - SIMPLE MODEL")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tributary length (l1):\t%.2f m\n", cableL1)
	fmt.Fprintf(w, "  Deck load (q):\t%.2f kN/m\n", cableQ)
	fmt.Fprintf(w, "  Cable angle (θ):\t%.1f°\n", cableAngle)
	fmt.Fprintf(w, "  \t\n")
	fmt.Fprintf(w, "  Cable force (N):\t%.2f kN\n", n)
	fmt.Fprintf(w, "  Vertical reaction (V):\t%.2f kN\n", model.VCable(cableQ))
	fmt.Fprintf(w, "  Horizontal reaction (H):\t%.2f kN\n", h)
	w.Flush()
	fmt.Println()
}
