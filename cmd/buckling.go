package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcw/internal/roughcalc"
	"github.com/spf13/cobra"
)

var (
	bucklingLambda  float64
	bucklingLeq     float64
	bucklingRadius  float64
	bucklingFy      float64
	bucklingE       float64
	bucklingCurve   string
	bucklingArea    float64
	bucklingGammaM1 float64
)

var bucklingCmd = &cobra.Command{
	Use:   "buckling",
	Short: "EC3 flexural buckling reduction factor",
	Long: `Calculate the flexural buckling reduction factor χ of a steel
member (EN 1993-1-1 6.3.1) for buckling curves a0, a, b, c and d.

Give either the relative slenderness (--lambda) or the member data
(--leq, --i); with the section area (--area) the buckling resistance
is printed as well.

Examples:
  gorcw buckling --lambda 1.0 --curve b
  gorcw buckling --leq 3000 --i 50 --fy 235 --curve c --area 1000`,
	Run: runBuckling,
}

func init() {
	rootCmd.AddCommand(bucklingCmd)

	bucklingCmd.Flags().Float64Var(&bucklingLambda, "lambda", 0, "Relative slenderness")
	bucklingCmd.Flags().Float64Var(&bucklingLeq, "leq", 0, "Buckling length (mm)")
	bucklingCmd.Flags().Float64Var(&bucklingRadius, "i", 0, "Radius of gyration (mm)")
	bucklingCmd.Flags().Float64Var(&bucklingFy, "fy", 235, "Yield strength (MPa)")
	bucklingCmd.Flags().Float64Var(&bucklingE, "E", 210000, "Elastic modulus (MPa)")
	bucklingCmd.Flags().StringVar(&bucklingCurve, "curve", "b", "Buckling curve (a0, a, b, c, d)")
	bucklingCmd.Flags().Float64Var(&bucklingArea, "area", 0, "Section area (mm²)")
	bucklingCmd.Flags().Float64Var(&bucklingGammaM1, "gamma-m1", 1.0, "Partial factor γM1")
}

func runBuckling(cmd *cobra.Command, args []string) {
	lambda := bucklingLambda
	if !cmd.Flags().Changed("lambda") {
		l, err := roughcalc.RelativeSlenderness(bucklingLeq/1e3, bucklingRadius/1e3, bucklingFy*1e6, bucklingE*1e6)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		lambda = l
	}

	alpha, err := roughcalc.ImperfectionFactor(bucklingCurve)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	chi, err := roughcalc.ReductionFactor(lambda, bucklingCurve)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeader("EC3 FLEXURAL BUCKLING")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Buckling curve:\t%s (α = %.2f)\n", bucklingCurve, alpha)
	fmt.Fprintf(w, "  Relative slenderness (λ̄):\t%.4f\n", lambda)
	fmt.Fprintf(w, "  Reduction factor (χ):\t%.4f\n", chi)
	if bucklingArea > 0 {
		nb := roughcalc.BucklingResistance(chi, bucklingArea/1e6, bucklingFy*1e6, bucklingGammaM1)
		fmt.Fprintf(w, "  Buckling resistance (Nb,Rd):\t%.2f kN\n", nb/1e3)
	}
	w.Flush()
	fmt.Println()
}
