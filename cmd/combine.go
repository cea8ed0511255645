package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcw/internal/sia262"
	"github.com/spf13/cobra"
)

var (
	// Characteristic moments (kN-m/m)
	combineDead      float64
	combineEarth     float64
	combineSurcharge float64

	combineShowAll bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine characteristic moments with SIA 260 load factors",
	Long: `Calculate the design moment of a retaining wall section from its
characteristic moments using SIA 260 combinations.

The ratio between the quasi-permanent SLS moment and the governing ULS
moment is printed as well; it is the sls_factor of a wall file when
only the ULS envelope is known.

Load Types:
  G  - Self weight of wall and backfill
  E  - Earth pressure
  Q  - Variable surcharge on the backfill

Examples:
  gorcw combine --earth 40 --surcharge 10
  gorcw combine --dead 5 --earth 40 --surcharge 10 --all`,
	Run: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().Float64VarP(&combineDead, "dead", "g", 0, "Moment due to self weight (kN-m/m)")
	combineCmd.Flags().Float64VarP(&combineEarth, "earth", "e", 0, "Moment due to earth pressure (kN-m/m)")
	combineCmd.Flags().Float64VarP(&combineSurcharge, "surcharge", "q", 0, "Moment due to surcharge (kN-m/m)")

	combineCmd.Flags().BoolVarP(&combineShowAll, "all", "a", false, "Show all load combination results")
}

func runCombine(cmd *cobra.Command, args []string) {
	moments := sia262.LoadMoments{
		Dead:      combineDead,
		Earth:     combineEarth,
		Surcharge: combineSurcharge,
	}

	if moments.Dead == 0 && moments.Earth == 0 && moments.Surcharge == 0 {
		fmt.Println("Error: Please provide at least one characteristic moment.")
		fmt.Println("Use 'gorcw combine --help' for usage information.")
		return
	}

	printHeader("SIA 260 DESIGN MOMENT CALCULATION")

	printSection("CHARACTERISTIC MOMENTS (kN-m/m):")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if moments.Dead != 0 {
		fmt.Fprintf(w, "  Self weight (G):\t%.2f\n", moments.Dead)
	}
	if moments.Earth != 0 {
		fmt.Fprintf(w, "  Earth pressure (E):\t%.2f\n", moments.Earth)
	}
	if moments.Surcharge != 0 {
		fmt.Fprintf(w, "  Surcharge (Q):\t%.2f\n", moments.Surcharge)
	}
	w.Flush()
	fmt.Println()

	maxMd, governingCombo := sia262.CalculateGoverningMoment(moments, sia262.ULSCombinations)

	if combineShowAll {
		printSection("LOAD COMBINATIONS (SIA 260):")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tM (kN-m/m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t──────────\n")
		for _, combo := range sia262.ULSCombinations {
			md := combo.CalculateFactoredMoment(moments)
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, md, marker)
		}
		for _, combo := range sia262.SLSCombinations {
			fmt.Fprintf(w, "  %s\t%s\t%.2f\n", combo.ID, combo.Description, combo.CalculateFactoredMoment(moments))
		}
		w.Flush()
		fmt.Println()
	}

	printSection("RESULT:")
	if governingCombo.ID == "" {
		fmt.Println("  No combination gives a positive moment.")
		fmt.Println()
		return
	}
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Printf("  SLS/ULS factor: %.3f\n", sia262.SLSFromULSFactor(moments))
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  DESIGN MOMENT (Md) = %.2f kN-m/m  \n", maxMd)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}
