package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcw/internal/rcsection"
	"github.com/alexiusacademia/gorcw/internal/rebar"
	"github.com/alexiusacademia/gorcw/internal/sia262"
	"github.com/spf13/cobra"
)

var (
	// Section (mm)
	sectionWidth  float64
	sectionHeight float64

	// Reinforcement (mm)
	sectionDiam    float64
	sectionSpacing float64
	sectionCover   float64

	// Materials
	sectionConcrete string
	sectionSteel    string

	// Internal forces
	sectionMd    float64
	sectionVd    float64
	sectionMSLS  float64
	sectionNd    float64
	sectionAsTrv float64

	sectionKind string
)

var sectionCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a rectangular RC strip",
	Long: `Verify a rectangular RC strip under design moment and shear.

Kinds of verification (--kind):
  flexion      - minimum area, bending, shear and steel stress (default)
  compression  - distribution bars against the transverse bars (--as-trsv)
  traction     - distribution bars against the tension minimum

Axial forces other than zero are not supported yet and are reported.

Examples:
  gorcw section check --depth 300 --diam 12 --spacing 150 --md 40 --vd 100
  gorcw section check --depth 300 --diam 12 --spacing 150 --md 40 --m-sls 28 --concrete C30/37
  gorcw section check --depth 350 --diam 10 --spacing 200 --kind compression --as-trsv 7.54`,
	Run: runSectionCheck,
}

func init() {
	sectionCmd.AddCommand(sectionCheckCmd)

	sectionCheckCmd.Flags().Float64VarP(&sectionWidth, "width", "b", 1000, "Strip width (mm)")
	sectionCheckCmd.Flags().Float64Var(&sectionHeight, "depth", 0, "Section depth (mm) [required]")
	sectionCheckCmd.MarkFlagRequired("depth")

	sectionCheckCmd.Flags().Float64Var(&sectionDiam, "diam", 12, "Bar diameter (mm)")
	sectionCheckCmd.Flags().Float64Var(&sectionSpacing, "spacing", 150, "Bar spacing (mm)")
	sectionCheckCmd.Flags().Float64Var(&sectionCover, "cover", 40, "Concrete cover (mm)")

	sectionCheckCmd.Flags().StringVar(&sectionConcrete, "concrete", "C25/30", "Concrete grade")
	sectionCheckCmd.Flags().StringVar(&sectionSteel, "steel", "B500B", "Reinforcing steel grade")

	sectionCheckCmd.Flags().Float64Var(&sectionMd, "md", 0, "Design bending moment (kN-m/m)")
	sectionCheckCmd.Flags().Float64Var(&sectionVd, "vd", 0, "Design shear force (kN/m)")
	sectionCheckCmd.Flags().Float64Var(&sectionMSLS, "m-sls", 0, "Quasi-permanent bending moment (kN-m/m)")
	sectionCheckCmd.Flags().Float64Var(&sectionNd, "nd", 0, "Design axial force (kN/m, tension > 0)")
	sectionCheckCmd.Flags().Float64Var(&sectionAsTrv, "as-trsv", 0, "Transverse reinforcement area (cm²/m)")
	sectionCheckCmd.Flags().StringVar(&sectionKind, "kind", "flexion", "Verification: flexion, compression or traction")
}

func runSectionCheck(cmd *cobra.Command, args []string) {
	concrete, err := sia262.ConcreteByName(sectionConcrete)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	steel, err := sia262.SteelByName(sectionSteel)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	bars := rebar.New(steel, sectionDiam/1e3, sectionSpacing/1e3, sectionCover/1e3)
	sec := rcsection.New(bars, concrete, sectionWidth/1e3, sectionHeight/1e3)
	if err := sec.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var results []*rcsection.Result
	switch rcsection.Kind(sectionKind) {
	case rcsection.Flexion:
		r, err := sec.CheckFlexion(sectionNd*1e3, sectionMd*1e3, sectionVd*1e3)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		results = append(results, r)
		if sectionMSLS != 0 {
			r, err := sec.CheckStress(sectionMSLS * 1e3)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			results = append(results, r)
		}
	case rcsection.Compression:
		r, err := sec.CheckCompression(sectionNd*1e3, sectionAsTrv/1e4)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		results = append(results, r)
	case rcsection.Traction:
		r, err := sec.CheckTraction(sectionNd * 1e3)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		results = append(results, r)
	default:
		fmt.Printf("Error: unknown verification kind %q\n", sectionKind)
		return
	}

	printHeader("RC STRIP VERIFICATION - SIA 262")

	printSection("MATERIAL PROPERTIES:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Concrete:\t%s\n", concrete.Name)
	fmt.Fprintf(w, "  fcd:\t%.2f MPa\n", concrete.Fcd()/1e6)
	fmt.Fprintf(w, "  fctm:\t%.2f MPa\n", concrete.Fctm()/1e6)
	fmt.Fprintf(w, "  τcd:\t%.2f MPa\n", concrete.TauCd()/1e6)
	fmt.Fprintf(w, "  Steel:\t%s\n", steel.Name)
	fmt.Fprintf(w, "  fsd:\t%.2f MPa\n", steel.Fsd()/1e6)
	w.Flush()
	fmt.Println()

	printSection("SECTION:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  b × h:\t%.0f × %.0f mm\n", sectionWidth, sectionHeight)
	fmt.Fprintf(w, "  Bars:\t%s\n", bars.DefString())
	fmt.Fprintf(w, "  Effective depth (d):\t%.0f mm\n", sec.EffectiveDepth()*1e3)
	fmt.Fprintf(w, "  As:\t%.2f cm²/m\n", sec.As()*1e4)
	fmt.Fprintf(w, "  Anchorage length (lb):\t%.0f mm\n", bars.BasicAnchorageLength(concrete)*1e3)
	w.Flush()
	fmt.Println()

	printSection("CHECKS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Verification\tCheck\tDemand\tResistance\tF\tVerdict\n")
	fmt.Fprintf(w, "  ────────────\t─────\t──────\t──────────\t─\t───────\n")
	adequate := true
	for _, r := range results {
		for _, c := range r.Checks {
			fmt.Fprintf(w, "  %s\t%s\t%.4g\t%.4g\t%.2f\t%s\n", r.Kind, c.Name, c.Demand, c.Capacity, c.Factor(), c.Verdict())
		}
		adequate = adequate && r.IsAdequate()
	}
	w.Flush()
	fmt.Println()

	if adequate {
		fmt.Println("  ✓ Section is adequate")
	} else {
		fmt.Println("  ✗ Section is NOT adequate")
	}
	fmt.Println()
}
