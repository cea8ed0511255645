package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcw/internal/report"
	"github.com/spf13/cobra"
)

var (
	wallCheckFile string
	wallCheckXLSX string
	wallCheckPDF  string
)

var wallCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every reinforcement block of a wall",
	Long: `Verify the 13 reinforcement blocks of a wall and print the
demand, resistance and safety factor of every check.

Verdicts: OK! (F > 1), ~OK! (0.95 <= F <= 1), Error! (F < 0.95).
A block that cannot be verified is reported and the others still run.

Examples:
  gorcw wall check -f m1.yaml
  gorcw wall check -f m1.yaml --xlsx m1.xlsx --pdf m1.pdf`,
	Run: runWallCheck,
}

func init() {
	wallCmd.AddCommand(wallCheckCmd)

	wallCheckCmd.Flags().StringVarP(&wallCheckFile, "file", "f", "", "Path to wall file (json, yaml) [required]")
	wallCheckCmd.MarkFlagRequired("file")
	wallCheckCmd.Flags().StringVar(&wallCheckXLSX, "xlsx", "", "Write the summary to an xlsx file")
	wallCheckCmd.Flags().StringVar(&wallCheckPDF, "pdf", "", "Write the summary to a pdf file")
}

func runWallCheck(cmd *cobra.Command, args []string) {
	w, err := loadWall(wallCheckFile)
	if err != nil {
		fmt.Printf("Error loading wall: %v\n", err)
		return
	}

	blocks, checkErr := w.Check()
	if blocks == nil {
		fmt.Printf("Error checking wall: %v\n", checkErr)
		return
	}

	printHeader(fmt.Sprintf("WALL %s - SIA 262 VERIFICATION", w.Name()))

	printSection("MATERIALS:")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Concrete:\t%s (fcd = %.1f MPa)\n", w.Concrete.Name, w.Concrete.Fcd()/1e6)
	fmt.Fprintf(tw, "  Steel:\t%s (fsd = %.1f MPa)\n", w.Reinforcement.Steel.Name, w.Reinforcement.Steel.Fsd()/1e6)
	fmt.Fprintf(tw, "  Cover:\t%.0f mm\n", w.Reinforcement.Cover*1e3)
	tw.Flush()
	fmt.Println()

	if len(w.Warnings()) > 0 {
		printSection("WARNINGS:")
		for _, wn := range w.Warnings() {
			fmt.Printf("  ⚠ %v\n", wn)
		}
		fmt.Println()
	}

	printSection("CHECKS:")
	tw = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Pos\tBlock\tCheck\tDemand\tResistance\tF\tVerdict\n")
	fmt.Fprintf(tw, "  ───\t─────\t─────\t──────\t──────────\t─\t───────\n")
	for _, r := range report.Rows(blocks) {
		if r.Check == "" {
			fmt.Fprintf(tw, "  %d\t%s\t\t\t\t\t%s\n", r.Position, r.Title, r.Verdict)
			continue
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s %s\t%.2f %s\t%.2f %s\t%s\t%s\n",
			r.Position, r.Title, r.Kind, r.Check, r.Demand, r.Unit, r.Capacity, r.Unit, r.FactorString(), r.Verdict)
	}
	tw.Flush()
	fmt.Println()

	if checkErr != nil {
		printSection("FAILED BLOCKS:")
		for _, b := range blocks {
			if b.Err != nil {
				fmt.Printf("  %v\n", b.Err)
			}
		}
		fmt.Println()
	}

	if wallCheckXLSX != "" {
		if err := report.WriteXLSX(blocks, wallCheckXLSX); err != nil {
			fmt.Printf("Error writing xlsx summary: %v\n", err)
		} else {
			fmt.Printf("  ✓ Summary written to: %s\n", wallCheckXLSX)
		}
	}
	if wallCheckPDF != "" {
		if err := report.WritePDF(w.Name(), blocks, wallCheckPDF); err != nil {
			fmt.Printf("Error writing pdf summary: %v\n", err)
		} else {
			fmt.Printf("  ✓ Summary written to: %s\n", wallCheckPDF)
		}
	}
}
