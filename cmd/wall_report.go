package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/alexiusacademia/gorcw/internal/wall"
	"github.com/spf13/cobra"
)

var (
	wallReportFile   string
	wallReportOutput string
	wallReportSchema bool
)

var wallReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the LaTeX verification report of a wall",
	Long: `Write <name>.tex with the definition table and the verification
of every reinforcement block, together with the envelope graphics
<name>.eps and <name>.pdf.

Blocks that cannot be verified are labelled in the report; the report
is still written.

Examples:
  gorcw wall report -f m1.yaml -o out/
  gorcw wall report -f m1.yaml --schema`,
	Run: runWallReport,
}

func init() {
	wallCmd.AddCommand(wallReportCmd)

	wallReportCmd.Flags().StringVarP(&wallReportFile, "file", "f", "", "Path to wall file (json, yaml) [required]")
	wallReportCmd.MarkFlagRequired("file")
	wallReportCmd.Flags().StringVarP(&wallReportOutput, "output", "o", "", "Output directory (default $GORCW_OUTPUT_DIR or .)")
	wallReportCmd.Flags().BoolVar(&wallReportSchema, "schema", false, "Also write the reinforcement schema")
}

func runWallReport(cmd *cobra.Command, args []string) {
	w, err := loadWall(wallReportFile)
	if err != nil {
		fmt.Printf("Error loading wall: %v\n", err)
		return
	}

	dir := outputDir(wallReportOutput)
	trace("writing report of wall %s in %s\n", w.Name(), dir)
	reportErr := w.WriteResult(dir)
	if reportErr != nil && !wall.IsBlockFailure(reportErr) {
		fmt.Printf("Error writing report: %v\n", reportErr)
		return
	}
	tex := filepath.Join(dir, w.Name()+".tex")
	fmt.Printf("  ✓ Report written to: %s\n", tex)
	if reportErr != nil {
		fmt.Println("  ⚠ Some blocks could not be verified:")
		fmt.Printf("%v\n", reportErr)
	}

	if wallReportSchema {
		if err := w.DrawSchema(dir); err != nil {
			fmt.Printf("Error writing schema: %v\n", err)
			return
		}
		fmt.Printf("  ✓ Schema written to: %s\n", filepath.Join(dir, "schema_"+w.Name()+".tex"))
	}
}
