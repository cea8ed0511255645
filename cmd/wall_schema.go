package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcw/internal/wall"
	"github.com/spf13/cobra"
)

var (
	wallSchemaFile   string
	wallSchemaOutput string
)

var wallSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the reinforcement schema of a wall",
	Long: `Write schema_<name>.tex, a TikZ drawing of the wall cross-section
annotated with the bars of positions 1 to 12, and print the
reinforcement table.

Examples:
  gorcw wall schema -f m1.yaml -o out/`,
	Run: runWallSchema,
}

func init() {
	wallCmd.AddCommand(wallSchemaCmd)

	wallSchemaCmd.Flags().StringVarP(&wallSchemaFile, "file", "f", "", "Path to wall file (json, yaml) [required]")
	wallSchemaCmd.MarkFlagRequired("file")
	wallSchemaCmd.Flags().StringVarP(&wallSchemaOutput, "output", "o", "", "Output directory (default $GORCW_OUTPUT_DIR or .)")
}

func runWallSchema(cmd *cobra.Command, args []string) {
	w, err := loadWall(wallSchemaFile)
	if err != nil {
		fmt.Printf("Error loading wall: %v\n", err)
		return
	}

	printHeader(fmt.Sprintf("WALL %s - REINFORCEMENT", w.Name()))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Pos\tBars\tAs (cm²/m)\tlb (m)\n")
	fmt.Fprintf(tw, "  ───\t────\t──────────\t──────\n")
	for pos := wall.FirstPosition; pos <= wall.LastPosition; pos++ {
		f, err := w.Reinforcement.Armature(pos)
		if err != nil {
			fmt.Printf("Error reading reinforcement: %v\n", err)
			return
		}
		fmt.Fprintf(tw, "  %d\t%s\t%.2f\t%.2f\n", pos, f.DefString(), f.As()*1e4, f.BasicAnchorageLength(w.Concrete))
	}
	tw.Flush()
	fmt.Println()

	dir := outputDir(wallSchemaOutput)
	if err := w.DrawSchema(dir); err != nil {
		fmt.Printf("Error writing schema: %v\n", err)
		return
	}
	fmt.Printf("  ✓ Schema written to: %s\n", filepath.Join(dir, "schema_"+w.Name()+".tex"))
}
