package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcw/internal/config"
	"github.com/alexiusacademia/gorcw/internal/wall"
	"github.com/spf13/cobra"
)

var wallCmd = &cobra.Command{
	Use:   "wall",
	Short: "Cantilever retaining wall verification",
	Long: `Verify cantilever retaining walls described in JSON or YAML files.

Subcommands:
  check   - Verify every reinforcement block and print a summary
  report  - Write the LaTeX verification report and envelope graphics
  schema  - Write the TikZ reinforcement schema

Example YAML file (SI units: m, N, N·m per metre of wall):
geometry:
  name: M1
  stem_top_width: 0.25
  stem_bottom_width: 0.30
  footing_thickness: 0.35
  toe_length: 0.5
  heel_length: 1.5
concrete: C25/30
steel: B500B
cover: 0.04
reinforcement:
  - {position: 1, diam: 0.012, spacing: 0.15}
uls:
  table:
    y: [0, 1, 2, 3]
    md: [0, 10000, 40000, 90000]
    vd: [0, 15000, 35000, 60000]
    md_footing: 80000
    vd_footing: 50000
sls_factor: 0.7

Envelopes may also be read from spreadsheets:
uls: {xlsx: envelopes.xlsx, sheet: ULS}`,
}

func init() {
	rootCmd.AddCommand(wallCmd)
}

// loadWall reads the wall file and assigns its envelopes
func loadWall(path string) (*wall.Wall, error) {
	trace("reading %s\n", path)
	wf, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	w, err := wf.Build()
	if err != nil {
		return nil, fmt.Errorf("wall %s: %w", wf.Geometry.Name, err)
	}
	trace("wall %s: %s, stem height %.2f m\n", w.Name(), w.Phase(), w.Geometry.StemHeight)
	return w, nil
}

func outputDir(flag string) string {
	if flag != "" {
		return flag
	}
	return env.OutputDir
}
