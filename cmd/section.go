package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Rectangular RC strip verification",
	Long: `Verify a single rectangular reinforced concrete strip
(b = 1 m by default) according to SIA 262.

Subcommands:
  check  - Minimum reinforcement, bending, shear and stress checks`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
