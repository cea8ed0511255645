package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcw/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcw",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcw v%s\n", version.Version)
		fmt.Println("Cantilever Retaining Wall Design Tool")
		fmt.Println("Based on SIA 262 (Concrete structures)")
		if verbose {
			fmt.Printf("Built: %s, commit: %s\n", version.BuildTime, version.GitCommit)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
