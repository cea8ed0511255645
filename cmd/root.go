package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcw/internal/config"
	"github.com/alexiusacademia/gorcw/internal/version"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	envFile string

	// env holds the defaults read from the environment and .env
	env = config.Environment{OutputDir: "."}
)

var rootCmd = &cobra.Command{
	Use:   "gorcw",
	Short: "Cantilever Retaining Wall Design Tool",
	Long: `gorcw - Go Reinforced Concrete Wall Designer

A CLI tool for the rough design of cantilever reinforced concrete
retaining walls according to SIA 262.

This tool helps structural engineers perform:
  - Verification of the 13 reinforcement blocks of a wall
  - LaTeX verification reports with envelope graphics
  - Reinforcement schemas (TikZ)
  - Single RC strip checks
  - Preliminary calculations (cable-stayed decks, EC3 buckling)

Walls are described in JSON or YAML files; internal force envelopes
come inline or from xlsx sheets.

Defaults are read from the environment (or a .env file):
  GORCW_OUTPUT_DIR  - output directory of reports
  GORCW_VERBOSE     - print progress messages`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		e, err := config.Env(files...)
		if err != nil {
			return err
		}
		env = e
		if !cmd.Flags().Changed("verbose") {
			verbose = env.Verbose
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcw v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Wall Designer                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design of cantilever retaining walls")
		fmt.Println("  according to SIA 262.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Wall verification report (LaTeX, xlsx, pdf)")
		fmt.Println("    • Reinforcement schema")
		fmt.Println("    • Envelope plots and scaling")
		fmt.Println("    • SIA 260 load combinations")
		fmt.Println()
		fmt.Println("  Use 'gorcw --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print progress messages")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Path to a .env file (default .env)")
}

// trace prints a progress message in verbose mode
func trace(msg string, prm ...interface{}) {
	if verbose {
		io.Pfcyan(msg, prm...)
	}
}

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(title string) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
}
