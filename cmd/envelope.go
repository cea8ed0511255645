package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gorcw/internal/envelope"
	"github.com/spf13/cobra"
)

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Internal force envelopes of the stem",
	Long: `Inspect and transform internal force envelopes.

Envelopes are read from xlsx sheets (columns y, Md, Vd after a header
row, plus a "footing" row) or from the ULS/SLS envelopes of a wall file.

Subcommands:
  show   - Print the samples and plot the envelope in the terminal
  scale  - Scale an envelope and write it to a new sheet`,
}

func init() {
	rootCmd.AddCommand(envelopeCmd)
}

// readEnvelope loads the envelope from a spreadsheet or from a wall file
func readEnvelope(xlsx, sheet, wallFile, limit string) (*envelope.InternalForces, error) {
	if xlsx != "" {
		trace("reading %s\n", xlsx)
		return envelope.LoadXLSX(xlsx, sheet)
	}
	if wallFile == "" {
		return nil, fmt.Errorf("an xlsx file or a wall file is needed")
	}
	w, err := loadWall(wallFile)
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(limit) {
	case "ULS":
		return w.ULS(), nil
	case "SLS":
		return w.SLS(), nil
	}
	return nil, fmt.Errorf("unknown limit state %q (ULS or SLS)", limit)
}
