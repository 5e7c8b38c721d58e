package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paretje/mzdata/spectrum"
)

var (
	getIndex int
	getTime  float64
	getPeaks bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().IntVar(&getIndex, "index", -1, "Select the spectrum at this 0-based position")
	cmd.Flags().Float64Var(&getTime, "time", -1, "Select the spectrum nearest to this start time (seconds)")
	cmd.Flags().BoolVar(&getPeaks, "peaks", false, "Print the peak list")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> [title]",
		Short: "Print one spectrum",
		Long: `The get command prints a single spectrum, selected by its TITLE, its
position in the file, or the start time nearest to a given value.

Example:
  mgfctl get run.mgf "scan=42"
  mgfctl get run.mgf --index 0 --peaks
  mgfctl get run.mgf --time 600 --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	selectors := 0
	if len(args) == 2 {
		selectors++
	}
	if getIndex >= 0 {
		selectors++
	}
	if getTime >= 0 {
		selectors++
	}
	if selectors != 1 {
		return errors.New("select exactly one of a title, --index or --time")
	}

	r, err := openFile(args[0], true)
	if err != nil {
		return err
	}
	defer r.Close()

	var s *spectrum.CentroidSpectrum
	switch {
	case len(args) == 2:
		s, err = r.GetSpectrumByID(args[1])
	case getIndex >= 0:
		s, err = r.GetSpectrumByIndex(getIndex)
	default:
		s, err = r.GetSpectrumByTime(getTime)
	}
	if err != nil {
		return fmt.Errorf("failed to get spectrum: %w", err)
	}

	if jsonOut {
		return printJSON(newSpectrumView(s, getPeaks))
	}
	printSpectrum(s, getPeaks)
	return nil
}
