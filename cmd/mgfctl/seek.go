package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	seekTime  float64
	seekCount int
)

func init() {
	cmd := newSeekCmd()
	cmd.Flags().Float64Var(&seekTime, "time", 0, "Start time in seconds to seek to")
	cmd.Flags().IntVar(&seekCount, "count", 1, "Number of spectra to read from that point")
	_ = cmd.MarkFlagRequired("time")
	rootCmd.AddCommand(cmd)
}

func newSeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seek <file>",
		Short: "Read spectra forward from a start time",
		Long: `The seek command positions the reader at the spectrum whose start time
is nearest to --time and reads --count spectra forward from there.

Example:
  mgfctl seek run.mgf --time 600
  mgfctl seek run.mgf --time 600 --count 5 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeek(args)
		},
	}
	return cmd
}

func runSeek(args []string) error {
	if seekCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", seekCount)
	}

	r, err := openFile(args[0], false)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.StartFromTime(seekTime); err != nil {
		return fmt.Errorf("failed to seek to %g s: %w", seekTime, err)
	}

	views := []spectrumView{}
	read := 0
	for read < seekCount {
		s, err := r.ReadNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read spectrum: %w", err)
		}
		read++
		if jsonOut {
			views = append(views, newSpectrumView(s, false))
			continue
		}
		printSpectrum(s, false)
	}

	if jsonOut {
		return printJSON(views)
	}
	printVerbose("\nRead %d spectra\n", read)
	return nil
}
