package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paretje/mzdata/mgf"
)

func init() {
	rootCmd.AddCommand(newIndexCmd())
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <file>",
		Short: "Build the offset index and write it to <file>.mzix",
		Long: `The index command scans an MGF file once, maps every TITLE to the byte
offset of its spectrum, and writes the result as a compressed sidecar next to
the file. Later opens with --sidecar load the sidecar instead of rescanning.

Example:
  mgfctl index run.mgf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(args)
		},
	}
	return cmd
}

func runIndex(args []string) error {
	path := args[0]

	r, err := openFile(path, false)
	if err != nil {
		return err
	}
	defer r.Close()

	scanned, err := r.BuildIndex()
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}
	if err := r.WriteIndex(path); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	sidecar := path + mgf.SidecarSuffix
	if jsonOut {
		return printJSON(map[string]any{
			"file":    path,
			"sidecar": sidecar,
			"entries": r.Len(),
			"scanned": scanned,
		})
	}
	printInfo("Indexed %d spectra (%d bytes scanned)\n", r.Len(), scanned)
	printInfo("Wrote %s\n", sidecar)
	return nil
}
