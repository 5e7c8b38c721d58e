package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/paretje/mzdata/internal/logger"
	"github.com/paretje/mzdata/mgf"
	"github.com/paretje/mzdata/pkg/types"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	encoding   string
	useMmap    bool
	useSidecar bool
)

var rootCmd = &cobra.Command{
	Use:   "mgfctl",
	Short: "Inspect and index MGF peak list files",
	Long: `mgfctl reads Mascot Generic Format (MGF) peak lists. It reports file
statistics, lists and prints spectra by title, position or retention time,
and writes offset index sidecars for fast random access.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Enabled: verbose && !quiet,
			Level:   slog.LevelDebug,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&encoding, "encoding", "", "Text encoding of the input (UTF-8, ISO-8859-1, WINDOWS-1252)")
	rootCmd.PersistentFlags().BoolVar(&useMmap, "mmap", false, "Memory-map the input file")
	rootCmd.PersistentFlags().
		BoolVar(&useSidecar, "sidecar", false, "Load the offset index from <file>.mzix, writing it if missing or stale")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openFile opens path with the options selected by the global flags.
func openFile(path string, withIndex bool) (*mgf.Reader, error) {
	printVerbose("Opening MGF file: %s\n", path)

	opts := types.DefaultOpenOptions()
	opts.BuildIndex = withIndex
	opts.Encoding = encoding
	opts.UseMmap = useMmap
	opts.IndexSidecar = useSidecar

	r, err := mgf.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if withIndex {
		printVerbose("Indexed %d spectra\n", r.Len())
	}
	return r, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
