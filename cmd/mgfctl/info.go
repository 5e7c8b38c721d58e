package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/paretje/mzdata/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Report record counts and file parameters",
		Long: `The info command decodes every spectrum in an MGF file and reports the
number of records, indexed titles, MS levels, file-level parameters and any
decode faults.

Example:
  mgfctl info run.mgf
  mgfctl info run.mgf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type fileInfo struct {
	File     string            `json:"file"`
	Size     int64             `json:"size"`
	Spectra  int               `json:"spectra"`
	Indexed  int               `json:"indexed"`
	Peaks    int               `json:"peaks"`
	MSLevels map[uint8]int     `json:"ms_levels"`
	Params   map[string]string `json:"params,omitempty"`
	Faults   map[string]int    `json:"faults,omitempty"`
	MinTime  *float64          `json:"min_time,omitempty"`
	MaxTime  *float64          `json:"max_time,omitempty"`
}

func runInfo(args []string) error {
	path := args[0]

	r, err := openFile(path, true)
	if err != nil {
		return err
	}
	defer r.Close()

	info := fileInfo{
		File:     path,
		Indexed:  r.Len(),
		MSLevels: make(map[uint8]int),
		Faults:   make(map[string]int),
	}
	if stat, err := os.Stat(path); err == nil {
		info.Size = stat.Size()
	}

	for s, err := range r.All() {
		if err != nil {
			if types.KindOf(err) == types.ErrKindIO {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			info.Faults[types.KindOf(err).String()]++
			printVerbose("Skipping spectrum: %v\n", err)
			continue
		}
		info.Spectra++
		info.Peaks += s.Peaks.Len()
		info.MSLevels[s.MSLevel()]++
		if len(s.Description.Acquisition.Scans) == 0 {
			continue
		}
		t := s.StartTime()
		if info.MinTime == nil || t < *info.MinTime {
			info.MinTime = &t
		}
		if info.MaxTime == nil || t > *info.MaxTime {
			info.MaxTime = &t
		}
	}
	info.Params = r.FileParams()

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nMGF Information:\n")
	printInfo("  File: %s\n", path)
	switch {
	case info.Size < 1024:
		printInfo("  Size: %d bytes\n", info.Size)
	case info.Size < 1024*1024:
		printInfo("  Size: %.1f KB\n", float64(info.Size)/1024)
	default:
		printInfo("  Size: %.1f MB\n", float64(info.Size)/(1024*1024))
	}
	printInfo("  Spectra: %d\n", info.Spectra)
	printInfo("  Indexed titles: %d\n", info.Indexed)
	printInfo("  Peaks: %d\n", info.Peaks)
	for _, level := range slices.Sorted(maps.Keys(info.MSLevels)) {
		printInfo("  MS%d spectra: %d\n", level, info.MSLevels[level])
	}
	if info.MinTime != nil {
		printInfo("  Start times: %g - %g s\n", *info.MinTime, *info.MaxTime)
	}

	if len(info.Params) > 0 {
		printInfo("\nFile parameters:\n")
		for _, k := range slices.Sorted(maps.Keys(info.Params)) {
			printInfo("  %s: %s\n", k, info.Params[k])
		}
	}

	if len(info.Faults) > 0 {
		printInfo("\nFaults:\n")
		for _, k := range slices.Sorted(maps.Keys(info.Faults)) {
			printInfo("  %s: %d\n", k, info.Faults[k])
		}
	}
	return nil
}
