package main

import (
	"maps"
	"slices"

	"github.com/paretje/mzdata/spectrum"
)

// spectrumView is the JSON shape of a spectrum.
type spectrumView struct {
	ID          string            `json:"id"`
	MSLevel     uint8             `json:"ms_level"`
	StartTime   *float64          `json:"start_time,omitempty"`
	Precursor   *precursorView    `json:"precursor,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
	PeakCount   int               `json:"peak_count"`
	Peaks       [][2]float64      `json:"peaks,omitempty"`
}

type precursorView struct {
	MZ        float64 `json:"mz"`
	Intensity float32 `json:"intensity"`
	Charge    *int32  `json:"charge,omitempty"`
}

func newSpectrumView(s *spectrum.CentroidSpectrum, withPeaks bool) spectrumView {
	v := spectrumView{
		ID:          s.ID(),
		MSLevel:     s.MSLevel(),
		Annotations: s.Description.Annotations,
		PeakCount:   s.Peaks.Len(),
	}
	if len(s.Description.Acquisition.Scans) > 0 {
		t := s.StartTime()
		v.StartTime = &t
	}
	if ion, ok := s.PrecursorIon(); ok {
		v.Precursor = &precursorView{MZ: ion.MZ, Intensity: ion.Intensity, Charge: ion.Charge}
	}
	if withPeaks {
		v.Peaks = make([][2]float64, 0, s.Peaks.Len())
		for _, p := range s.Peaks.Peaks() {
			v.Peaks = append(v.Peaks, [2]float64{p.MZ, float64(p.Intensity)})
		}
	}
	return v
}

// printSpectrum writes s in the text layout used by get and seek.
func printSpectrum(s *spectrum.CentroidSpectrum, withPeaks bool) {
	printInfo("\nSpectrum: %s\n", s.ID())
	printInfo("  MS level: %d\n", s.MSLevel())
	if len(s.Description.Acquisition.Scans) > 0 {
		printInfo("  Start time: %g s\n", s.StartTime())
	}
	if ion, ok := s.PrecursorIon(); ok {
		if ion.Charge != nil {
			printInfo("  Precursor: m/z %g, intensity %g, charge %d\n", ion.MZ, ion.Intensity, *ion.Charge)
		} else {
			printInfo("  Precursor: m/z %g, intensity %g\n", ion.MZ, ion.Intensity)
		}
	}
	for _, k := range slices.Sorted(maps.Keys(s.Description.Annotations)) {
		printInfo("  %s: %s\n", k, s.Description.Annotations[k])
	}
	printInfo("  Peaks: %d\n", s.Peaks.Len())
	if base, ok := s.Peaks.BasePeak(); ok {
		printInfo("  Base peak: m/z %g, intensity %g\n", base.MZ, base.Intensity)
		printInfo("  TIC: %g\n", s.Peaks.TIC())
	}
	if withPeaks {
		for _, p := range s.Peaks.Peaks() {
			printInfo("    %g\t%g\n", p.MZ, p.Intensity)
		}
	}
}
