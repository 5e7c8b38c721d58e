package spectrum

import "github.com/paretje/mzdata/pkg/types"

// CentroidSpectrum is a decoded record whose signal is a list of centroid peaks.
type CentroidSpectrum struct {
	Description Description
	Peaks       PeakSet
}

// Spectrum is the format-neutral representation. Peaks is nil when the
// record carried no centroid data.
type Spectrum struct {
	Description Description
	Peaks       *PeakSet
}

// ID returns the native identifier.
func (s *CentroidSpectrum) ID() string { return s.Description.ID }

// MSLevel returns the acquisition stage.
func (s *CentroidSpectrum) MSLevel() uint8 { return s.Description.MSLevel }

// StartTime returns the start time of the first scan event.
func (s *CentroidSpectrum) StartTime() float64 { return s.Description.Acquisition.StartTime() }

// PrecursorIon returns the selected ion, if any.
func (s *CentroidSpectrum) PrecursorIon() (SelectedIon, bool) {
	if s.Description.Precursor == nil {
		return SelectedIon{}, false
	}
	return s.Description.Precursor.Ion, true
}

// IntoSpectrum moves s into the format-neutral representation.
func (s *CentroidSpectrum) IntoSpectrum() *Spectrum {
	peaks := s.Peaks
	return &Spectrum{Description: s.Description, Peaks: &peaks}
}

// IntoCentroid converts back to a CentroidSpectrum. It fails with
// types.ErrNoPeaks when the spectrum has no peak list.
func (s *Spectrum) IntoCentroid() (*CentroidSpectrum, error) {
	if s.Peaks == nil {
		return nil, types.ErrNoPeaks
	}
	return &CentroidSpectrum{Description: s.Description, Peaks: *s.Peaks}, nil
}

// ID returns the native identifier.
func (s *Spectrum) ID() string { return s.Description.ID }

// MSLevel returns the acquisition stage.
func (s *Spectrum) MSLevel() uint8 { return s.Description.MSLevel }

// Clone returns a deep copy of s.
func (s *CentroidSpectrum) Clone() *CentroidSpectrum {
	return &CentroidSpectrum{
		Description: s.Description.Clone(),
		Peaks:       s.Peaks.Clone(),
	}
}
