package mgf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/paretje/mzdata/pkg/types"
	"github.com/paretje/mzdata/spectrum"
)

// NewSpectrum returns an empty spectrum carrying the MGF defaults:
// MS level 2, centroid signal, unknown polarity.
func NewSpectrum() *spectrum.CentroidSpectrum {
	return &spectrum.CentroidSpectrum{
		Description: spectrum.Description{
			MSLevel:          DefaultMSLevel,
			SignalContinuity: spectrum.Centroid,
			Polarity:         spectrum.PolarityUnknown,
		},
	}
}

// ReadNext decodes the next spectrum. It returns io.EOF when no further
// BEGIN IONS block exists. Decode faults are returned as *types.Error; the
// reader remains usable and the following call resumes at the next block.
func (r *Reader) ReadNext() (*spectrum.CentroidSpectrum, error) {
	s := NewSpectrum()
	n, err := r.ReadInto(s)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, io.EOF
	}
	return s, nil
}

// ReadInto decodes the next spectrum into s and returns the number of bytes
// consumed. It returns 0 and a nil error when the stream ends before another
// block begins, even if trailing blank lines or junk were skipped.
//
// A block cut off by the end of input is returned as decoded so far.
func (r *Reader) ReadInto(s *spectrum.CentroidSpectrum) (int, error) {
	if r.state == StateDone || r.state == StateError {
		r.state = StateBetween
	}
	started := r.state.inBlock()
	consumed := 0

	for {
		lineStart := r.pos
		raw, rerr := r.readLine()
		consumed += len(raw)
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return consumed, r.fail(types.ErrKindIO, "mgf: read failed", lineStart, rerr)
		}
		if len(raw) == 0 {
			if started && r.state.inBlock() {
				r.log.Warn("spectrum truncated at end of input", "id", s.Description.ID, "offset", lineStart)
			}
			r.state = StateDone
			if !started {
				return 0, nil
			}
			return consumed, nil
		}

		text, derr := r.text.decode(raw, lineStart == 0)
		if derr != nil {
			return consumed, r.fail(types.ErrKindIO, "mgf: cannot decode line", lineStart, derr)
		}
		line := strings.TrimSpace(text)
		if line == "" {
			continue
		}

		if err := r.step(line, lineStart, s); err != nil {
			return consumed, err
		}
		if r.state.inBlock() {
			started = true
		} else if started && r.state == StateBetween {
			return consumed, nil
		}
	}
}

// step advances the state machine by one trimmed, non-blank line.
func (r *Reader) step(line string, offset int64, s *spectrum.CentroidSpectrum) error {
	switch r.state {
	case StateStart, StateFileHeader:
		r.handleStart(line)
	case StateBetween:
		r.handleBetween(line, offset)
	case StateScanHeaders:
		return r.handleScanHeader(line, offset, s)
	case StatePeaks:
		return r.handlePeak(line, offset, s)
	}
	return nil
}

func (r *Reader) handleStart(line string) {
	if line == BeginIons {
		r.state = StateScanHeaders
		return
	}
	if key, value, ok := strings.Cut(line, HeaderAssignment); ok {
		r.fileParams[strings.ToLower(key)] = value
		r.state = StateFileHeader
	}
}

func (r *Reader) handleBetween(line string, offset int64) {
	if line == BeginIons {
		r.state = StateScanHeaders
		return
	}
	r.log.Debug("discarding line between spectra", "offset", offset, "line", line)
}

func (r *Reader) handleScanHeader(line string, offset int64, s *spectrum.CentroidSpectrum) error {
	if !r.opts.HeaderFirst {
		if handled, err := r.tryPeak(line, offset, s); handled || err != nil {
			return err
		}
	}
	if line == EndIons {
		r.state = StateBetween
		return nil
	}
	if key, value, ok := strings.Cut(line, HeaderAssignment); ok {
		return r.handleHeader(key, value, offset, &s.Description)
	}
	if r.opts.HeaderFirst {
		if handled, err := r.tryPeak(line, offset, s); handled || err != nil {
			return err
		}
	}
	return r.fail(types.ErrKindMalformedHeaderLine,
		fmt.Sprintf("mgf: malformed header line %q", line), offset, nil)
}

func (r *Reader) handlePeak(line string, offset int64, s *spectrum.CentroidSpectrum) error {
	if handled, err := r.tryPeak(line, offset, s); handled || err != nil {
		return err
	}
	if line == EndIons {
		r.state = StateBetween
		return nil
	}
	return r.fail(types.ErrKindMalformedPeakLine,
		fmt.Sprintf("mgf: malformed peak line %q", line), offset, nil)
}

// tryPeak appends line as a peak if it starts with a digit. handled is
// false when the line is not a peak line at all.
func (r *Reader) tryPeak(line string, offset int64, s *spectrum.CentroidSpectrum) (handled bool, err error) {
	if !looksLikePeak(line) {
		return false, nil
	}
	peak, perr := parsePeak(line)
	switch {
	case errors.Is(perr, errPeakColumns):
		return true, r.fail(types.ErrKindPeakColumns,
			fmt.Sprintf("mgf: peak line %q has fewer than two columns", line), offset, nil)
	case perr != nil:
		return true, r.fail(types.ErrKindMalformedPeakLine,
			fmt.Sprintf("mgf: malformed peak line %q", line), offset, perr)
	}
	s.Peaks.Push(peak)
	r.state = StatePeaks
	return true, nil
}

func (r *Reader) handleHeader(key, value string, offset int64, d *spectrum.Description) error {
	switch key {
	case KeyTitle:
		d.ID = value
	case KeyRetentionTime:
		t, err := parseRetentionTime(value)
		if err != nil {
			return r.fail(types.ErrKindMalformedHeaderLine,
				fmt.Sprintf("mgf: bad %s value %q", KeyRetentionTime, value), offset, err)
		}
		d.Acquisition.FirstScan().StartTime = t
	case KeyPepMass:
		p, err := parsePepMass(value)
		if err != nil {
			return r.fail(types.ErrKindMalformedHeaderLine,
				fmt.Sprintf("mgf: bad %s value %q", KeyPepMass, value), offset, err)
		}
		d.Precursor = p
	default:
		d.Annotate(strings.ToLower(key), value)
	}
	return nil
}

// fail records a decode fault and moves to StateError.
func (r *Reader) fail(kind types.ErrKind, msg string, offset int64, cause error) error {
	r.fault = kind
	r.state = StateError
	return types.NewError(kind, msg, offset, cause)
}
