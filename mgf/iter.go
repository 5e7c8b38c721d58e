package mgf

import (
	"errors"
	"io"
	"iter"

	"github.com/paretje/mzdata/pkg/types"
	"github.com/paretje/mzdata/spectrum"
)

// Next advances to the next spectrum, which is then available through
// Spectrum. It returns false at end of input or on a fault; Err tells the
// two apart. After a decode fault, calling Next again resumes at the
// following block.
func (r *Reader) Next() bool {
	r.cur, r.err = nil, nil
	s, err := r.ReadNext()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = err
		}
		return false
	}
	r.cur = s
	return true
}

// Spectrum returns the spectrum decoded by the last successful Next.
func (r *Reader) Spectrum() *spectrum.CentroidSpectrum { return r.cur }

// Err returns the fault that stopped the last Next, or nil at end of input.
func (r *Reader) Err() error { return r.err }

// All iterates the remaining spectra. Decode faults are yielded with a nil
// spectrum and iteration continues with the next block unless the consumer
// stops; an I/O fault is yielded once and ends the sequence.
func (r *Reader) All() iter.Seq2[*spectrum.CentroidSpectrum, error] {
	return func(yield func(*spectrum.CentroidSpectrum, error) bool) {
		for {
			s, err := r.ReadNext()
			switch {
			case errors.Is(err, io.EOF):
				return
			case err != nil:
				if !yield(nil, err) || types.KindOf(err) == types.ErrKindIO {
					return
				}
			default:
				if !yield(s, nil) {
					return
				}
			}
		}
	}
}
