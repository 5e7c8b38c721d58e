package mgf

import (
	"fmt"

	"github.com/paretje/mzdata/index"
	"github.com/paretje/mzdata/pkg/types"
	"github.com/paretje/mzdata/spectrum"
)

// Index returns the offset index. It logs a warning when the index was
// never built, since lookups will then fail.
func (r *Reader) Index() *index.OffsetIndex {
	if !r.index.Init {
		r.log.Warn("attempting to use an uninitialized offset index")
	}
	return r.index
}

// SetIndex replaces the offset index, e.g. with one loaded from a sidecar.
// The index must be initialized.
func (r *Reader) SetIndex(idx *index.OffsetIndex) error {
	if idx == nil || !idx.Init {
		return types.ErrIndexNotBuilt
	}
	r.index = idx
	r.times.Reset()
	return nil
}

// Len returns the number of indexed spectra.
func (r *Reader) Len() int { return r.index.Len() }

// GetSpectrumByID decodes the spectrum titled id. The sequential read
// position and parser state are unchanged on return.
func (r *Reader) GetSpectrumByID(id string) (*spectrum.CentroidSpectrum, error) {
	off, err := r.offsetOfID(id)
	if err != nil {
		return nil, err
	}
	return r.readAt(off)
}

// GetSpectrumByIndex decodes the spectrum at 0-based position i of the
// offset index. The sequential read position is unchanged on return.
func (r *Reader) GetSpectrumByIndex(i int) (*spectrum.CentroidSpectrum, error) {
	off, err := r.offsetOfIndex(i)
	if err != nil {
		return nil, err
	}
	return r.readAt(off)
}

// GetSpectrumByTime decodes the spectrum whose start time is closest to t.
// The time index is built on first use.
func (r *Reader) GetSpectrumByTime(t float64) (*spectrum.CentroidSpectrum, error) {
	off, err := r.offsetOfTime(t)
	if err != nil {
		return nil, err
	}
	return r.readAt(off)
}

// Reset seeks the stream back to byte 0. The parser state is left as is;
// the next read skips to the following BEGIN IONS either way.
func (r *Reader) Reset() error {
	return r.seek(0)
}

// StartFromID positions the reader so that the next ReadNext returns the
// spectrum titled id. Nothing is decoded.
func (r *Reader) StartFromID(id string) error {
	off, err := r.offsetOfID(id)
	if err != nil {
		return err
	}
	return r.startAt(off)
}

// StartFromIndex positions the reader at position i of the offset index.
func (r *Reader) StartFromIndex(i int) error {
	off, err := r.offsetOfIndex(i)
	if err != nil {
		return err
	}
	return r.startAt(off)
}

// StartFromTime positions the reader at the spectrum whose start time is
// closest to t.
func (r *Reader) StartFromTime(t float64) error {
	off, err := r.offsetOfTime(t)
	if err != nil {
		return err
	}
	return r.startAt(off)
}

func (r *Reader) offsetOfID(id string) (uint64, error) {
	if !r.index.Init {
		return 0, types.ErrIndexNotBuilt
	}
	off, ok := r.index.Get(id)
	if !ok {
		return 0, types.NewError(types.ErrKindNotFound,
			fmt.Sprintf("mgf: no spectrum titled %q", id), -1, nil)
	}
	return off, nil
}

func (r *Reader) offsetOfIndex(i int) (uint64, error) {
	if !r.index.Init {
		return 0, types.ErrIndexNotBuilt
	}
	_, off, ok := r.index.GetByPosition(i)
	if !ok {
		return 0, types.NewError(types.ErrKindNotFound,
			fmt.Sprintf("mgf: no spectrum at position %d of %d", i, r.index.Len()), -1, nil)
	}
	return off, nil
}

func (r *Reader) offsetOfTime(t float64) (uint64, error) {
	if !r.times.Init {
		if err := r.buildTimeIndex(); err != nil {
			return 0, err
		}
	}
	e, ok := r.times.Nearest(t)
	if !ok {
		return 0, types.NewError(types.ErrKindNotFound,
			fmt.Sprintf("mgf: no spectrum near time %g", t), -1, nil)
	}
	return e.Offset, nil
}

// startAt seeks to a block offset and restarts the state machine there.
func (r *Reader) startAt(off uint64) error {
	if err := r.seek(int64(off)); err != nil {
		return err
	}
	r.state = StateStart
	return nil
}

// readAt decodes exactly one spectrum at off, then restores the read
// position, parser state and fault of the sequential cursor.
func (r *Reader) readAt(off uint64) (*spectrum.CentroidSpectrum, error) {
	savedPos, savedState, savedFault := r.pos, r.state, r.fault
	if err := r.seek(int64(off)); err != nil {
		return nil, err
	}
	r.state = StateStart

	s := NewSpectrum()
	n, derr := r.ReadInto(s)

	r.state, r.fault = savedState, savedFault
	if err := r.seek(savedPos); err != nil {
		return nil, err
	}
	if derr != nil {
		return nil, derr
	}
	if n == 0 {
		return nil, types.NewError(types.ErrKindNotFound,
			fmt.Sprintf("mgf: no spectrum at offset %d", off), -1, nil)
	}
	return s, nil
}
