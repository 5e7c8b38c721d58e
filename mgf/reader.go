package mgf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paretje/mzdata/index"
	"github.com/paretje/mzdata/internal/logger"
	"github.com/paretje/mzdata/pkg/types"
	"github.com/paretje/mzdata/spectrum"
)

var _ types.RandomAccessIterator[*spectrum.CentroidSpectrum] = (*Reader)(nil)

// Reader decodes MGF spectra from a byte stream. It supports forward
// iteration on any io.Reader and, when the stream is also an io.Seeker,
// offset-indexed random access.
//
// A Reader is not safe for concurrent use. Random access moves the
// underlying stream and restores it afterwards, so two goroutines sharing a
// Reader (or its stream) would corrupt each other's position. Guard the
// Reader with a mutex, or open one Reader per goroutine.
type Reader struct {
	src    io.Reader
	seeker io.Seeker // nil when src cannot seek
	buf    *bufio.Reader
	pos    int64 // absolute offset of the next unread byte
	line   []byte

	state ParserState
	fault types.ErrKind

	index *index.OffsetIndex
	times *index.TimeIndex

	opts       types.OpenOptions
	text       *lineDecoder
	fileParams map[string]string
	log        *slog.Logger
	closer     func() error

	// Next/Spectrum/Err iteration
	cur *spectrum.CentroidSpectrum
	err error
}

// New wraps src in an unindexed Reader unless opts.BuildIndex is set.
// If src implements io.Seeker the reader records its current position as
// the starting offset; all offsets are absolute stream offsets.
func New(src io.Reader, opts types.OpenOptions) (*Reader, error) {
	return newReader(src, "stream", opts)
}

// NewIndexed wraps src and builds the offset index immediately.
func NewIndexed(src io.ReadSeeker, opts types.OpenOptions) (*Reader, error) {
	opts.BuildIndex = true
	return newReader(src, "stream", opts)
}

func newReader(src io.Reader, name string, opts types.OpenOptions) (*Reader, error) {
	text, err := newLineDecoder(opts.Encoding)
	if err != nil {
		return nil, err
	}
	size := opts.BufferSize
	if size <= 0 {
		size = types.DefaultBufferSize
	}
	base := opts.Logger
	if base == nil {
		base = logger.L
	}

	r := &Reader{
		src:        src,
		buf:        bufio.NewReaderSize(src, size),
		state:      StateStart,
		index:      index.NewOffsetIndex(IndexName),
		times:      index.NewTimeIndex(),
		opts:       opts,
		text:       text,
		fileParams: make(map[string]string),
		log:        base.With("reader", uuid.NewString(), "source", name),
	}
	if s, ok := src.(io.Seeker); ok {
		pos, err := s.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, types.IOError("mgf: query stream position", err)
		}
		r.seeker = s
		r.pos = pos
	}
	if opts.BuildIndex {
		if _, err := r.BuildIndex(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Close releases the resources acquired by Open. It is a no-op for readers
// created with New.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer()
	r.closer = nil
	return err
}

// State returns the decoder state after the last read.
func (r *Reader) State() ParserState { return r.state }

// Fault returns the kind of the last decode fault, or types.ErrKindNone.
func (r *Reader) Fault() types.ErrKind { return r.fault }

// Position returns the absolute offset of the next byte the decoder reads.
func (r *Reader) Position() int64 { return r.pos }

// Seekable reports whether random access is available.
func (r *Reader) Seekable() bool { return r.seeker != nil }

// FileParams returns the KEY=VALUE parameters found before the first
// BEGIN IONS, keyed by lower-cased name. They are collected only while
// reading from the start of the file.
func (r *Reader) FileParams() map[string]string {
	out := make(map[string]string, len(r.fileParams))
	for k, v := range r.fileParams {
		out[k] = v
	}
	return out
}

// readLine returns the next raw line including its terminator. At end of
// input it returns an empty slice and io.EOF; a final unterminated line is
// returned together with io.EOF. The slice is reused by the next call.
func (r *Reader) readLine() ([]byte, error) {
	r.line = r.line[:0]
	for {
		chunk, err := r.buf.ReadSlice('\n')
		r.line = append(r.line, chunk...)
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		r.pos += int64(len(r.line))
		return r.line, err
	}
}

// seek moves the stream to the absolute offset off and drops buffered data.
func (r *Reader) seek(off int64) error {
	if r.seeker == nil {
		return types.ErrNotSeekable
	}
	if _, err := r.seeker.Seek(off, io.SeekStart); err != nil {
		return types.IOError(fmt.Sprintf("mgf: seek to offset %d", off), err)
	}
	r.buf.Reset(r.src)
	r.pos = off
	return nil
}
