package types

import (
	"log/slog"

	"github.com/paretje/mzdata/index"
)

// -----------------------------------------------------------------------------
// Capability interfaces
// -----------------------------------------------------------------------------

// SpectrumIterator decodes spectra in the physical order of the file.
// ReadNext returns io.EOF once the stream is exhausted. A decode fault is
// returned as an *Error; the iterator stays usable and the next call resumes
// at the following record.
type SpectrumIterator[S any] interface {
	ReadNext() (S, error)
}

// SpectrumSource provides keyed access to the spectra of an indexed file.
// Every lookup restores the sequential read position before returning.
type SpectrumSource[S any] interface {
	// GetSpectrumByID decodes the spectrum whose native id is id.
	GetSpectrumByID(id string) (S, error)

	// GetSpectrumByIndex decodes the spectrum at 0-based position i.
	GetSpectrumByIndex(i int) (S, error)

	// GetSpectrumByTime decodes the spectrum whose start time is closest to t.
	GetSpectrumByTime(t float64) (S, error)

	// Reset seeks the stream back to the first byte.
	Reset() error

	// Index returns the offset index backing keyed access.
	Index() *index.OffsetIndex

	// Len is the number of indexed spectra.
	Len() int
}

// RandomAccessIterator is a SpectrumSource that can also reposition its
// sequential cursor. After a successful StartFrom* call the next ReadNext
// yields the requested spectrum, then continues forward in file order.
type RandomAccessIterator[S any] interface {
	SpectrumIterator[S]
	SpectrumSource[S]

	StartFromID(id string) error
	StartFromIndex(i int) error
	StartFromTime(t float64) error
}

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

// Supported values for OpenOptions.Encoding.
const (
	EncodingUTF8        = "UTF-8"
	EncodingLatin1      = "ISO-8859-1"
	EncodingWindows1252 = "WINDOWS-1252"
)

// DefaultBufferSize is the read buffer used when OpenOptions.BufferSize is zero.
const DefaultBufferSize = 4096

// OpenOptions controls how a spectrum reader is constructed.
type OpenOptions struct {
	// BufferSize is the size of the buffered line reader. Zero selects
	// DefaultBufferSize.
	BufferSize int

	// Encoding names the text encoding of the file. Empty means UTF-8.
	// Legacy exports are often ISO-8859-1 or Windows-1252; lines are
	// converted to UTF-8 before parsing. Byte offsets always refer to the
	// raw file.
	Encoding string

	// BuildIndex runs the offset-index pre-scan when the reader is created.
	BuildIndex bool

	// HeaderFirst classifies KEY=VALUE lines before testing for peak lines.
	// The default keeps the historical order, where any line starting with a
	// digit is treated as a peak.
	HeaderFirst bool

	// UseMmap maps the file into memory instead of reading through a file
	// handle. Only honoured when opening by path.
	UseMmap bool

	// IndexSidecar loads the offset index from "<path>.mzix" when it matches
	// the file, and writes it after a fresh build. Only honoured when opening
	// by path and BuildIndex is set.
	IndexSidecar bool

	// Logger receives diagnostics. Nil uses the package logger, which
	// discards output unless initialized.
	Logger *slog.Logger
}

// DefaultOpenOptions returns options for an indexed, UTF-8 reader.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{
		BufferSize: DefaultBufferSize,
		BuildIndex: true,
	}
}
