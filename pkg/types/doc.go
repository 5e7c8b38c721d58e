// Package types defines the format-independent contract shared by spectrum
// readers: typed errors, capability interfaces and open options.
//
// Each file format backend (MGF today) owns its own decoder and stream and
// implements the same interfaces:
//   - SpectrumIterator: sequential decode in file order.
//   - SpectrumSource: lookups by native id, position and time.
//   - RandomAccessIterator: reposition the sequential cursor, then iterate.
//
// Errors carry a stable ErrKind so callers can decide whether a decode fault
// aborts the whole stream or only skips the offending record.
//
// This package depends only on the standard library and the index package.
package types
