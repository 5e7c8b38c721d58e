// Package spectrum holds the in-memory model of a decoded mass spectrum:
// a Description (identifier, MS level, polarity, precursor, acquisition
// events, free-form annotations) and a list of centroid peaks.
//
// Peaks are kept in the order the source file lists them. Nothing here
// sorts implicitly; use PeakSet.Sort when m/z order matters.
package spectrum
