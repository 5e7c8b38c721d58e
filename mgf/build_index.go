package mgf

import (
	"bytes"
	"errors"
	"io"

	"github.com/paretje/mzdata/index"
	"github.com/paretje/mzdata/pkg/types"
)

// BuildIndex records the offset of every BEGIN IONS line that is followed
// by a TITLE line, keyed by the title, with a raw forward pass over the
// whole stream. Record bodies are not validated. The read position is
// restored afterwards, and any previous index contents are replaced.
//
// It returns the number of bytes scanned. An index with no entries is not
// an error; it is logged as a warning.
func (r *Reader) BuildIndex() (uint64, error) {
	idx := index.NewOffsetIndex(IndexName)
	var untitled, duplicates int

	var lastStart uint64
	foundStart := false
	scanned, err := r.scanLines(func(offset uint64, line []byte) {
		switch {
		case bytes.Equal(line, []byte(BeginIons)):
			if foundStart {
				untitled++
			}
			foundStart = true
			lastStart = offset
		case foundStart && bytes.HasPrefix(line, []byte(titlePrefix)):
			id, derr := r.text.decode(line[len(titlePrefix):], false)
			if derr != nil {
				r.log.Warn("skipping undecodable title", "offset", offset, "error", derr)
				foundStart = false
				return
			}
			if _, seen := idx.Get(id); seen {
				duplicates++
			}
			idx.Insert(id, lastStart)
			foundStart = false
		case foundStart && bytes.Equal(line, []byte(EndIons)):
			untitled++
			foundStart = false
		}
	})
	if err != nil {
		return scanned, err
	}

	idx.Init = true
	r.index = idx
	r.times.Reset()

	if idx.IsEmpty() {
		r.log.Warn("an index was built but no entries were found", "bytes", scanned)
	}
	if untitled > 0 {
		r.log.Warn("spectra without TITLE are not indexed", "count", untitled)
	}
	if duplicates > 0 {
		r.log.Warn("duplicate TITLE values; later offsets replace earlier ones", "count", duplicates)
	}
	r.log.Debug("offset index built", "entries", idx.Len(), "bytes", scanned)
	return scanned, nil
}

// buildTimeIndex records the start time of each block against the offset
// of its BEGIN IONS line. The last RTINSECONDS line of a block wins, as it
// does when decoding. Blocks without a start time are skipped.
func (r *Reader) buildTimeIndex() error {
	times := index.NewTimeIndex()
	var lastStart uint64
	var pending float64
	inBlock, timed := false, false
	flush := func() {
		if inBlock && timed {
			times.Insert(pending, lastStart)
		}
		inBlock, timed = false, false
	}
	_, err := r.scanLines(func(offset uint64, line []byte) {
		switch {
		case bytes.Equal(line, []byte(BeginIons)):
			flush()
			lastStart = offset
			inBlock = true
		case bytes.Equal(line, []byte(EndIons)):
			flush()
		case inBlock && bytes.HasPrefix(line, []byte(retentionTimePrefix)):
			t, perr := parseRetentionTime(string(line[len(retentionTimePrefix):]))
			if perr != nil {
				r.log.Warn("skipping unparsable start time", "offset", lastStart, "error", perr)
				return
			}
			pending, timed = t, true
		}
	})
	if err != nil {
		return err
	}
	flush()
	times.Finalize()
	r.times = times
	r.log.Debug("time index built", "entries", times.Len())
	return nil
}

// scanLines saves the read position, seeks to byte 0, calls fn with the
// offset and whitespace-trimmed bytes of every line, then restores the
// position. It returns the number of bytes scanned.
func (r *Reader) scanLines(fn func(offset uint64, line []byte)) (uint64, error) {
	if r.seeker == nil {
		return 0, types.ErrNotSeekable
	}
	saved := r.pos
	if err := r.seek(0); err != nil {
		return 0, err
	}

	var offset uint64
	for {
		raw, err := r.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			_ = r.seek(saved)
			return offset, types.IOError("mgf: read failed during pre-scan", err)
		}
		if len(raw) == 0 {
			break
		}
		line := raw
		if offset == 0 {
			line = bytes.TrimPrefix(line, []byte(utf8BOM))
		}
		fn(offset, bytes.TrimSpace(line))
		offset += uint64(len(raw))
	}

	if err := r.seek(saved); err != nil {
		return offset, err
	}
	return offset, nil
}
