package mgf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paretje/mzdata/index"
	"github.com/paretje/mzdata/internal/mmfile"
	"github.com/paretje/mzdata/pkg/types"
)

// Open opens the MGF file at path. With opts.UseMmap the file is mapped
// into memory; otherwise it is read through a buffered file handle. With
// opts.BuildIndex the offset index is built, or loaded from the sidecar
// "<path>.mzix" when opts.IndexSidecar is set and the sidecar matches the
// file. Call Close when done.
func Open(path string, opts types.OpenOptions) (*Reader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, types.IOError("mgf: open "+path, err)
	}

	var src io.ReadSeeker
	var closer func() error
	if opts.UseMmap {
		data, cleanup, err := mmfile.Map(path)
		if err != nil {
			return nil, types.IOError("mgf: map "+path, err)
		}
		src, closer = bytes.NewReader(data), cleanup
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, types.IOError("mgf: open "+path, err)
		}
		src, closer = f, f.Close
	}

	wantIndex := opts.BuildIndex
	opts.BuildIndex = false
	r, err := newReader(src, path, opts)
	if err != nil {
		closer()
		return nil, err
	}
	r.closer = closer

	if !wantIndex {
		return r, nil
	}
	if opts.IndexSidecar {
		err = r.loadOrBuildSidecar(path+SidecarSuffix, index.FingerprintOf(info))
	} else {
		_, err = r.BuildIndex()
	}
	if err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// loadOrBuildSidecar installs the persisted index when it matches fp, and
// otherwise builds a fresh index and writes it back. Sidecar problems are
// logged, never returned: the pre-scan is always a valid fallback.
func (r *Reader) loadOrBuildSidecar(path string, fp index.Fingerprint) error {
	idx, err := index.LoadFile(path, &fp)
	switch {
	case err == nil:
		idx.Name = IndexName
		r.log.Debug("offset index loaded from sidecar", "path", path, "entries", idx.Len())
		return r.SetIndex(idx)
	case errors.Is(err, os.ErrNotExist):
	case errors.Is(err, index.ErrStale):
		r.log.Info("sidecar index is stale, rebuilding", "path", path)
	default:
		r.log.Warn("ignoring unreadable sidecar index", "path", path, "error", err)
	}

	if _, err := r.BuildIndex(); err != nil {
		return err
	}
	if err := r.index.SaveFile(path, fp); err != nil {
		r.log.Warn("could not write sidecar index", "path", path, "error", err)
	}
	return nil
}

// WriteIndex persists the current offset index next to the file at path.
// The index must have been built from that file.
func (r *Reader) WriteIndex(path string) error {
	if !r.index.Init {
		return types.ErrIndexNotBuilt
	}
	info, err := os.Stat(path)
	if err != nil {
		return types.IOError("mgf: stat "+path, err)
	}
	if err := r.index.SaveFile(path+SidecarSuffix, index.FingerprintOf(info)); err != nil {
		return types.IOError(fmt.Sprintf("mgf: write %s%s", path, SidecarSuffix), err)
	}
	return nil
}
