package index

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/golang/snappy"

	"github.com/paretje/mzdata/internal/buf"
)

const (
	sidecarMagic   = "MZIX"
	sidecarVersion = uint16(1)

	// magic(4) + version(2) + reserved(2) + size(8) + modtime(8) + bodyLen(4) + crc(4)
	sidecarHeaderSize = 32

	maxIDLength = 1<<16 - 1

	// uint16 id length + uint64 offset
	minEntrySize = 10
)

var (
	// ErrCorrupt indicates a persisted index is truncated or fails its checksum.
	ErrCorrupt = errors.New("index: corrupt sidecar")
	// ErrStale indicates a persisted index was written for a different file.
	ErrStale = errors.New("index: sidecar does not match source")
)

var crcTable = crc32.MakeTable(crc32.IEEE)

// Fingerprint identifies the file an index was built from.
type Fingerprint struct {
	Size    int64
	ModTime int64 // unix nanoseconds
}

// FingerprintOf derives a Fingerprint from file metadata.
func FingerprintOf(fi os.FileInfo) Fingerprint {
	return Fingerprint{Size: fi.Size(), ModTime: fi.ModTime().UnixNano()}
}

// Encode writes the index as a sidecar: a fixed big-endian header followed
// by the snappy-compressed entry list.
func (x *OffsetIndex) Encode(w io.Writer, fp Fingerprint) error {
	body := bytes.NewBuffer(make([]byte, 0, 64+len(x.keys)*24))
	if len(x.Name) > maxIDLength {
		return fmt.Errorf("index: name too long (%d bytes)", len(x.Name))
	}
	writeString(body, x.Name)
	_ = binary.Write(body, binary.BigEndian, uint32(len(x.keys)))
	for _, k := range x.keys {
		if len(k) > maxIDLength {
			return fmt.Errorf("index: id too long (%d bytes)", len(k))
		}
		writeString(body, k)
		_ = binary.Write(body, binary.BigEndian, x.offsets[k])
	}

	raw := body.Bytes()
	compressed := snappy.Encode(nil, raw)

	hdr := make([]byte, sidecarHeaderSize)
	copy(hdr, sidecarMagic)
	binary.BigEndian.PutUint16(hdr[4:], sidecarVersion)
	binary.BigEndian.PutUint64(hdr[8:], uint64(fp.Size))
	binary.BigEndian.PutUint64(hdr[16:], uint64(fp.ModTime))
	binary.BigEndian.PutUint32(hdr[24:], uint32(len(compressed)))
	binary.BigEndian.PutUint32(hdr[28:], crc32.Checksum(raw, crcTable))

	if _, err := w.Write(hdr); err != nil {
		return fmt.Errorf("index: write header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("index: write body: %w", err)
	}
	return nil
}

// Decode reads a sidecar written by Encode. When want is non-nil the stored
// fingerprint must match it, otherwise ErrStale is returned. The decoded
// index is marked initialized.
func Decode(r io.Reader, want *Fingerprint) (*OffsetIndex, error) {
	hdr := make([]byte, sidecarHeaderSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	if string(hdr[:4]) != sidecarMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, hdr[:4])
	}
	if v := binary.BigEndian.Uint16(hdr[4:]); v != sidecarVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, v)
	}
	got := Fingerprint{
		Size:    int64(binary.BigEndian.Uint64(hdr[8:])),
		ModTime: int64(binary.BigEndian.Uint64(hdr[16:])),
	}
	if want != nil && got != *want {
		return nil, ErrStale
	}
	bodyLen := binary.BigEndian.Uint32(hdr[24:])
	sum := binary.BigEndian.Uint32(hdr[28:])

	compressed := make([]byte, bodyLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("%w: body: %v", ErrCorrupt, err)
	}
	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if crc32.Checksum(raw, crcTable) != sum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	c := buf.NewCursor(raw)
	name := c.String()
	n := c.U32()
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if _, err := buf.CheckListBounds(len(raw), c.Offset(), int(n), minEntrySize); err != nil {
		return nil, fmt.Errorf("%w: %d entries: %v", ErrCorrupt, n, err)
	}
	x := NewOffsetIndex(name)
	for i := uint32(0); i < n; i++ {
		id := c.String()
		off := c.U64()
		if err := c.Err(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorrupt, i, err)
		}
		x.Insert(id, off)
	}
	x.Init = true
	return x, nil
}

// SaveFile writes the sidecar to path, replacing any existing file.
func (x *OffsetIndex) SaveFile(path string, fp Fingerprint) error {
	var out bytes.Buffer
	if err := x.Encode(&out, fp); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("index: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("index: %w", err)
	}
	return nil
}

// LoadFile reads a sidecar from path. See Decode for want.
func LoadFile(path string, want *Fingerprint) (*OffsetIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, want)
}

func writeString(w *bytes.Buffer, s string) {
	_ = binary.Write(w, binary.BigEndian, uint16(len(s)))
	w.WriteString(s)
}
