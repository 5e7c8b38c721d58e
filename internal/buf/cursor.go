// Package buf contains bounds-checked helpers for decoding binary records.
package buf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShort is reported when a read runs past the end of the buffer.
var ErrShort = errors.New("buf: short buffer")

// Cursor reads big-endian fields sequentially from a byte slice. The first
// out-of-bounds read records an error; every later read returns zero values.
type Cursor struct {
	b   []byte
	off int
	err error
}

// NewCursor returns a Cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor { return &Cursor{b: b} }

// Offset returns the number of bytes consumed.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.b) - c.off }

// Err returns the first read error, if any.
func (c *Cursor) Err() error { return c.err }

// Bytes returns the next n bytes without copying.
func (c *Cursor) Bytes(n int) []byte {
	if c.err != nil {
		return nil
	}
	out, ok := Slice(c.b, c.off, n)
	if !ok {
		c.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShort, n, c.off, c.Remaining())
		return nil
	}
	c.off += n
	return out
}

// U16 reads a big-endian uint16.
func (c *Cursor) U16() uint16 {
	b := c.Bytes(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U32 reads a big-endian uint32.
func (c *Cursor) U32() uint32 {
	b := c.Bytes(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// U64 reads a big-endian uint64.
func (c *Cursor) U64() uint64 {
	b := c.Bytes(8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// String reads a uint16 length prefix followed by that many bytes.
func (c *Cursor) String() string {
	n := c.U16()
	b := c.Bytes(int(n))
	if b == nil {
		return ""
	}
	return string(b)
}
