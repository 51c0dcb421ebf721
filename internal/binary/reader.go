// Package binary provides bounds-checked binary reads over in-memory HDF4 data.
package binary

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned when a read would run past the end of the buffer.
var ErrShortBuffer = errors.New("read past end of buffer")

// Reader is a cursor over a byte slice. All multi-byte values in HDF4 are
// big-endian, so that is the default order.
type Reader struct {
	buf   []byte
	order binary.ByteOrder
	pos   int
}

// NewReader creates a big-endian reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{
		buf:   buf,
		order: binary.BigEndian,
	}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying buffer but has independent position.
func (r *Reader) At(offset int) *Reader {
	return &Reader{
		buf:   r.buf,
		order: r.order,
		pos:   offset,
	}
}

// Remaining returns the number of unread bytes, or 0 if the position is
// outside the buffer.
func (r *Reader) Remaining() int {
	if r.pos < 0 || r.pos >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.pos
}

// Has reports whether at least n bytes can be read from the current position.
func (r *Reader) Has(n int) bool {
	return n >= 0 && r.Remaining() >= n
}

// ReadBytes returns the next n bytes without copying them.
// The returned slice aliases the reader's buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if !r.Has(n) {
		return nil, ErrShortBuffer
	}
	b := r.buf[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(buf), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// Slice returns buf[offset:offset+length], or an empty slice when the range
// does not fit inside buf. The end is computed in 64 bits so offsets close to
// the 32-bit limit cannot wrap.
func Slice(buf []byte, offset, length uint32) []byte {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(buf)) {
		return []byte{}
	}
	return buf[offset:end:end]
}

// InRange reports whether offset+length fits inside a buffer of size n.
func InRange(n int, offset, length uint32) bool {
	return uint64(offset)+uint64(length) <= uint64(n)
}
