package ddblock

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-hdf4/internal/binary"
)

// Signature is the HDF4 magic number at offset 0.
var Signature = []byte{0x0E, 0x03, 0x13, 0x01}

const (
	// MinFileSize is the signature plus one block header.
	MinFileSize = 10

	// HeaderSize is the size of a DD block header.
	HeaderSize = 6

	// RecordSize is the size of a single DD record.
	RecordSize = 12

	// FirstBlockOffset is where the first block header lives.
	FirstBlockOffset = 4

	// DefaultMaxBlocks bounds the length of a block chain.
	DefaultMaxBlocks = 1 << 16
)

// Errors
var (
	ErrIncomplete    = errors.New("incomplete file")
	ErrBadMagic      = errors.New("invalid magic number")
	ErrCycle         = errors.New("DD block chain loops")
	ErrTooManyBlocks = errors.New("too many DD blocks")
)

// Entry is one raw DD record.
type Entry struct {
	Tag    uint16
	Ref    uint16
	Offset uint32
	Length uint32

	// BlockOffset is the absolute offset of the block holding this record.
	BlockOffset uint32
}

// InRange reports whether the entry's payload lies inside a buffer of size n.
func (e Entry) InRange(n int) bool {
	return binary.InRange(n, e.Offset, e.Length)
}

// Payload returns the entry's payload within buf, or an empty slice if the
// declared range does not fit.
func (e Entry) Payload(buf []byte) []byte {
	return binary.Slice(buf, e.Offset, e.Length)
}

// Read validates the signature and walks the DD block chain, returning every
// record in block order and then record order. maxBlocks <= 0 selects
// DefaultMaxBlocks.
func Read(buf []byte, maxBlocks int) ([]Entry, error) {
	if len(buf) < MinFileSize {
		return nil, ErrIncomplete
	}
	if !bytes.Equal(buf[:len(Signature)], Signature) {
		return nil, ErrBadMagic
	}
	if maxBlocks <= 0 {
		maxBlocks = DefaultMaxBlocks
	}

	r := binary.NewReader(buf)
	visited := make(map[uint32]struct{})

	var entries []Entry
	next := uint32(FirstBlockOffset)
	for next != 0 {
		if _, seen := visited[next]; seen {
			return nil, fmt.Errorf("block at offset %d: %w", next, ErrCycle)
		}
		if len(visited) >= maxBlocks {
			return nil, fmt.Errorf("more than %d blocks: %w", maxBlocks, ErrTooManyBlocks)
		}
		visited[next] = struct{}{}

		block, following, err := readBlock(r, next)
		if err != nil {
			return nil, err
		}
		entries = append(entries, block...)
		next = following
	}

	return entries, nil
}

// readBlock decodes the block at offset and returns its records together with
// the offset of the next block.
func readBlock(r *binary.Reader, offset uint32) ([]Entry, uint32, error) {
	if uint64(offset) > uint64(^uint(0)>>1) {
		return nil, 0, fmt.Errorf("block at offset %d: %w", offset, ErrIncomplete)
	}
	br := r.At(int(offset))
	if !br.Has(HeaderSize) {
		return nil, 0, fmt.Errorf("block header at offset %d: %w", offset, ErrIncomplete)
	}

	count, err := br.ReadUint16()
	if err != nil {
		return nil, 0, err
	}
	next, err := br.ReadUint32()
	if err != nil {
		return nil, 0, err
	}

	if !br.Has(int(count) * RecordSize) {
		return nil, 0, fmt.Errorf("block at offset %d declares %d records: %w", offset, count, ErrIncomplete)
	}

	entries := make([]Entry, count)
	for i := range entries {
		e := &entries[i]
		e.BlockOffset = offset
		// Length was checked above, so these reads cannot fail.
		e.Tag, _ = br.ReadUint16()
		e.Ref, _ = br.ReadUint16()
		e.Offset, _ = br.ReadUint32()
		e.Length, _ = br.ReadUint32()
	}

	return entries, next, nil
}
