// Package ddblock reads the HDF4 data descriptor (DD) directory.
//
// An HDF4 file starts with a 4-byte signature (hex: 0E 03 13 01) followed by
// a chain of DD blocks. Each block has a 6-byte header and a record array:
//
//	offset  size  field
//	0       2     number of records n
//	2       4     absolute offset of the next block (0 ends the chain)
//	6       12*n  records
//
// and each 12-byte record is
//
//	0  2  tag id
//	2  2  reference id
//	4  4  absolute payload offset
//	8  4  payload length
//
// All integers are big-endian. The first block always starts at offset 4.
//
// # Usage
//
//	entries, err := ddblock.Read(buf, 0) // 0 selects DefaultMaxBlocks
//	for _, e := range entries {
//	    payload := e.Payload(buf)
//	    ...
//	}
//
// [Read] fails only on damage to the directory itself. A record whose payload
// range falls outside the buffer is still returned; [Entry.Payload] yields an
// empty slice for it so that one bad record never hides the rest.
//
// # Errors
//
//   - [ErrIncomplete]: buffer too short for the signature, a block header or
//     a record array
//   - [ErrBadMagic]: signature mismatch
//   - [ErrCycle]: a block's next offset points back into the chain
//   - [ErrTooManyBlocks]: the chain is longer than the configured limit
package ddblock
