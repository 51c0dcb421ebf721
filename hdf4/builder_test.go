package hdf4

import (
	"encoding/binary"
)

// record is a DD record for building test files. If payload is non-nil it is
// appended after the directory and offset/length are filled in.
type record struct {
	tag     ID
	ref     uint16
	offset  uint32
	length  uint32
	payload []byte
}

// buildFile lays out a single-block HDF4 file: signature, one DD block
// holding every record, then the payloads in record order.
func buildFile(records ...record) []byte {
	buf := []byte{0x0E, 0x03, 0x13, 0x01}
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(records)))
	buf = binary.BigEndian.AppendUint32(buf, 0)

	next := uint32(len(buf) + 12*len(records))
	for _, r := range records {
		if r.payload != nil {
			r.offset = next
			r.length = uint32(len(r.payload))
			next += r.length
		}
		buf = binary.BigEndian.AppendUint16(buf, uint16(r.tag))
		buf = binary.BigEndian.AppendUint16(buf, r.ref)
		buf = binary.BigEndian.AppendUint32(buf, r.offset)
		buf = binary.BigEndian.AppendUint32(buf, r.length)
	}
	for _, r := range records {
		buf = append(buf, r.payload...)
	}
	return buf
}

func sddPayload(dims []uint32, dataType Ref, scales []Ref) []byte {
	buf := binary.BigEndian.AppendUint16(nil, uint16(len(dims)))
	for _, d := range dims {
		buf = binary.BigEndian.AppendUint32(buf, d)
	}
	buf = binary.BigEndian.AppendUint16(buf, uint16(dataType.Tag))
	buf = binary.BigEndian.AppendUint16(buf, dataType.Ref)
	for _, s := range scales {
		buf = binary.BigEndian.AppendUint16(buf, uint16(s.Tag))
		buf = binary.BigEndian.AppendUint16(buf, s.Ref)
	}
	return buf
}

func versionPayload(major, minor, release uint32, text string) []byte {
	buf := binary.BigEndian.AppendUint32(nil, major)
	buf = binary.BigEndian.AppendUint32(buf, minor)
	buf = binary.BigEndian.AppendUint32(buf, release)
	return append(buf, text...)
}
