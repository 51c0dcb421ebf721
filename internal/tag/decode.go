package tag

import (
	"unicode/utf8"

	"github.com/robert-malhotra/go-hdf4/internal/binary"
)

const (
	versionHeaderSize = 12
	numberTypeSize    = 4
	refSize           = 4
)

// Decode interprets payload according to id. It always returns a value:
// a recognized id with a malformed payload yields [Corrupt], and an
// unrecognized id yields [Unknown] holding a copy of the payload.
func Decode(id ID, payload []byte) Tag {
	switch id {
	case IDNull:
		return Null{}
	case IDVersion:
		return decodeVersion(payload)
	case IDNumberType:
		return decodeNumberType(payload)
	case IDScientificDataDimension:
		return decodeSDD(payload)
	default:
		return Unknown{TagID: id, Data: append([]byte{}, payload...)}
	}
}

func decodeVersion(data []byte) Tag {
	if len(data) < versionHeaderSize {
		return Corrupt{TagID: IDVersion}
	}
	r := binary.NewReader(data)
	major, _ := r.ReadUint32()
	minor, _ := r.ReadUint32()
	release, _ := r.ReadUint32()

	text := data[versionHeaderSize:]
	if !utf8.Valid(text) {
		return Corrupt{TagID: IDVersion}
	}

	return Version{
		Major:   major,
		Minor:   minor,
		Release: release,
		Text:    string(text),
	}
}

func decodeNumberType(data []byte) Tag {
	if len(data) != numberTypeSize {
		return Corrupt{TagID: IDNumberType}
	}
	r := binary.NewReader(data)
	var nt NumberType
	nt.Version, _ = r.ReadUint8()
	nt.Type, _ = r.ReadUint8()
	nt.Width, _ = r.ReadUint8()
	nt.Class, _ = r.ReadUint8()
	return nt
}

// decodeSDD reads
//
//	rank u16 | rank x dim u32 | datatype ref | rank x scale ref
//
// Trailing bytes are ignored.
func decodeSDD(data []byte) Tag {
	r := binary.NewReader(data)
	rank, err := r.ReadUint16()
	if err != nil {
		return Corrupt{TagID: IDScientificDataDimension}
	}

	n := int(rank)
	if !r.Has(n*4 + refSize + n*refSize) {
		return Corrupt{TagID: IDScientificDataDimension}
	}

	sdd := ScientificDataDimension{
		Dimensions: make([]uint32, n),
		Scales:     make([]Ref, n),
	}
	for i := range sdd.Dimensions {
		sdd.Dimensions[i], _ = r.ReadUint32()
	}
	sdd.DataType = readRef(r)
	for i := range sdd.Scales {
		sdd.Scales[i] = readRef(r)
	}
	return sdd
}

// readRef reads a (tag, ref) pair. Callers check the length beforehand.
func readRef(r *binary.Reader) Ref {
	t, _ := r.ReadUint16()
	ref, _ := r.ReadUint16()
	return Ref{Tag: ID(t), Ref: ref}
}
