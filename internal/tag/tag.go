package tag

import (
	"fmt"
	"strings"
)

// ID is an HDF4 tag number.
type ID uint16

// Recognized tag ids
const (
	IDNull                    ID = 1
	IDVersion                 ID = 30
	IDFileIdentifier          ID = 100
	IDNumberType              ID = 106
	IDScientificDataDimension ID = 701
)

var names = map[ID]string{
	IDNull:                    "DFTAG_NULL",
	IDVersion:                 "DFTAG_VERSION",
	IDFileIdentifier:          "DFTAG_FID",
	IDNumberType:              "DFTAG_NT",
	IDScientificDataDimension: "DFTAG_SDD",
}

// Name returns the HDF4 mnemonic for id, or "" if it is not recognized.
func Name(id ID) string {
	return names[id]
}

func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("tag(%d)", uint16(id))
}

// Ref identifies another record by tag and reference number.
// It is a value, not a link: the target may or may not exist.
type Ref struct {
	Tag ID
	Ref uint16
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%d", r.Tag, r.Ref)
}

// Tag is a decoded payload. The concrete type is one of the variants in
// this package.
type Tag interface {
	// ID returns the tag id of the record this value was decoded from.
	ID() ID
	String() string

	isTag()
}

// Null marks an unused DD record.
type Null struct{}

// Version holds the HDF library version that wrote the file.
type Version struct {
	Major   uint32
	Minor   uint32
	Release uint32

	// Text is the descriptive string as stored, including any NUL padding.
	Text string
}

// NumberType describes the encoding of numeric data.
type NumberType struct {
	Version uint8
	Type    uint8
	Width   uint8
	Class   uint8
}

// FileIdentifier holds the file's identifying string.
type FileIdentifier struct {
	Text string
}

// ScientificDataDimension describes the shape of a scientific data set.
type ScientificDataDimension struct {
	Dimensions []uint32

	// DataType refers to the number type record of the data.
	DataType Ref

	// Scales has one reference per dimension.
	Scales []Ref
}

// Rank returns the number of dimensions.
func (s ScientificDataDimension) Rank() int {
	return len(s.Dimensions)
}

// Unknown is a record with an unrecognized tag id.
type Unknown struct {
	TagID ID
	Data  []byte
}

// Invalid is a record whose declared payload range lies outside the file.
type Invalid struct {
	TagID ID
}

// Corrupt is a record with a recognized tag id whose payload failed to decode.
type Corrupt struct {
	TagID ID
}

func (Null) ID() ID                    { return IDNull }
func (Version) ID() ID                 { return IDVersion }
func (NumberType) ID() ID              { return IDNumberType }
func (FileIdentifier) ID() ID          { return IDFileIdentifier }
func (ScientificDataDimension) ID() ID { return IDScientificDataDimension }
func (u Unknown) ID() ID               { return u.TagID }
func (i Invalid) ID() ID               { return i.TagID }
func (c Corrupt) ID() ID               { return c.TagID }

func (Null) isTag()                    {}
func (Version) isTag()                 {}
func (NumberType) isTag()              {}
func (FileIdentifier) isTag()          {}
func (ScientificDataDimension) isTag() {}
func (Unknown) isTag()                 {}
func (Invalid) isTag()                 {}
func (Corrupt) isTag()                 {}

func (Null) String() string {
	return "Null"
}

func (v Version) String() string {
	return fmt.Sprintf("Version{%d.%d.%d %q}", v.Major, v.Minor, v.Release, strings.TrimRight(v.Text, "\x00"))
}

func (n NumberType) String() string {
	return fmt.Sprintf("NumberType{version=%d type=%d width=%d class=%d}", n.Version, n.Type, n.Width, n.Class)
}

func (f FileIdentifier) String() string {
	return fmt.Sprintf("FileIdentifier{%q}", f.Text)
}

func (s ScientificDataDimension) String() string {
	var b strings.Builder
	b.WriteString("ScientificDataDimension{dims=[")
	for i, d := range s.Dimensions {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", d)
	}
	fmt.Fprintf(&b, "] type=%s scales=[", s.DataType)
	for i, r := range s.Scales {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteString("]}")
	return b.String()
}

func (u Unknown) String() string {
	return fmt.Sprintf("Unknown{%s, %d bytes}", u.TagID, len(u.Data))
}

func (i Invalid) String() string {
	return fmt.Sprintf("Invalid{%s}", i.TagID)
}

func (c Corrupt) String() string {
	return fmt.Sprintf("Corrupt{%s}", c.TagID)
}
