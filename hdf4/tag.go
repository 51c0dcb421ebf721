package hdf4

import "github.com/robert-malhotra/go-hdf4/internal/tag"

// Tag types, re-exported from the decoder. Switch on the concrete type of
// Descriptor.Tag to inspect a record:
//
//	switch t := d.Tag.(type) {
//	case hdf4.ScientificDataDimension:
//	    fmt.Println(t.Dimensions)
//	case hdf4.Corrupt:
//	    fmt.Println("bad record", t.TagID)
//	}
type (
	Tag                     = tag.Tag
	ID                      = tag.ID
	Ref                     = tag.Ref
	Null                    = tag.Null
	Version                 = tag.Version
	NumberType              = tag.NumberType
	FileIdentifier          = tag.FileIdentifier
	ScientificDataDimension = tag.ScientificDataDimension
	Unknown                 = tag.Unknown
	Invalid                 = tag.Invalid
	Corrupt                 = tag.Corrupt
)

// Recognized tag ids
const (
	TagNull                    = tag.IDNull
	TagVersion                 = tag.IDVersion
	TagFileIdentifier          = tag.IDFileIdentifier
	TagNumberType              = tag.IDNumberType
	TagScientificDataDimension = tag.IDScientificDataDimension
)

// TagName returns the HDF4 mnemonic for id, such as "DFTAG_SDD", or "" if the
// id is not recognized.
func TagName(id ID) string {
	return tag.Name(id)
}
