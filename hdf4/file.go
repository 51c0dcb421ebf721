package hdf4

import (
	"fmt"
	"os"

	"github.com/robert-malhotra/go-hdf4/internal/ddblock"
	"github.com/robert-malhotra/go-hdf4/internal/tag"
)

// Descriptor is one decoded DD record.
type Descriptor struct {
	Tag Tag
	Ref uint16
}

// File is a parsed HDF4 file. It holds the decoded descriptors in directory
// order and does not retain the input buffer.
type File struct {
	descriptors []Descriptor
}

// Open reads the whole file at path and parses it.
func Open(path string, opts ...Option) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	f, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes an in-memory HDF4 file.
//
// Parse fails only when the signature or the DD block chain is damaged.
// Records with bad payloads are kept as Corrupt, Invalid or Unknown tags.
func Parse(data []byte, opts ...Option) (*File, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(o)
	}

	entries, err := ddblock.Read(data, o.maxBlocks)
	if err != nil {
		return nil, err
	}

	descriptors := make([]Descriptor, len(entries))
	for i, e := range entries {
		id := tag.ID(e.Tag)
		var t Tag
		if o.invalidRanges && id != tag.IDNull && !e.InRange(len(data)) {
			t = Invalid{TagID: id}
		} else {
			t = tag.Decode(id, e.Payload(data))
		}
		descriptors[i] = Descriptor{Tag: t, Ref: e.Ref}
	}

	return &File{descriptors: descriptors}, nil
}

// Descriptors returns the descriptors in directory order. The slice is owned
// by the File and must not be modified.
func (f *File) Descriptors() []Descriptor {
	return f.descriptors
}

// Len returns the number of descriptors.
func (f *File) Len() int {
	return len(f.descriptors)
}

// RemoveNulls drops every Null descriptor, keeping the others in order.
func (f *File) RemoveNulls() {
	kept := f.descriptors[:0]
	for _, d := range f.descriptors {
		if _, isNull := d.Tag.(Null); isNull {
			continue
		}
		kept = append(kept, d)
	}
	clear(f.descriptors[len(kept):])
	f.descriptors = kept
}

// Lookup returns the first descriptor with the tag id and reference number
// named by ref.
func (f *File) Lookup(ref Ref) (Descriptor, bool) {
	for _, d := range f.descriptors {
		if d.Tag.ID() == ref.Tag && d.Ref == ref.Ref {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Filter returns the descriptors for which keep returns true, in order.
func (f *File) Filter(keep func(Descriptor) bool) []Descriptor {
	var out []Descriptor
	for _, d := range f.descriptors {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// ByID returns the descriptors with the given tag id.
func (f *File) ByID(id ID) []Descriptor {
	return f.Filter(func(d Descriptor) bool {
		return d.Tag.ID() == id
	})
}

// Version returns the first decoded DFTAG_VERSION record.
func (f *File) Version() (Version, bool) {
	for _, d := range f.descriptors {
		if v, ok := d.Tag.(Version); ok {
			return v, true
		}
	}
	return Version{}, false
}
