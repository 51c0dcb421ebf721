package hdf4

import "errors"

// SkipAll can be returned from a WalkFunc to stop walking without error.
var SkipAll = errors.New("skip all descriptors")

// WalkFunc is called for each descriptor during Walk.
// index is the descriptor's position in directory order.
// Return nil to continue walking, SkipAll to stop, or any other error to stop
// and have Walk return it.
type WalkFunc func(index int, d Descriptor) error

// Walk calls fn for each descriptor in directory order.
//
// Example:
//
//	f.Walk(func(i int, d hdf4.Descriptor) error {
//	    if sdd, ok := d.Tag.(hdf4.ScientificDataDimension); ok {
//	        fmt.Println(i, d.Ref, sdd.Dimensions)
//	    }
//	    return nil
//	})
func (f *File) Walk(fn WalkFunc) error {
	for i, d := range f.descriptors {
		if err := fn(i, d); err != nil {
			if errors.Is(err, SkipAll) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Scales resolves the scale references of sdd against f. References with no
// matching descriptor are returned in missing.
func (f *File) Scales(sdd ScientificDataDimension) (found []Descriptor, missing []Ref) {
	for _, ref := range sdd.Scales {
		if d, ok := f.Lookup(ref); ok {
			found = append(found, d)
		} else {
			missing = append(missing, ref)
		}
	}
	return found, missing
}
