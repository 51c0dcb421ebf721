package hdf4

// Option configures parsing.
type Option func(*parseOptions)

type parseOptions struct {
	maxBlocks     int
	invalidRanges bool
}

func defaultParseOptions() *parseOptions {
	return &parseOptions{}
}

// WithMaxBlocks limits how many DD blocks may be chained together.
// Values <= 0 are ignored and the default limit applies.
func WithMaxBlocks(n int) Option {
	return func(o *parseOptions) {
		if n > 0 {
			o.maxBlocks = n
		}
	}
}

// WithInvalidRanges reports records whose payload range lies outside the file
// as Invalid instead of decoding them from an empty payload. DFTAG_NULL
// records are always Null.
func WithInvalidRanges() Option {
	return func(o *parseOptions) {
		o.invalidRanges = true
	}
}
