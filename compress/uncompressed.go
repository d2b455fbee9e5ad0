package compress

import (
	"fmt"

	"github.com/hwjsnc/compbench/scheme"
)

// Uncompressed stores data as is. It is the baseline every other scheme is
// compared against: its ratio is exactly 1 and its speed is that of a copy.
type Uncompressed struct{}

var _ scheme.Scheme = Uncompressed{}

// NewUncompressed creates the identity scheme.
func NewUncompressed() Uncompressed {
	return Uncompressed{}
}

// Compress returns a copy of data.
func (Uncompressed) Compress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

// DecompressTo copies src into dst, which must have the same length.
func (Uncompressed) DecompressTo(src, dst []byte) error {
	switch {
	case len(src) > len(dst):
		return fmt.Errorf("%w: %d bytes into %d", scheme.ErrDstTooShort, len(src), len(dst))
	case len(src) < len(dst):
		return fmt.Errorf("%w: %d bytes into %d", scheme.ErrDstTooLong, len(src), len(dst))
	}
	copy(dst, src)

	return nil
}

// Name returns "uncompressed".
func (Uncompressed) Name() string { return "uncompressed" }

// Settings is empty: the scheme has no parameters.
func (Uncompressed) Settings() string { return "" }

func uncompressedSchemes() []scheme.Scheme {
	return []scheme.Scheme{NewUncompressed()}
}
