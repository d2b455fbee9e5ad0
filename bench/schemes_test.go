package bench

import (
	"bytes"
	"errors"

	"github.com/hwjsnc/compbench/scheme"
)

// identity stores data as is.
type identity struct{ name string }

func (identity) Compress(data []byte) ([]byte, error) {
	return bytes.Clone(data), nil
}

func (identity) DecompressTo(src, dst []byte) error {
	return scheme.ReadExact(bytes.NewReader(src), dst)
}

func (s identity) Name() string {
	if s.name == "" {
		return "identity"
	}

	return s.name
}

func (identity) Settings() string { return "" }

// padded appends a trailer byte that its decoder emits as output.
type padded struct{}

func (padded) Compress(data []byte) ([]byte, error) {
	return append(bytes.Clone(data), 0), nil
}

func (padded) DecompressTo(src, dst []byte) error {
	return scheme.ReadExact(bytes.NewReader(src), dst)
}

func (padded) Name() string     { return "padded" }
func (padded) Settings() string { return "trailer 1" }

// growing produces one more byte on every call.
type growing struct{ calls int }

func (g *growing) Compress(data []byte) ([]byte, error) {
	g.calls++
	return append(bytes.Clone(data), make([]byte, g.calls)...), nil
}

func (g *growing) DecompressTo(src, dst []byte) error {
	copy(dst, src)
	return nil
}

func (*growing) Name() string     { return "growing" }
func (*growing) Settings() string { return "" }

// flipping corrupts one byte of its output on decompression.
type flipping struct{ at int }

func (flipping) Compress(data []byte) ([]byte, error) {
	return bytes.Clone(data), nil
}

func (f flipping) DecompressTo(src, dst []byte) error {
	copy(dst, src)
	dst[f.at] ^= 0xff

	return nil
}

func (flipping) Name() string     { return "flipping" }
func (flipping) Settings() string { return "level 7" }

var errCodec = errors.New("codec exploded")

// failing reports an error from Compress.
type failing struct{}

func (failing) Compress([]byte) ([]byte, error) { return nil, errCodec }
func (failing) DecompressTo(_, _ []byte) error  { return nil }
func (failing) Name() string                    { return "failing" }
func (failing) Settings() string                { return "mode broken" }

// compressOnly has no decoder.
type compressOnly struct{}

func (compressOnly) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return bytes.Clone(data[:len(data)/2+1]), nil
}

func (compressOnly) Name() string     { return "half" }
func (compressOnly) Settings() string { return "ratio 2" }

var (
	_ scheme.Scheme            = identity{}
	_ scheme.Scheme            = padded{}
	_ scheme.Scheme            = (*growing)(nil)
	_ scheme.Scheme            = flipping{}
	_ scheme.Scheme            = failing{}
	_ scheme.CompressionScheme = compressOnly{}
)
