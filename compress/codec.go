package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/hwjsnc/compbench/scheme"
)

var (
	// ErrUnknownFamily is returned for a family that is not available in
	// this build.
	ErrUnknownFamily = errors.New("unknown scheme family")

	// ErrCompressionOnly is returned by Schemes for a family whose schemes
	// cannot decompress.
	ErrCompressionOnly = errors.New("scheme family measures compression only")
)

// registry maps a family name to the constructor of its parameter grid.
// Families that need cgo register themselves from build-tagged files.
var registry = map[string]func() []scheme.Scheme{
	"uncompressed": uncompressedSchemes,
	"zstd":         zstdSchemes,
	"s2":           s2Schemes,
	"snappy":       snappySchemes,
	"lz4":          lz4Schemes,
	"flate":        flateSchemes,
	"brotli":       brotliSchemes,
	"bzip2":        bzip2Schemes,
	"lzma":         lzmaSchemes,
}

// compressionOnlyRegistry maps families whose schemes only compress.
var compressionOnlyRegistry = map[string]func() []scheme.CompressionScheme{
	"zopfli": zopfliSchemes,
}

// Families returns the names of the round-trip scheme families in this
// build, sorted.
func Families() []string {
	return slices.Sorted(maps.Keys(registry))
}

// CompressionOnlyFamilies returns the names of the families that can only
// be measured for compression, sorted.
func CompressionOnlyFamilies() []string {
	return slices.Sorted(maps.Keys(compressionOnlyRegistry))
}

// Schemes returns every configuration of family, in increasing order of
// effort. Each call constructs fresh scheme values.
func Schemes(family string) ([]scheme.Scheme, error) {
	grid, ok := registry[family]
	if !ok {
		if _, ok := compressionOnlyRegistry[family]; ok {
			return nil, fmt.Errorf("%w: %q", ErrCompressionOnly, family)
		}

		return nil, unknownFamily(family)
	}

	return grid(), nil
}

// CompressionSchemes returns the grid of family for a compression-only
// sweep. Round-trip families are accepted as well; their schemes are then
// measured without decompression.
func CompressionSchemes(family string) ([]scheme.CompressionScheme, error) {
	if grid, ok := compressionOnlyRegistry[family]; ok {
		return grid(), nil
	}

	grid, ok := registry[family]
	if !ok {
		return nil, unknownFamily(family)
	}

	schemes := grid()
	out := make([]scheme.CompressionScheme, len(schemes))
	for i, s := range schemes {
		out[i] = s
	}

	return out, nil
}

// All returns the schemes of every family, family by family in the order
// of Families.
func All() []scheme.Scheme {
	var all []scheme.Scheme
	for _, family := range Families() {
		all = append(all, registry[family]()...)
	}

	return all
}

// AllCompressionOnly returns the schemes of every compression-only family,
// in the order of CompressionOnlyFamilies.
func AllCompressionOnly() []scheme.CompressionScheme {
	var all []scheme.CompressionScheme
	for _, family := range CompressionOnlyFamilies() {
		all = append(all, compressionOnlyRegistry[family]()...)
	}

	return all
}

func unknownFamily(family string) error {
	valid := slices.Concat(Families(), CompressionOnlyFamilies())
	slices.Sort(valid)

	return fmt.Errorf("%w %q (valid: %s)", ErrUnknownFamily, family, strings.Join(valid, ", "))
}

// compressStream runs data through a streaming encoder and returns the
// complete encoded stream.
func compressStream[W io.WriteCloser](data []byte, newWriter func(io.Writer) (W, error)) ([]byte, error) {
	var buf bytes.Buffer
	w, err := newWriter(&buf)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decompressStream decodes src with a streaming decoder into dst, which must
// be filled exactly.
func decompressStream[R io.Reader](src, dst []byte, newReader func(io.Reader) (R, error)) error {
	r, err := newReader(bytes.NewReader(src))
	if err != nil {
		return err
	}
	if c, ok := any(r).(io.Closer); ok {
		defer c.Close()
	}

	return scheme.ReadExact(r, dst)
}
