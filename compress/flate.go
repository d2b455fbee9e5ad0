package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/hwjsnc/compbench/scheme"
)

// FlateFormat selects the container around a DEFLATE stream.
type FlateFormat int

const (
	// Deflate is a raw DEFLATE stream (RFC 1951).
	Deflate FlateFormat = iota
	// Zlib wraps the stream with a zlib header and Adler-32 (RFC 1950).
	Zlib
	// Gzip wraps the stream in a single gzip member with CRC-32 (RFC 1952).
	Gzip
)

// String returns the name used for the format in results.
func (f FlateFormat) String() string {
	switch f {
	case Deflate:
		return "deflate"
	case Zlib:
		return "zlib"
	case Gzip:
		return "gzip"
	default:
		return "invalid"
	}
}

// flateLevels covers Huffman-only and the stored and LZ77 levels 0 to 9.
var flateLevels = []int{flate.HuffmanOnly, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// Flate is DEFLATE from klauspost/compress, raw or wrapped in a zlib or
// gzip container.
type Flate struct {
	format FlateFormat
	level  int
}

var _ scheme.Scheme = Flate{}

// NewFlate creates a scheme for format at level.
func NewFlate(format FlateFormat, level int) Flate {
	return Flate{format: format, level: level}
}

// Compress encodes data as a complete DEFLATE, zlib or gzip stream.
func (c Flate) Compress(data []byte) ([]byte, error) {
	switch c.format {
	case Zlib:
		return compressStream(data, func(w io.Writer) (*zlib.Writer, error) {
			return zlib.NewWriterLevel(w, c.level)
		})
	case Gzip:
		return compressStream(data, func(w io.Writer) (*gzip.Writer, error) {
			return gzip.NewWriterLevel(w, c.level)
		})
	default:
		return compressStream(data, func(w io.Writer) (*flate.Writer, error) {
			return flate.NewWriter(w, c.level)
		})
	}
}

// DecompressTo decodes src into dst. The zlib and gzip trailers are checked
// when the decoder reaches end of stream.
func (c Flate) DecompressTo(src, dst []byte) error {
	switch c.format {
	case Zlib:
		return decompressStream(src, dst, zlib.NewReader)
	case Gzip:
		return decompressStream(src, dst, func(r io.Reader) (*gzip.Reader, error) {
			zr, err := gzip.NewReader(r)
			if err != nil {
				return nil, err
			}
			zr.Multistream(false)

			return zr, nil
		})
	default:
		return decompressStream(src, dst, func(r io.Reader) (io.ReadCloser, error) {
			return flate.NewReader(r), nil
		})
	}
}

// Name returns the container name: deflate, zlib or gzip.
func (c Flate) Name() string { return c.format.String() }

// Settings reports the level, e.g. "level 6" or "level huffman-only".
func (c Flate) Settings() string {
	if c.level == flate.HuffmanOnly {
		return "level huffman-only"
	}

	return fmt.Sprintf("level %d", c.level)
}

func flateSchemes() []scheme.Scheme {
	var schemes []scheme.Scheme
	for _, format := range []FlateFormat{Deflate, Zlib, Gzip} {
		for _, level := range flateLevels {
			schemes = append(schemes, NewFlate(format, level))
		}
	}

	return schemes
}
