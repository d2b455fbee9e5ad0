package compress

import (
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"github.com/hwjsnc/compbench/scheme"
)

// LZMAFormat selects the container around an LZMA stream.
type LZMAFormat int

const (
	// LZMAAlone is the classic .lzma format: a 13 byte header followed by
	// one stream closed with an end marker.
	LZMAAlone LZMAFormat = iota
	// LZMA2 is a bare LZMA2 chunk sequence.
	LZMA2
	// XZ is the .xz container with a CRC64 check.
	XZ
)

// String returns the name used for the format in results.
func (f LZMAFormat) String() string {
	switch f {
	case LZMAAlone:
		return "lzma"
	case LZMA2:
		return "lzma2"
	case XZ:
		return "xz"
	default:
		return "invalid"
	}
}

// lzmaDictCaps spans the dictionary sizes of the xz presets 0, 1, 6 and 9.
// Every scheme uses the hash table match finder: the binary tree finder of
// this package degrades to a list on long runs of a repeated byte.
var lzmaDictCaps = []int{256 << 10, 1 << 20, 8 << 20, 64 << 20}

// LZMA is the pure Go LZMA implementation from ulikunitz/xz.
type LZMA struct {
	format  LZMAFormat
	dictCap int
}

var _ scheme.Scheme = LZMA{}

// NewLZMA creates a scheme for format with a dictionary of dictCap bytes.
//
// Parameters:
//   - format: container to write
//   - dictCap: dictionary capacity in bytes, at least lzma.MinDictCap
//
// Returns:
//   - LZMA: the scheme value
func NewLZMA(format LZMAFormat, dictCap int) LZMA {
	return LZMA{format: format, dictCap: dictCap}
}

// Compress encodes data into a complete stream of the configured format.
func (c LZMA) Compress(data []byte) ([]byte, error) {
	switch c.format {
	case LZMA2:
		return compressStream(data, func(w io.Writer) (*lzma.Writer2, error) {
			return lzma.Writer2Config{DictCap: c.dictCap, Matcher: lzma.HashTable4}.NewWriter2(w)
		})
	case XZ:
		return compressStream(data, func(w io.Writer) (*xz.Writer, error) {
			return xz.WriterConfig{DictCap: c.dictCap, Matcher: lzma.HashTable4}.NewWriter(w)
		})
	default:
		return compressStream(data, func(w io.Writer) (*lzma.Writer, error) {
			return lzma.WriterConfig{DictCap: c.dictCap, Matcher: lzma.HashTable4}.NewWriter(w)
		})
	}
}

// DecompressTo decodes src into dst. A bare LZMA2 stream does not record
// its dictionary size, so the reader is configured with the encoder's.
// Concatenated xz streams are rejected.
func (c LZMA) DecompressTo(src, dst []byte) error {
	switch c.format {
	case LZMA2:
		return decompressStream(src, dst, func(r io.Reader) (*lzma.Reader2, error) {
			return lzma.Reader2Config{DictCap: c.dictCap}.NewReader2(r)
		})
	case XZ:
		return decompressStream(src, dst, func(r io.Reader) (*xz.Reader, error) {
			return xz.ReaderConfig{SingleStream: true}.NewReader(r)
		})
	default:
		return decompressStream(src, dst, func(r io.Reader) (*lzma.Reader, error) {
			return lzma.ReaderConfig{DictCap: c.dictCap}.NewReader(r)
		})
	}
}

// Name returns the container name: lzma, lzma2 or xz.
func (c LZMA) Name() string { return c.format.String() }

// Settings reports the dictionary size, e.g. "dict 8 MiB".
func (c LZMA) Settings() string {
	return "dict " + mebibytes(c.dictCap)
}

func mebibytes(n int) string {
	if n%(1<<20) == 0 {
		return fmt.Sprintf("%d MiB", n>>20)
	}

	return fmt.Sprintf("%d KiB", n>>10)
}

func lzmaSchemes() []scheme.Scheme {
	var schemes []scheme.Scheme
	for _, format := range []LZMAFormat{LZMAAlone, LZMA2, XZ} {
		for _, dictCap := range lzmaDictCaps {
			schemes = append(schemes, NewLZMA(format, dictCap))
		}
	}

	return schemes
}
