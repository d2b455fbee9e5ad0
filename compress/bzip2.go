package compress

import (
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"

	"github.com/hwjsnc/compbench/scheme"
)

const bzip2MaxLevel = 9

// Bzip2 is the dsnet/compress bzip2 implementation. The level sets the
// block size in units of 100 kB.
type Bzip2 struct {
	level int
}

var _ scheme.Scheme = Bzip2{}

// NewBzip2 creates a scheme at level (1 to 9).
func NewBzip2(level int) Bzip2 {
	return Bzip2{level: level}
}

// Compress encodes data as one bzip2 stream.
func (c Bzip2) Compress(data []byte) ([]byte, error) {
	return compressStream(data, func(w io.Writer) (*bzip2.Writer, error) {
		return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: c.level})
	})
}

// DecompressTo decodes a bzip2 stream into dst. The stream CRC is checked
// when the reader reaches its end.
func (c Bzip2) DecompressTo(src, dst []byte) error {
	return decompressStream(src, dst, func(r io.Reader) (*bzip2.Reader, error) {
		return bzip2.NewReader(r, nil)
	})
}

// Name returns "bzip2".
func (c Bzip2) Name() string { return "bzip2" }

// Settings reports the level, e.g. "level 9".
func (c Bzip2) Settings() string { return fmt.Sprintf("level %d", c.level) }

func bzip2Schemes() []scheme.Scheme {
	schemes := make([]scheme.Scheme, 0, bzip2MaxLevel)
	for level := 1; level <= bzip2MaxLevel; level++ {
		schemes = append(schemes, NewBzip2(level))
	}

	return schemes
}
