package compress

import (
	"io"

	"github.com/golang/snappy"

	"github.com/hwjsnc/compbench/scheme"
)

// Snappy is the reference Go Snappy implementation, either as a raw block
// or in the framing format.
type Snappy struct {
	framed bool
}

var _ scheme.Scheme = Snappy{}

// NewSnappy creates a raw block scheme, or a framed stream scheme when
// framed is set.
func NewSnappy(framed bool) Snappy {
	return Snappy{framed: framed}
}

// Compress encodes data as a raw block or a framed stream.
func (c Snappy) Compress(data []byte) ([]byte, error) {
	if !c.framed {
		return snappy.Encode(nil, data), nil
	}

	return compressStream(data, func(w io.Writer) (*snappy.Writer, error) {
		return snappy.NewBufferedWriter(w), nil
	})
}

// DecompressTo decodes src into dst. A raw block is rejected before
// decoding when its recorded length differs from len(dst).
func (c Snappy) DecompressTo(src, dst []byte) error {
	if c.framed {
		return decompressStream(src, dst, func(r io.Reader) (*snappy.Reader, error) {
			return snappy.NewReader(r), nil
		})
	}

	n, err := snappy.DecodedLen(src)
	if err != nil {
		return err
	}
	if err := scheme.CheckLength(n, dst); err != nil {
		return err
	}

	out, err := snappy.Decode(dst, src)
	if err != nil {
		return err
	}

	return fillFrom(out, dst)
}

// Name returns "snappy".
func (c Snappy) Name() string { return "snappy" }

// Settings is "raw" or "framed".
func (c Snappy) Settings() string {
	if c.framed {
		return "framed"
	}

	return "raw"
}

func snappySchemes() []scheme.Scheme {
	return []scheme.Scheme{NewSnappy(false), NewSnappy(true)}
}
