package compress

import (
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/hwjsnc/compbench/scheme"
)

// S2Mode selects the S2 encoder.
type S2Mode int

const (
	// S2Block encodes one block with the default encoder.
	S2Block S2Mode = iota
	// S2BlockBetter encodes one block with EncodeBetter.
	S2BlockBetter
	// S2BlockBest encodes one block with EncodeBest.
	S2BlockBest
	// S2Stream writes the framed stream format.
	S2Stream
)

// String returns the settings text of the mode.
func (m S2Mode) String() string {
	switch m {
	case S2Block:
		return "block / default"
	case S2BlockBetter:
		return "block / better"
	case S2BlockBest:
		return "block / best"
	case S2Stream:
		return "stream"
	default:
		return "invalid"
	}
}

// S2 is the Snappy-compatible S2 format from klauspost/compress.
type S2 struct {
	mode S2Mode
}

var _ scheme.Scheme = S2{}

// NewS2 creates an S2 scheme using mode.
func NewS2(mode S2Mode) S2 {
	return S2{mode: mode}
}

// Compress compresses the input data using S2 compression.
func (c S2) Compress(data []byte) ([]byte, error) {
	switch c.mode {
	case S2BlockBetter:
		return s2.EncodeBetter(nil, data), nil
	case S2BlockBest:
		return s2.EncodeBest(nil, data), nil
	case S2Stream:
		return compressStream(data, func(w io.Writer) (*s2.Writer, error) {
			return s2.NewWriter(w, s2.WriterConcurrency(1)), nil
		})
	default:
		return s2.Encode(nil, data), nil
	}
}

// DecompressTo decodes src into dst. Blocks carry their decoded length,
// which is checked before decoding.
func (c S2) DecompressTo(src, dst []byte) error {
	if c.mode == S2Stream {
		return decompressStream(src, dst, func(r io.Reader) (*s2.Reader, error) {
			return s2.NewReader(r), nil
		})
	}

	n, err := s2.DecodedLen(src)
	if err != nil {
		return err
	}
	if err := scheme.CheckLength(n, dst); err != nil {
		return err
	}

	out, err := s2.Decode(dst, src)
	if err != nil {
		return err
	}

	return fillFrom(out, dst)
}

// Name returns "s2".
func (c S2) Name() string { return "s2" }

// Settings reports the mode, e.g. "block / better" or "stream".
func (c S2) Settings() string { return c.mode.String() }

func s2Schemes() []scheme.Scheme {
	return []scheme.Scheme{
		NewS2(S2Block),
		NewS2(S2BlockBetter),
		NewS2(S2BlockBest),
		NewS2(S2Stream),
	}
}
