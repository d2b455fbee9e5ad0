package compress

import (
	"bytes"
	"fmt"

	"github.com/foobaz/go-zopfli/zopfli"

	"github.com/hwjsnc/compbench/scheme"
)

const (
	zopfliIterations  = 5
	zopfliBlockSplits = 15
)

// Zopfli writes raw DEFLATE with the zopfli optimal parser. Its output is
// ordinary DEFLATE, so decoding speed is already covered by the flate
// family and the scheme only compresses.
type Zopfli struct {
	iterations  int
	blockSplits int
}

var _ scheme.CompressionScheme = Zopfli{}

// NewZopfli creates a scheme running the given number of optimization
// iterations with at most blockSplits block splits.
func NewZopfli(iterations, blockSplits int) Zopfli {
	return Zopfli{iterations: iterations, blockSplits: blockSplits}
}

// Compress encodes data as a raw DEFLATE stream.
func (c Zopfli) Compress(data []byte) ([]byte, error) {
	opts := zopfli.DefaultOptions()
	opts.NumIterations = c.iterations
	opts.BlockSplitting = c.blockSplits > 0
	opts.BlockSplittingMax = c.blockSplits

	var buf bytes.Buffer
	if err := zopfli.Compress(&opts, zopfli.FORMAT_DEFLATE, data, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Name returns "zopfli".
func (c Zopfli) Name() string { return "zopfli" }

// Settings is empty for the standard configuration.
func (c Zopfli) Settings() string {
	if c.iterations == zopfliIterations && c.blockSplits == zopfliBlockSplits {
		return ""
	}

	return fmt.Sprintf("iterations %d / block splits %d", c.iterations, c.blockSplits)
}

func zopfliSchemes() []scheme.CompressionScheme {
	return []scheme.CompressionScheme{NewZopfli(zopfliIterations, zopfliBlockSplits)}
}
