package compress

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/hwjsnc/compbench/scheme"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

var lz4Levels = []lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
	lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

// LZ4Block compresses into a single raw LZ4 block. Level Fast uses the
// fast compressor; any other level uses the high-compression compressor.
type LZ4Block struct {
	level lz4.CompressionLevel
	hc    *sync.Pool
}

var _ scheme.Scheme = (*LZ4Block)(nil)

// NewLZ4Block creates a block scheme at level.
func NewLZ4Block(level lz4.CompressionLevel) *LZ4Block {
	return &LZ4Block{
		level: level,
		hc: &sync.Pool{
			New: func() any {
				return &lz4.CompressorHC{Level: level}
			},
		},
	}
}

// Compress compresses the input data into one LZ4 block.
func (c *LZ4Block) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	var (
		n   int
		err error
	)
	if c.level == lz4.Fast {
		lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
		defer lz4CompressorPool.Put(lc)
		n, err = lc.CompressBlock(data, dst)
	} else {
		hc, _ := c.hc.Get().(*lz4.CompressorHC)
		defer c.hc.Put(hc)
		n, err = hc.CompressBlock(data, dst)
	}
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressTo decodes a block into dst. A block does not record its
// decoded length, so output that would overrun dst is reported by the
// decoder as a short buffer.
func (c *LZ4Block) DecompressTo(src, dst []byte) error {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return fmt.Errorf("lz4 block: %w", err)
	}

	return scheme.CheckLength(n, dst)
}

// Name returns "lz4".
func (c *LZ4Block) Name() string { return "lz4" }

// Settings reports the compressor, e.g. "block / fast" or
// "block HC / level 4".
func (c *LZ4Block) Settings() string {
	if c.level == lz4.Fast {
		return "block / fast"
	}

	return "block HC / " + lz4LevelName(c.level)
}

// LZ4Frame compresses into the LZ4 frame format with checksums.
type LZ4Frame struct {
	level lz4.CompressionLevel
}

var _ scheme.Scheme = LZ4Frame{}

// NewLZ4Frame creates a frame scheme at level.
func NewLZ4Frame(level lz4.CompressionLevel) LZ4Frame {
	return LZ4Frame{level: level}
}

// Compress encodes data as one LZ4 frame using a single goroutine.
func (c LZ4Frame) Compress(data []byte) ([]byte, error) {
	return compressStream(data, func(w io.Writer) (*lz4.Writer, error) {
		zw := lz4.NewWriter(w)
		if err := zw.Apply(lz4.CompressionLevelOption(c.level), lz4.ConcurrencyOption(1)); err != nil {
			return nil, err
		}

		return zw, nil
	})
}

// DecompressTo decodes a frame into dst. The content checksum is verified
// at end of frame.
func (c LZ4Frame) DecompressTo(src, dst []byte) error {
	return decompressStream(src, dst, func(r io.Reader) (*lz4.Reader, error) {
		return lz4.NewReader(r), nil
	})
}

// Name returns "lz4".
func (c LZ4Frame) Name() string { return "lz4" }

// Settings reports the frame level, e.g. "frame / level 9".
func (c LZ4Frame) Settings() string { return "frame / " + lz4LevelName(c.level) }

// lz4LevelName renders Fast and Level1..Level9 as "fast" and "level N".
func lz4LevelName(level lz4.CompressionLevel) string {
	if level == lz4.Fast {
		return "fast"
	}
	for i, l := range lz4Levels {
		if l == level {
			return fmt.Sprintf("level %d", i+1)
		}
	}

	return strings.ToLower(level.String())
}

func lz4Schemes() []scheme.Scheme {
	schemes := []scheme.Scheme{NewLZ4Block(lz4.Fast)}
	for _, level := range lz4Levels {
		schemes = append(schemes, NewLZ4Block(level))
	}

	schemes = append(schemes, NewLZ4Frame(lz4.Fast))
	for _, level := range lz4Levels {
		schemes = append(schemes, NewLZ4Frame(level))
	}

	return schemes
}
