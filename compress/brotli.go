package compress

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"

	"github.com/hwjsnc/compbench/scheme"
)

const (
	brotliMinQuality = 0
	brotliMaxQuality = 11
)

var brotliWindows = []int{20, 21, 22}

// Brotli is the pure Go port of the reference Brotli encoder.
type Brotli struct {
	quality int
	lgwin   int
}

var _ scheme.Scheme = Brotli{}

// NewBrotli creates a scheme at quality (0 to 11) with a window of
// 1<<lgwin bytes.
func NewBrotli(quality, lgwin int) Brotli {
	return Brotli{quality: quality, lgwin: lgwin}
}

// Compress encodes data as one Brotli stream.
func (c Brotli) Compress(data []byte) ([]byte, error) {
	return compressStream(data, func(w io.Writer) (*brotli.Writer, error) {
		return brotli.NewWriterOptions(w, brotli.WriterOptions{
			Quality: c.quality,
			LGWin:   c.lgwin,
		}), nil
	})
}

// DecompressTo decodes a Brotli stream into dst, which must be filled
// exactly.
func (c Brotli) DecompressTo(src, dst []byte) error {
	return decompressStream(src, dst, func(r io.Reader) (*brotli.Reader, error) {
		return brotli.NewReader(r), nil
	})
}

// Name returns "brotli".
func (c Brotli) Name() string { return "brotli" }

// Settings reports quality and window, e.g. "quality 11 / window 22".
func (c Brotli) Settings() string {
	return fmt.Sprintf("quality %d / window %d", c.quality, c.lgwin)
}

func brotliSchemes() []scheme.Scheme {
	var schemes []scheme.Scheme
	for quality := brotliMinQuality; quality <= brotliMaxQuality; quality++ {
		for _, lgwin := range brotliWindows {
			schemes = append(schemes, NewBrotli(quality, lgwin))
		}
	}

	return schemes
}
