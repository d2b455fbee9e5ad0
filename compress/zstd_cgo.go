//go:build cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/hwjsnc/compbench/scheme"
)

func init() {
	registry["gozstd"] = goZstdSchemes
}

// goZstdLevels mirrors the levels exposed by the reference zstd CLI,
// including the negative fast levels.
var goZstdLevels = []int{-50, -20, -15, -10, -5, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22}

// GoZstd binds the reference C zstd library through cgo.
type GoZstd struct {
	level int
}

var _ scheme.Scheme = GoZstd{}

// NewGoZstd creates a GoZstd scheme at level.
func NewGoZstd(level int) GoZstd {
	return GoZstd{level: level}
}

// Compress encodes data as a single zstd frame.
func (z GoZstd) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, z.level), nil
}

// DecompressTo decodes src into the capacity of dst.
func (z GoZstd) DecompressTo(src, dst []byte) error {
	out, err := gozstd.Decompress(dst[:0], src)
	if err != nil {
		return fmt.Errorf("gozstd decompression failed: %w", err)
	}

	return fillFrom(out, dst)
}

// Name returns "gozstd".
func (z GoZstd) Name() string { return "gozstd" }

// Settings reports the level, e.g. "level 19".
func (z GoZstd) Settings() string { return fmt.Sprintf("level %d", z.level) }

func goZstdSchemes() []scheme.Scheme {
	schemes := make([]scheme.Scheme, 0, len(goZstdLevels))
	for _, level := range goZstdLevels {
		schemes = append(schemes, NewGoZstd(level))
	}

	return schemes
}
