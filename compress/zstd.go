package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/hwjsnc/compbench/scheme"
)

// zstdDecoderPool pools decoders for reuse. A klauspost decoder runs without
// allocations after warmup, so a shared pool keeps allocation noise out of
// decompression samples.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// Zstd is the pure Go Zstandard implementation from klauspost/compress at
// one of its four encoder levels.
type Zstd struct {
	level    zstd.EncoderLevel
	encoders *sync.Pool
}

var _ scheme.Scheme = (*Zstd)(nil)

// NewZstd creates a Zstd scheme at level.
func NewZstd(level zstd.EncoderLevel) *Zstd {
	return &Zstd{
		level: level,
		encoders: &sync.Pool{
			New: func() any {
				encoder, err := zstd.NewWriter(nil,
					zstd.WithEncoderLevel(level),
					zstd.WithEncoderConcurrency(1),
				)
				if err != nil {
					// This should never happen with valid options
					panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
				}

				return encoder
			},
		},
	}
}

// Compress encodes data as a single zstd frame.
func (z *Zstd) Compress(data []byte) ([]byte, error) {
	encoder := z.encoders.Get().(*zstd.Encoder)
	defer z.encoders.Put(encoder)

	// EncodeAll is stateless - safe to use with pooled encoder
	return encoder.EncodeAll(data, nil), nil
}

// DecompressTo decodes src into the capacity of dst. Output that does not
// fit makes the decoder reallocate, which shows up as a length mismatch.
func (z *Zstd) DecompressTo(src, dst []byte) error {
	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(src, dst[:0])
	if err != nil {
		return fmt.Errorf("zstd decompression failed: %w", err)
	}

	return fillFrom(out, dst)
}

// Name returns "zstd".
func (z *Zstd) Name() string { return "zstd" }

// Settings reports the encoder level, e.g. "level better".
func (z *Zstd) Settings() string { return "level " + z.level.String() }

func zstdSchemes() []scheme.Scheme {
	return []scheme.Scheme{
		NewZstd(zstd.SpeedFastest),
		NewZstd(zstd.SpeedDefault),
		NewZstd(zstd.SpeedBetterCompression),
		NewZstd(zstd.SpeedBestCompression),
	}
}

// fillFrom finishes an append-style decode into dst[:0]. out must have
// exactly len(dst) bytes; if the decoder moved to a new backing array the
// bytes are copied back.
func fillFrom(out, dst []byte) error {
	if err := scheme.CheckLength(len(out), dst); err != nil {
		return err
	}
	if len(out) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}

	return nil
}
