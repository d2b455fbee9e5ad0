// Package scheme defines the contract a compression scheme implements to be
// measured: compress, decompress into an exactly sized buffer, and describe
// itself for reporting.
//
// A scheme is one concrete configuration of a codec (for example "zstd at
// level 3"). Its configuration is fixed at construction; the harness calls
// it repeatedly and sequentially, and the same value may be read from
// several goroutines.
package scheme

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrDstTooShort reports decoded output that continues past the end of
	// the destination buffer.
	ErrDstTooShort = errors.New("destination buffer too short")

	// ErrDstTooLong reports decoded output that ended before the
	// destination buffer was filled.
	ErrDstTooLong = errors.New("destination buffer too long")

	// ErrLengthMismatch reports a block decoder that produced a different
	// number of bytes than the destination holds.
	ErrLengthMismatch = errors.New("destination buffer length does not match")
)

// Compressor compresses a whole input in one call.
type Compressor interface {
	// Compress returns the compressed form of data in a newly allocated
	// slice owned by the caller. data is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decodes into a caller-provided buffer.
type Decompressor interface {
	// DecompressTo decodes src into dst, which has exactly the expected
	// decompressed length. It fails if src is malformed or if the decoded
	// output would be longer or shorter than dst.
	DecompressTo(src, dst []byte) error
}

// Describer identifies a scheme in results.
type Describer interface {
	// Name is the codec or library name, e.g. "zstd".
	Name() string
	// Settings describes the configuration, e.g. "level 3". It is empty
	// when the scheme has no parameters worth reporting.
	Settings() string
}

// Scheme can be measured for both compression and decompression.
type Scheme interface {
	Compressor
	Decompressor
	Describer
}

// CompressionScheme can only be measured for compression.
type CompressionScheme interface {
	Compressor
	Describer
}

// Describe formats d for logs and error messages.
func Describe(d Describer) string {
	if settings := d.Settings(); settings != "" {
		return fmt.Sprintf("%s (settings '%s')", d.Name(), settings)
	}

	return d.Name()
}

// ReadExact fills dst from a decoding stream and verifies the stream ends
// exactly there by probing for one more byte. Decoders that validate a
// trailer (checksum, end marker) at end of stream report those failures
// through the probe, so a probe error other than io.EOF is returned as is.
func ReadExact(r io.Reader, dst []byte) error {
	if _, err := io.ReadFull(r, dst); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return fmt.Errorf("%w (%w)", ErrDstTooLong, err)
		}

		return err
	}

	var probe [1]byte
	_, err := io.ReadFull(r, probe[:])
	switch {
	case err == nil:
		return ErrDstTooShort
	case errors.Is(err, io.EOF):
		return nil
	default:
		return err
	}
}

// CheckLength verifies that a block decoder reporting n decoded bytes filled
// dst exactly.
func CheckLength(n int, dst []byte) error {
	if n != len(dst) {
		return fmt.Errorf("%w: decoded %d bytes into %d", ErrLengthMismatch, n, len(dst))
	}

	return nil
}
