package bench

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hwjsnc/compbench/corpus"
	"github.com/hwjsnc/compbench/report"
	"github.com/hwjsnc/compbench/scheme"
)

// Samples is the number of timed runs per (scheme, corpus) pair.
const Samples uint = 10

// A zero Samples makes this constant overflow and fails the build.
const _ = uint(Samples - 1)

// minElapsed is the shortest duration a sample may report. A clock that
// does not advance across a very fast call would otherwise yield an
// infinite throughput.
const minElapsed = time.Nanosecond

// ErrNonDeterministic is returned when a scheme produces compressed outputs
// of different lengths for the same input.
var ErrNonDeterministic = errors.New("compressed size changed between samples")

// CorruptionError reports a round trip that did not reproduce the input.
// It signals a bug in the scheme rather than an environmental failure.
type CorruptionError struct {
	// Sample is the zero-based sample on which the mismatch was seen.
	Sample uint
	// Offset is the index of the first differing byte, or the shorter
	// length when one buffer is a prefix of the other.
	Offset int
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("CRITICAL BUG: decompress(compress(x)) != x (sample %d, first difference at byte %d)", e.Sample, e.Offset)
}

// Measure samples a full compress and decompress round trip of s on c.
func Measure(s scheme.Scheme, c corpus.Corpus, opts ...Option) (report.Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return report.Result{}, err
	}

	return measure(cfg, s, s, c)
}

// MeasureCompression samples compression only. The returned result has no
// decompression statistics.
func MeasureCompression(s scheme.CompressionScheme, c corpus.Corpus, opts ...Option) (report.Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return report.Result{}, err
	}

	return measure(cfg, s, nil, c)
}

// measure runs the sample loop; dec is nil for compression-only runs.
func measure(cfg *config, s scheme.CompressionScheme, dec scheme.Decompressor, c corpus.Corpus) (report.Result, error) {
	sizeMB := c.SizeMB()

	var (
		compressed int
		compStats  runningStats
		decStats   runningStats
	)

	for i := range Samples {
		out, elapsed, err := Time(cfg.clock, func() ([]byte, error) {
			return s.Compress(c.Data)
		})
		if err != nil {
			return report.Result{}, fmt.Errorf("couldn't time compression: %w", err)
		}

		if i == 0 {
			compressed = len(out)
		} else if len(out) != compressed {
			return report.Result{}, fmt.Errorf("%w: sample %d produced %d bytes, sample 0 produced %d",
				ErrNonDeterministic, i, len(out), compressed)
		}

		compSpeed := throughput(sizeMB, elapsed)
		compStats.add(compSpeed)

		attrs := []any{
			slog.Uint64("sample", uint64(i)),
			slog.Float64("compress_mbps", compSpeed),
			slog.Int("compressed_bytes", len(out)),
		}

		if dec != nil {
			dst := make([]byte, len(c.Data))
			_, elapsed, err := Time(cfg.clock, func() (struct{}, error) {
				return struct{}{}, dec.DecompressTo(out, dst)
			})
			if err != nil {
				return report.Result{}, fmt.Errorf("couldn't time decompression: %w", err)
			}

			if !bytes.Equal(dst, c.Data) {
				return report.Result{}, &CorruptionError{Sample: i, Offset: firstDifference(dst, c.Data)}
			}

			decSpeed := throughput(sizeMB, elapsed)
			decStats.add(decSpeed)
			attrs = append(attrs, slog.Float64("decompress_mbps", decSpeed))
		}

		cfg.logger.Debug("sample", attrs...)
	}

	result := report.Result{
		Scheme:              s.Name(),
		Settings:            s.Settings(),
		Corpus:              c.Name,
		CompressionSpeed:    compStats.average(),
		CompressionSpeedStd: compStats.stddev(),
		CompressionRatio:    float64(len(c.Data)) / float64(compressed),
	}
	if dec != nil {
		mean, std := decStats.average(), decStats.stddev()
		result.DecompressionSpeed = &mean
		result.DecompressionSpeedStd = &std
	}

	return result, nil
}

// throughput converts a sample to MB/s, clamping the duration to minElapsed.
func throughput(sizeMB float64, elapsed time.Duration) float64 {
	if elapsed < minElapsed {
		elapsed = minElapsed
	}

	return sizeMB / elapsed.Seconds()
}

func firstDifference(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}
