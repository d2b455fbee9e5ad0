package bench

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hwjsnc/compbench/corpus"
	"github.com/hwjsnc/compbench/internal/hash"
	"github.com/hwjsnc/compbench/report"
	"github.com/hwjsnc/compbench/scheme"
)

// SchemeError attributes a measurement failure to a scheme, its settings and
// the corpus being measured.
type SchemeError struct {
	Scheme   string
	Settings string
	Corpus   string
	Err      error
}

func (e *SchemeError) Error() string {
	if e.Settings == "" {
		return fmt.Sprintf("benchmark failed for scheme %s with corpus %s: %v", e.Scheme, e.Corpus, e.Err)
	}

	return fmt.Sprintf("benchmark failed for scheme %s (settings '%s') with corpus %s: %v", e.Scheme, e.Settings, e.Corpus, e.Err)
}

func (e *SchemeError) Unwrap() error { return e.Err }

// Benchmark measures every scheme against every corpus and writes one CSV
// record per pair to w, in scheme order and then corpus order. The first
// failure stops the sweep.
func Benchmark[S scheme.Scheme](w io.Writer, schemes []S, opts ...Option) error {
	return sweep(w, schemes, opts, func(cfg *config, s S, c corpus.Corpus) (report.Result, error) {
		return measure(cfg, s, s, c)
	})
}

// BenchmarkCompressionOnly is Benchmark for schemes that cannot decompress.
// Records carry empty decompression fields.
func BenchmarkCompressionOnly[S scheme.CompressionScheme](w io.Writer, schemes []S, opts ...Option) error {
	return sweep(w, schemes, opts, func(cfg *config, s S, c corpus.Corpus) (report.Result, error) {
		return measure(cfg, s, nil, c)
	})
}

type measureFunc[S scheme.Describer] func(cfg *config, s S, c corpus.Corpus) (report.Result, error)

func sweep[S scheme.Describer](w io.Writer, schemes []S, opts []Option, run measureFunc[S]) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	corpora, err := cfg.load()
	if err != nil {
		return fmt.Errorf("couldn't read corpora: %w", err)
	}
	for _, c := range corpora {
		cfg.logger.Info("loaded corpus",
			slog.String("corpus", c.Name),
			slog.Int("bytes", len(c.Data)),
			slog.String("xxhash", hash.Hex(c.Digest())),
		)
	}

	for _, s := range schemes {
		for _, c := range corpora {
			cfg.logger.Info("measuring", slog.String("scheme", scheme.Describe(s)), slog.String("corpus", c.Name))

			result, err := run(cfg, s, c)
			if err != nil {
				return &SchemeError{Scheme: s.Name(), Settings: s.Settings(), Corpus: c.Name, Err: err}
			}

			if err := report.Print(w, result); err != nil {
				return fmt.Errorf("couldn't print result: %w", err)
			}
		}
	}

	return nil
}
