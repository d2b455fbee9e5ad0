package bench

import (
	"errors"
	"io"
	"log/slog"

	"github.com/hwjsnc/compbench/corpus"
	"github.com/hwjsnc/compbench/internal/clock"
	"github.com/hwjsnc/compbench/internal/options"
)

// DefaultCorpusDir is where corpora are read from when no directory, loader
// or preloaded corpora are configured.
const DefaultCorpusDir = "corpora"

// Loader produces the corpora a sweep measures against.
type Loader func() ([]corpus.Corpus, error)

type config struct {
	corpusDir string
	loader    Loader
	clock     clock.Clock
	logger    *slog.Logger
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		corpusDir: DefaultCorpusDir,
		clock:     clock.Real(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) load() ([]corpus.Corpus, error) {
	if c.loader != nil {
		return c.loader()
	}

	return corpus.ReadCorpora(c.corpusDir)
}

// Option configures a measurement or a sweep.
type Option = options.Option[*config]

// WithCorpusDir reads the standard corpora from dir.
func WithCorpusDir(dir string) Option {
	return options.New(func(c *config) error {
		if dir == "" {
			return errors.New("corpus directory must not be empty")
		}
		c.corpusDir = dir
		c.loader = nil

		return nil
	})
}

// WithCorpora measures against already loaded corpora instead of reading
// them from disk. The slice is used as given, in order.
func WithCorpora(corpora []corpus.Corpus) Option {
	return options.NoError(func(c *config) {
		c.loader = func() ([]corpus.Corpus, error) { return corpora, nil }
	})
}

// WithLoader replaces corpus loading entirely.
func WithLoader(loader Loader) Option {
	return options.New(func(c *config) error {
		if loader == nil {
			return errors.New("corpus loader must not be nil")
		}
		c.loader = loader

		return nil
	})
}

// WithClock sets the time source used for sampling.
func WithClock(clk clock.Clock) Option {
	return options.New(func(c *config) error {
		if clk == nil {
			return errors.New("clock must not be nil")
		}
		c.clock = clk

		return nil
	})
}

// WithLogger sets the logger for progress and per-sample debug output.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}
