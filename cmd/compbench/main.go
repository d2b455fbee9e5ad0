// compbench measures compression schemes against the Canterbury, large
// Canterbury and Silesia corpora and writes one CSV record per
// (scheme, corpus) pair.
//
// Records go to stdout (or --output); logs go to stderr. A failing
// measurement stops the sweep and the process exits with status 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/pflag"

	"github.com/hwjsnc/compbench/bench"
	"github.com/hwjsnc/compbench/compress"
	"github.com/hwjsnc/compbench/config"
	"github.com/hwjsnc/compbench/internal/hostinfo"
	"github.com/hwjsnc/compbench/report"
	"github.com/hwjsnc/compbench/scheme"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath      string
	corporaDir      string
	output          string
	header          bool
	families        []string
	compressionOnly bool
	logLevel        string
	list            bool
}

func newFlagSet(f *flags) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("compbench", pflag.ContinueOnError)
	flagSet.StringVar(&f.configPath, "config", "", "YAML configuration file")
	flagSet.StringVar(&f.corporaDir, "corpora", "", "base directory of the corpus files (default \"corpora\")")
	flagSet.StringVarP(&f.output, "output", "o", "", "write results to this file instead of stdout")
	flagSet.BoolVar(&f.header, "header", false, "write the column header before the first record")
	flagSet.StringArrayVar(&f.families, "family", nil, "scheme family to measure, repeatable (default all)")
	flagSet.BoolVar(&f.compressionOnly, "compression-only", false, "measure compression only (default families: the compression-only ones)")
	flagSet.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.BoolVar(&f.list, "list", false, "list the available schemes and exit")
	flagSet.BoolP("help", "h", false, "show help")

	return flagSet
}

func run(args []string, stdout, stderr io.Writer) error {
	var f flags
	flagSet := newFlagSet(&f)
	flagSet.SetOutput(stderr)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, stderr)
			return nil
		}

		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet, stderr)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := loadConfig(flagSet, &f)
	if err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if f.list {
		return listSchemes(stdout, cfg.Families)
	}

	p, err := selectPlan(cfg)
	if err != nil {
		return err
	}

	logHost(logger)

	out, closeOut, err := openOutput(cfg, stdout)
	if err != nil {
		return err
	}

	err = sweep(out, cfg, p, logger)
	if closeErr := closeOut(); err == nil && closeErr != nil {
		err = fmt.Errorf("couldn't close output: %w", closeErr)
	}

	return err
}

// loadConfig reads the config file, if any, and applies the flags that were
// set explicitly on top of it.
func loadConfig(flagSet *pflag.FlagSet, f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.LoadFile(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagSet.Changed("corpora") {
		cfg.CorporaDir = f.corporaDir
	}
	if flagSet.Changed("output") {
		cfg.Output = f.output
	}
	if flagSet.Changed("header") {
		cfg.Header = f.header
	}
	if flagSet.Changed("family") {
		cfg.Families = f.families
	}
	if flagSet.Changed("compression-only") {
		cfg.CompressionOnly = f.compressionOnly
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// plan is a selected set of schemes ready to be swept.
type plan struct {
	schemes int
	run     func(w io.Writer, opts ...bench.Option) error
}

// selectPlan picks the schemes of the configured families. A round-trip
// sweep defaults to every round-trip family; a compression-only sweep
// defaults to the compression-only families and also accepts round-trip
// ones.
func selectPlan(cfg *config.Config) (plan, error) {
	if cfg.CompressionOnly {
		schemes, err := selectCompressionSchemes(cfg.Families)
		if err != nil {
			return plan{}, err
		}

		return plan{
			schemes: len(schemes),
			run: func(w io.Writer, opts ...bench.Option) error {
				return bench.BenchmarkCompressionOnly(w, schemes, opts...)
			},
		}, nil
	}

	schemes, err := selectSchemes(cfg.Families)
	if err != nil {
		return plan{}, err
	}

	return plan{
		schemes: len(schemes),
		run: func(w io.Writer, opts ...bench.Option) error {
			return bench.Benchmark(w, schemes, opts...)
		},
	}, nil
}

func selectSchemes(families []string) ([]scheme.Scheme, error) {
	if len(families) == 0 {
		return compress.All(), nil
	}

	var schemes []scheme.Scheme
	for _, family := range families {
		grid, err := compress.Schemes(family)
		if err != nil {
			if errors.Is(err, compress.ErrCompressionOnly) {
				return nil, fmt.Errorf("%w (run with --compression-only)", err)
			}

			return nil, err
		}
		schemes = append(schemes, grid...)
	}

	return schemes, nil
}

func selectCompressionSchemes(families []string) ([]scheme.CompressionScheme, error) {
	if len(families) == 0 {
		return compress.AllCompressionOnly(), nil
	}

	var schemes []scheme.CompressionScheme
	for _, family := range families {
		grid, err := compress.CompressionSchemes(family)
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, grid...)
	}

	return schemes, nil
}

// listSchemes prints one line per scheme: family, description and, for
// families that cannot decompress, a "compression only" marker.
func listSchemes(w io.Writer, families []string) error {
	if len(families) == 0 {
		families = slices.Concat(compress.Families(), compress.CompressionOnlyFamilies())
		slices.Sort(families)
	}

	for _, family := range families {
		grid, err := compress.CompressionSchemes(family)
		if err != nil {
			return err
		}
		for _, s := range grid {
			line := family + "\t" + scheme.Describe(s)
			if _, ok := s.(scheme.Decompressor); !ok {
				line += "\tcompression only"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	return nil
}

func logHost(logger *slog.Logger) {
	info, err := hostinfo.Collect()
	if err != nil {
		logger.Warn("incomplete host info", slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), slog.LevelInfo, "host", info.LogAttrs()...)
}

func openOutput(cfg *config.Config, stdout io.Writer) (io.Writer, func() error, error) {
	if cfg.UseStdout() {
		return stdout, func() error { return nil }, nil
	}

	file, err := os.Create(cfg.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't create output file: %w", err)
	}

	return file, file.Close, nil
}

func sweep(out io.Writer, cfg *config.Config, p plan, logger *slog.Logger) error {
	if cfg.Header {
		if err := report.WriteHeader(out); err != nil {
			return fmt.Errorf("couldn't print header: %w", err)
		}
	}

	opts := []bench.Option{
		bench.WithCorpusDir(cfg.CorporaDir),
		bench.WithLogger(logger),
	}

	logger.Info("starting sweep",
		slog.Int("schemes", p.schemes),
		slog.Bool("compression_only", cfg.CompressionOnly),
		slog.String("corpora", cfg.CorporaDir),
	)

	return p.run(out, opts...)
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `compbench measures compression schemes against the reference corpora.

Each (scheme, corpus) pair is sampled %d times. Results are CSV records:
scheme, settings, corpus, compression speed, compression speed std,
decompression speed, decompression speed std, compression ratio
(speeds in MB/s).

Usage:
  compbench [flags]

Examples:
  # Every scheme, corpora under ./corpora
  compbench --header > results.csv

  # Only zstd and brotli, with debug logging of every sample
  compbench --family zstd --family brotli --log-level debug

  # zopfli, which only compresses
  compbench --compression-only

  # Compression speed of the bzip2 grid, skipping decompression
  compbench --compression-only --family bzip2

  # Show the parameter grid of each family
  compbench --list

Flags:
`, bench.Samples)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
