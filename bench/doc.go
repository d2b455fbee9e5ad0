// Package bench measures compression schemes against the reference corpora
// and streams one result record per (scheme, corpus) pair.
//
// A sweep is strictly sequential: every compression and decompression call,
// every clock reading and every record write happens on the calling
// goroutine, in scheme-major, corpus-minor order. Each pair is sampled
// Samples times; compressed size must not change between samples and every
// decompression must reproduce the corpus exactly. The first failure aborts
// the sweep.
//
// Basic usage:
//
//	schemes, _ := compress.Schemes("zstd")
//	err := bench.Benchmark(os.Stdout, schemes, bench.WithCorpusDir("corpora"))
package bench
