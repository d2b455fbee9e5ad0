// Package compress provides the scheme adapters measured by the benchmark:
// one file per codec family, each exposing its parameter grid.
//
// # Families
//
//   - uncompressed: identity baseline, ratio exactly 1
//   - zstd: klauspost/compress pure Go Zstandard, encoder levels fastest,
//     default, better and best
//   - gozstd: reference C Zstandard through valyala/gozstd, levels -50 to 22
//     (cgo builds only)
//   - s2: klauspost/compress S2, block at three strengths and the stream format
//   - snappy: golang/snappy raw block and framing format
//   - lz4: pierrec/lz4 block (fast and HC levels 1 to 9) and frame format
//   - flate: klauspost/compress DEFLATE, raw or in zlib or gzip containers,
//     Huffman-only and levels 0 to 9
//   - brotli: andybalholm/brotli, quality 0 to 11 at windows 2^20 to 2^22
//   - bzip2: dsnet/compress bzip2, levels 1 to 9
//   - lzma: ulikunitz/xz LZMA in the classic .lzma, bare LZMA2 and .xz
//     formats, dictionaries of 256 KiB to 64 MiB
//
// The zopfli family (foobaz/go-zopfli, 5 iterations, 15 block splits) only
// compresses. It is reached through CompressionOnlyFamilies and
// CompressionSchemes; Schemes rejects it with ErrCompressionOnly.
//
// # Exact-size decoding
//
// Every adapter decodes into a caller-sized buffer and must fill it exactly.
// Stream formats read through scheme.ReadExact, which probes for one byte
// past the buffer and lets the decoder validate its trailer at end of
// stream. Block formats that record the decoded length check it with
// scheme.CheckLength before decoding. Zstandard decodes in place into the
// buffer's capacity; output that does not fit forces a reallocation and is
// reported as a length mismatch.
//
// # Pooling
//
// Encoders and decoders with expensive warmup (zstd, LZ4 compressors) are
// pooled with sync.Pool, as the libraries recommend. Pools hold codec
// state only. Every Compress call returns a newly allocated slice and every
// DecompressTo writes only into the caller's buffer.
//
// # Usage
//
//	schemes, err := compress.Schemes("brotli")
//	if err != nil {
//	    return err
//	}
//	err = bench.Benchmark(os.Stdout, schemes)
package compress
