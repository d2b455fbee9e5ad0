package compress

import (
	"fmt"
	"testing"

	"github.com/hwjsnc/compbench/scheme"
)

// generateBenchmarkData creates test data for benchmarks
func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// All zeros - maximum compression
	case "compressible":
		pattern := []byte("It was the best of times, it was the worst of times, it was the age of wisdom")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	case "semi_compressible":
		for i := range data {
			if i%100 < 50 {
				data[i] = byte(i % 256)
			} else {
				data[i] = byte((i*7 + i*i) % 256)
			}
		}
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

var benchSizes = []int{16 * 1024, 256 * 1024, 1024 * 1024}

var benchCompressibility = []string{"highly_compressible", "compressible", "semi_compressible", "incompressible"}

func benchmarkCompress(b *testing.B, s scheme.Scheme) {
	for _, kind := range benchCompressibility {
		for _, size := range benchSizes {
			data := generateBenchmarkData(size, kind)

			b.Run(fmt.Sprintf("%s/%dKB", kind, size/1024), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ReportAllocs()

				var compressedLen int
				for b.Loop() {
					compressed, err := s.Compress(data)
					if err != nil {
						b.Fatal(err)
					}
					compressedLen = len(compressed)
				}
				b.ReportMetric(float64(size)/float64(compressedLen), "ratio")
			})
		}
	}
}

func benchmarkDecompress(b *testing.B, s scheme.Scheme) {
	for _, kind := range benchCompressibility {
		for _, size := range benchSizes {
			data := generateBenchmarkData(size, kind)
			compressed, err := s.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/%dKB", kind, size/1024), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ReportAllocs()

				for b.Loop() {
					dst := make([]byte, size)
					if err := s.DecompressTo(compressed, dst); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkSchemes_Compress(b *testing.B) {
	for name, sc := range getAllSchemes() {
		b.Run(name, func(b *testing.B) {
			benchmarkCompress(b, sc.scheme)
		})
	}
}

func BenchmarkSchemes_DecompressTo(b *testing.B) {
	for name, sc := range getAllSchemes() {
		b.Run(name, func(b *testing.B) {
			benchmarkDecompress(b, sc.scheme)
		})
	}
}

func BenchmarkUncompressed_DecompressTo(b *testing.B) {
	s := NewUncompressed()
	data := generateBenchmarkData(64*1024, "compressible")
	dst := make([]byte, len(data))

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if err := s.DecompressTo(data, dst); err != nil {
			b.Fatal(err)
		}
	}
}
