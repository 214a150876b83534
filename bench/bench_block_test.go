package bench

import (
	"crypto/rand"
	"testing"

	"github.com/xroche/fastlzlib/internal/fastlz"
	"github.com/xroche/fastlzlib/internal/lz4x"
)

const (
	smallSize  = 1 << 10
	mediumSize = 1 << 16
	largeSize  = 1 << 20
)

var (
	result      []byte
	compressErr error
	benchSizes  = []int{smallSize, mediumSize, largeSize}
	benchLevels = []int{1, 6, 12}
)

// generateData returns data with controlled redundancy: compressibility=0
// is random/incompressible, compressibility=1 is all zeros.
func generateData(size int, compressibility float64) []byte {
	data := make([]byte, size)
	if compressibility <= 0 {
		rand.Read(data)
		return data
	}
	if compressibility >= 1 {
		return data
	}
	patternSize := int(float64(size) * (1 - compressibility))
	if patternSize < 4 {
		patternSize = 4
	}
	pattern := make([]byte, patternSize)
	rand.Read(pattern)
	for i := 0; i < size; i += len(pattern) {
		n := copy(data[i:], pattern)
		_ = n
	}
	return data
}

func BenchmarkFastLZCompress(b *testing.B) {
	for _, size := range benchSizes {
		data := generateData(size, 0.7)
		for _, level := range benchLevels {
			b.Run(benchName(size, level), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					result, compressErr = fastlz.CompressLevel(level, data)
				}
				if compressErr != nil {
					b.Fatalf("CompressLevel: %v", compressErr)
				}
			})
		}
	}
}

func BenchmarkLZ4XCompress(b *testing.B) {
	for _, size := range benchSizes {
		data := generateData(size, 0.7)
		for _, level := range benchLevels {
			b.Run(benchName(size, level), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					result, compressErr = lz4x.CompressLevel(level, data)
				}
				if compressErr != nil {
					b.Fatalf("CompressLevel: %v", compressErr)
				}
			})
		}
	}
}

func BenchmarkFastLZDecompress(b *testing.B) {
	data := generateData(mediumSize, 0.7)
	compressed, err := fastlz.CompressLevel(9, data)
	if err != nil {
		b.Fatalf("CompressLevel: %v", err)
	}
	b.SetBytes(int64(mediumSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, compressErr = fastlz.Decompress(compressed, mediumSize)
	}
	if compressErr != nil {
		b.Fatalf("Decompress: %v", compressErr)
	}
}

func benchName(size, level int) string {
	name := "size"
	switch size {
	case smallSize:
		name = "1KB"
	case mediumSize:
		name = "64KB"
	case largeSize:
		name = "1MB"
	}
	return name + "/level" + itoa(level)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
