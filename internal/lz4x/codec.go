package lz4x

// Codec adapts the package-level CompressLevel/Decompress functions to the
// fastlzlib.Compressor interface.
type Codec struct{}

// CompressLevel implements fastlzlib.Compressor.
func (Codec) CompressLevel(level int, src []byte) ([]byte, error) {
	return CompressLevel(level, src)
}

// Decompress implements fastlzlib.Compressor.
func (Codec) Decompress(src []byte, dstCap int) ([]byte, error) {
	return Decompress(src, dstCap)
}

// Name implements fastlzlib.Compressor.
func (Codec) Name() string { return "lz4" }
