package fastlz

// Codec adapts the package-level CompressLevel/Decompress functions to the
// fastlzlib.Compressor interface (see codec.go in the root package).
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
func (Codec) Name() string { return "fastlz" }
