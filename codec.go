package fastlzlib

import (
	"github.com/xroche/fastlzlib/internal/fastlz"
	"github.com/xroche/fastlzlib/internal/lz4x"
)

// Compressor is the back-end trait the core treats as an external
// collaborator: a pure function oracle over one contiguous buffer. Both
// back-ends below implement it; SetCompressor swaps the implementation.
type Compressor interface {
	// CompressLevel compresses src at the given level, returning output no
	// larger than len(src) + len(src)/10 + 66 bytes.
	CompressLevel(level int, src []byte) ([]byte, error)
	// Decompress decompresses src into a buffer no larger than dstCap bytes.
	Decompress(src []byte, dstCap int) ([]byte, error)
	// Name identifies the back-end, used for diagnostics.
	Name() string
}

// BackEnd selects which Compressor implementation a Stream uses.
type BackEnd int

const (
	// BackEndFastLZ is the default back-end.
	BackEndFastLZ BackEnd = iota
	// BackEndLZ4 trades the FastLZ hash-chain matcher for the LZ4X
	// skip-strength matcher, SIMD-tier scaled.
	BackEndLZ4
)

func newCompressor(b BackEnd) Compressor {
	switch b {
	case BackEndLZ4:
		return lz4x.Codec{}
	default:
		return fastlz.Codec{}
	}
}

// SetCompressor swaps the active back-end. Valid any time after Init but
// before the first Process call on the stream.
func (s *Stream) SetCompressor(b BackEnd) error {
	if s.st == nil {
		return newError(StreamError, "stream not initialized")
	}
	if s.st.processed {
		return newError(StreamError, "set_compressor called after first process")
	}
	s.st.compressor = newCompressor(b)
	return nil
}
