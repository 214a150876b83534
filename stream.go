// Package fastlzlib implements a streaming, block-framed compressor and
// decompressor with a zlib-style pull/push Process API: the caller presents
// an input buffer and an output buffer and calls Process (or the
// Compress/Decompress wrappers) with a flush directive, and the engine
// advances as far as it can, buffering internally what does not fit.
package fastlzlib

// Role distinguishes a Stream opened for compression from one opened for
// decompression. A Stream is permanently bound to one role at Init time.
type Role int

const (
	RoleCompress Role = iota
	RoleDecompress
)

// Compression levels. Values outside [LevelFast, LevelBest] clamp to
// LevelBest, matching the "values outside clamp to best-compression"
// contract: unlike zlib there is no implicit default level.
const (
	LevelFast = 1
	LevelBest = 12
)

// destKind is deliverOutput's report of which of the two post-codec
// destinations a frame was written to: destCaller when it fit directly in
// NextOut, destScratch when it had to be buffered in outScratch (partially
// or wholly) for a later drainOutScratch call to finish delivering.
type destKind int

const (
	destCaller destKind = iota
	destScratch
)

// state is the private, unexported half of a Stream: the public struct
// carries only caller-facing cursors, so bookkeeping fields are never
// intermixed with them on one record.
type state struct {
	role       Role
	level      int
	compressor Compressor

	blockSize       int
	bufferBlockSize int

	inScratch  []byte
	outScratch []byte

	hdrAccum [HeaderSize]byte
	hdrOffs  int

	blockType      byte
	strSize        uint32
	decSize        uint32
	inScratchOffs  int
	outScratchOffs int

	advisoryBlockSize uint32

	eofSeen    bool
	eofPending bool
	processed  bool

	// headerPending is cleared by Reset; no Process path sets or reads it.
	headerPending bool
}

// Stream is the caller-owned handle. Public cursors are mutated directly by
// the caller between Process calls; AvailIn/AvailOut are derived from slice
// length rather than tracked separately, which is the idiomatic Go
// equivalent of zlib's explicit avail_in/avail_out counters.
type Stream struct {
	NextIn   []byte
	TotalIn  int64
	NextOut  []byte
	TotalOut int64
	Msg      string

	// Alloc/Free/Opaque are optional allocator hooks. When nil, scratch
	// buffers are obtained via make([]byte, n) and released to the GC.
	Alloc  func(opaque interface{}, n int) []byte
	Free   func(opaque interface{}, b []byte)
	Opaque interface{}

	st *state
}

// AvailIn reports the number of unread bytes remaining in NextIn.
func (s *Stream) AvailIn() int { return len(s.NextIn) }

// AvailOut reports the number of unwritten bytes remaining in NextOut.
func (s *Stream) AvailOut() int { return len(s.NextOut) }

func (s *Stream) alloc(n int) []byte {
	if s.Alloc != nil {
		return s.Alloc(s.Opaque, n)
	}
	return make([]byte, n)
}

func (s *Stream) free(b []byte) {
	if s.Free != nil {
		s.Free(s.Opaque, b)
	}
}

// CompressInit prepares s for compression at the given level and block
// size. Levels outside [LevelFast, LevelBest] clamp to LevelBest.
func (s *Stream) CompressInit(level int, blockSize int) error {
	if level < LevelFast || level > LevelBest {
		level = LevelBest
	}
	if blockSize <= 0 {
		return newError(StreamError, "invalid block size")
	}
	s.initState(RoleCompress, level, blockSize)
	return nil
}

// DecompressInit prepares s for decompression with the given block size.
// The caller's blockSize is honored directly; it sizes the scratch buffers
// and bounds the advisory block_size the engine will accept from a header.
func (s *Stream) DecompressInit(blockSize int) error {
	if blockSize <= 0 {
		return newError(StreamError, "invalid block size")
	}
	s.initState(RoleDecompress, 0, blockSize)
	return nil
}

func (s *Stream) initState(role Role, level int, blockSize int) {
	bufSize := BufferBlockSize(blockSize)
	s.st = &state{
		role:            role,
		level:           level,
		compressor:      newCompressor(BackEndFastLZ),
		blockSize:       blockSize,
		bufferBlockSize: bufSize,
		inScratch:       s.alloc(bufSize),
		outScratch:      s.alloc(bufSize),
	}
	s.TotalIn = 0
	s.TotalOut = 0
	s.Msg = ""
}

// Reset returns s to "no block in progress"; scratch buffers are retained.
func (s *Stream) Reset() error {
	if s.st == nil {
		return newError(StreamError, "stream not initialized")
	}
	s.st.hdrOffs = 0
	s.st.blockType = 0
	s.st.strSize = 0
	s.st.decSize = 0
	s.st.inScratchOffs = 0
	s.st.outScratchOffs = 0
	s.st.advisoryBlockSize = 0
	s.st.eofSeen = false
	s.st.eofPending = false
	s.st.processed = false
	s.st.headerPending = false
	s.TotalIn = 0
	s.TotalOut = 0
	s.Msg = ""
	return nil
}

// End releases s's owned scratch buffers via the allocator hook.
func (s *Stream) End() error {
	if s.st == nil {
		return newError(StreamError, "stream not initialized")
	}
	s.free(s.st.inScratch)
	s.free(s.st.outScratch)
	s.st = nil
	return nil
}

// GetBlockSize returns the configured target uncompressed block length.
func (s *Stream) GetBlockSize() int {
	if s.st == nil {
		return 0
	}
	return s.st.blockSize
}

// CompressMemory reports the scratch-buffer footprint of a compress stream
// configured with the given block size, without requiring an initialized
// Stream.
func CompressMemory(blockSize int) int {
	return 2 * BufferBlockSize(blockSize)
}

// DecompressMemory reports the scratch-buffer footprint of a decompress
// stream configured with the given block size.
func DecompressMemory(blockSize int) int {
	return 2 * BufferBlockSize(blockSize)
}
