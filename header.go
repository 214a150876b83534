package fastlzlib

import "encoding/binary"

// HeaderSize is the fixed on-wire size of one block header.
const HeaderSize = 20

// Magic is the 6-byte ASCII tag every header starts with.
const Magic = "FastLZ"

// Version is the single format/version byte following Magic.
const Version = 0x01

// Block types. Raw payloads are copied verbatim; Compressed payloads are
// back-end output.
const (
	BlockTypeRaw        = 0xc0
	BlockTypeCompressed = 0x0c
)

// MinBlockSize is the raw/compressed cutoff: inputs at or below this size
// are never handed to the back-end.
const MinBlockSize = 64

// BufferBlockSize returns the scratch buffer capacity for a given
// configured block size, large enough to hold one worst-case compressed
// block plus slack for two headers.
func BufferBlockSize(blockSize int) int {
	return blockSize + blockSize/10 + 2*HeaderSize
}

type header struct {
	blockType        byte
	compressedLength uint32
	originalLength   uint32
	blockSize        uint32
}

// isEOF reports whether h is the end-of-stream sentinel: both lengths zero.
func (h header) isEOF() bool {
	return h.compressedLength == 0 && h.originalLength == 0
}

// encodeHeader writes h's 20-byte wire representation into dst[:HeaderSize].
func encodeHeader(h header, dst []byte) {
	copy(dst[0:6], Magic)
	dst[6] = Version
	dst[7] = h.blockType
	binary.LittleEndian.PutUint32(dst[8:12], h.compressedLength)
	binary.LittleEndian.PutUint32(dst[12:16], h.originalLength)
	binary.LittleEndian.PutUint32(dst[16:20], h.blockSize)
}

// decodeHeader parses a 20-byte header from src. It returns DataError on bad
// magic/version and VersionError on a structurally valid but impossible
// block type.
func decodeHeader(src []byte) (header, *Error) {
	if len(src) < HeaderSize {
		return header{}, newError(StreamError, "header buffer too small")
	}
	if string(src[0:6]) != Magic || src[6] != Version {
		return header{}, newError(DataError, "bad magic")
	}
	h := header{
		blockType:        src[7],
		compressedLength: binary.LittleEndian.Uint32(src[8:12]),
		originalLength:   binary.LittleEndian.Uint32(src[12:16]),
		blockSize:        binary.LittleEndian.Uint32(src[16:20]),
	}
	if h.blockType != BlockTypeRaw && h.blockType != BlockTypeCompressed {
		return header{}, newError(VersionError, "invalid block type")
	}
	return h, nil
}

// GetHeaderSize returns the fixed header size, 20 bytes.
func GetHeaderSize() int { return HeaderSize }

// GetStreamBlockSize parses a header at offset 0 of b and returns its
// advisory block size, or 0 if the magic does not match.
func GetStreamBlockSize(b []byte) uint32 {
	h, err := decodeHeader(b)
	if err != nil {
		return 0
	}
	return h.blockSize
}

// GetStreamInfo parses a header at offset 0 of b and returns the on-wire
// compressed and original lengths it advertises.
func GetStreamInfo(b []byte) (compressedLength, originalLength uint32, err error) {
	h, e := decodeHeader(b)
	if e != nil {
		return 0, 0, e
	}
	return h.compressedLength, h.originalLength, nil
}

// IsCompressedStream reports whether b begins with a valid frame header.
func IsCompressedStream(b []byte) bool {
	_, err := decodeHeader(b)
	return err == nil
}
