// Package lz4x adapts the LZ4X-style block codec: a skip-strength hash-chain
// match finder (matcher.go), scaled by both compression level and the CPU's
// detected SIMD tier (simd/), feeding the same LZ4-shaped token stream the
// fastlz backend produces. Decoding is shared via internal/lzblock.
package lz4x

import (
	"fmt"

	"github.com/xroche/fastlzlib/internal/lzblock"
)

// CompressLevel compresses src at the given level (1..12, clamped) and
// returns the encoded block.
func CompressLevel(level int, src []byte) ([]byte, error) {
	if level < 1 {
		level = 1
	}
	if level > 12 {
		level = 12
	}
	if len(src) == 0 {
		return nil, nil
	}

	m := newMatcher(level)
	m.reset(src)

	dst := make([]byte, 0, lzblock.WorstCaseSize(len(src)))
	anchor := 0
	pos := 0

	for pos < len(src) {
		offset, length := 0, 0
		if !m.done() {
			m.pos = pos
			offset, length = m.findBestMatch()
		}

		if length < minMatch {
			pos++
			continue
		}

		dst = appendToken(dst, pos-anchor, length-minMatch, offset, src[anchor:pos])
		pos += length
		anchor = pos
		m.pos = pos
	}

	if anchor < len(src) {
		dst = appendLiteralTail(dst, src[anchor:])
	}

	return dst, nil
}

// Decompress decompresses src into a buffer no larger than dstCap bytes.
func Decompress(src []byte, dstCap int) ([]byte, error) {
	out, err := lzblock.Decompress(src, nil, dstCap)
	if err != nil {
		return nil, fmt.Errorf("lz4x: %w", err)
	}
	return out, nil
}

func appendToken(dst []byte, literalLen, matchLenMinus4, offset int, literals []byte) []byte {
	litNibble := literalLen
	if litNibble > 15 {
		litNibble = 15
	}
	matchNibble := matchLenMinus4
	if matchNibble > 15 {
		matchNibble = 15
	}

	token := byte(litNibble<<4) | byte(matchNibble)
	dst = append(dst, token)
	dst = appendExtLen(dst, literalLen)
	dst = append(dst, literals...)
	dst = append(dst, byte(offset), byte(offset>>8))
	dst = appendExtLen(dst, matchLenMinus4)
	return dst
}

func appendLiteralTail(dst []byte, literals []byte) []byte {
	litNibble := len(literals)
	if litNibble > 15 {
		litNibble = 15
	}
	dst = append(dst, byte(litNibble<<4))
	dst = appendExtLen(dst, len(literals))
	return append(dst, literals...)
}

func appendExtLen(dst []byte, n int) []byte {
	if n < 15 {
		return dst
	}
	n -= 15
	for n >= 255 {
		dst = append(dst, 255)
		n -= 255
	}
	return append(dst, byte(n))
}
