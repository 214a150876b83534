// Package fastlz adapts the FastLZ-style block codec: a hash-chain match
// finder (see matcher.go) feeding an LZ4-shaped token stream (4-bit length
// nibbles, 255-escape extension, 2-byte little-endian offsets). Decoding is
// delegated to internal/lzblock, which both backend packages share.
package fastlz

import (
	"fmt"

	"github.com/xroche/fastlzlib/internal/lzblock"
)

// CompressLevel compresses src at the given level (1..12, clamped) and
// returns the encoded block. The returned slice is owned by the caller.
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

		literalLen := pos - anchor
		dst = appendToken(dst, literalLen, length-minMatch, offset, src[anchor:pos])
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
		return nil, fmt.Errorf("fastlz: %w", err)
	}
	return out, nil
}

// appendToken writes one literal-run + match token: [token][lit-ext...][literals][offset lo,hi][match-ext...].
func appendToken(dst []byte, literalLen, matchLenMinus4, offset int, literals []byte) []byte {
	var litNibble, tokenMatch int
	litNibble = literalLen
	if litNibble > 15 {
		litNibble = 15
	}
	tokenMatch = matchLenMinus4
	if tokenMatch > 15 {
		tokenMatch = 15
	}

	token := byte(litNibble<<4) | byte(tokenMatch)
	dst = append(dst, token)
	dst = appendExtLen(dst, literalLen)
	dst = append(dst, literals...)
	dst = append(dst, byte(offset), byte(offset>>8))
	dst = appendExtLen(dst, matchLenMinus4)
	return dst
}

// appendLiteralTail appends a final literal-only token (no match follows).
func appendLiteralTail(dst []byte, literals []byte) []byte {
	litNibble := len(literals)
	if litNibble > 15 {
		litNibble = 15
	}
	token := byte(litNibble << 4)
	dst = append(dst, token)
	dst = appendExtLen(dst, len(literals))
	dst = append(dst, literals...)
	return dst
}

// appendExtLen appends the 255-escape length extension bytes for n when n>=15.
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
