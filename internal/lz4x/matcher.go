package lz4x

import "github.com/xroche/fastlzlib/internal/lz4x/simd"

const minMatch = 4

// config controls the matcher's search depth and table size.
type config struct {
	hashLog      uint
	windowSize   int
	maxAttempts  int
	skipStrength int
}

// levelConfig derives a base config from the requested compression level,
// then widens it according to the CPU's detected SIMD tier: wider tiers
// afford a deeper chain walk for the same wall-clock budget.
func levelConfig(level int) config {
	c := config{hashLog: 16, windowSize: 65535, maxAttempts: 16, skipStrength: 3}

	switch {
	case level <= 3:
		c.maxAttempts = 4
		c.skipStrength = 6
	case level <= 6:
		c.maxAttempts = 8
		c.skipStrength = 4
	case level <= 9:
		c.maxAttempts = 16
		c.skipStrength = 2
	default:
		c.maxAttempts = 32
		c.skipStrength = 1
		c.hashLog = 17
	}

	switch simd.BestTier() {
	case simd.TierWidest:
		c.maxAttempts *= 2
	case simd.TierWide:
		c.maxAttempts += c.maxAttempts / 2
	}

	return c
}

// matcher is a hash-chain match finder with skip-strength chain walking,
// adapted from the LZ4X matcher: chain positions are visited selectively
// rather than exhaustively, trading some ratio for speed at low levels.
type matcher struct {
	buf        []byte
	hashTable  []int
	chainTable []int
	pos        int
	end        int

	windowSize   int
	hashLog      uint
	hashMask     int
	maxAttempts  int
	skipStrength int
}

func newMatcher(level int) *matcher {
	c := levelConfig(level)
	size := 1 << c.hashLog
	return &matcher{
		hashTable:    make([]int, size),
		windowSize:   c.windowSize,
		hashLog:      c.hashLog,
		hashMask:     size - 1,
		maxAttempts:  c.maxAttempts,
		skipStrength: c.skipStrength,
	}
}

func (m *matcher) reset(input []byte) {
	m.buf = input
	m.end = len(input)
	m.pos = 0
	if cap(m.chainTable) < len(input) {
		m.chainTable = make([]int, len(input))
	} else {
		m.chainTable = m.chainTable[:len(input)]
	}
	for i := range m.hashTable {
		m.hashTable[i] = 0
	}
}

func (m *matcher) hash4(pos int) int {
	if pos+4 > m.end {
		return 0
	}
	v := uint32(m.buf[pos]) | uint32(m.buf[pos+1])<<8 | uint32(m.buf[pos+2])<<16 | uint32(m.buf[pos+3])<<24
	return int(((v * 2654435761) >> (32 - m.hashLog)) & uint32(m.hashMask))
}

func (m *matcher) insertHash(pos int) {
	h := m.hash4(pos)
	if h != 0 {
		m.chainTable[pos] = m.hashTable[h]
		m.hashTable[h] = pos
	}
}

// findBestMatch returns the best back-reference at the current position, or
// (0, 0) if nothing clears minMatch.
func (m *matcher) findBestMatch() (offset, length int) {
	if m.pos+minMatch > m.end {
		m.insertHash(m.pos)
		return 0, 0
	}

	h := m.hash4(m.pos)
	current := m.hashTable[h]
	if current <= 0 || current <= m.pos-m.windowSize || current >= m.pos {
		m.insertHash(m.pos)
		return 0, 0
	}

	bestLen, bestOff := 0, 0
	limit := m.pos - m.windowSize
	attempts := m.maxAttempts

	for current > limit && attempts > 0 && current < m.pos {
		attempts--

		if m.skipStrength > 1 && attempts%m.skipStrength != 0 && current != 0 {
			current = m.chainTable[current]
			continue
		}

		off := m.pos - current
		if off <= 0 || off > 65535 {
			current = m.chainTable[current]
			continue
		}

		length := 0
		maxLen := m.end - m.pos
		if maxLen > 255+minMatch {
			maxLen = 255 + minMatch
		}
		for length < maxLen && current+length < m.end && m.buf[m.pos+length] == m.buf[current+length] {
			length++
		}

		if length >= minMatch && length > bestLen {
			bestLen = length
			bestOff = off
			if length >= 64 {
				break
			}
		}

		current = m.chainTable[current]
	}

	m.insertHash(m.pos)
	if bestLen >= minMatch {
		return bestOff, bestLen
	}
	return 0, 0
}

func (m *matcher) done() bool { return m.pos >= m.end-minMatch }
