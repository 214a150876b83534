package fastlzlib

// DecompressSync scans NextIn byte by byte for the next plausible frame
// header (magic match plus a non-zero advisory block size) and positions
// NextIn at that header, discarding everything before it. It is the sole
// recovery vehicle after DataError.
func (s *Stream) DecompressSync() (Status, error) {
	if s.st == nil {
		return StreamError, newError(StreamError, "stream not initialized")
	}
	st := s.st

	if st.outScratchOffs < int(st.decSize) {
		return Ok, nil
	}
	st.hdrOffs = 0

	// avail_in < HeaderSize is only a BufError before scanning starts: once
	// the byte-at-a-time search below is underway, running out of input
	// means no flush point exists in what was given, not that more might
	// still be on the way.
	if s.AvailIn() < HeaderSize {
		if s.AvailIn() == 0 {
			s.Msg = "no flush point found"
			return DataError, newError(DataError, s.Msg)
		}
		s.Msg = "need more data on input"
		return BufError, newError(BufError, s.Msg)
	}

	for {
		if s.AvailIn() == 0 {
			s.Msg = "no flush point found"
			return DataError, newError(DataError, s.Msg)
		}
		if h, derr := decodeHeader(s.NextIn); derr == nil && h.blockSize != 0 {
			return Ok, nil
		}
		s.NextIn = s.NextIn[1:]
		s.TotalIn++
	}
}
