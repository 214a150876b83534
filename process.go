package fastlzlib

// Flush is the directive passed to Process/Compress, controlling how the
// engine treats a not-yet-full block at the point of the call.
type Flush int

const (
	// FlushNone consumes only complete input blocks.
	FlushNone Flush = iota
	// FlushSync flushes any partially accumulated block as a short block.
	// No EOF sentinel is written.
	FlushSync
	// FlushFinish appends the EOF sentinel once all pending input has been
	// compressed into blocks.
	FlushFinish
)

// Process drives one step of the state machine. It is the single operation
// both Compress/Decompress and their *Strict variants wrap.
func (s *Stream) Process(flush Flush, mayBuffer bool) (Status, error) {
	if s.st == nil {
		return StreamError, newError(StreamError, "stream not initialized")
	}
	s.st.processed = true
	if s.NextIn == nil && s.AvailIn() != 0 {
		return StreamError, newError(StreamError, "next_in is nil with avail_in != 0")
	}
	if s.NextOut == nil && s.AvailOut() != 0 {
		return StreamError, newError(StreamError, "next_out is nil with avail_out != 0")
	}

	if s.st.role == RoleCompress {
		return s.processCompress(flush, mayBuffer)
	}
	return s.processDecompress(mayBuffer)
}

// Compress is process(flush, may_buffer=true).
func (s *Stream) Compress(flush Flush) (Status, error) { return s.Process(flush, true) }

// Decompress is process(FlushNone, may_buffer=true).
func (s *Stream) Decompress() (Status, error) { return s.Process(FlushNone, true) }

// CompressStrict exposes explicit control over may_buffer.
func (s *Stream) CompressStrict(flush Flush, mayBuffer bool) (Status, error) {
	return s.Process(flush, mayBuffer)
}

// DecompressStrict exposes explicit control over may_buffer.
func (s *Stream) DecompressStrict(mayBuffer bool) (Status, error) {
	return s.Process(FlushNone, mayBuffer)
}

// deliverOutput is the shared step 6 destination dispatch: out is written
// directly into the caller's NextOut when it fits whole (destCaller),
// otherwise it is buffered into outScratch and whatever currently fits is
// copied out of it (destScratch), leaving the remainder for drainOutScratch.
func (s *Stream) deliverOutput(out []byte) destKind {
	st := s.st
	if s.AvailOut() >= len(out) {
		copy(s.NextOut[:len(out)], out)
		s.NextOut = s.NextOut[len(out):]
		s.TotalOut += int64(len(out))
		st.outScratchOffs = 0
		st.decSize = 0
		return destCaller
	}

	if cap(st.outScratch) < len(out) {
		st.outScratch = make([]byte, len(out))
	}
	copy(st.outScratch, out)
	st.decSize = uint32(len(out))
	st.outScratchOffs = 0
	avail := s.AvailOut()
	if avail > 0 {
		copy(s.NextOut[:avail], st.outScratch[:avail])
		s.NextOut = s.NextOut[avail:]
		st.outScratchOffs = avail
		s.TotalOut += int64(avail)
	}
	return destScratch
}

// drainOutScratch is step 1, shared by both roles: deliver any undelivered
// bytes sitting in outScratch before any new block is parsed or produced.
func (s *Stream) drainOutScratch() (Status, error) {
	st := s.st
	pending := int(st.decSize) - st.outScratchOffs
	n := pending
	if n > s.AvailOut() {
		n = s.AvailOut()
	}
	if n == 0 {
		s.Msg = "need more room on output"
		return BufError, newError(BufError, s.Msg)
	}
	copy(s.NextOut[:n], st.outScratch[st.outScratchOffs:st.outScratchOffs+n])
	s.NextOut = s.NextOut[n:]
	st.outScratchOffs += n
	s.TotalOut += int64(n)
	if st.outScratchOffs >= int(st.decSize) {
		if st.eofPending {
			st.eofPending = false
			st.eofSeen = true
			return StreamEnd, nil
		}
	}
	return Ok, nil
}

// --- Decompress side ---

func (s *Stream) processDecompress(mayBuffer bool) (Status, error) {
	st := s.st
	if st.eofSeen {
		return StreamEnd, nil
	}
	if st.strSize == 0 && st.outScratchOffs < int(st.decSize) {
		return s.drainOutScratch()
	}

	if st.strSize == 0 {
		status, err := s.acquireDecompressHeader(mayBuffer)
		if err != nil || status != Ok {
			return status, err
		}
		if st.strSize == 0 {
			// Header not yet complete (buffered straddle); the EOF
			// sentinel already returned StreamEnd above.
			return Ok, nil
		}
	}

	return s.decodeBlock(mayBuffer)
}

// acquireDecompressHeader is step 2 (decompress) plus step 3 (validate) and
// step 4 (EOF detection).
func (s *Stream) acquireDecompressHeader(mayBuffer bool) (Status, error) {
	st := s.st

	if st.hdrOffs > 0 || s.AvailIn() < HeaderSize {
		if st.hdrOffs == 0 && !mayBuffer {
			s.Msg = "need more data on input"
			return BufError, newError(BufError, s.Msg)
		}
		n := HeaderSize - st.hdrOffs
		if n > s.AvailIn() {
			n = s.AvailIn()
		}
		if n > 0 {
			copy(st.hdrAccum[st.hdrOffs:], s.NextIn[:n])
			s.NextIn = s.NextIn[n:]
			st.hdrOffs += n
			s.TotalIn += int64(n)
		}
		if st.hdrOffs < HeaderSize {
			return Ok, nil
		}
		h, derr := decodeHeader(st.hdrAccum[:])
		st.hdrOffs = 0
		if derr != nil {
			s.Msg = derr.Msg
			return derr.Status, derr
		}
		return s.commitHeader(h, mayBuffer)
	}

	h, derr := decodeHeader(s.NextIn)
	if derr != nil {
		s.Msg = derr.Msg
		return derr.Status, derr
	}
	s.NextIn = s.NextIn[HeaderSize:]
	s.TotalIn += HeaderSize
	return s.commitHeader(h, mayBuffer)
}

func (s *Stream) commitHeader(h header, mayBuffer bool) (Status, error) {
	st := s.st

	if int(h.originalLength) > st.bufferBlockSize || int(h.compressedLength) > st.bufferBlockSize {
		s.Msg = "block too large"
		return VersionError, newError(VersionError, s.Msg)
	}
	if h.blockSize != 0 && int(h.blockSize) > st.blockSize {
		s.Msg = "block size too large"
		return VersionError, newError(VersionError, s.Msg)
	}

	st.blockType = h.blockType
	st.strSize = h.compressedLength
	st.decSize = h.originalLength
	st.advisoryBlockSize = h.blockSize
	st.inScratchOffs = 0
	st.outScratchOffs = 0

	if h.isEOF() {
		st.eofSeen = true
		return StreamEnd, nil
	}

	if !mayBuffer && (s.AvailIn() < int(st.strSize) || s.AvailOut() < int(st.decSize)) {
		s.Msg = "need more data on input or room on output"
		return BufError, newError(BufError, s.Msg)
	}
	return Ok, nil
}

// decodeBlock is step 5 (payload acquisition), step 6 (dispatch) and step 7
// (block clear).
func (s *Stream) decodeBlock(mayBuffer bool) (Status, error) {
	st := s.st

	var payload []byte
	if st.inScratchOffs == 0 && s.AvailIn() >= int(st.strSize) {
		payload = s.NextIn[:st.strSize]
		s.NextIn = s.NextIn[st.strSize:]
		s.TotalIn += int64(st.strSize)
	} else {
		n := int(st.strSize) - st.inScratchOffs
		if n > s.AvailIn() {
			n = s.AvailIn()
		}
		if n > 0 {
			copy(st.inScratch[st.inScratchOffs:], s.NextIn[:n])
			s.NextIn = s.NextIn[n:]
			st.inScratchOffs += n
			s.TotalIn += int64(n)
		}
		if st.inScratchOffs < int(st.strSize) {
			if !mayBuffer && n == 0 {
				s.Msg = "need more data on input"
				return BufError, newError(BufError, s.Msg)
			}
			return Ok, nil
		}
		payload = st.inScratch[:st.strSize]
	}

	var out []byte
	if st.blockType == BlockTypeRaw {
		out = payload
	} else {
		decoded, err := st.compressor.Decompress(payload, int(st.decSize))
		if err != nil || len(decoded) != int(st.decSize) {
			s.Msg = "unable to decompress block stream"
			return StreamError, newError(StreamError, s.Msg)
		}
		out = decoded
	}

	s.deliverOutput(out)

	st.strSize = 0
	st.inScratchOffs = 0
	return Ok, nil
}

// --- Compress side ---

func (s *Stream) processCompress(flush Flush, mayBuffer bool) (Status, error) {
	st := s.st
	if st.eofSeen {
		return StreamEnd, nil
	}
	if st.outScratchOffs < int(st.decSize) {
		return s.drainOutScratch()
	}

	// pending is a short block already accumulated in inScratch by an
	// earlier call that fell short of a full block; it is folded together
	// with whatever NextIn offers now.
	pending := st.inScratchOffs
	avail := s.AvailIn()

	if pending == 0 && avail == 0 {
		if flush == FlushFinish {
			return s.emitEOF(mayBuffer)
		}
		if flush == FlushNone && !mayBuffer {
			s.Msg = "need more data on input"
			return BufError, newError(BufError, s.Msg)
		}
		return Ok, nil
	}

	want := st.blockSize
	total := pending + avail
	if total < want {
		if flush == FlushNone {
			// Accumulate the shortfall into inScratch so progress is made
			// on every call, symmetric to decodeBlock's inScratch
			// accumulation on the decompress side.
			if avail > 0 {
				copy(st.inScratch[pending:pending+avail], s.NextIn)
				st.inScratchOffs += avail
				s.NextIn = s.NextIn[avail:]
				s.TotalIn += int64(avail)
				return Ok, nil
			}
			if !mayBuffer {
				s.Msg = "need more data on input"
				return BufError, newError(BufError, s.Msg)
			}
			return Ok, nil
		}
		want = total
	}

	finishNow := flush == FlushFinish && total == want

	var payload []byte
	if pending == 0 {
		payload = s.NextIn[:want]
		s.NextIn = s.NextIn[want:]
		s.TotalIn += int64(want)
	} else {
		need := want - pending
		if need > 0 {
			copy(st.inScratch[pending:pending+need], s.NextIn[:need])
			s.NextIn = s.NextIn[need:]
			s.TotalIn += int64(need)
		}
		payload = st.inScratch[:want]
	}
	st.inScratchOffs = 0

	var blockType byte
	var outPayload []byte
	if want <= MinBlockSize {
		blockType = BlockTypeRaw
		outPayload = payload
	} else {
		compressed, err := st.compressor.CompressLevel(st.level, payload)
		if err != nil {
			s.Msg = "compression failed"
			return StreamError, newError(StreamError, s.Msg)
		}
		blockType = BlockTypeCompressed
		outPayload = compressed
	}

	h := header{
		blockType:        blockType,
		compressedLength: uint32(len(outPayload)),
		originalLength:   uint32(want),
		blockSize:        uint32(st.blockSize),
	}

	est := HeaderSize + len(outPayload)
	frame := make([]byte, est)
	encodeHeader(h, frame)
	copy(frame[HeaderSize:], outPayload)
	s.deliverOutput(frame)

	if finishNow && s.AvailIn() == 0 && st.outScratchOffs >= int(st.decSize) {
		return s.emitEOF(mayBuffer)
	}
	return Ok, nil
}

// emitEOF writes the EOF sentinel header, the only legitimate producer of
// one. It is a header-only frame with both length fields zero.
func (s *Stream) emitEOF(mayBuffer bool) (Status, error) {
	st := s.st
	h := header{blockType: BlockTypeCompressed, blockSize: uint32(st.blockSize)}

	if s.AvailOut() < HeaderSize && !mayBuffer {
		s.Msg = "need more room on output"
		return BufError, newError(BufError, s.Msg)
	}

	frame := make([]byte, HeaderSize)
	encodeHeader(h, frame)
	if s.deliverOutput(frame) == destCaller {
		st.eofSeen = true
		return StreamEnd, nil
	}
	st.eofPending = true
	return Ok, nil
}
