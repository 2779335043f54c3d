package lzw

import "errors"

// Code space constants for the fixed 4096-entry variant.
const (
	codeClear     = 256  // clear-table control code: both sides drop to the literal baseline
	codeEOD       = 257  // end-of-data control code: terminates the stream
	firstFreeCode = 258  // first dynamically assigned code
	tableSize     = 4096 // total code space (12-bit)

	minCodeWidth = 9
	maxCodeWidth = 12
)

// ErrCorrupt indicates the input is not a valid LZW stream for this codec's
// parameters: a code beyond next-free-code+1, a non-literal code where no
// previous sequence exists, or a stream that ends without an end-of-data code.
var ErrCorrupt = errors.New("lzw: corrupt stream")

// ErrTableOverflow indicates a dictionary was asked to grow past its 4096-entry
// capacity without an intervening reset. A conforming encoder clears the table
// before this can happen, so it only surfaces when decoding a stream that
// violates the reset protocol.
var ErrTableOverflow = errors.New("lzw: dictionary table overflow")

// codeSequencer tracks the next free code and the current code width for one
// dictionary generation. The encode and decode dictionaries store different
// payloads (trie vs. flat array) but must advance the width schedule in
// lockstep, so both embed this one sequencer instead of duplicating the
// thresholds. The decoder's free-code counter lags the encoder's by exactly
// one entry (the decoder learns each sequence one code later than the encoder
// used it), expressed here as lag=1: it shifts every widening threshold from
// 512/1024/2048 down to 511/1023/2047 without a second constant set.
type codeSequencer struct {
	next  uint32 // next free code, firstFreeCode..tableSize
	width uint   // bits per code for the next read/write
	lag   uint32 // 0 on the encode side, 1 on the decode side
}

// reset restores the 258-entry baseline: next free code 258, width 9.
func (s *codeSequencer) reset() {
	s.next = firstFreeCode
	s.width = minCodeWidth
}

// grow claims the next free code and advances the width schedule.
// Returns false when the table is already at capacity.
func (s *codeSequencer) grow() (uint32, bool) {
	if s.next == tableSize {
		return 0, false
	}
	code := s.next
	s.next++
	for s.width < maxCodeWidth && s.next+s.lag >= 1<<s.width {
		s.width++
	}
	return code, true
}

// eodWidth returns the width for the stream's closing end-of-data code. By
// then the decoder has registered a mirrored entry for every data code, its
// counter equals the encoder's, and the usual one-entry lag is gone: the
// closing code takes one extra bit when the counter sits exactly on a
// 511/1023/2047 boundary.
func (s *codeSequencer) eodWidth() uint {
	w := s.width
	for w < maxCodeWidth && s.next+1 >= 1<<w {
		w++
	}
	return w
}
