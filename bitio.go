package lzw

import "io"

// The wire format packs each code least-significant-bit first within a byte,
// spanning byte boundaries low-endian: the first code occupies the low bits
// of the first byte, overflow bits continue in the next byte.

// bitWriter packs variable-width codes into a byte stream.
type bitWriter struct {
	w    io.Writer
	acc  uint32 // pending bits, low bits first
	bits uint   // number of pending bits, always < 8 between calls
	n    int64  // total bytes written
}

func (bw *bitWriter) writeCode(code uint32, width uint) error {
	bw.acc |= code << bw.bits
	bw.bits += width
	var out [4]byte
	n := 0
	for bw.bits >= 8 {
		out[n] = byte(bw.acc)
		bw.acc >>= 8
		bw.bits -= 8
		n++
	}
	if n == 0 {
		return nil
	}
	wrote, err := bw.w.Write(out[:n])
	bw.n += int64(wrote)
	return err
}

// flush pads the final partial byte with zero bits and writes it out.
func (bw *bitWriter) flush() error {
	if bw.bits == 0 {
		return nil
	}
	wrote, err := bw.w.Write([]byte{byte(bw.acc)})
	bw.n += int64(wrote)
	bw.acc = 0
	bw.bits = 0
	return err
}

// bitReader unpacks variable-width codes from a byte slice.
type bitReader struct {
	src  []byte
	pos  int
	acc  uint32
	bits uint
}

// readCode returns the next code of the given width. Running out of input
// mid-code means the stream was truncated before its end-of-data code.
func (br *bitReader) readCode(width uint) (uint32, error) {
	for br.bits < width {
		if br.pos == len(br.src) {
			return 0, ErrCorrupt
		}
		br.acc |= uint32(br.src[br.pos]) << br.bits
		br.pos++
		br.bits += 8
	}
	code := br.acc & (1<<width - 1)
	br.acc >>= width
	br.bits -= width
	return code, nil
}
