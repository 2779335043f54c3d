package lzw

import (
	"bytes"
	"io"
)

// encoder drives trie traversal over the input bytes and emits codes through
// the bit writer. It tracks the node of the current match; the trie's visit
// keeps its own run buffer in step, so after a visit-triggered split the
// match restarts at the literal node of the byte just processed.
type encoder struct {
	dict       *encodeDict
	bw         bitWriter
	traceWidth func(width uint) // test hook, called once per code written
}

func newEncoder(w io.Writer) *encoder {
	e := &encoder{dict: newEncodeDict()}
	e.bw.w = w
	return e
}

func (e *encoder) writeCode(code uint32) error {
	if e.traceWidth != nil {
		e.traceWidth(e.dict.seq.width)
	}
	return e.bw.writeCode(code, e.dict.seq.width)
}

// encode writes the full stream for src: an opening clear-table code at width
// 9, the matched codes at the scheduled widths, and a closing end-of-data
// code at the decode-side width for the final table size.
func (e *encoder) encode(src []byte) error {
	if err := e.writeCode(codeClear); err != nil {
		return err
	}
	node := uint16(nodeNone)
	for i, b := range src {
		split := e.dict.visit(b)
		if split || node == nodeNone {
			node = e.dict.childNode(e.dict.root, b)
		} else {
			node = e.dict.childNode(node, b)
		}
		if i == len(src)-1 {
			if err := e.writeCode(uint32(e.dict.code(node))); err != nil {
				return err
			}
			break
		}
		if e.dict.childNode(node, src[i+1]) == nodeNone {
			// The match cannot extend to the next byte: flush its code now.
			// The next visit is guaranteed to split and restart the run.
			if err := e.writeCode(uint32(e.dict.code(node))); err != nil {
				return err
			}
			node = nodeNone
		}
		if e.dict.seq.next == tableSize-1 {
			// Proactive reset one entry short of capacity, so the mirrored
			// decode table (which runs one entry behind) can never overflow.
			if node != nodeNone {
				if err := e.writeCode(uint32(e.dict.code(node))); err != nil {
					return err
				}
				node = nodeNone
			}
			if err := e.writeCode(codeClear); err != nil {
				return err
			}
			e.dict.reset()
		}
	}
	// The end-of-data code is read after the decoder's final table add, so it
	// is written at the decode-side width, not the encoder's.
	width := e.dict.seq.eodWidth()
	if e.traceWidth != nil {
		e.traceWidth(width)
	}
	if err := e.bw.writeCode(codeEOD, width); err != nil {
		return err
	}
	return e.bw.flush()
}

// Encode compresses src, optionally reusing buf for output.
// buf can be nil or undersized; it will be grown as needed.
// Returns the compressed data (may have different backing array than buf).
func Encode(buf, src []byte) []byte {
	out := bytes.NewBuffer(buf[:0])
	if err := newEncoder(out).encode(src); err != nil {
		// bytes.Buffer writes cannot fail
		panic("lzw: " + err.Error())
	}
	return out.Bytes()
}

// EncodeAll compresses src and returns a newly allocated byte slice.
func EncodeAll(src []byte) []byte {
	return Encode(nil, src)
}

// EncodeTo streams the compressed form of src to w and returns the number of
// bytes written. Write errors propagate as-is; output already written to w is
// left in place.
func EncodeTo(w io.Writer, src []byte) (int64, error) {
	e := newEncoder(w)
	err := e.encode(src)
	return e.bw.n, err
}
