package lzw

import (
	"bytes"
	"io"
)

// decoder consumes codes from the bit reader and resolves them against the
// mirrored flat-array dictionary, reconstructing each entry one code after
// the encoder first used it.
type decoder struct {
	dict       *decodeDict
	br         bitReader
	traceWidth func(width uint) // test hook, called once per code read
}

func newDecoder(src []byte) *decoder {
	d := &decoder{dict: newDecodeDict()}
	d.br.src = src
	return d
}

func (d *decoder) readCode() (uint32, error) {
	if d.traceWidth != nil {
		d.traceWidth(d.dict.seq.width)
	}
	return d.br.readCode(d.dict.seq.width)
}

// readFirst reads the code that follows a clear-table reset. It must resolve
// with no previous sequence on hand, so only literal codes qualify.
func (d *decoder) readFirst() (uint32, error) {
	code, err := d.readCode()
	if err != nil {
		return 0, err
	}
	if code != codeEOD && code >= codeClear {
		return 0, ErrCorrupt
	}
	return code, nil
}

func (d *decoder) decode(w io.Writer) error {
	// Leading clear-table codes reset the (already fresh) dictionary and do
	// not count toward decoder state.
	code, err := d.readCode()
	for err == nil && code == codeClear {
		d.dict.reset()
		code, err = d.readCode()
	}
	if err != nil {
		return err
	}
	if code == codeEOD {
		return nil
	}
	if code >= codeClear {
		return ErrCorrupt
	}
	prev := d.dict.bytesFor(code)
	if _, err := w.Write(prev); err != nil {
		return err
	}

	for {
		code, err = d.readCode()
		if err != nil {
			return err
		}
		switch code {
		case codeEOD:
			return nil
		case codeClear:
			d.dict.reset()
			code, err = d.readFirst()
			if err != nil {
				return err
			}
			if code == codeEOD {
				return nil
			}
			// Resolved directly, with no dictionary entry added: there is no
			// previous sequence in the fresh generation to pair it with.
			prev = d.dict.bytesFor(code)
			if _, err := w.Write(prev); err != nil {
				return err
			}
			continue
		}

		var resolved []byte
		switch next := d.dict.seq.next; {
		case code < next:
			resolved = d.dict.bytesFor(code)
		case code == next:
			// KwKwK: the encoder used this code one entry before our mirrored
			// table could contain it. The sequence is necessarily the previous
			// sequence followed by its own first byte.
			kw := make([]byte, len(prev)+1)
			copy(kw, prev)
			kw[len(prev)] = prev[0]
			resolved = kw
		default:
			return ErrCorrupt
		}
		if _, err := w.Write(resolved); err != nil {
			return err
		}
		if !d.dict.addEntry(prev, resolved[0]) {
			return ErrTableOverflow
		}
		prev = resolved
	}
}

// Decode decompresses src, optionally reusing buf for output.
// buf can be nil or undersized; it will be grown as needed.
// Returns the decompressed data (may have different backing array than buf).
func Decode(buf, src []byte) ([]byte, error) {
	out := bytes.NewBuffer(buf[:0])
	if err := newDecoder(src).decode(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeAll decompresses src and returns a newly allocated byte slice.
func DecodeAll(src []byte) ([]byte, error) {
	return Decode(nil, src)
}

// DecodeTo streams the decompressed form of src to w and returns the number
// of bytes written. Bytes are written as codes resolve, so on error the
// output already written to w is left in place.
func DecodeTo(w io.Writer, src []byte) (int64, error) {
	cw := &countingWriter{w: w}
	err := newDecoder(src).decode(cw)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
