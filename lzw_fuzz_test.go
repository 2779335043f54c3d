package lzw

import (
	"bytes"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("A"))
	f.Add([]byte("ABABABAB"))
	f.Add([]byte("hello world hello world"))
	f.Add(bytes.Repeat([]byte{0}, 300))
	f.Add(bytes.Repeat([]byte("abc"), 100))
	f.Add([]byte{0x00, 0xff, 0x00, 0xff})
	f.Add(distinctPairBytes(254)) // table ends exactly on the 511 width boundary

	f.Fuzz(func(t *testing.T, data []byte) {
		enc := EncodeAll(data)
		got, err := DecodeAll(enc)
		if err != nil {
			t.Fatalf("decode of own output failed: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("roundtrip mismatch: %d bytes in, %d bytes out", len(data), len(got))
		}
	})
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x00, 0x03, 0x02})                               // clear + end-of-data
	f.Add([]byte{0x00, 0x83, 0x08, 0x11, 0x48, 0x50, 0x48, 0x40}) // "ABABABAB"
	f.Add([]byte(nil))
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})

	// Arbitrary bytes must decode cleanly or fail with a codec error - never
	// panic or loop.
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = DecodeAll(data)
	})
}
