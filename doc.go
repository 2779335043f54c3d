// Package lzw implements the classic 4096-entry LZW (Lempel-Ziv-Welch)
// compression variant with variable-width 9-12 bit codes.
//
// # Overview
//
// LZW is an adaptive dictionary compressor: it replaces repeated byte
// sequences with numeric codes, learning new sequences as it goes. Encoder
// and decoder each grow a mirrored dictionary from the same 258-entry
// baseline (256 literal byte codes plus two control codes), so no dictionary
// ever travels with the data. The decoder runs exactly one entry behind the
// encoder and reconstructs the one entry it has not seen yet on the fly (the
// classic "KwKwK" case).
//
// # Wire Format
//
// A stream is a sequence of variable-width unsigned codes packed
// least-significant-bit first, little-endian across byte boundaries. Code 256
// clears the dictionary, code 257 ends the stream, codes 258-4095 are
// assigned dynamically. Code width starts at 9 bits and grows to 12 as the
// dictionary fills; when the dictionary is one entry short of capacity the
// encoder emits a clear code and starts a fresh generation. Every stream
// opens with a clear code and closes with an end-of-data code. There is no
// length prefix, checksum, or magic number.
//
// All parameters (dictionary size, code widths, control code values) are
// fixed constants of this variant; nothing is configurable. The format is not
// compatible with Go's compress/lzw, which implements the GIF code-size
// conventions.
//
// # Basic Usage
//
//	compressed := lzw.EncodeAll([]byte("ABABABAB"))
//	original, err := lzw.DecodeAll(compressed)
//
//	// Or reuse buffers across calls
//	buf := make([]byte, 0, 4096)
//	buf = lzw.Encode(buf, data)
//
//	// Or stream output as it is produced
//	n, err := lzw.EncodeTo(w, data)
//
// Encoding is total over arbitrary byte slices, including empty ones.
// Decoding fails with ErrCorrupt on streams that are truncated or contain
// impossible codes; it never guesses.
//
// # Performance Characteristics
//
// Encoding and decoding are single-pass and single-threaded, O(n) in the
// input size. Each encode or decode call owns its dictionaries exclusively,
// so concurrent calls on separate streams are safe.
package lzw
