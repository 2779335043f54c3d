package lzw

// The decode-side dictionary is a flat array from code to its resolved byte
// sequence. Entries own their bytes (copies, never views into caller or
// stream memory) and the whole array is rebuilt on reset, mirroring the
// encode trie's 258-entry baseline.

// literals backs the 256 single-byte sequences shared by every generation.
var literals = func() (b [256]byte) {
	for i := range b {
		b[i] = byte(i)
	}
	return
}()

type decodeDict struct {
	entries [tableSize][]byte
	seq     codeSequencer
}

func newDecodeDict() *decodeDict {
	d := &decodeDict{seq: codeSequencer{lag: 1}}
	d.reset()
	return d
}

// reset restores the literal baseline and drops every learned entry.
// Resetting twice is the same as resetting once.
func (d *decodeDict) reset() {
	for i := 0; i < 256; i++ {
		d.entries[i] = literals[i : i+1]
	}
	for i := firstFreeCode; i < tableSize; i++ {
		d.entries[i] = nil
	}
	d.seq.reset()
}

// bytesFor resolves a code to its sequence. The caller guarantees the code is
// below the next free code.
func (d *decodeDict) bytesFor(code uint32) []byte {
	return d.entries[code]
}

// addEntry registers prefix+suffix at the next free slot, storing an owned
// copy. Returns false when the table is full and must be reset first.
func (d *decodeDict) addEntry(prefix []byte, suffix byte) bool {
	code, ok := d.seq.grow()
	if !ok {
		return false
	}
	entry := make([]byte, len(prefix)+1)
	copy(entry, prefix)
	entry[len(prefix)] = suffix
	d.entries[code] = entry
	return true
}
