package lzw

import "testing"

func TestEncodeDictBaseline(t *testing.T) {
	d := newEncodeDict()
	for _, b := range []byte{0, 'A', 0xff} {
		node := d.getNode([]byte{b})
		if node == nodeNone {
			t.Fatalf("literal %d missing", b)
		}
		if d.code(node) != uint16(b) {
			t.Fatalf("literal %d has code %d", b, d.code(node))
		}
	}
	if d.code(d.root) != codeNone {
		t.Fatalf("root carries code %d", d.code(d.root))
	}
	if got := d.getNode([]byte("AB")); got != nodeNone {
		t.Fatalf("fresh trie knows multi-byte sequence")
	}
	if d.seq.next != firstFreeCode || d.seq.width != minCodeWidth {
		t.Fatalf("baseline sequencer: next=%d width=%d", d.seq.next, d.seq.width)
	}
}

func TestVisitSplitsAndRegisters(t *testing.T) {
	d := newEncodeDict()
	if d.visit('A') {
		t.Fatalf("visit of known literal reported a split")
	}
	if !d.visit('B') {
		t.Fatalf("visit of new sequence AB reported no split")
	}
	node := d.getNode([]byte("AB"))
	if node == nodeNone {
		t.Fatalf("AB not registered after split")
	}
	if d.code(node) != firstFreeCode {
		t.Fatalf("AB assigned code %d, want %d", d.code(node), firstFreeCode)
	}
	if d.seq.next != firstFreeCode+1 {
		t.Fatalf("next free code %d after one split", d.seq.next)
	}

	// The run restarted at B, so visiting A now forms BA.
	if !d.visit('A') {
		t.Fatalf("visit after split did not register BA")
	}
	if got := d.code(d.getNode([]byte("BA"))); got != firstFreeCode+1 {
		t.Fatalf("BA assigned code %d", got)
	}

	// AB is known now: A then B walks without a split.
	if d.visit('B') {
		t.Fatalf("known sequence AB reported a split")
	}
}

func TestEncodeDictResetIdempotent(t *testing.T) {
	d := newEncodeDict()
	d.visit('A')
	d.visit('B')
	d.visit('A')
	d.reset()
	d.reset()
	if got := d.getNode([]byte("AB")); got != nodeNone {
		t.Fatalf("learned sequence survived reset")
	}
	if len(d.run) != 0 {
		t.Fatalf("run buffer survived reset")
	}
	if d.seq.next != firstFreeCode || d.seq.width != minCodeWidth {
		t.Fatalf("reset sequencer: next=%d width=%d", d.seq.next, d.seq.width)
	}
	if len(d.nodes) != 2+256 {
		t.Fatalf("baseline arena holds %d nodes", len(d.nodes))
	}
}

func TestChildNodeWalk(t *testing.T) {
	d := newEncodeDict()
	d.visit('A')
	d.visit('B') // registers AB
	a := d.childNode(d.root, 'A')
	if got := d.childNode(a, 'B'); got == nodeNone {
		t.Fatalf("childNode missing registered link")
	}
	if got := d.walk(a, []byte("BC")); got != nodeNone {
		t.Fatalf("walk followed a missing link")
	}
}
