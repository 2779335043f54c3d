package lzw

// The encode-side dictionary is a prefix trie over byte sequences: the root
// carries no code, every other node represents the root-to-node byte path and
// carries the code assigned when that path was first seen. Nodes live in an
// arena indexed by uint16 handles; index 0 is a sentinel so that a zeroed
// child table means "no child". The trie is exclusively owned by its
// dictionary and rebuilt wholesale on every reset.

// codeNone marks the root node, which represents the empty sequence.
const codeNone = 0xffff

// nodeNone is the absent-child handle.
const nodeNone = 0

type trieNode struct {
	children [256]uint16 // child handle per next byte, nodeNone if absent
	code     uint16      // assigned code, codeNone on the root
}

type encodeDict struct {
	nodes []trieNode
	root  uint16
	run   []byte // current run: the sequence being matched right now
	seq   codeSequencer
}

func newEncodeDict() *encodeDict {
	d := &encodeDict{
		nodes: make([]trieNode, 0, 2+tableSize),
		run:   make([]byte, 0, 64),
	}
	d.reset()
	return d
}

// reset discards every learned sequence and rebuilds the 258-entry baseline:
// literal codes 0-255 as direct children of the root, the two control codes
// reserved, next free code 258, width 9. Resetting twice is the same as
// resetting once.
func (d *encodeDict) reset() {
	d.nodes = d.nodes[:0]
	d.nodes = append(d.nodes, trieNode{}) // sentinel occupying handle nodeNone
	d.root = d.addNode(codeNone)
	for i := 0; i < 256; i++ {
		d.addChild(d.root, byte(i), uint16(i))
	}
	d.run = d.run[:0]
	d.seq.reset()
}

func (d *encodeDict) addNode(code uint16) uint16 {
	idx := uint16(len(d.nodes))
	d.nodes = append(d.nodes, trieNode{code: code})
	return idx
}

func (d *encodeDict) addChild(parent uint16, b byte, code uint16) {
	idx := d.addNode(code)
	d.nodes[parent].children[b] = idx
}

// childNode returns the node's child for the given byte, nodeNone if absent.
func (d *encodeDict) childNode(node uint16, b byte) uint16 {
	return d.nodes[node].children[b]
}

// walk follows the trie from node one byte at a time, stopping with nodeNone
// as soon as any link is missing.
func (d *encodeDict) walk(node uint16, seq []byte) uint16 {
	for _, b := range seq {
		node = d.childNode(node, b)
		if node == nodeNone {
			break
		}
	}
	return node
}

// getNode returns the node for the given sequence, nodeNone if unknown.
func (d *encodeDict) getNode(seq []byte) uint16 {
	return d.walk(d.root, seq)
}

// code returns the code assigned to the node.
func (d *encodeDict) code(node uint16) uint16 {
	return d.nodes[node].code
}

// visit appends b to the current run and walks the full run from the root.
// If every link exists the run is a known sequence, a longer match may still
// be available, and visit reports false. If a link is missing the run is
// being seen for the first time: the divergence node gains a child keyed by
// the diverging byte, the full run is registered at the next free code, the
// run restarts at just b, and visit reports true so the caller can flush a
// code for the match that just ended.
func (d *encodeDict) visit(b byte) bool {
	d.run = append(d.run, b)
	node := d.root
	for _, rb := range d.run {
		child := d.childNode(node, rb)
		if child == nodeNone {
			code, ok := d.seq.grow()
			if !ok {
				// The encoder clears the table at 4095 entries, one short of
				// capacity, so a failed grow is an invariant violation.
				panic("lzw: encode dictionary overflow")
			}
			d.addChild(node, rb, uint16(code))
			d.run = d.run[:1]
			d.run[0] = b
			return true
		}
		node = child
	}
	return false
}
