// Package charclass provides the low-level ASCII character-set bitmap and
// repeat-range types shared by the tokenizer, graph, and interpreter.
package charclass

// CharSet is a fixed 128-bit bitmap, one bit per 7-bit ASCII codepoint.
// The zero value is the empty set.
type CharSet struct {
	words [2]uint64
}

// Test reports whether b is a member of the set. Bytes >= 128 are never
// members, since the engine is 7-bit ASCII only.
func (cs CharSet) Test(b byte) bool {
	if b >= 128 {
		return false
	}
	return cs.words[b/64]&(uint64(1)<<(b%64)) != 0
}

// Insert adds b to the set. Bytes >= 128 are silently ignored.
func (cs *CharSet) Insert(b byte) {
	if b >= 128 {
		return
	}
	cs.words[b/64] |= uint64(1) << (b % 64)
}

// InsertRange adds every byte in [lo, hi] to the set.
func (cs *CharSet) InsertRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		cs.Insert(byte(b))
	}
}

// Union sets cs to the union of cs and other, in place.
func (cs *CharSet) Union(other CharSet) {
	cs.words[0] |= other.words[0]
	cs.words[1] |= other.words[1]
}

// Complement replaces cs with its complement within the 128-codepoint
// universe, in place.
func (cs *CharSet) Complement() {
	cs.words[0] = ^cs.words[0]
	cs.words[1] = ^cs.words[1]
}

// Equal reports whether cs and other contain exactly the same bytes.
func (cs CharSet) Equal(other CharSet) bool {
	return cs.words[0] == other.words[0] && cs.words[1] == other.words[1]
}

// Compare imposes a total order over character sets, used by graph.Edge's
// Compare for CHARACTER_SET edges. It returns -1, 0, or 1 the way
// bytes.Compare does, comparing the low word first.
func (cs CharSet) Compare(other CharSet) int {
	if cs.words[0] != other.words[0] {
		if cs.words[0] < other.words[0] {
			return -1
		}
		return 1
	}
	if cs.words[1] != other.words[1] {
		if cs.words[1] < other.words[1] {
			return -1
		}
		return 1
	}
	return 0
}

// IsEmpty reports whether the set contains no bytes.
func (cs CharSet) IsEmpty() bool {
	return cs.words[0] == 0 && cs.words[1] == 0
}

// Empty returns the empty character set.
func Empty() CharSet {
	return CharSet{}
}

// All returns the character set containing every 7-bit ASCII codepoint.
func All() CharSet {
	return CharSet{words: [2]uint64{^uint64(0), ^uint64(0)}}
}

// FromBytes returns the character set containing exactly the bytes in s
// (duplicates collapse, as with any set).
func FromBytes(s []byte) CharSet {
	var cs CharSet
	for _, b := range s {
		cs.Insert(b)
	}
	return cs
}

// Single returns the character set containing only b.
func Single(b byte) CharSet {
	var cs CharSet
	cs.Insert(b)
	return cs
}

// Range returns the character set containing every byte in [lo, hi].
func Range(lo, hi byte) CharSet {
	var cs CharSet
	cs.InsertRange(lo, hi)
	return cs
}

// POSIX character classes, named per the [:name:] bracket-expression syntax.
var (
	Upper  = Range('A', 'Z')
	Lower  = Range('a', 'z')
	Digit  = Range('0', '9')
	Alpha  = unionOf(Upper, Lower)
	Alnum  = unionOf(Alpha, Digit)
	XDigit = unionOf(Digit, Range('a', 'f'), Range('A', 'F'))
	Blank  = FromBytes([]byte{' ', '\t'})
	Space  = FromBytes([]byte{' ', '\t', '\n', '\r', '\f', '\v'})
	Cntrl  = unionOf(Range(0x00, 0x1f), Single(0x7f))
	Punct  = unionOf(Range('!', '/'), Range(':', '@'), Range('[', '`'), Range('{', '~'))
	Graph  = unionOf(Alnum, Punct)
	Print  = unionOf(Graph, Single(' '))
	Word   = unionOf(Alnum, Single('_'))
)

func unionOf(sets ...CharSet) CharSet {
	var cs CharSet
	for _, s := range sets {
		cs.Union(s)
	}
	return cs
}

// PosixClasses maps a POSIX class name (without the surrounding "[:" ":]")
// to its predefined character set. Used by the tokenizer to resolve
// `[:name:]` bracket expressions.
var PosixClasses = map[string]CharSet{
	"upper":  Upper,
	"lower":  Lower,
	"alpha":  Alpha,
	"digit":  Digit,
	"xdigit": XDigit,
	"alnum":  Alnum,
	"punct":  Punct,
	"blank":  Blank,
	"space":  Space,
	"cntrl":  Cntrl,
	"graph":  Graph,
	"print":  Print,
	"word":   Word,
}
