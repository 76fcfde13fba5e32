package internal

import "strings"

// A Block is the structural unit of Efecta source: an ordered sequence of
// tokens and an ordered sequence of child blocks. Every statement in a
// program is a Block, and so is the body of every deferred block value.
//
// Blocks are immutable once built. The evaluator only reads and clones them.
type Block struct {
	// Data holds the block's tokens. The first token is the head consulted
	// for dispatch.
	Data []string
	// Subs holds the child blocks.
	Subs []Block

	// Line is the one-based line number at which the block was parsed, or 0
	// if the block was constructed in Go.
	Line int
}

// Markers recognized at the head of a block and within argument tuples.
const (
	// ForceMarker forces a block in expression position to be invoked.
	ForceMarker = "*"
	// DynamicMarker invokes the procedure bound to a variable. Within an
	// argument tuple it marks a variable reference.
	DynamicMarker = "$"
	// RefMarker marks a variable reference within an argument tuple.
	RefMarker = "&"
	// DeferMarker turns a block into a deferred block value.
	DeferMarker = "@"
)

// HeadIs returns whether the block's first token is name.
func (b Block) HeadIs(name string) bool {
	return len(b.Data) > 0 && b.Data[0] == name
}

// Head returns the block's first token, or the empty string if it has none.
func (b Block) Head() string {
	if len(b.Data) == 0 {
		return ""
	}
	return b.Data[0]
}

// CutHead returns a copy of the block without its first token, along with the
// number of tokens remaining after the head. If the block has no tokens, the
// block is returned unchanged with ok false.
func (b Block) CutHead() (r Block, rest int, ok bool) {
	if len(b.Data) < 1 {
		return b.Clone(), 0, false
	}
	r = b.Clone()
	r.Data = r.Data[1:]
	return r, len(r.Data), true
}

// Clone creates a deep copy of the block and all its children.
func (b Block) Clone() Block {
	r := Block{
		Data: append([]string(nil), b.Data...),
		Line: b.Line,
	}
	if len(b.Subs) > 0 {
		r.Subs = make([]Block, len(b.Subs))
		for i, sub := range b.Subs {
			r.Subs[i] = sub.Clone()
		}
	}
	return r
}

// String generates a diagnostic representation of the block: its tokens on
// one line, followed by its children indented by one tab each.
func (b Block) String() string {
	var s strings.Builder
	b.stringRecurse(&s, 0)
	return s.String()
}

func (b Block) stringRecurse(s *strings.Builder, depth int) {
	s.WriteString(strings.Repeat("\t", depth))
	s.WriteString(strings.Join(b.Data, " "))
	for _, sub := range b.Subs {
		s.WriteByte('\n')
		sub.stringRecurse(s, depth+1)
	}
}
