package internal

import "io"

// Build arranges token lines into a block tree. A line at depth d becomes
// the last child of the most recent block at depth d-1. It returns the
// top-level blocks.
func Build(lines []Line) ([]Block, error) {
	var root Block
	for _, l := range lines {
		act := &root
		for k := 0; k < l.Depth; k++ {
			if len(act.Subs) == 0 {
				return nil, NewErrorf(StructureError, "too deep level (line %d)", l.Num)
			}
			act = &act.Subs[len(act.Subs)-1]
		}
		act.Subs = append(act.Subs, Block{Data: l.Tokens, Line: l.Num})
	}
	return root.Subs, nil
}

// Parse reads a program from source text, decoding it with the VM's
// configured encoding.
func (vm *VM) Parse(src io.Reader) (*Program, error) {
	r, err := DecodeSource(src, vm.Config.Encoding)
	if err != nil {
		return nil, err
	}
	lines, err := Lex(r)
	if err != nil {
		return nil, err
	}
	blocks, err := Build(lines)
	if err != nil {
		return nil, err
	}
	return Assemble(blocks)
}
