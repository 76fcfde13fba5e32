package internal

// Program directives.
const (
	ProgramIDDirective = "PROGRAM-ID"
	EnterInDirective   = "ENTER-IN"
	ProcDirective      = "PROC"
)

// Program is an assembled Efecta program.
type Program struct {
	// Name is the program's identifier.
	Name string
	// Entry is the name of the procedure at which execution begins.
	Entry string
	// Procs holds the program's procedures in declaration order.
	Procs []*UserProc
}

// Assemble creates a program from top-level blocks. The first block must be
// a PROGRAM-ID directive, the second an ENTER-IN directive, and each of the
// rest a PROC directive whose children are the procedure's body.
func Assemble(blocks []Block) (*Program, error) {
	p := Program{}
	var err error
	for i, b := range blocks {
		switch i {
		case 0:
			p.Name, err = directive(b, ProgramIDDirective)
		case 1:
			p.Entry, err = directive(b, EnterInDirective)
		default:
			var name string
			name, err = directive(b, ProcDirective)
			p.Procs = append(p.Procs, NewUserProc(name, b.Subs))
		}
		if err != nil {
			return nil, err
		}
	}
	switch len(blocks) {
	case 0:
		return nil, NewError(StructureError, ProgramIDDirective+" expected")
	case 1:
		return nil, NewError(StructureError, EnterInDirective+" expected")
	}
	return &p, nil
}

// directive checks that b is the named directive with exactly one argument
// and returns that argument.
func directive(b Block, id string) (string, error) {
	if !b.HeadIs(id) {
		return "", NewErrorf(StructureError, "%s expected (line %d)", id, b.Line)
	}
	r, rest, _ := b.CutHead()
	if rest != 1 {
		return "", NewErrorf(StructureError, "%s must be followed just by one argument (line %d)", id, b.Line)
	}
	return r.Data[0], nil
}
