package internal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Line is one tokenized line of source.
type Line struct {
	// Depth is the number of leading tabs.
	Depth int
	// Tokens holds the line's tokens. It is never empty for lines produced
	// by Lex.
	Tokens []string
	// Num is the one-based line number.
	Num int
}

// Lex splits source text into token lines. Lines without tokens are skipped.
func Lex(r io.Reader) ([]Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	var lines []Line
	num := 0
	for sc.Scan() {
		num++
		l, err := lexLine(sc.Text(), num)
		if err != nil {
			return nil, err
		}
		if len(l.Tokens) > 0 {
			lines = append(lines, l)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("efecta: reading source: %w", err)
	}
	return lines, nil
}

// lexLine tokenizes a single line.
//
// Leading tabs give the depth. After them, spaces separate tokens, the
// markers * $ & @ are always tokens of their own, a semicolon ends the line,
// and # makes the remainder of the line a single token, even if it is empty.
func lexLine(s string, num int) (Line, error) {
	s = strings.TrimSuffix(s, "\r")
	depth := 0
	for depth < len(s) && s[depth] == '\t' {
		depth++
	}
	l := Line{Depth: depth, Num: num}
	var tok strings.Builder
	flush := func() {
		if tok.Len() > 0 {
			l.Tokens = append(l.Tokens, tok.String())
			tok.Reset()
		}
	}
	for i := depth; i < len(s); i++ {
		switch c := s[i]; c {
		case '\t':
			return Line{}, NewErrorf(StructureError, "tabs must be at the beginning of the line (line %d)", num)
		case ' ':
			flush()
		case ';':
			flush()
			return l, nil
		case '#':
			flush()
			l.Tokens = append(l.Tokens, s[i+1:])
			return l, nil
		case '*', '$', '&', '@':
			flush()
			l.Tokens = append(l.Tokens, string(c))
		default:
			tok.WriteByte(c)
		}
	}
	flush()
	return l, nil
}
