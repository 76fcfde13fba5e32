package internal

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// TestLexLine tests tokenization of single lines.
func TestLexLine(t *testing.T) {
	cases := map[string]struct {
		src    string
		depth  int
		tokens []string
	}{
		"Empty":          {"", 0, nil},
		"Tabs":           {"\t\t", 2, nil},
		"Plain":          {"DISPLAY 5", 0, []string{"DISPLAY", "5"}},
		"Indented":       {"\tSET x 1", 1, []string{"SET", "x", "1"}},
		"Spaces":         {"  a   b  ", 0, []string{"a", "b"}},
		"Comment":        {"a b; c d", 0, []string{"a", "b"}},
		"OnlyComment":    {"\t; nothing", 1, nil},
		"Literal":        {"DISPLAY #a b; c", 0, []string{"DISPLAY", "a b; c"}},
		"EmptyLiteral":   {"DISPLAY #", 0, []string{"DISPLAY", ""}},
		"LiteralInToken": {"a#b c", 0, []string{"a", "b c"}},
		"Force":          {"* ADD 1 2", 0, []string{"*", "ADD", "1", "2"}},
		"Attached":       {"*ADD &x", 0, []string{"*", "ADD", "&", "x"}},
		"Markers":        {"$@&*", 0, []string{"$", "@", "&", "*"}},
		"CR":             {"a b\r", 0, []string{"a", "b"}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			l, err := lexLine(c.src, 7)
			if err != nil {
				t.Fatal(err)
			}
			if l.Depth != c.depth {
				t.Errorf("wrong depth: want %d, have %d", c.depth, l.Depth)
			}
			if l.Num != 7 {
				t.Errorf("wrong line number: want 7, have %d", l.Num)
			}
			if len(l.Tokens) != len(c.tokens) || (len(c.tokens) > 0 && !reflect.DeepEqual(l.Tokens, c.tokens)) {
				t.Errorf("wrong tokens: want %q, have %q", c.tokens, l.Tokens)
			}
		})
	}
}

func TestLexLineTab(t *testing.T) {
	_, err := lexLine("\ta\tb", 3)
	if !errors.Is(err, StructureError) {
		t.Errorf("wrong error: want structure error, have %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error does not name the line: %v", err)
	}
}

// TestLex tests that Lex numbers lines and skips those without tokens.
func TestLex(t *testing.T) {
	lines, err := Lex(strings.NewReader("a\n\n\t; c\n\tb c\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{
		{Depth: 0, Tokens: []string{"a"}, Num: 1},
		{Depth: 1, Tokens: []string{"b", "c"}, Num: 4},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("wrong lines: want %+v, have %+v", want, lines)
	}
}

// TestBuild tests arranging lines into blocks.
func TestBuild(t *testing.T) {
	lines := []Line{
		{Depth: 0, Tokens: []string{"a"}, Num: 1},
		{Depth: 1, Tokens: []string{"b"}, Num: 2},
		{Depth: 2, Tokens: []string{"c"}, Num: 3},
		{Depth: 1, Tokens: []string{"d"}, Num: 4},
		{Depth: 0, Tokens: []string{"e"}, Num: 5},
	}
	blocks, err := Build(lines)
	if err != nil {
		t.Fatal(err)
	}
	want := []Block{
		{
			Data: []string{"a"},
			Line: 1,
			Subs: []Block{
				{Data: []string{"b"}, Line: 2, Subs: []Block{{Data: []string{"c"}, Line: 3}}},
				{Data: []string{"d"}, Line: 4},
			},
		},
		{Data: []string{"e"}, Line: 5},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("wrong blocks: want %+v, have %+v", want, blocks)
	}
}

func TestBuildTooDeep(t *testing.T) {
	cases := map[string][]Line{
		"First": {{Depth: 1, Tokens: []string{"a"}, Num: 1}},
		"Skip": {
			{Depth: 0, Tokens: []string{"a"}, Num: 1},
			{Depth: 2, Tokens: []string{"b"}, Num: 2},
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Build(c)
			if !errors.Is(err, StructureError) {
				t.Errorf("wrong error: want structure error, have %v", err)
			}
		})
	}
}
