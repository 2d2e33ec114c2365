// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package chalktalk

import (
	"fmt"
	"strings"
	"testing"

	"github.com/r3labs/diff/v2"
)

func TestParser(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  *Root
		diags []string
	}{
		{
			name: "empty",
			text: "",
			want: &Root{},
		},

		{
			name: "theorem",
			text: "Theorem:\nthen:\n. 'x = x'\n",
			want: &Root{Groups: []*Group{
				group(nil,
					section("Theorem"),
					section("then", tokenArg(TokenStatement, "x = x")),
				),
			}},
		},

		{
			name: "id and inline forms",
			text: "[\\f{x}]\nDefines: f(x, y), X := (A, B), a_{i}(z), x..., {a}\nmeans: 'x'\n",
			want: &Root{Groups: []*Group{
				group(&Token{Type: TokenId, Text: `\f{x}`},
					section("Defines",
						formArg(&Function{Name: name("f"), Params: []Form{name("x"), name("y")}}),
						formArg(&Assignment{Name: name("X"), Value: formArg(&Tuple{Items: []Form{name("A"), name("B")}})}),
						formArg(&Sequence{Name: name("a"), Index: []Form{name("i")}, Params: []Form{name("z")}}),
						formArg(&Name{Text: "x", Variadic: true}),
						formArg(&Set{Items: []Form{name("a")}}),
					),
					section("means", tokenArg(TokenStatement, "x")),
				),
			}},
		},

		{
			name: "abstraction",
			text: "Defines: {x_{i}}_{i}, {a}_{n}...\n",
			want: &Root{Groups: []*Group{
				group(nil,
					section("Defines",
						formArg(&Abstraction{
							Items:  []Form{&Sequence{Name: name("x"), Index: []Form{name("i")}}},
							Params: []Form{name("i")},
						}),
						formArg(&Abstraction{Items: []Form{name("a")}, Params: []Form{name("n")}, Variadic: true}),
					),
				),
			}},
		},

		{
			name: "nested groups",
			text: "Theorem:\nthen:\n. forAll: x\n  then:\n  . 'x'\n. \"t\"\n",
			want: &Root{Groups: []*Group{
				group(nil,
					section("Theorem"),
					section("then",
						groupArg(group(nil,
							section("forAll", formArg(name("x"))),
							section("then", tokenArg(TokenStatement, "x")),
						)),
						tokenArg(TokenText, "t"),
					),
				),
			}},
		},

		{
			name: "assignment of a statement",
			text: "States:\nusing: X := 'a'\n",
			want: &Root{Groups: []*Group{
				group(nil,
					section("States"),
					section("using", formArg(&Assignment{Name: name("X"), Value: tokenArg(TokenStatement, "a")})),
				),
			}},
		},

		{
			name: "recover at the next comma",
			text: "Defines: f(x, ), y\n",
			want: &Root{Groups: []*Group{
				group(nil,
					section("Defines", formArg(name("y"))),
				),
			}},
			diags: []string{"unexpected RParen ')', expected Name, Statement, Text, Literal, LParen or LCurly"},
		},

		{
			name: "missing comma",
			text: "Defines: x y\nmeans: 'z'\n",
			want: &Root{Groups: []*Group{
				group(nil,
					section("Defines", formArg(name("x"))),
					section("means", tokenArg(TokenStatement, "z")),
				),
			}},
			diags: []string{"unexpected Name 'y', expected Comma"},
		},

		{
			name: "bullet with two arguments",
			text: "and:\n. 'a', 'b'\n. 'c'\n",
			want: &Root{Groups: []*Group{
				group(nil,
					section("and", tokenArg(TokenStatement, "a"), tokenArg(TokenStatement, "c")),
				),
			}},
			diags: []string{"an argument bullet holds exactly one argument"},
		},

		{
			name: "group without sections",
			text: "[x]\n",
			want: &Root{Groups: []*Group{
				group(&Token{Type: TokenId, Text: "x"}),
			}},
			diags: []string{"group has no sections"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, lexDiags := Lex(tt.text)
			if len(lexDiags) != 0 {
				t.Fatalf("unexpected lexer diagnostics: %v", lexDiags)
			}

			tree, diags := Parse(tokens)

			if len(diags) != len(tt.diags) {
				t.Fatalf("expected %d diagnostics but got %d: %v", len(tt.diags), len(diags), diags)
			}

			for i, d := range diags {
				if d.Message != tt.diags[i] {
					t.Errorf("diagnostic %d: expected '%s' but got '%s'", i, tt.diags[i], d.Message)
				}
			}

			assertTree(t, tt.want, tree)
		})
	}
}

func TestParserPositions(t *testing.T) {
	tree, diags := ParseString("[a]\nTheorem:\nthen:\n. exists: x\n  suchThat: 'y'\n")
	if len(diags) != 0 {
		t.Fatal(diags)
	}

	g := tree.Groups[0]
	if g.Pos.Row != 0 || g.Pos.Col != 0 {
		t.Errorf("unexpected group position %v", g.Pos)
	}

	then := g.Sections[1]
	if then.Pos.Row != 2 || then.Pos.Col != 0 {
		t.Errorf("unexpected section position %v", then.Pos)
	}

	nested := then.Args[0].Group
	if nested.Pos.Row != 3 || nested.Pos.Col != 2 {
		t.Errorf("unexpected nested group position %v", nested.Pos)
	}

	x := nested.Sections[0].Args[0].Form.(*Name)
	if x.Pos.Row != 3 || x.Pos.Col != 10 {
		t.Errorf("unexpected name position %v", x.Pos)
	}
}

func TestParseAbstractionTail(t *testing.T) {
	_, diags := ParseString("Defines: {x}_y\n")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for a missing parameter list")
	}

	if diags[0].Message != "unexpected Name 'y', expected LCurly" {
		t.Errorf("unexpected diagnostic '%s'", diags[0].Message)
	}
}

// TestParseTotal checks that parsing terminates and yields a tree for arbitrary input.
func TestParseTotal(t *testing.T) {
	inputs := []string{
		"Defines: (((\n",
		"Defines: ,,,\n",
		"a: x_\nb: y_{\nc: f(\n",
		"a:\n. b:\n  . :=\n",
		"x :=\n",
	}

	for _, input := range inputs {
		tree, _ := ParseString(input)
		if tree == nil {
			t.Fatalf("%q: no tree", input)
		}
	}

	// A stream that does not come from the lexer.
	tree, diags := Parse([]Token{{Type: TokenName, Text: "x"}, {Type: TokenBeginGroup}, {Type: TokenEndArgument}})
	if tree == nil || len(diags) == 0 {
		t.Fatalf("expected diagnostics for a broken stream, got %v", diags)
	}
}

func assertTree(t *testing.T, want, got *Root) {
	t.Helper()

	differences, err := diff.Diff(want, got)
	if err != nil {
		t.Fatal(err)
	}

	// These descriptions map the type of a change to a more readable format.
	changeTypeDescription := map[string]string{
		"create": "was added",
		"update": "is different",
		"delete": "is missing",
	}

	for _, d := range differences {
		nicePath := strings.Join(d.Path, ".")

		// Positions are covered by separate tests.
		if strings.Contains(nicePath, "Pos") {
			continue
		}

		t.Errorf("property '%s' %s, expected %s but got %s",
			nicePath,
			changeTypeDescription[d.Type],
			PrettyValue(d.From), PrettyValue(d.To))
	}
}

// PrettyValue transforms values into a human readable form.
func PrettyValue(v interface{}) string {
	if s, ok := v.(*string); ok {
		return fmt.Sprintf("%#v", *s)
	}

	return fmt.Sprintf("%#v", v)
}

func group(id *Token, sections ...*Section) *Group {
	return &Group{Id: id, Sections: sections}
}

func section(name string, args ...*Argument) *Section {
	return &Section{Name: name, Args: args}
}

func tokenArg(tt TokenType, text string) *Argument {
	return &Argument{Token: &Token{Type: tt, Text: text}}
}

func formArg(f Form) *Argument {
	return &Argument{Form: f}
}

func groupArg(g *Group) *Argument {
	return &Argument{Group: g}
}

func name(text string) *Name {
	return &Name{Text: text}
}
