// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package textalk

import (
	"testing"

	"github.com/golangee/mlg/token"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name string
		text string
		// want is the formatted result, which equals the input for canonical input.
		want  string
		diags []string
	}{
		{name: "name", text: "x", want: "x"},
		{name: "empty", text: "", want: ""},
		{name: "variadic", text: "x...", want: "x..."},
		{name: "function", text: "f(x, y)", want: "f(x, y)"},
		{name: "sequence", text: "x_{i}", want: "x_{i}"},
		{name: "sequence with parens", text: "x_(i)", want: "x_{i}"},
		{name: "sequence call", text: "f_{i}(x)", want: "f_{i}(x)"},
		{name: "command", text: `\f(a,b)`, want: `\f(a, b)`},
		{name: "full command", text: `\a.b[x]_{i}^{n}{y}:{z}:on{A}(w)`, want: `\a.b[x]_{i}^{n}{y}:{z}:on{A}(w)`},
		{name: "square colon", text: `\a[:x:]`, want: `\a[:x:]`},
		{name: "grouping", text: "(a + b) * c", want: "(a + b) * c"},
		{name: "tuple", text: "(a, b)", want: "(a, b)"},
		{name: "set", text: "{a, b}", want: "{a, b}"},
		{name: "left associative", text: "a + b * c", want: "a + b * c"},
		{name: "prefix and postfix", text: "-x + y!", want: "-x + y!"},
		{name: "infix command", text: `x \in/ A`, want: `x \in/ A`},
		{name: "command between operands", text: `A \cup B`, want: `A \cup/ B`},
		{name: "is", text: `X is \something`, want: `X is \something`},
		{name: "is type", text: "X is :Type:", want: "X is :Type:"},
		{name: "in", text: "x, y in A", want: "x, y in A"},
		{name: "notin", text: "x notin A", want: "x notin A"},
		{name: "equals", text: "f(x) = x + 1", want: "f(x) = x + 1"},
		{name: "not equals", text: "a != b", want: "a != b"},
		{name: "colon equals", text: "X := (A, B)", want: "X := (A, B)"},
		{name: "as", text: `x as \real`, want: `x as \real`},
		{name: "list", text: "a, b", want: "a, b"},
		{name: "relation in brackets", text: "f(x = y)", want: "f(x = y)"},
		{
			name:  "chained is",
			text:  "X is Y is Z",
			want:  "X is Y is Z",
			diags: []string{"the right side of 'is' must be commands or types", "the right side of 'is' must be commands or types"},
		},
		{
			name:  "is with a plain name",
			text:  "x is y",
			want:  "x is y",
			diags: []string{"the right side of 'is' must be commands or types"},
		},
		{
			name:  "expression left of in",
			text:  "x + 1 in A",
			want:  "x + 1 in A",
			diags: []string{"the left side of 'in' must be targets"},
		},
		{
			name:  "empty side",
			text:  "= y",
			want:  " = y",
			diags: []string{"the left side of '=' is empty"},
		},
		{
			name:  "colon equals with several targets",
			text:  "a, b := c",
			want:  "a := c",
			diags: []string{"the left side of ':=' must be a single expression"},
		},
		{
			name:  "as without command",
			text:  "x as y",
			want:  "x as y",
			diags: []string{"the right side of 'as' must be a command"},
		},
		{
			name:  "unexpected item",
			text:  "x y",
			want:  "x",
			diags: []string{"unexpected item 'y'"},
		},
		{
			name:  "trailing comma",
			text:  "a,",
			want:  "a, ",
			diags: []string{"expected an expression"},
		},
		{
			name:  "missing command name",
			text:  `\ + x`,
			want:  "+x",
			diags: []string{"expected a command name"},
		},
		{
			name:  "dangling operator",
			text:  `x \in/`,
			want:  "x",
			diags: []string{`expected an operand after '\in'`},
		},
		{
			name:  "unterminated bracket",
			text:  "f(x",
			want:  "f(x)",
			diags: []string{"unterminated '('"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, diags := ParseText(tt.text, token.Pos{})
			if expr == nil {
				t.Fatal("expression must never be nil")
			}

			if got := Format(expr); got != tt.want {
				t.Errorf("expected '%s' but got '%s'", tt.want, got)
			}

			if len(diags) != len(tt.diags) {
				t.Fatalf("expected diagnostics %v but got %v", tt.diags, diags)
			}

			for i, d := range diags {
				if d.Message != tt.diags[i] {
					t.Errorf("expected '%s' but got '%s'", tt.diags[i], d.Message)
				}
			}
		})
	}
}

func TestParseShapes(t *testing.T) {
	expr, diags := ParseText(`X is \something`, token.Pos{})
	if len(diags) != 0 {
		t.Fatal(diags)
	}

	is, ok := expr.(*IsExpression)
	if !ok {
		t.Fatalf("expected an is expression but got %T", expr)
	}

	if len(is.Lhs) != 1 || is.Lhs[0].(*Name).Text != "X" {
		t.Errorf("unexpected left side %v", is.Lhs)
	}

	expr, diags = ParseText(`\f(a,b)`, token.Pos{})
	if len(diags) != 0 {
		t.Fatal(diags)
	}

	cmd, ok := expr.(*CommandExpression)
	if !ok {
		t.Fatalf("expected a command but got %T", expr)
	}

	if len(cmd.Names) != 1 || cmd.Names[0].Text != "f" || len(cmd.Paren) != 2 {
		t.Errorf("unexpected command %s", Format(cmd))
	}

	if cmd.Curly != nil || cmd.Square != nil {
		t.Errorf("absent parameter groups must be nil")
	}

	expr, _ = ParseText("a + b * c", token.Pos{})

	mul, ok := expr.(*InfixExpression)
	if !ok || mul.Operator.Text != "*" {
		t.Fatalf("expected the last operator on top but got %s", Format(expr))
	}

	if add, ok := mul.Lhs.(*InfixExpression); !ok || add.Operator.Text != "+" {
		t.Errorf("expected a left associative fold but got %s", Format(mul.Lhs))
	}

	expr, _ = ParseText("X is Y is Z", token.Pos{})

	outer := expr.(*IsExpression)
	if _, ok := outer.Rhs[0].(*IsExpression); !ok || outer.Lhs[0].(*Name).Text != "X" {
		t.Errorf("expected the right side to be split again but got %T", outer.Rhs[0])
	}
}

func TestParsePositions(t *testing.T) {
	origin := token.Pos{Row: 2, Col: 6}

	expr, diags := ParseText("x in f(y)", origin)
	if len(diags) != 0 {
		t.Fatal(diags)
	}

	in := expr.(*InExpression)
	if in.Begin() != origin {
		t.Errorf("unexpected position %v", in.Begin())
	}

	call := in.Rhs[0].(*FunctionCall)
	if call.Begin() != (token.Pos{Row: 2, Col: 11}) || call.Args[0].Begin() != (token.Pos{Row: 2, Col: 13}) {
		t.Errorf("unexpected positions %v %v", call.Begin(), call.Args[0].Begin())
	}

	_, diags = ParseText("x y", origin)
	if len(diags) != 1 || diags[0].Pos() != (token.Pos{Row: 2, Col: 8}) || diags[0].Origin != token.TexTalkParser {
		t.Errorf("unexpected diagnostics %v", diags)
	}
}

func TestParseTextUnrecognized(t *testing.T) {
	_, diags := ParseText(`x is \a € b`, token.Pos{})
	if len(diags) == 0 {
		t.Fatal("expected diagnostics")
	}

	d := diags[0]
	if d.Origin != token.TexTalkLexer || d.Pos() != (token.Pos{Col: 8}) || d.Message != "unrecognized token '€'" {
		t.Fatalf("unexpected diagnostic %v", d)
	}
}
