// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package chalktalk

import (
	"fmt"
	"testing"

	"github.com/golangee/mlg/token"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *TestSet
		// diags lists the expected diagnostic messages in order.
		diags []string
	}{
		{
			name: "empty",
			text: "",
			want: NewTestSet(),
		},

		{
			name: "blank lines",
			text: "\n\n   \n",
			want: NewTestSet(),
		},

		{
			name: "sections and bullet",
			text: "Theorem:\nthen:\n. 'x'\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("Theorem").Colon().EndSection().
				BeginSection().Name("then").Colon().
				BeginArgument().Statement("x").EndArgument().
				EndSection().
				EndGroup(),
		},

		{
			name: "no trailing newline",
			text: "Theorem:\nthen: 'x'",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("Theorem").Colon().EndSection().
				BeginSection().Name("then").Colon().Statement("x").EndSection().
				EndGroup(),
		},

		{
			name: "nested group",
			text: "Theorem:\nthen:\n. exists: x\n  suchThat: 'x'\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("Theorem").Colon().EndSection().
				BeginSection().Name("then").Colon().
				BeginArgument().
				BeginGroup().
				BeginSection().Name("exists").Colon().Name("x").EndSection().
				BeginSection().Name("suchThat").Colon().Statement("x").EndSection().
				EndGroup().
				EndArgument().
				EndSection().
				EndGroup(),
		},

		{
			name: "bullets of a nested group",
			text: "States:\nthat:\n. and:\n  . 'a'\n  . 'b'\n. 'c'\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("States").Colon().EndSection().
				BeginSection().Name("that").Colon().
				BeginArgument().
				BeginGroup().
				BeginSection().Name("and").Colon().
				BeginArgument().Statement("a").EndArgument().
				BeginArgument().Statement("b").EndArgument().
				EndSection().
				EndGroup().
				EndArgument().
				BeginArgument().Statement("c").EndArgument().
				EndSection().
				EndGroup(),
		},

		{
			name: "ids and blank line separated groups",
			text: "[\\a.b]\nDefines: X\nmeans: 'x'\n\nNote:\ncontent: \"y\"\n",
			want: NewTestSet().
				BeginGroup().
				Id(`\a.b`).
				BeginSection().Name("Defines").Colon().Name("X").EndSection().
				BeginSection().Name("means").Colon().Statement("x").EndSection().
				EndGroup().
				BeginGroup().
				BeginSection().Name("Note").Colon().EndSection().
				BeginSection().Name("content").Colon().Text("y").EndSection().
				EndGroup(),
		},

		{
			name: "id line starts the next group",
			text: "[a]\nNote:\n[b]\nNote:\n",
			want: NewTestSet().
				BeginGroup().Id("a").BeginSection().Name("Note").Colon().EndSection().EndGroup().
				BeginGroup().Id("b").BeginSection().Name("Note").Colon().EndSection().EndGroup(),
		},

		{
			name: "nested brackets in id",
			text: "[\\set[x]{a}]\nNote:\n",
			want: NewTestSet().
				BeginGroup().Id(`\set[x]{a}`).BeginSection().Name("Note").Colon().EndSection().EndGroup(),
		},

		{
			name: "inline forms",
			text: "Defines: f(x, y), X := (A, B), a_{i}, x...\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("Defines").Colon().
				Name("f").Punct(TokenLParen).Name("x").Comma().Name("y").Punct(TokenRParen).Comma().
				Name("X").Punct(TokenColonEquals).Punct(TokenLParen).Name("A").Comma().Name("B").Punct(TokenRParen).Comma().
				Name("a").Punct(TokenUnderscore).Punct(TokenLCurly).Name("i").Punct(TokenRCurly).Comma().
				Name("x").Punct(TokenDotDotDot).
				EndSection().
				EndGroup(),
		},

		{
			name: "quote kinds",
			text: "Topic:\ncontent: ``a'b``, `b`, \"c\"\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("Topic").Colon().EndSection().
				BeginSection().Name("content").Colon().Literal("a'b").Comma().Statement("b").Comma().Text("c").EndSection().
				EndGroup(),
		},

		{
			name: "colon inside statement is not a header",
			text: "Theorem:\nthen: 'f: A -> B'\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("Theorem").Colon().EndSection().
				BeginSection().Name("then").Colon().Statement("f: A -> B").EndSection().
				EndGroup(),
		},

		{
			name: "unexpected indentation",
			text: "Theorem:\n   then: 'x'\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("Theorem").Colon().EndSection().
				EndGroup(),
			diags: []string{"unexpected indentation"},
		},

		{
			name: "continuation deeper than the bullet content",
			text: "Theorem:\nthen:\n. exists: x\n   suchThat: 'x'\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("Theorem").Colon().EndSection().
				BeginSection().Name("then").Colon().
				BeginArgument().
				BeginGroup().
				BeginSection().Name("exists").Colon().Name("x").EndSection().
				EndGroup().
				EndArgument().
				EndSection().
				EndGroup(),
			diags: []string{"unexpected indentation"},
		},

		{
			name: "unterminated statement",
			text: "Theorem:\nthen: 'x\nwhere: 'y'\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("Theorem").Colon().EndSection().
				BeginSection().Name("then").Colon().Statement("x").EndSection().
				BeginSection().Name("where").Colon().Statement("y").EndSection().
				EndGroup(),
			diags: []string{"unterminated statement"},
		},

		{
			name: "tab in indentation",
			text: "Theorem:\n\tthen:\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("Theorem").Colon().EndSection().
				EndGroup(),
			diags: []string{"tabs are not allowed in indentation", "unexpected indentation"},
		},

		{
			name: "unrecognized character",
			text: "then: 'x' $\n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("then").Colon().Statement("x").EndSection().
				EndGroup(),
			diags: []string{"unrecognized character '$'"},
		},

		{
			name:  "argument outside of a section",
			text:  ". 'x'\n",
			want:  NewTestSet(),
			diags: []string{"argument outside of a section"},
		},

		{
			name: "empty bullet",
			text: "and:\n.  \n",
			want: NewTestSet().
				BeginGroup().
				BeginSection().Name("and").Colon().EndSection().
				EndGroup(),
			diags: []string{"expected an argument after '. '"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diags := Lex(tt.text)
			tt.want.Assert(tokens, t)

			if len(diags) != len(tt.diags) {
				t.Fatalf("expected %d diagnostics but got %d: %v", len(tt.diags), len(diags), diags)
			}

			for i, d := range diags {
				if d.Message != tt.diags[i] {
					t.Errorf("diagnostic %d: expected '%s' but got '%s'", i, tt.diags[i], d.Message)
				}

				if d.Origin != token.StructuralLexer {
					t.Errorf("diagnostic %d: unexpected origin %v", i, d.Origin)
				}
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens, diags := Lex("[x]\nTheorem:\nthen:\n. 'a'\n")
	if len(diags) != 0 {
		t.Fatal(diags)
	}

	want := map[TokenType]token.Pos{
		TokenId:        {Row: 0, Col: 0},
		TokenStatement: {Row: 3, Col: 2},
	}

	for _, tok := range tokens {
		if pos, ok := want[tok.Type]; ok && pos != tok.Pos {
			t.Errorf("%v: expected position %v but got %v", tok, pos, tok.Pos)
		}

		if tok.Type == TokenStatement && tok.ContentPos() != (token.Pos{Row: 3, Col: 3}) {
			t.Errorf("unexpected content position %v", tok.ContentPos())
		}

		if tok.Type == TokenName && tok.Text == "then" && tok.Pos != (token.Pos{Row: 2}) {
			t.Errorf("unexpected header position %v", tok.Pos)
		}
	}
}

// TestLexerBalanced checks that markers are balanced even for broken input.
func TestLexerBalanced(t *testing.T) {
	inputs := []string{
		"Theorem:\nthen:\n. exists: x\n      where: 'y'\n  suchThat:\n. 'z\n",
		"   Theorem:\n. . .\n[unterminated\n",
		"a:\n. b:\n  . c:\n    . d: 'e'\n",
		"\t\t'x' ' '\n...\n",
	}

	pairs := map[TokenType]TokenType{
		TokenEndGroup:    TokenBeginGroup,
		TokenEndSection:  TokenBeginSection,
		TokenEndArgument: TokenBeginArgument,
	}

	for _, input := range inputs {
		tokens, _ := Lex(input)

		var stack []TokenType

		for _, tok := range tokens {
			switch tok.Type {
			case TokenBeginGroup, TokenBeginSection, TokenBeginArgument:
				stack = append(stack, tok.Type)
			case TokenEndGroup, TokenEndSection, TokenEndArgument:
				if len(stack) == 0 || stack[len(stack)-1] != pairs[tok.Type] {
					t.Fatalf("%q: unbalanced %v in %v", input, tok, tokens)
				}

				stack = stack[:len(stack)-1]
			}
		}

		if len(stack) != 0 {
			t.Fatalf("%q: unclosed markers %v", input, stack)
		}
	}
}

// test utils

type TestSet struct {
	checker []func(t Token) error
}

func NewTestSet() *TestSet {
	return &TestSet{}
}

func (ts *TestSet) tok(tt TokenType, text string) *TestSet {
	ts.checker = append(ts.checker, func(t Token) error {
		if t.Type != tt {
			return fmt.Errorf("%s: unexpected token %v", tt, t)
		}

		if !tt.IsMarker() && t.Text != text {
			return fmt.Errorf("%s: expected '%s' but got '%s'", tt, text, t.Text)
		}

		return nil
	})

	return ts
}

func (ts *TestSet) Name(value string) *TestSet {
	return ts.tok(TokenName, value)
}

func (ts *TestSet) Statement(value string) *TestSet {
	return ts.tok(TokenStatement, value)
}

func (ts *TestSet) Text(value string) *TestSet {
	return ts.tok(TokenText, value)
}

func (ts *TestSet) Literal(value string) *TestSet {
	return ts.tok(TokenLiteral, value)
}

func (ts *TestSet) Id(value string) *TestSet {
	return ts.tok(TokenId, value)
}

func (ts *TestSet) Colon() *TestSet {
	return ts.tok(TokenColon, ":")
}

func (ts *TestSet) Comma() *TestSet {
	return ts.tok(TokenComma, ",")
}

// Punct checks a punctuation token whose text is fixed by its type.
func (ts *TestSet) Punct(tt TokenType) *TestSet {
	texts := map[TokenType]string{
		TokenLParen:      "(",
		TokenRParen:      ")",
		TokenLCurly:      "{",
		TokenRCurly:      "}",
		TokenColonEquals: ":=",
		TokenUnderscore:  "_",
		TokenDotDotDot:   "...",
	}

	return ts.tok(tt, texts[tt])
}

func (ts *TestSet) BeginGroup() *TestSet    { return ts.tok(TokenBeginGroup, "") }
func (ts *TestSet) EndGroup() *TestSet      { return ts.tok(TokenEndGroup, "") }
func (ts *TestSet) BeginSection() *TestSet  { return ts.tok(TokenBeginSection, "") }
func (ts *TestSet) EndSection() *TestSet    { return ts.tok(TokenEndSection, "") }
func (ts *TestSet) BeginArgument() *TestSet { return ts.tok(TokenBeginArgument, "") }
func (ts *TestSet) EndArgument() *TestSet   { return ts.tok(TokenEndArgument, "") }

func (ts *TestSet) Assert(tokens []Token, t *testing.T) {
	t.Helper()

	if len(ts.checker) != len(tokens) {
		t.Fatalf("expected %d tokens but got %d: %v", len(ts.checker), len(tokens), tokens)
	}

	for i, tok := range tokens {
		if err := ts.checker[i](tok); err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
	}
}
