// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package textalk

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer/stateful"
	"github.com/golangee/mlg/token"
)

const (
	// sName is alphanumeric with a single optional suffix like x_1 or a_bc.
	sName = `[a-zA-Z0-9]+(_[a-zA-Z0-9]+)?`

	// sOperator is a run of symbol characters with the same optional suffix rule.
	sOperator = `[~!@#$%&*+\-=|<>?/;]+(_[a-zA-Z0-9]+)?`
)

// definition is immutable after init and shared by all calls to Lex.
var definition = stateful.MustSimple([]stateful.Rule{
	{Name: "whitespace", Pattern: `\s+`},

	{Name: string(TokenTypeKeyword), Pattern: `:Type:`},
	{Name: string(TokenStatementKeyword), Pattern: `:Statement:`},
	{Name: string(TokenExpressionKeyword), Pattern: `:Expression:`},
	{Name: string(TokenColonEquals), Pattern: `:=`},
	{Name: string(TokenLSquareColon), Pattern: `\[:`},
	{Name: string(TokenColonRSquare), Pattern: `:\]`},
	{Name: string(TokenColon), Pattern: `:`},
	{Name: string(TokenDotDotDot), Pattern: `\.\.\.`},
	{Name: string(TokenPeriod), Pattern: `\.`},
	{Name: string(TokenBackslash), Pattern: `\\`},
	{Name: string(TokenLParen), Pattern: `\(`},
	{Name: string(TokenRParen), Pattern: `\)`},
	{Name: string(TokenLSquare), Pattern: `\[`},
	{Name: string(TokenRSquare), Pattern: `\]`},
	{Name: string(TokenLCurly), Pattern: `\{`},
	{Name: string(TokenRCurly), Pattern: `\}`},
	{Name: string(TokenComma), Pattern: `,`},
	{Name: string(TokenCaret), Pattern: `\^`},
	{Name: string(TokenName), Pattern: sName},
	{Name: string(TokenUnderscore), Pattern: `_`},
	{Name: string(TokenOperator), Pattern: sOperator},

	{Name: "Unrecognized", Pattern: `.`},
})

// symbolNames maps the token types of the definition back to the rule names.
var symbolNames = invert(definition.Symbols())

func invert[K comparable, V comparable](m map[K]V) map[V]K {
	res := make(map[V]K, len(m))
	for k, v := range m {
		res[v] = k
	}

	return res
}

// Lex tokenizes the body of a statement, without its quotes. origin is the
// position of the first character of text within the document, so all
// returned positions are absolute.
func Lex(text string, origin token.Pos) ([]Token, token.Diagnostics) {
	var (
		tokens []Token
		diags  token.Diagnostics
	)

	lex, err := definition.Lex("", strings.NewReader(text))
	if err != nil {
		diags = append(diags, token.NewError(token.TexTalkLexer, origin, err.Error()))
		return nil, diags
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			diags = append(diags, token.NewError(token.TexTalkLexer, origin, err.Error()))
			return tokens, diags
		}

		if tok.EOF() {
			return tokens, diags
		}

		pos := absolute(origin, tok.Pos.Line, tok.Pos.Column)
		name := symbolNames[tok.Type]

		if name == "Unrecognized" {
			diags = append(diags, token.NewError(token.TexTalkLexer, pos, fmt.Sprintf("unrecognized token '%s'", tok.Value)))
			continue
		}

		tt := TokenType(name)
		if !afterCommandPart(tokens) {
			tt = classify(tt, tok.Value)
		}

		tokens = append(tokens, Token{Type: tt, Text: tok.Value, Pos: pos})
	}
}

// classify picks out the reserved words from names and the relations from operators.
func classify(tt TokenType, text string) TokenType {
	switch tt {
	case TokenName:
		switch text {
		case "is":
			return TokenIs
		case "in":
			return TokenIn
		case "notin":
			return TokenNotIn
		case "as":
			return TokenAs
		}
	case TokenOperator:
		switch text {
		case "=":
			return TokenEquals
		case "!=":
			return TokenNotEquals
		}
	}

	return tt
}

// afterCommandPart checks if the next token is part of a command name like \in or
// \set.in or a named parameter like :as{...}. Those are never reserved words.
func afterCommandPart(tokens []Token) bool {
	if len(tokens) == 0 {
		return false
	}

	switch tokens[len(tokens)-1].Type {
	case TokenBackslash, TokenPeriod, TokenColon:
		return true
	default:
		return false
	}
}

// absolute converts the one-based line and column of the lexer into a document position.
func absolute(origin token.Pos, line, column int) token.Pos {
	if line <= 1 {
		return token.Pos{Row: origin.Row, Col: origin.Col + column - 1}
	}

	return token.Pos{Row: origin.Row + line - 1, Col: column - 1}
}
