// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package textalk

import (
	"fmt"

	"github.com/golangee/mlg/token"
)

// TokenType identifies the kind of a TexTalk Token. The values double as the
// rule names of the lexer definition.
type TokenType string

const (
	TokenBackslash         TokenType = "Backslash"
	TokenLParen            TokenType = "LParen"
	TokenRParen            TokenType = "RParen"
	TokenLSquare           TokenType = "LSquare"
	TokenRSquare           TokenType = "RSquare"
	TokenLCurly            TokenType = "LCurly"
	TokenRCurly            TokenType = "RCurly"
	TokenLSquareColon      TokenType = "LSquareColon"
	TokenColonRSquare      TokenType = "ColonRSquare"
	TokenColon             TokenType = "Colon"
	TokenColonEquals       TokenType = "ColonEquals"
	TokenComma             TokenType = "Comma"
	TokenPeriod            TokenType = "Period"
	TokenDotDotDot         TokenType = "DotDotDot"
	TokenUnderscore        TokenType = "Underscore"
	TokenCaret             TokenType = "Caret"
	TokenIs                TokenType = "Is"
	TokenIn                TokenType = "In"
	TokenNotIn             TokenType = "NotIn"
	TokenAs                TokenType = "As"
	TokenEquals            TokenType = "Equals"
	TokenNotEquals         TokenType = "NotEquals"
	TokenName              TokenType = "Name"
	TokenOperator          TokenType = "Operator"
	TokenTypeKeyword       TokenType = "TypeKeyword"
	TokenStatementKeyword  TokenType = "StatementKeyword"
	TokenExpressionKeyword TokenType = "ExpressionKeyword"
)

// A Token is a single lexical element of a TexTalk statement.
type Token struct {
	Type TokenType
	Text string
	// Pos is absolute within the document the statement was taken from.
	Pos token.Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Type, t.Text)
}

// End returns the position directly behind the token, assuming it does not span lines.
func (t Token) End() token.Pos {
	return token.Pos{Row: t.Pos.Row, Col: t.Pos.Col + len([]rune(t.Text))}
}

// IsKeyword returns true for the reserved words, which are lexed like names.
func (t TokenType) IsKeyword() bool {
	switch t {
	case TokenIs, TokenIn, TokenNotIn, TokenAs:
		return true
	default:
		return false
	}
}
