// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package chalktalk

import (
	"fmt"

	"github.com/golangee/mlg/token"
)

// TokenType identifies the kind of a structural Token.
type TokenType string

const (
	TokenName        TokenType = "Name"
	TokenStatement   TokenType = "Statement"
	TokenText        TokenType = "Text"
	TokenLiteral     TokenType = "Literal"
	TokenId          TokenType = "Id"
	TokenColon       TokenType = "Colon"
	TokenComma       TokenType = "Comma"
	TokenLParen      TokenType = "LParen"
	TokenRParen      TokenType = "RParen"
	TokenLCurly      TokenType = "LCurly"
	TokenRCurly      TokenType = "RCurly"
	TokenColonEquals TokenType = "ColonEquals"
	TokenUnderscore  TokenType = "Underscore"
	TokenDotDotDot   TokenType = "DotDotDot"

	// The following types are synthesized from indentation and carry no text.
	TokenBeginGroup    TokenType = "BeginGroup"
	TokenEndGroup      TokenType = "EndGroup"
	TokenBeginSection  TokenType = "BeginSection"
	TokenEndSection    TokenType = "EndSection"
	TokenBeginArgument TokenType = "BeginArgument"
	TokenEndArgument   TokenType = "EndArgument"
)

// IsMarker returns true for the indentation markers.
func (t TokenType) IsMarker() bool {
	switch t {
	case TokenBeginGroup, TokenEndGroup, TokenBeginSection, TokenEndSection, TokenBeginArgument, TokenEndArgument:
		return true
	default:
		return false
	}
}

// A Token is a single lexical element of the structural grammar.
// For the quoted types Statement, Text, Literal and Id the Text holds the content
// without the surrounding delimiters.
type Token struct {
	Type TokenType
	Text string
	// Pos is the position of the first rune of the token, delimiters included.
	Pos token.Pos
}

func (t Token) String() string {
	if t.Type.IsMarker() {
		return string(t.Type)
	}

	return fmt.Sprintf("%s(%s)", t.Type, t.Text)
}

// ContentPos returns the position of the first rune after an opening delimiter.
// For tokens without delimiters this is the token position.
func (t Token) ContentPos() token.Pos {
	switch t.Type {
	case TokenStatement, TokenText, TokenId:
		return token.Pos{Row: t.Pos.Row, Col: t.Pos.Col + 1}
	case TokenLiteral:
		return token.Pos{Row: t.Pos.Row, Col: t.Pos.Col + 2}
	default:
		return t.Pos
	}
}
