// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package chalktalk

import (
	"fmt"
	"strings"
)

// UnexpectedTokenError describes a token that appeared where the parser did not expect it.
// It provides alternatives for tokens that were expected instead.
type UnexpectedTokenError struct {
	tok      Token
	expected []TokenType
}

// NewUnexpectedTokenError creates a new UnexpectedTokenError.
func NewUnexpectedTokenError(tok Token, expected ...TokenType) UnexpectedTokenError {
	return UnexpectedTokenError{
		tok:      tok,
		expected: expected,
	}
}

func (u UnexpectedTokenError) Error() string {
	var expectedTokens []string

	for _, tt := range u.expected {
		expectedTokens = append(expectedTokens, string(tt))
	}

	// Join the last two elements with an "or" to have a nice looking string.
	if len(expectedTokens) >= 2 {
		joined := fmt.Sprintf("%s or %s",
			expectedTokens[len(expectedTokens)-2],
			expectedTokens[len(expectedTokens)-1],
		)
		expectedTokens = expectedTokens[:len(expectedTokens)-1]
		expectedTokens[len(expectedTokens)-1] = joined
	}

	if len(expectedTokens) == 0 {
		return fmt.Sprintf("unexpected %s", describe(u.tok))
	}

	return fmt.Sprintf("unexpected %s, expected %s", describe(u.tok), strings.Join(expectedTokens, ", "))
}

// describe names a token for messages. Markers are described by the construct they close or open.
func describe(tok Token) string {
	switch tok.Type {
	case TokenBeginGroup:
		return "start of group"
	case TokenEndGroup:
		return "end of group"
	case TokenBeginSection:
		return "start of section"
	case TokenEndSection:
		return "end of section"
	case TokenBeginArgument:
		return "start of argument"
	case TokenEndArgument:
		return "end of argument"
	case "":
		return "end of input"
	default:
		return fmt.Sprintf("%s '%s'", tok.Type, tok.Text)
	}
}
