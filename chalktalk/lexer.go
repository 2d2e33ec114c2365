// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package chalktalk

import (
	"bytes"
	"fmt"

	"github.com/golangee/mlg/token"
)

// frame is an open group. Sections of the group start at col and so do the
// bullets of its arguments.
type frame struct {
	col         int
	sectionOpen bool
	argOpen     bool
}

// Lexer converts ChalkTalk source into a flat stream of tokens. Groups, sections and
// arguments are not delimited by characters but by indentation, so the Lexer emits
// balanced Begin/End marker tokens for them.
//
// A Lexer is used for a single input and is not safe for concurrent use.
type Lexer struct {
	src    []rune
	offset int
	// pos is the position of the rune that would be read next by nextR.
	pos    token.Pos
	tokens []Token
	diags  token.Diagnostics
	frames []*frame
}

// NewLexer creates a new instance, ready to start lexing.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// Lex tokenizes src. It never fails; problems are returned as diagnostics and
// lexing always continues with the next line.
func Lex(src string) ([]Token, token.Diagnostics) {
	return NewLexer(src).Run()
}

// Run tokenizes the whole input.
func (l *Lexer) Run() ([]Token, token.Diagnostics) {
	for !l.eof() {
		l.line()
	}

	l.closeAll(l.pos)

	return l.tokens, l.diags
}

// line handles exactly one source line, including its terminating newline.
func (l *Lexer) line() {
	l.indentation()

	if l.eof() {
		return
	}

	if l.peekR() == '\n' {
		// A blank line ends the current top-level group.
		l.closeAll(l.pos)
		l.nextR()

		return
	}

	col := l.pos.Col
	start := l.pos

	for len(l.frames) > 0 && col < l.top().col {
		l.closeFrame(start)
	}

	if len(l.frames) == 0 {
		l.topLevelLine(start)
		return
	}

	top := l.top()
	if col > top.col {
		l.skipLine(start, "unexpected indentation")
		return
	}

	switch {
	case l.peekR() == '.' && l.peekAt(1) == '.' && l.peekAt(2) == '.':
		l.skipLine(start, "expected a section or an argument")
	case l.peekR() == '.':
		l.bullet(top)
	case l.isHeader():
		if top.argOpen {
			l.marker(TokenEndArgument, start)
			top.argOpen = false
		}

		if top.sectionOpen {
			l.marker(TokenEndSection, start)
		}

		l.marker(TokenBeginSection, start)
		top.sectionOpen = true
		l.header()
		l.inline()
	case l.peekR() == '[' && len(l.frames) == 1:
		// An id directly after another group starts the next top-level group.
		l.closeAll(start)
		l.topLevelLine(start)
	default:
		l.skipLine(start, "expected a section or an argument")
	}
}

// topLevelLine handles a line while no group is open.
func (l *Lexer) topLevelLine(start token.Pos) {
	if start.Col != 0 {
		l.skipLine(start, "unexpected indentation")
		return
	}

	switch {
	case l.peekR() == '[':
		l.marker(TokenBeginGroup, start)
		l.frames = append(l.frames, &frame{col: 0})
		l.tokens = append(l.tokens, l.readId())
		l.expectLineEnd()
	case l.isHeader():
		l.marker(TokenBeginGroup, start)
		l.marker(TokenBeginSection, start)
		l.frames = append(l.frames, &frame{col: 0, sectionOpen: true})
		l.header()
		l.inline()
	case l.peekR() == '.':
		l.skipLine(start, "argument outside of a section")
	default:
		l.skipLine(start, "expected a section or an id")
	}
}

// bullet handles a '. ' prefixed argument line of the innermost group.
func (l *Lexer) bullet(top *frame) {
	start := l.pos

	if l.peekAt(1) != ' ' {
		l.skipLine(start, "expected a space after '.'")
		return
	}

	if !top.sectionOpen {
		l.skipLine(start, "argument outside of a section")
		return
	}

	if top.argOpen {
		l.marker(TokenEndArgument, start)
	}

	l.nextR()
	l.skipBlanks()

	if l.eof() || l.peekR() == '\n' {
		top.argOpen = false
		l.diag(start, "expected an argument after '. '")
		l.inline()

		return
	}

	l.marker(TokenBeginArgument, start)
	top.argOpen = true

	if l.isHeader() {
		content := l.pos
		l.marker(TokenBeginGroup, content)
		l.marker(TokenBeginSection, content)
		l.frames = append(l.frames, &frame{col: content.Col, sectionOpen: true})
		l.header()
	}

	l.inline()
}

// header reads 'name:' at the current position. isHeader must have been checked.
func (l *Lexer) header() {
	l.name()

	start := l.pos
	l.nextR()
	l.emit(TokenColon, ":", start)
}

// inline reads the tokens of the rest of the line and consumes the line end.
func (l *Lexer) inline() {
	for {
		l.skipBlanks()

		if l.eof() {
			return
		}

		r := l.peekR()
		start := l.pos

		switch {
		case r == '\n':
			l.nextR()
			return
		case r == '\'':
			l.quoted(TokenStatement, "'", "statement")
		case r == '`' && l.peekAt(1) == '`':
			l.quoted(TokenLiteral, "``", "literal")
		case r == '`':
			l.quoted(TokenStatement, "`", "statement")
		case r == '"':
			l.quoted(TokenText, `"`, "text")
		case r == '[':
			l.diag(start, "an id must be on its own line")
			l.readId()
		case r == ':' && l.peekAt(1) == '=':
			l.nextR()
			l.nextR()
			l.emit(TokenColonEquals, ":=", start)
		case r == '.' && l.peekAt(1) == '.' && l.peekAt(2) == '.':
			l.nextR()
			l.nextR()
			l.nextR()
			l.emit(TokenDotDotDot, "...", start)
		case r == '(':
			l.single(TokenLParen)
		case r == ')':
			l.single(TokenRParen)
		case r == '{':
			l.single(TokenLCurly)
		case r == '}':
			l.single(TokenRCurly)
		case r == ',':
			l.single(TokenComma)
		case r == '_':
			l.single(TokenUnderscore)
		case isNameRune(r):
			l.name()
		default:
			l.nextR()
			l.diag(start, fmt.Sprintf("unrecognized character '%c'", r))
		}
	}
}

// single emits the next rune as a token of the given type.
func (l *Lexer) single(tt TokenType) {
	start := l.pos
	r := l.nextR()
	l.emit(tt, string(r), start)
}

// name reads a run of name runes.
func (l *Lexer) name() {
	start := l.pos

	var tmp bytes.Buffer

	for !l.eof() && isNameRune(l.peekR()) {
		tmp.WriteRune(l.nextR())
	}

	l.emit(TokenName, tmp.String(), start)
}

// quoted reads a token enclosed in delim. The token must be closed on the same line,
// otherwise it ends with the line.
func (l *Lexer) quoted(tt TokenType, delim string, what string) {
	start := l.pos

	for range delim {
		l.nextR()
	}

	closed := l.find(delim)

	var tmp bytes.Buffer

	if closed < 0 {
		l.diag(start, "unterminated "+what)

		for !l.eof() && l.peekR() != '\n' {
			tmp.WriteRune(l.nextR())
		}

		l.emit(tt, tmp.String(), start)

		return
	}

	for l.offset < closed {
		tmp.WriteRune(l.nextR())
	}

	for range delim {
		l.nextR()
	}

	l.emit(tt, tmp.String(), start)
}

// readId reads a '[...]' group id. Nested square brackets are balanced.
func (l *Lexer) readId() Token {
	start := l.pos
	l.nextR()

	depth := 1

	var tmp bytes.Buffer

	for !l.eof() && l.peekR() != '\n' {
		r := l.nextR()

		switch r {
		case '[':
			depth++
		case ']':
			depth--
		}

		if depth == 0 {
			return Token{Type: TokenId, Text: tmp.String(), Pos: start}
		}

		tmp.WriteRune(r)
	}

	l.diag(start, "unterminated id")

	return Token{Type: TokenId, Text: tmp.String(), Pos: start}
}

// expectLineEnd consumes the rest of the line, which must be blank.
func (l *Lexer) expectLineEnd() {
	l.skipBlanks()

	if l.eof() {
		return
	}

	if l.peekR() != '\n' {
		l.skipLine(l.pos, "unexpected content after id")
		return
	}

	l.nextR()
}

// skipLine reports msg and drops everything up to and including the next newline.
func (l *Lexer) skipLine(pos token.Pos, msg string) {
	l.diag(pos, msg)

	for !l.eof() {
		if l.nextR() == '\n' {
			return
		}
	}
}

// indentation consumes the leading blanks of a line.
func (l *Lexer) indentation() {
	for !l.eof() {
		switch l.peekR() {
		case ' ', '\r':
			l.nextR()
		case '\t':
			l.diag(l.pos, "tabs are not allowed in indentation")
			l.nextR()
		default:
			return
		}
	}
}

// skipBlanks skips spaces, tabs and carriage returns but never a newline.
func (l *Lexer) skipBlanks() {
	for !l.eof() {
		switch l.peekR() {
		case ' ', '\t', '\r':
			l.nextR()
		default:
			return
		}
	}
}

// isHeader checks if the input continues with 'name:' followed by a blank or a line end.
func (l *Lexer) isHeader() bool {
	i := l.offset
	if i >= len(l.src) || !isLetter(l.src[i]) {
		return false
	}

	for i < len(l.src) && isNameRune(l.src[i]) {
		i++
	}

	if i >= len(l.src) || l.src[i] != ':' {
		return false
	}

	i++

	return i >= len(l.src) || l.src[i] == ' ' || l.src[i] == '\n' || l.src[i] == '\r'
}

// find returns the offset of the next occurrence of delim on the current line or -1.
func (l *Lexer) find(delim string) int {
	d := []rune(delim)

	for i := l.offset; i+len(d) <= len(l.src) && l.src[i] != '\n'; i++ {
		match := true

		for j, r := range d {
			if l.src[i+j] != r {
				match = false
				break
			}
		}

		if match {
			return i
		}
	}

	return -1
}

func (l *Lexer) top() *frame {
	return l.frames[len(l.frames)-1]
}

// closeFrame closes the innermost group, including its open argument and section.
func (l *Lexer) closeFrame(pos token.Pos) {
	f := l.top()
	if f.argOpen {
		l.marker(TokenEndArgument, pos)
	}

	if f.sectionOpen {
		l.marker(TokenEndSection, pos)
	}

	l.marker(TokenEndGroup, pos)
	l.frames = l.frames[:len(l.frames)-1]
}

func (l *Lexer) closeAll(pos token.Pos) {
	for len(l.frames) > 0 {
		l.closeFrame(pos)
	}
}

func (l *Lexer) marker(tt TokenType, pos token.Pos) {
	l.tokens = append(l.tokens, Token{Type: tt, Pos: pos})
}

func (l *Lexer) emit(tt TokenType, text string, pos token.Pos) {
	l.tokens = append(l.tokens, Token{Type: tt, Text: text, Pos: pos})
}

func (l *Lexer) diag(pos token.Pos, msg string) {
	l.diags = append(l.diags, token.NewError(token.StructuralLexer, pos, msg))
}

func (l *Lexer) eof() bool {
	return l.offset >= len(l.src)
}

// nextR reads the next rune and updates the position.
func (l *Lexer) nextR() rune {
	r := l.src[l.offset]
	l.offset++
	l.pos = l.pos.Advance(r)

	return r
}

func (l *Lexer) peekR() rune {
	return l.peekAt(0)
}

// peekAt returns the rune n positions ahead or 0 behind the end of the input.
func (l *Lexer) peekAt(n int) rune {
	if l.offset+n >= len(l.src) {
		return 0
	}

	return l.src[l.offset+n]
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isNameRune is any character of a name: [a-zA-Z0-9].
func isNameRune(r rune) bool {
	return isLetter(r) || (r >= '0' && r <= '9')
}
