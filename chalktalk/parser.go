// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package chalktalk

import (
	"github.com/golangee/mlg/token"
)

// Parser builds the phase-1 tree from the marker token stream of the Lexer.
// Like the Lexer it never stops at the first problem: a failed argument is
// reported once and parsing resumes at the next comma or marker of the same depth.
type Parser struct {
	tokens []Token
	offset int
	diags  token.Diagnostics
}

// NewParser creates a parser over the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the phase-1 tree of tokens.
func Parse(tokens []Token) (*Root, token.Diagnostics) {
	return NewParser(tokens).Parse()
}

// ParseString lexes and parses src. Diagnostics of both stages are returned in the
// order they were reported.
func ParseString(src string) (*Root, token.Diagnostics) {
	tokens, lexDiags := Lex(src)
	root, parseDiags := Parse(tokens)

	return root, append(lexDiags, parseDiags...)
}

// Parse returns the parsed tree. The tree is never nil.
func (p *Parser) Parse() (*Root, token.Diagnostics) {
	root := &Root{}

	for !p.eof() {
		tok := p.peek()
		if tok.Type == TokenBeginGroup {
			root.Groups = append(root.Groups, p.group())
			continue
		}

		p.unexpected(tok, TokenBeginGroup)
		p.next()
	}

	return root, p.diags
}

// group parses BeginGroup [Id] section+ EndGroup.
func (p *Parser) group() *Group {
	begin := p.next()
	g := &Group{Pos: begin.Pos}

	if p.peek().Type == TokenId {
		id := p.next()
		g.Id = &id
	}

loop:
	for !p.eof() {
		tok := p.peek()

		switch tok.Type {
		case TokenBeginSection:
			if s := p.section(); s != nil {
				g.Sections = append(g.Sections, s)
			}
		case TokenEndGroup:
			p.next()
			break loop
		default:
			p.unexpected(tok, TokenBeginSection, TokenEndGroup)
			p.skip()
		}
	}

	if len(g.Sections) == 0 {
		p.diag(g.Pos, "group has no sections")
	}

	return g
}

// section parses BeginSection Name Colon [arg (Comma arg)*] (BeginArgument arg EndArgument)* EndSection.
func (p *Parser) section() *Section {
	p.next() // BeginSection

	name := p.peek()
	if name.Type != TokenName {
		p.unexpected(name, TokenName)
		p.skipTo(TokenEndSection)
		p.next()

		return nil
	}

	p.next()

	if tok := p.peek(); tok.Type != TokenColon {
		p.unexpected(tok, TokenColon)
		p.skipTo(TokenEndSection)
		p.next()

		return nil
	}

	p.next()

	s := &Section{Name: name.Text, Pos: name.Pos}

	// inline arguments
	for {
		tok := p.peek()
		if tok.Type.IsMarker() || p.eof() {
			break
		}

		if arg := p.argument(); arg != nil {
			s.Args = append(s.Args, arg)
		} else {
			p.recover()
		}

		tok = p.peek()

		switch {
		case tok.Type == TokenComma:
			p.next()

			if next := p.peek(); next.Type.IsMarker() || p.eof() {
				p.unexpected(next, TokenName, TokenStatement, TokenText)
			}
		case tok.Type.IsMarker() || p.eof():
		default:
			p.unexpected(tok, TokenComma)
			p.recover()
		}
	}

	// bulleted arguments
	for !p.eof() {
		tok := p.peek()

		switch tok.Type {
		case TokenEndSection:
			p.next()
			return s
		case TokenBeginArgument:
			if arg := p.bullet(); arg != nil {
				s.Args = append(s.Args, arg)
			}
		default:
			p.unexpected(tok, TokenBeginArgument, TokenEndSection)
			p.skip()
		}
	}

	return s
}

// bullet parses BeginArgument (group | arg) EndArgument.
func (p *Parser) bullet() *Argument {
	begin := p.next()

	var arg *Argument

	switch tok := p.peek(); tok.Type {
	case TokenBeginGroup:
		g := p.group()
		arg = &Argument{Group: g, Pos: g.Pos}
	case TokenEndArgument:
		p.diag(begin.Pos, "expected an argument")
	default:
		arg = p.argument()
	}

	if tok := p.peek(); tok.Type != TokenEndArgument {
		if arg != nil {
			p.diag(tok.Pos, "an argument bullet holds exactly one argument")
		}

		p.skipTo(TokenEndArgument)
	}

	p.next()

	return arg
}

// argument parses a single quoted token or a form. It returns nil after reporting
// a problem.
func (p *Parser) argument() *Argument {
	tok := p.peek()

	switch tok.Type {
	case TokenStatement, TokenText, TokenLiteral:
		p.next()
		return &Argument{Token: &tok, Pos: tok.Pos}
	}

	f := p.form()
	if f == nil {
		return nil
	}

	return &Argument{Form: f, Pos: f.Begin()}
}

// form parses one of the common forms.
func (p *Parser) form() Form {
	tok := p.peek()

	switch tok.Type {
	case TokenName:
		return p.nameForm()
	case TokenLParen:
		items, ok := p.list(TokenLParen, TokenRParen)
		if !ok {
			return nil
		}

		return &Tuple{Items: items, Pos: tok.Pos}
	case TokenLCurly:
		items, ok := p.list(TokenLCurly, TokenRCurly)
		if !ok {
			return nil
		}

		if p.peek().Type == TokenUnderscore {
			return p.abstraction(items, tok.Pos)
		}

		return &Set{Items: items, Pos: tok.Pos}
	default:
		p.unexpected(tok, TokenName, TokenStatement, TokenText, TokenLiteral, TokenLParen, TokenLCurly)
		return nil
	}
}

// nameForm parses a name and whatever may follow it: a variadic suffix, an index,
// parameters or an assignment.
func (p *Parser) nameForm() Form {
	tok := p.next()
	name := &Name{Text: tok.Text, Pos: tok.Pos}

	if p.peek().Type == TokenDotDotDot {
		p.next()
		name.Variadic = true
	}

	switch p.peek().Type {
	case TokenColonEquals:
		p.next()

		value := p.argument()
		if value == nil {
			return nil
		}

		return &Assignment{Name: name, Value: value, Pos: name.Pos}
	case TokenUnderscore:
		p.next()

		if next := p.peek(); next.Type != TokenLCurly {
			p.unexpected(next, TokenLCurly)
			return nil
		}

		index, ok := p.list(TokenLCurly, TokenRCurly)
		if !ok {
			return nil
		}

		seq := &Sequence{Name: name, Index: index, Pos: name.Pos}

		if p.peek().Type == TokenLParen {
			params, ok := p.list(TokenLParen, TokenRParen)
			if !ok {
				return nil
			}

			seq.Params = params
		}

		return seq
	case TokenLParen:
		params, ok := p.list(TokenLParen, TokenRParen)
		if !ok {
			return nil
		}

		return &Function{Name: name, Params: params, Pos: name.Pos}
	default:
		return name
	}
}

// abstraction parses the Underscore {params} [DotDotDot] tail behind a braced list.
func (p *Parser) abstraction(items []Form, pos token.Pos) Form {
	p.next() // Underscore

	if next := p.peek(); next.Type != TokenLCurly {
		p.unexpected(next, TokenLCurly)
		return nil
	}

	params, ok := p.list(TokenLCurly, TokenRCurly)
	if !ok {
		return nil
	}

	abs := &Abstraction{Items: items, Params: params, Pos: pos}

	if p.peek().Type == TokenDotDotDot {
		p.next()
		abs.Variadic = true
	}

	return abs
}

// list parses open [form (Comma form)*] close.
func (p *Parser) list(open, close TokenType) ([]Form, bool) {
	p.next() // open

	var items []Form

	if p.peek().Type == close {
		p.next()
		return items, true
	}

	for {
		f := p.form()
		if f == nil {
			return nil, false
		}

		items = append(items, f)

		tok := p.peek()

		switch tok.Type {
		case TokenComma:
			p.next()
		case close:
			p.next()
			return items, true
		default:
			p.unexpected(tok, TokenComma, close)
			return nil, false
		}
	}
}

// recover skips tokens until a comma outside of brackets or any marker.
func (p *Parser) recover() {
	depth := 0

	for !p.eof() {
		tok := p.peek()
		if tok.Type.IsMarker() {
			return
		}

		switch tok.Type {
		case TokenLParen, TokenLCurly:
			depth++
		case TokenRParen, TokenRCurly:
			if depth > 0 {
				depth--
			}
		case TokenComma:
			if depth == 0 {
				return
			}
		}

		p.next()
	}
}

// skip drops the next token. A begin marker is dropped with everything up to its
// balancing end marker.
func (p *Parser) skip() {
	tok := p.next()

	var end TokenType

	switch tok.Type {
	case TokenBeginGroup:
		end = TokenEndGroup
	case TokenBeginSection:
		end = TokenEndSection
	case TokenBeginArgument:
		end = TokenEndArgument
	default:
		return
	}

	p.skipTo(end)
	p.next()
}

// skipTo drops tokens until the next token of type tt on the current nesting level.
func (p *Parser) skipTo(tt TokenType) {
	for !p.eof() {
		tok := p.peek()
		if tok.Type == tt {
			return
		}

		p.skip()
	}
}

func (p *Parser) unexpected(tok Token, expected ...TokenType) {
	pos := tok.Pos
	if p.eof() && len(p.tokens) > 0 {
		pos = p.tokens[len(p.tokens)-1].Pos
	}

	p.diag(pos, NewUnexpectedTokenError(tok, expected...).Error())
}

func (p *Parser) diag(pos token.Pos, msg string) {
	p.diags = append(p.diags, token.NewError(token.StructuralParser, pos, msg))
}

func (p *Parser) eof() bool {
	return p.offset >= len(p.tokens)
}

// peek returns the next token without consuming it or the zero Token at the end.
func (p *Parser) peek() Token {
	if p.eof() {
		return Token{}
	}

	return p.tokens[p.offset]
}

// next consumes the next token. At the end of input it returns the zero Token.
func (p *Parser) next() Token {
	tok := p.peek()
	if !p.eof() {
		p.offset++
	}

	return tok
}
