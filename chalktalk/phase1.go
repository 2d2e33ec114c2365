// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package chalktalk

import "github.com/golangee/mlg/token"

// Root is the phase-1 tree of a whole input: a list of top-level groups.
type Root struct {
	Groups []*Group
}

// Group is an optional id followed by one or more sections. Sections are kept in
// source order. The parser does not know anything about section names.
type Group struct {
	Id       *Token
	Sections []*Section
	Pos      token.Pos
}

// FirstSection returns the name of the first section, which identifies the kind
// of a group, or the empty string.
func (g *Group) FirstSection() string {
	if len(g.Sections) == 0 {
		return ""
	}

	return g.Sections[0].Name
}

// Section is a 'name:' header with its arguments.
type Section struct {
	Name string
	Args []*Argument
	Pos  token.Pos
}

// Argument wraps exactly one of Token, Group or Form.
type Argument struct {
	Token *Token
	Group *Group
	Form  Form
	Pos   token.Pos
}

// Form is one of the common argument shapes: *Name, *Function, *Sequence,
// *Tuple, *Set, *Abstraction or *Assignment.
type Form interface {
	Begin() token.Pos
	formNode()
}

// Name is a plain identifier like x, optionally variadic (x...).
type Name struct {
	Text     string
	Variadic bool
	Pos      token.Pos
}

// Function is a call form like f(x, y).
type Function struct {
	Name   *Name
	Params []Form
	Pos    token.Pos
}

// Sequence is an indexed form like x_{i} or f_{i}(x).
type Sequence struct {
	Name   *Name
	Index  []Form
	Params []Form
	Pos    token.Pos
}

// Tuple is a parenthesized list like (a, b).
type Tuple struct {
	Items []Form
	Pos   token.Pos
}

// Set is a braced list like {a, b}.
type Set struct {
	Items []Form
	Pos   token.Pos
}

// Abstraction is a braced list with parameters like {x_{i}}_{i}. Variadic is
// set for a trailing ..., as in {x_{i}}_{i}...
type Abstraction struct {
	Items    []Form
	Params   []Form
	Variadic bool
	Pos      token.Pos
}

// Assignment binds a name to a value like X := (A, B).
type Assignment struct {
	Name  *Name
	Value *Argument
	Pos   token.Pos
}

func (n *Name) Begin() token.Pos        { return n.Pos }
func (n *Function) Begin() token.Pos    { return n.Pos }
func (n *Sequence) Begin() token.Pos    { return n.Pos }
func (n *Tuple) Begin() token.Pos       { return n.Pos }
func (n *Set) Begin() token.Pos         { return n.Pos }
func (n *Abstraction) Begin() token.Pos { return n.Pos }
func (n *Assignment) Begin() token.Pos  { return n.Pos }

func (*Name) formNode()        {}
func (*Function) formNode()    {}
func (*Sequence) formNode()    {}
func (*Tuple) formNode()       {}
func (*Set) formNode()         {}
func (*Abstraction) formNode() {}
func (*Assignment) formNode()  {}
