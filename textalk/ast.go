// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package textalk

import (
	"strings"

	"github.com/golangee/mlg/token"
)

// Expression is a node of a parsed TexTalk statement. Unlike the document nodes,
// expressions carry their own position.
type Expression interface {
	Begin() token.Pos
	exprNode()
}

type Name struct {
	Text string
	Pos  token.Pos
}

// OperatorName is a symbol run like + or <=, used as an operator or on its own.
type OperatorName struct {
	Text string
	Pos  token.Pos
}

// VariadicName is x...
type VariadicName struct {
	Name *Name
	Pos  token.Pos
}

// TypeLiteral is one of :Type:, :Statement: or :Expression:.
type TypeLiteral struct {
	Text string
	Pos  token.Pos
}

// FunctionCall is f(x, y).
type FunctionCall struct {
	Name *Name
	Args []Expression
	Pos  token.Pos
}

// SequenceCall is x_{i}, x_(i) or f_{i}(x).
type SequenceCall struct {
	Name  *Name
	Index []Expression
	Args  []Expression
	Pos   token.Pos
}

// CommandExpression is \a.b with its optional parameter groups in the order
// [...] _{...} ^{...} {...} :{...}... :name{...}... (...). A group which is nil
// was not given.
type CommandExpression struct {
	Names       []*Name
	Square      []Expression
	SquareColon bool
	Subscript   []Expression
	Superscript []Expression
	Curly       []Expression
	ColonCurly  [][]Expression
	Named       []*NamedParameter
	Paren       []Expression
	Pos         token.Pos
}

// Signature returns the name part of the command like \a.b.
func (c *CommandExpression) Signature() string {
	names := make([]string, 0, len(c.Names))
	for _, n := range c.Names {
		names = append(names, n.Text)
	}

	return `\` + strings.Join(names, ".")
}

// NamedParameter is :name{...} behind a command.
type NamedParameter struct {
	Name   *Name
	Params []Expression
	Pos    token.Pos
}

type Tuple struct {
	Items []Expression
	Pos   token.Pos
}

// Grouping is a single parenthesized expression.
type Grouping struct {
	Expr Expression
	Pos  token.Pos
}

type Set struct {
	Items []Expression
	Pos   token.Pos
}

type InfixExpression struct {
	Operator *OperatorName
	Lhs      Expression
	Rhs      Expression
	Pos      token.Pos
}

// InfixCommandExpression uses a command as an operator, like x \in/ A.
type InfixCommandExpression struct {
	Command *CommandExpression
	Lhs     Expression
	Rhs     Expression
	Pos     token.Pos
}

type PrefixExpression struct {
	Operator *OperatorName
	Arg      Expression
	Pos      token.Pos
}

type PostfixExpression struct {
	Operator *OperatorName
	Arg      Expression
	Pos      token.Pos
}

type IsExpression struct {
	Lhs []Expression
	Rhs []Expression
	Pos token.Pos
}

type InExpression struct {
	Lhs []Expression
	Rhs []Expression
	Pos token.Pos
}

type NotInExpression struct {
	Lhs []Expression
	Rhs []Expression
	Pos token.Pos
}

type AsExpression struct {
	Lhs Expression
	Rhs Expression
	Pos token.Pos
}

type EqualsExpression struct {
	Lhs []Expression
	Rhs []Expression
	Pos token.Pos
}

type NotEqualsExpression struct {
	Lhs []Expression
	Rhs []Expression
	Pos token.Pos
}

type ColonEqualsExpression struct {
	Lhs Expression
	Rhs Expression
	Pos token.Pos
}

// ListExpression is a statement of several comma separated expressions.
type ListExpression struct {
	Items []Expression
	Pos   token.Pos
}

// Empty stands in for a missing or broken expression.
type Empty struct {
	Pos token.Pos
}

func (n *Name) Begin() token.Pos                   { return n.Pos }
func (n *OperatorName) Begin() token.Pos           { return n.Pos }
func (n *VariadicName) Begin() token.Pos           { return n.Pos }
func (n *TypeLiteral) Begin() token.Pos            { return n.Pos }
func (n *FunctionCall) Begin() token.Pos           { return n.Pos }
func (n *SequenceCall) Begin() token.Pos           { return n.Pos }
func (n *CommandExpression) Begin() token.Pos      { return n.Pos }
func (n *NamedParameter) Begin() token.Pos         { return n.Pos }
func (n *Tuple) Begin() token.Pos                  { return n.Pos }
func (n *Grouping) Begin() token.Pos               { return n.Pos }
func (n *Set) Begin() token.Pos                    { return n.Pos }
func (n *InfixExpression) Begin() token.Pos        { return n.Pos }
func (n *InfixCommandExpression) Begin() token.Pos { return n.Pos }
func (n *PrefixExpression) Begin() token.Pos       { return n.Pos }
func (n *PostfixExpression) Begin() token.Pos      { return n.Pos }
func (n *IsExpression) Begin() token.Pos           { return n.Pos }
func (n *InExpression) Begin() token.Pos           { return n.Pos }
func (n *NotInExpression) Begin() token.Pos        { return n.Pos }
func (n *AsExpression) Begin() token.Pos           { return n.Pos }
func (n *EqualsExpression) Begin() token.Pos       { return n.Pos }
func (n *NotEqualsExpression) Begin() token.Pos    { return n.Pos }
func (n *ColonEqualsExpression) Begin() token.Pos  { return n.Pos }
func (n *ListExpression) Begin() token.Pos         { return n.Pos }
func (n *Empty) Begin() token.Pos                  { return n.Pos }

func (*Name) exprNode()                   {}
func (*OperatorName) exprNode()           {}
func (*VariadicName) exprNode()           {}
func (*TypeLiteral) exprNode()            {}
func (*FunctionCall) exprNode()           {}
func (*SequenceCall) exprNode()           {}
func (*CommandExpression) exprNode()      {}
func (*NamedParameter) exprNode()         {}
func (*Tuple) exprNode()                  {}
func (*Grouping) exprNode()               {}
func (*Set) exprNode()                    {}
func (*InfixExpression) exprNode()        {}
func (*InfixCommandExpression) exprNode() {}
func (*PrefixExpression) exprNode()       {}
func (*PostfixExpression) exprNode()      {}
func (*IsExpression) exprNode()           {}
func (*InExpression) exprNode()           {}
func (*NotInExpression) exprNode()        {}
func (*AsExpression) exprNode()           {}
func (*EqualsExpression) exprNode()       {}
func (*NotEqualsExpression) exprNode()    {}
func (*ColonEqualsExpression) exprNode()  {}
func (*ListExpression) exprNode()         {}
func (*Empty) exprNode()                  {}
