// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package textalk

import (
	"fmt"

	"github.com/golangee/mlg/token"
)

// TreeNode is one of *AtomTreeNode, *ParenTreeNode, *ListTreeNode, *SplitTreeNode
// or *UnitTreeNode.
type TreeNode interface {
	Begin() token.Pos
	treeNode()
}

// AtomTreeNode is a single token which is not a bracket.
type AtomTreeNode struct {
	Token Token
}

// ParenTreeNode is a bracketed group. Suffix is nil if the bracket was never closed.
type ParenTreeNode struct {
	Prefix  Token
	Content *ListTreeNode
	Suffix  *Token
}

// ListTreeNode is a sequence of nodes on a single nesting level. Pos is where the
// list would start if it is empty.
type ListTreeNode struct {
	Children []TreeNode
	Pos      token.Pos
}

// SplitTreeNode is a list split at a relational operator.
type SplitTreeNode struct {
	Lhs    TreeNode
	Center Token
	Rhs    TreeNode
}

// UnitTreeNode is a comma separated part of a list. Comma is the terminating
// comma, if any.
type UnitTreeNode struct {
	Children []TreeNode
	Comma    *Token
	Pos      token.Pos
}

func (n *AtomTreeNode) Begin() token.Pos  { return n.Token.Pos }
func (n *ParenTreeNode) Begin() token.Pos { return n.Prefix.Pos }
func (n *ListTreeNode) Begin() token.Pos  { return n.Pos }
func (n *SplitTreeNode) Begin() token.Pos { return n.Lhs.Begin() }
func (n *UnitTreeNode) Begin() token.Pos  { return n.Pos }

func (*AtomTreeNode) treeNode()  {}
func (*ParenTreeNode) treeNode() {}
func (*ListTreeNode) treeNode()  {}
func (*SplitTreeNode) treeNode() {}
func (*UnitTreeNode) treeNode()  {}

// closers maps each opening bracket to its closing bracket.
var closers = map[TokenType]TokenType{
	TokenLParen:       TokenRParen,
	TokenLCurly:       TokenRCurly,
	TokenLSquare:      TokenRSquare,
	TokenLSquareColon: TokenColonRSquare,
}

func isCloser(tt TokenType) bool {
	switch tt {
	case TokenRParen, TokenRCurly, TokenRSquare, TokenColonRSquare:
		return true
	default:
		return false
	}
}

// splitPasses are applied in this order. A pass splits at the leftmost of its operators
// and is applied again to both sides.
var splitPasses = [][]TokenType{
	{TokenIs, TokenIn, TokenNotIn},
	{TokenEquals, TokenNotEquals, TokenColonEquals},
	{TokenAs},
}

// Split builds the top-level tree of tokens: brackets are grouped, the result is
// split at relational operators and the remaining lists are cut into units.
// The contents of brackets are only bracket-grouped, use Group on them.
func Split(tokens []Token, origin token.Pos) (TreeNode, token.Diagnostics) {
	b := &bracketBuilder{tokens: tokens}
	list := b.list(origin, "")

	return Group(list), b.diags
}

// Group applies the split passes and the unit splitting to a bracket-grouped list.
// It never descends into brackets.
func Group(list *ListTreeNode) TreeNode {
	var node TreeNode = list
	for _, ops := range splitPasses {
		node = splitAt(node, ops)
	}

	return units(node)
}

type bracketBuilder struct {
	tokens []Token
	offset int
	// open holds the expected closers of the enclosing brackets.
	open  []TokenType
	diags token.Diagnostics
}

// list collects nodes until the closer or the end of input. The closer is not consumed.
func (b *bracketBuilder) list(pos token.Pos, closer TokenType) *ListTreeNode {
	list := &ListTreeNode{Pos: pos}

	for b.offset < len(b.tokens) {
		tok := b.tokens[b.offset]

		if closer != "" && tok.Type == closer {
			break
		}

		if isCloser(tok.Type) {
			if closer != "" && b.closes(tok.Type) {
				// an outer bracket is closed, so this one is unterminated
				break
			}

			b.offset++
			b.diag(tok.Pos, fmt.Sprintf("unexpected '%s'", tok.Text))

			continue
		}

		b.offset++

		if want, ok := closers[tok.Type]; ok {
			paren := &ParenTreeNode{Prefix: tok}
			b.open = append(b.open, want)
			paren.Content = b.list(tok.End(), want)
			b.open = b.open[:len(b.open)-1]

			if b.offset < len(b.tokens) && b.tokens[b.offset].Type == want {
				suffix := b.tokens[b.offset]
				paren.Suffix = &suffix
				b.offset++
			} else {
				b.diag(tok.Pos, fmt.Sprintf("unterminated '%s'", tok.Text))
			}

			list.Children = append(list.Children, paren)

			continue
		}

		list.Children = append(list.Children, &AtomTreeNode{Token: tok})
	}

	if len(list.Children) > 0 {
		list.Pos = list.Children[0].Begin()
	}

	return list
}

// closes checks if tt would close any bracket which is currently open.
func (b *bracketBuilder) closes(tt TokenType) bool {
	for _, want := range b.open {
		if want == tt {
			return true
		}
	}

	return false
}

func (b *bracketBuilder) diag(pos token.Pos, msg string) {
	b.diags = append(b.diags, token.NewError(token.TexTalkParser, pos, msg))
}

// splitAt splits every list of the tree at the leftmost atom whose type is in ops.
func splitAt(node TreeNode, ops []TokenType) TreeNode {
	switch n := node.(type) {
	case *SplitTreeNode:
		return &SplitTreeNode{
			Lhs:    splitAt(n.Lhs, ops),
			Center: n.Center,
			Rhs:    splitAt(n.Rhs, ops),
		}
	case *ListTreeNode:
		for i, child := range n.Children {
			atom, ok := child.(*AtomTreeNode)
			if !ok || !contains(ops, atom.Token.Type) {
				continue
			}

			lhs := &ListTreeNode{Children: n.Children[:i:i], Pos: n.Pos}
			rhs := &ListTreeNode{Children: n.Children[i+1:], Pos: atom.Token.End()}

			if i+1 < len(n.Children) {
				rhs.Pos = n.Children[i+1].Begin()
			}

			if i == 0 {
				lhs.Pos = atom.Token.Pos
			}

			return &SplitTreeNode{
				Lhs:    splitAt(lhs, ops),
				Center: atom.Token,
				Rhs:    splitAt(rhs, ops),
			}
		}
	}

	return node
}

// units replaces every list of the tree by a list of the comma separated units.
func units(node TreeNode) TreeNode {
	switch n := node.(type) {
	case *SplitTreeNode:
		return &SplitTreeNode{
			Lhs:    units(n.Lhs),
			Center: n.Center,
			Rhs:    units(n.Rhs),
		}
	case *ListTreeNode:
		res := &ListTreeNode{Pos: n.Pos}
		if len(n.Children) == 0 {
			return res
		}

		unit := &UnitTreeNode{Pos: n.Children[0].Begin()}

		for _, child := range n.Children {
			if atom, ok := child.(*AtomTreeNode); ok && atom.Token.Type == TokenComma {
				comma := atom.Token
				unit.Comma = &comma
				res.Children = append(res.Children, unit)
				unit = &UnitTreeNode{Pos: comma.End()}

				continue
			}

			if len(unit.Children) == 0 {
				unit.Pos = child.Begin()
			}

			unit.Children = append(unit.Children, child)
		}

		// after a trailing comma the unit is empty, the parser reports it
		res.Children = append(res.Children, unit)

		return res
	}

	return node
}

func contains(list []TokenType, tt TokenType) bool {
	for _, t := range list {
		if t == tt {
			return true
		}
	}

	return false
}
