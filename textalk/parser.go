// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package textalk

import (
	"fmt"

	"github.com/golangee/mlg/token"
)

// ParseText runs the lexer, the splitter and the parser on the body of a statement.
// origin is the position of the first character of text in the document. The
// returned expression is never nil.
func ParseText(text string, origin token.Pos) (Expression, token.Diagnostics) {
	tokens, diags := Lex(text, origin)
	tree, splitDiags := Split(tokens, origin)
	expr, parseDiags := Parse(tree)

	diags = append(diags, splitDiags...)
	diags = append(diags, parseDiags...)

	return expr, diags
}

// Parse converts the tree of Split into an expression. Problems are reported as
// diagnostics and the broken parts are left out or replaced by *Empty.
func Parse(tree TreeNode) (Expression, token.Diagnostics) {
	p := &parser{}
	expr := p.top(tree)

	return expr, p.diags
}

type parser struct {
	diags token.Diagnostics
}

// item is an expression which was recognized in a unit, before operators are folded.
type item struct {
	expr Expression
	// operator is set for symbol operators, which may be prefix, infix or postfix.
	operator *OperatorName
	// infix is set for commands written as an operator, like \in/.
	infix bool
}

func (p *parser) top(node TreeNode) Expression {
	switch n := node.(type) {
	case *SplitTreeNode:
		return p.split(n)
	case *ListTreeNode:
		exprs := p.unitsOf(n)

		switch len(exprs) {
		case 0:
			return &Empty{Pos: n.Pos}
		case 1:
			return exprs[0]
		default:
			return &ListExpression{Items: exprs, Pos: exprs[0].Begin()}
		}
	case *UnitTreeNode:
		return p.unit(n)
	default:
		return p.unit(&UnitTreeNode{Children: []TreeNode{node}, Pos: node.Begin()})
	}
}

// expressions returns the expressions of one side of a split or of a bracket.
func (p *parser) expressions(node TreeNode) []Expression {
	switch n := node.(type) {
	case *SplitTreeNode:
		return []Expression{p.split(n)}
	case *ListTreeNode:
		return p.unitsOf(n)
	default:
		return []Expression{p.top(node)}
	}
}

func (p *parser) unitsOf(list *ListTreeNode) []Expression {
	var res []Expression

	for _, child := range list.Children {
		unit, ok := child.(*UnitTreeNode)
		if !ok {
			unit = &UnitTreeNode{Children: []TreeNode{child}, Pos: child.Begin()}
		}

		res = append(res, p.unit(unit))
	}

	return res
}

func (p *parser) unit(u *UnitTreeNode) Expression {
	if len(u.Children) == 0 {
		p.diag(u.Pos, "expected an expression")
		return &Empty{Pos: u.Pos}
	}

	var items []item

	for i := 0; i < len(u.Children); {
		it, next := p.item(u.Children, i)
		if it != nil {
			items = append(items, *it)
		}

		i = next
	}

	return p.fold(items, u.Pos)
}

// split builds the relational expression of a split node and checks the legality
// of both sides.
func (p *parser) split(n *SplitTreeNode) Expression {
	op := n.Center.Text
	pos := n.Begin()

	switch n.Center.Type {
	case TokenIs:
		lhs := p.targets(n.Lhs, op)
		rhs := p.side(n.Rhs, op, "right")

		for _, e := range rhs {
			switch e.(type) {
			case *CommandExpression, *TypeLiteral, *Empty:
			default:
				p.diag(e.Begin(), "the right side of 'is' must be commands or types")
			}
		}

		return &IsExpression{Lhs: lhs, Rhs: rhs, Pos: pos}
	case TokenIn:
		return &InExpression{Lhs: p.targets(n.Lhs, op), Rhs: p.side(n.Rhs, op, "right"), Pos: pos}
	case TokenNotIn:
		return &NotInExpression{Lhs: p.targets(n.Lhs, op), Rhs: p.side(n.Rhs, op, "right"), Pos: pos}
	case TokenEquals:
		return &EqualsExpression{Lhs: p.side(n.Lhs, op, "left"), Rhs: p.side(n.Rhs, op, "right"), Pos: pos}
	case TokenNotEquals:
		return &NotEqualsExpression{Lhs: p.side(n.Lhs, op, "left"), Rhs: p.side(n.Rhs, op, "right"), Pos: pos}
	case TokenColonEquals:
		lhs := p.single(n.Lhs, op, "left")
		if !isTarget(lhs) {
			p.diag(lhs.Begin(), "the left side of ':=' must be a single target")
		}

		return &ColonEqualsExpression{Lhs: lhs, Rhs: p.single(n.Rhs, op, "right"), Pos: pos}
	case TokenAs:
		rhs := p.single(n.Rhs, op, "right")

		switch rhs.(type) {
		case *CommandExpression, *Empty:
		default:
			p.diag(rhs.Begin(), "the right side of 'as' must be a command")
		}

		return &AsExpression{Lhs: p.single(n.Lhs, op, "left"), Rhs: rhs, Pos: pos}
	default:
		p.diag(n.Center.Pos, fmt.Sprintf("unexpected item '%s'", op))
		return &Empty{Pos: n.Center.Pos}
	}
}

// side parses one side of a relation, which must not be empty.
func (p *parser) side(node TreeNode, op, which string) []Expression {
	exprs := p.expressions(node)
	if len(exprs) == 0 {
		p.diag(node.Begin(), fmt.Sprintf("the %s side of '%s' is empty", which, op))
	}

	return exprs
}

// single parses a side of a relation which holds exactly one expression.
func (p *parser) single(node TreeNode, op, which string) Expression {
	exprs := p.side(node, op, which)

	switch len(exprs) {
	case 0:
		return &Empty{Pos: node.Begin()}
	case 1:
		return exprs[0]
	default:
		p.diag(exprs[1].Begin(), fmt.Sprintf("the %s side of '%s' must be a single expression", which, op))
		return exprs[0]
	}
}

// targets parses the left side of is, in and notin.
func (p *parser) targets(node TreeNode, op string) []Expression {
	exprs := p.side(node, op, "left")

	for _, e := range exprs {
		if !isTarget(e) {
			p.diag(e.Begin(), fmt.Sprintf("the left side of '%s' must be targets", op))
		}
	}

	return exprs
}

// isTarget checks if e can be introduced by a relation: names, calls of names and
// tuples of those.
func isTarget(e Expression) bool {
	switch n := e.(type) {
	case *Name, *VariadicName, *Empty:
		return true
	case *FunctionCall:
		return allNames(n.Args)
	case *SequenceCall:
		return allNames(n.Index) && allNames(n.Args)
	case *Tuple:
		for _, item := range n.Items {
			if !isTarget(item) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func allNames(exprs []Expression) bool {
	for _, e := range exprs {
		switch e.(type) {
		case *Name, *VariadicName:
		default:
			return false
		}
	}

	return true
}

// item recognizes the expression starting at nodes[i] and returns the index after it.
// A nil item was reported.
func (p *parser) item(nodes []TreeNode, i int) (*item, int) {
	switch n := nodes[i].(type) {
	case *ParenTreeNode:
		switch n.Prefix.Type {
		case TokenLParen:
			return &item{expr: p.paren(n)}, i + 1
		case TokenLCurly:
			return &item{expr: &Set{Items: p.content(n), Pos: n.Prefix.Pos}}, i + 1
		default:
			p.diag(n.Prefix.Pos, fmt.Sprintf("unexpected item '%s'", n.Prefix.Text))
			return nil, i + 1
		}
	case *AtomTreeNode:
		tok := n.Token

		switch tok.Type {
		case TokenBackslash:
			return p.command(nodes, i)
		case TokenName:
			return p.name(nodes, i)
		case TokenOperator, TokenCaret:
			op := &OperatorName{Text: tok.Text, Pos: tok.Pos}
			return &item{expr: op, operator: op}, i + 1
		case TokenTypeKeyword, TokenStatementKeyword, TokenExpressionKeyword:
			return &item{expr: &TypeLiteral{Text: tok.Text, Pos: tok.Pos}}, i + 1
		default:
			p.diag(tok.Pos, fmt.Sprintf("unexpected item '%s'", tok.Text))
			return nil, i + 1
		}
	default:
		p.diag(n.Begin(), "unexpected item")
		return nil, i + 1
	}
}

// paren is (a) or a tuple (a, b).
func (p *parser) paren(n *ParenTreeNode) Expression {
	grouped := Group(n.Content)
	exprs := p.expressions(grouped)

	if list, ok := grouped.(*ListTreeNode); ok && len(list.Children) == 1 && len(exprs) == 1 {
		return &Grouping{Expr: exprs[0], Pos: n.Prefix.Pos}
	}

	if _, ok := grouped.(*SplitTreeNode); ok {
		return &Grouping{Expr: exprs[0], Pos: n.Prefix.Pos}
	}

	return &Tuple{Items: exprs, Pos: n.Prefix.Pos}
}

// content returns the expressions within a bracket. The result is never nil, so a
// given but empty bracket can be told apart from a missing one.
func (p *parser) content(n *ParenTreeNode) []Expression {
	exprs := p.expressions(Group(n.Content))
	if exprs == nil {
		exprs = []Expression{}
	}

	return exprs
}

// name is x, x..., f(x), x_{i}, x_(i) or f_{i}(x).
func (p *parser) name(nodes []TreeNode, i int) (*item, int) {
	tok := nodes[i].(*AtomTreeNode).Token
	name := &Name{Text: tok.Text, Pos: tok.Pos}

	if atomAt(nodes, i+1, TokenDotDotDot) != nil {
		return &item{expr: &VariadicName{Name: name, Pos: name.Pos}}, i + 2
	}

	if paren := parenAt(nodes, i+1, TokenLParen); paren != nil {
		return &item{expr: &FunctionCall{Name: name, Args: p.content(paren), Pos: name.Pos}}, i + 2
	}

	if under := atomAt(nodes, i+1, TokenUnderscore); under != nil {
		index := parenAt(nodes, i+2, TokenLCurly, TokenLParen)
		if index == nil {
			p.diag(under.Token.Pos, "expected '{' or '(' after '_'")
			return &item{expr: name}, i + 2
		}

		seq := &SequenceCall{Name: name, Index: p.content(index), Pos: name.Pos}
		j := i + 3

		if args := parenAt(nodes, j, TokenLParen); args != nil {
			seq.Args = p.content(args)
			j++
		}

		return &item{expr: seq}, j
	}

	return &item{expr: name}, i + 1
}

// command is \a.b followed by its optional parameter groups and an optional
// trailing / which makes it an infix operator.
func (p *parser) command(nodes []TreeNode, i int) (*item, int) {
	slash := nodes[i].(*AtomTreeNode).Token
	cmd := &CommandExpression{Pos: slash.Pos}
	j := i + 1
	last := slash.End()

	for {
		if j >= len(nodes) {
			p.diag(last, "expected a command name")
			return nil, j
		}

		atom, ok := nodes[j].(*AtomTreeNode)
		if !ok || !(atom.Token.Type == TokenName || atom.Token.Type.IsKeyword()) {
			p.diag(nodes[j].Begin(), "expected a command name")
			return nil, j
		}

		cmd.Names = append(cmd.Names, &Name{Text: atom.Token.Text, Pos: atom.Token.Pos})
		last = atom.Token.End()
		j++

		if period := atomAt(nodes, j, TokenPeriod); period != nil {
			last = period.Token.End()
			j++

			continue
		}

		break
	}

	if square := parenAt(nodes, j, TokenLSquare, TokenLSquareColon); square != nil {
		cmd.Square = p.content(square)
		cmd.SquareColon = square.Prefix.Type == TokenLSquareColon
		last = end(square)
		j++
	}

	if atomAt(nodes, j, TokenUnderscore) != nil {
		if sub := parenAt(nodes, j+1, TokenLCurly); sub != nil {
			cmd.Subscript = p.content(sub)
			last = end(sub)
			j += 2
		}
	}

	if atomAt(nodes, j, TokenCaret) != nil {
		if sup := parenAt(nodes, j+1, TokenLCurly); sup != nil {
			cmd.Superscript = p.content(sup)
			last = end(sup)
			j += 2
		}
	}

	if curly := parenAt(nodes, j, TokenLCurly); curly != nil {
		cmd.Curly = p.content(curly)
		last = end(curly)
		j++
	}

	for atomAt(nodes, j, TokenColon) != nil {
		if curly := parenAt(nodes, j+1, TokenLCurly); curly != nil {
			cmd.ColonCurly = append(cmd.ColonCurly, p.content(curly))
			last = end(curly)
			j += 2

			continue
		}

		if name := atomAt(nodes, j+1, TokenName); name != nil {
			if curly := parenAt(nodes, j+2, TokenLCurly); curly != nil {
				cmd.Named = append(cmd.Named, &NamedParameter{
					Name:   &Name{Text: name.Token.Text, Pos: name.Token.Pos},
					Params: p.content(curly),
					Pos:    nodes[j].Begin(),
				})
				last = end(curly)
				j += 3

				continue
			}
		}

		break
	}

	if paren := parenAt(nodes, j, TokenLParen); paren != nil {
		cmd.Paren = p.content(paren)
		last = end(paren)
		j++
	}

	it := &item{expr: cmd}

	if op := atomAt(nodes, j, TokenOperator); op != nil && op.Token.Text == "/" && op.Token.Pos == last {
		it.infix = true
		j++
	}

	return it, j
}

// fold combines the items of a unit from left to right. Operators in front of an
// operand are prefix operators, an operator behind the last operand is postfix and
// everything else between two operands is infix. A command between two operands
// is used as an infix operator.
func (p *parser) fold(items []item, pos token.Pos) Expression {
	switch len(items) {
	case 0:
		return &Empty{Pos: pos}
	case 1:
		return items[0].expr
	}

	var (
		acc      Expression
		pending  *item
		prefixes []*OperatorName
	)

	expectOperand := true

	for k := range items {
		it := &items[k]

		if expectOperand {
			if it.operator != nil {
				prefixes = append(prefixes, it.operator)
				continue
			}

			operand := it.expr
			for j := len(prefixes) - 1; j >= 0; j-- {
				operand = &PrefixExpression{Operator: prefixes[j], Arg: operand, Pos: prefixes[j].Pos}
			}

			prefixes = nil

			if pending != nil {
				acc = infix(pending, acc, operand)
				pending = nil
			} else {
				acc = operand
			}

			expectOperand = false

			continue
		}

		switch {
		case it.operator != nil:
			if !operandFollows(items, k+1) {
				acc = &PostfixExpression{Operator: it.operator, Arg: acc, Pos: acc.Begin()}
				continue
			}

			pending = it
			expectOperand = true
		case it.infix:
			pending = it
			expectOperand = true
		case isCommand(it.expr) && k+1 < len(items) && items[k+1].operator == nil:
			pending = it
			expectOperand = true
		default:
			p.diag(it.expr.Begin(), fmt.Sprintf("unexpected item '%s'", Format(it.expr)))
		}
	}

	if expectOperand {
		switch {
		case pending != nil:
			p.diag(pending.expr.Begin(), fmt.Sprintf("expected an operand after '%s'", Format(pending.expr)))
		case len(prefixes) > 0:
			last := prefixes[len(prefixes)-1]
			p.diag(last.Pos, fmt.Sprintf("expected an operand after '%s'", last.Text))
		}
	}

	if acc == nil {
		return &Empty{Pos: pos}
	}

	return acc
}

func infix(op *item, lhs, rhs Expression) Expression {
	if op.operator != nil {
		return &InfixExpression{Operator: op.operator, Lhs: lhs, Rhs: rhs, Pos: lhs.Begin()}
	}

	return &InfixCommandExpression{Command: op.expr.(*CommandExpression), Lhs: lhs, Rhs: rhs, Pos: lhs.Begin()}
}

func operandFollows(items []item, k int) bool {
	for ; k < len(items); k++ {
		if items[k].operator == nil {
			return true
		}
	}

	return false
}

func isCommand(e Expression) bool {
	_, ok := e.(*CommandExpression)
	return ok
}

// atomAt returns nodes[i] if it is an atom of one of the given types.
func atomAt(nodes []TreeNode, i int, types ...TokenType) *AtomTreeNode {
	if i >= len(nodes) {
		return nil
	}

	atom, ok := nodes[i].(*AtomTreeNode)
	if !ok || !contains(types, atom.Token.Type) {
		return nil
	}

	return atom
}

// parenAt returns nodes[i] if it is a bracket opened by one of the given types.
func parenAt(nodes []TreeNode, i int, types ...TokenType) *ParenTreeNode {
	if i >= len(nodes) {
		return nil
	}

	paren, ok := nodes[i].(*ParenTreeNode)
	if !ok || !contains(types, paren.Prefix.Type) {
		return nil
	}

	return paren
}

// end returns the position behind a bracket. Unterminated brackets end nowhere.
func end(paren *ParenTreeNode) token.Pos {
	if paren.Suffix == nil {
		return token.NoPos
	}

	return paren.Suffix.End()
}

func (p *parser) diag(pos token.Pos, msg string) {
	p.diags = append(p.diags, token.NewError(token.TexTalkParser, pos, msg))
}
