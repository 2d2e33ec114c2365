// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package textalk

import (
	"strings"
)

// Format renders an expression in canonical TexTalk. Parsing the result again
// yields an equal expression.
func Format(e Expression) string {
	sb := &strings.Builder{}
	format(sb, e)

	return sb.String()
}

func format(sb *strings.Builder, e Expression) {
	switch n := e.(type) {
	case *Name:
		sb.WriteString(n.Text)
	case *OperatorName:
		sb.WriteString(n.Text)
	case *VariadicName:
		sb.WriteString(n.Name.Text)
		sb.WriteString("...")
	case *TypeLiteral:
		sb.WriteString(n.Text)
	case *FunctionCall:
		sb.WriteString(n.Name.Text)
		list(sb, "(", n.Args, ")")
	case *SequenceCall:
		sb.WriteString(n.Name.Text)
		sb.WriteString("_")
		list(sb, "{", n.Index, "}")

		if n.Args != nil {
			list(sb, "(", n.Args, ")")
		}
	case *CommandExpression:
		sb.WriteString(n.Signature())

		if n.Square != nil {
			if n.SquareColon {
				list(sb, "[:", n.Square, ":]")
			} else {
				list(sb, "[", n.Square, "]")
			}
		}

		if n.Subscript != nil {
			list(sb, "_{", n.Subscript, "}")
		}

		if n.Superscript != nil {
			list(sb, "^{", n.Superscript, "}")
		}

		if n.Curly != nil {
			list(sb, "{", n.Curly, "}")
		}

		for _, params := range n.ColonCurly {
			list(sb, ":{", params, "}")
		}

		for _, named := range n.Named {
			format(sb, named)
		}

		if n.Paren != nil {
			list(sb, "(", n.Paren, ")")
		}
	case *NamedParameter:
		sb.WriteString(":")
		sb.WriteString(n.Name.Text)
		list(sb, "{", n.Params, "}")
	case *Tuple:
		list(sb, "(", n.Items, ")")
	case *Grouping:
		sb.WriteString("(")
		format(sb, n.Expr)
		sb.WriteString(")")
	case *Set:
		list(sb, "{", n.Items, "}")
	case *InfixExpression:
		format(sb, n.Lhs)
		sb.WriteString(" ")
		sb.WriteString(n.Operator.Text)
		sb.WriteString(" ")
		format(sb, n.Rhs)
	case *InfixCommandExpression:
		format(sb, n.Lhs)
		sb.WriteString(" ")
		format(sb, n.Command)
		sb.WriteString("/ ")
		format(sb, n.Rhs)
	case *PrefixExpression:
		sb.WriteString(n.Operator.Text)
		format(sb, n.Arg)
	case *PostfixExpression:
		format(sb, n.Arg)
		sb.WriteString(n.Operator.Text)
	case *IsExpression:
		relation(sb, n.Lhs, "is", n.Rhs)
	case *InExpression:
		relation(sb, n.Lhs, "in", n.Rhs)
	case *NotInExpression:
		relation(sb, n.Lhs, "notin", n.Rhs)
	case *EqualsExpression:
		relation(sb, n.Lhs, "=", n.Rhs)
	case *NotEqualsExpression:
		relation(sb, n.Lhs, "!=", n.Rhs)
	case *AsExpression:
		relation(sb, []Expression{n.Lhs}, "as", []Expression{n.Rhs})
	case *ColonEqualsExpression:
		relation(sb, []Expression{n.Lhs}, ":=", []Expression{n.Rhs})
	case *ListExpression:
		join(sb, n.Items)
	case *Empty:
	}
}

func relation(sb *strings.Builder, lhs []Expression, op string, rhs []Expression) {
	join(sb, lhs)
	sb.WriteString(" ")
	sb.WriteString(op)
	sb.WriteString(" ")
	join(sb, rhs)
}

func list(sb *strings.Builder, open string, items []Expression, close string) {
	sb.WriteString(open)
	join(sb, items)
	sb.WriteString(close)
}

func join(sb *strings.Builder, items []Expression) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}

		format(sb, item)
	}
}
