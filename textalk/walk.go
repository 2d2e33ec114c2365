// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package textalk

// Inspect traverses e in depth-first order. It calls f(e) and, if f returns
// true, continues with the sub expressions of e.
func Inspect(e Expression, f func(Expression) bool) {
	if e == nil || !f(e) {
		return
	}

	switch n := e.(type) {
	case *Name, *OperatorName, *TypeLiteral, *Empty:
	case *VariadicName:
		Inspect(n.Name, f)
	case *FunctionCall:
		Inspect(n.Name, f)
		inspectList(n.Args, f)
	case *SequenceCall:
		Inspect(n.Name, f)
		inspectList(n.Index, f)
		inspectList(n.Args, f)
	case *CommandExpression:
		for _, name := range n.Names {
			Inspect(name, f)
		}

		inspectList(n.Square, f)
		inspectList(n.Subscript, f)
		inspectList(n.Superscript, f)
		inspectList(n.Curly, f)

		for _, c := range n.ColonCurly {
			inspectList(c, f)
		}

		for _, p := range n.Named {
			Inspect(p, f)
		}

		inspectList(n.Paren, f)
	case *NamedParameter:
		Inspect(n.Name, f)
		inspectList(n.Params, f)
	case *Tuple:
		inspectList(n.Items, f)
	case *Grouping:
		Inspect(n.Expr, f)
	case *Set:
		inspectList(n.Items, f)
	case *InfixExpression:
		Inspect(n.Lhs, f)
		Inspect(n.Operator, f)
		Inspect(n.Rhs, f)
	case *InfixCommandExpression:
		Inspect(n.Lhs, f)
		Inspect(n.Command, f)
		Inspect(n.Rhs, f)
	case *PrefixExpression:
		Inspect(n.Operator, f)
		Inspect(n.Arg, f)
	case *PostfixExpression:
		Inspect(n.Arg, f)
		Inspect(n.Operator, f)
	case *IsExpression:
		inspectList(n.Lhs, f)
		inspectList(n.Rhs, f)
	case *InExpression:
		inspectList(n.Lhs, f)
		inspectList(n.Rhs, f)
	case *NotInExpression:
		inspectList(n.Lhs, f)
		inspectList(n.Rhs, f)
	case *EqualsExpression:
		inspectList(n.Lhs, f)
		inspectList(n.Rhs, f)
	case *NotEqualsExpression:
		inspectList(n.Lhs, f)
		inspectList(n.Rhs, f)
	case *AsExpression:
		Inspect(n.Lhs, f)
		Inspect(n.Rhs, f)
	case *ColonEqualsExpression:
		Inspect(n.Lhs, f)
		Inspect(n.Rhs, f)
	case *ListExpression:
		inspectList(n.Items, f)
	}
}

func inspectList(exprs []Expression, f func(Expression) bool) {
	for _, e := range exprs {
		Inspect(e, f)
	}
}
