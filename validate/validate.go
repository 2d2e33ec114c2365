// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package validate turns the generic phase-1 tree into the typed document.
// Each group variant has its own builder which matches the sections of the group
// against a Shape and builds the typed sections one by one. Validation never
// stops at a problem: a section which cannot be built is replaced by its zero
// value, which is never recorded in the tracker.
package validate

import (
	"fmt"

	"github.com/golangee/mlg/ast"
	"github.com/golangee/mlg/chalktalk"
	"github.com/golangee/mlg/textalk"
	"github.com/golangee/mlg/token"
)

type validator struct {
	tracker *ast.Tracker
	diags   token.Diagnostics
}

// Document validates all top-level groups of root. Positions of the built nodes
// are recorded in tracker. Groups of an unknown kind are reported and left out.
func Document(root *chalktalk.Root, tracker *ast.Tracker) (*ast.Document, token.Diagnostics) {
	v := &validator{tracker: tracker}
	doc := &ast.Document{}

	for _, g := range root.Groups {
		if tl := v.topLevel(g); tl != nil {
			doc.Groups = append(doc.Groups, tl)
		}
	}

	return doc, v.diags
}

func (v *validator) record(pos token.Pos) ast.NodeID {
	return v.tracker.Record(pos)
}

func (v *validator) errorf(pos token.Pos, format string, args ...interface{}) {
	v.diags = append(v.diags, token.NewError(token.Validator, pos, fmt.Sprintf(format, args...)))
}

// checkGroup panics for a nil group, which the parser never produces.
func checkGroup(g *chalktalk.Group) {
	if g == nil {
		panic("validate: nil group")
	}
}

// noId reports an id on a group which does not take one.
func (v *validator) noId(g *chalktalk.Group) {
	if g.Id != nil {
		v.errorf(g.Id.Pos, "group '%s' does not take an id", g.FirstSection())
	}
}

// idStatement parses the id of g as TexTalk, if there is one.
func (v *validator) idStatement(g *chalktalk.Group) *ast.IdStatement {
	if g.Id == nil {
		return nil
	}

	id := v.record(g.Id.Pos)
	root, diags := textalk.ParseText(g.Id.Text, g.Id.ContentPos())
	v.diags = append(v.diags, diags...)

	return &ast.IdStatement{ID: id, Text: g.Id.Text, Root: root}
}

// idLabel returns the id of g as a plain label, if there is one.
func (v *validator) idLabel(g *chalktalk.Group) *ast.IdLabel {
	if g.Id == nil {
		return nil
	}

	return &ast.IdLabel{ID: v.record(g.Id.Pos), Text: g.Id.Text}
}

// count reports a section whose amount of arguments is not within min and max.
// A negative max means unbounded. It returns false if the count was wrong.
func (v *validator) count(sec *chalktalk.Section, min, max int) bool {
	n := len(sec.Args)

	switch {
	case max == 0 && n > 0:
		v.errorf(sec.Pos, "section '%s' does not take arguments", sec.Name)
	case min == max && n != min:
		v.errorf(sec.Pos, "section '%s' expects exactly %s", sec.Name, plural(min, "argument"))
	case n < min:
		v.errorf(sec.Pos, "section '%s' expects at least %s", sec.Name, plural(min, "argument"))
	case max > 0 && n > max:
		v.errorf(sec.Pos, "section '%s' expects at most %s", sec.Name, plural(max, "argument"))
	default:
		return true
	}

	return false
}

func plural(n int, what string) string {
	if n == 1 {
		return "one " + what
	}

	return fmt.Sprintf("%d %ss", n, what)
}

// statement builds a statement from a quoted token and parses its TexTalk content.
func (v *validator) statement(tok *chalktalk.Token) *ast.Statement {
	id := v.record(tok.Pos)
	root, diags := textalk.ParseText(tok.Text, tok.ContentPos())
	v.diags = append(v.diags, diags...)

	return &ast.Statement{ID: id, Text: tok.Text, Root: root}
}

// text builds a text from a quoted text or literal token.
func (v *validator) text(tok *chalktalk.Token) *ast.Text {
	return &ast.Text{ID: v.record(tok.Pos), Text: tok.Text}
}

// texts returns the text arguments of sec. Other arguments are reported.
func (v *validator) texts(sec *chalktalk.Section) []*ast.Text {
	var res []*ast.Text

	for _, arg := range sec.Args {
		if arg.Token != nil && (arg.Token.Type == chalktalk.TokenText || arg.Token.Type == chalktalk.TokenLiteral) {
			res = append(res, v.text(arg.Token))
			continue
		}

		v.errorf(arg.Pos, "section '%s' expects text arguments", sec.Name)
	}

	return res
}

// statements returns the statement arguments of sec. Other arguments are reported.
func (v *validator) statements(sec *chalktalk.Section) []*ast.Statement {
	var res []*ast.Statement

	for _, arg := range sec.Args {
		if arg.Token != nil && arg.Token.Type == chalktalk.TokenStatement {
			res = append(res, v.statement(arg.Token))
			continue
		}

		v.errorf(arg.Pos, "section '%s' expects statement arguments", sec.Name)
	}

	return res
}

// clauses returns the clause arguments of sec, there must be at least one.
func (v *validator) clauses(sec *chalktalk.Section) []ast.Clause {
	v.count(sec, 1, -1)

	var res []ast.Clause

	for _, arg := range sec.Args {
		if c := v.clause(arg); c != nil {
			res = append(res, c)
		}
	}

	return res
}

// clause builds a statement, a text or a clause group. Anything else is reported
// and yields nil.
func (v *validator) clause(arg *chalktalk.Argument) ast.Clause {
	switch {
	case arg.Token != nil && arg.Token.Type == chalktalk.TokenStatement:
		return v.statement(arg.Token)
	case arg.Token != nil && arg.Token.Type == chalktalk.TokenText:
		return v.text(arg.Token)
	case arg.Group != nil:
		return v.clauseGroup(arg.Group)
	default:
		v.errorf(arg.Pos, "expected a statement, a text or a group")
		return nil
	}
}

// targets returns the target arguments of sec, there must be at least one.
func (v *validator) targets(sec *chalktalk.Section) []ast.Target {
	v.count(sec, 1, -1)

	var res []ast.Target

	for _, arg := range sec.Args {
		if arg.Form == nil {
			v.errorf(arg.Pos, "section '%s' expects names, functions, sequences, tuples, sets or abstractions", sec.Name)
			continue
		}

		res = append(res, v.target(arg.Form))
	}

	return res
}

func (v *validator) target(f chalktalk.Form) ast.Target {
	switch n := f.(type) {
	case *chalktalk.Name:
		return v.name(n)
	case *chalktalk.Function:
		return &ast.Function{ID: v.record(n.Pos), Name: v.name(n.Name), Params: v.targetList(n.Params)}
	case *chalktalk.Sequence:
		return &ast.Sequence{
			ID:     v.record(n.Pos),
			Name:   v.name(n.Name),
			Index:  v.targetList(n.Index),
			Params: v.targetList(n.Params),
		}
	case *chalktalk.Tuple:
		return &ast.Tuple{ID: v.record(n.Pos), Items: v.targetList(n.Items)}
	case *chalktalk.Set:
		return &ast.Set{ID: v.record(n.Pos), Items: v.targetList(n.Items)}
	case *chalktalk.Abstraction:
		return &ast.Abstraction{
			ID:       v.record(n.Pos),
			Items:    v.targetList(n.Items),
			Params:   v.targetList(n.Params),
			Variadic: n.Variadic,
		}
	case *chalktalk.Assignment:
		return &ast.Assignment{ID: v.record(n.Pos), Name: v.name(n.Name), Value: v.assignedValue(n.Value)}
	default:
		panic(fmt.Sprintf("validate: unexpected form %T", f))
	}
}

func (v *validator) name(n *chalktalk.Name) *ast.Name {
	return &ast.Name{ID: v.record(n.Pos), Text: n.Text, Variadic: n.Variadic}
}

func (v *validator) targetList(forms []chalktalk.Form) []ast.Target {
	var res []ast.Target
	for _, f := range forms {
		res = append(res, v.target(f))
	}

	return res
}

// assignedValue is the right side of X := ..., a target or a statement.
func (v *validator) assignedValue(arg *chalktalk.Argument) ast.Node {
	switch {
	case arg.Form != nil:
		return v.target(arg.Form)
	case arg.Token != nil && arg.Token.Type == chalktalk.TokenStatement:
		return v.statement(arg.Token)
	default:
		v.errorf(arg.Pos, "expected a target or a statement after ':='")
		return &ast.Name{}
	}
}
