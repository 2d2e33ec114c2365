// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"github.com/golangee/mlg/ast"
	"github.com/golangee/mlg/chalktalk"
)

type clauseBuilder func(v *validator, g *chalktalk.Group) ast.Clause

// clauseBuilders is keyed by the first section name of a clause group.
var clauseBuilders map[string]clauseBuilder

func init() {
	clauseBuilders = map[string]clauseBuilder{
		"and":          (*validator).and,
		"or":           (*validator).or,
		"not":          (*validator).not,
		"if":           (*validator).ifGroup,
		"iff":          (*validator).iffGroup,
		"exists":       (*validator).exists,
		"existsUnique": (*validator).existsUnique,
		"forAll":       (*validator).forAll,
		"generated":    (*validator).generated,
		"piecewise":    (*validator).piecewise,
	}
}

var (
	andShape          = shape("and")
	orShape           = shape("or")
	notShape          = shape("not")
	ifShape           = shape("if", "then")
	iffShape          = shape("iff", "then")
	existsShape       = shape("exists", "where?", "suchThat?")
	existsUniqueShape = shape("existsUnique", "where?", "suchThat?")
	forAllShape       = shape("forAll", "where?", "suchThat?", "then")
	generatedShape    = shape("generated", "from", "when?")
	piecewiseShape    = shape("piecewise", "when", "then", "else?")
)

// clauseGroup dispatches a group in clause position. An unknown group yields an
// empty and-group.
func (v *validator) clauseGroup(g *chalktalk.Group) ast.Clause {
	checkGroup(g)

	if len(g.Sections) == 0 {
		return &ast.AndGroup{}
	}

	v.noId(g)

	build, ok := clauseBuilders[g.FirstSection()]
	if !ok {
		v.errorf(g.Pos, "unknown group '%s'", g.FirstSection())
		return &ast.AndGroup{}
	}

	return build(v, g)
}

func (v *validator) and(g *chalktalk.Group) ast.Clause {
	id := v.record(g.Pos)
	secs := v.match(g, andShape)

	res := &ast.AndGroup{ID: id}
	if sec := secs.one("and"); sec != nil {
		res.And = ast.AndSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
	}

	return res
}

func (v *validator) or(g *chalktalk.Group) ast.Clause {
	id := v.record(g.Pos)
	secs := v.match(g, orShape)

	res := &ast.OrGroup{ID: id}
	if sec := secs.one("or"); sec != nil {
		res.Or = ast.OrSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
	}

	return res
}

func (v *validator) not(g *chalktalk.Group) ast.Clause {
	id := v.record(g.Pos)
	secs := v.match(g, notShape)

	res := &ast.NotGroup{ID: id}
	if sec := secs.one("not"); sec != nil {
		res.Not.ID = v.record(sec.Pos)
		if v.count(sec, 1, 1) {
			res.Not.Clause = v.clause(sec.Args[0])
		}
	}

	return res
}

func (v *validator) ifGroup(g *chalktalk.Group) ast.Clause {
	id := v.record(g.Pos)
	secs := v.match(g, ifShape)

	res := &ast.IfGroup{ID: id}
	if sec := secs.one("if"); sec != nil {
		res.If = ast.IfSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
	}

	res.Then = v.then(secs)

	return res
}

func (v *validator) iffGroup(g *chalktalk.Group) ast.Clause {
	id := v.record(g.Pos)
	secs := v.match(g, iffShape)

	res := &ast.IffGroup{ID: id}
	if sec := secs.one("iff"); sec != nil {
		res.Iff = ast.IffSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
	}

	res.Then = v.then(secs)

	return res
}

func (v *validator) exists(g *chalktalk.Group) ast.Clause {
	id := v.record(g.Pos)
	secs := v.match(g, existsShape)

	res := &ast.ExistsGroup{ID: id}
	if sec := secs.one("exists"); sec != nil {
		res.Exists = ast.ExistsSection{ID: v.record(sec.Pos), Targets: v.targets(sec)}
	}

	res.Where = v.where(secs)
	res.SuchThat = v.suchThat(secs)

	return res
}

func (v *validator) existsUnique(g *chalktalk.Group) ast.Clause {
	id := v.record(g.Pos)
	secs := v.match(g, existsUniqueShape)

	res := &ast.ExistsUniqueGroup{ID: id}
	if sec := secs.one("existsUnique"); sec != nil {
		res.ExistsUnique = ast.ExistsUniqueSection{ID: v.record(sec.Pos), Targets: v.targets(sec)}
	}

	res.Where = v.where(secs)
	res.SuchThat = v.suchThat(secs)

	return res
}

func (v *validator) forAll(g *chalktalk.Group) ast.Clause {
	id := v.record(g.Pos)
	secs := v.match(g, forAllShape)

	res := &ast.ForAllGroup{ID: id}
	if sec := secs.one("forAll"); sec != nil {
		res.ForAll = ast.ForAllSection{ID: v.record(sec.Pos), Targets: v.targets(sec)}
	}

	res.Where = v.where(secs)
	res.SuchThat = v.suchThat(secs)
	res.Then = v.then(secs)

	return res
}

func (v *validator) generated(g *chalktalk.Group) ast.Clause {
	id := v.record(g.Pos)
	secs := v.match(g, generatedShape)

	res := &ast.GeneratedGroup{ID: id}
	if sec := secs.one("generated"); sec != nil {
		v.count(sec, 0, 0)
		res.Generated = ast.GeneratedSection{ID: v.record(sec.Pos)}
	}

	if sec := secs.one("from"); sec != nil {
		res.From = ast.FromSection{ID: v.record(sec.Pos), Targets: v.targets(sec)}
	}

	res.When = v.when(secs)

	return res
}

func (v *validator) piecewise(g *chalktalk.Group) ast.Clause {
	id := v.record(g.Pos)
	secs := v.match(g, piecewiseShape)

	res := &ast.PiecewiseGroup{ID: id}
	if sec := secs.one("piecewise"); sec != nil {
		v.count(sec, 0, 0)
		res.Piecewise = ast.PiecewiseSection{ID: v.record(sec.Pos)}
	}

	if w := v.when(secs); w != nil {
		res.When = *w
	}

	res.Then = v.then(secs)

	if sec := secs.one("else"); sec != nil {
		res.Else = &ast.ElseSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
	}

	return res
}

// then is required wherever it appears, so a missing one is the empty section.
func (v *validator) then(secs Sections) ast.ThenSection {
	sec := secs.one("then")
	if sec == nil {
		return ast.ThenSection{}
	}

	return ast.ThenSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
}

func (v *validator) where(secs Sections) *ast.WhereSection {
	sec := secs.one("where")
	if sec == nil {
		return nil
	}

	return &ast.WhereSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
}

func (v *validator) suchThat(secs Sections) *ast.SuchThatSection {
	sec := secs.one("suchThat")
	if sec == nil {
		return nil
	}

	return &ast.SuchThatSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
}

func (v *validator) when(secs Sections) *ast.WhenSection {
	sec := secs.one("when")
	if sec == nil {
		return nil
	}

	return &ast.WhenSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
}
