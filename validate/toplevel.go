// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"github.com/golangee/mlg/ast"
	"github.com/golangee/mlg/chalktalk"
	"github.com/golangee/mlg/textalk"
)

type topLevelBuilder func(v *validator, g *chalktalk.Group) ast.TopLevelGroup

var topLevelBuilders map[string]topLevelBuilder

func init() {
	topLevelBuilders = map[string]topLevelBuilder{
		"Defines":    (*validator).defines,
		"States":     (*validator).states,
		"Theorem":    (*validator).theorem,
		"Axiom":      (*validator).axiom,
		"Conjecture": (*validator).conjecture,
		"Resource":   (*validator).resource,
		"Topic":      (*validator).topic,
		"Note":       (*validator).note,
		"Specify":    (*validator).specify,
	}
}

var (
	definesShape = shape("Defines", "with?", "given?", "when?", "suchThat?", "means?", "satisfying?",
		"expressing?", "using?", "written", "called?", "Metadata?")
	statesShape = shape("States", "given?", "when?", "suchThat?", "that", "using?", "written",
		"called?", "Metadata?")
	theoremShape    = shape("Theorem", "given?", "where?", "then", "iff?", "using?", "Proof?", "Metadata?")
	axiomShape      = shape("Axiom", "given?", "where?", "then", "iff?", "using?", "Metadata?")
	conjectureShape = shape("Conjecture", "given?", "where?", "then", "iff?", "using?", "Metadata?")
	resourceShape   = shape("Resource", "Metadata?")
	topicShape      = shape("Topic", "content", "Metadata?")
	noteShape       = shape("Note", "content", "Metadata?")
	specifyShape    = shape("Specify")
)

// topLevel dispatches a top-level group. It returns nil for groups which are left
// out of the document.
func (v *validator) topLevel(g *chalktalk.Group) ast.TopLevelGroup {
	checkGroup(g)

	if len(g.Sections) == 0 {
		return nil
	}

	build, ok := topLevelBuilders[g.FirstSection()]
	if !ok {
		v.errorf(g.Pos, "unknown top-level group '%s'", g.FirstSection())
		return nil
	}

	return build(v, g)
}

func (v *validator) defines(g *chalktalk.Group) ast.TopLevelGroup {
	id := v.record(g.Pos)
	res := &ast.DefinesGroup{ID: id, Id: v.idStatement(g)}
	secs := v.match(g, definesShape)

	if sec := secs.one("Defines"); sec != nil {
		res.Defines.ID = v.record(sec.Pos)
		res.Defines.Target = v.singleTarget(sec)
	}

	if sec := secs.one("with"); sec != nil {
		res.With = &ast.WithSection{ID: v.record(sec.Pos), Targets: v.targets(sec)}
	}

	res.Given = v.given(secs)
	res.When = v.when(secs)
	res.SuchThat = v.suchThat(secs)

	if sec := secs.one("means"); sec != nil {
		res.Means = &ast.MeansSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
	}

	if sec := secs.one("satisfying"); sec != nil {
		res.Satisfying = &ast.SatisfyingSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
	}

	if sec := secs.one("expressing"); sec != nil {
		res.Expressing = &ast.ExpressingSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
	}

	res.Using = v.using(secs)
	res.Written = v.written(secs)
	res.Called = v.called(secs)
	res.Metadata = v.metadata(secs)

	return res
}

func (v *validator) states(g *chalktalk.Group) ast.TopLevelGroup {
	id := v.record(g.Pos)
	res := &ast.StatesGroup{ID: id, Id: v.idStatement(g)}
	secs := v.match(g, statesShape)

	if sec := secs.one("States"); sec != nil {
		v.count(sec, 0, 0)
		res.States.ID = v.record(sec.Pos)
	}

	res.Given = v.given(secs)
	res.When = v.when(secs)
	res.SuchThat = v.suchThat(secs)

	if sec := secs.one("that"); sec != nil {
		res.That = ast.ThatSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
	}

	res.Using = v.using(secs)
	res.Written = v.written(secs)
	res.Called = v.called(secs)
	res.Metadata = v.metadata(secs)

	return res
}

func (v *validator) theorem(g *chalktalk.Group) ast.TopLevelGroup {
	id := v.record(g.Pos)
	res := &ast.TheoremGroup{ID: id, Id: v.idStatement(g)}
	secs := v.match(g, theoremShape)

	if sec := secs.one("Theorem"); sec != nil {
		v.count(sec, 0, 1)
		res.Theorem = ast.TheoremSection{ID: v.record(sec.Pos), Texts: v.texts(sec)}
	}

	res.Given = v.given(secs)
	res.Where = v.where(secs)
	res.Then = v.then(secs)
	res.Iff = v.iff(secs)
	res.Using = v.using(secs)

	if sec := secs.one("Proof"); sec != nil {
		res.Proof = &ast.ProofSection{ID: v.record(sec.Pos), Texts: v.texts(sec)}
	}

	res.Metadata = v.metadata(secs)

	return res
}

func (v *validator) axiom(g *chalktalk.Group) ast.TopLevelGroup {
	id := v.record(g.Pos)
	res := &ast.AxiomGroup{ID: id, Id: v.idStatement(g)}
	secs := v.match(g, axiomShape)

	if sec := secs.one("Axiom"); sec != nil {
		v.count(sec, 0, 1)
		res.Axiom = ast.AxiomSection{ID: v.record(sec.Pos), Texts: v.texts(sec)}
	}

	res.Given = v.given(secs)
	res.Where = v.where(secs)
	res.Then = v.then(secs)
	res.Iff = v.iff(secs)
	res.Using = v.using(secs)
	res.Metadata = v.metadata(secs)

	return res
}

func (v *validator) conjecture(g *chalktalk.Group) ast.TopLevelGroup {
	id := v.record(g.Pos)
	res := &ast.ConjectureGroup{ID: id, Id: v.idStatement(g)}
	secs := v.match(g, conjectureShape)

	if sec := secs.one("Conjecture"); sec != nil {
		v.count(sec, 0, 1)
		res.Conjecture = ast.ConjectureSection{ID: v.record(sec.Pos), Texts: v.texts(sec)}
	}

	res.Given = v.given(secs)
	res.Where = v.where(secs)
	res.Then = v.then(secs)
	res.Iff = v.iff(secs)
	res.Using = v.using(secs)
	res.Metadata = v.metadata(secs)

	return res
}

func (v *validator) resource(g *chalktalk.Group) ast.TopLevelGroup {
	id := v.record(g.Pos)
	res := &ast.ResourceGroup{ID: id}

	if label := v.idLabel(g); label != nil {
		res.Id = *label
	} else {
		v.errorf(g.Pos, "group 'Resource' requires an id")
	}

	secs := v.match(g, resourceShape)

	if sec := secs.one("Resource"); sec != nil {
		res.Resource.ID = v.record(sec.Pos)
		v.count(sec, 1, -1)

		for _, arg := range sec.Args {
			if item := v.stringItem(arg, ast.ResourceKeys); item != nil {
				res.Resource.Items = append(res.Resource.Items, item)
			}
		}
	}

	res.Metadata = v.metadata(secs)

	return res
}

func (v *validator) topic(g *chalktalk.Group) ast.TopLevelGroup {
	id := v.record(g.Pos)
	res := &ast.TopicGroup{ID: id, Id: v.idLabel(g)}
	secs := v.match(g, topicShape)

	if sec := secs.one("Topic"); sec != nil {
		v.count(sec, 0, 0)
		res.Topic.ID = v.record(sec.Pos)
	}

	if sec := secs.one("content"); sec != nil {
		v.count(sec, 1, 1)
		res.Content = ast.ContentSection{ID: v.record(sec.Pos), Texts: v.texts(sec)}
	}

	res.Metadata = v.metadata(secs)

	return res
}

func (v *validator) note(g *chalktalk.Group) ast.TopLevelGroup {
	id := v.record(g.Pos)
	res := &ast.NoteGroup{ID: id, Id: v.idLabel(g)}
	secs := v.match(g, noteShape)

	if sec := secs.one("Note"); sec != nil {
		v.count(sec, 0, 0)
		res.Note.ID = v.record(sec.Pos)
	}

	if sec := secs.one("content"); sec != nil {
		v.count(sec, 1, -1)
		res.Content = ast.ContentSection{ID: v.record(sec.Pos), Texts: v.texts(sec)}
	}

	res.Metadata = v.metadata(secs)

	return res
}

func (v *validator) specify(g *chalktalk.Group) ast.TopLevelGroup {
	v.noId(g)

	id := v.record(g.Pos)
	res := &ast.SpecifyGroup{ID: id}
	secs := v.match(g, specifyShape)

	if sec := secs.one("Specify"); sec != nil {
		res.Specify.ID = v.record(sec.Pos)
		v.count(sec, 1, -1)

		for _, arg := range sec.Args {
			if arg.Group == nil {
				v.errorf(arg.Pos, "section 'Specify' expects number groups")
				continue
			}

			if n := v.number(arg.Group); n != nil {
				res.Specify.Numbers = append(res.Specify.Numbers, n)
			}
		}
	}

	return res
}

var numberKinds = []ast.NumberKind{ast.Zero, ast.PositiveInt, ast.NegativeInt, ast.PositiveFloat, ast.NegativeFloat}

// number builds a 'zero:', 'positiveInt:' ... group of a Specify section.
func (v *validator) number(g *chalktalk.Group) *ast.NumberGroup {
	checkGroup(g)
	v.noId(g)

	var kind ast.NumberKind

	for _, k := range numberKinds {
		if string(k) == g.FirstSection() {
			kind = k
		}
	}

	if kind == "" {
		v.errorf(g.Pos, "unknown number group '%s', expected zero, positiveInt, negativeInt, positiveFloat or negativeFloat", g.FirstSection())
		return nil
	}

	res := &ast.NumberGroup{ID: v.record(g.Pos), Kind: kind}
	secs := v.match(g, shape(string(kind), "is"))

	if sec := secs.one(string(kind)); sec != nil {
		v.count(sec, 0, 0)
	}

	if sec := secs.one("is"); sec != nil {
		res.Is.ID = v.record(sec.Pos)
		if v.count(sec, 1, 1) {
			if stmts := v.statements(sec); len(stmts) == 1 {
				res.Is.Statement = stmts[0]
			}
		}
	}

	return res
}

// singleTarget returns the only target of sec. On failure the result is a sentinel name.
func (v *validator) singleTarget(sec *chalktalk.Section) ast.Target {
	if !v.count(sec, 1, 1) {
		return &ast.Name{}
	}

	if sec.Args[0].Form == nil {
		v.errorf(sec.Args[0].Pos, "section '%s' expects a name, function, sequence, tuple, set or abstraction", sec.Name)
		return &ast.Name{}
	}

	return v.target(sec.Args[0].Form)
}

func (v *validator) given(secs Sections) *ast.GivenSection {
	sec := secs.one("given")
	if sec == nil {
		return nil
	}

	return &ast.GivenSection{ID: v.record(sec.Pos), Targets: v.targets(sec)}
}

func (v *validator) iff(secs Sections) *ast.IffSection {
	sec := secs.one("iff")
	if sec == nil {
		return nil
	}

	return &ast.IffSection{ID: v.record(sec.Pos), Clauses: v.clauses(sec)}
}

// using takes statements which introduce an alias, so each must be a ':=' expression.
func (v *validator) using(secs Sections) *ast.UsingSection {
	sec := secs.one("using")
	if sec == nil {
		return nil
	}

	res := &ast.UsingSection{ID: v.record(sec.Pos)}
	v.count(sec, 1, -1)

	for _, arg := range sec.Args {
		if arg.Token == nil || arg.Token.Type != chalktalk.TokenStatement {
			v.errorf(arg.Pos, "section 'using' expects statement arguments")
			continue
		}

		stmt := v.statement(arg.Token)
		if _, ok := stmt.Root.(*textalk.ColonEqualsExpression); !ok {
			v.errorf(arg.Pos, "a statement of section 'using' must be a ':=' expression")
		}

		res.Statements = append(res.Statements, stmt)
	}

	return res
}

func (v *validator) written(secs Sections) ast.WrittenSection {
	sec := secs.one("written")
	if sec == nil {
		return ast.WrittenSection{}
	}

	id := v.record(sec.Pos)
	v.count(sec, 1, -1)

	return ast.WrittenSection{ID: id, Texts: v.texts(sec)}
}

func (v *validator) called(secs Sections) *ast.CalledSection {
	sec := secs.one("called")
	if sec == nil {
		return nil
	}

	id := v.record(sec.Pos)
	v.count(sec, 1, -1)

	return &ast.CalledSection{ID: id, Texts: v.texts(sec)}
}
