// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

// Inspect traverses the tree below node in depth-first order. It calls f(node) and,
// if f returns true, continues with the children of node. Absent optional sections
// are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Statement, *Text, *Name, *IdStatement, *IdLabel, *GeneratedSection, *PiecewiseSection,
		*StatesSection, *TopicSection, *NoteSection, *ReferenceSection:
		// leaves
	case *AndGroup:
		Inspect(&n.And, f)
	case *AndSection:
		clauses(n.Clauses, f)
	case *OrGroup:
		Inspect(&n.Or, f)
	case *OrSection:
		clauses(n.Clauses, f)
	case *NotGroup:
		Inspect(&n.Not, f)
	case *NotSection:
		Inspect(n.Clause, f)
	case *IfGroup:
		Inspect(&n.If, f)
		Inspect(&n.Then, f)
	case *IfSection:
		clauses(n.Clauses, f)
	case *IffGroup:
		Inspect(&n.Iff, f)
		Inspect(&n.Then, f)
	case *IffSection:
		clauses(n.Clauses, f)
	case *ExistsGroup:
		Inspect(&n.Exists, f)
		optional(n.Where, f)
		optional(n.SuchThat, f)
	case *ExistsSection:
		targets(n.Targets, f)
	case *ExistsUniqueGroup:
		Inspect(&n.ExistsUnique, f)
		optional(n.Where, f)
		optional(n.SuchThat, f)
	case *ExistsUniqueSection:
		targets(n.Targets, f)
	case *ForAllGroup:
		Inspect(&n.ForAll, f)
		optional(n.Where, f)
		optional(n.SuchThat, f)
		Inspect(&n.Then, f)
	case *ForAllSection:
		targets(n.Targets, f)
	case *GeneratedGroup:
		Inspect(&n.Generated, f)
		Inspect(&n.From, f)
		optional(n.When, f)
	case *FromSection:
		targets(n.Targets, f)
	case *PiecewiseGroup:
		Inspect(&n.Piecewise, f)
		Inspect(&n.When, f)
		Inspect(&n.Then, f)
		optional(n.Else, f)
	case *ElseSection:
		clauses(n.Clauses, f)
	case *ThenSection:
		clauses(n.Clauses, f)
	case *WhereSection:
		clauses(n.Clauses, f)
	case *SuchThatSection:
		clauses(n.Clauses, f)
	case *WhenSection:
		clauses(n.Clauses, f)
	case *Function:
		Inspect(n.Name, f)
		targets(n.Params, f)
	case *Sequence:
		Inspect(n.Name, f)
		targets(n.Index, f)
		targets(n.Params, f)
	case *Tuple:
		targets(n.Items, f)
	case *Set:
		targets(n.Items, f)
	case *Abstraction:
		targets(n.Items, f)
		targets(n.Params, f)
	case *Assignment:
		Inspect(n.Name, f)
		Inspect(n.Value, f)
	case *DefinesGroup:
		optional(n.Id, f)
		Inspect(&n.Defines, f)
		optional(n.With, f)
		optional(n.Given, f)
		optional(n.When, f)
		optional(n.SuchThat, f)
		optional(n.Means, f)
		optional(n.Satisfying, f)
		optional(n.Expressing, f)
		optional(n.Using, f)
		Inspect(&n.Written, f)
		optional(n.Called, f)
		optional(n.Metadata, f)
	case *DefinesSection:
		Inspect(n.Target, f)
	case *WithSection:
		targets(n.Targets, f)
	case *GivenSection:
		targets(n.Targets, f)
	case *MeansSection:
		clauses(n.Clauses, f)
	case *SatisfyingSection:
		clauses(n.Clauses, f)
	case *ExpressingSection:
		clauses(n.Clauses, f)
	case *UsingSection:
		for _, s := range n.Statements {
			Inspect(s, f)
		}
	case *WrittenSection:
		texts(n.Texts, f)
	case *CalledSection:
		texts(n.Texts, f)
	case *StatesGroup:
		optional(n.Id, f)
		Inspect(&n.States, f)
		optional(n.Given, f)
		optional(n.When, f)
		optional(n.SuchThat, f)
		Inspect(&n.That, f)
		optional(n.Using, f)
		Inspect(&n.Written, f)
		optional(n.Called, f)
		optional(n.Metadata, f)
	case *ThatSection:
		clauses(n.Clauses, f)
	case *TheoremGroup:
		optional(n.Id, f)
		Inspect(&n.Theorem, f)
		optional(n.Given, f)
		optional(n.Where, f)
		Inspect(&n.Then, f)
		optional(n.Iff, f)
		optional(n.Using, f)
		optional(n.Proof, f)
		optional(n.Metadata, f)
	case *TheoremSection:
		texts(n.Texts, f)
	case *ProofSection:
		texts(n.Texts, f)
	case *AxiomGroup:
		optional(n.Id, f)
		Inspect(&n.Axiom, f)
		optional(n.Given, f)
		optional(n.Where, f)
		Inspect(&n.Then, f)
		optional(n.Iff, f)
		optional(n.Using, f)
		optional(n.Metadata, f)
	case *AxiomSection:
		texts(n.Texts, f)
	case *ConjectureGroup:
		optional(n.Id, f)
		Inspect(&n.Conjecture, f)
		optional(n.Given, f)
		optional(n.Where, f)
		Inspect(&n.Then, f)
		optional(n.Iff, f)
		optional(n.Using, f)
		optional(n.Metadata, f)
	case *ConjectureSection:
		texts(n.Texts, f)
	case *ResourceGroup:
		Inspect(&n.Id, f)
		Inspect(&n.Resource, f)
		optional(n.Metadata, f)
	case *ResourceSection:
		for _, item := range n.Items {
			Inspect(item, f)
		}
	case *TopicGroup:
		optional(n.Id, f)
		Inspect(&n.Topic, f)
		Inspect(&n.Content, f)
		optional(n.Metadata, f)
	case *ContentSection:
		texts(n.Texts, f)
	case *NoteGroup:
		optional(n.Id, f)
		Inspect(&n.Note, f)
		Inspect(&n.Content, f)
		optional(n.Metadata, f)
	case *SpecifyGroup:
		Inspect(&n.Specify, f)
	case *SpecifySection:
		for _, number := range n.Numbers {
			Inspect(number, f)
		}
	case *NumberGroup:
		Inspect(&n.Is, f)
	case *IsSection:
		if n.Statement != nil {
			Inspect(n.Statement, f)
		}
	case *MetadataSection:
		for _, item := range n.Items {
			Inspect(item, f)
		}
	case *ReferenceGroup:
		Inspect(&n.Reference, f)
		Inspect(&n.Source, f)
		optional(n.Page, f)
		optional(n.Offset, f)
		optional(n.Content, f)
	case *TextSection:
		if n.Text != nil {
			Inspect(n.Text, f)
		}
	case *StringSectionGroup:
		texts(n.Values, f)
	}
}

func clauses(list []Clause, f func(Node) bool) {
	for _, c := range list {
		Inspect(c, f)
	}
}

func targets(list []Target, f func(Node) bool) {
	for _, t := range list {
		Inspect(t, f)
	}
}

func texts(list []*Text, f func(Node) bool) {
	for _, t := range list {
		Inspect(t, f)
	}
}

// optional inspects a section pointer unless it is nil.
func optional[T any, P interface {
	*T
	Node
}](section P, f func(Node) bool) {
	if section != nil {
		Inspect(section, f)
	}
}
