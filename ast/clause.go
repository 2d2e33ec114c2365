// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/golangee/mlg/textalk"

// Clause is one of *Statement, *Text, *AndGroup, *OrGroup, *NotGroup, *IfGroup,
// *IffGroup, *ExistsGroup, *ExistsUniqueGroup, *ForAllGroup, *GeneratedGroup or
// *PiecewiseGroup.
type Clause interface {
	Node
	clauseNode()
}

// Statement is a quoted TexTalk statement together with its parsed expression.
// Root is never nil, an empty or broken statement yields a *textalk.Empty.
type Statement struct {
	ID   NodeID
	Text string
	Root textalk.Expression
}

// Text is a double quoted prose text.
type Text struct {
	ID   NodeID
	Text string
}

type AndGroup struct {
	ID  NodeID
	And AndSection
}

type AndSection struct {
	ID      NodeID
	Clauses []Clause
}

type OrGroup struct {
	ID NodeID
	Or OrSection
}

type OrSection struct {
	ID      NodeID
	Clauses []Clause
}

// NotGroup negates exactly one clause.
type NotGroup struct {
	ID  NodeID
	Not NotSection
}

type NotSection struct {
	ID     NodeID
	Clause Clause
}

type IfGroup struct {
	ID   NodeID
	If   IfSection
	Then ThenSection
}

type IfSection struct {
	ID      NodeID
	Clauses []Clause
}

type IffGroup struct {
	ID   NodeID
	Iff  IffSection
	Then ThenSection
}

type IffSection struct {
	ID      NodeID
	Clauses []Clause
}

type ExistsGroup struct {
	ID       NodeID
	Exists   ExistsSection
	Where    *WhereSection
	SuchThat *SuchThatSection
}

type ExistsSection struct {
	ID      NodeID
	Targets []Target
}

type ExistsUniqueGroup struct {
	ID           NodeID
	ExistsUnique ExistsUniqueSection
	Where        *WhereSection
	SuchThat     *SuchThatSection
}

type ExistsUniqueSection struct {
	ID      NodeID
	Targets []Target
}

type ForAllGroup struct {
	ID       NodeID
	ForAll   ForAllSection
	Where    *WhereSection
	SuchThat *SuchThatSection
	Then     ThenSection
}

type ForAllSection struct {
	ID      NodeID
	Targets []Target
}

// GeneratedGroup describes the smallest structure built from the given targets.
type GeneratedGroup struct {
	ID        NodeID
	Generated GeneratedSection
	From      FromSection
	When      *WhenSection
}

type GeneratedSection struct {
	ID NodeID
}

type FromSection struct {
	ID      NodeID
	Targets []Target
}

type PiecewiseGroup struct {
	ID        NodeID
	Piecewise PiecewiseSection
	When      WhenSection
	Then      ThenSection
	Else      *ElseSection
}

type PiecewiseSection struct {
	ID NodeID
}

type ElseSection struct {
	ID      NodeID
	Clauses []Clause
}

// sections shared by several groups

type ThenSection struct {
	ID      NodeID
	Clauses []Clause
}

type WhereSection struct {
	ID      NodeID
	Clauses []Clause
}

type SuchThatSection struct {
	ID      NodeID
	Clauses []Clause
}

type WhenSection struct {
	ID      NodeID
	Clauses []Clause
}

func (*Statement) clauseNode()         {}
func (*Text) clauseNode()              {}
func (*AndGroup) clauseNode()          {}
func (*OrGroup) clauseNode()           {}
func (*NotGroup) clauseNode()          {}
func (*IfGroup) clauseNode()           {}
func (*IffGroup) clauseNode()          {}
func (*ExistsGroup) clauseNode()       {}
func (*ExistsUniqueGroup) clauseNode() {}
func (*ForAllGroup) clauseNode()       {}
func (*GeneratedGroup) clauseNode()    {}
func (*PiecewiseGroup) clauseNode()    {}
