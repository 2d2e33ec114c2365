// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/golangee/mlg/textalk"

// Document is the typed tree of a whole input.
type Document struct {
	Groups []TopLevelGroup
}

// TopLevelGroup is one of *DefinesGroup, *StatesGroup, *TheoremGroup, *AxiomGroup,
// *ConjectureGroup, *ResourceGroup, *TopicGroup, *NoteGroup or *SpecifyGroup.
type TopLevelGroup interface {
	Node
	topLevelNode()
}

// IdStatement is the [...] line above a group, parsed as TexTalk.
type IdStatement struct {
	ID   NodeID
	Text string
	Root textalk.Expression
}

// IdLabel is the [...] line above a group whose id is a plain label.
type IdLabel struct {
	ID   NodeID
	Text string
}

type DefinesGroup struct {
	ID         NodeID
	Id         *IdStatement
	Defines    DefinesSection
	With       *WithSection
	Given      *GivenSection
	When       *WhenSection
	SuchThat   *SuchThatSection
	Means      *MeansSection
	Satisfying *SatisfyingSection
	Expressing *ExpressingSection
	Using      *UsingSection
	Written    WrittenSection
	Called     *CalledSection
	Metadata   *MetadataSection
}

// DefinesSection holds the single defined target.
type DefinesSection struct {
	ID     NodeID
	Target Target
}

type WithSection struct {
	ID      NodeID
	Targets []Target
}

type GivenSection struct {
	ID      NodeID
	Targets []Target
}

type MeansSection struct {
	ID      NodeID
	Clauses []Clause
}

type SatisfyingSection struct {
	ID      NodeID
	Clauses []Clause
}

type ExpressingSection struct {
	ID      NodeID
	Clauses []Clause
}

// UsingSection holds statements which are all := expressions.
type UsingSection struct {
	ID         NodeID
	Statements []*Statement
}

type WrittenSection struct {
	ID    NodeID
	Texts []*Text
}

type CalledSection struct {
	ID    NodeID
	Texts []*Text
}

type StatesGroup struct {
	ID       NodeID
	Id       *IdStatement
	States   StatesSection
	Given    *GivenSection
	When     *WhenSection
	SuchThat *SuchThatSection
	That     ThatSection
	Using    *UsingSection
	Written  WrittenSection
	Called   *CalledSection
	Metadata *MetadataSection
}

type StatesSection struct {
	ID NodeID
}

type ThatSection struct {
	ID      NodeID
	Clauses []Clause
}

type TheoremGroup struct {
	ID       NodeID
	Id       *IdStatement
	Theorem  TheoremSection
	Given    *GivenSection
	Where    *WhereSection
	Then     ThenSection
	Iff      *IffSection
	Using    *UsingSection
	Proof    *ProofSection
	Metadata *MetadataSection
}

// TheoremSection holds an optional title.
type TheoremSection struct {
	ID    NodeID
	Texts []*Text
}

type ProofSection struct {
	ID    NodeID
	Texts []*Text
}

type AxiomGroup struct {
	ID       NodeID
	Id       *IdStatement
	Axiom    AxiomSection
	Given    *GivenSection
	Where    *WhereSection
	Then     ThenSection
	Iff      *IffSection
	Using    *UsingSection
	Metadata *MetadataSection
}

type AxiomSection struct {
	ID    NodeID
	Texts []*Text
}

type ConjectureGroup struct {
	ID         NodeID
	Id         *IdStatement
	Conjecture ConjectureSection
	Given      *GivenSection
	Where      *WhereSection
	Then       ThenSection
	Iff        *IffSection
	Using      *UsingSection
	Metadata   *MetadataSection
}

type ConjectureSection struct {
	ID    NodeID
	Texts []*Text
}

// ResourceGroup describes a bibliographic source. Its id is required.
type ResourceGroup struct {
	ID       NodeID
	Id       IdLabel
	Resource ResourceSection
	Metadata *MetadataSection
}

type ResourceSection struct {
	ID    NodeID
	Items []*StringSectionGroup
}

type TopicGroup struct {
	ID       NodeID
	Id       *IdLabel
	Topic    TopicSection
	Content  ContentSection
	Metadata *MetadataSection
}

type TopicSection struct {
	ID NodeID
}

type ContentSection struct {
	ID    NodeID
	Texts []*Text
}

type NoteGroup struct {
	ID       NodeID
	Id       *IdLabel
	Note     NoteSection
	Content  ContentSection
	Metadata *MetadataSection
}

type NoteSection struct {
	ID NodeID
}

// SpecifyGroup declares how number literals are interpreted.
type SpecifyGroup struct {
	ID      NodeID
	Specify SpecifySection
}

type SpecifySection struct {
	ID      NodeID
	Numbers []*NumberGroup
}

// NumberKind is the first section name of a NumberGroup.
type NumberKind string

const (
	Zero          NumberKind = "zero"
	PositiveInt   NumberKind = "positiveInt"
	NegativeInt   NumberKind = "negativeInt"
	PositiveFloat NumberKind = "positiveFloat"
	NegativeFloat NumberKind = "negativeFloat"
)

// NumberGroup maps a kind of number literal to the statement it means.
type NumberGroup struct {
	ID   NodeID
	Kind NumberKind
	Is   IsSection
}

type IsSection struct {
	ID        NodeID
	Statement *Statement
}

func (*DefinesGroup) topLevelNode()    {}
func (*StatesGroup) topLevelNode()     {}
func (*TheoremGroup) topLevelNode()    {}
func (*AxiomGroup) topLevelNode()      {}
func (*ConjectureGroup) topLevelNode() {}
func (*ResourceGroup) topLevelNode()   {}
func (*TopicGroup) topLevelNode()      {}
func (*NoteGroup) topLevelNode()       {}
func (*SpecifyGroup) topLevelNode()    {}
