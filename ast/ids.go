// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

func (n *Statement) NodeID() NodeID           { return n.ID }
func (n *Text) NodeID() NodeID                { return n.ID }
func (n *AndGroup) NodeID() NodeID            { return n.ID }
func (n *AndSection) NodeID() NodeID          { return n.ID }
func (n *OrGroup) NodeID() NodeID             { return n.ID }
func (n *OrSection) NodeID() NodeID           { return n.ID }
func (n *NotGroup) NodeID() NodeID            { return n.ID }
func (n *NotSection) NodeID() NodeID          { return n.ID }
func (n *IfGroup) NodeID() NodeID             { return n.ID }
func (n *IfSection) NodeID() NodeID           { return n.ID }
func (n *IffGroup) NodeID() NodeID            { return n.ID }
func (n *IffSection) NodeID() NodeID          { return n.ID }
func (n *ExistsGroup) NodeID() NodeID         { return n.ID }
func (n *ExistsSection) NodeID() NodeID       { return n.ID }
func (n *ExistsUniqueGroup) NodeID() NodeID   { return n.ID }
func (n *ExistsUniqueSection) NodeID() NodeID { return n.ID }
func (n *ForAllGroup) NodeID() NodeID         { return n.ID }
func (n *ForAllSection) NodeID() NodeID       { return n.ID }
func (n *GeneratedGroup) NodeID() NodeID      { return n.ID }
func (n *GeneratedSection) NodeID() NodeID    { return n.ID }
func (n *FromSection) NodeID() NodeID         { return n.ID }
func (n *PiecewiseGroup) NodeID() NodeID      { return n.ID }
func (n *PiecewiseSection) NodeID() NodeID    { return n.ID }
func (n *ElseSection) NodeID() NodeID         { return n.ID }
func (n *ThenSection) NodeID() NodeID         { return n.ID }
func (n *WhereSection) NodeID() NodeID        { return n.ID }
func (n *SuchThatSection) NodeID() NodeID     { return n.ID }
func (n *WhenSection) NodeID() NodeID         { return n.ID }
func (n *Name) NodeID() NodeID                { return n.ID }
func (n *Function) NodeID() NodeID            { return n.ID }
func (n *Sequence) NodeID() NodeID            { return n.ID }
func (n *Tuple) NodeID() NodeID               { return n.ID }
func (n *Set) NodeID() NodeID                 { return n.ID }
func (n *Abstraction) NodeID() NodeID         { return n.ID }
func (n *Assignment) NodeID() NodeID          { return n.ID }
func (n *IdStatement) NodeID() NodeID         { return n.ID }
func (n *IdLabel) NodeID() NodeID             { return n.ID }
func (n *DefinesGroup) NodeID() NodeID        { return n.ID }
func (n *DefinesSection) NodeID() NodeID      { return n.ID }
func (n *WithSection) NodeID() NodeID         { return n.ID }
func (n *GivenSection) NodeID() NodeID        { return n.ID }
func (n *MeansSection) NodeID() NodeID        { return n.ID }
func (n *SatisfyingSection) NodeID() NodeID   { return n.ID }
func (n *ExpressingSection) NodeID() NodeID   { return n.ID }
func (n *UsingSection) NodeID() NodeID        { return n.ID }
func (n *WrittenSection) NodeID() NodeID      { return n.ID }
func (n *CalledSection) NodeID() NodeID       { return n.ID }
func (n *StatesGroup) NodeID() NodeID         { return n.ID }
func (n *StatesSection) NodeID() NodeID       { return n.ID }
func (n *ThatSection) NodeID() NodeID         { return n.ID }
func (n *TheoremGroup) NodeID() NodeID        { return n.ID }
func (n *TheoremSection) NodeID() NodeID      { return n.ID }
func (n *ProofSection) NodeID() NodeID        { return n.ID }
func (n *AxiomGroup) NodeID() NodeID          { return n.ID }
func (n *AxiomSection) NodeID() NodeID        { return n.ID }
func (n *ConjectureGroup) NodeID() NodeID     { return n.ID }
func (n *ConjectureSection) NodeID() NodeID   { return n.ID }
func (n *ResourceGroup) NodeID() NodeID       { return n.ID }
func (n *ResourceSection) NodeID() NodeID     { return n.ID }
func (n *TopicGroup) NodeID() NodeID          { return n.ID }
func (n *TopicSection) NodeID() NodeID        { return n.ID }
func (n *ContentSection) NodeID() NodeID      { return n.ID }
func (n *NoteGroup) NodeID() NodeID           { return n.ID }
func (n *NoteSection) NodeID() NodeID         { return n.ID }
func (n *SpecifyGroup) NodeID() NodeID        { return n.ID }
func (n *SpecifySection) NodeID() NodeID      { return n.ID }
func (n *NumberGroup) NodeID() NodeID         { return n.ID }
func (n *IsSection) NodeID() NodeID           { return n.ID }
func (n *MetadataSection) NodeID() NodeID     { return n.ID }
func (n *ReferenceGroup) NodeID() NodeID      { return n.ID }
func (n *ReferenceSection) NodeID() NodeID    { return n.ID }
func (n *TextSection) NodeID() NodeID         { return n.ID }
func (n *StringSectionGroup) NodeID() NodeID  { return n.ID }
