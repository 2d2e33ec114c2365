// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

// Target is something a section introduces: *Name, *Function, *Sequence,
// *Tuple, *Set, *Abstraction or *Assignment.
type Target interface {
	Node
	targetNode()
}

type Name struct {
	ID       NodeID
	Text     string
	Variadic bool
}

// Function is f(x, y).
type Function struct {
	ID     NodeID
	Name   *Name
	Params []Target
}

// Sequence is x_{i} or f_{i}(x).
type Sequence struct {
	ID     NodeID
	Name   *Name
	Index  []Target
	Params []Target
}

type Tuple struct {
	ID    NodeID
	Items []Target
}

type Set struct {
	ID    NodeID
	Items []Target
}

// Abstraction is {x_{i}}_{i}, optionally variadic.
type Abstraction struct {
	ID       NodeID
	Items    []Target
	Params   []Target
	Variadic bool
}

// Assignment is X := value. Value is either a Target or a *Statement.
type Assignment struct {
	ID    NodeID
	Name  *Name
	Value Node
}

func (*Name) targetNode()        {}
func (*Function) targetNode()    {}
func (*Sequence) targetNode()    {}
func (*Tuple) targetNode()       {}
func (*Set) targetNode()         {}
func (*Abstraction) targetNode() {}
func (*Assignment) targetNode()  {}
