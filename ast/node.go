// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/golangee/mlg/token"

// NodeID identifies a typed node within the Tracker of the parse call which built it.
// The zero value is never handed out, it marks nodes which were substituted during
// error recovery.
type NodeID int

// Node is implemented by all typed nodes. A node does not know its position,
// use the Tracker of its parse call to look it up.
type Node interface {
	NodeID() NodeID
}

// Tracker is the location side table of a single parse call. It maps the
// identity of every node built from source to the position of the construct
// it was built from.
//
// A Tracker is not safe for concurrent use, which is fine because it never
// outlives the parse call that filled it.
type Tracker struct {
	positions []token.Pos
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record returns a new id for a node built from the construct at pos.
// Ids increase monotonically, starting at 1.
func (t *Tracker) Record(pos token.Pos) NodeID {
	t.positions = append(t.positions, pos)

	return NodeID(len(t.positions))
}

// Lookup returns the position of the node. Sentinel nodes and nodes of another
// tracker return NoPos and false.
func (t *Tracker) Lookup(node Node) (token.Pos, bool) {
	if node == nil {
		return token.NoPos, false
	}

	return t.Position(node.NodeID())
}

// Position returns the position recorded for id.
func (t *Tracker) Position(id NodeID) (token.Pos, bool) {
	if id <= 0 || int(id) > len(t.positions) {
		return token.NoPos, false
	}

	return t.positions[id-1], true
}

// Len returns the amount of recorded nodes.
func (t *Tracker) Len() int {
	return len(t.positions)
}
