// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import "strconv"

// A Pos describes a resolved position within a single input.
// Row and Col are zero-based. They are rendered one-based for humans, see String.
type Pos struct {
	Row int
	Col int
}

// NoPos is the position of nodes that were not built from source, e.g. defaults
// substituted for a section that failed to validate.
var NoPos = Pos{Row: -1, Col: -1}

// IsValid returns false for NoPos and any other negative position.
func (p Pos) IsValid() bool {
	return p.Row >= 0 && p.Col >= 0
}

// Before reports whether p comes strictly before o.
func (p Pos) Before(o Pos) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}

	return p.Col < o.Col
}

// Advance returns the position of the rune following r.
func (p Pos) Advance(r rune) Pos {
	if r == '\n' {
		return Pos{Row: p.Row + 1}
	}

	return Pos{Row: p.Row, Col: p.Col + 1}
}

// String returns the content in the one-based "row:col" format.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}

	return strconv.Itoa(p.Row+1) + ":" + strconv.Itoa(p.Col+1)
}
