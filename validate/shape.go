// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"strings"

	"github.com/golangee/mlg/chalktalk"
)

// expectation is a single entry of a Shape.
type expectation struct {
	name     string
	optional bool
	repeat   bool
}

func (e expectation) String() string {
	switch {
	case e.optional && e.repeat:
		return e.name + "*"
	case e.optional:
		return e.name + "?"
	case e.repeat:
		return e.name + "+"
	default:
		return e.name
	}
}

// Shape is the ordered list of sections a group may consist of.
type Shape []expectation

// shape builds a Shape from section names with an optional suffix:
//
//	name   required exactly once
//	name?  optional, at most once
//	name+  required, may repeat
//	name*  optional, may repeat
func shape(names ...string) Shape {
	res := make(Shape, 0, len(names))

	for _, n := range names {
		e := expectation{name: n}

		switch {
		case strings.HasSuffix(n, "?"):
			e.optional = true
		case strings.HasSuffix(n, "+"):
			e.repeat = true
		case strings.HasSuffix(n, "*"):
			e.optional = true
			e.repeat = true
		}

		e.name = strings.TrimRight(n, "?+*")
		res = append(res, e)
	}

	return res
}

func (s Shape) String() string {
	tmp := make([]string, 0, len(s))
	for _, e := range s {
		tmp = append(tmp, e.String())
	}

	return strings.Join(tmp, ", ")
}

func (s Shape) index(name string) int {
	for i, e := range s {
		if e.name == name {
			return i
		}
	}

	return -1
}

// Sections is the result of matching a group against a Shape.
type Sections map[string][]*chalktalk.Section

// one returns the first section of that name or nil.
func (s Sections) one(name string) *chalktalk.Section {
	if list := s[name]; len(list) > 0 {
		return list[0]
	}

	return nil
}

// match partitions the sections of g by name. Unknown sections, missing required
// sections, duplicates of sections which must not repeat and sections out of the
// declared order are reported. Unknown sections and duplicates are left out, a
// section out of order is kept.
func (v *validator) match(g *chalktalk.Group, s Shape) Sections {
	res := Sections{}
	last := -1

	for _, sec := range g.Sections {
		idx := s.index(sec.Name)
		if idx < 0 {
			v.errorf(sec.Pos, "unknown section '%s', expected %s", sec.Name, s)
			continue
		}

		e := s[idx]
		if !e.repeat && len(res[e.name]) > 0 {
			v.errorf(sec.Pos, "duplicate section '%s'", sec.Name)
			continue
		}

		if idx < last {
			v.errorf(sec.Pos, "section '%s' must be placed before '%s'", sec.Name, s[last].name)
		} else {
			last = idx
		}

		res[e.name] = append(res[e.name], sec)
	}

	for _, e := range s {
		if !e.optional && len(res[e.name]) == 0 {
			v.errorf(g.Pos, "missing section '%s'", e.name)
		}
	}

	return res
}
