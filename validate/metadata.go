// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"strings"

	"github.com/golangee/mlg/ast"
	"github.com/golangee/mlg/chalktalk"
)

var referenceShape = shape("reference", "source", "page?", "offset?", "content?")

// metadata builds the optional 'Metadata:' section. Its arguments are reference
// groups or single section groups like 'tag: "x"'.
func (v *validator) metadata(secs Sections) *ast.MetadataSection {
	sec := secs.one("Metadata")
	if sec == nil {
		return nil
	}

	res := &ast.MetadataSection{ID: v.record(sec.Pos)}
	v.count(sec, 1, -1)

	for _, arg := range sec.Args {
		if arg.Group == nil {
			v.errorf(arg.Pos, "section 'Metadata' expects groups")
			continue
		}

		var item ast.MetadataItem
		if arg.Group.FirstSection() == "reference" {
			item = v.reference(arg.Group)
		} else if s := v.stringSection(arg.Group, ast.MetadataKeys); s != nil {
			item = s
		}

		if item != nil {
			res.Items = append(res.Items, item)
		}
	}

	return res
}

func (v *validator) reference(g *chalktalk.Group) *ast.ReferenceGroup {
	checkGroup(g)
	v.noId(g)

	res := &ast.ReferenceGroup{ID: v.record(g.Pos)}
	secs := v.match(g, referenceShape)

	if sec := secs.one("reference"); sec != nil {
		v.count(sec, 0, 0)
		res.Reference.ID = v.record(sec.Pos)
	}

	if s := v.textSection(secs.one("source")); s != nil {
		res.Source = *s
	}

	res.Page = v.textSection(secs.one("page"))
	res.Offset = v.textSection(secs.one("offset"))
	res.Content = v.textSection(secs.one("content"))

	return res
}

// textSection builds a section holding exactly one text.
func (v *validator) textSection(sec *chalktalk.Section) *ast.TextSection {
	if sec == nil {
		return nil
	}

	res := &ast.TextSection{ID: v.record(sec.Pos)}
	if v.count(sec, 1, 1) {
		if texts := v.texts(sec); len(texts) == 1 {
			res.Text = texts[0]
		}
	}

	return res
}

// stringItem builds a bulleted item of a Resource section.
func (v *validator) stringItem(arg *chalktalk.Argument, keys []string) *ast.StringSectionGroup {
	if arg.Group == nil {
		v.errorf(arg.Pos, "expected a group like '%s: \"...\"'", keys[0])
		return nil
	}

	return v.stringSection(arg.Group, keys)
}

// stringSection builds a group of exactly one section whose name is one of keys
// and whose arguments are texts.
func (v *validator) stringSection(g *chalktalk.Group, keys []string) *ast.StringSectionGroup {
	checkGroup(g)
	if len(g.Sections) == 0 {
		return nil
	}

	v.noId(g)

	name := g.FirstSection()
	if !contains(keys, name) {
		v.errorf(g.Pos, "unknown group '%s', expected one of %s", name, strings.Join(keys, ", "))
		return nil
	}

	for _, sec := range g.Sections[1:] {
		v.errorf(sec.Pos, "unexpected section '%s', group '%s' has a single section", sec.Name, name)
	}

	sec := g.Sections[0]
	res := &ast.StringSectionGroup{ID: v.record(g.Pos), Name: name}
	v.count(sec, 1, -1)
	res.Values = v.texts(sec)

	return res
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}

	return false
}
