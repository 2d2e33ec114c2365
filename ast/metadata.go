// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

// MetadataSection collects references and tags of a top-level group.
type MetadataSection struct {
	ID    NodeID
	Items []MetadataItem
}

// MetadataItem is either a *ReferenceGroup or a *StringSectionGroup.
type MetadataItem interface {
	Node
	metadataItem()
}

// ReferenceGroup points into a resource.
type ReferenceGroup struct {
	ID        NodeID
	Reference ReferenceSection
	Source    TextSection
	Page      *TextSection
	Offset    *TextSection
	Content   *TextSection
}

type ReferenceSection struct {
	ID NodeID
}

// TextSection is a section with a single text argument.
type TextSection struct {
	ID   NodeID
	Text *Text
}

// StringSectionGroup is a group of a single section whose arguments are texts,
// like 'tag: "algebra", "groups"'.
type StringSectionGroup struct {
	ID     NodeID
	Name   string
	Values []*Text
}

// MetadataKeys are the accepted names of a StringSectionGroup within Metadata.
var MetadataKeys = []string{"id", "tag", "note", "related"}

// ResourceKeys are the accepted names of a StringSectionGroup within a Resource.
var ResourceKeys = []string{
	"type", "name", "author", "homepage", "url", "offset", "edition", "editor",
	"institution", "journal", "publisher", "volume", "month", "year", "chapter",
	"pages", "note",
}

func (*ReferenceGroup) metadataItem()     {}
func (*StringSectionGroup) metadataItem() {}
