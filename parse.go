// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package mlg parses ChalkTalk documents with embedded TexTalk statements.
//
// Parsing is done in stages: the structural lexer turns indentation into marker
// tokens, the structural parser builds a generic tree of groups, sections and
// arguments and the validator checks each group against the sections its kind
// allows and builds the typed document. Statements are parsed by the TexTalk
// pipeline while validating. No stage stops at the first problem, so a document
// is always returned together with all diagnostics.
package mlg

import (
	"github.com/golangee/mlg/ast"
	"github.com/golangee/mlg/chalktalk"
	"github.com/golangee/mlg/token"
	"github.com/golangee/mlg/validate"
)

// Result of a single Parse call.
type Result struct {
	// Document is never nil, even if the input is complete garbage.
	Document *ast.Document
	// Diagnostics of all stages, sorted by position.
	Diagnostics token.Diagnostics
	// Root is the generic tree the Document was built from.
	Root *chalktalk.Root
	// Tracker knows the position of every node of Document.
	Tracker *ast.Tracker
}

// Parse runs all stages on input.
func Parse(input string) *Result {
	tokens, diags := chalktalk.Lex(input)

	root, pdiags := chalktalk.Parse(tokens)
	diags = append(diags, pdiags...)

	tracker := ast.NewTracker()

	doc, vdiags := validate.Document(root, tracker)
	diags = append(diags, vdiags...)
	diags.Sort()

	return &Result{
		Document:    doc,
		Diagnostics: diags,
		Root:        root,
		Tracker:     tracker,
	}
}

// LocationOf returns the position of the construct node was built from.
func (r *Result) LocationOf(node ast.Node) (token.Pos, bool) {
	return r.Tracker.Lookup(node)
}

// Valid returns true if there is no error diagnostic.
func (r *Result) Valid() bool {
	return !r.Diagnostics.HasErrors()
}
