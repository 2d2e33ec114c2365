// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package collect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/golangee/mlg/token"
	"github.com/sahilm/fuzzy"
)

// Problem is found by looking at several documents at once.
type Problem struct {
	Path    string
	Pos     token.Pos
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s:%s: %s", p.Path, p.Pos, p.Message)
}

// Signatures returns all defined signatures in sorted order.
func (idx *Index) Signatures() []string {
	res := make([]string, 0, len(idx.defined))
	for sig := range idx.defined {
		res = append(res, sig)
	}

	sort.Strings(res)

	return res
}

// Defined returns where sig is defined.
func (idx *Index) Defined(sig string) []Location {
	return idx.defined[sig]
}

// Duplicates reports every definition of a signature except the first one.
func (idx *Index) Duplicates() []Problem {
	var res []Problem

	for sig, locs := range idx.defined {
		for _, loc := range locs[1:] {
			res = append(res, Problem{
				Path:    loc.Path,
				Pos:     loc.Pos,
				Message: fmt.Sprintf("duplicate signature '%s', first defined at %s:%s", sig, locs[0].Path, locs[0].Pos),
			})
		}
	}

	sortProblems(res)

	return res
}

// Undefined reports every use of a command which is neither defined nor known.
// A similar defined signature is suggested if there is one.
func (idx *Index) Undefined() []Problem {
	var res []Problem

	sigs := idx.Signatures()

	for sig, locs := range idx.used {
		if idx.known[sig] || len(idx.defined[sig]) > 0 {
			continue
		}

		msg := fmt.Sprintf("undefined signature '%s'", sig)
		if matches := fuzzy.Find(strings.TrimPrefix(sig, `\`), sigs); len(matches) > 0 {
			msg += fmt.Sprintf(", did you mean '%s'?", matches[0].Str)
		}

		for _, loc := range locs {
			res = append(res, Problem{Path: loc.Path, Pos: loc.Pos, Message: msg})
		}
	}

	sortProblems(res)

	return res
}

// DuplicateContent reports every group whose content, ignoring its metadata,
// was already written by another group.
func (idx *Index) DuplicateContent() []Problem {
	var res []Problem

	for _, locs := range idx.content {
		for _, loc := range locs[1:] {
			res = append(res, Problem{
				Path:    loc.Path,
				Pos:     loc.Pos,
				Message: fmt.Sprintf("duplicate content, first written at %s:%s", locs[0].Path, locs[0].Pos),
			})
		}
	}

	sortProblems(res)

	return res
}

// Problems returns the findings of Duplicates, Undefined and DuplicateContent.
func (idx *Index) Problems() []Problem {
	var res []Problem
	res = append(res, idx.Duplicates()...)
	res = append(res, idx.Undefined()...)
	res = append(res, idx.DuplicateContent()...)
	sortProblems(res)

	return res
}

func sortProblems(list []Problem) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Path != list[j].Path {
			return list[i].Path < list[j].Path
		}

		if list[i].Pos != list[j].Pos {
			return list[i].Pos.Before(list[j].Pos)
		}

		return list[i].Message < list[j].Message
	})
}
