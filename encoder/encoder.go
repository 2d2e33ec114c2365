// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package encoder writes phase-1 trees back into text.
package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golangee/mlg/chalktalk"
)

// Encoder writes the canonical ChalkTalk form of a tree: top-level groups are
// separated by a blank line, an id is on its own line, sections without group
// arguments keep their arguments inline and every other section puts each
// argument behind its own '. ' bullet. Parsing the output again yields the same
// tree, positions aside.
type Encoder struct {
	writer *bufio.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{writer: bufio.NewWriter(w)}
}

// Encode writes root in canonical form to w.
func Encode(w io.Writer, root *chalktalk.Root) error {
	return NewEncoder(w).Encode(root)
}

// String returns the canonical form of a single group.
func String(g *chalktalk.Group) string {
	var sb strings.Builder

	// strings.Builder never fails
	_ = NewEncoder(&sb).Encode(&chalktalk.Root{Groups: []*chalktalk.Group{g}})

	return sb.String()
}

// Encode writes all groups and flushes the underlying writer.
func (e *Encoder) Encode(root *chalktalk.Root) error {
	for i, g := range root.Groups {
		if i > 0 {
			if err := e.writeString("\n"); err != nil {
				return err
			}
		}

		if err := e.group(g, 0, false); err != nil {
			return err
		}
	}

	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush encoded text: %w", err)
	}

	return nil
}

// group writes g with its sections at column col. If bulleted, the first
// section continues the current line behind a '. '.
func (e *Encoder) group(g *chalktalk.Group, col int, bulleted bool) error {
	if g.Id != nil && !bulleted {
		if err := e.writeString(indent(col) + "[" + g.Id.Text + "]\n"); err != nil {
			return err
		}
	}

	for i, sec := range g.Sections {
		prefix := indent(col)
		if i == 0 && bulleted {
			prefix = ""
		}

		if err := e.section(sec, prefix, col); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) section(sec *chalktalk.Section, prefix string, col int) error {
	if !hasGroups(sec) {
		line := prefix + sec.Name + ":"
		if len(sec.Args) > 0 {
			line += " " + inline(sec.Args)
		}

		return e.writeString(line + "\n")
	}

	if err := e.writeString(prefix + sec.Name + ":\n"); err != nil {
		return err
	}

	for _, arg := range sec.Args {
		if err := e.writeString(indent(col) + ". "); err != nil {
			return err
		}

		if arg.Group != nil {
			if err := e.group(arg.Group, col+2, true); err != nil {
				return err
			}

			continue
		}

		if err := e.writeString(argument(arg) + "\n"); err != nil {
			return err
		}
	}

	return nil
}

// writeString is a convenience method to write strings to the underlying writer.
func (e *Encoder) writeString(s string) error {
	_, err := e.writer.WriteString(s)

	return err
}

func hasGroups(sec *chalktalk.Section) bool {
	for _, arg := range sec.Args {
		if arg.Group != nil {
			return true
		}
	}

	return false
}

func inline(args []*chalktalk.Argument) string {
	tmp := make([]string, 0, len(args))
	for _, arg := range args {
		tmp = append(tmp, argument(arg))
	}

	return strings.Join(tmp, ", ")
}

// argument renders a token or a form argument.
func argument(arg *chalktalk.Argument) string {
	switch {
	case arg.Token != nil:
		return quote(*arg.Token)
	case arg.Form != nil:
		return Form(arg.Form)
	default:
		return ""
	}
}

// quote puts the delimiters back around a token. Statements containing a single
// quote use backticks.
func quote(tok chalktalk.Token) string {
	switch tok.Type {
	case chalktalk.TokenStatement:
		if strings.Contains(tok.Text, "'") {
			return "`" + tok.Text + "`"
		}

		return "'" + tok.Text + "'"
	case chalktalk.TokenText:
		return `"` + tok.Text + `"`
	case chalktalk.TokenLiteral:
		return "``" + tok.Text + "``"
	default:
		return tok.Text
	}
}

// Form renders a common form like f(x, y) or X := (A, B).
func Form(f chalktalk.Form) string {
	switch n := f.(type) {
	case *chalktalk.Name:
		if n.Variadic {
			return n.Text + "..."
		}

		return n.Text
	case *chalktalk.Function:
		return Form(n.Name) + "(" + forms(n.Params) + ")"
	case *chalktalk.Sequence:
		s := Form(n.Name) + "_{" + forms(n.Index) + "}"
		if n.Params != nil {
			s += "(" + forms(n.Params) + ")"
		}

		return s
	case *chalktalk.Tuple:
		return "(" + forms(n.Items) + ")"
	case *chalktalk.Set:
		return "{" + forms(n.Items) + "}"
	case *chalktalk.Abstraction:
		s := "{" + forms(n.Items) + "}_{" + forms(n.Params) + "}"
		if n.Variadic {
			s += "..."
		}

		return s
	case *chalktalk.Assignment:
		return Form(n.Name) + " := " + argument(n.Value)
	default:
		panic(fmt.Sprintf("encoder: unexpected form %T", f))
	}
}

func forms(list []chalktalk.Form) string {
	tmp := make([]string, 0, len(list))
	for _, f := range list {
		tmp = append(tmp, Form(f))
	}

	return strings.Join(tmp, ", ")
}

func indent(col int) string {
	return strings.Repeat(" ", col)
}
