// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Severity tells if a Diagnostic makes the input invalid.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "severity(" + strconv.Itoa(int(s)) + ")"
	}
}

// Origin names the pipeline stage which reported a Diagnostic.
type Origin int

const (
	StructuralLexer Origin = iota
	StructuralParser
	Validator
	TexTalkLexer
	TexTalkParser
)

func (o Origin) String() string {
	switch o {
	case StructuralLexer:
		return "chalktalk-lexer"
	case StructuralParser:
		return "chalktalk-parser"
	case Validator:
		return "validator"
	case TexTalkLexer:
		return "textalk-lexer"
	case TexTalkParser:
		return "textalk-parser"
	default:
		return "origin(" + strconv.Itoa(int(o)) + ")"
	}
}

// Diagnostic is a problem found in the input. Row and Col are zero-based.
type Diagnostic struct {
	Severity Severity
	Message  string
	Row      int
	Col      int
	Origin   Origin
}

// NewError creates an error Diagnostic at the given position.
func NewError(origin Origin, pos Pos, msg string) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Message:  msg,
		Row:      pos.Row,
		Col:      pos.Col,
		Origin:   origin,
	}
}

// NewWarning creates a warning Diagnostic at the given position.
func NewWarning(origin Origin, pos Pos, msg string) Diagnostic {
	d := NewError(origin, pos, msg)
	d.Severity = Warning

	return d
}

// Pos returns the position the diagnostic points to.
func (d Diagnostic) Pos() Pos {
	return Pos{Row: d.Row, Col: d.Col}
}

// String renders the diagnostic in the one-based "row:col: severity: message" format.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s (%s)", d.Pos(), d.Severity, d.Message, d.Origin)
}

// Diagnostics is an ordered collection of problems.
type Diagnostics []Diagnostic

// Sort orders the diagnostics by position. Diagnostics on the same position keep
// the order in which they were reported.
func (ds Diagnostics) Sort() {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Pos().Before(ds[j].Pos())
	})
}

// HasErrors returns true if at least one diagnostic has the Error severity.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == Error {
			return true
		}
	}

	return false
}

// Explain returns a multi-line text suited to be printed into the console.
// Each diagnostic is shown below the source line it points to.
func (ds Diagnostics) Explain(src string) string {
	lines := strings.Split(src, "\n")

	// grab the required indent for the line numbers
	indent := 0

	for _, d := range ds {
		l := len(strconv.Itoa(d.Row + 1))
		if l > indent {
			indent = l
		}
	}

	sb := &strings.Builder{}

	for i, d := range ds {
		sb.WriteString(d.String())
		sb.WriteString("\n")

		if d.Row < 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"d |", d.Row+1))
		sb.WriteString(posLine(lines, d.Row))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |", ""))
		sb.WriteString(strings.Repeat(" ", d.Col))
		sb.WriteString("^~~~\n")

		if i < len(ds)-1 {
			sb.WriteString(strings.Repeat(" ", indent))
			sb.WriteString("...\n")
		}
	}

	return sb.String()
}

// posLine returns the line with the zero-based row number or the empty string.
func posLine(lines []string, row int) string {
	if row >= 0 && row < len(lines) {
		return lines[row]
	}

	return ""
}
