// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golangee/mlg/chalktalk"
)

// XMLEncoder writes a phase-1 tree as indented XML. This is meant for tools
// which want to look at the structure of a document without knowing ChalkTalk.
//
//	<root>
//	    <group id="\f{x}">
//	        <section name="Defines">
//	            <name>f</name>
//	        </section>
//	    </group>
//	</root>
type XMLEncoder struct {
	writer *bufio.Writer
	// openNodes is a stack of element names that are currently opened,
	// so that the closing tag can be written correctly.
	openNodes []string
	// indent is the current level of indentation for emitting XML.
	indent uint
}

func NewXMLEncoder(w io.Writer) *XMLEncoder {
	return &XMLEncoder{writer: bufio.NewWriter(w)}
}

// Encode writes root and flushes the writer. There is no up-front validation,
// which means that in case of an error incomplete output already got emitted.
func (e *XMLEncoder) Encode(root *chalktalk.Root) error {
	if err := e.open("root"); err != nil {
		return err
	}

	for _, g := range root.Groups {
		if err := e.group(g); err != nil {
			return err
		}
	}

	if err := e.close(); err != nil {
		return err
	}

	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush written XML: %w", err)
	}

	return nil
}

func (e *XMLEncoder) group(g *chalktalk.Group) error {
	var attrs []string
	if g.Id != nil {
		attrs = append(attrs, "id", g.Id.Text)
	}

	if err := e.open("group", attrs...); err != nil {
		return err
	}

	for _, sec := range g.Sections {
		if err := e.open("section", "name", sec.Name); err != nil {
			return err
		}

		for _, arg := range sec.Args {
			if err := e.argument(arg); err != nil {
				return err
			}
		}

		if err := e.close(); err != nil {
			return err
		}
	}

	return e.close()
}

func (e *XMLEncoder) argument(arg *chalktalk.Argument) error {
	switch {
	case arg.Group != nil:
		return e.group(arg.Group)
	case arg.Token != nil:
		return e.leaf(strings.ToLower(string(arg.Token.Type)), arg.Token.Text)
	case arg.Form != nil:
		return e.form(arg.Form)
	default:
		return nil
	}
}

func (e *XMLEncoder) form(f chalktalk.Form) error {
	switch n := f.(type) {
	case *chalktalk.Name:
		if n.Variadic {
			return e.leaf("name", n.Text, "variadic", "true")
		}

		return e.leaf("name", n.Text)
	case *chalktalk.Function:
		return e.list("function", n.Name.Text, n.Params)
	case *chalktalk.Sequence:
		if err := e.open("sequence", "name", n.Name.Text); err != nil {
			return err
		}

		if err := e.list("index", "", n.Index); err != nil {
			return err
		}

		if n.Params != nil {
			if err := e.list("params", "", n.Params); err != nil {
				return err
			}
		}

		return e.close()
	case *chalktalk.Tuple:
		return e.list("tuple", "", n.Items)
	case *chalktalk.Set:
		return e.list("set", "", n.Items)
	case *chalktalk.Abstraction:
		var attrs []string
		if n.Variadic {
			attrs = append(attrs, "variadic", "true")
		}

		if err := e.open("abstraction", attrs...); err != nil {
			return err
		}

		if err := e.list("items", "", n.Items); err != nil {
			return err
		}

		if err := e.list("params", "", n.Params); err != nil {
			return err
		}

		return e.close()
	case *chalktalk.Assignment:
		if err := e.open("assignment", "name", n.Name.Text); err != nil {
			return err
		}

		if err := e.argument(n.Value); err != nil {
			return err
		}

		return e.close()
	default:
		return fmt.Errorf("unexpected form %T", f)
	}
}

// list writes an element holding forms. A non-empty name becomes an attribute.
func (e *XMLEncoder) list(tag, name string, items []chalktalk.Form) error {
	var attrs []string
	if name != "" {
		attrs = append(attrs, "name", name)
	}

	if err := e.open(tag, attrs...); err != nil {
		return err
	}

	for _, item := range items {
		if err := e.form(item); err != nil {
			return err
		}
	}

	return e.close()
}

// open writes the opening tag. attrs are key value pairs.
func (e *XMLEncoder) open(name string, attrs ...string) error {
	if err := e.writeString(e.indentString() + "<" + name + attributes(attrs) + ">\n"); err != nil {
		return err
	}

	e.openNodes = append(e.openNodes, name)
	e.indent++

	return nil
}

func (e *XMLEncoder) close() error {
	e.indent--

	top := e.openNodes[len(e.openNodes)-1]
	e.openNodes = e.openNodes[:len(e.openNodes)-1]

	return e.writeString(fmt.Sprintf("%s</%s>\n", e.indentString(), top))
}

// leaf writes an element which only holds text.
func (e *XMLEncoder) leaf(name, text string, attrs ...string) error {
	return e.writeString(fmt.Sprintf("%[1]s<%[2]s%[3]s>%[4]s</%[2]s>\n", e.indentString(), name, attributes(attrs), escapeXMLSafe(text)))
}

// writeString is a convenience method to write strings to the underlying writer.
func (e *XMLEncoder) writeString(s string) error {
	_, err := e.writer.WriteString(s)

	return err
}

// indentString returns a string with a number of spaces that matches the
// current indentation level.
func (e *XMLEncoder) indentString() string {
	return strings.Repeat("    ", int(e.indent))
}

func attributes(kv []string) string {
	var tmp strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		tmp.WriteString(fmt.Sprintf(` %s="%s"`, kv[i], escapeXMLSafe(kv[i+1])))
	}

	return tmp.String()
}

// escapeXMLSafe replaces all occurrences of reserved characters in XML: <>&".
func escapeXMLSafe(s string) string {
	replacer := strings.NewReplacer("<", "&lt;", ">", "&gt;", "&", "&amp;", `"`, "&quot;")

	return replacer.Replace(s)
}
