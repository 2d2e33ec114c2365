// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mlg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/golangee/mlg/ast"
	"github.com/r3labs/diff/v2"
)

// resource parses a Resource group and returns its items.
func resource(text string) []*ast.StringSectionGroup {
	res := Parse("[r]\nResource:\n" + text)
	if len(res.Document.Groups) == 0 {
		return nil
	}

	return res.Document.Groups[0].(*ast.ResourceGroup).Resource.Items
}

func ExampleUnmarshal() {
	type Book struct {
		Title  string   `mlg:"name"`
		Author []string `mlg:"author"`
		Year   uint     `mlg:"year"`
	}

	var book Book

	_ = Unmarshal(resource(". name: \"Gopher Algebra\"\n. author: \"A\", \"B\"\n. year: \"2021\"\n"), &book, false)

	fmt.Printf("%s by %v in %d", book.Title, book.Author, book.Year)
	// Output: Gopher Algebra by [A B] in 2021
}

func TestUnmarshal(t *testing.T) {
	// Base for testing
	type TestCase struct {
		name   string
		text   string
		strict bool
		// into is an empty instance we will unmarshal into.
		into interface{}
		// want is a filled instance with all values we want.
		want    interface{}
		wantErr bool
	}

	var testCases []TestCase

	// Test cases always follow this pattern:
	// 1. Define all required types
	// 2. Define testcase using those types

	type SimpleRoot struct {
		Name  string
		Year  int16
		Pages uint64
	}

	testCases = append(testCases, TestCase{
		name: "struct with some types",
		text: ". name: \"hello\"\n. year: \"-5\"\n. pages: \"3000\"\n",
		into: &SimpleRoot{},
		want: &SimpleRoot{
			Name:  "hello",
			Year:  -5,
			Pages: 3000,
		},
	})

	type OutOfBounds struct {
		Volume int8
	}

	testCases = append(testCases, TestCase{
		name:    "out of bounds int8",
		text:    ". volume: \"300\"\n",
		into:    &OutOfBounds{},
		wantErr: true,
	})

	testCases = append(testCases, TestCase{
		name:    "not an integer",
		text:    ". volume: \"III\"\n",
		into:    &OutOfBounds{},
		wantErr: true,
	})

	type Rename struct {
		Title string `mlg:"name"`
		Skip  string `mlg:"-"`
	}

	testCases = append(testCases, TestCase{
		name: "field rename",
		text: ". name: \"hello\"\n",
		into: &Rename{},
		want: &Rename{Title: "hello"},
	})

	testCases = append(testCases, TestCase{
		name: "absent section in non-strict mode",
		text: ". year: \"1\"\n",
		into: &Rename{},
		want: &Rename{},
	})

	testCases = append(testCases, TestCase{
		name:    "absent section is denied in strict mode",
		text:    ". year: \"1\"\n",
		into:    &Rename{},
		strict:  true,
		wantErr: true,
	})

	testCases = append(testCases, TestCase{
		name:    "left over section is denied in strict mode",
		text:    ". name: \"a\"\n. year: \"1\"\n",
		into:    &Rename{},
		strict:  true,
		wantErr: true,
	})

	testCases = append(testCases, TestCase{
		name:    "duplicate section is denied in strict mode",
		text:    ". name: \"a\"\n. name: \"b\"\n",
		into:    &Rename{},
		strict:  true,
		wantErr: true,
	})

	testCases = append(testCases, TestCase{
		name:    "scalar with two values",
		text:    ". name: \"a\", \"b\"\n",
		into:    &Rename{},
		wantErr: true,
	})

	type Slices struct {
		Author []string
		Pages  []int
	}

	testCases = append(testCases, TestCase{
		name: "slices",
		text: ". author: \"A\", \"B\"\n. pages: \"1\", \"2\", \"3\"\n",
		into: &Slices{},
		want: &Slices{
			Author: []string{"A", "B"},
			Pages:  []int{1, 2, 3},
		},
	})

	type Pointers struct {
		Edition *int
		Note    *string
		Journal *bool
	}

	one := 1
	note := "n"

	testCases = append(testCases, TestCase{
		name: "pointers",
		text: ". edition: \"1\"\n. note: \"n\"\n",
		into: &Pointers{},
		want: &Pointers{Edition: &one, Note: &note},
	})

	type Floats struct {
		Offset float32
		Volume float64
	}

	testCases = append(testCases, TestCase{
		name: "floats",
		text: ". offset: \"1.5\"\n. volume: \"2.25\"\n",
		into: &Floats{},
		want: &Floats{Offset: 1.5, Volume: 2.25},
	})

	type Array struct {
		Author [2]string
	}

	testCases = append(testCases, TestCase{
		name:    "arrays are not supported",
		text:    ". author: \"A\", \"B\"\n",
		into:    &Array{},
		wantErr: true,
	})

	testCases = append(testCases, TestCase{
		name:    "do not unmarshal into nil",
		text:    ". name: \"a\"\n",
		into:    nil,
		wantErr: true,
	})

	testCases = append(testCases, TestCase{
		name:    "do not unmarshal into a non struct",
		text:    ". name: \"a\"\n",
		into:    &one,
		wantErr: true,
	})

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Unmarshal(resource(tc.text), tc.into, tc.strict)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			changes, err := diff.Diff(tc.want, tc.into)
			if err != nil {
				t.Fatal(err)
			}

			if len(changes) != 0 {
				t.Fatalf("unexpected changes: %v", changes)
			}
		})
	}
}

func TestUnmarshalErrorUnwrap(t *testing.T) {
	type Year struct {
		Year int
	}

	err := Unmarshal(resource(". year: \"x\"\n"), &Year{}, false)

	var uerr UnmarshalError
	if !errors.As(err, &uerr) || uerr.Section != "year" {
		t.Fatalf("unexpected error %v", err)
	}

	if errors.Unwrap(err) == nil {
		t.Fatal("expected the strconv error to be wrapped")
	}
}
