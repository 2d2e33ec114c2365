// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mlg

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/golangee/mlg/ast"
)

// Unmarshal takes the string sections of a Resource or a Metadata section and
// places their values into the given struct. As this uses go's reflect package,
// only exported names can be unmarshalled. Strict mode requires that every field
// is given exactly once and that no section is left over.
// You can set struct tags to rename the section a field is read from.
// All tags must have the form `mlg:"..."`.
//
//	// This resource...
//	[book]
//	Resource:
//	. name: "Linear Algebra"
//	. author: "A", "B"
//	. year: "2021"
//	// could be unmarshalled into this go struct.
//	type Book struct {
//	    Title   string   `mlg:"name"`
//	    Author  []string `mlg:"author"`
//	    Year    int      `mlg:"year"`
//	    Edition *int     `mlg:"edition"`
//	}
//
// String, bool and the integer (signed and unsigned) and float types need a
// single value. Slices take every value of the section. Should the value not be
// valid for the target type, e.g. an integer that is too large or a negative
// value for an uint, an error is returned describing the issue.
func Unmarshal(items []*ast.StringSectionGroup, into interface{}, strict bool) error {
	if into == nil {
		return fmt.Errorf("cannot unmarshal into nil")
	}

	value := reflect.ValueOf(into)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("cannot unmarshal into %T, a pointer to a struct is required", into)
	}

	u := unmarshaler{strict: strict, items: items}

	return u.fields(value.Elem())
}

// unmarshaler is a helper struct for easier managing the unmarshalling process.
type unmarshaler struct {
	strict bool
	items  []*ast.StringSectionGroup
}

// UnmarshalError is an error that occurred during unmarshalling.
// It contains the offending section name, a string with details and an
// underlying error (if any).
type UnmarshalError struct {
	Section  string
	Detail   string
	wrapping error
}

func NewUnmarshalError(section string, detail string, wrapping error) UnmarshalError {
	return UnmarshalError{
		section,
		detail,
		wrapping,
	}
}

func (u UnmarshalError) Error() string {
	if u.wrapping != nil {
		return fmt.Sprintf("cannot unmarshal '%s', %s: %s", u.Section, u.Detail, u.wrapping.Error())
	}

	return fmt.Sprintf("cannot unmarshal '%s', %s", u.Section, u.Detail)
}

func (u UnmarshalError) Unwrap() error {
	return u.wrapping
}

func (u *unmarshaler) fields(value reflect.Value) error {
	used := map[string]bool{}

	for i := 0; i < value.NumField(); i++ {
		fieldType := value.Type().Field(i)
		if !fieldType.IsExported() {
			continue
		}

		name := strings.ToLower(fieldType.Name[:1]) + fieldType.Name[1:]
		if tag, ok := fieldType.Tag.Lookup("mlg"); ok {
			if tag == "-" {
				continue
			}

			if tag != "" {
				name = tag
			}
		}

		item, err := u.find(name)
		if err != nil {
			return err
		}

		if item == nil {
			continue
		}

		used[name] = true

		if err := u.value(item, value.Field(i)); err != nil {
			return err
		}
	}

	if u.strict {
		for _, item := range u.items {
			if !used[item.Name] {
				return NewUnmarshalError(item.Name, "no field for section", nil)
			}
		}
	}

	return nil
}

// find returns the section with the given name or an error in strict mode when
// there is no such section or there are multiple sections.
// In non-strict mode this method might return (nil, nil) which means that no
// such section exists, or it will return the first one.
func (u *unmarshaler) find(name string) (*ast.StringSectionGroup, error) {
	var res *ast.StringSectionGroup

	for _, item := range u.items {
		if item.Name != name {
			continue
		}

		if res != nil {
			return nil, NewUnmarshalError(name, "defined multiple times", nil)
		}

		res = item

		if !u.strict {
			break
		}
	}

	if u.strict && res == nil {
		return nil, NewUnmarshalError(name, "section required", nil)
	}

	return res, nil
}

// value places the values of item into the field.
func (u *unmarshaler) value(item *ast.StringSectionGroup, value reflect.Value) error {
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			value.Set(reflect.New(value.Type().Elem()))
		}

		return u.value(item, value.Elem())
	case reflect.Slice:
		elementType := value.Type().Elem()
		for _, text := range item.Values {
			element := reflect.New(elementType).Elem()
			if err := scalar(item.Name, text.Text, element); err != nil {
				return err
			}

			value.Set(reflect.Append(value, element))
		}

		return nil
	case reflect.Array:
		return NewUnmarshalError(item.Name, "arrays not supported, use a slice instead", nil)
	}

	if len(item.Values) != 1 {
		return NewUnmarshalError(item.Name, "exactly one value required", nil)
	}

	return scalar(item.Name, item.Values[0].Text, value)
}

// scalar parses text into a value of a primitive kind.
func scalar(name, text string, value reflect.Value) error {
	valueType := value.Type()

	switch value.Kind() {
	case reflect.String:
		value.SetString(text)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return NewUnmarshalError(name, fmt.Sprintf("'%s' is not a valid integer", text), err)
		}

		if value.OverflowInt(i) {
			return NewUnmarshalError(name, fmt.Sprintf("value for '%s' out of bounds", valueType.Name()), nil)
		}

		value.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return NewUnmarshalError(name, fmt.Sprintf("'%s' is not a valid unsigned integer", text), err)
		}

		if value.OverflowUint(i) {
			return NewUnmarshalError(name, fmt.Sprintf("value for '%s' out of bounds", valueType.Name()), nil)
		}

		value.SetUint(i)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return NewUnmarshalError(name, fmt.Sprintf("'%s' is not a valid boolean", text), err)
		}

		value.SetBool(b)
	case reflect.Float64, reflect.Float32:
		bitSize := 64
		if value.Kind() == reflect.Float32 {
			bitSize = 32
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(text), bitSize)
		if err != nil {
			return NewUnmarshalError(name, fmt.Sprintf("'%s' is not a valid float", text), err)
		}

		value.SetFloat(f)
	default:
		return NewUnmarshalError(name, fmt.Sprintf("with unsupported type '%s'", valueType), nil)
	}

	return nil
}
