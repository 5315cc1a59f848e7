/*
Copyright 2026 the Kualitee API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package kualitee

import (
	"github.com/samber/lo"
)

// FieldKind classifies a request field for negative testing.
type FieldKind int

const (
	// KindID is a numeric identifier such as project_id or ids[0].
	KindID FieldKind = iota
	// KindDate is a calendar date.
	KindDate
	// KindText is free text, a name or description.
	KindText
)

// InvalidValue is one member of the fixed negative value set.
type InvalidValue struct {
	Name  string
	Value any
	// textual values can legitimately appear in a free text field.
	textual bool
}

// InvalidValues is applied to every field under test.
//
//nolint:gochecknoglobals
var InvalidValues = []InvalidValue{
	{Name: "null", Value: nil},
	{Name: "empty string", Value: ""},
	{Name: "string abc", Value: "abc", textual: true},
	{Name: "zero", Value: 0, textual: true},
	{Name: "negative one", Value: -1, textual: true},
	{Name: "out of range number", Value: 999999999, textual: true},
	{Name: "empty object", Value: map[string]any{}},
	{Name: "empty array", Value: []any{}},
	{Name: "boolean true", Value: true, textual: true},
	{Name: "boolean false", Value: false, textual: true},
}

// InvalidValuesFor returns the members of InvalidValues that must be rejected
// for a field of the given kind. Identifiers and dates reject all of them,
// free text only rejects values that cannot be text at all.
func InvalidValuesFor(kind FieldKind) []InvalidValue {
	if kind != KindText {
		return InvalidValues
	}

	return lo.Filter(InvalidValues, func(v InvalidValue, _ int) bool {
		return !v.textual
	})
}

// Field names a request field and its kind.
type Field struct {
	Name string
	Kind FieldKind
}

// IDField, DateField and TextField are shorthands for building field lists.
func IDField(name string) Field {
	return Field{Name: name, Kind: KindID}
}

func DateField(name string) Field {
	return Field{Name: name, Kind: KindDate}
}

func TextField(name string) Field {
	return Field{Name: name, Kind: KindText}
}

// FieldNames returns the names of the fields.
func FieldNames(fields []Field) []string {
	return lo.Map(fields, func(f Field, _ int) string {
		return f.Name
	})
}
