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
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Form is an ordered application/x-www-form-urlencoded payload.
//
// Values are flattened the way the API expects: slices become name[0],
// name[1], ... and maps become name[key]. A nil value is sent as an empty
// field, while an empty slice or map sends nothing at all.
type Form struct {
	keys   []string
	values map[string]string
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{
		values: map[string]string{},
	}
}

// Set replaces key with the encoding of value.
func (f *Form) Set(key string, value any) *Form {
	f.Del(key)
	f.flatten(key, value)

	return f
}

// SetList replaces key with the bracketed list key[0], key[1], ...
func (f *Form) SetList(key string, values ...any) *Form {
	return f.Set(key, values)
}

// Del removes key along with any bracketed children.
func (f *Form) Del(key string) *Form {
	prefix := key + "["

	kept := f.keys[:0]

	for _, k := range f.keys {
		if k == key || strings.HasPrefix(k, prefix) {
			delete(f.values, k)
			continue
		}

		kept = append(kept, k)
	}

	f.keys = kept

	return f
}

// Get returns the encoded value of an exact key.
func (f *Form) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Has reports whether key, or any bracketed child of it, is present.
func (f *Form) Has(key string) bool {
	prefix := key + "["

	for _, k := range f.keys {
		if k == key || strings.HasPrefix(k, prefix) {
			return true
		}
	}

	return false
}

// Keys returns the encoded keys in insertion order.
func (f *Form) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Len returns the number of encoded fields.
func (f *Form) Len() int {
	return len(f.keys)
}

// Clone returns an independent copy.
func (f *Form) Clone() *Form {
	clone := &Form{
		keys:   append([]string(nil), f.keys...),
		values: make(map[string]string, len(f.values)),
	}

	for k, v := range f.values {
		clone.values[k] = v
	}

	return clone
}

// Values converts the form to url.Values.
func (f *Form) Values() url.Values {
	values := url.Values{}

	for _, k := range f.keys {
		values.Set(k, f.values[k])
	}

	return values
}

// Map returns the encoded fields keyed by name, used when the same payload
// has to be sent as JSON.
func (f *Form) Map() map[string]string {
	m := make(map[string]string, len(f.values))

	for k, v := range f.values {
		m[k] = v
	}

	return m
}

// Encode returns the body in insertion order.
func (f *Form) Encode() string {
	var b strings.Builder

	for i, k := range f.keys {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.values[k]))
	}

	return b.String()
}

func (f *Form) add(key, value string) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}

	f.values[key] = value
}

func (f *Form) flatten(key string, value any) {
	if value == nil {
		f.add(key, "")
		return
	}

	if s, ok := EncodeScalar(value); ok {
		f.add(key, s)
		return
	}

	rv := reflect.ValueOf(value)

	//nolint:exhaustive // scalars are handled above
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			f.flatten(fmt.Sprintf("%s[%d]", key, i), rv.Index(i).Interface())
		}
	case reflect.Map:
		names := make([]string, 0, rv.Len())
		lookup := map[string]reflect.Value{}

		for _, k := range rv.MapKeys() {
			name := fmt.Sprint(k.Interface())
			names = append(names, name)
			lookup[name] = rv.MapIndex(k)
		}

		sort.Strings(names)

		for _, name := range names {
			f.flatten(fmt.Sprintf("%s[%s]", key, name), lookup[name].Interface())
		}
	case reflect.Pointer:
		if rv.IsNil() {
			f.add(key, "")
			return
		}

		f.flatten(key, rv.Elem().Interface())
	default:
		f.add(key, fmt.Sprint(value))
	}
}

// EncodeScalar renders strings, booleans and numbers as form text.
func EncodeScalar(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	}

	return "", false
}
