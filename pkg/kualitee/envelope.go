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
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoID is returned when a response carries no recognisable identifier.
var ErrNoID = errors.New("no identifier in response data")

// Envelope is the body every endpoint wraps its payload in.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  json.RawMessage `json:"errors,omitempty"`
}

// Envelope decodes the response body.
func (r *Response) Envelope() (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(r.Body, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshaling envelope (status %d): %w", r.StatusCode, err)
	}

	return &envelope, nil
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshaling response (status %d): %w", r.StatusCode, err)
	}

	return nil
}

// DataList decodes data as a list of objects.
func (e *Envelope) DataList() ([]map[string]any, error) {
	var list []map[string]any

	if len(e.Data) == 0 {
		return list, nil
	}

	if err := json.Unmarshal(e.Data, &list); err != nil {
		return nil, fmt.Errorf("unmarshaling data list: %w", err)
	}

	return list, nil
}

// ID looks up the first of keys in data, then in data[0] when data is a
// list. Numbers and numeric strings are accepted.
func (e *Envelope) ID(keys ...string) (int64, error) {
	if len(keys) == 0 {
		keys = []string{"id"}
	}

	var data any
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoID, err)
	}

	if list, ok := data.([]any); ok && len(list) > 0 {
		data = list[0]
	}

	object, ok := data.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("%w: data is not an object", ErrNoID)
	}

	if id, ok := ItemID(object, keys...); ok {
		return id, nil
	}

	return 0, fmt.Errorf("%w: looked for %s", ErrNoID, strings.Join(keys, ", "))
}

// ItemID returns the first of keys in item holding a positive identifier.
func ItemID(item map[string]any, keys ...string) (int64, bool) {
	for _, key := range keys {
		if id, ok := toID(item[key]); ok {
			return id, true
		}
	}

	return 0, false
}

func toID(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		if v > 0 && v == float64(int64(v)) {
			return int64(v), true
		}
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err == nil && id > 0 {
			return id, true
		}
	}

	return 0, false
}
