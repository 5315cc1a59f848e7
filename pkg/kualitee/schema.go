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
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrShape is returned when a body does not match the expected envelope.
var ErrShape = errors.New("unexpected response shape")

// Schema names a component of the embedded envelope document.
type Schema string

const (
	// SchemaEnvelope is any response: an object with a boolean success.
	SchemaEnvelope Schema = "Envelope"
	// SchemaListEnvelope is a successful list response.
	SchemaListEnvelope Schema = "ListEnvelope"
	// SchemaObjectEnvelope is a successful single object response.
	SchemaObjectEnvelope Schema = "ObjectEnvelope"
	// SchemaErrorEnvelope is a rejected request.
	SchemaErrorEnvelope Schema = "ErrorEnvelope"
)

//go:embed schema/envelope.yaml
var envelopeDocument []byte

//nolint:gochecknoglobals
var (
	schemasOnce sync.Once
	schemas     openapi3.Schemas
	schemasErr  error
)

func loadSchemas() (openapi3.Schemas, error) {
	schemasOnce.Do(func() {
		doc, err := openapi3.NewLoader().LoadFromData(envelopeDocument)
		if err != nil {
			schemasErr = fmt.Errorf("loading envelope schemas: %w", err)
			return
		}

		schemas = doc.Components.Schemas
	})

	return schemas, schemasErr
}

// ValidateEnvelope checks the coarse shape of a response body.
func ValidateEnvelope(resp *Response, schema Schema) error {
	all, err := loadSchemas()
	if err != nil {
		return err
	}

	ref, ok := all[string(schema)]
	if !ok || ref.Value == nil {
		return fmt.Errorf("%w: unknown schema %s", ErrShape, schema)
	}

	var value any
	if err := json.Unmarshal(resp.Body, &value); err != nil {
		return fmt.Errorf("%w: body is not JSON (status %d): %w", ErrShape, resp.StatusCode, err)
	}

	if err := ref.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrShape, schema, err)
	}

	return nil
}
