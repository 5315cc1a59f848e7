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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/LUCASCNASC/kualitee-api-tests/pkg/kualitee"
)

// Target is one operation with a valid payload.
type Target struct {
	Client  *APIClient
	Path    string
	Payload *Payload
}

// TargetFunc builds the target inside each spec, once configuration is
// loaded, so it may create fixtures.
type TargetFunc func(ctx context.Context) Target

// WrongMethods are the methods every endpoint must refuse.
//
//nolint:gochecknoglobals
var WrongMethods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
}

// WrongEncodings are the bodies every endpoint must refuse.
//
//nolint:gochecknoglobals
var WrongEncodings = []struct {
	Name     string
	Encoding kualitee.Encoding
}{
	{"JSON", kualitee.EncodingJSON},
	{"plain text", kualitee.EncodingText},
}

// ItRejectsUnauthenticated covers a missing, an empty and an unknown token.
func ItRejectsUnauthenticated(target TargetFunc) {
	Describe("Given invalid authentication", func() {
		It("should reject a request without a token", func(ctx SpecContext) {
			t := target(ctx)

			resp, err := t.Client.PostWithoutToken(ctx, t.Path, t.Payload.Build())
			ExpectAuthRejected(resp, err)
		})

		It("should reject a request with an empty token", func(ctx SpecContext) {
			t := target(ctx)

			resp, err := t.Client.WithToken("").Post(ctx, t.Path, t.Payload.Build())
			ExpectAuthRejected(resp, err)
		})

		It("should reject a request with an invalid token", func(ctx SpecContext) {
			t := target(ctx)

			resp, err := t.Client.WithToken(uuid.NewString()).Post(ctx, t.Path, t.Payload.Build())
			ExpectAuthRejected(resp, err)
		})
	})
}

// ItRejectsMissingFields removes each required field in turn.
func ItRejectsMissingFields(target TargetFunc, fields []kualitee.Field) {
	Describe("Given a missing required field", func() {
		for _, field := range fields {
			It(fmt.Sprintf("should reject the request without %s", field.Name), func(ctx SpecContext) {
				t := target(ctx)

				resp, err := t.Client.Post(ctx, t.Path, t.Payload.Without(field.Name).Build())
				ExpectClientError(resp, err)
			})
		}
	})
}

func invalidValueEntries(fields []kualitee.Field) []TableEntry {
	var entries []TableEntry

	for _, field := range fields {
		for _, value := range kualitee.InvalidValuesFor(field.Kind) {
			entries = append(entries, Entry(fmt.Sprintf("%s as %s", field.Name, value.Name), field.Name, value))
		}
	}

	return entries
}

// ItRejectsInvalidValues replaces each required field with every invalid
// value that applies to its kind.
func ItRejectsInvalidValues(target TargetFunc, fields []kualitee.Field) {
	Describe("Given an invalid field value", func() {
		DescribeTable("should reject the request",
			func(ctx SpecContext, field string, value kualitee.InvalidValue) {
				t := target(ctx)

				resp, err := t.Client.Post(ctx, t.Path, t.Payload.With(field, value.Value).Build())
				ExpectClientError(resp, err)
			},
			invalidValueEntries(fields),
		)
	})
}

// ItRejectsWrongMethods sends the valid payload with every other method.
func ItRejectsWrongMethods(target TargetFunc) {
	Describe("Given the wrong HTTP method", func() {
		DescribeTable("should reject the request",
			func(ctx SpecContext, method string) {
				t := target(ctx)

				resp, err := t.Client.PostWithMethod(ctx, method, t.Path, t.Payload.Build())
				ExpectWrongMethodRejected(resp, err)
			},
			lo.Map(WrongMethods, func(method string, _ int) TableEntry {
				return Entry(method, method)
			}),
		)
	})
}

// ItRejectsWrongContentTypes sends the valid payload in other encodings.
func ItRejectsWrongContentTypes(target TargetFunc) {
	Describe("Given the wrong content type", func() {
		for _, wrong := range WrongEncodings {
			It(fmt.Sprintf("should reject a %s body", wrong.Name), func(ctx SpecContext) {
				t := target(ctx)

				resp, err := t.Client.PostWithEncoding(ctx, t.Path, t.Payload.Build(), wrong.Encoding)
				ExpectWrongContentTypeRejected(resp, err)
			})
		}
	})
}

// ItDoesNotLeak sends identifiers crafted to provoke database and parser
// errors and asserts nothing internal is echoed back. Text fields are left
// alone, hostile text is valid input and would be stored.
func ItDoesNotLeak(target TargetFunc, fields []kualitee.Field) {
	Describe("Given hostile identifiers", func() {
		hostile := []string{`1' OR '1'='1`, `1; DROP TABLE builds --`, `{{7*7}}`, `../../etc/passwd`}

		ids := lo.Filter(fields, func(field kualitee.Field, _ int) bool {
			return field.Kind == kualitee.KindID
		})

		for _, field := range ids {
			It(fmt.Sprintf("should not expose internals through %s", field.Name), func(ctx SpecContext) {
				t := target(ctx)

				for _, value := range hostile {
					resp, err := t.Client.Post(ctx, t.Path, t.Payload.With(field.Name, value).Build())
					ExpectClientError(resp, err)
				}
			})
		}
	})
}

// ItHonoursRateLimit fires a burst of identical requests.
func ItHonoursRateLimit(target TargetFunc) {
	Describe("Given a burst of requests", func() {
		It("should answer every request or rate limit it", func(ctx SpecContext) {
			t := target(ctx)

			ExpectRateLimitHonoured(t.Client.Burst(ctx, t.Client.config.RateLimitBurst, t.Path, t.Payload.Build()))
		})
	})
}

// ItRejectsSparseLists moves the first element of a list field to index
// one, leaving index zero missing.
func ItRejectsSparseLists(target TargetFunc, field string) {
	Describe("Given a list without its first element", func() {
		It(fmt.Sprintf("should reject %s missing index zero", ListField(field)), func(ctx SpecContext) {
			t := target(ctx)

			value, ok := t.Payload.form.Get(field)
			Expect(ok).To(BeTrue(), "payload has no %s", field)

			form := t.Payload.Without(field).With(ListField(field)+"[1]", value).Build()

			resp, err := t.Client.Post(ctx, t.Path, form)
			ExpectClientError(resp, err)
		})
	})
}

// ItValidatesRequests is the standard negative matrix for an operation.
func ItValidatesRequests(target TargetFunc, fields []kualitee.Field) {
	ItRejectsUnauthenticated(target)
	ItRejectsMissingFields(target, fields)
	ItRejectsInvalidValues(target, fields)
	ItRejectsWrongMethods(target)
	ItRejectsWrongContentTypes(target)
	ItDoesNotLeak(target, fields)
}
