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
	"net/http"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMissingHeader    = errors.New("missing header")
	ErrLeak             = errors.New("response leaks implementation details")
	ErrNotSuccessful    = errors.New("response is not successful")
)

// Status bands asserted by the suites.
//
//nolint:gochecknoglobals
var (
	StatusSuccess          = []int{http.StatusOK}
	StatusClientError      = []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity}
	StatusUnauthorized     = []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden}
	StatusWrongMethod      = []int{http.StatusNotFound, http.StatusMethodNotAllowed}
	StatusWrongContentType = []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusUnsupportedMediaType}
	StatusRateLimited      = []int{http.StatusTooManyRequests}
	StatusBurst            = []int{http.StatusOK, http.StatusTooManyRequests}
)

// CheckStatus fails unless the status is one of allowed.
func CheckStatus(resp *Response, allowed ...int) error {
	if lo.Contains(allowed, resp.StatusCode) {
		return nil
	}

	return fmt.Errorf("%w: got %d, want one of %v (trace ID: %s)", ErrUnexpectedStatus, resp.StatusCode, allowed, resp.TraceID)
}

// CheckSuccess requires a 200 with success set in the envelope.
func CheckSuccess(resp *Response) error {
	if err := CheckStatus(resp, StatusSuccess...); err != nil {
		return err
	}

	envelope, err := resp.Envelope()
	if err != nil {
		return err
	}

	if !envelope.Success {
		return fmt.Errorf("%w: %s (trace ID: %s)", ErrNotSuccessful, envelope.Message, resp.TraceID)
	}

	return nil
}

// CheckCORS requires the CORS allow origin header.
func CheckCORS(resp *Response) error {
	if resp.Header.Get("Access-Control-Allow-Origin") == "" {
		return fmt.Errorf("%w: Access-Control-Allow-Origin", ErrMissingHeader)
	}

	return nil
}

// CheckJSONContentType requires a JSON content type.
func CheckJSONContentType(resp *Response) error {
	if !strings.Contains(resp.Header.Get("Content-Type"), ContentTypeJSON) {
		return fmt.Errorf("%w: Content-Type %s, got %q", ErrMissingHeader, ContentTypeJSON, resp.Header.Get("Content-Type"))
	}

	return nil
}

// CheckHeaders runs every header check and reports all failures.
func CheckHeaders(resp *Response) error {
	return multierr.Combine(CheckCORS(resp), CheckJSONContentType(resp))
}

//nolint:gochecknoglobals
var leakPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bstack ?trace\b`),
	regexp.MustCompile(`(?i)traceback \(most recent call last\)`),
	regexp.MustCompile(`(?i)\bsqlstate\b`),
	regexp.MustCompile(`(?i)error in your sql syntax`),
	regexp.MustCompile(`(?i)\b(pdo|sql|mysqli?|database|query)exception\b`),
	regexp.MustCompile("(?i)\\bselect\\s+(\\*|[\\w.`]+(\\s*,\\s*[\\w.`]+)*)\\s+from\\s+`?\\w+"),
	regexp.MustCompile(`(?i)\binsert\s+into\b`),
	regexp.MustCompile(`(?i)\bfatal error\b`),
	regexp.MustCompile(`(?i)\.php(:\d+| on line \d+)`),
	regexp.MustCompile(`(?i)\bat [\w$.]+\([^)]*:\d+(:\d+)?\)`),
	regexp.MustCompile(`(?i)goroutine \d+ \[`),
}

//nolint:gochecknoglobals
var leakKeys = []string{"stack", "trace", "exception", "sql", "query", "file", "line"}

// CheckNoLeak fails when the body exposes stack traces, SQL text or the
// source location of an error.
func CheckNoLeak(resp *Response) error {
	var err error

	for _, pattern := range leakPatterns {
		if match := pattern.Find(resp.Body); match != nil {
			err = multierr.Append(err, fmt.Errorf("%w: body matches %q", ErrLeak, match))
		}
	}

	var object map[string]any
	if json.Unmarshal(resp.Body, &object) == nil {
		exposed := lo.Filter(leakKeys, func(key string, _ int) bool {
			_, ok := object[key]
			return ok
		})

		for _, key := range exposed {
			err = multierr.Append(err, fmt.Errorf("%w: envelope exposes %q", ErrLeak, key))
		}
	}

	return err
}
