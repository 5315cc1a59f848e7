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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

const (
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"

	// TokenField is the form field the API authenticates with.
	TokenField = "token"

	defaultTimeout = 30 * time.Second
	defaultAgent   = "go"
)

// Encoding selects how a request form is put on the wire.
type Encoding int

const (
	// EncodingForm is the only encoding the API accepts.
	EncodingForm Encoding = iota
	// EncodingJSON sends the same fields as a flat JSON object.
	EncodingJSON
	// EncodingText sends the form encoding labelled as text/plain.
	EncodingText
)

// Request describes a single call.
type Request struct {
	// Method defaults to POST.
	Method string
	Path   string
	Form   *Form
	// Encoding applies to Form and is ignored when Body is set.
	Encoding Encoding
	// Body, when set, is sent verbatim with ContentType.
	Body        []byte
	ContentType string
	// OmitToken sends the request without the token field.
	OmitToken bool
	// Token overrides the client token, an empty string sends an empty field.
	// A token field already present in Form takes precedence over both.
	Token *string
	// ExpectedStatus turns any other status into a *StatusError. Zero
	// accepts every status.
	ExpectedStatus int
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
	TraceID    string
}

// StatusError is returned when a request asked for a specific status and
// got another.
type StatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Expected, e.Actual, e.Body, e.TraceID)
}

// Client issues requests against one tenant.
type Client struct {
	baseURL      string
	client       *http.Client
	token        string
	logger       logr.Logger
	metrics      *Metrics
	agent        string
	logRequests  bool
	logResponses bool
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets the logger, the default discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics records every request.
func WithMetrics(metrics *Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// WithAgent names the caller in the tracestate header.
func WithAgent(agent string) Option {
	return func(c *Client) {
		c.agent = agent
	}
}

// WithRequestLogging logs a line for every request.
func WithRequestLogging(enabled bool) Option {
	return func(c *Client) {
		c.logRequests = enabled
	}
}

// WithResponseLogging logs every response body.
func WithResponseLogging(enabled bool) Option {
	return func(c *Client) {
		c.logResponses = enabled
	}
}

// New returns a client for the API rooted at baseURL.
func New(baseURL, token string, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		token:  token,
		logger: logr.Discard(),
		agent:  defaultAgent,
	}

	for _, o := range options {
		o(c)
	}

	return c
}

// Token returns the token injected into requests.
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WithToken returns a copy of the client authenticating as token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token

	return &clone
}

// Post sends form to path and accepts any status.
func (c *Client) Post(ctx context.Context, path string, form *Form) (*Response, error) {
	return c.Do(ctx, &Request{
		Path: path,
		Form: form,
	})
}

// PostExpect sends form to path and fails unless the status matches.
func (c *Client) PostExpect(ctx context.Context, path string, form *Form, status int) (*Response, error) {
	return c.Do(ctx, &Request{
		Path:           path,
		Form:           form,
		ExpectedStatus: status,
	})
}

// authenticatedForm returns the request form with the token field first,
// unless the caller already set one or asked for none.
func (c *Client) authenticatedForm(r *Request) *Form {
	form := NewForm()
	if r.Form != nil {
		form = r.Form.Clone()
	}

	if r.OmitToken {
		return form.Del(TokenField)
	}

	if form.Has(TokenField) {
		return form
	}

	token := c.token
	if r.Token != nil {
		token = *r.Token
	}

	out := NewForm().Set(TokenField, token)

	for _, k := range form.Keys() {
		v, _ := form.Get(k)
		out.add(k, v)
	}

	return out
}

// encode renders the body and its content type.
func (c *Client) encode(r *Request) ([]byte, string, error) {
	if r.Body != nil {
		contentType := r.ContentType
		if contentType == "" {
			contentType = ContentTypeJSON
		}

		return r.Body, contentType, nil
	}

	form := c.authenticatedForm(r)

	switch r.Encoding {
	case EncodingJSON:
		body, err := json.Marshal(form.Map())
		if err != nil {
			return nil, "", fmt.Errorf("marshaling json body: %w", err)
		}

		return body, ContentTypeJSON, nil
	case EncodingText:
		return []byte(form.Encode()), ContentTypeText, nil
	default:
		contentType := r.ContentType
		if contentType == "" {
			contentType = ContentTypeForm
		}

		return []byte(form.Encode()), contentType, nil
	}
}

// Do issues r and reads the whole response. Transport failures return no
// response, a status mismatch returns both the response and a *StatusError.
//
//nolint:cyclop // linear request pipeline
func (c *Client) Do(ctx context.Context, r *Request) (*Response, error) {
	method := r.Method
	if method == "" {
		method = http.MethodPost
	}

	body, contentType, err := c.encode(r)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+r.Path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", ContentTypeJSON)

	traceID := injectTraceContext(ctx, req, c.agent)
	log := c.logger.WithValues("method", method, "path", r.Path, "traceID", traceID)

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.metrics.observe(r.Path, method, 0, duration)
		log.Error(err, "http request failed", "duration", duration)

		return nil, fmt.Errorf("http request failed (trace ID: %s): %w", traceID, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(r.Path, method, resp.StatusCode, duration)
		log.Error(err, "reading response body", "status", resp.StatusCode, "duration", duration)

		return nil, fmt.Errorf("reading response body (trace ID: %s): %w", traceID, err)
	}

	c.metrics.observe(r.Path, method, resp.StatusCode, duration)

	if c.logRequests {
		log.Info("request complete", "status", resp.StatusCode, "duration", duration)
	}

	if c.logResponses && len(respBody) > 0 {
		log.Info("response body", "body", string(respBody))
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Duration:   duration,
		TraceID:    traceID,
	}

	if r.ExpectedStatus > 0 && resp.StatusCode != r.ExpectedStatus {
		log.Info("unexpected status", "expected", r.ExpectedStatus, "status", resp.StatusCode, "body", string(respBody))

		return response, &StatusError{
			Method:   method,
			Path:     r.Path,
			Expected: r.ExpectedStatus,
			Actual:   resp.StatusCode,
			Body:     string(respBody),
			TraceID:  traceID,
		}
	}

	return response, nil
}
