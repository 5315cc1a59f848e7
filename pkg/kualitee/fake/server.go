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

// Package fake serves a small stand-in for the Kualitee API so the client,
// the checks and the smoke runner can be tested offline. It only models the
// conventions the suites probe: token auth, form bodies, required fields,
// POST only routes, CORS headers and rate limiting.
package fake

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/LUCASCNASC/kualitee-api-tests/pkg/kualitee"
)

const (
	firstIssuedID = 1000
	dateLayout    = "2006-01-02"
)

// Operation describes one route.
type Operation struct {
	// Path as returned by kualitee.Endpoints.
	Path string
	// Required scalar fields.
	Required []kualitee.Field
	// Lists are required bracketed identifier lists, e.g. "ids".
	Lists []string
	// Creates answers with a freshly issued identifier.
	Creates bool
	// Deletes removes every identifier in the named list, a second delete
	// of the same identifier is a 404.
	Deletes string
	// List answers with an array.
	List bool
}

// Server is an httptest server speaking the Kualitee conventions.
type Server struct {
	*httptest.Server

	token string
	limit int
	leak  bool

	lock     sync.Mutex
	requests int
	nextID   int64
	known    map[int64]bool
	calls    map[string]int
}

// Option configures a Server.
type Option func(*Server)

// WithRateLimit answers 429 once more than limit requests have been served.
func WithRateLimit(limit int) Option {
	return func(s *Server) {
		s.limit = limit
	}
}

// WithLeakyErrors makes error bodies expose a stack trace.
func WithLeakyErrors() Option {
	return func(s *Server) {
		s.leak = true
	}
}

// WithKnownIDs seeds identifiers that exist before any create.
func WithKnownIDs(ids ...int64) Option {
	return func(s *Server) {
		for _, id := range ids {
			s.known[id] = true
		}
	}
}

// New starts a server accepting token for the given operations.
func New(token string, operations []Operation, options ...Option) *Server {
	s := &Server{
		token:  token,
		nextID: firstIssuedID,
		known:  map[int64]bool{},
		calls:  map[string]int{},
	}

	for _, o := range options {
		o(s)
	}

	router := chi.NewRouter()
	router.Use(s.headers, s.rateLimit)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		s.fail(w, http.StatusNotFound, "route not found")
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		s.fail(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	for _, op := range operations {
		path, err := url.PathUnescape(op.Path)
		if err != nil {
			panic(err)
		}

		router.Post(path, s.handler(op))
	}

	s.Server = httptest.NewServer(router)

	return s
}

// Calls returns how many requests reached the operation at path.
func (s *Server) Calls(path string) int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.calls[path]
}

// ResetRateLimit forgets previous requests.
func (s *Server) ResetRateLimit() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.requests = 0
}

func (s *Server) headers(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		s.requests++
		limited := s.limit > 0 && s.requests > s.limit
		s.lock.Unlock()

		if limited {
			w.Header().Set("Retry-After", "1")
			s.fail(w, http.StatusTooManyRequests, "too many requests")

			return
		}

		next.ServeHTTP(w, r)
	})
}

//nolint:cyclop // validation is a flat list of rejections
func (s *Server) handler(op Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		s.calls[op.Path]++
		s.lock.Unlock()

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != kualitee.ContentTypeForm {
			s.fail(w, http.StatusUnsupportedMediaType, "unsupported content type")
			return
		}

		if err := r.ParseForm(); err != nil {
			s.fail(w, http.StatusBadRequest, "malformed body")
			return
		}

		token := r.PostForm.Get(kualitee.TokenField)

		switch {
		case token == "":
			s.fail(w, http.StatusUnauthorized, "token is required")
			return
		case token != s.token:
			s.fail(w, http.StatusForbidden, "invalid token")
			return
		}

		for _, field := range op.Required {
			if status, message := s.validate(r.PostForm, field); status != http.StatusOK {
				s.fail(w, status, message)
				return
			}
		}

		lists := map[string][]int64{}

		for _, name := range op.Lists {
			ids, status, message := s.validateList(r.PostForm, name)
			if status != http.StatusOK {
				s.fail(w, status, message)
				return
			}

			lists[name] = ids
		}

		switch {
		case op.Creates:
			s.lock.Lock()
			s.nextID++
			id := s.nextID
			s.known[id] = true
			s.lock.Unlock()

			s.succeed(w, map[string]any{"id": id})
		case op.Deletes != "":
			s.lock.Lock()
			for _, id := range lists[op.Deletes] {
				delete(s.known, id)
			}
			s.lock.Unlock()

			s.succeed(w, map[string]any{})
		case op.List:
			s.succeed(w, []map[string]any{{"id": firstIssuedID, "name": "fixture"}})
		default:
			s.succeed(w, map[string]any{"updated_at": time.Now().UTC().Format(time.RFC3339)})
		}
	}
}

func (s *Server) validate(form url.Values, field kualitee.Field) (int, string) {
	value := form.Get(field.Name)
	if value == "" {
		return http.StatusBadRequest, field.Name + " is required"
	}

	switch field.Kind {
	case kualitee.KindID:
		return s.validateID(field.Name, value)
	case kualitee.KindDate:
		if _, err := time.Parse(dateLayout, value); err != nil {
			return http.StatusBadRequest, field.Name + " must be a date"
		}
	case kualitee.KindText:
	}

	return http.StatusOK, ""
}

func (s *Server) validateID(name, value string) (int, string) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return http.StatusBadRequest, name + " must be a positive integer"
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.known[id] {
		return http.StatusNotFound, fmt.Sprintf("%s %d not found", name, id)
	}

	return http.StatusOK, ""
}

func (s *Server) validateList(form url.Values, name string) ([]int64, int, string) {
	var ids []int64

	for i := 0; ; i++ {
		key := fmt.Sprintf("%s[%d]", name, i)
		if _, ok := form[key]; !ok {
			break
		}

		if status, message := s.validateID(key, form.Get(key)); status != http.StatusOK {
			return nil, status, message
		}

		id, _ := strconv.ParseInt(form.Get(key), 10, 64)
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, http.StatusBadRequest, name + "[0] is required"
	}

	return ids, http.StatusOK, ""
}

func (s *Server) succeed(w http.ResponseWriter, data any) {
	s.write(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "ok",
		"data":    data,
	})
}

func (s *Server) fail(w http.ResponseWriter, status int, message string) {
	body := map[string]any{
		"success": false,
		"message": message,
	}

	if s.leak {
		body["stack"] = "Stack trace: at App.Controllers.Handle(/var/www/app/Controller.php:42)"
	}

	s.write(w, status, body)
}

func (s *Server) write(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
