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
	"context"
	"crypto/rand"
	"net/http"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const traceStateKey = "kualitee-tests"

//nolint:gochecknoglobals
var propagator = propagation.TraceContext{}

// newSpanContext creates a fresh sampled span context for one request, so
// a failure can be looked up in the vendor's logs by trace ID.
func newSpanContext(agent string) trace.SpanContext {
	var (
		traceID trace.TraceID
		spanID  trace.SpanID
	)

	_, _ = rand.Read(traceID[:])
	_, _ = rand.Read(spanID[:])

	state, err := trace.TraceState{}.Insert(traceStateKey, agent)
	if err != nil {
		state = trace.TraceState{}
	}

	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
		TraceState: state,
	})
}

// injectTraceContext writes the traceparent and tracestate headers and
// returns the trace ID for logging.
func injectTraceContext(ctx context.Context, req *http.Request, agent string) string {
	sc := newSpanContext(agent)

	ctx = trace.ContextWithSpanContext(ctx, sc)
	propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	return sc.TraceID().String()
}
