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

// Package kualitee is a deliberately thin client for the Kualitee REST API,
// written for black-box testing rather than for consumption.
//
// Every endpoint takes a form encoded POST body authenticated by a token
// field and answers with a JSON envelope carrying a success flag. The client
// therefore never interprets a status code on its own: callers decide what
// they expect, and the checks in this package turn the common expectations
// (status bands, CORS and content type headers, absence of leaked internals,
// envelope shape) into plain errors that both Gomega and the smoke runner
// can consume.
//
// Each request carries a fresh W3C trace context so a failing scenario can
// be correlated with the vendor's logs by trace ID.
package kualitee
