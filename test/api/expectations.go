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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LUCASCNASC/kualitee-api-tests/pkg/kualitee"
)

// ExpectResponse asserts the request reached the server.
func ExpectResponse(resp *kualitee.Response, err error) {
	GinkgoHelper()

	Expect(err).NotTo(HaveOccurred())
	Expect(resp).NotTo(BeNil())
}

// ExpectStandardHeaders asserts the CORS and JSON content type headers.
func ExpectStandardHeaders(resp *kualitee.Response) {
	GinkgoHelper()

	Expect(resp.Header.Get("Access-Control-Allow-Origin")).NotTo(BeEmpty(), "trace ID: %s", resp.TraceID)
	Expect(resp.Header.Get("Content-Type")).To(ContainSubstring(kualitee.ContentTypeJSON), "trace ID: %s", resp.TraceID)
}

// ExpectNoLeak asserts the body exposes no server internals.
func ExpectNoLeak(resp *kualitee.Response) {
	GinkgoHelper()

	Expect(kualitee.CheckNoLeak(resp)).To(Succeed())
}

// ExpectShape asserts the body matches an envelope schema.
func ExpectShape(resp *kualitee.Response, schema kualitee.Schema) {
	GinkgoHelper()

	Expect(kualitee.ValidateEnvelope(resp, schema)).To(Succeed())
}

// ExpectSuccess asserts a 200 with a successful envelope and the standard
// headers, and returns the envelope.
func ExpectSuccess(resp *kualitee.Response, err error) *kualitee.Envelope {
	GinkgoHelper()

	ExpectResponse(resp, err)
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "body: %s, trace ID: %s", resp.Body, resp.TraceID)
	ExpectStandardHeaders(resp)
	ExpectNoLeak(resp)

	envelope, err := resp.Envelope()
	Expect(err).NotTo(HaveOccurred())
	Expect(envelope.Success).To(BeTrue(), "message: %s, trace ID: %s", envelope.Message, resp.TraceID)

	return envelope
}

// expectRejected asserts a status within allowed and a clean body.
func expectRejected(resp *kualitee.Response, err error, allowed []int) {
	GinkgoHelper()

	ExpectResponse(resp, err)
	Expect(resp.StatusCode).To(BeElementOf(allowed), "body: %s, trace ID: %s", resp.Body, resp.TraceID)
	ExpectNoLeak(resp)
}

// ExpectClientError asserts a 4xx rejection in the client error band.
func ExpectClientError(resp *kualitee.Response, err error) {
	GinkgoHelper()

	expectRejected(resp, err, kualitee.StatusClientError)
}

// ExpectAuthRejected asserts a missing or invalid token is refused.
func ExpectAuthRejected(resp *kualitee.Response, err error) {
	GinkgoHelper()

	expectRejected(resp, err, kualitee.StatusUnauthorized)
}

// ExpectWrongMethodRejected asserts a non POST request is refused.
func ExpectWrongMethodRejected(resp *kualitee.Response, err error) {
	GinkgoHelper()

	expectRejected(resp, err, kualitee.StatusWrongMethod)
}

// ExpectWrongContentTypeRejected asserts a body that is not form encoded is
// refused. The server cannot see the token in such a body, so an
// authentication failure is an acceptable answer.
func ExpectWrongContentTypeRejected(resp *kualitee.Response, err error) {
	GinkgoHelper()

	expectRejected(resp, err, kualitee.StatusWrongContentType)
}

// ExpectRateLimitHonoured asserts a burst only saw successes and 429s.
func ExpectRateLimitHonoured(result *kualitee.BurstResult) {
	GinkgoHelper()

	Expect(result.Err).NotTo(HaveOccurred())
	Expect(result.Unexpected(kualitee.StatusBurst...)).To(BeEmpty(), "statuses: %v", result.Statuses)

	if result.RateLimited() {
		GinkgoWriter.Printf("Rate limited %d of %d requests\n", result.Count(http.StatusTooManyRequests), len(result.Statuses))
	}
}

// ExpectGone asserts a repeated operation on a removed resource neither
// succeeds nor fails on the server side.
func ExpectGone(resp *kualitee.Response, err error) {
	GinkgoHelper()

	ExpectResponse(resp, err)
	Expect(resp.StatusCode).To(BeNumerically("<", http.StatusInternalServerError), "body: %s, trace ID: %s", resp.Body, resp.TraceID)
	ExpectNoLeak(resp)

	if resp.StatusCode == http.StatusOK {
		envelope, err := resp.Envelope()
		Expect(err).NotTo(HaveOccurred())
		Expect(envelope.Success).To(BeFalse(), "the resource was already removed")
	}
}

// ExpectNoServerError asserts a repeated operation did not fail on the
// server side.
func ExpectNoServerError(resp *kualitee.Response, err error) {
	GinkgoHelper()

	ExpectResponse(resp, err)
	Expect(resp.StatusCode).To(BeNumerically("<", http.StatusInternalServerError), "body: %s, trace ID: %s", resp.Body, resp.TraceID)
	ExpectNoLeak(resp)
}
