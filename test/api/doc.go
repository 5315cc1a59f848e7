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

// Package api provides integration test utilities for the Kualitee API.
//
// # Separate Client Implementation
//
// The vendor publishes no machine readable API description, so requests are
// built by hand from the endpoint catalog in pkg/kualitee. Any change to a
// route or a required field has to be reflected in the payload builders
// here, which keeps API evolution explicit and reviewable.
//
// The client wrapper adds features tailored for integration testing:
//   - W3C trace context propagation for request correlation
//   - Request and response logging to the Ginkgo writer
//   - Per request token overrides for authentication scenarios
//   - Direct access to HTTP status codes, headers and raw bodies
//
// # Fixtures
//
// Every resource created by a spec is deleted again through DeferCleanup.
// Where the API has no delete operation (cycles, defects) the fixture is
// left behind, defects are closed instead.
//
// # Shared Behaviours
//
// Authentication, wrong method, wrong content type, missing field, invalid
// type and rate limit scenarios are identical across endpoints, so they are
// expressed once as Ginkgo shared behaviours and invoked per operation by
// the suites.
package api
