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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"

	"github.com/LUCASCNASC/kualitee-api-tests/pkg/kualitee"
	"github.com/LUCASCNASC/kualitee-api-tests/test/api"
)

var _ = Describe("Dashboard", func() {
	dashboards := []struct {
		name string
		path string
	}{
		{"overview", endpoints.DashboardOverview()},
		{"activities", endpoints.DashboardActivities()},
		{"test execution status", endpoints.DashboardTestExecutionStatus()},
	}

	for _, dashboard := range dashboards {
		Context("When reading the "+dashboard.name, func() {
			Describe("Given a valid project", func() {
				It("should return the dashboard", func() {
					resp, err := client.Post(ctx, dashboard.path, api.NewPayload(config).Build())
					api.ExpectSuccess(resp, err)
					api.ExpectShape(resp, kualitee.SchemaEnvelope)
				})
			})

			api.ItValidatesRequests(project(dashboard.path), api.ProjectFields)
			api.ItHonoursRateLimit(project(dashboard.path))
		})
	}
})
