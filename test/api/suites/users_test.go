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
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LUCASCNASC/kualitee-api-tests/pkg/kualitee"
	"github.com/LUCASCNASC/kualitee-api-tests/test/api"
)

var _ = Describe("User Management", func() {
	userID := func(context.Context) int64 {
		return api.RequireFixture(config.UserID, "KUALITEE_USER_ID")
	}

	addToProject := func(context.Context) api.Target {
		return api.Target{
			Client:  client,
			Path:    endpoints.UserAddToProject(),
			Payload: api.NewAddToProjectPayload(config, api.RequireFixture(config.SecondaryUserID, "KUALITEE_SECONDARY_USER_ID")),
		}
	}

	Context("When listing users", func() {
		Describe("Given a valid project", func() {
			It("should return the project users", func() {
				resp, err := client.Post(ctx, endpoints.UserList(), api.NewPayload(config).Build())
				api.ExpectSuccess(resp, err)
				api.ExpectShape(resp, kualitee.SchemaListEnvelope)

				users, err := client.ListUsers(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(users).NotTo(BeEmpty())
			})
		})

		Describe("Given a configured user", func() {
			It("should include the user", func() {
				id := userID(ctx)

				users, err := client.ListUsers(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.ItemIDs(users, "user_id")).To(ContainElement(id))
			})
		})

		api.ItValidatesRequests(project(endpoints.UserList()), api.ProjectFields)
		api.ItHonoursRateLimit(project(endpoints.UserList()))
	})

	Context("When retrieving a user", func() {
		Describe("Given the user exists", func() {
			It("should return the user", func() {
				resp, err := client.Post(ctx, endpoints.UserDetail(), api.NewDetailPayload(config, "user_id", userID(ctx)).Build())
				api.ExpectSuccess(resp, err)
				api.ExpectShape(resp, kualitee.SchemaObjectEnvelope)
			})
		})

		api.ItValidatesRequests(detail(endpoints.UserDetail(), "user_id", userID), api.UserDetailFields)
	})

	Context("When adding users to the project", func() {
		// Project membership cannot be revoked through the API, the
		// secondary user must be one that may stay in the project.
		Describe("Given a user outside the project", func() {
			It("should add the user", func() {
				Expect(client.AddUsersToProject(ctx, api.RequireFixture(config.SecondaryUserID, "KUALITEE_SECONDARY_USER_ID"))).To(Succeed())
			})
		})

		Describe("Given a user that is already a member", func() {
			It("should add the user again without a server error", func() {
				form := api.NewAddToProjectPayload(config, api.RequireFixture(config.SecondaryUserID, "KUALITEE_SECONDARY_USER_ID")).Build()

				api.ExpectNoServerError(client.Post(ctx, endpoints.UserAddToProject(), form))
				api.ExpectNoServerError(client.Post(ctx, endpoints.UserAddToProject(), form))
			})
		})

		Describe("Given multiple users", func() {
			It("should accept every user in the list", func() {
				form := api.NewAddToProjectPayload(config,
					api.RequireFixture(config.UserID, "KUALITEE_USER_ID"),
					api.RequireFixture(config.SecondaryUserID, "KUALITEE_SECONDARY_USER_ID"),
				).Build()

				Expect(form.Keys()).To(ContainElements("project_user[0]", "project_user[1]"))
				api.ExpectNoServerError(client.Post(ctx, endpoints.UserAddToProject(), form))
			})
		})

		api.ItValidatesRequests(addToProject, api.UserAddToProjectFields)
		api.ItRejectsSparseLists(addToProject, "project_user[0]")
	})
})
