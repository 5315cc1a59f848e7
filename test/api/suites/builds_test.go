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

var _ = Describe("Build Management", func() {
	buildCreate := func(context.Context) api.Target {
		return api.Target{
			Client:  client,
			Path:    endpoints.BuildsCreate(),
			Payload: api.NewBuildPayload(config),
		}
	}

	buildUpdate := func(ctx context.Context) api.Target {
		id := api.CreateBuildWithCleanup(client, ctx, config, api.NewBuildPayload(config))

		return api.Target{
			Client:  client,
			Path:    endpoints.BuildsUpdate(),
			Payload: api.NewBuildUpdatePayload(config, id),
		}
	}

	buildDelete := func(ctx context.Context) api.Target {
		id := api.CreateBuildWithCleanup(client, ctx, config, api.NewBuildPayload(config))

		return api.Target{
			Client:  client,
			Path:    endpoints.BuildsDelete(),
			Payload: api.NewDeletePayload(config, "ids", id),
		}
	}

	buildID := func(context.Context) int64 {
		return api.RequireFixture(config.BuildID, "KUALITEE_BUILD_ID")
	}

	Context("When creating a build", func() {
		Describe("Given a valid payload", func() {
			It("should create the build", func() {
				id := api.CreateBuildWithCleanup(client, ctx, config, api.NewBuildPayload(config))

				build, err := client.GetBuild(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				Expect(build.Success).To(BeTrue())
			})

			It("should return the standard headers and envelope", func() {
				resp, err := client.Post(ctx, endpoints.BuildsCreate(), api.NewBuildPayload(config).Build())
				envelope := api.ExpectSuccess(resp, err)
				api.ExpectShape(resp, kualitee.SchemaEnvelope)

				id, err := envelope.ID("build_id", "id")
				Expect(err).NotTo(HaveOccurred())
				Expect(client.DeleteBuilds(ctx, id)).To(Succeed())
			})
		})

		Describe("Given an end date before the start date", func() {
			It("should reject the build", func() {
				resp, err := client.Post(ctx, endpoints.BuildsCreate(), api.NewBuildPayload(config).
					With("start_date", api.Date(30)).
					With("end_date", api.Date(0)).
					Build())
				api.ExpectClientError(resp, err)
			})
		})

		api.ItValidatesRequests(buildCreate, api.BuildCreateFields)
	})

	Context("When updating a build", func() {
		Describe("Given a valid payload", func() {
			It("should update the build", func() {
				id := api.CreateBuildWithCleanup(client, ctx, config, api.NewBuildPayload(config))

				Expect(client.UpdateBuild(ctx, api.NewBuildUpdatePayload(config, id).Build())).To(Succeed())
			})
		})

		Describe("Given the same update twice", func() {
			It("should apply both without a server error", func() {
				id := api.CreateBuildWithCleanup(client, ctx, config, api.NewBuildPayload(config))
				form := api.NewBuildUpdatePayload(config, id).Build()

				api.ExpectSuccess(client.Post(ctx, endpoints.BuildsUpdate(), form))
				api.ExpectNoServerError(client.Post(ctx, endpoints.BuildsUpdate(), form))
			})
		})

		api.ItValidatesRequests(buildUpdate, api.BuildUpdateFields)
	})

	Context("When deleting builds", func() {
		Describe("Given a single build", func() {
			It("should delete the build", func() {
				id := api.CreateBuildWithCleanup(client, ctx, config, api.NewBuildPayload(config))

				Expect(client.DeleteBuilds(ctx, id)).To(Succeed())
			})
		})

		Describe("Given multiple builds", func() {
			It("should delete every build in the list", func() {
				first := api.CreateBuildWithCleanup(client, ctx, config, api.NewBuildPayload(config))
				second := api.CreateBuildWithCleanup(client, ctx, config, api.NewBuildPayload(config))

				Expect(client.DeleteBuilds(ctx, first, second)).To(Succeed())

				_, err := client.GetBuild(ctx, first)
				Expect(err).To(HaveOccurred())
				_, err = client.GetBuild(ctx, second)
				Expect(err).To(HaveOccurred())
			})
		})

		Describe("Given a build that was already deleted", func() {
			It("should report the build gone", func() {
				id := api.CreateBuildWithCleanup(client, ctx, config, api.NewBuildPayload(config))
				form := api.NewDeletePayload(config, "ids", id).Build()

				api.ExpectSuccess(client.Post(ctx, endpoints.BuildsDelete(), form))
				api.ExpectGone(client.Post(ctx, endpoints.BuildsDelete(), form))
			})
		})

		api.ItValidatesRequests(buildDelete, api.DeleteFields)
		api.ItRejectsSparseLists(buildDelete, "ids[0]")
	})

	Context("When listing builds", func() {
		Describe("Given a valid project", func() {
			It("should return the builds", func() {
				id := api.CreateBuildWithCleanup(client, ctx, config, api.NewBuildPayload(config))

				resp, err := client.Post(ctx, endpoints.BuildsList(), api.NewPayload(config).Build())
				api.ExpectSuccess(resp, err)
				api.ExpectShape(resp, kualitee.SchemaListEnvelope)

				builds, err := client.ListBuilds(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.ItemIDs(builds, "build_id")).To(ContainElement(id))
			})
		})

		api.ItValidatesRequests(project(endpoints.BuildsList()), api.ProjectFields)
		api.ItHonoursRateLimit(project(endpoints.BuildsList()))
	})

	Context("When retrieving a build", func() {
		Describe("Given the build exists", func() {
			It("should return the build", func() {
				resp, err := client.Post(ctx, endpoints.BuildsDetail(), api.NewDetailPayload(config, "build_id", buildID(ctx)).Build())
				api.ExpectSuccess(resp, err)
				api.ExpectShape(resp, kualitee.SchemaObjectEnvelope)
			})
		})

		api.ItValidatesRequests(detail(endpoints.BuildsDetail(), "build_id", buildID), api.BuildDetailFields)
	})
})
