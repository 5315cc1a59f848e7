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

var _ = Describe("Module Management", func() {
	newModule := func(ctx context.Context) int64 {
		return api.CreateModuleWithCleanup(client, ctx, config, api.NewModulePayload(config, api.BuildFixture(client, ctx, config)))
	}

	moduleCreate := func(ctx context.Context) api.Target {
		return api.Target{
			Client:  client,
			Path:    endpoints.ModuleCreate(),
			Payload: api.NewModulePayload(config, api.BuildFixture(client, ctx, config)),
		}
	}

	moduleUpdate := func(ctx context.Context) api.Target {
		return api.Target{
			Client:  client,
			Path:    endpoints.ModuleUpdate(),
			Payload: api.NewModuleUpdatePayload(config, newModule(ctx)),
		}
	}

	moduleDelete := func(ctx context.Context) api.Target {
		return api.Target{
			Client:  client,
			Path:    endpoints.ModuleDelete(),
			Payload: api.NewDeletePayload(config, "ids", newModule(ctx)),
		}
	}

	moduleID := func(context.Context) int64 {
		return api.RequireFixture(config.ModuleID, "KUALITEE_MODULE_ID")
	}

	Context("When creating a module", func() {
		Describe("Given a valid payload", func() {
			It("should create the module", func() {
				id := newModule(ctx)

				module, err := client.GetModule(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				Expect(module.Success).To(BeTrue())
			})
		})

		Describe("Given a build that does not exist", func() {
			It("should reject the module", func() {
				resp, err := client.Post(ctx, endpoints.ModuleCreate(), api.NewModulePayload(config, 999999999).Build())
				api.ExpectClientError(resp, err)
			})
		})

		api.ItValidatesRequests(moduleCreate, api.ModuleCreateFields)
	})

	Context("When updating a module", func() {
		Describe("Given a valid payload", func() {
			It("should update the module", func() {
				Expect(client.UpdateModule(ctx, api.NewModuleUpdatePayload(config, newModule(ctx)).Build())).To(Succeed())
			})
		})

		Describe("Given the same update twice", func() {
			It("should apply both without a server error", func() {
				form := api.NewModuleUpdatePayload(config, newModule(ctx)).Build()

				api.ExpectSuccess(client.Post(ctx, endpoints.ModuleUpdate(), form))
				api.ExpectNoServerError(client.Post(ctx, endpoints.ModuleUpdate(), form))
			})
		})

		Describe("Given a module that was deleted", func() {
			It("should reject the update", func() {
				id := newModule(ctx)
				Expect(client.DeleteModules(ctx, id)).To(Succeed())

				api.ExpectGone(client.Post(ctx, endpoints.ModuleUpdate(), api.NewModuleUpdatePayload(config, id).Build()))
			})
		})

		api.ItValidatesRequests(moduleUpdate, api.ModuleUpdateFields)
	})

	Context("When deleting modules", func() {
		Describe("Given multiple modules", func() {
			It("should delete every module in the list", func() {
				Expect(client.DeleteModules(ctx, newModule(ctx), newModule(ctx))).To(Succeed())
			})
		})

		Describe("Given a module that was already deleted", func() {
			It("should report the module gone", func() {
				form := api.NewDeletePayload(config, "ids", newModule(ctx)).Build()

				api.ExpectSuccess(client.Post(ctx, endpoints.ModuleDelete(), form))
				api.ExpectGone(client.Post(ctx, endpoints.ModuleDelete(), form))
			})
		})

		api.ItValidatesRequests(moduleDelete, api.DeleteFields)
		api.ItRejectsSparseLists(moduleDelete, "ids[0]")
	})

	Context("When listing modules", func() {
		Describe("Given a valid project", func() {
			It("should include a new module", func() {
				id := newModule(ctx)

				modules, err := client.ListModules(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.ItemIDs(modules, "module_id")).To(ContainElement(id))
			})
		})

		api.ItValidatesRequests(project(endpoints.ModuleList()), api.ProjectFields)
		api.ItHonoursRateLimit(project(endpoints.ModuleList()))
	})

	Context("When retrieving a module", func() {
		Describe("Given the module exists", func() {
			It("should return the module", func() {
				resp, err := client.Post(ctx, endpoints.ModuleDetail(), api.NewDetailPayload(config, "module_id", moduleID(ctx)).Build())
				api.ExpectSuccess(resp, err)
				api.ExpectShape(resp, kualitee.SchemaObjectEnvelope)
			})
		})

		api.ItValidatesRequests(detail(endpoints.ModuleDetail(), "module_id", moduleID), api.ModuleDetailFields)
	})
})
