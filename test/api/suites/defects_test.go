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

var _ = Describe("Defect Management", func() {
	newDefect := func(ctx context.Context) int64 {
		return api.CreateDefectWithCleanup(client, ctx, config, api.NewDefectPayload(config, api.BuildFixture(client, ctx, config)))
	}

	defectCreate := func(ctx context.Context) api.Target {
		return api.Target{
			Client:  client,
			Path:    endpoints.DefectCreate(),
			Payload: api.NewDefectPayload(config, api.BuildFixture(client, ctx, config)),
		}
	}

	defectUpdate := func(ctx context.Context) api.Target {
		return api.Target{
			Client:  client,
			Path:    endpoints.DefectUpdate(),
			Payload: api.NewDefectUpdatePayload(config, newDefect(ctx)),
		}
	}

	defectID := func(context.Context) int64 {
		return api.RequireFixture(config.DefectID, "KUALITEE_DEFECT_ID")
	}

	Context("When creating a defect", func() {
		Describe("Given a valid payload", func() {
			It("should create the defect", func() {
				defect, err := client.GetDefect(ctx, newDefect(ctx))
				Expect(err).NotTo(HaveOccurred())
				Expect(defect.Success).To(BeTrue())
			})
		})

		Describe("Given a build that does not exist", func() {
			It("should reject the defect", func() {
				resp, err := client.Post(ctx, endpoints.DefectCreate(), api.NewDefectPayload(config, 999999999).Build())
				api.ExpectClientError(resp, err)
			})
		})

		api.ItValidatesRequests(defectCreate, api.DefectCreateFields)
	})

	Context("When updating a defect", func() {
		Describe("Given a valid payload", func() {
			It("should update the defect", func() {
				Expect(client.UpdateDefect(ctx, api.NewDefectUpdatePayload(config, newDefect(ctx)).Build())).To(Succeed())
			})
		})

		Describe("Given the same update twice", func() {
			It("should apply both without a server error", func() {
				form := api.NewDefectUpdatePayload(config, newDefect(ctx)).Build()

				api.ExpectSuccess(client.Post(ctx, endpoints.DefectUpdate(), form))
				api.ExpectNoServerError(client.Post(ctx, endpoints.DefectUpdate(), form))
			})
		})

		Describe("Given a closed defect", func() {
			It("should close it again without a server error", func() {
				id := newDefect(ctx)
				Expect(client.CloseDefect(ctx, id)).To(Succeed())

				form := api.NewDetailPayload(config, "defect_id", id).With("status", "Closed").Build()
				api.ExpectNoServerError(client.Post(ctx, endpoints.DefectUpdate(), form))
			})
		})

		api.ItValidatesRequests(defectUpdate, api.DefectUpdateFields)
	})

	Context("When listing defects", func() {
		Describe("Given a valid project", func() {
			It("should include a new defect", func() {
				id := newDefect(ctx)

				defects, err := client.ListDefects(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.ItemIDs(defects, "defect_id")).To(ContainElement(id))
			})
		})

		api.ItValidatesRequests(project(endpoints.DefectList()), api.ProjectFields)
		api.ItHonoursRateLimit(project(endpoints.DefectList()))
	})

	Context("When retrieving a defect", func() {
		Describe("Given the defect exists", func() {
			It("should return the defect", func() {
				resp, err := client.Post(ctx, endpoints.DefectDetail(), api.NewDetailPayload(config, "defect_id", defectID(ctx)).Build())
				api.ExpectSuccess(resp, err)
				api.ExpectShape(resp, kualitee.SchemaObjectEnvelope)
			})
		})

		api.ItValidatesRequests(detail(endpoints.DefectDetail(), "defect_id", defectID), api.DefectDetailFields)
	})
})

var _ = Describe("Test Cycle Management", func() {
	cycleCreate := func(ctx context.Context) api.Target {
		return api.Target{
			Client:  client,
			Path:    endpoints.CycleCreate(),
			Payload: api.NewCyclePayload(config, api.BuildFixture(client, ctx, config)),
		}
	}

	Context("When creating a test cycle", func() {
		// Cycles cannot be deleted through the API, so only one is created
		// per run of the positive scenario.
		Describe("Given a valid payload", func() {
			It("should create the cycle", func() {
				id, err := client.CreateCycle(ctx, api.NewCyclePayload(config, api.BuildFixture(client, ctx, config)).Build())
				Expect(err).NotTo(HaveOccurred())

				cycles, err := client.ListCycles(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.ItemIDs(cycles, "cycle_id")).To(ContainElement(id))
			})
		})

		Describe("Given an end date before the start date", func() {
			It("should reject the cycle", func() {
				resp, err := client.Post(ctx, endpoints.CycleCreate(), api.NewCyclePayload(config, api.BuildFixture(client, ctx, config)).
					With("start_date", api.Date(7)).
					With("end_date", api.Date(0)).
					Build())
				api.ExpectClientError(resp, err)
			})
		})

		api.ItValidatesRequests(cycleCreate, api.CycleCreateFields)
	})

	Context("When listing test cycles", func() {
		Describe("Given a valid project", func() {
			It("should return the cycles", func() {
				resp, err := client.Post(ctx, endpoints.CycleList(), api.NewPayload(config).Build())
				api.ExpectSuccess(resp, err)
				api.ExpectShape(resp, kualitee.SchemaListEnvelope)
			})
		})

		Describe("Given a configured cycle", func() {
			It("should include it", func() {
				id := api.RequireFixture(config.CycleID, "KUALITEE_CYCLE_ID")

				cycles, err := client.ListCycles(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.ItemIDs(cycles, "cycle_id")).To(ContainElement(id))
			})
		})

		api.ItValidatesRequests(project(endpoints.CycleList()), api.ProjectFields)
		api.ItHonoursRateLimit(project(endpoints.CycleList()))
	})
})
