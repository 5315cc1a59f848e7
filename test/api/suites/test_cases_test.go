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

var _ = Describe("Test Case Management", func() {
	newTestCase := func(ctx context.Context) int64 {
		return api.CreateTestCaseWithCleanup(client, ctx, config, api.NewTestCasePayload(config, api.TestScenarioFixture(client, ctx, config)))
	}

	target := func(path string, payload func(ctx context.Context) *api.Payload) api.TargetFunc {
		return func(ctx context.Context) api.Target {
			return api.Target{
				Client:  client,
				Path:    path,
				Payload: payload(ctx),
			}
		}
	}

	testCaseCreate := target(endpoints.TestCaseCreate(), func(ctx context.Context) *api.Payload {
		return api.NewTestCasePayload(config, api.TestScenarioFixture(client, ctx, config))
	})

	testCaseUpdate := target(endpoints.TestCaseUpdate(), func(ctx context.Context) *api.Payload {
		return api.NewTestCaseUpdatePayload(config, newTestCase(ctx))
	})

	testCaseCopy := target(endpoints.TestCaseCopy(), func(ctx context.Context) *api.Payload {
		return api.NewTestCaseCopyPayload(config, api.TestScenarioFixture(client, ctx, config), newTestCase(ctx))
	})

	testCaseDuplicate := target(endpoints.TestCaseDuplicate(), func(ctx context.Context) *api.Payload {
		return api.NewDetailPayload(config, "tc_id", newTestCase(ctx))
	})

	testCaseDelete := target(endpoints.TestCaseDelete(), func(ctx context.Context) *api.Payload {
		return api.NewDeletePayload(config, "tc_ids", newTestCase(ctx))
	})

	testCaseID := func(context.Context) int64 {
		return api.RequireFixture(config.TestCaseID, "KUALITEE_TEST_CASE_ID")
	}

	// cleanUpCopies deletes the test cases a copy or duplicate created.
	cleanUpCopies := func(ids []int64) {
		DeferCleanup(func(ctx SpecContext) {
			if len(ids) == 0 {
				return
			}

			if err := client.DeleteTestCases(ctx, ids...); err != nil {
				GinkgoWriter.Printf("Warning: Failed to clean up test cases %v: %v\n", ids, err)
			}
		})
	}

	Context("When creating a test case", func() {
		Describe("Given a valid payload", func() {
			It("should create the test case", func() {
				testCase, err := client.GetTestCase(ctx, newTestCase(ctx))
				Expect(err).NotTo(HaveOccurred())
				Expect(testCase.Success).To(BeTrue())
			})
		})

		Describe("Given a test scenario that does not exist", func() {
			It("should reject the test case", func() {
				resp, err := client.Post(ctx, endpoints.TestCaseCreate(), api.NewTestCasePayload(config, 999999999).Build())
				api.ExpectClientError(resp, err)
			})
		})

		api.ItValidatesRequests(testCaseCreate, api.TestCaseCreateFields)
	})

	Context("When updating a test case", func() {
		Describe("Given a valid payload", func() {
			It("should update the test case", func() {
				Expect(client.UpdateTestCase(ctx, api.NewTestCaseUpdatePayload(config, newTestCase(ctx)).Build())).To(Succeed())
			})
		})

		Describe("Given the same update twice", func() {
			It("should apply both without a server error", func() {
				form := api.NewTestCaseUpdatePayload(config, newTestCase(ctx)).Build()

				api.ExpectSuccess(client.Post(ctx, endpoints.TestCaseUpdate(), form))
				api.ExpectNoServerError(client.Post(ctx, endpoints.TestCaseUpdate(), form))
			})
		})

		api.ItValidatesRequests(testCaseUpdate, api.TestCaseUpdateFields)
	})

	Context("When copying test cases", func() {
		Describe("Given multiple test cases", func() {
			It("should copy every test case into the scenario", func() {
				scenarioID := api.TestScenarioFixture(client, ctx, config)

				envelope, err := client.CopyTestCases(ctx, api.NewTestCaseCopyPayload(config, scenarioID, newTestCase(ctx), newTestCase(ctx)).Build())
				Expect(err).NotTo(HaveOccurred())

				copies, err := envelope.DataList()
				Expect(err).NotTo(HaveOccurred())
				cleanUpCopies(api.ItemIDs(copies, "tc_id"))
			})
		})

		api.ItValidatesRequests(testCaseCopy, api.TestCaseCopyFields)
		api.ItRejectsSparseLists(testCaseCopy, "tc_ids[0]")
	})

	Context("When duplicating a test case", func() {
		Describe("Given the test case exists", func() {
			It("should create a new test case", func() {
				original := newTestCase(ctx)

				duplicate, err := client.DuplicateTestCase(ctx, original)
				Expect(err).NotTo(HaveOccurred())
				cleanUpCopies([]int64{duplicate})

				Expect(duplicate).NotTo(Equal(original))
			})
		})

		Describe("Given the path is sent in another case", func() {
			It("should not fail on the server side", func() {
				Expect(endpoints.TestCaseDuplicate()).To(HaveSuffix("/duplicate"))

				resp, err := client.Post(ctx, kualitee.Path(kualitee.ControllerTestCase, "Duplicate"), api.NewDetailPayload(config, "tc_id", newTestCase(ctx)).Build())
				api.ExpectNoServerError(resp, err)
			})
		})

		api.ItValidatesRequests(testCaseDuplicate, api.TestCaseDuplicateFields)
	})

	Context("When deleting test cases", func() {
		Describe("Given multiple test cases", func() {
			It("should delete every test case in the list", func() {
				Expect(client.DeleteTestCases(ctx, newTestCase(ctx), newTestCase(ctx))).To(Succeed())
			})
		})

		Describe("Given a test case that was already deleted", func() {
			It("should report the test case gone", func() {
				form := api.NewDeletePayload(config, "tc_ids", newTestCase(ctx)).Build()

				api.ExpectSuccess(client.Post(ctx, endpoints.TestCaseDelete(), form))
				api.ExpectGone(client.Post(ctx, endpoints.TestCaseDelete(), form))
			})
		})

		api.ItValidatesRequests(testCaseDelete, api.TestCaseDeleteFields)
		api.ItRejectsSparseLists(testCaseDelete, "tc_ids[0]")
	})

	Context("When listing test cases", func() {
		Describe("Given a valid project", func() {
			It("should include a new test case", func() {
				id := newTestCase(ctx)

				testCases, err := client.ListTestCases(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.ItemIDs(testCases, "tc_id")).To(ContainElement(id))
			})
		})

		api.ItValidatesRequests(project(endpoints.TestCaseList()), api.ProjectFields)
		api.ItHonoursRateLimit(project(endpoints.TestCaseList()))
	})

	Context("When retrieving a test case", func() {
		Describe("Given the test case exists", func() {
			It("should return the test case", func() {
				resp, err := client.Post(ctx, endpoints.TestCaseDetail(), api.NewDetailPayload(config, "tc_id", testCaseID(ctx)).Build())
				api.ExpectSuccess(resp, err)
				api.ExpectShape(resp, kualitee.SchemaObjectEnvelope)
			})
		})

		api.ItValidatesRequests(detail(endpoints.TestCaseDetail(), "tc_id", testCaseID), api.TestCaseDetailFields)
	})
})
