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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/samber/lo"

	"github.com/LUCASCNASC/kualitee-api-tests/pkg/kualitee"
)

// Agent identifies the suites in the tracestate header.
const Agent = "ginkgo"

// APIClient wraps the shared request helper with typed operations.
type APIClient struct {
	client    *kualitee.Client
	config    *TestConfig
	endpoints *kualitee.Endpoints
}

// NewAPIClientWithConfig returns a client logging to the Ginkgo writer.
func NewAPIClientWithConfig(config *TestConfig, options ...kualitee.Option) *APIClient {
	options = append([]kualitee.Option{
		kualitee.WithTimeout(config.RequestTimeout),
		kualitee.WithLogger(ginkgo.GinkgoLogr.WithName("kualitee")),
		kualitee.WithAgent(Agent),
		kualitee.WithRequestLogging(config.LogRequests || config.DebugLogging),
		kualitee.WithResponseLogging(config.LogResponses || config.DebugLogging),
	}, options...)

	return &APIClient{
		client:    kualitee.New(config.BaseURL, config.Token, options...),
		config:    config,
		endpoints: kualitee.NewEndpoints(),
	}
}

// Endpoints returns the endpoint catalog.
func (c *APIClient) Endpoints() *kualitee.Endpoints {
	return c.endpoints
}

// WithToken returns a copy of the client authenticating with token.
func (c *APIClient) WithToken(token string) *APIClient {
	clone := *c
	clone.client = c.client.WithToken(token)

	return &clone
}

// Post sends a form without failing on the status code.
func (c *APIClient) Post(ctx context.Context, path string, form *kualitee.Form) (*kualitee.Response, error) {
	return c.client.Post(ctx, path, form)
}

// Do sends an arbitrary request.
func (c *APIClient) Do(ctx context.Context, req *kualitee.Request) (*kualitee.Response, error) {
	return c.client.Do(ctx, req)
}

// PostWithoutToken sends the form with no token field at all.
func (c *APIClient) PostWithoutToken(ctx context.Context, path string, form *kualitee.Form) (*kualitee.Response, error) {
	return c.client.Do(ctx, &kualitee.Request{Path: path, Form: form, OmitToken: true})
}

// PostWithMethod sends the form with another HTTP method.
func (c *APIClient) PostWithMethod(ctx context.Context, method, path string, form *kualitee.Form) (*kualitee.Response, error) {
	return c.client.Do(ctx, &kualitee.Request{Method: method, Path: path, Form: form})
}

// PostWithEncoding sends the form with another body encoding.
func (c *APIClient) PostWithEncoding(ctx context.Context, path string, form *kualitee.Form, encoding kualitee.Encoding) (*kualitee.Response, error) {
	return c.client.Do(ctx, &kualitee.Request{Path: path, Form: form, Encoding: encoding})
}

// Burst fires n identical requests concurrently.
func (c *APIClient) Burst(ctx context.Context, n int, path string, form *kualitee.Form) *kualitee.BurstResult {
	return kualitee.Burst(ctx, n, func(ctx context.Context) (*kualitee.Response, error) {
		return c.client.Post(ctx, path, form.Clone())
	})
}

// succeed sends the form and requires a successful envelope.
func (c *APIClient) succeed(ctx context.Context, path string, form *kualitee.Form, what string) (*kualitee.Envelope, error) {
	resp, err := c.client.PostExpect(ctx, path, form, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	if err := kualitee.CheckSuccess(resp); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	envelope, err := resp.Envelope()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return envelope, nil
}

// create sends a creation request and extracts the new identifier.
func (c *APIClient) create(ctx context.Context, path string, form *kualitee.Form, what string, keys ...string) (int64, error) {
	envelope, err := c.succeed(ctx, path, form, "creating "+what)
	if err != nil {
		return 0, err
	}

	id, err := envelope.ID(append(keys, "id")...)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", what, err)
	}

	return id, nil
}

// list returns the data array of a list operation.
func (c *APIClient) list(ctx context.Context, path, what string) ([]map[string]any, error) {
	envelope, err := c.succeed(ctx, path, NewPayload(c.config).Build(), "listing "+what)
	if err != nil {
		return nil, err
	}

	items, err := envelope.DataList()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	return items, nil
}

// ItemIDs extracts the identifiers of list items, looking at keys and
// then "id".
func ItemIDs(items []map[string]any, keys ...string) []int64 {
	keys = append(keys, "id")

	return lo.FilterMap(items, func(item map[string]any, _ int) (int64, bool) {
		return kualitee.ItemID(item, keys...)
	})
}

func (c *APIClient) CreateBuild(ctx context.Context, form *kualitee.Form) (int64, error) {
	return c.create(ctx, c.endpoints.BuildsCreate(), form, "build", "build_id")
}

func (c *APIClient) UpdateBuild(ctx context.Context, form *kualitee.Form) error {
	_, err := c.succeed(ctx, c.endpoints.BuildsUpdate(), form, "updating build")
	return err
}

func (c *APIClient) DeleteBuilds(ctx context.Context, ids ...int64) error {
	_, err := c.succeed(ctx, c.endpoints.BuildsDelete(), NewDeletePayload(c.config, "ids", ids...).Build(), "deleting builds")
	return err
}

func (c *APIClient) ListBuilds(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, c.endpoints.BuildsList(), "builds")
}

func (c *APIClient) GetBuild(ctx context.Context, id int64) (*kualitee.Envelope, error) {
	return c.succeed(ctx, c.endpoints.BuildsDetail(), NewDetailPayload(c.config, "build_id", id).Build(), "getting build")
}

func (c *APIClient) CreateCycle(ctx context.Context, form *kualitee.Form) (int64, error) {
	return c.create(ctx, c.endpoints.CycleCreate(), form, "cycle", "cycle_id")
}

func (c *APIClient) ListCycles(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, c.endpoints.CycleList(), "cycles")
}

func (c *APIClient) CreateDefect(ctx context.Context, form *kualitee.Form) (int64, error) {
	return c.create(ctx, c.endpoints.DefectCreate(), form, "defect", "defect_id")
}

func (c *APIClient) UpdateDefect(ctx context.Context, form *kualitee.Form) error {
	_, err := c.succeed(ctx, c.endpoints.DefectUpdate(), form, "updating defect")
	return err
}

// CloseDefect moves the defect to its terminal state, the API offers no
// way to delete it.
func (c *APIClient) CloseDefect(ctx context.Context, id int64) error {
	return c.UpdateDefect(ctx, NewDetailPayload(c.config, "defect_id", id).With("status", "Closed").Build())
}

func (c *APIClient) ListDefects(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, c.endpoints.DefectList(), "defects")
}

func (c *APIClient) GetDefect(ctx context.Context, id int64) (*kualitee.Envelope, error) {
	return c.succeed(ctx, c.endpoints.DefectDetail(), NewDetailPayload(c.config, "defect_id", id).Build(), "getting defect")
}

func (c *APIClient) CreateModule(ctx context.Context, form *kualitee.Form) (int64, error) {
	return c.create(ctx, c.endpoints.ModuleCreate(), form, "module", "module_id")
}

func (c *APIClient) UpdateModule(ctx context.Context, form *kualitee.Form) error {
	_, err := c.succeed(ctx, c.endpoints.ModuleUpdate(), form, "updating module")
	return err
}

func (c *APIClient) DeleteModules(ctx context.Context, ids ...int64) error {
	_, err := c.succeed(ctx, c.endpoints.ModuleDelete(), NewDeletePayload(c.config, "ids", ids...).Build(), "deleting modules")
	return err
}

func (c *APIClient) ListModules(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, c.endpoints.ModuleList(), "modules")
}

func (c *APIClient) GetModule(ctx context.Context, id int64) (*kualitee.Envelope, error) {
	return c.succeed(ctx, c.endpoints.ModuleDetail(), NewDetailPayload(c.config, "module_id", id).Build(), "getting module")
}

func (c *APIClient) CreateRequirement(ctx context.Context, form *kualitee.Form) (int64, error) {
	return c.create(ctx, c.endpoints.RequirementCreate(), form, "requirement", "requirement_id")
}

func (c *APIClient) UpdateRequirement(ctx context.Context, form *kualitee.Form) error {
	_, err := c.succeed(ctx, c.endpoints.RequirementUpdate(), form, "updating requirement")
	return err
}

func (c *APIClient) DeleteRequirements(ctx context.Context, ids ...int64) error {
	_, err := c.succeed(ctx, c.endpoints.RequirementDelete(), NewDeletePayload(c.config, "ids", ids...).Build(), "deleting requirements")
	return err
}

func (c *APIClient) ListRequirements(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, c.endpoints.RequirementList(), "requirements")
}

func (c *APIClient) GetRequirement(ctx context.Context, id int64) (*kualitee.Envelope, error) {
	return c.succeed(ctx, c.endpoints.RequirementDetail(), NewDetailPayload(c.config, "requirement_id", id).Build(), "getting requirement")
}

func (c *APIClient) CreateTestScenario(ctx context.Context, form *kualitee.Form) (int64, error) {
	return c.create(ctx, c.endpoints.TestScenarioCreate(), form, "test scenario", "test_scenario_id")
}

func (c *APIClient) UpdateTestScenario(ctx context.Context, form *kualitee.Form) error {
	_, err := c.succeed(ctx, c.endpoints.TestScenarioUpdate(), form, "updating test scenario")
	return err
}

func (c *APIClient) DeleteTestScenarios(ctx context.Context, ids ...int64) error {
	_, err := c.succeed(ctx, c.endpoints.TestScenarioDelete(), NewDeletePayload(c.config, "ids", ids...).Build(), "deleting test scenarios")
	return err
}

func (c *APIClient) ListTestScenarios(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, c.endpoints.TestScenarioList(), "test scenarios")
}

func (c *APIClient) GetTestScenario(ctx context.Context, id int64) (*kualitee.Envelope, error) {
	return c.succeed(ctx, c.endpoints.TestScenarioDetail(), NewDetailPayload(c.config, "test_scenario_id", id).Build(), "getting test scenario")
}

func (c *APIClient) CreateTestCase(ctx context.Context, form *kualitee.Form) (int64, error) {
	return c.create(ctx, c.endpoints.TestCaseCreate(), form, "test case", "tc_id")
}

func (c *APIClient) UpdateTestCase(ctx context.Context, form *kualitee.Form) error {
	_, err := c.succeed(ctx, c.endpoints.TestCaseUpdate(), form, "updating test case")
	return err
}

// CopyTestCases copies test cases into another scenario and returns the
// envelope, which lists the copies.
func (c *APIClient) CopyTestCases(ctx context.Context, form *kualitee.Form) (*kualitee.Envelope, error) {
	return c.succeed(ctx, c.endpoints.TestCaseCopy(), form, "copying test cases")
}

func (c *APIClient) DuplicateTestCase(ctx context.Context, id int64) (int64, error) {
	return c.create(ctx, c.endpoints.TestCaseDuplicate(), NewDetailPayload(c.config, "tc_id", id).Build(), "test case duplicate", "tc_id")
}

func (c *APIClient) DeleteTestCases(ctx context.Context, ids ...int64) error {
	_, err := c.succeed(ctx, c.endpoints.TestCaseDelete(), NewDeletePayload(c.config, "tc_ids", ids...).Build(), "deleting test cases")
	return err
}

func (c *APIClient) ListTestCases(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, c.endpoints.TestCaseList(), "test cases")
}

func (c *APIClient) GetTestCase(ctx context.Context, id int64) (*kualitee.Envelope, error) {
	return c.succeed(ctx, c.endpoints.TestCaseDetail(), NewDetailPayload(c.config, "tc_id", id).Build(), "getting test case")
}

func (c *APIClient) ListUsers(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, c.endpoints.UserList(), "users")
}

func (c *APIClient) GetUser(ctx context.Context, id int64) (*kualitee.Envelope, error) {
	return c.succeed(ctx, c.endpoints.UserDetail(), NewDetailPayload(c.config, "user_id", id).Build(), "getting user")
}

func (c *APIClient) AddUsersToProject(ctx context.Context, ids ...int64) error {
	_, err := c.succeed(ctx, c.endpoints.UserAddToProject(), NewAddToProjectPayload(c.config, ids...).Build(), "adding users to project")
	return err
}
