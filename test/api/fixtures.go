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
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// createWithCleanup creates a resource, asserts it has an identifier and
// schedules remove for the end of the spec.
func createWithCleanup(what string, create func() (int64, error), remove func(ctx context.Context, id int64) error) int64 {
	GinkgoHelper()

	id, err := create()
	Expect(err).NotTo(HaveOccurred())
	Expect(id).To(BeNumerically(">", 0))

	GinkgoWriter.Printf("Created %s: %d\n", what, id)

	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Cleaning up %s: %d\n", what, id)

		if err := remove(ctx, id); err != nil {
			GinkgoWriter.Printf("Warning: Failed to clean up %s %d: %v\n", what, id, err)
		}
	})

	return id
}

// CreateBuildWithCleanup creates a build that is deleted after the spec.
func CreateBuildWithCleanup(client *APIClient, ctx context.Context, config *TestConfig, payload *Payload) int64 {
	GinkgoHelper()

	return createWithCleanup("build", func() (int64, error) {
		return client.CreateBuild(ctx, payload.Build())
	}, func(ctx context.Context, id int64) error {
		return client.DeleteBuilds(ctx, id)
	})
}

// CreateModuleWithCleanup creates a module that is deleted after the spec.
func CreateModuleWithCleanup(client *APIClient, ctx context.Context, config *TestConfig, payload *Payload) int64 {
	GinkgoHelper()

	return createWithCleanup("module", func() (int64, error) {
		return client.CreateModule(ctx, payload.Build())
	}, func(ctx context.Context, id int64) error {
		return client.DeleteModules(ctx, id)
	})
}

// CreateRequirementWithCleanup creates a requirement that is deleted after
// the spec.
func CreateRequirementWithCleanup(client *APIClient, ctx context.Context, config *TestConfig, payload *Payload) int64 {
	GinkgoHelper()

	return createWithCleanup("requirement", func() (int64, error) {
		return client.CreateRequirement(ctx, payload.Build())
	}, func(ctx context.Context, id int64) error {
		return client.DeleteRequirements(ctx, id)
	})
}

// CreateTestScenarioWithCleanup creates a test scenario that is deleted
// after the spec.
func CreateTestScenarioWithCleanup(client *APIClient, ctx context.Context, config *TestConfig, payload *Payload) int64 {
	GinkgoHelper()

	return createWithCleanup("test scenario", func() (int64, error) {
		return client.CreateTestScenario(ctx, payload.Build())
	}, func(ctx context.Context, id int64) error {
		return client.DeleteTestScenarios(ctx, id)
	})
}

// CreateTestCaseWithCleanup creates a test case that is deleted after the
// spec.
func CreateTestCaseWithCleanup(client *APIClient, ctx context.Context, config *TestConfig, payload *Payload) int64 {
	GinkgoHelper()

	return createWithCleanup("test case", func() (int64, error) {
		return client.CreateTestCase(ctx, payload.Build())
	}, func(ctx context.Context, id int64) error {
		return client.DeleteTestCases(ctx, id)
	})
}

// CreateDefectWithCleanup creates a defect that is closed after the spec.
func CreateDefectWithCleanup(client *APIClient, ctx context.Context, config *TestConfig, payload *Payload) int64 {
	GinkgoHelper()

	return createWithCleanup("defect", func() (int64, error) {
		return client.CreateDefect(ctx, payload.Build())
	}, client.CloseDefect)
}

// RequireFixture skips the spec when an optional fixture identifier is
// not configured.
func RequireFixture(id int64, key string) int64 {
	if id <= 0 {
		Skip(key + " is not configured")
	}

	return id
}

// BuildFixture returns the configured build, or a fresh one.
func BuildFixture(client *APIClient, ctx context.Context, config *TestConfig) int64 {
	GinkgoHelper()

	if config.BuildID > 0 {
		return config.BuildID
	}

	return CreateBuildWithCleanup(client, ctx, config, NewBuildPayload(config))
}

// ModuleFixture returns the configured module, or a fresh one.
func ModuleFixture(client *APIClient, ctx context.Context, config *TestConfig) int64 {
	GinkgoHelper()

	if config.ModuleID > 0 {
		return config.ModuleID
	}

	return CreateModuleWithCleanup(client, ctx, config, NewModulePayload(config, BuildFixture(client, ctx, config)))
}

// RequirementFixture returns the configured requirement, or a fresh one.
func RequirementFixture(client *APIClient, ctx context.Context, config *TestConfig) int64 {
	GinkgoHelper()

	if config.RequirementID > 0 {
		return config.RequirementID
	}

	buildID, moduleID := RequirementParents(client, ctx, config)

	return CreateRequirementWithCleanup(client, ctx, config, NewRequirementPayload(config, buildID, moduleID))
}

// RequirementParents returns a build and a module belonging to it. A
// configured module is assumed to belong to the configured build.
func RequirementParents(client *APIClient, ctx context.Context, config *TestConfig) (int64, int64) {
	GinkgoHelper()

	buildID := BuildFixture(client, ctx, config)

	if config.ModuleID > 0 {
		return buildID, config.ModuleID
	}

	return buildID, CreateModuleWithCleanup(client, ctx, config, NewModulePayload(config, buildID))
}

// TestScenarioFixture returns the configured test scenario, or a fresh one.
func TestScenarioFixture(client *APIClient, ctx context.Context, config *TestConfig) int64 {
	GinkgoHelper()

	if config.TestScenarioID > 0 {
		return config.TestScenarioID
	}

	return CreateTestScenarioWithCleanup(client, ctx, config, NewTestScenarioPayload(config, RequirementFixture(client, ctx, config)))
}

// TestCaseFixture returns the configured test case, or a fresh one.
func TestCaseFixture(client *APIClient, ctx context.Context, config *TestConfig) int64 {
	GinkgoHelper()

	if config.TestCaseID > 0 {
		return config.TestCaseID
	}

	return CreateTestCaseWithCleanup(client, ctx, config, NewTestCasePayload(config, TestScenarioFixture(client, ctx, config)))
}

// DefectFixture returns the configured defect, or a fresh one.
func DefectFixture(client *APIClient, ctx context.Context, config *TestConfig) int64 {
	GinkgoHelper()

	if config.DefectID > 0 {
		return config.DefectID
	}

	return CreateDefectWithCleanup(client, ctx, config, NewDefectPayload(config, BuildFixture(client, ctx, config)))
}
