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

package smoke

import (
	"github.com/LUCASCNASC/kualitee-api-tests/pkg/config"
	"github.com/LUCASCNASC/kualitee-api-tests/pkg/kualitee"
)

// projectForm returns a form factory carrying project_id and the optional
// extra identifier.
func projectForm(projectID int64, field string, id int64) func() *kualitee.Form {
	return func() *kualitee.Form {
		form := kualitee.NewForm().Set("project_id", projectID)

		if field != "" {
			form.Set(field, id)
		}

		return form
	}
}

// DefaultChecks returns the read-only endpoints reachable with c. Detail
// endpoints are only included when their fixture identifier is configured.
func DefaultChecks(c *config.Config) []Check {
	e := kualitee.NewEndpoints()
	list := func(name, path string) Check {
		return Check{
			Name:   name,
			Path:   path,
			Form:   projectForm(c.ProjectID, "", 0),
			Schema: kualitee.SchemaListEnvelope,
		}
	}

	checks := []Check{
		list("builds", e.BuildsList()),
		list("defects", e.DefectList()),
		list("cycles", e.CycleList()),
		list("modules", e.ModuleList()),
		list("requirements", e.RequirementList()),
		list("test-cases", e.TestCaseList()),
		list("test-scenarios", e.TestScenarioList()),
		list("users", e.UserList()),
		{Name: "dashboard-overview", Path: e.DashboardOverview(), Form: projectForm(c.ProjectID, "", 0), Schema: kualitee.SchemaEnvelope},
		{Name: "dashboard-activities", Path: e.DashboardActivities(), Form: projectForm(c.ProjectID, "", 0), Schema: kualitee.SchemaEnvelope},
		{Name: "dashboard-test-execution", Path: e.DashboardTestExecutionStatus(), Form: projectForm(c.ProjectID, "", 0), Schema: kualitee.SchemaEnvelope},
	}

	details := []struct {
		name  string
		path  string
		field string
		id    int64
	}{
		{"build-detail", e.BuildsDetail(), "build_id", c.BuildID},
		{"defect-detail", e.DefectDetail(), "defect_id", c.DefectID},
		{"module-detail", e.ModuleDetail(), "module_id", c.ModuleID},
		{"requirement-detail", e.RequirementDetail(), "requirement_id", c.RequirementID},
		{"test-case-detail", e.TestCaseDetail(), "tc_id", c.TestCaseID},
		{"test-scenario-detail", e.TestScenarioDetail(), "test_scenario_id", c.TestScenarioID},
		{"user-detail", e.UserDetail(), "user_id", c.UserID},
	}

	for _, d := range details {
		if d.id <= 0 {
			continue
		}

		checks = append(checks, Check{
			Name:   d.name,
			Path:   d.path,
			Form:   projectForm(c.ProjectID, d.field, d.id),
			Schema: kualitee.SchemaObjectEnvelope,
		})
	}

	return checks
}
