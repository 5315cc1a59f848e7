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

package api

import (
	"strings"

	"github.com/samber/lo"

	"github.com/LUCASCNASC/kualitee-api-tests/pkg/kualitee"
)

// Payload builds a request form for one operation.
type Payload struct {
	form *kualitee.Form
}

// NewPayload returns a payload scoped to the configured project.
func NewPayload(config *TestConfig) *Payload {
	return &Payload{
		form: kualitee.NewForm().Set("project_id", config.ProjectID),
	}
}

// With sets a field, replacing any previous value.
func (p *Payload) With(key string, value any) *Payload {
	p.form.Set(key, value)
	return p
}

// Without removes a field and its bracketed children.
func (p *Payload) Without(key string) *Payload {
	p.form.Del(key)
	return p
}

// WithList sets a bracketed list field.
func (p *Payload) WithList(key string, values ...any) *Payload {
	p.form.SetList(key, values...)
	return p
}

// Build returns a copy of the form, so one payload can be sent many times.
func (p *Payload) Build() *kualitee.Form {
	return p.form.Clone()
}

// Required fields per operation, used to enumerate negative scenarios.
//
//nolint:gochecknoglobals
var (
	ProjectFields = []kualitee.Field{
		kualitee.IDField("project_id"),
	}

	BuildCreateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.TextField("build_name"),
		kualitee.DateField("start_date"),
		kualitee.DateField("end_date"),
	}

	BuildUpdateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField("build_id"),
		kualitee.TextField("build_name"),
		kualitee.DateField("start_date"),
		kualitee.DateField("end_date"),
	}

	BuildDetailFields = detailFields("build_id")

	DeleteFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField("ids[0]"),
	}

	CycleCreateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.TextField("cycle_name"),
		kualitee.IDField("build_id"),
		kualitee.DateField("start_date"),
		kualitee.DateField("end_date"),
	}

	DefectCreateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.TextField("defect_title"),
		kualitee.IDField("build_id"),
	}

	DefectUpdateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField("defect_id"),
		kualitee.TextField("defect_title"),
	}

	DefectDetailFields = detailFields("defect_id")

	ModuleCreateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.TextField("module_name"),
		kualitee.IDField("build_id"),
	}

	ModuleUpdateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField("module_id"),
		kualitee.TextField("module_name"),
	}

	ModuleDetailFields = detailFields("module_id")

	RequirementCreateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.TextField("requirement_name"),
		kualitee.IDField("build_id"),
		kualitee.IDField("module_id"),
	}

	RequirementUpdateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField("requirement_id"),
		kualitee.TextField("requirement_name"),
	}

	RequirementDetailFields = detailFields("requirement_id")

	TestScenarioCreateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.TextField("scenario_name"),
		kualitee.IDField("requirement_id"),
	}

	TestScenarioUpdateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField("test_scenario_id"),
		kualitee.TextField("scenario_name"),
	}

	TestScenarioDetailFields = detailFields("test_scenario_id")

	TestCaseCreateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.TextField("tc_name"),
		kualitee.IDField("test_scenario_id"),
	}

	TestCaseUpdateFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField("tc_id"),
		kualitee.TextField("tc_name"),
	}

	TestCaseCopyFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField("test_scenario_id"),
		kualitee.IDField("tc_ids[0]"),
	}

	TestCaseDuplicateFields = detailFields("tc_id")

	TestCaseDeleteFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField("tc_ids[0]"),
	}

	TestCaseDetailFields = detailFields("tc_id")

	UserDetailFields = detailFields("user_id")

	UserAddToProjectFields = []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField("project_user[0]"),
	}
)

func detailFields(id string) []kualitee.Field {
	return []kualitee.Field{
		kualitee.IDField("project_id"),
		kualitee.IDField(id),
	}
}

// NewDetailPayload addresses a single resource by its identifier field.
func NewDetailPayload(config *TestConfig, field string, id int64) *Payload {
	return NewPayload(config).With(field, id)
}

// NewDeletePayload addresses resources through a bracketed list field, ids
// or tc_ids.
func NewDeletePayload(config *TestConfig, field string, ids ...int64) *Payload {
	return NewPayload(config).WithList(field, toAny(ids)...)
}

// NewBuildPayload returns a valid build creation payload.
func NewBuildPayload(config *TestConfig) *Payload {
	return NewPayload(config).
		With("build_name", GenerateTestName("build")).
		With("start_date", Date(0)).
		With("end_date", Date(30)).
		With("description", "created by the API test suite")
}

// NewBuildUpdatePayload returns a valid build update payload.
func NewBuildUpdatePayload(config *TestConfig, buildID int64) *Payload {
	return NewBuildPayload(config).
		With("build_id", buildID).
		With("build_name", GenerateTestName("build-updated"))
}

// NewCyclePayload returns a valid test cycle creation payload.
func NewCyclePayload(config *TestConfig, buildID int64) *Payload {
	return NewPayload(config).
		With("cycle_name", GenerateTestName("cycle")).
		With("build_id", buildID).
		With("start_date", Date(0)).
		With("end_date", Date(7))
}

// NewDefectPayload returns a valid defect creation payload.
func NewDefectPayload(config *TestConfig, buildID int64) *Payload {
	return NewPayload(config).
		With("defect_title", GenerateTestName("defect")).
		With("build_id", buildID).
		With("description", "created by the API test suite").
		With("severity", "Minor")
}

// NewDefectUpdatePayload returns a valid defect update payload.
func NewDefectUpdatePayload(config *TestConfig, defectID int64) *Payload {
	return NewPayload(config).
		With("defect_id", defectID).
		With("defect_title", GenerateTestName("defect-updated"))
}

// NewModulePayload returns a valid module creation payload.
func NewModulePayload(config *TestConfig, buildID int64) *Payload {
	return NewPayload(config).
		With("module_name", GenerateTestName("module")).
		With("build_id", buildID).
		With("description", "created by the API test suite")
}

// NewModuleUpdatePayload returns a valid module update payload.
func NewModuleUpdatePayload(config *TestConfig, moduleID int64) *Payload {
	return NewPayload(config).
		With("module_id", moduleID).
		With("module_name", GenerateTestName("module-updated"))
}

// NewRequirementPayload returns a valid requirement creation payload.
func NewRequirementPayload(config *TestConfig, buildID, moduleID int64) *Payload {
	return NewPayload(config).
		With("requirement_name", GenerateTestName("requirement")).
		With("build_id", buildID).
		With("module_id", moduleID).
		With("description", "created by the API test suite")
}

// NewRequirementUpdatePayload returns a valid requirement update payload.
func NewRequirementUpdatePayload(config *TestConfig, requirementID int64) *Payload {
	return NewPayload(config).
		With("requirement_id", requirementID).
		With("requirement_name", GenerateTestName("requirement-updated"))
}

// NewTestScenarioPayload returns a valid test scenario creation payload.
func NewTestScenarioPayload(config *TestConfig, requirementID int64) *Payload {
	return NewPayload(config).
		With("scenario_name", GenerateTestName("scenario")).
		With("requirement_id", requirementID)
}

// NewTestScenarioUpdatePayload returns a valid test scenario update payload.
func NewTestScenarioUpdatePayload(config *TestConfig, scenarioID int64) *Payload {
	return NewPayload(config).
		With("test_scenario_id", scenarioID).
		With("scenario_name", GenerateTestName("scenario-updated"))
}

// NewTestCasePayload returns a valid test case creation payload.
func NewTestCasePayload(config *TestConfig, scenarioID int64) *Payload {
	return NewPayload(config).
		With("tc_name", GenerateTestName("testcase")).
		With("test_scenario_id", scenarioID).
		With("summary", "created by the API test suite")
}

// NewTestCaseUpdatePayload returns a valid test case update payload.
func NewTestCaseUpdatePayload(config *TestConfig, testCaseID int64) *Payload {
	return NewPayload(config).
		With("tc_id", testCaseID).
		With("tc_name", GenerateTestName("testcase-updated"))
}

// NewTestCaseCopyPayload copies test cases into the scenario.
func NewTestCaseCopyPayload(config *TestConfig, scenarioID int64, testCaseIDs ...int64) *Payload {
	return NewPayload(config).
		With("test_scenario_id", scenarioID).
		WithList("tc_ids", toAny(testCaseIDs)...)
}

// NewAddToProjectPayload assigns users to the project.
func NewAddToProjectPayload(config *TestConfig, userIDs ...int64) *Payload {
	return NewPayload(config).WithList("project_user", toAny(userIDs)...)
}

// ListField returns the list name of an indexed field, "ids" for "ids[0]".
func ListField(name string) string {
	list, _, _ := strings.Cut(name, "[")

	return list
}

func toAny(ids []int64) []any {
	return lo.Map(ids, func(id int64, _ int) any {
		return id
	})
}
