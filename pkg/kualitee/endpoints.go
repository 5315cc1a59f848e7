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

package kualitee

import (
	"net/url"
)

// Controllers as they appear in the first path segment.
const (
	ControllerBuild        = "Build"
	ControllerDefect       = "Defect"
	ControllerCycle        = "Cycle"
	ControllerModule       = "Module"
	ControllerRequirement  = "Requirement"
	ControllerTestCase     = "TestCase"
	ControllerTestScenario = "Test Scenario"
	ControllerUser         = "User"
	ControllerDashboard    = "Dashboard"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Path joins a controller and an action, escaping both. The test scenario
// controller contains a space and is sent as "Test%20Scenario".
func Path(controller, action string) string {
	return "/" + url.PathEscape(controller) + "/" + url.PathEscape(action)
}

// Build endpoints.
func (e *Endpoints) BuildsCreate() string {
	return Path(ControllerBuild, "BuildsCreate")
}

func (e *Endpoints) BuildsUpdate() string {
	return Path(ControllerBuild, "BuildsUpdate")
}

func (e *Endpoints) BuildsDelete() string {
	return Path(ControllerBuild, "BuildsDelete")
}

func (e *Endpoints) BuildsList() string {
	return Path(ControllerBuild, "BuildsList")
}

func (e *Endpoints) BuildsDetail() string {
	return Path(ControllerBuild, "BuildsDetail")
}

// Defect endpoints.
func (e *Endpoints) DefectCreate() string {
	return Path(ControllerDefect, "Create")
}

func (e *Endpoints) DefectList() string {
	return Path(ControllerDefect, "List")
}

func (e *Endpoints) DefectUpdate() string {
	return Path(ControllerDefect, "Update")
}

func (e *Endpoints) DefectDetail() string {
	return Path(ControllerDefect, "Detail")
}

// Cycle endpoints.
func (e *Endpoints) CycleCreate() string {
	return Path(ControllerCycle, "CycleCreate")
}

func (e *Endpoints) CycleList() string {
	return Path(ControllerCycle, "CycleList")
}

// Module endpoints.
func (e *Endpoints) ModuleCreate() string {
	return Path(ControllerModule, "ModuleCreate")
}

func (e *Endpoints) ModuleList() string {
	return Path(ControllerModule, "ModuleList")
}

func (e *Endpoints) ModuleUpdate() string {
	return Path(ControllerModule, "ModuleUpdate")
}

func (e *Endpoints) ModuleDelete() string {
	return Path(ControllerModule, "ModuleDelete")
}

func (e *Endpoints) ModuleDetail() string {
	return Path(ControllerModule, "ModuleDetail")
}

// Requirement endpoints.
func (e *Endpoints) RequirementCreate() string {
	return Path(ControllerRequirement, "RequirementCreate")
}

func (e *Endpoints) RequirementList() string {
	return Path(ControllerRequirement, "RequirementList")
}

func (e *Endpoints) RequirementUpdate() string {
	return Path(ControllerRequirement, "RequirementUpdate")
}

func (e *Endpoints) RequirementDelete() string {
	return Path(ControllerRequirement, "RequirementDelete")
}

func (e *Endpoints) RequirementDetail() string {
	return Path(ControllerRequirement, "RequirementDetail")
}

// Test case endpoints.
func (e *Endpoints) TestCaseCreate() string {
	return Path(ControllerTestCase, "Create")
}

func (e *Endpoints) TestCaseUpdate() string {
	return Path(ControllerTestCase, "Update")
}

func (e *Endpoints) TestCaseCopy() string {
	return Path(ControllerTestCase, "Copy")
}

// TestCaseDuplicate is the only lower case action the API exposes.
func (e *Endpoints) TestCaseDuplicate() string {
	return Path(ControllerTestCase, "duplicate")
}

func (e *Endpoints) TestCaseList() string {
	return Path(ControllerTestCase, "List")
}

func (e *Endpoints) TestCaseDetail() string {
	return Path(ControllerTestCase, "Detail")
}

func (e *Endpoints) TestCaseDelete() string {
	return Path(ControllerTestCase, "Delete")
}

// Test scenario endpoints.
func (e *Endpoints) TestScenarioCreate() string {
	return Path(ControllerTestScenario, "Create")
}

func (e *Endpoints) TestScenarioList() string {
	return Path(ControllerTestScenario, "List")
}

func (e *Endpoints) TestScenarioUpdate() string {
	return Path(ControllerTestScenario, "Update")
}

func (e *Endpoints) TestScenarioDelete() string {
	return Path(ControllerTestScenario, "Delete")
}

func (e *Endpoints) TestScenarioDetail() string {
	return Path(ControllerTestScenario, "Detail")
}

// User endpoints.
func (e *Endpoints) UserList() string {
	return Path(ControllerUser, "List")
}

func (e *Endpoints) UserDetail() string {
	return Path(ControllerUser, "Detail")
}

func (e *Endpoints) UserAddToProject() string {
	return Path(ControllerUser, "AddToProject")
}

// Dashboard endpoints.
func (e *Endpoints) DashboardOverview() string {
	return Path(ControllerDashboard, "Overview")
}

func (e *Endpoints) DashboardActivities() string {
	return Path(ControllerDashboard, "Activities")
}

func (e *Endpoints) DashboardTestExecutionStatus() string {
	return Path(ControllerDashboard, "TestExecutionStatus")
}
