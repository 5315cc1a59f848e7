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
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the date format accepted by the API.
const DateLayout = "2006-01-02"

// GenerateTestName returns a unique, recognisable resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("apitest-%s-%s", prefix, uuid.NewString()[:8])
}

// Date returns today shifted by days, formatted for the API.
func Date(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(DateLayout)
}
