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
	"os"

	"github.com/LUCASCNASC/kualitee-api-tests/pkg/config"
)

// TestConfig is the configuration shared by every suite.
type TestConfig = config.Config

// envPaths are searched in order, relative to the directory go test runs
// the suite from.
//
//nolint:gochecknoglobals
var envPaths = []string{
	"../../../test/.env", // From test/api/suites directory
	"../../test/.env",    // From test/api directory
	"test/.env",          // From the repository root
}

// LoadTestConfig loads configuration from environment variables, an optional
// .env file and the optional YAML file named by KUALITEE_CONFIG_FILE.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	return config.Load(config.Options{
		EnvFile:    config.FindEnvFile(envPaths...),
		ConfigFile: os.Getenv("KUALITEE_CONFIG_FILE"),
	})
}
