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

// Package config loads the environment specific values the test suites and
// the smoke runner inject into requests: the tenant URL, the API token and
// the identifiers of pre-existing fixtures.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	// ErrMissingConfiguration is returned when required keys are unset.
	ErrMissingConfiguration = errors.New("missing required configuration")

	// ErrInvalidConfiguration is returned when a key cannot be parsed.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultRateLimitBurst = 10
)

// Config holds everything a run needs to know about the target tenant.
type Config struct {
	BaseURL        string
	Token          string
	ProjectID      int64
	BuildID        int64
	ModuleID       int64
	DefectID       int64
	CycleID        int64
	RequirementID  int64
	TestCaseID     int64
	TestScenarioID int64
	UserID         int64
	// SecondaryUserID is a user not yet assigned to the project, used by
	// the project membership scenarios.
	SecondaryUserID int64
	RequestTimeout  time.Duration
	RateLimitBurst  int
	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// Options controls where configuration is read from.
type Options struct {
	// EnvFile is an optional dotenv file. Values already present in the
	// process environment take precedence.
	EnvFile string
	// ConfigFile is an optional YAML file whose keys mirror the environment
	// variable names in lower case.
	ConfigFile string
}

// Load reads configuration from the environment, then the optional files.
func Load(options Options) (*Config, error) {
	if options.EnvFile != "" {
		if err := godotenv.Load(options.EnvFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", options.EnvFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("request_timeout", defaultRequestTimeout.String())
	v.SetDefault("rate_limit_burst", defaultRateLimitBurst)
	v.SetDefault("skip_integration", false)
	v.SetDefault("debug_logging", false)
	v.SetDefault("log_requests", false)
	v.SetDefault("log_responses", false)

	if options.ConfigFile != "" {
		v.SetConfigFile(options.ConfigFile)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", options.ConfigFile, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	if err := validateRequired(v); err != nil {
		return nil, err
	}

	ids := map[string]*int64{}

	config := &Config{
		BaseURL:         strings.TrimSuffix(v.GetString("api_base_url"), "/"),
		Token:           v.GetString("kualitee_token"),
		RateLimitBurst:  v.GetInt("rate_limit_burst"),
		SkipIntegration: v.GetBool("skip_integration"),
		DebugLogging:    v.GetBool("debug_logging"),
		LogRequests:     v.GetBool("log_requests"),
		LogResponses:    v.GetBool("log_responses"),
	}

	ids["kualitee_project_id"] = &config.ProjectID
	ids["kualitee_build_id"] = &config.BuildID
	ids["kualitee_module_id"] = &config.ModuleID
	ids["kualitee_defect_id"] = &config.DefectID
	ids["kualitee_cycle_id"] = &config.CycleID
	ids["kualitee_requirement_id"] = &config.RequirementID
	ids["kualitee_test_case_id"] = &config.TestCaseID
	ids["kualitee_test_scenario_id"] = &config.TestScenarioID
	ids["kualitee_user_id"] = &config.UserID
	ids["kualitee_secondary_user_id"] = &config.SecondaryUserID

	timeout, err := time.ParseDuration(v.GetString("request_timeout"))
	if err != nil {
		return nil, fmt.Errorf("%w: REQUEST_TIMEOUT %q is not a valid duration, use a unit such as 30s", ErrInvalidConfiguration, v.GetString("request_timeout"))
	}

	config.RequestTimeout = timeout

	var invalid []string

	for key, target := range ids {
		if v.GetString(key) == "" {
			continue
		}

		id := v.GetInt64(key)
		if id <= 0 {
			invalid = append(invalid, strings.ToUpper(key))
			continue
		}

		*target = id
	}

	if config.RequestTimeout <= 0 {
		invalid = append(invalid, "REQUEST_TIMEOUT")
	}

	if config.RateLimitBurst <= 0 {
		invalid = append(invalid, "RATE_LIMIT_BURST")
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, fmt.Errorf("%w: %s must be positive", ErrInvalidConfiguration, strings.Join(invalid, ", "))
	}

	return config, nil
}

// validateRequired checks that all required configuration values are set.
func validateRequired(v *viper.Viper) error {
	var missing []string

	for _, key := range []string{"api_base_url", "kualitee_token", "kualitee_project_id"} {
		if v.GetString(key) == "" {
			missing = append(missing, strings.ToUpper(key))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}

// FindEnvFile returns the first candidate path that exists, or the empty
// string. A missing file is not an error, CI sets variables directly.
func FindEnvFile(candidates ...string) string {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
