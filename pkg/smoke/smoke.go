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

// Package smoke runs a read-only pass over the API: every list, detail and
// dashboard endpoint is called once as intended and then once for each of
// the standard rejections. Nothing is created, so it is safe to point at a
// production tenant from CI.
package smoke

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/LUCASCNASC/kualitee-api-tests/pkg/kualitee"
)

// Probe names one kind of request made against a check.
type Probe string

const (
	ProbePositive         Probe = "positive"
	ProbeMissingToken     Probe = "missing-token"
	ProbeInvalidToken     Probe = "invalid-token"
	ProbeWrongMethod      Probe = "wrong-method"
	ProbeWrongContentType Probe = "wrong-content-type"
	ProbeBurst            Probe = "burst"
)

// Check is one endpoint with a valid payload.
type Check struct {
	Name string
	Path string
	// Form returns a fresh valid payload without the token.
	Form func() *kualitee.Form
	// Schema is the expected shape of a successful response.
	Schema kualitee.Schema
}

// Result is the outcome of one probe.
type Result struct {
	Check    string
	Probe    Probe
	Status   int
	Duration time.Duration
	Err      error
}

// Report gathers every result of a run.
type Report struct {
	Results []Result
}

// Failed returns the results carrying an error.
func (r *Report) Failed() []Result {
	return lo.Filter(r.Results, func(result Result, _ int) bool {
		return result.Err != nil
	})
}

// Err combines every failure, nil when the run passed.
func (r *Report) Err() error {
	var err error

	for _, result := range r.Failed() {
		err = multierr.Append(err, fmt.Errorf("%s/%s: %w", result.Check, result.Probe, result.Err))
	}

	return err
}

// Options tunes a Runner.
type Options struct {
	// Burst is the size of the rate limit probe fired at the first check,
	// zero disables it.
	Burst  int
	Logger logr.Logger
}

// Runner executes checks against a client.
type Runner struct {
	client *kualitee.Client
	checks []Check
	burst  int
	logger logr.Logger
}

// New returns a runner.
func New(client *kualitee.Client, checks []Check, options Options) *Runner {
	logger := options.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	return &Runner{
		client: client,
		checks: checks,
		burst:  options.Burst,
		logger: logger,
	}
}

type probeFunc func(ctx context.Context, check Check) (*kualitee.Response, error)

// Run executes every probe of every check in order. It only stops early
// when ctx is done.
func (r *Runner) Run(ctx context.Context) *Report {
	report := &Report{}

	probes := []struct {
		probe Probe
		fn    probeFunc
	}{
		{ProbePositive, r.positive},
		{ProbeMissingToken, r.missingToken},
		{ProbeInvalidToken, r.invalidToken},
		{ProbeWrongMethod, r.wrongMethod},
		{ProbeWrongContentType, r.wrongContentType},
	}

	for i, check := range r.checks {
		for _, p := range probes {
			if ctx.Err() != nil {
				return report
			}

			report.Results = append(report.Results, r.record(ctx, check, p.probe, p.fn))
		}

		if i == 0 && r.burst > 0 {
			report.Results = append(report.Results, r.burstProbe(ctx, check))
		}
	}

	return report
}

func (r *Runner) record(ctx context.Context, check Check, probe Probe, fn probeFunc) Result {
	resp, err := fn(ctx, check)

	result := Result{
		Check: check.Name,
		Probe: probe,
		Err:   err,
	}

	if resp != nil {
		result.Status = resp.StatusCode
		result.Duration = resp.Duration
	}

	log := r.logger.WithValues("check", check.Name, "probe", probe, "status", result.Status)

	if err != nil {
		log.Error(err, "probe failed")
	} else {
		log.V(1).Info("probe passed", "duration", result.Duration)
	}

	return result
}

func (r *Runner) positive(ctx context.Context, check Check) (*kualitee.Response, error) {
	resp, err := r.client.Post(ctx, check.Path, check.Form())
	if err != nil {
		return nil, err
	}

	return resp, multierr.Combine(
		kualitee.CheckSuccess(resp),
		kualitee.CheckHeaders(resp),
		kualitee.CheckNoLeak(resp),
		kualitee.ValidateEnvelope(resp, check.Schema),
	)
}

// rejected checks the response of a request that must be refused.
func rejected(resp *kualitee.Response, err error, allowed []int) (*kualitee.Response, error) {
	if err != nil {
		return nil, err
	}

	return resp, multierr.Combine(
		kualitee.CheckStatus(resp, allowed...),
		kualitee.CheckNoLeak(resp),
	)
}

func (r *Runner) missingToken(ctx context.Context, check Check) (*kualitee.Response, error) {
	resp, err := r.client.Do(ctx, &kualitee.Request{
		Path:      check.Path,
		Form:      check.Form(),
		OmitToken: true,
	})

	return rejected(resp, err, kualitee.StatusUnauthorized)
}

func (r *Runner) invalidToken(ctx context.Context, check Check) (*kualitee.Response, error) {
	resp, err := r.client.WithToken(uuid.NewString()).Post(ctx, check.Path, check.Form())

	return rejected(resp, err, kualitee.StatusUnauthorized)
}

func (r *Runner) wrongMethod(ctx context.Context, check Check) (*kualitee.Response, error) {
	resp, err := r.client.Do(ctx, &kualitee.Request{
		Method: http.MethodGet,
		Path:   check.Path,
		Form:   check.Form(),
	})

	return rejected(resp, err, kualitee.StatusWrongMethod)
}

func (r *Runner) wrongContentType(ctx context.Context, check Check) (*kualitee.Response, error) {
	resp, err := r.client.Do(ctx, &kualitee.Request{
		Path:     check.Path,
		Form:     check.Form(),
		Encoding: kualitee.EncodingJSON,
	})

	return rejected(resp, err, kualitee.StatusWrongContentType)
}

func (r *Runner) burstProbe(ctx context.Context, check Check) Result {
	start := time.Now()

	burst := kualitee.Burst(ctx, r.burst, func(ctx context.Context) (*kualitee.Response, error) {
		return r.client.Post(ctx, check.Path, check.Form())
	})

	err := burst.Err

	if unexpected := burst.Unexpected(kualitee.StatusBurst...); len(unexpected) > 0 {
		err = multierr.Append(err, fmt.Errorf("%w: burst returned %v", kualitee.ErrUnexpectedStatus, unexpected))
	}

	result := Result{
		Check:    check.Name,
		Probe:    ProbeBurst,
		Duration: time.Since(start),
		Err:      err,
	}

	r.logger.Info("burst complete", "check", check.Name, "requests", len(burst.Statuses), "rateLimited", burst.Count(http.StatusTooManyRequests))

	if err != nil {
		r.logger.Error(err, "probe failed", "check", check.Name, "probe", ProbeBurst)
	}

	return result
}
