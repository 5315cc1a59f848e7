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
	"context"
	"net/http"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// DefaultBurst is how many identical requests a rate limit probe fires.
const DefaultBurst = 10

// BurstResult collects the outcome of a rate limit probe.
type BurstResult struct {
	// Statuses holds one entry per completed request, in completion order.
	Statuses []int
	// Err combines the errors of requests that got no response.
	Err error
}

// Count returns how many requests answered with status.
func (r *BurstResult) Count(status int) int {
	return lo.Count(r.Statuses, status)
}

// RateLimited reports whether any request was throttled.
func (r *BurstResult) RateLimited() bool {
	return r.Count(http.StatusTooManyRequests) > 0
}

// Unexpected returns the distinct statuses outside allowed.
func (r *BurstResult) Unexpected(allowed ...int) []int {
	return lo.Uniq(lo.Filter(r.Statuses, func(status int, _ int) bool {
		return !lo.Contains(allowed, status)
	}))
}

// Burst runs fn n times concurrently and waits for all of them.
func Burst(ctx context.Context, n int, fn func(context.Context) (*Response, error)) *BurstResult {
	if n <= 0 {
		n = DefaultBurst
	}

	var (
		wg     sync.WaitGroup
		lock   sync.Mutex
		result = &BurstResult{
			Statuses: make([]int, 0, n),
		}
	)

	for range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			resp, err := fn(ctx)

			lock.Lock()
			defer lock.Unlock()

			// A status mismatch still carries a response worth counting.
			if resp == nil {
				result.Err = multierr.Append(result.Err, err)
				return
			}

			result.Statuses = append(result.Statuses, resp.StatusCode)
		}()
	}

	wg.Wait()

	return result
}
