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
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records what the client sent and how the API answered.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kualitee_requests_total",
				Help: "Requests issued against the Kualitee API by endpoint, method and status.",
			},
			[]string{"endpoint", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kualitee_request_duration_seconds",
				Help:    "Round trip time of Kualitee API requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}

	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}

	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}

	return m, nil
}

// observe is nil safe so callers need not check whether metrics are on.
func (m *Metrics) observe(endpoint, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}

	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}

	m.requests.WithLabelValues(endpoint, method, label).Inc()
	m.duration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Requests exposes the request counter, for reports and tests.
func (m *Metrics) Requests() *prometheus.CounterVec {
	return m.requests
}
