// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects Prometheus metrics for conversation clients.
//
// One Metrics value may be shared by many clients.
type Metrics struct {
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
	retries  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetrics creates the collectors under namespace and registers them with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "a2a_client",
				Name:      "attempts_total",
				Help:      "Total number of HTTP attempts by operation and status code.",
			},
			[]string{"operation", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "a2a_client",
				Name:      "attempt_duration_seconds",
				Help:      "Duration of single HTTP attempts in seconds.",
				Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"operation"},
		),
		retries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "a2a_client",
				Name:      "retries_total",
				Help:      "Total number of retries by reason.",
			},
			[]string{"reason"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "a2a_client",
				Name:      "failures_total",
				Help:      "Total number of failed calls by error kind.",
			},
			[]string{"operation", "kind"},
		),
	}

	for _, c := range []prometheus.Collector{m.attempts, m.duration, m.retries, m.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Retry reasons.
const (
	retryReasonServer  = "server_error"
	retryReasonNetwork = "network_error"
	retryReasonTimeout = "request_timeout"
)

// observeAttempt records one attempt. statusCode is 0 for network failures.
func (m *Metrics) observeAttempt(operation string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := "network_error"
	if statusCode != 0 {
		code = strconv.Itoa(statusCode)
	}
	m.attempts.WithLabelValues(operation, code).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) observeRetry(reason string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(reason).Inc()
}

func (m *Metrics) observeFailure(operation string, err error) {
	if m == nil || err == nil {
		return
	}
	m.failures.WithLabelValues(operation, errorKind(err)).Inc()
}

// errorKind names the taxonomy class of err.
func errorKind(err error) string {
	switch {
	case IsAuthenticationError(err):
		return "authentication"
	case IsRequestError(err):
		return "request"
	case IsTimeoutError(err):
		return "timeout"
	case IsRetryExhaustedError(err):
		return "retry_exhausted"
	case IsProtocolError(err):
		return "protocol"
	case IsValidationError(err):
		return "validation"
	default:
		return "other"
	}
}
