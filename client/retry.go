// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"math"
	"net/http"
	"time"
)

// Action is the retry decision for the outcome of one attempt.
type Action int

const (
	// ActionSucceed means the response is handed to the result parser.
	ActionSucceed Action = iota

	// ActionRetryBackoff means the attempt is repeated after the policy's backoff delay.
	ActionRetryBackoff

	// ActionRetryImmediate means the attempt is repeated once without delay.
	ActionRetryImmediate

	// ActionFail means the outcome is surfaced to the caller without another attempt.
	ActionFail
)

// String implements [fmt.Stringer].
func (a Action) String() string {
	switch a {
	case ActionSucceed:
		return "succeed"
	case ActionRetryBackoff:
		return "retry-backoff"
	case ActionRetryImmediate:
		return "retry-immediate"
	case ActionFail:
		return "fail"
	default:
		return "unknown"
	}
}

// RetryPolicy defines retry behavior for message sends.
//
// 5xx responses and network-level failures are retried with exponential backoff until
// MaxAttempts attempts have failed. A 408 response is retried once, immediately. 401, 400, 404
// and every other 4xx are never retried.
type RetryPolicy struct {
	// MaxAttempts is the number of attempts allowed for backoff-retried failures.
	// Values below 1 are treated as 1.
	MaxAttempts int

	// BaseDelay is the delay before the first backoff retry.
	BaseDelay time.Duration

	// MaxDelay caps the delay between attempts. Zero means no cap.
	MaxDelay time.Duration

	// Multiplier grows the delay after every retry. Values below 1 are treated as 1.
	Multiplier float64
}

// DefaultRetryPolicy returns the default policy: 3 attempts, 1s base delay, doubling, capped at 30s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		Multiplier:  2,
	}
}

// Classify returns the action for an attempt that ended with statusCode, or with err when no
// response was received.
func (p RetryPolicy) Classify(statusCode int, err error) Action {
	if err != nil {
		return ActionRetryBackoff
	}

	switch {
	case statusCode >= 200 && statusCode < 300:
		return ActionSucceed
	case statusCode == http.StatusRequestTimeout:
		return ActionRetryImmediate
	case statusCode >= 500:
		return ActionRetryBackoff
	default:
		return ActionFail
	}
}

// Attempts returns the effective number of attempts.
func (p RetryPolicy) Attempts() int {
	return max(p.MaxAttempts, 1)
}

// Delay returns the backoff before retry n, where n=1 is the first retry.
// The sequence of delays is non-decreasing.
func (p RetryPolicy) Delay(n int) time.Duration {
	if n < 1 || p.BaseDelay <= 0 {
		return 0
	}

	mult := max(p.Multiplier, 1)
	d := float64(p.BaseDelay) * math.Pow(mult, float64(n-1))
	if p.MaxDelay > 0 && d > float64(p.MaxDelay) {
		return p.MaxDelay
	}
	if d >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d)
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
