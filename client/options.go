// Copyright 2025 The Go A2A Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-a2a/fasta2a"
)

const (
	// DefaultTimeout is the default per-attempt request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxResponseBytes is the default limit on a response body.
	DefaultMaxResponseBytes int64 = 10 << 20

	// DefaultUserAgent is the default User-Agent header value.
	DefaultUserAgent = "fasta2a-go/" + fasta2a.Version
)

// Option configures a [Conversation].
type Option func(*clientConfig)

// clientConfig holds the configuration for the client.
type clientConfig struct {
	httpClient       *http.Client
	interceptors     []Interceptor
	userAgent        string
	timeout          time.Duration
	retryPolicy      RetryPolicy
	logger           logr.Logger
	tracerProvider   trace.TracerProvider
	metrics          *Metrics
	maxResponseBytes int64
	contextID        string
}

func applyClientOptions(opts ...Option) *clientConfig {
	config := &clientConfig{
		httpClient:       &http.Client{},
		userAgent:        DefaultUserAgent,
		timeout:          DefaultTimeout,
		retryPolicy:      DefaultRetryPolicy(),
		logger:           logr.Discard(),
		maxResponseBytes: DefaultMaxResponseBytes,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// WithHTTPClient sets the HTTP client to use.
//
// The client's own Timeout, if any, applies in addition to the per-attempt timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithInterceptors adds interceptors to the client.
func WithInterceptors(interceptors ...Interceptor) Option {
	return func(c *clientConfig) {
		c.interceptors = append(c.interceptors, interceptors...)
	}
}

// WithUserAgent sets the user agent for requests.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the timeout of every single attempt. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetryPolicy sets the retry policy for sends.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *clientConfig) {
		c.retryPolicy = policy
	}
}

// WithLogger sets the [logr.Logger] for the client.
func WithLogger(logger logr.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithTracerProvider sets the [trace.TracerProvider] used to trace sends.
// The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *clientConfig) {
		c.tracerProvider = tp
	}
}

// WithMetrics records request metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(c *clientConfig) {
		c.metrics = m
	}
}

// WithMaxResponseBytes limits the size of a response body. Larger responses fail with a
// [*ProtocolError].
func WithMaxResponseBytes(n int64) Option {
	return func(c *clientConfig) {
		c.maxResponseBytes = n
	}
}

// WithInitialContextID resumes an existing conversation.
func WithInitialContextID(contextID string) Option {
	return func(c *clientConfig) {
		c.contextID = contextID
	}
}

// SendOption configures a single [Conversation.Send] call.
type SendOption func(*sendConfig)

type sendConfig struct {
	attachments []fasta2a.File
	contextID   *string
}

// WithAttachments appends one file part per attachment after the text part.
func WithAttachments(files ...fasta2a.File) SendOption {
	return func(c *sendConfig) {
		c.attachments = append(c.attachments, files...)
	}
}

// WithContextID sends the message in the conversation identified by contextID instead of the
// last-known one.
func WithContextID(contextID string) SendOption {
	return func(c *sendConfig) {
		c.contextID = &contextID
	}
}

// WithoutContext sends the message without a context ID, starting a new conversation.
func WithoutContext() SendOption {
	return WithContextID("")
}
