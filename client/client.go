// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package client implements a FastA2A conversation client for Agent Zero.
//
// A [Conversation] sends one message per [Conversation.Send] call and remembers the context ID
// returned by the agent, so that later sends continue the same conversation. The agent keeps no
// session of its own; the context ID held by the client is the only link between calls.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-a2a/fasta2a"
	"github.com/go-a2a/fasta2a/auth"
	"github.com/go-a2a/fasta2a/internal/pool"
)

const tracerName = "github.com/go-a2a/fasta2a/client"

// Operation names used in logs and metrics.
const (
	opSend     = "send"
	opDiscover = "discover"
)

// maxErrorBody limits how much of an error response body is kept in an error.
const maxErrorBody = 512

// Conversation is a FastA2A client bound to one endpoint, one authentication transport and one
// conversation.
//
// The current context ID is updated as a side effect of every successful [Conversation.Send],
// last writer wins. Sends on one Conversation must therefore not overlap: when two sends race,
// whichever response completes last decides the context used next. Callers that need parallel
// conversations should use one Conversation per conversation.
type Conversation struct {
	httpClient       *http.Client
	base             *url.URL
	transport        auth.Transport
	policy           RetryPolicy
	timeout          time.Duration
	maxResponseBytes int64
	userAgent        string
	invoker          Invoker
	logger           logr.Logger
	tracer           trace.Tracer
	metrics          *Metrics

	sleep func(context.Context, time.Duration) error

	mu        sync.RWMutex
	contextID string
}

// New creates a Conversation for the Agent Zero instance at baseURL, e.g.
// "http://localhost:50001", authenticating with transport.
func New(baseURL string, transport auth.Transport, opts ...Option) (*Conversation, error) {
	if transport == nil {
		return nil, NewConfigurationError("auth transport is not set", nil)
	}

	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	config := applyClientOptions(opts...)

	tp := config.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	c := &Conversation{
		httpClient:       config.httpClient,
		base:             base,
		transport:        transport,
		policy:           config.retryPolicy,
		timeout:          config.timeout,
		maxResponseBytes: config.maxResponseBytes,
		userAgent:        config.userAgent,
		logger:           config.logger,
		tracer:           tp.Tracer(tracerName, trace.WithInstrumentationVersion(fasta2a.Version)),
		metrics:          config.metrics,
		sleep:            sleepContext,
		contextID:        config.contextID,
	}

	interceptors := slices.Concat(config.interceptors, []Interceptor{LoggingInterceptor(c.logger)})
	c.invoker = chainInterceptors(interceptors, func(ctx context.Context, req *http.Request) (*http.Response, error) {
		return c.httpClient.Do(req)
	})

	return c, nil
}

// parseBaseURL validates and normalizes the instance base URL.
func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(raw), "/"))
	if err != nil {
		return nil, NewConfigurationError("invalid base URL", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, NewConfigurationError(fmt.Sprintf("base URL must be http or https, got %q", raw), nil)
	}
	if u.Host == "" {
		return nil, NewConfigurationError(fmt.Sprintf("base URL has no host: %q", raw), nil)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// ContextID returns the current context ID, or an empty string before the first successful send.
func (c *Conversation) ContextID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.contextID
}

// SetContextID replaces the current context ID, e.g. to resume a conversation.
func (c *Conversation) SetContextID(contextID string) {
	c.mu.Lock()
	c.contextID = contextID
	c.mu.Unlock()
}

// Reset forgets the current context ID; the next send starts a new conversation.
func (c *Conversation) Reset() {
	c.SetContextID("")
}

// Scheme returns the authentication scheme of the client.
func (c *Conversation) Scheme() auth.Scheme {
	return c.transport.Scheme()
}

// sendMessageRequest is the body of a message send.
type sendMessageRequest struct {
	Message fasta2a.Message `json:"message"`
}

// sendMessageResponse is the envelope of a message send response.
type sendMessageResponse struct {
	Result jsontext.Value `json:"result,omitzero"`
	Error  *RPCError      `json:"error,omitzero"`
}

// Send sends text, followed by any attachments, to the agent and returns the resulting task.
//
// The message carries the context ID given with [WithContextID], or else the last context ID
// returned by the agent; before the first successful send it carries none and the field is
// omitted. On success the stored context ID is overwritten with the one in the result, if any.
// Failures are retried according to the client's [RetryPolicy] and returned as one of the error
// types of this package.
func (c *Conversation) Send(ctx context.Context, text string, opts ...SendOption) (task *fasta2a.Task, err error) {
	var cfg sendConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if text == "" {
		return nil, NewValidationError("message text cannot be empty", nil)
	}

	contextID := c.ContextID()
	if cfg.contextID != nil {
		contextID = *cfg.contextID
	}

	msg := fasta2a.NewUserMessage(text, cfg.attachments...)
	msg.ContextID = contextID
	if err := msg.Validate(); err != nil {
		return nil, NewValidationError("invalid message", err)
	}

	ctx, span := c.tracer.Start(ctx, "fasta2a.Send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("a2a.message_id", msg.MessageID),
			attribute.String("a2a.context_id", contextID),
			attribute.Int("a2a.attachments", len(cfg.attachments)),
			attribute.String("a2a.auth_scheme", c.transport.Scheme().String()),
		),
	)
	defer func() {
		c.metrics.observeFailure(opSend, err)
		endSpan(span, err)
	}()

	payload, err := encodeSendRequest(msg)
	if err != nil {
		return nil, NewValidationError("encode message", err)
	}

	u, header := c.transport.Resolve(c.base, "")
	status, body, attempts, err := c.roundTrip(ctx, opSend, http.MethodPost, u, header, payload)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("a2a.attempts", attempts))

	task, err = decodeTask(status, body)
	if err != nil {
		return nil, err
	}

	if task.ContextID != "" {
		c.SetContextID(task.ContextID)
	}

	span.SetAttributes(
		attribute.String("a2a.task_id", task.ID),
		attribute.String("a2a.task_state", string(task.Status.State)),
	)
	c.logger.V(1).Info("message sent",
		"messageID", msg.MessageID,
		"taskID", task.ID,
		"contextID", task.ContextID,
		"state", task.Status.State,
		"attempts", attempts,
	)

	return task, nil
}

// encodeSendRequest encodes the request body for msg.
//
// The returned slice is owned by the caller: the transport may still read a request body after
// the call that sent it has returned.
func encodeSendRequest(msg fasta2a.Message) ([]byte, error) {
	buf := pool.Bytes.Get()
	defer pool.Bytes.Put(buf)
	if err := json.MarshalWrite(buf, &sendMessageRequest{Message: msg}); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

// decodeTask parses a successful send response.
func decodeTask(statusCode int, body []byte) (*fasta2a.Task, error) {
	var resp sendMessageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewProtocolError(statusCode, "decode response", err)
	}
	if resp.Error != nil {
		return nil, NewProtocolError(statusCode, "agent returned an error", resp.Error)
	}
	if len(resp.Result) == 0 || resp.Result.Kind() != '{' {
		return nil, NewProtocolError(statusCode, "response has no result object", nil)
	}

	var task fasta2a.Task
	if err := json.Unmarshal(resp.Result, &task); err != nil {
		return nil, NewProtocolError(statusCode, "decode result", err)
	}
	if state := task.Status.State; state != "" && !state.IsKnown() {
		return nil, NewProtocolError(statusCode, fmt.Sprintf("unknown task state %q", state), nil)
	}

	return &task, nil
}

// roundTrip performs one request under the retry policy. It returns the status and body of the
// first successful attempt together with the number of attempts made.
func (c *Conversation) roundTrip(ctx context.Context, op, method string, u *url.URL, header http.Header, payload []byte) (int, []byte, int, error) {
	var (
		attempts   int
		failures   int
		retried408 bool
	)

	for {
		attempts++
		status, body, err := c.attempt(ctx, op, method, u, header, payload)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, nil, attempts, fmt.Errorf("%s canceled after %d attempts: %w", op, attempts, ctxErr)
		}

		switch c.policy.Classify(status, err) {
		case ActionSucceed:
			if int64(len(body)) > c.maxResponseBytes {
				return 0, nil, attempts, NewProtocolError(status, fmt.Sprintf("response exceeds %d bytes", c.maxResponseBytes), nil)
			}
			return status, body, attempts, nil

		case ActionRetryImmediate:
			if retried408 {
				return 0, nil, attempts, NewTimeoutError(attempts)
			}
			retried408 = true
			c.metrics.observeRetry(retryReasonTimeout)
			c.logger.V(1).Info("request timed out, retrying immediately", "operation", op, "attempt", attempts)

		case ActionRetryBackoff:
			failures++
			reason := retryReasonServer
			if err == nil {
				err = fmt.Errorf("HTTP %d%s", status, bodySuffix(errorBody(body)))
			} else {
				reason = retryReasonNetwork
			}
			if failures >= c.policy.Attempts() {
				return 0, nil, attempts, NewRetryExhaustedError(attempts, status, err)
			}

			delay := c.policy.Delay(failures)
			c.metrics.observeRetry(reason)
			c.logger.V(1).Info("attempt failed, retrying", "operation", op, "attempt", attempts, "delay", delay, "error", err.Error())
			if err := c.sleep(ctx, delay); err != nil {
				return 0, nil, attempts, fmt.Errorf("%s canceled while waiting to retry: %w", op, err)
			}

		default:
			return 0, nil, attempts, statusError(status, attempts, body)
		}
	}
}

// attempt issues a single HTTP request. A non-nil error means no usable response was received.
func (c *Conversation) attempt(ctx context.Context, op, method string, u *url.URL, header http.Header, payload []byte) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return 0, nil, err
	}

	for key, values := range header {
		req.Header[key] = append([]string(nil), values...)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.invoker(ctx, req)
	if err != nil {
		c.metrics.observeAttempt(op, 0, time.Since(start))
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBytes+1))
	c.metrics.observeAttempt(op, resp.StatusCode, time.Since(start))
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp.StatusCode, data, nil
}

// statusError maps a non-retryable status code to its error type.
func statusError(status, attempts int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return NewAuthenticationError(status, attempts, errorBody(body))
	case status >= 400 && status < 500:
		return NewRequestError(status, attempts, errorBody(body))
	default:
		return NewProtocolError(status, fmt.Sprintf("unexpected HTTP status %d", status), nil)
	}
}

// errorBody returns a trimmed, bounded snippet of an error response body.
func errorBody(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return strings.TrimSpace(string(body))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
