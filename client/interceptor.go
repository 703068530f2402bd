// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/go-a2a/fasta2a"
)

// Interceptor defines a middleware function that can intercept and modify requests/responses.
//
// Interceptors wrap every attempt individually, so a retried send passes through the chain once
// per attempt.
type Interceptor func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error)

// Invoker represents the next handler in the interceptor chain.
type Invoker func(ctx context.Context, req *http.Request) (*http.Response, error)

// chainInterceptors chains multiple interceptors together.
func chainInterceptors(interceptors []Interceptor, invoker Invoker) Invoker {
	if len(interceptors) == 0 {
		return invoker
	}

	// Build the chain from right to left
	for i := len(interceptors) - 1; i >= 0; i-- {
		interceptor := interceptors[i]
		next := invoker
		invoker = func(ctx context.Context, req *http.Request) (*http.Response, error) {
			return interceptor(ctx, req, next)
		}
	}

	return invoker
}

// LoggingInterceptor logs every attempt at verbosity 1.
//
// Tokens are redacted from the logged URL.
func LoggingInterceptor(logger logr.Logger) Interceptor {
	return func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error) {
		log := logger.WithValues("method", req.Method, "url", redactURL(req.URL))

		start := time.Now()
		resp, err := invoker(ctx, req)
		if err != nil {
			log.V(1).Info("request failed", "error", err.Error(), "elapsed", time.Since(start))
			return resp, err
		}

		log.V(1).Info("response received", "status", resp.StatusCode, "elapsed", time.Since(start))
		return resp, nil
	}
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) Interceptor {
	return func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error) {
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		return invoker(ctx, req)
	}
}

// redactURL renders u without its query, user info or path token.
func redactURL(u *url.URL) string {
	c := *u
	c.User = nil
	c.RawQuery = ""
	c.RawPath = ""

	marker := fasta2a.EndpointPath + "/" + fasta2a.TokenPathPrefix
	if i := strings.Index(c.Path, marker); i >= 0 {
		rest := c.Path[i+len(marker):]
		j := strings.IndexByte(rest, '/')
		if j < 0 {
			j = len(rest)
		}
		c.Path = c.Path[:i+len(marker)] + "REDACTED" + rest[j:]
	}
	return c.String()
}
