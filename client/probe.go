// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/go-a2a/fasta2a"
	"github.com/go-a2a/fasta2a/auth"
)

// ProbeResult is the outcome of fetching the agent card with one authentication scheme.
type ProbeResult struct {
	Scheme auth.Scheme
	Card   *fasta2a.AgentCard
	Err    error
}

// OK reports whether the agent card was fetched.
func (r ProbeResult) OK() bool {
	return r.Err == nil && r.Card != nil
}

// Probe checks which authentication schemes the instance at baseURL accepts for token.
//
// The agent card is fetched once per scheme, concurrently, and one result is returned per scheme
// in the order of [auth.Schemes]. A failing scheme is reported in its result; the returned error
// is only set when the base URL or the token is invalid.
func Probe(ctx context.Context, baseURL, token string, opts ...Option) ([]ProbeResult, error) {
	if err := auth.ValidateToken(token); err != nil {
		return nil, NewValidationError("invalid token", err)
	}

	convs := make([]*Conversation, len(auth.Schemes))
	for i, scheme := range auth.Schemes {
		tr, err := auth.New(scheme, token)
		if err != nil {
			return nil, NewConfigurationError("build transport", err)
		}
		conv, err := New(baseURL, tr, opts...)
		if err != nil {
			return nil, err
		}
		convs[i] = conv
	}

	results := make([]ProbeResult, len(convs))
	g, gctx := errgroup.WithContext(ctx)
	for i, conv := range convs {
		g.Go(func() error {
			card, err := conv.Discover(gctx)
			results[i] = ProbeResult{Scheme: conv.Scheme(), Card: card, Err: err}
			// failures are reported per scheme and must not cancel the other probes
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

// Working returns the schemes whose probe succeeded, in order.
func Working(results []ProbeResult) []auth.Scheme {
	var schemes []auth.Scheme
	for _, r := range results {
		if r.OK() {
			schemes = append(schemes, r.Scheme)
		}
	}
	return schemes
}
