// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"net/http"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-a2a/fasta2a"
)

// Discover fetches the agent card published under the client's endpoint and transport.
//
// It is used to confirm connectivity and credentials; the card does not change how the client
// behaves. Failures are classified like those of [Conversation.Send].
func (c *Conversation) Discover(ctx context.Context) (card *fasta2a.AgentCard, err error) {
	ctx, span := c.tracer.Start(ctx, "fasta2a.Discover",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("a2a.auth_scheme", c.transport.Scheme().String())),
	)
	defer func() {
		c.metrics.observeFailure(opDiscover, err)
		endSpan(span, err)
	}()

	u, header := c.transport.Resolve(c.base, fasta2a.AgentCardWellKnownPath)
	status, body, _, err := c.roundTrip(ctx, opDiscover, http.MethodGet, u, header, nil)
	if err != nil {
		return nil, err
	}

	card, err = decodeAgentCard(status, body)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("a2a.agent_name", card.Name))
	c.logger.V(1).Info("agent card fetched", "name", card.Name, "version", card.Version)
	return card, nil
}

// decodeAgentCard parses an agent card document.
func decodeAgentCard(statusCode int, body []byte) (*fasta2a.AgentCard, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(body))
	if dec.PeekKind() != '{' {
		return nil, NewProtocolError(statusCode, "agent card is not a JSON object", nil)
	}

	var card fasta2a.AgentCard
	if err := json.UnmarshalDecode(dec, &card); err != nil {
		return nil, NewProtocolError(statusCode, "decode agent card", err)
	}
	return &card, nil
}
