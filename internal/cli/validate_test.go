// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-a2a/fasta2a/auth"
	"github.com/go-a2a/fasta2a/client"
)

const cardBody = `{"name":"Agent Zero","version":"0.9.1","capabilities":{"streaming":false}}`

// bearerOnly serves the agent card to bearer-authenticated requests only.
func bearerOnly(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/a2a/.well-known/agent.json" || r.Header.Get("Authorization") != "Bearer "+testToken {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(cardBody))
}

func TestValidate(t *testing.T) {
	agent := newFakeAgent(t, bearerOnly)

	out, _, err := runCLI(t, "validate", agent.URL+"/a2a/t-"+testToken)
	require.NoError(t, err)

	assert.Contains(t, out, "Agent Zero")
	assert.Contains(t, out, "Bearer token")
	assert.Contains(t, out, "Working methods: bearer")
	assert.Contains(t, out, "HTTP 401")
	assert.Len(t, agent.received(), len(auth.Schemes))
}

func TestValidate_APIKeyFlag(t *testing.T) {
	agent := newFakeAgent(t, bearerOnly)

	_, _, err := runCLI(t, "validate", agent.URL, "--api-key", testToken)
	require.NoError(t, err)
}

func TestValidate_NoneWorking(t *testing.T) {
	agent := newFakeAgent(t, respond(http.StatusUnauthorized, ""))

	out, _, err := runCLI(t, "validate", agent.URL, "-t", testToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoWorkingMethod))
	assert.Contains(t, out, "No authentication method works")
}

func TestValidate_JSON(t *testing.T) {
	agent := newFakeAgent(t, bearerOnly)

	out, _, err := runCLI(t, "validate", agent.URL, "-t", testToken, "--json")
	require.NoError(t, err)

	var rows []probeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 4)

	want := map[string]bool{"path": false, "bearer": true, "api-key": false, "query": false}
	for _, row := range rows {
		assert.Equal(t, want[row.Method], row.OK, row.Method)
		if row.OK {
			assert.Equal(t, "Agent Zero", row.Agent)
			assert.Equal(t, "0.9.1", row.Version)
		} else {
			assert.NotEmpty(t, row.Error)
		}
	}
}

func TestProbeDetail(t *testing.T) {
	assert.Empty(t, probeDetail(nil))
	assert.Equal(t, "HTTP 401 authentication failed", probeDetail(client.NewAuthenticationError(401, 1, "")))
	assert.Equal(t, "boom", probeDetail(errors.New("boom")))
}
