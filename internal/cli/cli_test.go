// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"

	"github.com/go-a2a/fasta2a"
)

const testToken = "AB12CD34EF56GH78"

const okBody = `{"result":{"id":"task-1","context_id":"ctx-1","status":{"state":"completed"},"history":[{"role":"user","parts":[{"kind":"text","text":"Hello"}]},{"role":"agent","parts":[{"kind":"text","text":"Hi!"}]}]}}`

// fakeAgent records the requests it receives and answers with handler.
type fakeAgent struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	messages []fasta2a.Message
}

func newFakeAgent(t *testing.T, handler http.HandlerFunc) *fakeAgent {
	t.Helper()

	f := &fakeAgent{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		if len(body) > 0 {
			var req struct {
				Message fasta2a.Message `json:"message"`
			}
			if err := json.Unmarshal(body, &req); err == nil {
				f.messages = append(f.messages, req.Message)
			}
		}
		f.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAgent) sent() []fasta2a.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fasta2a.Message(nil), f.messages...)
}

func (f *fakeAgent) received() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// runCLI executes the command tree with args in an isolated environment.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}
