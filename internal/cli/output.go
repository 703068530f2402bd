// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/go-a2a/fasta2a"
	"github.com/go-a2a/fasta2a/client"
)

var (
	BoldBlue   = color.New(color.FgBlue, color.Bold).SprintFunc()
	BoldGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	BoldRed    = color.New(color.FgRed, color.Bold).SprintFunc()
	Faint      = color.New(color.Faint).SprintFunc()
	YellowText = color.New(color.FgYellow).SprintFunc()
)

// sendOutput is the --json rendering of a send.
type sendOutput struct {
	Response  string        `json:"response"`
	ContextID string        `json:"context_id,omitzero"`
	State     string        `json:"state,omitzero"`
	Task      *fasta2a.Task `json:"task"`
}

func printJSON(w io.Writer, v any) error {
	if err := json.MarshalWrite(w, v, jsontext.WithIndent("  ")); err != nil {
		return fmt.Errorf("error formatting JSON: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// printReply writes the agent's reply and a status line for task.
func printReply(w io.Writer, task *fasta2a.Task) {
	text := fasta2a.ExtractResponseText(task)
	if text == "" {
		fmt.Fprintln(w, Faint("(no reply from the agent yet)"))
	} else {
		fmt.Fprintln(w, text)
	}

	state := string(task.Status.State)
	switch {
	case task.Status.State == fasta2a.TaskStateFailed || task.Status.State == fasta2a.TaskStateCanceled:
		state = BoldRed(state)
	case task.Status.State.IsTerminal():
		state = BoldGreen(state)
	case state != "":
		state = YellowText(state)
	}

	ctx := task.ContextID
	if ctx == "" {
		ctx = "-"
	}
	fmt.Fprintln(w, Faint("state: ")+state+Faint(" context: "+ctx))
}

// hint suggests a next step for a failed call.
func hint(err error) string {
	switch {
	case client.IsAuthenticationError(err):
		return "check the token and the auth method; `a2a-zero validate URL -t TOKEN` lists the methods that work"
	case client.IsRequestError(err):
		return "check the URL; the FastA2A endpoint is served under /a2a of the Agent Zero instance"
	case client.IsTimeoutError(err):
		return "the agent timed out; try again or raise --timeout"
	case client.IsRetryExhaustedError(err):
		return "the agent is unreachable or failing; check that Agent Zero is running"
	default:
		return ""
	}
}
