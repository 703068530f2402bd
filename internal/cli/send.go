// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/go-a2a/fasta2a/client"
)

// sendTimeout is the default per-request timeout of send.
const sendTimeout = 60 * time.Second

func newSendCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send URL MESSAGE",
		Short: "Send one message to an Agent Zero instance",
		Long: `Send one message, with optional attachments, and print the agent's reply.

Pass --context with the context ID printed by an earlier send to continue that conversation.`,
		Example: `  a2a-zero send http://localhost:50001 "Hello" -t AB12CD34EF56GH78
  a2a-zero send http://localhost:50001/a2a/t-AB12CD34EF56GH78 "Summarize this" -f report.pdf
  a2a-zero send http://localhost:50001 "And now?" -t AB12CD34EF56GH78 --auth bearer --context ctx-1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSend(cmd, args[0], args[1])
		},
	}

	addConnectionFlags(cmd, sendTimeout)
	cmd.Flags().StringArrayP(keyFile, "f", nil, "attach a local file or an http(s) URI; repeatable")
	cmd.Flags().String(keyContext, "", "context ID of the conversation to continue")
	cmd.Flags().Bool(keyNoContext, false, "start a new conversation even when a context ID is configured")
	cmd.Flags().Bool(keyJSON, false, "print the reply and the task as JSON")
	cmd.MarkFlagsMutuallyExclusive(keyContext, keyNoContext)

	return cmd
}

func (a *app) runSend(cmd *cobra.Command, rawURL, text string) error {
	refs, err := cmd.Flags().GetStringArray(keyFile)
	if err != nil {
		return err
	}
	files, err := loadAttachments(refs)
	if err != nil {
		return err
	}

	conv, err := a.newConversation(rawURL)
	if err != nil {
		return err
	}

	sendOpts := []client.SendOption{client.WithAttachments(files...)}
	switch {
	case a.cfg.NoContext:
		sendOpts = append(sendOpts, client.WithoutContext())
	case a.cfg.Context != "":
		sendOpts = append(sendOpts, client.WithContextID(a.cfg.Context))
	}

	task, err := conv.Send(cmd.Context(), text, sendOpts...)
	if err != nil {
		return commandError(err)
	}

	out := cmd.OutOrStdout()
	if a.cfg.JSON {
		return printJSON(out, &sendOutput{
			Response:  task.ResponseText(),
			ContextID: conv.ContextID(),
			State:     string(task.Status.State),
			Task:      task,
		})
	}
	printReply(out, task)
	return nil
}
