// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/ishell/v2"
	"github.com/spf13/cobra"

	"github.com/go-a2a/fasta2a"
	"github.com/go-a2a/fasta2a/client"
)

func newChatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat URL",
		Short: "Hold an interactive conversation with an Agent Zero instance",
		Long: `Start an interactive shell. Every line that is not a shell command is sent to the agent and
continues the same conversation.

Shell commands:
  context          print the current context ID
  reset            start a new conversation
  attach FILE|URI  attach a file to the next message
  exit             leave the shell`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChat(cmd, args[0])
		},
	}

	addConnectionFlags(cmd, sendTimeout)
	cmd.Flags().String(keyContext, "", "context ID of the conversation to continue")

	return cmd
}

// chatSession is the state of one interactive conversation.
type chatSession struct {
	ctx     context.Context
	conv    *client.Conversation
	pending []fasta2a.File
}

// send sends text with the pending attachments and prints the reply to w.
func (s *chatSession) send(w io.Writer, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	task, err := s.conv.Send(s.ctx, text, client.WithAttachments(s.pending...))
	if err != nil {
		return commandError(err)
	}
	s.pending = nil

	printReply(w, task)
	return nil
}

// attach queues refs for the next message.
func (s *chatSession) attach(w io.Writer, refs []string) error {
	if len(refs) == 0 {
		return errors.New("usage: attach FILE|URI...")
	}
	files, err := loadAttachments(refs)
	if err != nil {
		return err
	}
	s.pending = append(s.pending, files...)
	fmt.Fprintf(w, "%d attachment(s) queued for the next message\n", len(s.pending))
	return nil
}

func (s *chatSession) printContext(w io.Writer) {
	if id := s.conv.ContextID(); id != "" {
		fmt.Fprintln(w, id)
		return
	}
	fmt.Fprintln(w, Faint("(no conversation yet)"))
}

func (s *chatSession) reset(w io.Writer) {
	s.conv.Reset()
	s.pending = nil
	fmt.Fprintln(w, "started a new conversation")
}

func (a *app) runChat(cmd *cobra.Command, rawURL string) error {
	var opts []client.Option
	if a.cfg.Context != "" {
		opts = append(opts, client.WithInitialContextID(a.cfg.Context))
	}
	conv, err := a.newConversation(rawURL, opts...)
	if err != nil {
		return err
	}

	s := &chatSession{ctx: cmd.Context(), conv: conv}
	out := cmd.OutOrStdout()

	shell := ishell.New()
	shell.SetPrompt(BoldBlue("a2a-zero >> "))
	shell.SetOut(out)
	shell.Println("Connected to " + rawURL + ". Type a message, 'help' for commands or 'exit' to quit.")

	shell.AddCmd(&ishell.Cmd{
		Name: "context",
		Help: "print the current context ID",
		Func: func(c *ishell.Context) {
			s.printContext(out)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "reset",
		Help: "start a new conversation",
		Func: func(c *ishell.Context) {
			s.reset(out)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "attach",
		Help: "attach files or URIs to the next message",
		Func: func(c *ishell.Context) {
			if err := s.attach(out, c.Args); err != nil {
				c.Println(BoldRed("error:"), err)
			}
		},
	})
	shell.NotFound(func(c *ishell.Context) {
		if err := s.send(out, strings.Join(c.RawArgs, " ")); err != nil {
			c.Println(BoldRed("error:"), err)
		}
	})

	shell.Run()
	shell.Close()
	return nil
}
