// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the a2a-zero command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/go-a2a/fasta2a"
	"github.com/go-a2a/fasta2a/auth"
	"github.com/go-a2a/fasta2a/client"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    *Config
	logger logr.Logger
	zap    *zap.Logger

	// clientOptions are appended to every client built by the commands.
	clientOptions []client.Option
}

// NewRootCmd returns the a2a-zero command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer, opts ...client.Option) *cobra.Command {
	a := &app{
		v:             newViper(),
		logger:        logr.Discard(),
		clientOptions: opts,
	}

	rootCmd := &cobra.Command{
		Use:   "a2a-zero",
		Short: "Talk to an Agent Zero instance over FastA2A",
		Long: `a2a-zero sends messages to an Agent Zero instance over the FastA2A protocol.

The token is the 16 character A2A token shown in the Agent Zero settings. It can be given with
--token, the A2A_TOKEN environment variable, a config file, or as part of a token URL such as
http://localhost:50001/a2a/t-AB12CD34EF56GH78.`,
		Version:       fasta2a.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger, a.zap = setupLogger(cfg.LogLevel, cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.zap != nil {
				_ = a.zap.Sync()
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().String(keyConfig, "", "config file (default is $HOME/.a2a-zero/config.yaml)")
	rootCmd.PersistentFlags().String(keyLogLevel, "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP(keyVerbose, "v", false, "verbose output, same as --log-level=debug")

	rootCmd.AddCommand(
		newSendCmd(a),
		newValidateCmd(a),
		newChatCmd(a),
	)

	return rootCmd
}

// addConnectionFlags registers the flags shared by the commands that send messages.
func addConnectionFlags(cmd *cobra.Command, timeout time.Duration) {
	scheme := auth.SchemePath
	cmd.Flags().StringP(keyToken, "t", "", "A2A token (16 alphanumeric characters)")
	cmd.Flags().Var(&scheme, keyAuth, "auth method: path, bearer, api-key or query")
	cmd.Flags().Duration(keyTimeout, timeout, "timeout of a single request")
	cmd.Flags().Int(keyMaxAttempts, client.DefaultRetryPolicy().MaxAttempts, "attempts for server and network errors")
	cmd.Flags().Duration(keyBaseDelay, client.DefaultRetryPolicy().BaseDelay, "delay before the first retry, doubled after each retry")
}

// newConversation builds a client for rawURL from the resolved configuration.
func (a *app) newConversation(rawURL string, extra ...client.Option) (*client.Conversation, error) {
	base, token, err := resolveEndpoint(rawURL, a.cfg.credential())
	if err != nil {
		return nil, err
	}

	scheme, err := auth.ParseScheme(a.cfg.Auth)
	if err != nil {
		return nil, err
	}
	tr, err := auth.New(scheme, token)
	if err != nil {
		return nil, err
	}

	opts := []client.Option{
		client.WithLogger(a.logger.WithName("client")),
		client.WithTimeout(a.cfg.Timeout),
		client.WithRetryPolicy(a.cfg.retryPolicy()),
		client.WithUserAgent("a2a-zero/" + fasta2a.Version),
	}
	opts = append(opts, extra...)
	opts = append(opts, a.clientOptions...)

	a.logger.V(1).Info("client configured", "base", base, "auth", scheme.String())
	return client.New(base, tr, opts...)
}

// commandError decorates err with a hint for the user.
func commandError(err error) error {
	if h := hint(err); h != "" {
		return fmt.Errorf("%w\n%s", err, Faint("hint: "+h))
	}
	return err
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, out, errOut io.Writer, args []string) int {
	cmd := NewRootCmd(out, errOut)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(errOut, BoldRed("error:"), strings.TrimSpace(err.Error()))
		return 1
	}
	return 0
}
