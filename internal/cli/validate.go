// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/go-a2a/fasta2a/auth"
	"github.com/go-a2a/fasta2a/client"
)

// validateTimeout is the default per-request timeout of validate.
const validateTimeout = 10 * time.Second

// errNoWorkingMethod is returned by validate when every auth method failed.
var errNoWorkingMethod = errors.New("no authentication method works")

// probeOutput is the --json rendering of one probe result.
type probeOutput struct {
	Method  string `json:"method"`
	OK      bool   `json:"ok"`
	Agent   string `json:"agent,omitzero"`
	Version string `json:"version,omitzero"`
	Error   string `json:"error,omitzero"`
}

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate URL",
		Short: "Check which authentication methods an Agent Zero instance accepts",
		Long: `Fetch the agent card with each of the four authentication methods and report which work.

The token may be embedded in URL as /a2a/t-TOKEN. The command fails when no method works.`,
		Example: `  a2a-zero validate http://localhost:50001/a2a/t-AB12CD34EF56GH78
  a2a-zero validate http://localhost:50001 --api-key AB12CD34EF56GH78`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args[0])
		},
	}

	cmd.Flags().StringP(keyToken, "t", "", "A2A token (16 alphanumeric characters)")
	cmd.Flags().String(keyAPIKey, "", "same as --token")
	cmd.Flags().Duration(keyTimeout, validateTimeout, "timeout of a single request")
	cmd.Flags().Bool(keyJSON, false, "print the results as JSON")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, rawURL string) error {
	base, token, err := resolveEndpoint(rawURL, a.cfg.credential())
	if err != nil {
		return err
	}

	opts := []client.Option{
		client.WithLogger(a.logger.WithName("probe")),
		client.WithTimeout(a.cfg.Timeout),
		client.WithRetryPolicy(client.RetryPolicy{MaxAttempts: 1}),
	}
	opts = append(opts, a.clientOptions...)

	results, err := client.Probe(cmd.Context(), base, token, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.cfg.JSON {
		rows := make([]probeOutput, 0, len(results))
		for _, r := range results {
			row := probeOutput{Method: r.Scheme.String(), OK: r.OK()}
			if r.OK() {
				row.Agent, row.Version = r.Card.Name, r.Card.Version
			} else if r.Err != nil {
				row.Error = r.Err.Error()
			}
			rows = append(rows, row)
		}
		if err := printJSON(out, rows); err != nil {
			return err
		}
	} else {
		renderProbeResults(out, base, results)
	}

	if len(client.Working(results)) == 0 {
		return errNoWorkingMethod
	}
	return nil
}

func renderProbeResults(w io.Writer, base string, results []client.ProbeResult) {
	fmt.Fprintf(w, "Agent Zero at %s\n", BoldBlue(base))

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Method", "Status", "Agent", "Detail"})
	for _, r := range results {
		if r.OK() {
			tw.AppendRow(table.Row{r.Scheme.Description(), BoldGreen("ok"), r.Card.Name, r.Card.Version})
			continue
		}
		tw.AppendRow(table.Row{r.Scheme.Description(), BoldRed("failed"), "", probeDetail(r.Err)})
	}
	tw.Render()

	working := client.Working(results)
	if len(working) == 0 {
		fmt.Fprintln(w, BoldRed("No authentication method works."), "Check the URL, the token and that A2A is enabled in Agent Zero.")
		return
	}

	names := make([]string, len(working))
	for i, s := range working {
		names[i] = s.String()
	}
	fmt.Fprintf(w, "Working methods: %s (use --auth %s)\n", BoldGreen(strings.Join(names, ", ")), working[0])
	if working[0] == auth.SchemePath {
		fmt.Fprintf(w, "Token URL: %s/a2a/t-%s\n", base, Faint("<token>"))
	}
}

func probeDetail(err error) string {
	var cerr client.ClientError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cerr) && cerr.Code() != 0:
		return fmt.Sprintf("HTTP %d %s", cerr.Code(), cerr.Message())
	default:
		return err.Error()
	}
}
