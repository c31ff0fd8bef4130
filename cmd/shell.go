// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
	claberrors "github.com/srl-labs/routeleak/errors"
	"github.com/srl-labs/routeleak/utils"
)

const (
	shellPrompt = "(route leaking cli> "
	shellIntro  = "Route leaking CLI, type 'help' to list the commands and 'quit' to leave."
)

func shellCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "shell",
		Short: "run commands from an interactive prompt",
		Long: "shell reads one command per line and runs it with the device flags given to the\n" +
			"shell itself. A failing command prints its error and the prompt comes back.",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runShell(cobraCmd.Context(), cobraCmd.InOrStdin(), cobraCmd.OutOrStdout(), o)
		},
	}

	return c, nil
}

// runShell returns on quit, exit, end of input or context cancellation.
func runShell(ctx context.Context, in io.Reader, w io.Writer, o *Options) error {
	fmt.Fprintln(w, shellIntro)

	sc := bufio.NewScanner(in)

	for {
		fmt.Fprint(w, shellPrompt)

		if !sc.Scan() {
			fmt.Fprintln(w)

			return sc.Err()
		}

		line := strings.TrimSpace(utils.StripNonPrintChars(sc.Text()))

		switch line {
		case "":
			continue
		case "quit", "exit", "EOF":
			return nil
		}

		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(w, "Error: %s: %v\n", claberrors.ErrIncorrectInput, err)

			continue
		}

		// comment-only line
		if len(args) == 0 {
			continue
		}

		if args[0] == "shell" {
			fmt.Fprintln(w, "already in the shell")

			continue
		}

		runShellLine(ctx, w, o, args)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// runShellLine runs a single command on a fresh command tree, so flags of one line
// never leak into the next one. Only the global and device flags of the shell carry over.
func runShellLine(ctx context.Context, w io.Writer, o *Options, args []string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(w, "Error: %v\n", r)
		}
	}()

	sub := NewOptions()
	*sub.Global = *o.Global
	*sub.Device = *o.Device

	root, err := newRootCmd(sub)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)

		return
	}

	root.SetArgs(args)
	root.SetOut(w)
	root.SetErr(w)
	root.SilenceErrors = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", claberrors.ErrIncorrectInput, err)
	})

	err = root.ExecuteContext(ctx)

	// keep a password typed at the prompt for the following lines
	if o.Device.Password == "" {
		o.Device.Password = sub.Device.Password
	}

	if err == nil {
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)

	switch {
	case strings.HasPrefix(err.Error(), "unknown command"):
		fmt.Fprintln(w, "type 'help' to list the commands")
	case errors.Is(err, claberrors.ErrIncorrectInput):
		if c, _, ferr := root.Find(args); ferr == nil {
			fmt.Fprint(w, c.UsageString())
		}
	}
}
