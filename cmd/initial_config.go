// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	claberrors "github.com/srl-labs/routeleak/errors"
	"github.com/srl-labs/routeleak/netconf"
	"github.com/srl-labs/routeleak/restconf"
)

// applyCLIConfig is swapped in tests.
var applyCLIConfig = netconf.ApplyConfig //nolint:gochecknoglobals

func initialConfigCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "initial-config",
		Short: "prepare a freshly booted device",
		Long: "initial-config sets the hostname over RESTCONF. Configuration lines given with\n" +
			"--line are sent beforehand over an SSH CLI session, for settings without a RESTCONF model.",
		PreRunE: func(cobraCmd *cobra.Command, _ []string) error {
			if o.Initial.Hostname == "" && len(o.Initial.Lines) == 0 {
				return fmt.Errorf("%w: --hostname or --line is required (or set %s)",
					claberrors.ErrIncorrectInput, envHint(cobraCmd, "hostname"))
			}

			return nil
		},
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			if len(o.Initial.Lines) > 0 {
				t, err := sshTarget(cobraCmd, o, o.Initial.SSHPort)
				if err != nil {
					return err
				}

				log.Info("sending configuration lines", "address", t.Address, "lines", len(o.Initial.Lines))

				lr, err := applyCLIConfig(t, o.Initial.Lines)
				if lr != nil {
					out, derr := lr.Dump(o.Global.Format)
					if derr != nil {
						return derr
					}

					fmt.Fprintln(cobraCmd.OutOrStdout(), out)
				}

				if err != nil {
					return err
				}
			}

			if o.Initial.Hostname == "" {
				return nil
			}

			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.SetHostname(ctx, o.Initial.Hostname)
			})
		},
	}

	c.Flags().StringVarP(&o.Initial.Hostname, "hostname", "", o.Initial.Hostname, "device hostname")
	c.Flags().StringArrayVarP(&o.Initial.Lines, "line", "l", o.Initial.Lines,
		"configuration line sent over SSH, repeatable, e.g. \"ip routing\"")
	c.Flags().IntVarP(&o.Initial.SSHPort, "ssh-port", "", o.Initial.SSHPort, "SSH port used for --line")

	return c, nil
}
