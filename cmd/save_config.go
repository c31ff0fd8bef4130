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

// netconfSave is swapped in tests.
var netconfSave = netconf.SaveConfig //nolint:gochecknoglobals

func saveConfigCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "save-config",
		Short: "copy the running configuration to startup",
		Long: "save-config invokes the save-config RPC of the RESTCONF agent. Devices lacking\n" +
			"the RPC can be saved with --via netconf, which sends a copy-config over NETCONF.",
		PreRunE: func(cobraCmd *cobra.Command, _ []string) error {
			switch o.Save.Via {
			case saveViaRESTCONF, saveViaNETCONF:
				return nil
			}

			return fmt.Errorf("%w: --via must be one of [%s, %s] (or set %s)", claberrors.ErrIncorrectInput,
				saveViaRESTCONF, saveViaNETCONF, envHint(cobraCmd, "via"))
		},
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			if o.Save.Via == saveViaNETCONF {
				return saveOverNETCONF(cobraCmd, o)
			}

			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.SaveConfig(ctx)
			})
		},
	}

	c.Flags().StringVarP(&o.Save.Via, "via", "", o.Save.Via, "protocol used to save; one of [restconf, netconf]")
	c.Flags().IntVarP(&o.Save.NetconfPort, "netconf-port", "", o.Save.NetconfPort, "NETCONF port used with --via netconf")

	return c, nil
}

func saveOverNETCONF(cobraCmd *cobra.Command, o *Options) error {
	t, err := sshTarget(cobraCmd, o, o.Save.NetconfPort)
	if err != nil {
		return err
	}

	if err := netconfSave(t); err != nil {
		return err
	}

	log.Info("saved configuration", "address", t.Address, "via", saveViaNETCONF)

	fmt.Fprintf(cobraCmd.OutOrStdout(), "%s: running configuration saved to startup\n", t.Address)

	return nil
}
