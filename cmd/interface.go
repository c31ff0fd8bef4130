// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/srl-labs/routeleak/restconf"
	"github.com/srl-labs/routeleak/types"
)

// operation is a single RESTCONF request issued by a command.
type operation func(ctx context.Context, c *restconf.Client) (*restconf.Result, error)

// runOperation connects to the device, issues op and prints its result.
// Non 2xx answers are printed like any other result and are not an error.
func runOperation(cobraCmd *cobra.Command, o *Options, op operation) error {
	c, err := newClient(cobraCmd, o)
	if err != nil {
		return err
	}

	res, err := op(cobraCmd.Context(), c)
	if err != nil {
		return err
	}

	return printResult(cobraCmd.OutOrStdout(), o.Global.Format, res)
}

func interfaceCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:     "interface",
		Aliases: []string{"int"},
		Short:   "read and change interface configuration",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list the configured interfaces",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.GetInterfaces(ctx)
			})
		},
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "show the configuration of an interface",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.GetInterface(ctx, o.Interface.Name)
			})
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "replace the configuration of an interface",
		Long: "update replaces the whole interface configuration with a PUT request.\n" +
			"Leaves not given on the command line are removed from the device.",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := interfaceFromOptions(o.Interface)
			if err != nil {
				return err
			}

			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.UpdateInterface(ctx, cfg)
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "delete an interface",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.DeleteInterface(ctx, o.Interface.Name)
			})
		},
	}

	for _, sub := range []*cobra.Command{getCmd, updateCmd, deleteCmd} {
		sub.Flags().StringVarP(&o.Interface.Name, "name", "n", o.Interface.Name,
			"interface name, e.g. GigabitEthernet0/0/1")
		sub.PreRunE = requireName
	}

	updateCmd.Flags().StringVarP(&o.Interface.Type, "type", "t", o.Interface.Type,
		"interface type; one of [ethernet, loopback, serial]")
	updateCmd.Flags().StringVarP(&o.Interface.IP, "ip", "", o.Interface.IP, "IPv4 address")
	updateCmd.Flags().StringVarP(&o.Interface.Mask, "mask", "m", o.Interface.Mask,
		"dotted decimal subnet mask, e.g. 255.255.255.0")
	updateCmd.Flags().StringVarP(&o.Interface.Description, "description", "", o.Interface.Description,
		"interface description")
	updateCmd.Flags().StringVarP(&o.Interface.VRF, "vrf", "", o.Interface.VRF, "VRF the interface forwards in")
	updateCmd.Flags().BoolVarP(&o.Interface.Shutdown, "shutdown", "", o.Interface.Shutdown,
		"administratively disable the interface")

	c.AddCommand(listCmd, getCmd, updateCmd, deleteCmd)

	return c, nil
}

func interfaceFromOptions(o *InterfaceOptions) (types.InterfaceConfig, error) {
	t, err := types.ParseInterfaceType(o.Type)
	if err != nil {
		return types.InterfaceConfig{}, err
	}

	opts := []types.InterfaceOption{
		types.WithIPv4(o.IP, o.Mask),
		types.WithDescription(o.Description),
		types.WithVRF(o.VRF),
	}

	if o.Shutdown {
		opts = append(opts, types.WithShutdown())
	}

	cfg := types.NewInterfaceConfig(o.Name, t, opts...)

	return cfg, cfg.Validate()
}
