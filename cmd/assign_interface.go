// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	claberrors "github.com/srl-labs/routeleak/errors"
	"github.com/srl-labs/routeleak/restconf"
	"github.com/srl-labs/routeleak/types"
)

func assignInterfaceCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "assign-interface",
		Short: "address an interface and place it into a VRF",
		Long: "assign-interface configures the address and VRF forwarding of a physical\n" +
			"or loopback interface in a single request.",
	}

	physicalCmd := &cobra.Command{
		Use:   "physical",
		Short: "assign a physical interface",
		PreRunE: func(cobraCmd *cobra.Command, _ []string) error {
			return requireFlags(cobraCmd, "name", "vrf", "ip", "mask")
		},
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return assignInterface(cobraCmd, o, o.Assign.Name, types.InterfaceTypeEthernet, o.Assign.Mask)
		},
	}

	physicalCmd.Flags().StringVarP(&o.Assign.Name, "name", "n", o.Assign.Name,
		"interface name, e.g. GigabitEthernet0/0/1")
	physicalCmd.Flags().StringVarP(&o.Assign.Mask, "mask", "m", o.Assign.Mask, "dotted decimal subnet mask")

	loopbackCmd := &cobra.Command{
		Use:   "loopback",
		Short: "create a loopback interface in a VRF",
		PreRunE: func(cobraCmd *cobra.Command, _ []string) error {
			if o.Assign.ID < 0 {
				return fmt.Errorf("%w: --id is required (or set %s)", claberrors.ErrIncorrectInput, envHint(cobraCmd, "id"))
			}

			return requireFlags(cobraCmd, "vrf", "ip")
		},
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return assignInterface(cobraCmd, o, types.LoopbackName(o.Assign.ID), types.InterfaceTypeLoopback,
				o.Assign.LoopbackMask)
		},
	}

	loopbackCmd.Flags().IntVarP(&o.Assign.ID, "id", "", o.Assign.ID, "loopback number, e.g. 1 for Loopback1")
	loopbackCmd.Flags().StringVarP(&o.Assign.LoopbackMask, "mask", "m", o.Assign.LoopbackMask,
		"dotted decimal subnet mask")

	for _, sub := range []*cobra.Command{physicalCmd, loopbackCmd} {
		sub.Flags().StringVarP(&o.Assign.VRF, "vrf", "", o.Assign.VRF, "VRF to place the interface into")
		sub.Flags().StringVarP(&o.Assign.IP, "ip", "", o.Assign.IP, "IPv4 address")
		sub.Flags().StringVarP(&o.Assign.Description, "desc", "", o.Assign.Description, "interface description")
	}

	c.AddCommand(physicalCmd, loopbackCmd)

	return c, nil
}

func assignInterface(cobraCmd *cobra.Command, o *Options, name string, t types.InterfaceType, mask string) error {
	cfg := types.NewInterfaceConfig(name, t,
		types.WithIPv4(o.Assign.IP, mask),
		types.WithVRF(o.Assign.VRF),
		types.WithDescription(o.Assign.Description),
	)

	if err := cfg.Validate(); err != nil {
		return err
	}

	return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
		return c.UpdateInterface(ctx, cfg)
	})
}
