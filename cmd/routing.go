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
	"github.com/srl-labs/routeleak/restconf"
	"github.com/srl-labs/routeleak/types"
)

func ospfCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "ospf",
		Short: "configure an OSPF process inside a VRF",
		PreRunE: func(cobraCmd *cobra.Command, _ []string) error {
			return requireFlags(cobraCmd, "pid")
		},
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := ospfFromOptions(o.OSPF)
			if err != nil {
				return err
			}

			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.ConfigureOSPF(ctx, cfg)
			})
		},
	}

	c.Flags().Uint16VarP(&o.OSPF.PID, "pid", "", o.OSPF.PID, "OSPF process id")
	c.Flags().StringVarP(&o.OSPF.VRF, "vrf", "", o.OSPF.VRF, "VRF the process runs in")
	c.Flags().StringVarP(&o.OSPF.Network, "network", "", o.OSPF.Network, "network to advertise, e.g. 10.0.0.0")
	c.Flags().StringVarP(&o.OSPF.Wildcard, "wildcard", "", o.OSPF.Wildcard, "wildcard mask, e.g. 0.255.255.255")
	c.Flags().Uint32VarP(&o.OSPF.Area, "area", "", o.OSPF.Area, "OSPF area")

	return c, nil
}

func ospfFromOptions(o *OSPFOptions) (types.OSPFConfig, error) {
	cfg := types.OSPFConfig{
		ProcessID: o.PID,
		VRF:       o.VRF,
	}

	switch {
	case o.Network != "" && o.Wildcard != "":
		cfg.Networks = []types.OSPFNetwork{{IP: o.Network, Wildcard: o.Wildcard, Area: o.Area}}
	case o.Network != "" || o.Wildcard != "":
		return cfg, fmt.Errorf("%w: --network and --wildcard must be set together", claberrors.ErrIncorrectInput)
	}

	return cfg, cfg.Validate()
}

func bgpCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "bgp",
		Short: "configure the BGP process and the IPv4 address family of a VRF",
		PreRunE: func(cobraCmd *cobra.Command, _ []string) error {
			return requireFlags(cobraCmd, "asn")
		},
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := bgpFromOptions(o.BGP)
			if err != nil {
				return err
			}

			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.ConfigureBGP(ctx, cfg)
			})
		},
	}

	c.Flags().Uint32VarP(&o.BGP.ASN, "asn", "", o.BGP.ASN, "autonomous system number, e.g. 65000")
	c.Flags().StringVarP(&o.BGP.RouterID, "router-id", "", o.BGP.RouterID, "BGP router id, e.g. 1.1.1.1")
	c.Flags().StringVarP(&o.BGP.VRF, "vrf", "", o.BGP.VRF, "VRF of the IPv4 unicast address family")
	c.Flags().StringSliceVarP(&o.BGP.Redistribute, "redistribute", "r", o.BGP.Redistribute,
		"route source to redistribute; one of [connected, ospf], repeatable")
	c.Flags().Uint16VarP(&o.BGP.OSPFPID, "ospf-pid", "", o.BGP.OSPFPID,
		"OSPF process id, required when redistributing ospf")

	return c, nil
}

func bgpFromOptions(o *BGPOptions) (types.BGPConfig, error) {
	cfg := types.BGPConfig{
		ASN:           o.ASN,
		RouterID:      o.RouterID,
		VRF:           o.VRF,
		OSPFProcessID: o.OSPFPID,
	}

	for _, r := range o.Redistribute {
		src, err := types.ParseRedistributeSource(r)
		if err != nil {
			return cfg, err
		}

		cfg.Redistribute = append(cfg.Redistribute, src)
	}

	return cfg, cfg.Validate()
}

func routeLeakingCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "route-leaking",
		Short: "set the route targets that leak routes in and out of a VRF",
		Long: "route-leaking merges every import and export route target into the VRF with\n" +
			"its own PATCH request and optionally redistributes BGP into an OSPF process of the VRF.",
		PreRunE: func(cobraCmd *cobra.Command, _ []string) error {
			if err := requireFlags(cobraCmd, "vrf"); err != nil {
				return err
			}

			if len(o.Leak.ImportRT) == 0 && len(o.Leak.ExportRT) == 0 {
				return fmt.Errorf("%w: at least one --import-rt or --export-rt is required", claberrors.ErrIncorrectInput)
			}

			if o.Leak.RedistributeBGPInOSPF != 0 && o.Leak.ASN == 0 {
				return fmt.Errorf("%w: --asn is required with --redistribute-bgp-in-ospf", claberrors.ErrIncorrectInput)
			}

			return nil
		},
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return routeLeaking(cobraCmd, o)
		},
	}

	c.Flags().StringVarP(&o.Leak.VRF, "vrf", "", o.Leak.VRF, "VRF the route targets are set on")
	c.Flags().StringSliceVarP(&o.Leak.ImportRT, "import-rt", "", o.Leak.ImportRT, "route target to import, repeatable")
	c.Flags().StringSliceVarP(&o.Leak.ExportRT, "export-rt", "", o.Leak.ExportRT, "route target to export, repeatable")
	c.Flags().Uint16VarP(&o.Leak.RedistributeBGPInOSPF, "redistribute-bgp-in-ospf", "", o.Leak.RedistributeBGPInOSPF,
		"OSPF process id to redistribute BGP into")
	c.Flags().Uint32VarP(&o.Leak.ASN, "asn", "", o.Leak.ASN, "BGP AS number redistributed into OSPF")

	return c, nil
}

type leakStep struct {
	label string
	op    operation
}

func leakSteps(o *LeakOptions) ([]leakStep, error) {
	var steps []leakStep

	for _, rt := range o.ImportRT {
		cfg := types.VrfConfig{Name: o.VRF, ImportRT: rt}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		steps = append(steps, leakStep{
			label: "import " + rt,
			op: func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.PatchVRF(ctx, cfg)
			},
		})
	}

	for _, rt := range o.ExportRT {
		cfg := types.VrfConfig{Name: o.VRF, ExportRT: rt}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		steps = append(steps, leakStep{
			label: "export " + rt,
			op: func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.PatchVRF(ctx, cfg)
			},
		})
	}

	if o.RedistributeBGPInOSPF != 0 {
		cfg := types.OSPFConfig{ProcessID: o.RedistributeBGPInOSPF, VRF: o.VRF, RedistributeBGP: o.ASN}

		steps = append(steps, leakStep{
			label: fmt.Sprintf("ospf %d", o.RedistributeBGPInOSPF),
			op: func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.ConfigureOSPF(ctx, cfg)
			},
		})
	}

	return steps, nil
}

// routeLeaking stops at the first answer that is not 2xx and prints the answers so far.
func routeLeaking(cobraCmd *cobra.Command, o *Options) error {
	steps, err := leakSteps(o.Leak)
	if err != nil {
		return err
	}

	c, err := newClient(cobraCmd, o)
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(steps))
	results := make([]*restconf.Result, 0, len(steps))

	for _, s := range steps {
		res, err := s.op(cobraCmd.Context(), c)
		if err != nil {
			return err
		}

		labels = append(labels, s.label)
		results = append(results, res)

		if !res.Success() {
			log.Warn("device rejected the change, stopping", "step", s.label, "status", res.StatusCode)

			break
		}
	}

	return printResults(cobraCmd.OutOrStdout(), o.Global.Format, labels, results)
}
