// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/srl-labs/routeleak/restconf"
	"github.com/srl-labs/routeleak/types"
)

func vrfCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "vrf",
		Short: "manage VRF definitions",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "create a VRF and set its route distinguisher and route targets",
		Long: "create posts the bare VRF definition, waits until the device serves it\n" +
			"and patches the route distinguisher and route targets in.",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return vrfCreate(cobraCmd, o)
		},
	}

	patchCmd := &cobra.Command{
		Use:   "patch",
		Short: "merge route distinguisher and route targets into an existing VRF",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg := vrfFromOptions(o.VRF)
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.PatchVRF(ctx, cfg)
			})
		},
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "show a VRF definition",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.GetVRF(ctx, o.VRF.Name)
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list the VRF definitions",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.GetVRFs(ctx)
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "delete a VRF definition",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runOperation(cobraCmd, o, func(ctx context.Context, c *restconf.Client) (*restconf.Result, error) {
				return c.DeleteVRF(ctx, o.VRF.Name)
			})
		},
	}

	for _, sub := range []*cobra.Command{createCmd, patchCmd, getCmd, deleteCmd} {
		sub.Flags().StringVarP(&o.VRF.Name, "name", "n", o.VRF.Name, "VRF name, e.g. CUSTOMER_A")
		sub.PreRunE = requireName
	}

	for _, sub := range []*cobra.Command{createCmd, patchCmd} {
		sub.Flags().StringVarP(&o.VRF.RD, "rd", "", o.VRF.RD, "route distinguisher, ASN:NN, e.g. 65000:100")
		sub.Flags().StringVarP(&o.VRF.ImportRT, "import-rt", "", o.VRF.ImportRT, "route target to import")
		sub.Flags().StringVarP(&o.VRF.ExportRT, "export-rt", "", o.VRF.ExportRT, "route target to export")
	}

	c.AddCommand(createCmd, patchCmd, getCmd, listCmd, deleteCmd)

	return c, nil
}

func vrfFromOptions(o *VRFOptions) types.VrfConfig {
	return types.VrfConfig{
		Name:     o.Name,
		RD:       o.RD,
		ImportRT: o.ImportRT,
		ExportRT: o.ExportRT,
	}
}

// vrfCreate creates the VRF in two steps. The device rejects RD and route targets in
// the creation request, so they follow in a PATCH once the definition is readable.
func vrfCreate(cobraCmd *cobra.Command, o *Options) error {
	cfg := vrfFromOptions(o.VRF)
	if err := cfg.Validate(); err != nil {
		return err
	}

	c, err := newClient(cobraCmd, o)
	if err != nil {
		return err
	}

	ctx := cobraCmd.Context()
	w := cobraCmd.OutOrStdout()

	res, err := c.CreateVRF(ctx, cfg)
	if err != nil {
		return err
	}

	if !cfg.HasAttributes() || (!res.Success() && res.StatusCode != http.StatusConflict) {
		return printResult(w, o.Global.Format, res)
	}

	if res.StatusCode == http.StatusConflict {
		log.Info("vrf exists already, patching it", "vrf", cfg.Name)
	}

	wait, err := c.WaitForResource(ctx, restconf.RequestVRFByName, restconf.Params{VRF: cfg.Name})
	if err != nil {
		return fmt.Errorf("vrf %s was created but never became readable: %w", cfg.Name, err)
	}

	log.Debug("vrf is readable", "vrf", cfg.Name, "status", wait.StatusCode)

	patch, err := c.PatchVRF(ctx, cfg)
	if err != nil {
		return err
	}

	return printResults(w, o.Global.Format, []string{"create", "patch"}, []*restconf.Result{res, patch})
}
