// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	clabconstants "github.com/srl-labs/routeleak/constants"
)

var errUnreachable = errors.New("device is not reachable over RESTCONF")

type connectionOutput struct {
	Address   string `json:"address"`
	Reachable bool   `json:"reachable"`
	Version   string `json:"version,omitempty"`
}

func testConnectionCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:     "test-connection",
		Aliases: []string{"ping"},
		Short:   "check that the device answers RESTCONF requests",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return testConnection(cobraCmd, o)
		},
	}

	c.Flags().BoolVarP(&o.Connection.CheckVersion, "check-version", "", o.Connection.CheckVersion,
		"also verify the device software supports RESTCONF")
	c.Flags().StringVarP(&o.Connection.MinVersion, "min-version", "", o.Connection.MinVersion,
		"oldest software release accepted by --check-version")

	return c, nil
}

func testConnection(cobraCmd *cobra.Command, o *Options) error {
	c, err := newClient(cobraCmd, o)
	if err != nil {
		return err
	}

	ctx := cobraCmd.Context()
	out := connectionOutput{
		Address:   c.Address(),
		Reachable: c.TestConnection(ctx),
	}

	if out.Reachable && o.Connection.CheckVersion {
		out.Version, err = c.CheckVersion(ctx, o.Connection.MinVersion)
		log.Debug("device version", "version", out.Version, "min", o.Connection.MinVersion)

		if err != nil {
			return err
		}
	}

	w := cobraCmd.OutOrStdout()

	if o.Global.Format == clabconstants.FormatJSON {
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(w, string(b))
	} else {
		state := "reachable"
		if !out.Reachable {
			state = "unreachable"
		}

		fmt.Fprintf(w, "%s is %s\n", out.Address, state)

		if out.Version != "" {
			fmt.Fprintf(w, "version: %s\n", out.Version)
		}
	}

	if !out.Reachable {
		return fmt.Errorf("%w: %s", errUnreachable, out.Address)
	}

	return nil
}
