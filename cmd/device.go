// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	claberrors "github.com/srl-labs/routeleak/errors"
	"github.com/srl-labs/routeleak/netconf"
	"github.com/srl-labs/routeleak/restconf"
	"github.com/srl-labs/routeleak/utils"
)

// readPassword is swapped in tests.
var readPassword = utils.ReadPasswordFromTerminal //nolint:gochecknoglobals

// promptPassword asks for the password when it was given neither as a flag nor in the
// environment and stdin is a terminal.
func promptPassword(o *DeviceOptions) error {
	if o.Password != "" || o.Username == "" || !utils.IsTerminal(os.Stdin.Fd()) {
		return nil
	}

	p, err := readPassword(fmt.Sprintf("password for %s@%s: ", o.Username, o.Address))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	o.Password = p

	return nil
}

// newClient builds the RESTCONF client for the device selected by the global flags.
func newClient(cmd *cobra.Command, o *Options, opts ...restconf.ClientOption) (*restconf.Client, error) {
	if err := promptPassword(o.Device); err != nil {
		return nil, err
	}

	c, err := restconf.New(o.Device.toRESTCONFConfig(o.Global.Timeout), opts...)
	if errors.Is(err, claberrors.ErrMissingCredentials) {
		return nil, fmt.Errorf("%w (use --address, --username and --password or %s, %s and %s)", err,
			envHint(cmd, "address"), envHint(cmd, "username"), envHint(cmd, "password"))
	}

	if err != nil {
		return nil, err
	}

	log.Debug("restconf client created", "base", c.BaseURL(), "user", o.Device.Username)

	return c, nil
}

// sshTarget returns the SSH target of the device for the NETCONF and CLI fallbacks.
func sshTarget(cmd *cobra.Command, o *Options, port int) (netconf.Target, error) {
	if err := promptPassword(o.Device); err != nil {
		return netconf.Target{}, err
	}

	if o.Device.Address == "" || o.Device.Username == "" || o.Device.Password == "" {
		return netconf.Target{}, fmt.Errorf("%w (use --address, --username and --password or %s, %s and %s)",
			claberrors.ErrMissingCredentials,
			envHint(cmd, "address"), envHint(cmd, "username"), envHint(cmd, "password"))
	}

	return o.Device.toNETCONFTarget(port, o.Global.Timeout), nil
}
