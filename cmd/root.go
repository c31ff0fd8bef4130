// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	clabconstants "github.com/srl-labs/routeleak/constants"
	claberrors "github.com/srl-labs/routeleak/errors"
)

func subcommandRegisterFuncs() []func(*Options) (*cobra.Command, error) {
	return []func(*Options) (*cobra.Command, error){
		testConnectionCmd,
		interfaceCmd,
		vrfCmd,
		assignInterfaceCmd,
		ospfCmd,
		bgpCmd,
		routeLeakingCmd,
		routeMapCmd,
		initialConfigCmd,
		saveConfigCmd,
		fullConfigurationCmd,
		shellCmd,
		versionCmd,
	}
}

// Entrypoint returns the root command bound to the global options instance.
func Entrypoint() (*cobra.Command, error) {
	return newRootCmd(GetOptions())
}

func newRootCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   clabconstants.RouteLeak,
		Short: "configure MP-BGP route leaking between VRFs over RESTCONF",
		Long: "routeleak drives the RESTCONF API of an IOS-XE device step by step:\n" +
			"interfaces, VRFs with route distinguishers and route targets, OSPF, BGP and route-maps.",
		PersistentPreRunE: func(cobraCmd *cobra.Command, _ []string) error {
			return preRunFn(cobraCmd, o)
		},
		SilenceUsage: true,
	}

	pf := c.PersistentFlags()

	pf.CountVarP(&o.Global.DebugCount, "debug", "d", "enable debug mode")
	pf.StringVarP(&o.Global.LogLevel, "log-level", "", o.Global.LogLevel,
		"logging level; one of [debug, info, warn, error, fatal]")
	pf.DurationVarP(&o.Global.Timeout, "timeout", "", o.Global.Timeout,
		"timeout for a single request to the device, e.g: 30s, 1m, 2m30s")
	pf.StringVarP(&o.Global.Format, "format", "f", o.Global.Format, "output format; one of [plain, table, json]")

	pf.StringVarP(&o.Device.Address, "address", "a", o.Device.Address, "device address (IP or hostname)")
	pf.IntVarP(&o.Device.Port, "port", "", o.Device.Port, "RESTCONF port, 0 uses the scheme default")
	pf.StringVarP(&o.Device.Username, "username", "u", o.Device.Username, "device username")
	pf.StringVarP(&o.Device.Password, "password", "", o.Device.Password,
		"device password, prompted for when empty and stdin is a terminal")
	pf.StringVarP(&o.Device.Scheme, "scheme", "", o.Device.Scheme, "RESTCONF scheme; http or https")
	pf.BoolVarP(&o.Device.Insecure, "insecure", "k", o.Device.Insecure,
		"skip TLS certificate verification (insecure, lab use only)")

	for _, f := range subcommandRegisterFuncs() {
		cmd, err := f(o)
		if err != nil {
			return nil, err
		}

		c.AddCommand(cmd)
	}

	return c, nil
}

func preRunFn(cobraCmd *cobra.Command, o *Options) error {
	err := loadDotEnv()
	if err != nil {
		return err
	}

	err = initViper(cobraCmd.Root())
	if err != nil {
		return err
	}

	updateOptionsFromViper(cobraCmd, o)

	// setting log level
	switch {
	case o.Global.DebugCount > 0:
		log.SetLevel(log.DebugLevel)
	default:
		l, err := log.ParseLevel(o.Global.LogLevel)
		if err != nil {
			return err
		}

		log.SetLevel(l)
	}

	// setting output to stderr, so that json outputs can be parsed
	log.SetOutput(os.Stderr)

	log.SetTimeFormat(time.TimeOnly)

	return checkFormat(o.Global.Format)
}

// requireFlags fails with ErrIncorrectInput on the first of the named flags left at its
// zero value. It runs after the environment was applied, unlike cobra's required flags.
func requireFlags(cobraCmd *cobra.Command, names ...string) error {
	for _, n := range names {
		f := cobraCmd.Flags().Lookup(n)
		if f == nil {
			continue
		}

		switch f.Value.String() {
		case "", "0", "[]":
			return fmt.Errorf("%w: --%s is required (or set %s)", claberrors.ErrIncorrectInput, n, envHint(cobraCmd, n))
		}
	}

	return nil
}

func requireName(cobraCmd *cobra.Command, _ []string) error {
	return requireFlags(cobraCmd, "name")
}
