// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	claberrors "github.com/srl-labs/routeleak/errors"
	"github.com/srl-labs/routeleak/leak"
	"github.com/srl-labs/routeleak/restconf"
	"gopkg.in/yaml.v2"
)

func fullConfigurationCmd(o *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:     "full-configuration",
		Aliases: []string{"full"},
		Short:   "apply a complete route leaking plan in order",
		Long: "full-configuration applies a plan phase by phase: hostname, VRF creation,\n" +
			"route distinguishers and route targets, route-maps, interfaces, OSPF, BGP and\n" +
			"optionally a configuration save. The first failing phase stops the run.\n" +
			"The plan file is rendered as a Go template with the variables of --vars\n" +
			"or of a <plan>_vars.yml file next to it before environment variables are expanded.",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			switch {
			case o.Full.Plan == "" && !o.Full.Demo:
				return fmt.Errorf("%w: one of --plan or --demo is required", claberrors.ErrIncorrectInput)
			case o.Full.Plan != "" && o.Full.Demo:
				return fmt.Errorf("%w: --plan and --demo are mutually exclusive", claberrors.ErrIncorrectInput)
			case o.Full.VarsFile != "" && o.Full.Plan == "":
				return fmt.Errorf("%w: --vars needs --plan", claberrors.ErrIncorrectInput)
			case o.Full.WaitTimeout <= 0 || o.Full.PollInterval <= 0:
				return fmt.Errorf("%w: --wait-timeout and --poll-interval must be positive",
					claberrors.ErrIncorrectInput)
			}

			return nil
		},
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return fullConfiguration(cobraCmd, o)
		},
	}

	c.Flags().StringVarP(&o.Full.Plan, "plan", "p", o.Full.Plan, "path to the plan file")
	c.Flags().StringVarP(&o.Full.VarsFile, "vars", "", o.Full.VarsFile,
		"path to a YAML or JSON file with the plan template variables")
	c.Flags().BoolVarP(&o.Full.Demo, "demo", "", o.Full.Demo,
		"apply the built-in plan leaking routes between CUSTOMER_A and CUSTOMER_B")
	c.Flags().BoolVarP(&o.Full.SaveConfig, "save-config", "", o.Full.SaveConfig,
		"save the configuration once every phase is applied")
	c.Flags().BoolVarP(&o.Full.DryRun, "dry-run", "", o.Full.DryRun, "print the rendered plan and exit")
	c.Flags().DurationVarP(&o.Full.PollInterval, "poll-interval", "", o.Full.PollInterval,
		"interval between readiness checks of a created VRF")
	c.Flags().DurationVarP(&o.Full.WaitTimeout, "wait-timeout", "", o.Full.WaitTimeout,
		"time a created VRF has to become readable")

	return c, nil
}

func loadPlan(o *FullOptions) (*leak.Plan, error) {
	var (
		plan *leak.Plan
		err  error
	)

	if o.Demo {
		plan = leak.DemoPlan()
	} else {
		plan, err = leak.LoadPlan(o.Plan, o.VarsFile)
		if err != nil {
			return nil, err
		}
	}

	if o.SaveConfig {
		plan.SaveConfig = true
	}

	return plan, plan.Validate()
}

func fullConfiguration(cobraCmd *cobra.Command, o *Options) error {
	plan, err := loadPlan(o.Full)
	if err != nil {
		return err
	}

	if o.Full.DryRun {
		b, err := yaml.Marshal(plan)
		if err != nil {
			return err
		}

		_, err = cobraCmd.OutOrStdout().Write(b)

		return err
	}

	c, err := newClient(cobraCmd, o,
		restconf.WithPollInterval(o.Full.PollInterval),
		restconf.WithWaitTimeout(o.Full.WaitTimeout),
	)
	if err != nil {
		return err
	}

	r := leak.NewRunner(c, leak.WithDevice(c.Address()))

	rep, runErr := r.Run(cobraCmd.Context(), plan)

	if err := printReport(cobraCmd.OutOrStdout(), o.Global.Format, rep); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}

	log.Info("plan applied", "run", rep.RunID, "phases", len(rep.Applied()))

	return nil
}
