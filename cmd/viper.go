// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	clabconstants "github.com/srl-labs/routeleak/constants"
	"github.com/srl-labs/routeleak/utils"
)

var v *viper.Viper //nolint:gochecknoglobals

// loadDotEnv reads the .env file of the working directory into the environment.
// Variables already present in the environment win.
func loadDotEnv() error {
	if !utils.FileExists(clabconstants.EnvFile) {
		return nil
	}

	log.Debug("loading environment file", "file", clabconstants.EnvFile)

	return godotenv.Load(clabconstants.EnvFile)
}

// initViper binds the flags of the whole command tree to ROUTELEAK_ environment variables.
func initViper(root *cobra.Command) error {
	v = viper.New()

	v.SetEnvPrefix(clabconstants.EnvPrefix)
	// vrf.create.import-rt is read from ROUTELEAK_VRF_CREATE_IMPORT_RT
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", "/", "_", ".", "_"))
	v.AutomaticEnv()

	return bindFlagsWithPath(root, v, "")
}

func isRootCmd(cmd *cobra.Command) bool {
	return cmd.Name() == clabconstants.RouteLeak || cmd.Name() == ""
}

// bindFlagsWithPath binds the flags of cmd and its subcommands under their command path.
// Persistent flags of the root command are additionally bound without a path so
// ROUTELEAK_ADDRESS works for every command.
func bindFlagsWithPath(cmd *cobra.Command, v *viper.Viper, cmdPath string) error {
	currentPath := cmdPath
	root := isRootCmd(cmd)

	if !root {
		if currentPath != "" {
			currentPath = currentPath + "." + cmd.Name()
		} else {
			currentPath = cmd.Name()
		}
	}

	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		if root {
			_ = v.BindPFlag(flag.Name, flag)
		}

		if currentPath != "" {
			_ = v.BindPFlag(currentPath+"."+flag.Name, flag)
		}
	})

	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if cmd.PersistentFlags().Lookup(flag.Name) != nil {
			return
		}

		// local flags are only reachable with their command path
		if currentPath != "" {
			_ = v.BindPFlag(currentPath+"."+flag.Name, flag)
		}
	})

	for _, subCmd := range cmd.Commands() {
		if err := bindFlagsWithPath(subCmd, v, currentPath); err != nil {
			return err
		}
	}

	return nil
}

// updateOptionsFromViper sets every flag of cmd, including the inherited ones, that was
// not given on the command line from its environment variable. The flags write through
// to the Options fields they are bound to.
func updateOptionsFromViper(cmd *cobra.Command, _ *Options) {
	cmdPath := getCommandPath(cmd)

	flagMap := make(map[string]*pflag.Flag)

	addFlags := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			if _, exists := flagMap[f.Name]; !exists {
				flagMap[f.Name] = f
			}
		})
	}

	addFlags(cmd.Flags())
	addFlags(cmd.PersistentFlags())

	for parent := cmd.Parent(); parent != nil; parent = parent.Parent() {
		addFlags(parent.PersistentFlags())
	}

	rootKeys := map[string]struct{}{}
	for _, k := range v.AllKeys() {
		rootKeys[k] = struct{}{}
	}

	for _, f := range flagMap {
		updateFlagFromViper(f, cmdPath, rootKeys)
	}
}

// getCommandPath builds the dotted command path below the root, e.g. "vrf.create".
func getCommandPath(cmd *cobra.Command) string {
	var parts []string

	for current := cmd; current != nil && !isRootCmd(current); current = current.Parent() {
		parts = append([]string{current.Name()}, parts...)
	}

	return strings.Join(parts, ".")
}

// updateFlagFromViper sets a flag that was not changed on the command line. The
// command scoped key is looked up first, then the unprefixed key of a root flag.
func updateFlagFromViper(f *pflag.Flag, cmdPath string, rootKeys map[string]struct{}) {
	if f.Changed {
		return
	}

	key := f.Name
	hasValue := false

	if cmdPath != "" {
		key = cmdPath + "." + f.Name
		hasValue = v.IsSet(key)

		if !hasValue {
			if _, ok := rootKeys[f.Name]; ok {
				key = f.Name
				hasValue = v.IsSet(key)
			}
		}
	} else {
		hasValue = v.IsSet(key)
	}

	if !hasValue {
		return
	}

	var val string

	switch f.Value.Type() {
	case "stringSlice":
		if slice := v.GetStringSlice(key); len(slice) > 0 {
			val = strings.Join(slice, ",")
		}
	default:
		// a stringArray takes the whole value as a single element,
		// flag.Value.Set converts from the string form for every scalar type
		val = v.GetString(key)
	}

	if val == "" {
		return
	}

	if err := f.Value.Set(val); err != nil {
		log.Warn("ignoring environment value", "flag", f.Name, "value", val, "err", err)
	}
}

// envHint returns the environment variable a flag of cmd is read from.
func envHint(cmd *cobra.Command, flag string) string {
	key := flag

	if cmd.Root().PersistentFlags().Lookup(flag) == nil {
		if p := getCommandPath(cmd); p != "" {
			key = p + "." + flag
		}
	}

	r := strings.NewReplacer("-", "_", ".", "_")

	return clabconstants.EnvPrefix + "_" + strings.ToUpper(r.Replace(key))
}
