// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"

	"github.com/charmbracelet/fang"
	"github.com/srl-labs/routeleak/cmd"
)

func main() {
	ctx, cancel := cmd.SignalHandledContext()

	rootCmd, err := cmd.Entrypoint()
	if err != nil {
		cancel()
		os.Exit(1)
	}

	err = fang.Execute(ctx, rootCmd, fang.WithoutVersion())

	// ensure cancel is *always* called (os.Exit bypasses)
	cancel()

	if err != nil {
		os.Exit(1)
	}
}
