// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"fmt"

	gover "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

// Version variables set at build time (e.g., with -ldflags).
var (
	Version = "0.0.0"
	commit  = "none"
	date    = "unknown"
)

const repoUrl = "https://github.com/srl-labs/routeleak"

func versionCmd(_ *Options) (*cobra.Command, error) {
	c := &cobra.Command{
		Use:   "version",
		Short: "show routeleak version",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			w := cobraCmd.OutOrStdout()
			fmt.Fprintf(w, "    version: %s\n", Version)
			fmt.Fprintf(w, "     commit: %s\n", commit)
			fmt.Fprintf(w, "       date: %s\n", date)
			fmt.Fprintf(w, "     source: %s\n", repoUrl)
			fmt.Fprintf(w, " rel. notes: %s\n", releaseNotesURL(Version))
			return nil
		},
	}

	return c, nil
}

// releaseNotesURL returns the release page of ver, or the release list
// when ver is not a version.
func releaseNotesURL(ver string) string {
	v, err := gover.NewVersion(ver)
	if err != nil {
		return repoUrl + "/releases"
	}

	return fmt.Sprintf("%s/releases/tag/v%s", repoUrl, v.String())
}
