// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package utils

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if the given file descriptor is a terminal.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// ReadPasswordFromTerminal prompts on stderr and reads the password from stdin without echo.
func ReadPasswordFromTerminal(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}

	fmt.Fprintln(os.Stderr)

	return string(pass), nil
}
