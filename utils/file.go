// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	claberrors "github.com/srl-labs/routeleak/errors"
)

func FileExists(filename string) bool {
	f, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}

	return err == nil && !f.IsDir()
}

// ResolvePath expands a leading ~ and makes the path absolute.
func ResolvePath(p string) (string, error) {
	if p == "" {
		return "", nil
	}

	p, err := homedir.Expand(p)
	if err != nil {
		return "", err
	}

	return filepath.Abs(p)
}

// ReadFile reads the file by path after resolving it. A missing file yields ErrFileNotFound.
func ReadFile(p string) ([]byte, error) {
	abs, err := ResolvePath(p)
	if err != nil {
		return nil, err
	}

	if !FileExists(abs) {
		return nil, fmt.Errorf("%w: %s", claberrors.ErrFileNotFound, p)
	}

	return os.ReadFile(abs)
}

// SiblingFile returns the path of a file next to p sharing its base name with suffix
// appended, e.g. plan.yml and _vars.yml give plan_vars.yml. Empty when no such file exists.
func SiblingFile(p, suffix string, exts ...string) string {
	ext := filepath.Ext(p)
	base := strings.TrimSuffix(p, ext)

	for _, e := range exts {
		f := base + suffix + e
		if FileExists(f) {
			return f
		}
	}

	return ""
}
