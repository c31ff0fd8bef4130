// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	claberrors "github.com/srl-labs/routeleak/errors"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "plan.yml")

	if err := os.WriteFile(p, []byte("vrfs: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff("vrfs: []\n", string(b)); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.yml"))
	if !errors.Is(err, claberrors.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}

	if _, err := ReadFile(dir); !errors.Is(err, claberrors.ErrFileNotFound) {
		t.Errorf("expected a directory to be reported as not found, got %v", err)
	}
}

func TestResolvePathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("~/plans/lab.yml")
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(filepath.Join(home, "plans", "lab.yml"), got); diff != "" {
		t.Errorf("ResolvePath() mismatch (-want +got):\n%s", diff)
	}
}

func TestSiblingFile(t *testing.T) {
	dir := t.TempDir()
	plan := filepath.Join(dir, "lab.yml")
	vars := filepath.Join(dir, "lab_vars.yaml")

	if err := os.WriteFile(vars, []byte("asn: 65000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := SiblingFile(plan, "_vars", ".yml", ".yaml"); got != vars {
		t.Errorf("SiblingFile() = %q, want %q", got, vars)
	}

	if got := SiblingFile(filepath.Join(dir, "other.yml"), "_vars", ".yml", ".yaml"); got != "" {
		t.Errorf("SiblingFile() = %q, want empty", got)
	}
}
