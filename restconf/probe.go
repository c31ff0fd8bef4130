// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package restconf

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/charmbracelet/log"
	gover "github.com/hashicorp/go-version"
	clabconstants "github.com/srl-labs/routeleak/constants"
	"github.com/srl-labs/routeleak/utils"
)

// ErrUnsupportedVersion is returned when the device software predates the RESTCONF agent.
var ErrUnsupportedVersion = errors.New("unsupported device version")

// releaseRe finds the release in version strings like 17.3 or "Version 17.03.04a".
var releaseRe = regexp.MustCompile(`(?P<release>\d+\.\d+(\.\d+)?)`)

// TestConnection reads the interfaces collection and reports whether the device
// answered with 200. Transport errors and any other status yield false.
func (c *Client) TestConnection(ctx context.Context) bool {
	res, err := c.GetInterfaces(ctx)
	if err != nil {
		log.Debug("connection test failed", "address", c.cfg.Address, "error", err)
		return false
	}

	if res.StatusCode != http.StatusOK {
		log.Debug("connection test failed", "address", c.cfg.Address, "status", res.StatusCode)
		return false
	}

	return true
}

// DeviceVersion returns the software version the device reports, e.g. 17.3.
func (c *Client) DeviceVersion(ctx context.Context) (string, error) {
	res, err := c.Execute(ctx, http.MethodGet, c.URL(RequestVersion, Params{}), nil)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reading device version: unexpected status %d", res.StatusCode)
	}

	v := res.Get(clabconstants.ModuleNative + `:version`)
	if !v.Exists() {
		return "", fmt.Errorf("reading device version: no version in response %q", res.Raw)
	}

	return v.String(), nil
}

// CheckVersion reads the device version and returns it together with
// ErrUnsupportedVersion when the device runs a release older than minVersion.
func (c *Client) CheckVersion(ctx context.Context, minVersion string) (string, error) {
	dv, err := c.DeviceVersion(ctx)
	if err != nil {
		return "", err
	}

	return dv, compareVersions(dv, minVersion)
}

func compareVersions(device, minVersion string) error {
	groups, err := utils.NamedCaptures(releaseRe, device)
	if err != nil {
		return fmt.Errorf("parsing device version: %w", err)
	}

	have, err := gover.NewVersion(groups["release"])
	if err != nil {
		return fmt.Errorf("parsing device version %q: %w", device, err)
	}

	want, err := gover.NewVersion(minVersion)
	if err != nil {
		return fmt.Errorf("parsing minimal version %q: %w", minVersion, err)
	}

	if have.LessThan(want) {
		return fmt.Errorf("%w: device runs %s, RESTCONF needs %s or newer", ErrUnsupportedVersion, have, want)
	}

	return nil
}
