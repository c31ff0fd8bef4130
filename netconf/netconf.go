// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package netconf contains the NETCONF and SSH CLI fallbacks used next to RESTCONF
// for the operations the RESTCONF agent does not cover on every release.
package netconf

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/scrapli/scrapligo/driver/netconf"
	"github.com/scrapli/scrapligo/driver/options"
	scraplilogging "github.com/scrapli/scrapligo/logging"
	"github.com/scrapli/scrapligo/platform"
	"github.com/scrapli/scrapligo/transport"
	"github.com/scrapli/scrapligo/util"
)

const (
	// DefaultPort is the NETCONF over SSH port.
	DefaultPort = 830

	defaultOpsTimeout = 10 * time.Second
)

// Target describes how to reach a device over SSH.
type Target struct {
	Address  string
	Username string
	Password string
	// Port overrides the default port of the operation, 0 keeps it.
	Port    int
	Timeout time.Duration
}

func (t Target) options(defaultPort int) ([]util.Option, error) {
	li, err := scraplilogging.NewInstance(
		scraplilogging.WithLevel("debug"),
		scraplilogging.WithLogger(func(a ...any) {
			log.Debug(fmt.Sprint(a...), "device", t.Address)
		}))
	if err != nil {
		return nil, err
	}

	port := t.Port
	if port == 0 {
		port = defaultPort
	}

	timeout := t.Timeout
	if timeout <= 0 {
		timeout = defaultOpsTimeout
	}

	return []util.Option{
		options.WithAuthNoStrictKey(),
		options.WithAuthUsername(t.Username),
		options.WithAuthPassword(t.Password),
		options.WithTransportType(transport.StandardTransport),
		options.WithPort(port),
		options.WithTimeoutOps(timeout),
		options.WithLogger(li),
	}, nil
}

// SaveConfig copies the running datastore to startup with a <copy-config> RPC.
// It serves devices whose RESTCONF agent lacks the save-config operation.
func SaveConfig(t Target) error {
	opts, err := t.options(DefaultPort)
	if err != nil {
		return err
	}

	d, err := netconf.NewDriver(t.Address, opts...)
	if err != nil {
		return fmt.Errorf("could not create netconf driver for %s: %w", t.Address, err)
	}

	err = d.Open()
	if err != nil {
		return fmt.Errorf("failed to open netconf driver for %s: %w", t.Address, err)
	}
	defer d.Close()

	r, err := d.CopyConfig("running", "startup")
	if err != nil {
		return fmt.Errorf("%s: could not send save config via netconf: %w", t.Address, err)
	}

	if r.Failed != nil {
		return fmt.Errorf("%s: copy-config failed: %w", t.Address, r.Failed)
	}

	return nil
}

// ApplyConfig pushes configuration lines over an SSH CLI session. It covers the parts of the
// initial device setup that have no RESTCONF model, e.g. "ip routing" or console line settings.
// The answers are returned with the error when the device rejects a line.
func ApplyConfig(t Target, lines []string) (LineResults, error) {
	opts, err := t.options(22) //nolint:mnd
	if err != nil {
		return nil, err
	}

	p, err := platform.NewPlatform(platform.CiscoIosxe, t.Address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create platform; error: %w", err)
	}

	d, err := p.GetNetworkDriver()
	if err != nil {
		return nil, fmt.Errorf("could not create cli driver for %s: %w", t.Address, err)
	}

	err = d.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open cli driver for %s: %w", t.Address, err)
	}
	defer d.Close()

	mr, err := d.SendConfigs(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to send config lines; error: %w", err)
	}

	lr := linesFromResponse(mr)
	lr.Log(t.Address)

	if mr.Failed != nil {
		return lr, fmt.Errorf("response object indicates failure: %w", mr.Failed)
	}

	return lr, nil
}
