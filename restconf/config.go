// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package restconf

import (
	"fmt"
	"net"
	"strconv"
	"time"

	clabconstants "github.com/srl-labs/routeleak/constants"
	claberrors "github.com/srl-labs/routeleak/errors"
)

const defaultTimeout = 30 * time.Second

// Config holds the device connection parameters. There are no built-in credentials,
// the address, username and password must always be supplied by the caller.
type Config struct {
	Address  string
	Port     int
	Username string
	Password string
	// Scheme is https unless set otherwise.
	Scheme  string
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification. Lab devices ship
	// self-signed certificates, never enable this against production gear.
	InsecureSkipVerify bool
}

// Validate returns ErrMissingCredentials when the address, the username or the password is unset.
func (c *Config) Validate() error {
	switch {
	case c.Address == "":
		return fmt.Errorf("%w: device address is not set", claberrors.ErrMissingCredentials)
	case c.Username == "":
		return fmt.Errorf("%w: username is not set", claberrors.ErrMissingCredentials)
	case c.Password == "":
		return fmt.Errorf("%w: password is not set", claberrors.ErrMissingCredentials)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", claberrors.ErrIncorrectInput, c.Port)
	}

	return nil
}

func (c *Config) scheme() string {
	if c.Scheme == "" {
		return clabconstants.DefaultScheme
	}

	return c.Scheme
}

func (c *Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}

	return c.Timeout
}

// BaseURL returns scheme://host[:port] of the device.
func (c *Config) BaseURL() string {
	host := c.Address
	if c.Port != 0 {
		host = net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
	} else if ip := net.ParseIP(c.Address); ip != nil && ip.To4() == nil {
		host = "[" + c.Address + "]"
	}

	return c.scheme() + "://" + host
}
