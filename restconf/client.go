// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package restconf resolves device resources into RESTCONF URLs and performs
// the HTTP exchanges carrying YANG-JSON documents.
package restconf

import (
	"crypto/tls"
	"net/http"
	"time"

	clabconstants "github.com/srl-labs/routeleak/constants"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	defaultWaitTimeout  = 30 * time.Second
)

// Client talks to the RESTCONF agent of a single device.
// A Client holds no per-request state and can be reused across operations.
type Client struct {
	cfg  Config
	base string

	httpClient   *http.Client
	userAgent    string
	pollInterval time.Duration
	waitTimeout  time.Duration
}

// ClientOption configures a Client created by New.
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client built from the Config.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithPollInterval sets the initial interval between readiness probes.
func WithPollInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		c.pollInterval = d
	}
}

// WithWaitTimeout bounds the total time spent waiting for a resource to become readable.
// A non-positive d keeps the default.
func WithWaitTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.waitTimeout = d
		}
	}
}

// New returns a Client for the device described by cfg.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:          cfg,
		base:         cfg.BaseURL(),
		userAgent:    clabconstants.RouteLeak,
		pollInterval: defaultPollInterval,
		waitTimeout:  defaultWaitTimeout,
	}

	for _, o := range opts {
		o(c)
	}

	if c.httpClient == nil {
		tr := &http.Transport{Proxy: http.ProxyFromEnvironment}
		if dt, ok := http.DefaultTransport.(*http.Transport); ok {
			tr = dt.Clone()
		}

		tr.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
		}

		c.httpClient = &http.Client{
			Transport: tr,
			Timeout:   cfg.timeout(),
		}
	}

	return c, nil
}

// BaseURL returns scheme://host[:port] of the device.
func (c *Client) BaseURL() string {
	return c.base
}

// Address returns the device address as configured.
func (c *Client) Address() string {
	return c.cfg.Address
}
