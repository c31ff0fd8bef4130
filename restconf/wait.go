// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package restconf

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/charmbracelet/log"
)

// ErrNotReady is returned when a resource did not become readable in time.
var ErrNotReady = errors.New("resource not ready")

const maxPollInterval = 5 * time.Second

// WaitForResource reads the resource until the device answers 200.
// Probing backs off exponentially and stops after the client wait timeout or when ctx is done.
// A transport error ends the wait immediately. On give-up the last result is returned
// together with an error wrapping ErrNotReady.
func (c *Client) WaitForResource(ctx context.Context, rt RequestType, p Params) (*Result, error) {
	url := c.URL(rt, p)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.pollInterval
	b.MaxInterval = maxPollInterval
	b.Multiplier = 1.5
	// zero means no limit for backoff
	b.MaxElapsedTime = c.waitTimeout
	if b.MaxElapsedTime <= 0 {
		b.MaxElapsedTime = defaultWaitTimeout
	}

	var last *Result

	probe := func() error {
		res, err := c.Execute(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		last = res

		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("status %d", res.StatusCode)
		}

		return nil
	}

	notify := func(err error, next time.Duration) {
		log.Debug("resource not ready", "resource", rt, "url", url, "reason", err, "retry-in", next)
	}

	err := backoff.RetryNotify(probe, backoff.WithContext(b, ctx), notify)
	if err == nil {
		return last, nil
	}

	var te *TransportError
	if errors.As(err, &te) {
		return last, err
	}

	status := 0
	if last != nil {
		status = last.StatusCode
	}

	return last, fmt.Errorf("%w: %s %s, last status %d: %v", ErrNotReady, rt, url, status, err)
}
