// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package restconf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	clabconstants "github.com/srl-labs/routeleak/constants"
	"github.com/srl-labs/routeleak/types"
	"github.com/tidwall/gjson"
)

// Result is the outcome of an exchange that reached the device.
// Any status code is a valid result, interpreting it is up to the caller.
type Result struct {
	StatusCode int
	// Data is the decoded response body, nil when the body is empty or not JSON.
	Data any
	// Raw is the response body as received.
	Raw []byte
}

// Success reports whether the device answered with a 2xx status.
func (r *Result) Success() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Get extracts a value from the response body using a gjson path,
// e.g. "Cisco-IOS-XE-native:version".
func (r *Result) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Raw, path)
}

// TransportError is returned when a request never produced an HTTP response:
// the host did not resolve, refused the connection, timed out or failed the TLS handshake.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request failed because a deadline was exceeded.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}

	var ne net.Error

	return errors.As(e.Err, &ne) && ne.Timeout()
}

// Execute sends a single request with the YANG-JSON media type and basic authentication.
// A nil body sends no payload. Non-2xx answers are returned as a Result, only failures
// to exchange the request with the device are returned as *TransportError.
func (c *Client) Execute(ctx context.Context, method, url string, body types.Document) (*Result, error) {
	var payload io.Reader

	if body != nil {
		b, err := body.JSON()
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, url, err)
		}

		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", method, url, err)
	}

	req.Header.Set("Accept", clabconstants.MediaTypeYANGJSON)
	req.Header.Set("Content-Type", clabconstants.MediaTypeYANGJSON)
	req.Header.Set("User-Agent", c.userAgent)
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}

	log.Debug("restconf exchange",
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).Round(time.Millisecond),
		"size", humanize.Bytes(uint64(len(raw))))

	res := &Result{
		StatusCode: resp.StatusCode,
		Raw:        raw,
	}

	if len(bytes.TrimSpace(raw)) > 0 {
		var data any
		if err := json.Unmarshal(raw, &data); err == nil {
			res.Data = data
		} else {
			log.Debug("response body is not JSON", "url", url, "error", err)
		}
	}

	return res, nil
}
