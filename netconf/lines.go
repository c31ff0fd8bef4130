// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package netconf

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/scrapli/scrapligo/response"
	clabconstants "github.com/srl-labs/routeleak/constants"
)

// Output is the device echo of a configuration line. It is marshaled as is when
// it holds valid JSON and as a string otherwise.
type Output string

// MarshalJSON implements a custom marshaller for a custom Output type.
func (s Output) MarshalJSON() ([]byte, error) {
	switch {
	case json.Valid([]byte(s)):
		return []byte(s), nil
	default:
		return json.Marshal(string(s))
	}
}

// LineResult is the answer of the device to a single configuration line.
type LineResult struct {
	Line   string `json:"line"`
	Output Output `json:"output"`
	// Error holds the device complaint, e.g. "% Invalid input detected".
	Error string `json:"error,omitempty"`
}

func (r *LineResult) String() string {
	var s strings.Builder

	s.WriteString("Line: " + r.Line)

	if r.Output != "" {
		s.WriteString(fmt.Sprintf("\nOutput: %q", r.Output))
	}

	if r.Error != "" {
		s.WriteString(fmt.Sprintf("\nError: %q", r.Error))
	}

	return s.String()
}

// LineResults are the answers to the lines of a configuration session, in order.
type LineResults []*LineResult

func linesFromResponse(mr *response.MultiResponse) LineResults {
	if mr == nil {
		return nil
	}

	lr := make(LineResults, 0, len(mr.Responses))

	for _, r := range mr.Responses {
		res := &LineResult{
			Line:   r.Input,
			Output: Output(strings.TrimSpace(r.Result)),
		}

		if r.Failed != nil {
			res.Error = r.Failed.Error()
		}

		lr = append(lr, res)
	}

	return lr
}

// Failed reports whether the device rejected any line.
func (lr LineResults) Failed() bool {
	for _, r := range lr {
		if r.Error != "" {
			return true
		}
	}

	return false
}

// Dump dumps the results as a string in one of the output formats.
func (lr LineResults) Dump(format string) (string, error) {
	if format == clabconstants.FormatJSON {
		b, err := json.MarshalIndent(lr, "", "  ")
		if err != nil {
			return "", err
		}

		return string(b), nil
	}

	parts := make([]string, 0, len(lr))
	for _, r := range lr {
		parts = append(parts, r.String())
	}

	return strings.Join(parts, "\n"), nil
}

// Log writes the results to the log, rejected lines with the error facility.
func (lr LineResults) Log(device string) {
	for _, r := range lr {
		switch {
		case r.Error != "":
			log.Error("line rejected", "device", device, "line", r.Line, "error", r.Error)
		default:
			log.Debug("line applied", "device", device, "line", r.Line, "output", r.Output)
		}
	}
}
