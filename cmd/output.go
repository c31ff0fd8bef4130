// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	clabconstants "github.com/srl-labs/routeleak/constants"
	claberrors "github.com/srl-labs/routeleak/errors"
	"github.com/srl-labs/routeleak/leak"
	"github.com/srl-labs/routeleak/restconf"
	"github.com/srl-labs/routeleak/utils"
)

// ResultOutput is the JSON form of a device answer.
type ResultOutput struct {
	StatusCode int `json:"status_code"`
	Data       any `json:"data"`
}

func checkFormat(f string) error {
	switch f {
	case clabconstants.FormatPlain, clabconstants.FormatTable, clabconstants.FormatJSON:
		return nil
	}

	return fmt.Errorf("%w: format %q is not one of plain, table, json", claberrors.ErrIncorrectInput, f)
}

// printResult prints the status code and the pretty printed body when there is one.
func printResult(w io.Writer, format string, res *restconf.Result) error {
	if format == clabconstants.FormatJSON {
		b, err := json.MarshalIndent(ResultOutput{StatusCode: res.StatusCode, Data: res.Data}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	fmt.Fprintf(w, "status: %d\n", res.StatusCode)

	if res.Data == nil {
		return nil
	}

	b, err := json.MarshalIndent(res.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}

	fmt.Fprintln(w, string(b))

	return nil
}

// printResults prints the answers of a command that issued several requests.
func printResults(w io.Writer, format string, labels []string, results []*restconf.Result) error {
	if format == clabconstants.FormatJSON {
		out := make([]ResultOutput, 0, len(results))
		for _, r := range results {
			out = append(out, ResultOutput{StatusCode: r.StatusCode, Data: r.Data})
		}

		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	for i, r := range results {
		fmt.Fprintf(w, "%s: ", labels[i])

		if err := printResult(w, format, r); err != nil {
			return err
		}
	}

	return nil
}

// printReport renders the phases of a full configuration run.
func printReport(w io.Writer, format string, rep *leak.Report) error {
	if format == clabconstants.FormatJSON {
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatTitle
	t.Style().Options.SeparateRows = true

	t.SetTitle(fmt.Sprintf("run %s on %s", utils.ShortID(rep.RunID), rep.Device))
	t.AppendHeader(table.Row{"#", "Phase", "State", "Targets", "Status", "Error"})

	for i, p := range rep.Phases {
		targets := make([]string, 0, len(p.Steps))
		codes := make([]string, 0, len(p.Steps))

		for _, s := range p.Steps {
			targets = append(targets, s.Target)

			code := clabconstants.NotApplicable
			if s.StatusCode != 0 {
				code = fmt.Sprint(s.StatusCode)
			}

			codes = append(codes, code)
		}

		t.AppendRow(table.Row{
			i + 1,
			p.Phase,
			stateColor(p.State).Sprint(p.State),
			strings.Join(targets, "\n"),
			strings.Join(codes, "\n"),
			text.WrapSoft(p.Error, 40), //nolint:mnd
		})
	}

	t.AppendFooter(table.Row{"", "", "", "", "took", rep.Duration.Round(time.Millisecond).String()})
	t.Render()

	return nil
}

func stateColor(s leak.PhaseState) text.Colors {
	switch s {
	case leak.StateApplied:
		return text.Colors{text.FgGreen}
	case leak.StateFailed:
		return text.Colors{text.FgRed}
	case leak.StateNotRun:
		return text.Colors{text.FgYellow}
	default:
		return text.Colors{text.Faint}
	}
}
