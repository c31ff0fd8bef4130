package netconf

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scrapli/scrapligo/response"
	clabconstants "github.com/srl-labs/routeleak/constants"
)

func TestLinesFromResponse(t *testing.T) {
	mr := &response.MultiResponse{
		Responses: []*response.Response{
			{Input: "ip routing", Result: "\n"},
			{Input: "ip bogus", Result: "% Invalid input detected at '^' marker.", Failed: errors.New("invalid input")},
		},
	}

	got := linesFromResponse(mr)
	want := LineResults{
		{Line: "ip routing"},
		{Line: "ip bogus", Output: "% Invalid input detected at '^' marker.", Error: "invalid input"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	if !got.Failed() {
		t.Error("Failed() = false with a rejected line")
	}

	if linesFromResponse(nil) != nil {
		t.Error("expected no results without a response")
	}
}

func TestLineResultsDump(t *testing.T) {
	lr := LineResults{
		{Line: "ip routing"},
		{Line: "do show run | format json", Output: `{"hostname":"R1"}`},
		{Line: "ip bogus", Output: "% Invalid input", Error: "invalid input"},
	}

	plain, err := lr.Dump(clabconstants.FormatPlain)
	if err != nil {
		t.Fatal(err)
	}

	wantPlain := strings.Join([]string{
		"Line: ip routing",
		"Line: do show run | format json",
		`Output: "{\"hostname\":\"R1\"}"`,
		"Line: ip bogus",
		`Output: "% Invalid input"`,
		`Error: "invalid input"`,
	}, "\n")
	if diff := cmp.Diff(wantPlain, plain); diff != "" {
		t.Errorf("plain mismatch (-want +got):\n%s", diff)
	}

	js, err := lr.Dump(clabconstants.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}

	// valid JSON output is embedded as an object, anything else as a string
	for _, want := range []string{`"output": {`, `"hostname": "R1"`, `"output": "% Invalid input"`} {
		if !strings.Contains(js, want) {
			t.Errorf("missing %q in JSON dump:\n%s", want, js)
		}
	}
}
