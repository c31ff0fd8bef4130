package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/netip"
	"strconv"
	"text/template"

	"github.com/hellt/envsubst"
	jT "github.com/kellerza/template"
)

// TemplateFuncs are the functions available to plan templates next to the
// kellerza/template set (ip, ipmask, default, expect, optional, ...).
var TemplateFuncs = template.FuncMap{
	"toJson":   toJson,
	"add":      add,
	"seq":      seq,
	"dotted":   dottedMask,
	"wildcard": wildcardMask,
	"rt":       extCommunity,
}

// CreateFuncs returns the complete function map for rendering templates.
func CreateFuncs() template.FuncMap {
	f := template.FuncMap{}

	for k, v := range jT.Funcs {
		f[k] = v
	}

	for k, v := range TemplateFuncs {
		f[k] = v
	}

	return f
}

// RenderTemplate executes the template b with data and expands environment variables
// in the result. Unset variables are kept as written.
func RenderTemplate(name string, b []byte, data any) ([]byte, error) {
	t, err := template.New(name).Funcs(CreateFuncs()).Option("missingkey=error").Parse(string(b))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)

	err = t.Execute(buf, data)
	if err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return envsubst.BytesRestrictedNoReplace(buf.Bytes(), false, false, true, true)
}

func toJson(v any) string {
	a, _ := json.Marshal(v)

	return string(a)
}

func add(a, b int) int {
	return a + b
}

// seq returns the sequence 1..end, start..end or start..end by step.
func seq(n ...int) ([]int, error) {
	start, end, step := 1, 0, 1

	switch len(n) {
	case 1:
		end = n[0]
	case 2:
		start, end = n[0], n[1]
	case 3:
		start, end, step = n[0], n[1], n[2]
	default:
		return nil, fmt.Errorf("expected 1, 2, or 3 arguments, got %d", len(n))
	}

	if step == 0 {
		return []int{}, nil
	}

	// handle cases where step has wrong sign
	if (end < start && step > 0) || (end > start && step < 0) {
		step = -step
	}

	s := []int{}
	for i := start; (step > 0 && i <= end) || (step < 0 && i >= end); i += step {
		s = append(s, i)
	}

	return s, nil
}

// dottedMask turns a prefix length such as 24 into 255.255.255.0.
func dottedMask(v any) (string, error) {
	bits, err := strconv.Atoi(fmt.Sprint(v))
	if err != nil || bits < 0 || bits > 32 {
		return "", fmt.Errorf("%v is not an IPv4 prefix length", v)
	}

	m := ^uint32(0) << (32 - bits)
	if bits == 0 {
		m = 0
	}

	return netip.AddrFrom4([4]byte{byte(m >> 24), byte(m >> 16), byte(m >> 8), byte(m)}).String(), nil
}

// wildcardMask inverts a dotted mask, 255.255.255.0 becomes 0.0.0.255.
func wildcardMask(mask string) (string, error) {
	a, err := netip.ParseAddr(mask)
	if err != nil || !a.Is4() {
		return "", fmt.Errorf("%q is not an IPv4 mask", mask)
	}

	b := a.As4()
	for i := range b {
		b[i] = ^b[i]
	}

	return netip.AddrFrom4(b).String(), nil
}

// extCommunity builds a route distinguisher or route target from its two parts.
func extCommunity(admin, assigned any) string {
	return fmt.Sprintf("%v:%v", admin, assigned)
}
