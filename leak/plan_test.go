// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package leak

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	claberrors "github.com/srl-labs/routeleak/errors"
	"github.com/srl-labs/routeleak/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return p
}

const templatedPlan = `hostname: ${RL_HOSTNAME}
vrfs:
{{- range $i, $c := .customers }}
  - name: {{ $c }}
    rd: {{ rt $.asn (add $i 1) }}
{{- end }}
interfaces:
  - name: Loopback10
    type: loopback
    ip: {{ ip .lo }}
    mask: {{ ipmask .lo | dotted }}
    vrf: {{ .primary }}
bgp:
  - asn: {{ .asn }}
    vrf: {{ .primary }}
    redistribute: [connected]
save-config: true
`

func TestLoadPlanWithVars(t *testing.T) {
	t.Setenv("RL_HOSTNAME", "R3")

	dir := t.TempDir()
	p := writeFile(t, dir, "lab.yml", templatedPlan)
	writeFile(t, dir, "lab_vars.yml", "asn: 65000\nlo: 10.0.0.1/32\ncustomers: [CUSTOMER_A, CUSTOMER_B]\nprimary: CUSTOMER_A\n")

	got, err := LoadPlan(p, "")
	if err != nil {
		t.Fatal(err)
	}

	want := &Plan{
		Hostname: "R3",
		VRFs: []types.VrfConfig{
			{Name: "CUSTOMER_A", RD: "65000:1"},
			{Name: "CUSTOMER_B", RD: "65000:2"},
		},
		Interfaces: []types.InterfaceConfig{
			{
				Name:    "Loopback10",
				Type:    types.InterfaceTypeLoopback,
				IPAddr:  "10.0.0.1",
				IPMask:  "255.255.255.255",
				Enabled: true,
				VRF:     "CUSTOMER_A",
			},
		},
		BGP: []types.BGPConfig{
			{ASN: 65000, VRF: "CUSTOMER_A", Redistribute: []types.RedistributeSource{types.RedistributeConnected}},
		},
		SaveConfig: true,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadPlan() mismatch (-want +got):\n%s", diff)
	}

	if err := got.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoadPlanExplicitVarsFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "plan.yml", "vrfs:\n  - name: {{ .vrf }}\n")
	vars := writeFile(t, dir, "other.yml", "vrf: BLUE\n")

	got, err := LoadPlan(p, vars)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]types.VrfConfig{{Name: "BLUE"}}, got.VRFs); diff != "" {
		t.Errorf("LoadPlan() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPlanErrors(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]struct {
		plan    string
		wantErr error
	}{
		"unknown field": {
			plan:    "vrfs:\n  - name: A\n    colour: red\n",
			wantErr: claberrors.ErrIncorrectInput,
		},
		"missing file": {
			wantErr: claberrors.ErrFileNotFound,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, "absent.yml")
			if tc.plan != "" {
				p = writeFile(t, dir, "plan.yml", tc.plan)
			}

			_, err := LoadPlan(p, "")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("want %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestPlanValidate(t *testing.T) {
	tests := map[string]struct {
		plan    *Plan
		wantErr bool
	}{
		"demo plan": {
			plan: DemoPlan(),
		},
		"empty plan": {
			plan: &Plan{},
		},
		"undeclared interface vrf": {
			plan: &Plan{
				Interfaces: []types.InterfaceConfig{{Name: "Loopback1", VRF: "GHOST"}},
			},
			wantErr: true,
		},
		"undeclared bgp vrf": {
			plan: &Plan{
				VRFs: []types.VrfConfig{{Name: "A"}},
				BGP:  []types.BGPConfig{{ASN: 65000, VRF: "B"}},
			},
			wantErr: true,
		},
		"undeclared ospf vrf": {
			plan: &Plan{
				OSPF: []types.OSPFConfig{{ProcessID: 1, VRF: "B"}},
			},
			wantErr: true,
		},
		"duplicate vrf": {
			plan: &Plan{
				VRFs: []types.VrfConfig{{Name: "A"}, {Name: "A"}},
			},
			wantErr: true,
		},
		"invalid rd": {
			plan: &Plan{
				VRFs: []types.VrfConfig{{Name: "A", RD: "65000"}},
			},
			wantErr: true,
		},
		"invalid route-map": {
			plan: &Plan{
				RouteMaps: []types.RouteMapConfig{{Name: "LEAK"}},
			},
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.plan.Validate()
			if tc.wantErr {
				if !errors.Is(err, claberrors.ErrIncorrectInput) {
					t.Errorf("expected ErrIncorrectInput, got %v", err)
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDemoPlanLeaksBothWays(t *testing.T) {
	p := DemoPlan()

	a, b := p.VRFs[0], p.VRFs[1]
	if a.ImportRT != b.ExportRT || b.ImportRT != a.ExportRT {
		t.Errorf("demo VRFs do not import each other's routes: %+v %+v", a, b)
	}
}

func TestExamplePlans(t *testing.T) {
	t.Run("two-customers", func(t *testing.T) {
		p, err := LoadPlan(filepath.Join("..", "examples", "two-customers", "leak.yml"), "")
		if err != nil {
			t.Fatal(err)
		}

		if err := p.Validate(); err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}

		want := []types.VrfConfig{
			{Name: "CUSTOMER_A", RD: "65000:100", ImportRT: "65000:200", ExportRT: "65000:100"},
			{Name: "CUSTOMER_B", RD: "65000:200", ImportRT: "65000:100", ExportRT: "65000:200"},
		}
		if diff := cmp.Diff(want, p.VRFs); diff != "" {
			t.Errorf("vrfs mismatch (-want +got):\n%s", diff)
		}

		if p.Interfaces[1].IPMask != "255.255.255.0" || p.Interfaces[1].IPAddr != "192.168.2.1" {
			t.Errorf("unexpected interface %+v", p.Interfaces[1])
		}

		if p.Hostname != "PE1" || p.SaveConfig {
			t.Errorf("unexpected hostname %q or save-config %v", p.Hostname, p.SaveConfig)
		}
	})

	t.Run("hub-and-spoke", func(t *testing.T) {
		p, err := LoadPlan(filepath.Join("..", "examples", "hub-and-spoke", "hub.yml"), "")
		if err != nil {
			t.Fatal(err)
		}

		if err := p.Validate(); err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}

		if len(p.RouteMaps) != 1 || len(p.RouteMaps[0].Entries) != 2 {
			t.Errorf("unexpected route-maps %+v", p.RouteMaps)
		}

		if p.OSPF[0].RedistributeBGP != 65000 {
			t.Errorf("unexpected ospf %+v", p.OSPF[0])
		}
	})
}
