// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"fmt"
	"net/netip"
	"strings"

	claberrors "github.com/srl-labs/routeleak/errors"
)

// RedistributeSource is a route source redistributed into a BGP VRF address family.
type RedistributeSource string

const (
	RedistributeConnected RedistributeSource = "connected"
	RedistributeOSPF      RedistributeSource = "ospf"
)

// ParseRedistributeSource parses a redistribution source name.
func ParseRedistributeSource(s string) (RedistributeSource, error) {
	switch src := RedistributeSource(strings.ToLower(strings.TrimSpace(s))); src {
	case RedistributeConnected, RedistributeOSPF:
		return src, nil
	}

	return "", fmt.Errorf("%w: unknown redistribution source %q, supported sources are connected and ospf",
		claberrors.ErrIncorrectInput, s)
}

// BGPConfig is the BGP process and its per-VRF IPv4 unicast address family.
type BGPConfig struct {
	ASN           uint32               `yaml:"asn"`
	RouterID      string               `yaml:"router-id,omitempty"`
	VRF           string               `yaml:"vrf,omitempty"`
	Redistribute  []RedistributeSource `yaml:"redistribute,omitempty"`
	OSPFProcessID uint16               `yaml:"ospf-pid,omitempty"`
}

func (c BGPConfig) redistributes(src RedistributeSource) bool {
	for _, r := range c.Redistribute {
		if r == src {
			return true
		}
	}

	return false
}

// Validate checks the user supplied fields.
func (c BGPConfig) Validate() error {
	if c.ASN == 0 {
		return fmt.Errorf("%w: bgp asn is required", claberrors.ErrIncorrectInput)
	}

	if c.RouterID != "" {
		if a, err := netip.ParseAddr(c.RouterID); err != nil || !a.Is4() {
			return fmt.Errorf("%w: bgp router-id %q is not an IPv4 address", claberrors.ErrIncorrectInput, c.RouterID)
		}
	}

	if len(c.Redistribute) > 0 && c.VRF == "" {
		return fmt.Errorf("%w: bgp redistribution requires a vrf", claberrors.ErrIncorrectInput)
	}

	if c.redistributes(RedistributeOSPF) && c.OSPFProcessID == 0 {
		return fmt.Errorf("%w: ospf process id is required when redistributing ospf", claberrors.ErrIncorrectInput)
	}

	return nil
}

// Serialize renders the BGP process. The VRF address family is present when a VRF
// is set and carries the redistribution block only when sources are given.
func (c BGPConfig) Serialize() Document {
	proc := map[string]any{"id": c.ASN}

	if c.RouterID != "" {
		proc["bgp"] = map[string]any{
			"router-id": map[string]any{"ip-id": c.RouterID},
		}
	}

	if c.VRF != "" {
		vrf := map[string]any{"name": c.VRF}

		redist := map[string]any{}
		if c.redistributes(RedistributeConnected) {
			redist["connected"] = map[string]any{}
		}

		if c.redistributes(RedistributeOSPF) {
			redist["ospf"] = []any{map[string]any{"id": c.OSPFProcessID}}
		}

		af := map[string]any{}
		if len(redist) > 0 {
			af["redistribute-vrf"] = redist
		}

		vrf["ipv4-unicast"] = af

		proc["address-family"] = map[string]any{
			"with-vrf": map[string]any{
				"ipv4": []any{
					map[string]any{
						"af-name": "unicast",
						"vrf":     []any{vrf},
					},
				},
			},
		}
	}

	return Document{rootBGP: []any{proc}}
}

// OSPFNetwork is a network statement of an OSPF process.
type OSPFNetwork struct {
	IP       string `yaml:"ip"`
	Wildcard string `yaml:"wildcard"`
	Area     uint32 `yaml:"area"`
}

// OSPFConfig is an OSPF process, optionally bound to a VRF.
type OSPFConfig struct {
	ProcessID uint16        `yaml:"pid"`
	VRF       string        `yaml:"vrf,omitempty"`
	Networks  []OSPFNetwork `yaml:"networks,omitempty"`
	// RedistributeBGP is the AS number of the BGP process redistributed into OSPF, 0 disables it.
	RedistributeBGP uint32 `yaml:"redistribute-bgp,omitempty"`
}

// Validate checks the user supplied fields.
func (c OSPFConfig) Validate() error {
	if c.ProcessID == 0 {
		return fmt.Errorf("%w: ospf process id is required", claberrors.ErrIncorrectInput)
	}

	for _, n := range c.Networks {
		for _, a := range []string{n.IP, n.Wildcard} {
			if addr, err := netip.ParseAddr(a); err != nil || !addr.Is4() {
				return fmt.Errorf("%w: ospf %d: %q is not an IPv4 address", claberrors.ErrIncorrectInput, c.ProcessID, a)
			}
		}
	}

	return nil
}

// Serialize renders the OSPF process. A VRF bound process is keyed as process-id-vrf.
func (c OSPFConfig) Serialize() Document {
	proc := map[string]any{"id": c.ProcessID}

	key := "process-id"
	if c.VRF != "" {
		key = "process-id-vrf"
		proc["vrf"] = c.VRF
	}

	if len(c.Networks) > 0 {
		nets := make([]any, 0, len(c.Networks))
		for _, n := range c.Networks {
			nets = append(nets, map[string]any{
				"ip":       n.IP,
				"wildcard": n.Wildcard,
				"area":     n.Area,
			})
		}

		proc["network"] = nets
	}

	if c.RedistributeBGP != 0 {
		proc["redistribute"] = map[string]any{
			"bgp": []any{map[string]any{"as-number": c.RedistributeBGP}},
		}
	}

	return Document{
		rootOSPF: map[string]any{
			"ospf": map[string]any{key: []any{proc}},
		},
	}
}
