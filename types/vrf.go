// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	claberrors "github.com/srl-labs/routeleak/errors"
)

// VrfConfig is the desired configuration of a VRF definition.
// RD and the route targets use the ASN:NN (or A.B.C.D:NN) notation.
type VrfConfig struct {
	Name     string `yaml:"name"`
	RD       string `yaml:"rd,omitempty"`
	ImportRT string `yaml:"import-rt,omitempty"`
	ExportRT string `yaml:"export-rt,omitempty"`
}

// HasAttributes reports whether the VRF carries anything beyond its name,
// i.e. whether a patch has to follow the bare creation.
func (c VrfConfig) HasAttributes() bool {
	return c.RD != "" || c.ImportRT != "" || c.ExportRT != ""
}

// Validate checks the VRF name and the format of RD and route targets.
func (c VrfConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: vrf name is required", claberrors.ErrIncorrectInput)
	}

	for _, f := range []struct {
		field, value string
	}{
		{"rd", c.RD},
		{"import-rt", c.ImportRT},
		{"export-rt", c.ExportRT},
	} {
		if f.value == "" {
			continue
		}

		if err := ValidateExtCommunity(f.value); err != nil {
			return fmt.Errorf("%w: vrf %s: %s %v", claberrors.ErrIncorrectInput, c.Name, f.field, err)
		}
	}

	return nil
}

// SerializeMinimal renders the VRF definition with its name only.
// The device rejects RD and route targets on creation, those are added by
// patching the full document afterwards.
func (c VrfConfig) SerializeMinimal() Document {
	return Document{
		rootVRF: map[string]any{"name": c.Name},
	}
}

// Serialize renders the full VRF definition. The address family stub follows the RD,
// the route-target block is present when at least one of the route targets is set
// and carries only the directions that are.
func (c VrfConfig) Serialize() Document {
	def := map[string]any{"name": c.Name}

	if c.RD != "" {
		def["rd"] = c.RD
		def["address-family"] = map[string]any{
			"ipv4": map[string]any{},
		}
	}

	rt := map[string]any{}
	if c.ExportRT != "" {
		rt["export"] = map[string]any{"asn-ip": c.ExportRT}
	}

	if c.ImportRT != "" {
		rt["import"] = map[string]any{"asn-ip": c.ImportRT}
	}

	if len(rt) > 0 {
		def["route-target"] = rt
	}

	return Document{rootVRF: def}
}

// ValidateExtCommunity checks a route distinguisher or route target value
// in the ASN:NN or A.B.C.D:NN notation.
func ValidateExtCommunity(s string) error {
	admin, assigned, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("%q is not in ASN:NN or A.B.C.D:NN notation", s)
	}

	if _, err := strconv.ParseUint(assigned, 10, 32); err != nil {
		return fmt.Errorf("%q has an invalid assigned number %q", s, assigned)
	}

	if a, err := netip.ParseAddr(admin); err == nil {
		if !a.Is4() {
			return fmt.Errorf("%q must use an IPv4 administrator", s)
		}

		return nil
	}

	if _, err := strconv.ParseUint(admin, 10, 32); err != nil {
		return fmt.Errorf("%q has an invalid administrator %q", s, admin)
	}

	return nil
}
