// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"fmt"
	"net/netip"
	"strings"

	clabconstants "github.com/srl-labs/routeleak/constants"
	claberrors "github.com/srl-labs/routeleak/errors"
)

// InterfaceType selects the IANA interface type an interface is configured with.
type InterfaceType int

const (
	InterfaceTypeEthernet InterfaceType = iota
	InterfaceTypeLoopback
	InterfaceTypeSerial
)

var interfaceTypeNames = map[InterfaceType]string{
	InterfaceTypeEthernet: "ethernet",
	InterfaceTypeLoopback: "loopback",
	InterfaceTypeSerial:   "serial",
}

var interfaceTypeIANA = map[InterfaceType]string{
	InterfaceTypeEthernet: "ethernetCsmacd",
	InterfaceTypeLoopback: "softwareLoopback",
	InterfaceTypeSerial:   "propPointToPointSerial",
}

// ParseInterfaceType parses the user facing interface type name.
func ParseInterfaceType(s string) (InterfaceType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range interfaceTypeNames {
		if name == s {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown interface type %q, supported types are ethernet, loopback and serial",
		claberrors.ErrIncorrectInput, s)
}

func (t InterfaceType) String() string {
	if n, ok := interfaceTypeNames[t]; ok {
		return n
	}

	return fmt.Sprintf("InterfaceType(%d)", int(t))
}

// IANA returns the iana-if-type identity of the interface type.
func (t InterfaceType) IANA() string {
	return qualify(clabconstants.ModuleIANAIfType, interfaceTypeIANA[t])
}

// UnmarshalYAML decodes the interface type from its name.
func (t *InterfaceType) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	parsed, err := ParseInterfaceType(s)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// MarshalYAML encodes the interface type by name.
func (t InterfaceType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// InterfaceConfig is the desired configuration of a single interface.
type InterfaceConfig struct {
	Name        string        `yaml:"name"`
	Type        InterfaceType `yaml:"type,omitempty"`
	IPAddr      string        `yaml:"ip,omitempty"`
	IPMask      string        `yaml:"mask,omitempty"`
	Enabled     bool          `yaml:"enabled"`
	Description string        `yaml:"description,omitempty"`
	VRF         string        `yaml:"vrf,omitempty"`
}

// InterfaceOption customizes an InterfaceConfig created by NewInterfaceConfig.
type InterfaceOption func(*InterfaceConfig)

// NewInterfaceConfig returns an enabled interface configuration.
func NewInterfaceConfig(name string, t InterfaceType, opts ...InterfaceOption) InterfaceConfig {
	c := InterfaceConfig{
		Name:    name,
		Type:    t,
		Enabled: true,
	}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithIPv4 sets the interface address and dotted decimal mask.
func WithIPv4(addr, mask string) InterfaceOption {
	return func(c *InterfaceConfig) {
		c.IPAddr = addr
		c.IPMask = mask
	}
}

// WithDescription sets the interface description.
func WithDescription(d string) InterfaceOption {
	return func(c *InterfaceConfig) {
		c.Description = d
	}
}

// WithVRF places the interface into the given VRF.
func WithVRF(vrf string) InterfaceOption {
	return func(c *InterfaceConfig) {
		c.VRF = vrf
	}
}

// WithShutdown administratively disables the interface.
func WithShutdown() InterfaceOption {
	return func(c *InterfaceConfig) {
		c.Enabled = false
	}
}

// LoopbackName returns the interface name of the loopback with the given number.
func LoopbackName(id int) string {
	return fmt.Sprintf("Loopback%d", id)
}

// UnmarshalYAML decodes an interface, defaulting Enabled to true.
func (c *InterfaceConfig) UnmarshalYAML(unmarshal func(any) error) error {
	type plain InterfaceConfig

	p := plain{Enabled: true}
	if err := unmarshal(&p); err != nil {
		return err
	}

	*c = InterfaceConfig(p)

	return nil
}

// Validate checks the user supplied fields. Serialize does not depend on it:
// a half specified address is silently left out of the document.
func (c InterfaceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: interface name is required", claberrors.ErrIncorrectInput)
	}

	if (c.IPAddr == "") != (c.IPMask == "") {
		return fmt.Errorf("%w: interface %s: ip address and mask must be set together",
			claberrors.ErrIncorrectInput, c.Name)
	}

	if c.IPAddr == "" {
		return nil
	}

	if a, err := netip.ParseAddr(c.IPAddr); err != nil || !a.Is4() {
		return fmt.Errorf("%w: interface %s: %q is not an IPv4 address",
			claberrors.ErrIncorrectInput, c.Name, c.IPAddr)
	}

	if !IsDottedMask(c.IPMask) {
		return fmt.Errorf("%w: interface %s: %q is not a dotted decimal subnet mask",
			claberrors.ErrIncorrectInput, c.Name, c.IPMask)
	}

	return nil
}

// Serialize renders the interface into an ietf-interfaces document.
// The address block is present only when both address and mask are set,
// the VRF forwarding block only when a VRF is set.
func (c InterfaceConfig) Serialize() Document {
	intf := map[string]any{
		"name":        c.Name,
		"description": c.Description,
		"type":        c.Type.IANA(),
		"enabled":     c.Enabled,
	}

	if c.IPAddr != "" && c.IPMask != "" {
		intf[keyIPv4] = map[string]any{
			"address": []any{
				map[string]any{
					"ip":      c.IPAddr,
					"netmask": c.IPMask,
				},
			},
		}
	}

	if c.VRF != "" {
		intf[keyVRFForwarding] = vrfForwarding(c.VRF)
	}

	return Document{rootInterface: intf}
}

// InterfaceVRFAssignment renders the document that moves an existing interface
// into a VRF without touching its other leaves.
func InterfaceVRFAssignment(name, vrf string) Document {
	return Document{
		rootInterface: map[string]any{
			"name":           name,
			keyVRFForwarding: vrfForwarding(vrf),
		},
	}
}

func vrfForwarding(vrf string) map[string]any {
	return map[string]any{"forwarding": vrf}
}

// IsDottedMask reports whether s is a contiguous IPv4 netmask such as 255.255.255.0.
func IsDottedMask(s string) bool {
	a, err := netip.ParseAddr(s)
	if err != nil || !a.Is4() {
		return false
	}

	b := a.As4()
	m := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	// a contiguous mask inverted is 2^n-1, so adding one leaves a single bit set
	inv := ^m

	return inv&(inv+1) == 0
}
