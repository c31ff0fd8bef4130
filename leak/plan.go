// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package leak

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	claberrors "github.com/srl-labs/routeleak/errors"
	"github.com/srl-labs/routeleak/types"
	"github.com/srl-labs/routeleak/utils"
	"gopkg.in/yaml.v2"
)

const varFileSuffix = "_vars"

// Plan is the desired device configuration applied by the full configuration sequence.
type Plan struct {
	Hostname   string                  `yaml:"hostname,omitempty"`
	VRFs       []types.VrfConfig       `yaml:"vrfs,omitempty"`
	RouteMaps  []types.RouteMapConfig  `yaml:"route-maps,omitempty"`
	Interfaces []types.InterfaceConfig `yaml:"interfaces,omitempty"`
	OSPF       []types.OSPFConfig      `yaml:"ospf,omitempty"`
	BGP        []types.BGPConfig       `yaml:"bgp,omitempty"`
	// SaveConfig copies running-config to startup-config once everything else is applied.
	SaveConfig bool `yaml:"save-config,omitempty"`
}

// LoadPlan reads a plan file. The file is a template rendered with the variables
// from varsFile, or from a <plan>_vars.yml file next to it when varsFile is empty.
// Environment variables are expanded after rendering.
func LoadPlan(path, varsFile string) (*Plan, error) {
	b, err := utils.ReadFile(path)
	if err != nil {
		return nil, err
	}

	vars, err := readTemplateVariables(path, varsFile)
	if err != nil {
		return nil, err
	}

	log.Debug("plan template variables", "vars", vars)

	rendered, err := utils.RenderTemplate(filepath.Base(path), b, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to render plan %s: %w", path, err)
	}

	log.Debugf("plan:\n%s\n", rendered)

	return ParsePlan(rendered)
}

// ParsePlan decodes a rendered plan. Unknown fields are rejected.
func ParsePlan(b []byte) (*Plan, error) {
	p := &Plan{}

	err := yaml.UnmarshalStrict(b, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", claberrors.ErrIncorrectInput, err)
	}

	return p, nil
}

func readTemplateVariables(path, varsFile string) (map[string]any, error) {
	if varsFile == "" {
		abs, err := utils.ResolvePath(path)
		if err != nil {
			return nil, err
		}

		varsFile = utils.SiblingFile(abs, varFileSuffix, ".yaml", ".yml", ".json")
		if varsFile == "" {
			// plain plan or a template without external variables
			return nil, nil
		}
	}

	data, err := utils.ReadFile(varsFile)
	if err != nil {
		return nil, err
	}

	vars := map[string]any{}

	err = yaml.Unmarshal(data, &vars)
	if err != nil {
		return nil, fmt.Errorf("failed to parse variables file %s: %w", varsFile, err)
	}

	return vars, nil
}

// Validate checks every record of the plan and that each VRF an interface,
// OSPF or BGP process refers to is declared in the plan.
func (p *Plan) Validate() error {
	declared := map[string]struct{}{}

	for _, v := range p.VRFs {
		if err := v.Validate(); err != nil {
			return err
		}

		if _, ok := declared[v.Name]; ok {
			return fmt.Errorf("%w: vrf %s declared twice", claberrors.ErrIncorrectInput, v.Name)
		}

		declared[v.Name] = struct{}{}
	}

	known := func(kind, owner, vrf string) error {
		if vrf == "" {
			return nil
		}

		if _, ok := declared[vrf]; !ok {
			return fmt.Errorf("%w: %s %s references undeclared vrf %s",
				claberrors.ErrIncorrectInput, kind, owner, vrf)
		}

		return nil
	}

	for _, rm := range p.RouteMaps {
		if err := rm.Validate(); err != nil {
			return err
		}
	}

	for _, i := range p.Interfaces {
		if err := i.Validate(); err != nil {
			return err
		}

		if err := known("interface", i.Name, i.VRF); err != nil {
			return err
		}
	}

	for _, o := range p.OSPF {
		if err := o.Validate(); err != nil {
			return err
		}

		if err := known("ospf process", fmt.Sprint(o.ProcessID), o.VRF); err != nil {
			return err
		}
	}

	for _, b := range p.BGP {
		if err := b.Validate(); err != nil {
			return err
		}

		if err := known("bgp", fmt.Sprint(b.ASN), b.VRF); err != nil {
			return err
		}
	}

	return nil
}

// DemoPlan returns the two customer route leaking demo: CUSTOMER_A and CUSTOMER_B
// import each other's export route target and BGP redistributes the connected
// routes of both VRFs.
func DemoPlan() *Plan {
	return &Plan{
		VRFs: []types.VrfConfig{
			{Name: "CUSTOMER_A", RD: "65000:100", ImportRT: "65000:200", ExportRT: "65000:100"},
			{Name: "CUSTOMER_B", RD: "65000:200", ImportRT: "65000:100", ExportRT: "65000:200"},
		},
		Interfaces: []types.InterfaceConfig{
			types.NewInterfaceConfig("GigabitEthernet0/0/1", types.InterfaceTypeEthernet,
				types.WithIPv4("192.168.1.1", "255.255.255.0"),
				types.WithVRF("CUSTOMER_A"),
				types.WithDescription("CUSTOMER_A uplink")),
		},
		BGP: []types.BGPConfig{
			{ASN: 65000, VRF: "CUSTOMER_A", Redistribute: []types.RedistributeSource{types.RedistributeConnected}},
			{ASN: 65000, VRF: "CUSTOMER_B", Redistribute: []types.RedistributeSource{types.RedistributeConnected}},
		},
	}
}
