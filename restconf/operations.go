// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package restconf

import (
	"context"
	"net/http"

	"github.com/srl-labs/routeleak/types"
)

// The operations below resolve the URL of their resource, render the document and
// execute the request. None of them looks at the status code of the result.

// GetInterfaces reads the interface collection.
func (c *Client) GetInterfaces(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, http.MethodGet, c.URL(RequestInterfaces, Params{}), nil)
}

// GetInterface reads a single interface.
func (c *Client) GetInterface(ctx context.Context, name string) (*Result, error) {
	return c.Execute(ctx, http.MethodGet, c.URL(RequestInterface, Params{Interface: name}), nil)
}

// UpdateInterface replaces the interface configuration with cfg.
func (c *Client) UpdateInterface(ctx context.Context, cfg types.InterfaceConfig) (*Result, error) {
	return c.Execute(ctx, http.MethodPut, c.URL(RequestInterface, Params{Interface: cfg.Name}), cfg.Serialize())
}

// DeleteInterface removes the interface configuration.
func (c *Client) DeleteInterface(ctx context.Context, name string) (*Result, error) {
	return c.Execute(ctx, http.MethodDelete, c.URL(RequestInterface, Params{Interface: name}), nil)
}

// AssignVRFToInterface merges the VRF forwarding block into an existing interface.
func (c *Client) AssignVRFToInterface(ctx context.Context, name, vrf string) (*Result, error) {
	return c.Execute(ctx, http.MethodPatch, c.URL(RequestInterface, Params{Interface: name}),
		types.InterfaceVRFAssignment(name, vrf))
}

// GetVRFs reads every VRF definition.
func (c *Client) GetVRFs(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, http.MethodGet, c.URL(RequestVRF, Params{}), nil)
}

// GetVRF reads a single VRF definition.
func (c *Client) GetVRF(ctx context.Context, name string) (*Result, error) {
	return c.Execute(ctx, http.MethodGet, c.URL(RequestVRFByName, Params{VRF: name}), nil)
}

// CreateVRF posts the bare VRF definition, name only, to the VRF collection.
// RD and route targets are rejected on creation and have to follow with PatchVRF.
func (c *Client) CreateVRF(ctx context.Context, cfg types.VrfConfig) (*Result, error) {
	return c.Execute(ctx, http.MethodPost, c.URL(RequestVRF, Params{}), cfg.SerializeMinimal())
}

// PatchVRF merges the full VRF definition, RD and route targets included.
func (c *Client) PatchVRF(ctx context.Context, cfg types.VrfConfig) (*Result, error) {
	return c.Execute(ctx, http.MethodPatch, c.URL(RequestVRFByName, Params{VRF: cfg.Name}), cfg.Serialize())
}

// DeleteVRF removes the VRF definition.
func (c *Client) DeleteVRF(ctx context.Context, name string) (*Result, error) {
	return c.Execute(ctx, http.MethodDelete, c.URL(RequestVRFByName, Params{VRF: name}), nil)
}

// ConfigureBGP merges the BGP process and its VRF address family.
func (c *Client) ConfigureBGP(ctx context.Context, cfg types.BGPConfig) (*Result, error) {
	return c.Execute(ctx, http.MethodPatch, c.URL(RequestBGP, Params{}), cfg.Serialize())
}

// GetBGP reads the BGP configuration.
func (c *Client) GetBGP(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, http.MethodGet, c.URL(RequestBGP, Params{}), nil)
}

// ConfigureOSPF merges the OSPF process, its networks and BGP redistribution.
func (c *Client) ConfigureOSPF(ctx context.Context, cfg types.OSPFConfig) (*Result, error) {
	return c.Execute(ctx, http.MethodPatch, c.URL(RequestOSPF, Params{}), cfg.Serialize())
}

// GetOSPF reads the OSPF configuration.
func (c *Client) GetOSPF(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, http.MethodGet, c.URL(RequestOSPF, Params{}), nil)
}

// ConfigureRouteMap merges the route-map entries.
func (c *Client) ConfigureRouteMap(ctx context.Context, cfg types.RouteMapConfig) (*Result, error) {
	return c.Execute(ctx, http.MethodPatch, c.URL(RequestRouteMap, Params{RouteMap: cfg.Name}), cfg.Serialize())
}

// SetHostname merges the device hostname.
func (c *Client) SetHostname(ctx context.Context, name string) (*Result, error) {
	return c.Execute(ctx, http.MethodPatch, c.URL(RequestHostname, Params{}), types.Hostname(name).Serialize())
}

// SaveConfig invokes the save-config RPC, persisting the running configuration.
func (c *Client) SaveConfig(ctx context.Context) (*Result, error) {
	return c.Execute(ctx, http.MethodPost, c.URL(RequestSaveConfig, Params{}), nil)
}
