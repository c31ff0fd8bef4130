// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package restconf

import (
	"fmt"
	"net/url"

	clabconstants "github.com/srl-labs/routeleak/constants"
)

// RequestType identifies the device resource an operation targets.
type RequestType int

const (
	// RequestInterfaces is the interfaces collection.
	RequestInterfaces RequestType = iota
	// RequestInterface is a single interface, keyed by name.
	RequestInterface
	// RequestVRF is the VRF collection of the native model.
	RequestVRF
	// RequestVRFByName is a single VRF definition, keyed by name.
	RequestVRFByName
	RequestBGP
	RequestOSPF
	// RequestRouteMap is a single route-map, keyed by name.
	RequestRouteMap
	RequestHostname
	RequestVersion
	// RequestSaveConfig is the RPC copying the running configuration to startup.
	RequestSaveConfig
)

// RequestTypes lists every request type.
var RequestTypes = []RequestType{
	RequestInterfaces,
	RequestInterface,
	RequestVRF,
	RequestVRFByName,
	RequestBGP,
	RequestOSPF,
	RequestRouteMap,
	RequestHostname,
	RequestVersion,
	RequestSaveConfig,
}

func (r RequestType) String() string {
	switch r {
	case RequestInterfaces:
		return "interfaces"
	case RequestInterface:
		return "interface"
	case RequestVRF:
		return "vrf"
	case RequestVRFByName:
		return "vrf-by-name"
	case RequestBGP:
		return "bgp"
	case RequestOSPF:
		return "ospf"
	case RequestRouteMap:
		return "route-map"
	case RequestHostname:
		return "hostname"
	case RequestVersion:
		return "version"
	case RequestSaveConfig:
		return "save-config"
	}

	return fmt.Sprintf("RequestType(%d)", int(r))
}

// Params carries the key values substituted into a resource path.
type Params struct {
	Interface string
	VRF       string
	RouteMap  string
}

const (
	pathInterfaces = clabconstants.ModuleIETFInterfaces + ":interfaces"
	pathNative     = clabconstants.ModuleNative + ":native"
)

// ResolveURL maps a request type and its parameters onto the resource URL under base
// (scheme://host[:port]). Key values are percent-encoded, so GigabitEthernet0/0/1 becomes
// GigabitEthernet0%2F0%2F1. An unknown request type is a programming error and panics.
func ResolveURL(base string, rt RequestType, p Params) string {
	data := base + clabconstants.RESTCONFDataRoot

	switch rt {
	case RequestInterfaces:
		return data + "/" + pathInterfaces
	case RequestInterface:
		return data + "/" + pathInterfaces + "/interface=" + url.PathEscape(p.Interface)
	case RequestVRF:
		return data + "/" + pathNative + "/vrf"
	case RequestVRFByName:
		return data + "/" + pathNative + "/vrf/definition=" + url.PathEscape(p.VRF)
	case RequestBGP:
		return data + "/" + pathNative + "/router/" + clabconstants.ModuleBGP + ":bgp"
	case RequestOSPF:
		return data + "/" + pathNative + "/router/" + clabconstants.ModuleOSPF + ":router-ospf"
	case RequestRouteMap:
		return data + "/" + pathNative + "/route-map=" + url.PathEscape(p.RouteMap)
	case RequestHostname:
		return data + "/" + pathNative + "/hostname"
	case RequestVersion:
		return data + "/" + pathNative + "/version"
	case RequestSaveConfig:
		return base + clabconstants.RESTCONFOperationsRoot + "/" + clabconstants.ModuleIA + ":save-config"
	}

	panic(fmt.Sprintf("restconf: no URL for %s", rt))
}

// URL resolves the request type against the device this client talks to.
func (c *Client) URL(rt RequestType, p Params) string {
	return ResolveURL(c.base, rt, p)
}
