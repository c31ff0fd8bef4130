// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"encoding/json"

	clabconstants "github.com/srl-labs/routeleak/constants"
)

// Document is a YANG-JSON document as sent in a RESTCONF request body.
// Optional blocks are added only when their source fields are set; an absent
// value is never represented by a null.
type Document map[string]any

// JSON encodes the document.
func (d Document) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// Serializer is implemented by the configuration records that render into a Document.
type Serializer interface {
	Serialize() Document
}

// qualify prefixes a node name with its YANG module, e.g. ietf-ip:ipv4.
func qualify(module, node string) string {
	return module + ":" + node
}

var (
	rootInterface = qualify(clabconstants.ModuleIETFInterfaces, "interface")
	rootVRF       = qualify(clabconstants.ModuleNative, "definition")
	rootBGP       = qualify(clabconstants.ModuleBGP, "bgp")
	rootOSPF      = qualify(clabconstants.ModuleOSPF, "router-ospf")
	rootRouteMap  = qualify(clabconstants.ModuleNative, "route-map")
	rootHostname  = qualify(clabconstants.ModuleNative, "hostname")

	keyIPv4          = qualify(clabconstants.ModuleIETFIP, "ipv4")
	keyVRFForwarding = qualify(clabconstants.ModuleNative, "vrf")
	keyRouteMapSeq   = qualify(clabconstants.ModuleRouteMap, "route-map-without-order-seq")
)
