// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package restconf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		rt     RequestType
		params Params
		want   string
	}{
		{
			rt:   RequestInterfaces,
			want: "https://r1/restconf/data/ietf-interfaces:interfaces",
		},
		{
			rt:     RequestInterface,
			params: Params{Interface: "Loopback1"},
			want:   "https://r1/restconf/data/ietf-interfaces:interfaces/interface=Loopback1",
		},
		{
			rt:     RequestInterface,
			params: Params{Interface: "Gi0/0/1"},
			want:   "https://r1/restconf/data/ietf-interfaces:interfaces/interface=Gi0%2F0%2F1",
		},
		{
			rt:   RequestVRF,
			want: "https://r1/restconf/data/Cisco-IOS-XE-native:native/vrf",
		},
		{
			rt:     RequestVRFByName,
			params: Params{VRF: "CUSTOMER_A"},
			want:   "https://r1/restconf/data/Cisco-IOS-XE-native:native/vrf/definition=CUSTOMER_A",
		},
		{
			rt:   RequestBGP,
			want: "https://r1/restconf/data/Cisco-IOS-XE-native:native/router/Cisco-IOS-XE-bgp:bgp",
		},
		{
			rt:   RequestOSPF,
			want: "https://r1/restconf/data/Cisco-IOS-XE-native:native/router/Cisco-IOS-XE-ospf:router-ospf",
		},
		{
			rt:     RequestRouteMap,
			params: Params{RouteMap: "LEAK A"},
			want:   "https://r1/restconf/data/Cisco-IOS-XE-native:native/route-map=LEAK%20A",
		},
		{
			rt:   RequestHostname,
			want: "https://r1/restconf/data/Cisco-IOS-XE-native:native/hostname",
		},
		{
			rt:   RequestVersion,
			want: "https://r1/restconf/data/Cisco-IOS-XE-native:native/version",
		},
		{
			rt:   RequestSaveConfig,
			want: "https://r1/restconf/operations/cisco-ia:save-config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.rt.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL("https://r1", tt.rt, tt.params))
		})
	}
}

func TestResolveURLCoversEveryRequestType(t *testing.T) {
	p := Params{Interface: "Gi1", VRF: "A", RouteMap: "RM"}
	seen := map[string]RequestType{}

	for _, rt := range RequestTypes {
		u := ResolveURL("https://r1", rt, p)

		assert.Equal(t, u, ResolveURL("https://r1", rt, p), "resolution of %s is not deterministic", rt)

		if other, ok := seen[u]; ok {
			t.Errorf("%s and %s resolve to the same URL %s", rt, other, u)
		}

		seen[u] = rt
	}
}

func TestResolveURLKeepsSlashInsideSegment(t *testing.T) {
	u := ResolveURL("https://r1", RequestInterface, Params{Interface: "GigabitEthernet0/0/1"})

	segment := u[strings.LastIndex(u, "/")+1:]
	assert.Equal(t, "interface=GigabitEthernet0%2F0%2F1", segment)
}

func TestResolveURLPanicsOnUnknownType(t *testing.T) {
	assert.Panics(t, func() {
		ResolveURL("https://r1", RequestType(len(RequestTypes)+10), Params{})
	})
}
