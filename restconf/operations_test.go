// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package restconf

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/srl-labs/routeleak/types"
	"github.com/stretchr/testify/require"
)

// decodeBody decodes a captured JSON body, an empty body decodes to nil.
func decodeBody(t *testing.T, body string) any {
	t.Helper()

	if strings.TrimSpace(body) == "" {
		return nil
	}

	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatalf("request body is not JSON: %v\n%s", err, body)
	}

	return v
}

func TestPatchVRFCustomerA(t *testing.T) {
	srv := newRecorder(t, http.StatusNoContent, "")
	c := srv.client(t)

	vrf := types.VrfConfig{
		Name:     "CUSTOMER_A",
		RD:       "65000:100",
		ExportRT: "65000:100",
		ImportRT: "65000:200",
	}

	res, err := c.PatchVRF(context.Background(), vrf)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Nil(t, res.Data)

	reqs := srv.captured()
	require.Len(t, reqs, 1)

	got := reqs[0]
	if got.Method != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", got.Method)
	}

	wantPath := "/restconf/data/Cisco-IOS-XE-native:native/vrf/definition=CUSTOMER_A"
	if got.EscapedPath != wantPath {
		t.Errorf("path = %s, want %s", got.EscapedPath, wantPath)
	}

	body := decodeBody(t, got.Body).(map[string]any)
	def := body["Cisco-IOS-XE-native:definition"].(map[string]any)

	wantRT := map[string]any{
		"export": map[string]any{"asn-ip": "65000:100"},
		"import": map[string]any{"asn-ip": "65000:200"},
	}

	if diff := cmp.Diff(wantRT, def["route-target"]); diff != "" {
		t.Errorf("route-target mismatch (-want +got):\n%s", diff)
	}
}

func TestOperationsRequests(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		call       func(c *Client) (*Result, error)
		wantMethod string
		wantPath   string
		wantBody   string
	}{
		"get_interface_with_slash": {
			call:       func(c *Client) (*Result, error) { return c.GetInterface(ctx, "GigabitEthernet0/0/1") },
			wantMethod: http.MethodGet,
			wantPath:   "/restconf/data/ietf-interfaces:interfaces/interface=GigabitEthernet0%2F0%2F1",
		},
		"update_interface": {
			call: func(c *Client) (*Result, error) {
				return c.UpdateInterface(ctx, types.NewInterfaceConfig("Loopback1", types.InterfaceTypeLoopback,
					types.WithIPv4("1.1.1.1", "255.255.255.255")))
			},
			wantMethod: http.MethodPut,
			wantPath:   "/restconf/data/ietf-interfaces:interfaces/interface=Loopback1",
			wantBody: `{"ietf-interfaces:interface":{"name":"Loopback1","description":"",
				"type":"iana-if-type:softwareLoopback","enabled":true,
				"ietf-ip:ipv4":{"address":[{"ip":"1.1.1.1","netmask":"255.255.255.255"}]}}}`,
		},
		"delete_interface": {
			call:       func(c *Client) (*Result, error) { return c.DeleteInterface(ctx, "Loopback1") },
			wantMethod: http.MethodDelete,
			wantPath:   "/restconf/data/ietf-interfaces:interfaces/interface=Loopback1",
		},
		"assign_vrf": {
			call:       func(c *Client) (*Result, error) { return c.AssignVRFToInterface(ctx, "Gi0/0/2", "CUSTOMER_B") },
			wantMethod: http.MethodPatch,
			wantPath:   "/restconf/data/ietf-interfaces:interfaces/interface=Gi0%2F0%2F2",
			wantBody: `{"ietf-interfaces:interface":{"name":"Gi0/0/2",
				"Cisco-IOS-XE-native:vrf":{"forwarding":"CUSTOMER_B"}}}`,
		},
		"get_vrfs": {
			call:       func(c *Client) (*Result, error) { return c.GetVRFs(ctx) },
			wantMethod: http.MethodGet,
			wantPath:   "/restconf/data/Cisco-IOS-XE-native:native/vrf",
		},
		"create_vrf_is_bare": {
			call: func(c *Client) (*Result, error) {
				return c.CreateVRF(ctx, types.VrfConfig{Name: "CUSTOMER_B", RD: "65000:200", ImportRT: "65000:100"})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/restconf/data/Cisco-IOS-XE-native:native/vrf",
			wantBody:   `{"Cisco-IOS-XE-native:definition":{"name":"CUSTOMER_B"}}`,
		},
		"get_vrf": {
			call:       func(c *Client) (*Result, error) { return c.GetVRF(ctx, "CUSTOMER_B") },
			wantMethod: http.MethodGet,
			wantPath:   "/restconf/data/Cisco-IOS-XE-native:native/vrf/definition=CUSTOMER_B",
		},
		"delete_vrf": {
			call:       func(c *Client) (*Result, error) { return c.DeleteVRF(ctx, "CUSTOMER_B") },
			wantMethod: http.MethodDelete,
			wantPath:   "/restconf/data/Cisco-IOS-XE-native:native/vrf/definition=CUSTOMER_B",
		},
		"configure_bgp": {
			call: func(c *Client) (*Result, error) {
				return c.ConfigureBGP(ctx, types.BGPConfig{ASN: 65000, RouterID: "1.1.1.1"})
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/restconf/data/Cisco-IOS-XE-native:native/router/Cisco-IOS-XE-bgp:bgp",
			wantBody:   `{"Cisco-IOS-XE-bgp:bgp":[{"id":65000,"bgp":{"router-id":{"ip-id":"1.1.1.1"}}}]}`,
		},
		"get_bgp": {
			call:       func(c *Client) (*Result, error) { return c.GetBGP(ctx) },
			wantMethod: http.MethodGet,
			wantPath:   "/restconf/data/Cisco-IOS-XE-native:native/router/Cisco-IOS-XE-bgp:bgp",
		},
		"configure_ospf": {
			call: func(c *Client) (*Result, error) {
				return c.ConfigureOSPF(ctx, types.OSPFConfig{ProcessID: 1})
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/restconf/data/Cisco-IOS-XE-native:native/router/Cisco-IOS-XE-ospf:router-ospf",
			wantBody:   `{"Cisco-IOS-XE-ospf:router-ospf":{"ospf":{"process-id":[{"id":1}]}}}`,
		},
		"get_ospf": {
			call:       func(c *Client) (*Result, error) { return c.GetOSPF(ctx) },
			wantMethod: http.MethodGet,
			wantPath:   "/restconf/data/Cisco-IOS-XE-native:native/router/Cisco-IOS-XE-ospf:router-ospf",
		},
		"configure_route_map": {
			call: func(c *Client) (*Result, error) {
				return c.ConfigureRouteMap(ctx, types.RouteMapConfig{
					Name:    "RM",
					Entries: []types.RouteMapEntry{{Seq: 10, Action: types.RouteMapPermit}},
				})
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/restconf/data/Cisco-IOS-XE-native:native/route-map=RM",
			wantBody: `{"Cisco-IOS-XE-native:route-map":[{"name":"RM",
				"Cisco-IOS-XE-route-map:route-map-without-order-seq":[{"seq_no":10,"operation":"permit"}]}]}`,
		},
		"set_hostname": {
			call:       func(c *Client) (*Result, error) { return c.SetHostname(ctx, "R3") },
			wantMethod: http.MethodPatch,
			wantPath:   "/restconf/data/Cisco-IOS-XE-native:native/hostname",
			wantBody:   `{"Cisco-IOS-XE-native:hostname":"R3"}`,
		},
		"save_config": {
			call:       func(c *Client) (*Result, error) { return c.SaveConfig(ctx) },
			wantMethod: http.MethodPost,
			wantPath:   "/restconf/operations/cisco-ia:save-config",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := newRecorder(t, http.StatusOK, "")

			_, err := tt.call(srv.client(t))
			require.NoError(t, err)

			reqs := srv.captured()
			require.Len(t, reqs, 1)

			if reqs[0].Method != tt.wantMethod {
				t.Errorf("method = %s, want %s", reqs[0].Method, tt.wantMethod)
			}

			if reqs[0].EscapedPath != tt.wantPath {
				t.Errorf("path = %s, want %s", reqs[0].EscapedPath, tt.wantPath)
			}

			if diff := cmp.Diff(decodeBody(t, tt.wantBody), decodeBody(t, reqs[0].Body)); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateInterfaceDoesNotLeakVRF(t *testing.T) {
	srv := newRecorder(t, http.StatusNoContent, "")
	c := srv.client(t)
	ctx := context.Background()

	_, err := c.UpdateInterface(ctx, types.NewInterfaceConfig("GigabitEthernet1", types.InterfaceTypeEthernet,
		types.WithVRF("CUSTOMER_A")))
	require.NoError(t, err)

	_, err = c.UpdateInterface(ctx, types.NewInterfaceConfig("GigabitEthernet2", types.InterfaceTypeEthernet))
	require.NoError(t, err)

	reqs := srv.captured()
	require.Len(t, reqs, 2)

	if !strings.Contains(reqs[0].Body, `"Cisco-IOS-XE-native:vrf"`) {
		t.Errorf("first request lacks the vrf block: %s", reqs[0].Body)
	}

	if strings.Contains(reqs[1].Body, "vrf") {
		t.Errorf("vrf block leaked into the second request: %s", reqs[1].Body)
	}
}
