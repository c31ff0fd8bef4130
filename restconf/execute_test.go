// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package restconf

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/h2non/gock"
	clabconstants "github.com/srl-labs/routeleak/constants"
	"github.com/srl-labs/routeleak/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSendsHeadersAndCredentials(t *testing.T) {
	c := newGockClient(t)

	gock.New(testBaseURL).
		Get("/restconf/data/ietf-interfaces:interfaces").
		MatchHeader("Accept", regexp.QuoteMeta(clabconstants.MediaTypeYANGJSON)).
		MatchHeader("Content-Type", regexp.QuoteMeta(clabconstants.MediaTypeYANGJSON)).
		BasicAuth(testUsername, testPassword).
		Reply(200).
		JSON(map[string]any{
			"ietf-interfaces:interfaces": map[string]any{
				"interface": []any{map[string]any{"name": "GigabitEthernet1"}},
			},
		})

	res, err := c.GetInterfaces(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "GigabitEthernet1", res.Get("ietf-interfaces:interfaces.interface.0.name").String())
	assert.True(t, gock.IsDone(), "pending mocks: %v", gock.Pending())
}

func TestExecuteReturnsErrorStatusAsResult(t *testing.T) {
	c := newGockClient(t)

	body := map[string]any{
		"errors": map[string]any{
			"error": []any{
				map[string]any{
					"error-type":    "application",
					"error-tag":     "invalid-value",
					"error-message": "inconsistent value",
				},
			},
		},
	}

	gock.New(testBaseURL).
		Patch("/restconf/data/Cisco-IOS-XE-native:native/vrf/definition=BROKEN").
		Reply(400).
		JSON(body)

	res, err := c.PatchVRF(context.Background(), types.VrfConfig{Name: "BROKEN", RD: "1:1"})
	require.NoError(t, err, "an error status is not a transport error")

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.False(t, res.Success())
	assert.Equal(t, "invalid-value", res.Get("errors.error.0.error-tag").String())
}

func TestExecuteBodies(t *testing.T) {
	tests := map[string]struct {
		status   int
		body     string
		wantData any
	}{
		"no_content": {
			status: http.StatusNoContent,
		},
		"whitespace_only": {
			status: http.StatusOK,
			body:   "\n  ",
		},
		"not_json": {
			status: http.StatusInternalServerError,
			body:   "<html>oops</html>",
		},
		"json": {
			status:   http.StatusOK,
			body:     `{"Cisco-IOS-XE-native:hostname":"R3"}`,
			wantData: map[string]any{"Cisco-IOS-XE-native:hostname": "R3"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newGockClient(t)

			gock.New(testBaseURL).
				Get("/restconf/data/Cisco-IOS-XE-native:native/hostname").
				Reply(tt.status).
				BodyString(tt.body)

			res, err := c.Execute(context.Background(), http.MethodGet, c.URL(RequestHostname, Params{}), nil)
			require.NoError(t, err)

			assert.Equal(t, tt.status, res.StatusCode)
			assert.Equal(t, tt.body, string(res.Raw))

			if diff := cmp.Diff(tt.wantData, res.Data); diff != "" {
				t.Errorf("Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExecuteRoundTrip(t *testing.T) {
	echo := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", clabconstants.MediaTypeYANGJSON)
		b, _ := io.ReadAll(r.Body)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}))
	defer echo.Close()

	c, err := New(configFor(t, echo.URL))
	require.NoError(t, err)

	intf := types.NewInterfaceConfig("GigabitEthernet0/0/1", types.InterfaceTypeEthernet,
		types.WithIPv4("192.168.1.1", "255.255.255.0"),
		types.WithDescription("Customer A Interface"),
		types.WithVRF("CUSTOMER_A"),
	)

	res, err := c.UpdateInterface(context.Background(), intf)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	sent, err := intf.Serialize().JSON()
	require.NoError(t, err)

	var want any
	require.NoError(t, json.Unmarshal(sent, &want))

	if diff := cmp.Diff(want, res.Data); diff != "" {
		t.Errorf("echoed data mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteTransportErrors(t *testing.T) {
	t.Run("connection_refused", func(t *testing.T) {
		c, err := New(refusedConfig(t))
		require.NoError(t, err)

		_, err = c.GetInterfaces(context.Background())

		var te *TransportError
		require.True(t, errors.As(err, &te), "expected *TransportError, got %T: %v", err, err)
		assert.Equal(t, http.MethodGet, te.Method)
		assert.Equal(t, c.URL(RequestInterfaces, Params{}), te.URL)
		assert.False(t, te.Timeout())
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})

		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
			w.WriteHeader(http.StatusOK)
		}))
		defer slow.Close()
		defer close(release)

		cfg := configFor(t, slow.URL)
		cfg.Timeout = 50 * time.Millisecond

		c, err := New(cfg)
		require.NoError(t, err)

		_, err = c.GetVRFs(context.Background())

		var te *TransportError
		require.True(t, errors.As(err, &te), "expected *TransportError, got %T: %v", err, err)
		assert.True(t, te.Timeout())
	})
}
