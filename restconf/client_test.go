// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package restconf

import (
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/h2non/gock"
	claberrors "github.com/srl-labs/routeleak/errors"
)

const (
	testAddress  = "10.0.0.1"
	testUsername = "admin"
	testPassword = "secret"
	testBaseURL  = "https://" + testAddress
)

// newGockClient returns a client whose HTTP client is intercepted by gock.
func newGockClient(t *testing.T, opts ...ClientOption) *Client {
	t.Helper()

	hc := &http.Client{}

	c, err := New(Config{
		Address:  testAddress,
		Username: testUsername,
		Password: testPassword,
	}, append([]ClientOption{WithHTTPClient(hc)}, opts...)...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	gock.InterceptClient(hc)
	t.Cleanup(func() {
		gock.RestoreClient(hc)
		gock.Off()
	})

	return c
}

// configFor returns a Config pointing at the server behind rawURL.
func configFor(t *testing.T, rawURL string) Config {
	t.Helper()

	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatal(err)
	}

	host, port, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatal(err)
	}

	p, err := strconv.Atoi(port)
	if err != nil {
		t.Fatal(err)
	}

	return Config{
		Address:            host,
		Port:               p,
		Username:           testUsername,
		Password:           testPassword,
		Scheme:             u.Scheme,
		Timeout:            2 * time.Second,
		InsecureSkipVerify: true,
	}
}

// capturedRequest is what a recording server saw of a request.
type capturedRequest struct {
	Method      string
	EscapedPath string
	Body        string
	Header      http.Header
}

// recorder is an httptest server keeping every request it receives and
// answering with a fixed status and body.
type recorder struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
}

func newRecorder(t *testing.T, status int, body string) *recorder {
	t.Helper()

	r := &recorder{}
	r.Server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)

		r.mu.Lock()
		r.requests = append(r.requests, capturedRequest{
			Method:      req.Method,
			EscapedPath: req.URL.EscapedPath(),
			Body:        string(b),
			Header:      req.Header.Clone(),
		})
		r.mu.Unlock()

		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))

	t.Cleanup(r.Close)

	return r
}

func (r *recorder) client(t *testing.T, opts ...ClientOption) *Client {
	t.Helper()

	c, err := New(configFor(t, r.URL), opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	return c
}

func (r *recorder) captured() []capturedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]capturedRequest(nil), r.requests...)
}

// refusedConfig returns a Config pointing at a port nothing listens on.
func refusedConfig(t *testing.T) Config {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	cfg := configFor(t, srv.URL)
	srv.Close()

	return cfg
}

func TestNewRequiresCredentials(t *testing.T) {
	tests := map[string]Config{
		"no_address":  {Username: "u", Password: "p"},
		"no_username": {Address: "r1", Password: "p"},
		"no_password": {Address: "r1", Username: "u"},
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(cfg)
			if !errors.Is(err, claberrors.ErrMissingCredentials) {
				t.Fatalf("expected ErrMissingCredentials, got %v", err)
			}
		})
	}
}

func TestConfigBaseURL(t *testing.T) {
	tests := map[string]struct {
		cfg  Config
		want string
	}{
		"default_scheme": {
			cfg:  Config{Address: "10.0.0.1"},
			want: "https://10.0.0.1",
		},
		"with_port": {
			cfg:  Config{Address: "r1.lab", Port: 8443},
			want: "https://r1.lab:8443",
		},
		"ipv6_with_port": {
			cfg:  Config{Address: "2001:db8::1", Port: 443},
			want: "https://[2001:db8::1]:443",
		},
		"ipv6_without_port": {
			cfg:  Config{Address: "2001:db8::1"},
			want: "https://[2001:db8::1]",
		},
		"plain_http": {
			cfg:  Config{Address: "127.0.0.1", Port: 8080, Scheme: "http"},
			want: "http://127.0.0.1:8080",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.cfg.BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
