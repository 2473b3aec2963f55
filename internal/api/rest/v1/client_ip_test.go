//go:build unit
// +build unit

package v1

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "peer address without headers",
			remoteAddr: "192.0.2.10:52814",
			expected:   "192.0.2.10",
		},
		{
			name:       "ipv6 peer address",
			remoteAddr: "[2001:db8::7]:443",
			expected:   "2001:db8::7",
		},
		{
			name:       "cloudflare header",
			headers:    map[string]string{HeaderCFConnectingIP: "203.0.113.7"},
			remoteAddr: "192.0.2.10:52814",
			expected:   "203.0.113.7",
		},
		{
			name:       "x-forwarded-for uses first hop",
			headers:    map[string]string{HeaderXForwardedFor: " 198.51.100.4 , 10.0.0.2, 10.0.0.3"},
			remoteAddr: "192.0.2.10:52814",
			expected:   "198.51.100.4",
		},
		{
			name: "cloudflare wins over x-forwarded-for",
			headers: map[string]string{
				HeaderCFConnectingIP: "203.0.113.7",
				HeaderXForwardedFor:  "198.51.100.4",
			},
			remoteAddr: "192.0.2.10:52814",
			expected:   "203.0.113.7",
		},
		{
			name:       "blank first element falls back to peer",
			headers:    map[string]string{HeaderXForwardedFor: " , 198.51.100.4"},
			remoteAddr: "192.0.2.10:52814",
			expected:   "192.0.2.10",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.10",
			expected:   "192.0.2.10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, ClientIP(req))
		})
	}
}

func TestRequestedPath(t *testing.T) {
	req := httptest.NewRequest("GET", "/verify", nil)
	assert.Equal(t, "/verify", requestedPath(req))

	req.Header.Set(HeaderXForwardedURI, "/wp-login.php?x=1")
	assert.Equal(t, "/wp-login.php?x=1", requestedPath(req))
}
