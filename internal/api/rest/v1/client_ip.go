package v1

import (
	"net"
	"net/http"
	"strings"
)

// Headers consulted for the client address, in priority order.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderXForwardedURI  = "X-Forwarded-Uri"
)

// ClientIP picks the address a request should be judged by.
//
// CF-Connecting-IP wins over X-Forwarded-For, and only the first header
// present is consulted. A comma-separated value contributes its first
// element. Without either header the TCP peer address is used.
func ClientIP(r *http.Request) string {
	for _, header := range []string{HeaderCFConnectingIP, HeaderXForwardedFor} {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		first, _, _ := strings.Cut(value, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
		break
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// requestedPath is the path the client asked Traefik for, falling back to the
// path of the auth request itself when Traefik did not forward it.
func requestedPath(r *http.Request) string {
	if uri := r.Header.Get(HeaderXForwardedURI); uri != "" {
		return uri
	}
	return r.URL.Path
}
