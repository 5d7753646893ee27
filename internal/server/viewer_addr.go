package server

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in order when the mirror runs behind a reverse
// proxy. Only the first X-Forwarded-For hop is used.
var proxyHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// viewerAddr names the host a mirror viewer connects from.
func viewerAddr(r *http.Request) string {
	for _, name := range proxyHeaders {
		hop, _, _ := strings.Cut(r.Header.Get(name), ",")
		if host := hostOnly(hop); host != "" {
			return host
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// hostOnly strips quotes, brackets and a port, returning "" unless what is
// left parses as an IP address.
func hostOnly(v string) string {
	v = strings.Trim(strings.TrimSpace(v), `"[]`)
	if host, _, err := net.SplitHostPort(v); err == nil {
		v = host
	}
	ip := net.ParseIP(v)
	if ip == nil {
		return ""
	}
	return ip.String()
}
