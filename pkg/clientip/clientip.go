package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are consulted when no headers are configured.
var DefaultHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// Option configures Resolve and Middleware.
type Option func(*resolver)

type resolver struct {
	headers []string
}

// WithHeaders replaces the list of proxy headers. An empty list makes
// RemoteAddr the only source.
func WithHeaders(headers ...string) Option {
	return func(r *resolver) {
		r.headers = headers
	}
}

func newResolver(opts []Option) *resolver {
	r := &resolver{headers: DefaultHeaders}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the normalized client IP of r, or "" when no source holds
// a valid address. Comma-separated header values yield their first valid IP.
func Resolve(r *http.Request, opts ...Option) string {
	return newResolver(opts).resolve(r)
}

func (res *resolver) resolve(r *http.Request) string {
	for _, h := range res.headers {
		for v := range strings.SplitSeq(r.Header.Get(h), ",") {
			if ip := parseIP(v); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
