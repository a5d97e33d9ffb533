// Package requestmeta inspects request origin metadata for mutation guards.
package requestmeta

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is derived. Forwarded
// headers are only honored when the site runs behind a trusted proxy.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// Proof is the outcome of a same-origin check.
type Proof int

const (
	// ProofAbsent means neither Origin nor Referer was sent.
	ProofAbsent Proof = iota
	// ProofSameOrigin means the declared origin matches the request.
	ProofSameOrigin
	// ProofCrossOrigin means the declared origin is foreign or unparsable.
	ProofCrossOrigin
)

// CheckOrigin compares the Origin header, or the Referer when Origin is
// missing, against the scheme, host and port the request was sent to.
func CheckOrigin(r *http.Request, policy SchemePolicy) Proof {
	if r == nil {
		return ProofCrossOrigin
	}
	declared := strings.TrimSpace(r.Header.Get("Origin"))
	if declared == "" || declared == "null" {
		declared = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if declared == "" {
		return ProofAbsent
	}
	want, ok := requestOrigin(r, policy)
	if !ok {
		return ProofCrossOrigin
	}
	got, ok := parseOrigin(declared)
	if !ok || got != want {
		return ProofCrossOrigin
	}
	return ProofSameOrigin
}

// HasSameOriginProof reports whether Origin or Referer proves same-origin.
func HasSameOriginProof(r *http.Request) bool {
	return CheckOrigin(r, SchemePolicy{}) == ProofSameOrigin
}

// RequestScheme returns "https" or "http" for r.
func RequestScheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return "http"
	}
	if policy.TrustForwardedProto {
		switch proto := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); proto {
		case "http", "https":
			return proto
		}
	}
	if r.TLS != nil {
		return "https"
	}
	if r.URL != nil && strings.EqualFold(r.URL.Scheme, "https") {
		return "https"
	}
	return "http"
}

type origin struct {
	scheme string
	host   string
	port   string
}

func requestOrigin(r *http.Request, policy SchemePolicy) (origin, bool) {
	host := r.Host
	if host == "" && r.URL != nil {
		host = r.URL.Host
	}
	scheme := RequestScheme(r, policy)
	hostname, port := splitHostPort(host)
	if hostname == "" {
		return origin{}, false
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{scheme: scheme, host: hostname, port: port}, true
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return origin{}, false
	}
	hostname := strings.ToLower(parsed.Hostname())
	if hostname == "" {
		return origin{}, false
	}
	port := parsed.Port()
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{scheme: scheme, host: hostname, port: port}, true
}

func splitHostPort(hostport string) (string, string) {
	hostport = strings.TrimSpace(hostport)
	if hostport == "" {
		return "", ""
	}
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		return strings.ToLower(strings.Trim(hostport, "[]")), ""
	}
	return strings.ToLower(host), port
}

func defaultPort(scheme string) string {
	if scheme == "https" {
		return "443"
	}
	return "80"
}
