package util

import (
	"net"
	"net/http/httptest"
	"testing"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Https", input: "https://example.com", expected: true},
		{name: "Http with path and query", input: "http://example.com/a/b?c=d", expected: true},
		{name: "Port", input: "https://example.com:8443/", expected: true},
		{name: "Empty", input: "", expected: false},
		{name: "Missing scheme", input: "example.com", expected: false},
		{name: "Other scheme", input: "ftp://example.com", expected: false},
		{name: "Whitespace", input: "https://exa mple.com", expected: false},
		{name: "Host starts with dot", input: "https://.example.com", expected: false},
		{name: "Only scheme", input: "https://", expected: false},
		{name: "Javascript", input: "javascript:alert(1)", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidURL(tt.input); got != tt.expected {
				t.Errorf("IsValidURL(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetClientIPAddress(t *testing.T) {
	trusted, err := ParseTrustedProxies([]string{"10.0.0.0/8", "192.0.2.1"})
	if err != nil {
		t.Fatalf("ParseTrustedProxies() unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		trusted   []*net.IPNet
		forwarded string
		remote    string
		expected  string
	}{
		{name: "Remote address", remote: "198.51.100.4:5555", expected: "198.51.100.4"},
		{name: "Remote without port", remote: "198.51.100.4", expected: "198.51.100.4"},
		{name: "Forwarded ignored without trusted proxies", forwarded: "203.0.113.7", remote: "198.51.100.4:5555", expected: "198.51.100.4"},
		{name: "Forwarded ignored from untrusted peer", trusted: trusted, forwarded: "203.0.113.7", remote: "198.51.100.4:5555", expected: "198.51.100.4"},
		{name: "Forwarded from trusted peer", trusted: trusted, forwarded: "203.0.113.7", remote: "10.0.0.1:5555", expected: "203.0.113.7"},
		{name: "Trusted hops skipped", trusted: trusted, forwarded: "203.0.113.7, 10.0.0.2", remote: "192.0.2.1:5555", expected: "203.0.113.7"},
		{name: "Spoofed left-most hop", trusted: trusted, forwarded: "1.2.3.4, 203.0.113.7", remote: "10.0.0.1:5555", expected: "203.0.113.7"},
		{name: "Garbage hop", trusted: trusted, forwarded: "not-an-ip", remote: "10.0.0.1:5555", expected: "10.0.0.1"},
		{name: "Trusted peer without header", trusted: trusted, remote: "10.0.0.1:5555", expected: "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := GetClientIPAddress(r, tt.trusted); got != tt.expected {
				t.Errorf("GetClientIPAddress() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	nets, err := ParseTrustedProxies([]string{" 10.0.0.0/8 ", "", "::1", "192.0.2.1"})
	if err != nil {
		t.Fatalf("ParseTrustedProxies() unexpected error: %v", err)
	}
	if len(nets) != 3 {
		t.Fatalf("len = %d, want 3", len(nets))
	}
	if !nets[1].Contains(net.ParseIP("::1")) || nets[2].Contains(net.ParseIP("192.0.2.2")) {
		t.Errorf("single addresses must match exactly: %v", nets)
	}

	for _, bad := range []string{"10.0.0.0/33", "proxy.local"} {
		if _, err := ParseTrustedProxies([]string{bad}); err == nil {
			t.Errorf("ParseTrustedProxies(%q) expected error", bad)
		}
	}
}
