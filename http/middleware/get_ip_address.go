package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/wanderlust"
)

const unknownIP = "0.0.0.0"

// nonPublic lists the IANA special-purpose ranges netip.Addr.IsPrivate does not cover.
var nonPublic = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress stores the client's IP address in the *http.Request.Context under wanderlust.IpAddrKey.
// Forwarding headers set by a proxy win over the connection's remote address.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := GetIPAddress(r.Header)
			if ip == unknownIP {
				if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
					ip = host
				}
			}

			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), wanderlust.IpAddrKey, ip)))
		})
	}
}

// GetIPAddress reads the "X-Forwarded-For" and "X-Real-Ip" headers for the client's IP address,
// skipping any address not publicly routable.
// When none is found, GetIPAddress returns "0.0.0.0".
func GetIPAddress(hm http.Header) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		hops := strings.Split(hm.Get(h), ",")

		// NOTE: the rightmost public address is the one our proxy saw
		for i := len(hops) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil || !isPublic(addr) {
				continue
			}

			return addr.String()
		}
	}

	return unknownIP
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range nonPublic {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
