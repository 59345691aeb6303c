// Package dnscheck sends a live query to the daemon's DNS listener to
// verify it is actually answering, independent of what the control binary
// reports.
package dnscheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// probeDomain is a stable, always-resolvable name. The answer content does
// not matter; any well-formed response proves the listener is alive.
const probeDomain = "example.org."

const probeTimeout = 2 * time.Second

// Check queries addr for an A record and returns nil if any response comes
// back, regardless of rcode. A filtering daemon may legitimately answer
// REFUSED or NXDOMAIN; that still means it is running.
func Check(ctx context.Context, addr string) error {
	if !strings.Contains(addr, ":") {
		addr += ":53"
	}

	c := new(dns.Client)
	c.Timeout = probeTimeout

	m := new(dns.Msg)
	m.SetQuestion(probeDomain, dns.TypeA)

	if _, _, err := c.ExchangeContext(ctx, m, addr); err != nil {
		return fmt.Errorf("dns probe %s: %w", addr, err)
	}
	return nil
}
