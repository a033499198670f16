// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package settings

// RoutePolicy carries the user-facing routing preferences for one VPN
// (re)connect: the configured DNS resolver addresses and whether
// local-network traffic should bypass the tunnel.
type RoutePolicy struct {
	// DNSServers are resolver addresses, v4 or v6, as strings.
	// Validation happens at resolution time; malformed entries are
	// dropped there, not here.
	DNSServers []string
	// ExcludeLocalNetworks keeps RFC1918 traffic (except 10.0.0.0/8)
	// on the local interface.
	ExcludeLocalNetworks bool
}

// SetPolicy re-assigns dns and x.
func (p *RoutePolicy) SetPolicy(dns []string, x bool) {
	p.DNSServers = dns
	p.ExcludeLocalNetworks = x
}

// AddDNS appends one resolver address. Duplicates are kept; the
// resolver emits one host route per entry.
func (p *RoutePolicy) AddDNS(addr string) {
	p.DNSServers = append(p.DNSServers, addr)
}

// NewRoutePolicy returns a RoutePolicy with dns and x.
func NewRoutePolicy(dns []string, x bool) *RoutePolicy {
	return &RoutePolicy{
		DNSServers:           dns,
		ExcludeLocalNetworks: x,
	}
}

// DefaultRoutePolicy returns the default policy: tunnel everything,
// local networks included, no DNS routes.
func DefaultRoutePolicy() *RoutePolicy {
	return &RoutePolicy{}
}
