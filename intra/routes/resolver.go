// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package routes computes the split-tunnel route tables: which CIDR
// ranges go through the tunnel and which must stay on the local
// interface. Resolution is a pure function of the DNS server list and
// the exclude-local-networks preference; the well-known range catalog
// is immutable, so Resolve is safe to call from any goroutine.
package routes

import (
	"github.com/tunspace/splitroute/intra/ipr"
	"github.com/tunspace/splitroute/intra/log"
)

// A Table is one resolved route configuration. Included ranges are
// sent through the tunnel, Excluded ranges stay on the local
// interface. The lists are in resolution order and are not
// deduplicated; overlaps between a host route and a broader excluded
// range are intended (more specific routes win at the OS).
type Table struct {
	Included []ipr.Range
	Excluded []ipr.Range
}

// Resolve computes the route table for the given DNS servers and
// local-network preference.
//
// Excluded always carries the system ranges (loopback, link-local,
// multicast, reserved) for both families. With excludeLocalNetworks
// set, 172.16.0.0/12 and 192.168.0.0/16 are excluded as well;
// 10.0.0.0/8 deliberately is not, since tunnel interfaces themselves
// commonly live in that block. With it unset, the full RFC1918 space
// is included instead, keeping local devices reachable.
//
// Included always carries the public coverage ranges and the IPv6
// default route, plus one host route (/32 or /128) per DNS server, in
// input order, duplicates preserved. A DNS host route may fall inside
// a broader excluded range; that conflict is intended and left as is.
func Resolve(dns []DNSServer, excludeLocalNetworks bool) Table {
	excluded := make([]ipr.Range, 0,
		len(AlwaysExcludedIPv4)+len(AlwaysExcludedIPv6)+len(LocalNetworkRangeWithoutDNS))
	excluded = append(excluded, AlwaysExcludedIPv4...)
	excluded = append(excluded, AlwaysExcludedIPv6...)

	included := make([]ipr.Range, 0,
		len(LocalNetworkRange)+len(PublicNetworkRange)+len(dns))

	if excludeLocalNetworks {
		excluded = append(excluded, LocalNetworkRangeWithoutDNS...)
	} else {
		included = append(included, LocalNetworkRange...)
	}

	included = append(included, PublicNetworkRange...)

	for _, d := range dns {
		included = append(included, d.HostRoute())
	}

	log.D("routes: resolved %d included / %d excluded; dns %d, nolocal? %t",
		len(included), len(excluded), len(dns), excludeLocalNetworks)

	return Table{Included: included, Excluded: excluded}
}

// IncludedStrings returns Included in canonical "addr/prefix" form,
// the wire form the tunnel-configuration API consumes.
func (t Table) IncludedStrings() []string {
	return strs(t.Included)
}

// ExcludedStrings returns Excluded in canonical "addr/prefix" form.
func (t Table) ExcludedStrings() []string {
	return strs(t.Excluded)
}

func strs(rs []ipr.Range) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.String())
	}
	return out
}
