// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package routes

import (
	"github.com/tunspace/splitroute/intra/ipr"
)

// Static tables of well-known ranges the resolver draws from. These are
// process-wide constants; never mutate them.

// AlwaysExcludedIPv4 are IPv4 ranges never routed through the tunnel,
// regardless of user configuration.
var AlwaysExcludedIPv4 = ranges(
	"0.0.0.0/8",      // reserved, "this" network
	"127.0.0.0/8",    // loopback
	"169.254.0.0/16", // link-local
	"224.0.0.0/4",    // multicast
	"240.0.0.0/4",    // class E
)

// AlwaysExcludedIPv6 are IPv6 ranges never routed through the tunnel,
// regardless of user configuration.
var AlwaysExcludedIPv6 = ranges(
	"::1/128",   // loopback
	"fe80::/10", // link-local
	"fc00::/7",  // unique local
	"ff00::/8",  // multicast
)

// LocalNetworkRange is the full RFC1918 private space.
var LocalNetworkRange = ranges(
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
)

// LocalNetworkRangeWithoutDNS is RFC1918 minus 10.0.0.0/8. Tunnel
// interfaces are commonly addressed from 10.0.0.0/8; excluding that
// block would route the VPN around itself.
var LocalNetworkRangeWithoutDNS = ranges(
	"172.16.0.0/12",
	"192.168.0.0/16",
)

// IPv6DefaultRoute is the catch-all route for IPv6 traffic.
var IPv6DefaultRoute = ipr.MustParse("::/0")

// PublicNetworkRange is a minimal CIDR partition of the IPv4 space
// minus the always-excluded and RFC1918 ranges, plus the IPv6 default
// route. Together these guarantee no internet-bound traffic can
// silently bypass the tunnel. Gaplessness against the complement of
// system+private space is an invariant, checked in tests with
// FindPublicInternetGaps.
var PublicNetworkRange = ranges(
	"1.0.0.0/8",
	"2.0.0.0/7",
	"4.0.0.0/6",
	"8.0.0.0/7",
	"11.0.0.0/8",
	"12.0.0.0/6",
	"16.0.0.0/4",
	"32.0.0.0/3",
	"64.0.0.0/3",
	"96.0.0.0/4",
	"112.0.0.0/5",
	"120.0.0.0/6",
	"124.0.0.0/7",
	"126.0.0.0/8",
	"128.0.0.0/3",
	"160.0.0.0/5",
	"168.0.0.0/8",
	"169.0.0.0/9",
	"169.128.0.0/10",
	"169.192.0.0/11",
	"169.224.0.0/12",
	"169.240.0.0/13",
	"169.248.0.0/14",
	"169.252.0.0/15",
	"169.255.0.0/16",
	"170.0.0.0/7",
	"172.0.0.0/12",
	"172.32.0.0/11",
	"172.64.0.0/10",
	"172.128.0.0/9",
	"173.0.0.0/8",
	"174.0.0.0/7",
	"176.0.0.0/4",
	"192.0.0.0/9",
	"192.128.0.0/11",
	"192.160.0.0/13",
	"192.169.0.0/16",
	"192.170.0.0/15",
	"192.172.0.0/14",
	"192.176.0.0/12",
	"192.192.0.0/10",
	"193.0.0.0/8",
	"194.0.0.0/7",
	"196.0.0.0/6",
	"200.0.0.0/5",
	"208.0.0.0/4",
	"::/0",
)

func ranges(cidrs ...string) []ipr.Range {
	rs := make([]ipr.Range, 0, len(cidrs))
	for _, c := range cidrs {
		rs = append(rs, ipr.MustParse(c))
	}
	return rs
}
