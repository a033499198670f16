// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package backend is the client-facing surface of the route resolver:
// csv strings in, csv strings out, so it stays bindable from platform
// code that cannot hold Go types.
package backend

import (
	"strings"

	"github.com/tunspace/splitroute/intra/log"
	"github.com/tunspace/splitroute/intra/routes"
	"github.com/tunspace/splitroute/tunnel/settings"
)

const (
	Vsep = "," // csv separator for routes and addrs

	// route directions, as tagged in the route tree
	RouteTun   = "tun"   // through the tunnel
	RouteLocal = "local" // stays on the local interface
)

// A RouteTable is one resolved split-tunnel configuration, queryable
// by longest-prefix match.
type RouteTable struct {
	t    routes.Table
	tree RouteTree
}

// ResolveRoutes resolves the route table for dnsCSV, a csv of v4/v6
// resolver addresses, and the exclude-local-networks preference.
// Malformed addresses are dropped with a warning; they never abort
// resolution for the remaining entries.
func ResolveRoutes(dnsCSV string, excludeLocalNetworks bool) *RouteTable {
	return ResolvePolicy(settings.NewRoutePolicy(
		strings.Split(dnsCSV, Vsep), excludeLocalNetworks))
}

// ResolvePolicy is ResolveRoutes for an already-assembled RoutePolicy.
func ResolvePolicy(p *settings.RoutePolicy) *RouteTable {
	if p == nil {
		p = settings.DefaultRoutePolicy()
	}

	var dns []routes.DNSServer
	for _, s := range p.DNSServers {
		s = strings.TrimSpace(s)
		if len(s) == 0 {
			continue
		}
		d, err := routes.ParseDNSServer(s)
		if err != nil {
			log.W("backend: dropping dns %q: %v", s, err)
			continue
		}
		dns = append(dns, d)
	}

	t := routes.Resolve(dns, p.ExcludeLocalNetworks)

	tree := NewRouteTree()
	for _, r := range t.Excluded {
		if err := tree.Set(r.String(), RouteLocal); err != nil {
			log.E("backend: route tree excluded %s: %v", r, err)
		}
	}
	for _, r := range t.Included {
		if err := tree.Set(r.String(), RouteTun); err != nil {
			log.E("backend: route tree included %s: %v", r, err)
		}
	}

	return &RouteTable{t: t, tree: tree}
}

// Included returns the tunneled routes as csv, canonical form.
func (rt *RouteTable) Included() string {
	return strings.Join(rt.t.IncludedStrings(), Vsep)
}

// Excluded returns the local-interface routes as csv, canonical form.
func (rt *RouteTable) Excluded() string {
	return strings.Join(rt.t.ExcludedStrings(), Vsep)
}

// Decide returns RouteTun or RouteLocal for ipOrCidr per
// longest-prefix match over the resolved table, mirroring the decision
// the OS routing layer will make once the table is installed. Returns
// "" for unparsable or unmatched input.
func (rt *RouteTable) Decide(ipOrCidr string) string {
	_, v, err := rt.tree.Match(ipOrCidr)
	if err != nil {
		log.D("backend: decide %q: %v", ipOrCidr, err)
		return ""
	}
	return v
}

// Table returns the underlying resolved table.
func (rt *RouteTable) Table() routes.Table {
	return rt.t
}
