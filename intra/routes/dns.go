// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package routes

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/tunspace/splitroute/intra/ipr"
)

var errNotAnAddr = errors.New("routes: not an ip address")

// A DNSServer wraps one resolved v4 or v6 resolver address supplied by
// the VPN configuration. Duplicates in a server list are legal and are
// preserved downstream.
type DNSServer struct {
	addr netip.Addr
}

func NewDNSServer(addr netip.Addr) DNSServer {
	return DNSServer{addr.Unmap()}
}

// ParseDNSServer parses a bare v4 or v6 address. Zoned addresses are
// rejected: a scoped resolver cannot be expressed as a tunnel route.
func ParseDNSServer(s string) (DNSServer, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return DNSServer{}, fmt.Errorf("%w: %q: %v", errNotAnAddr, s, err)
	}
	if addr.Zone() != "" {
		return DNSServer{}, fmt.Errorf("%w: %q: zoned", errNotAnAddr, s)
	}
	return NewDNSServer(addr), nil
}

func (d DNSServer) Addr() netip.Addr { return d.addr }

func (d DNSServer) IsValid() bool { return d.addr.IsValid() }

func (d DNSServer) String() string { return d.addr.String() }

// HostRoute returns the single-host route for this server: /32 for a
// v4 address, /128 for a v6 address.
func (d DNSServer) HostRoute() ipr.Range {
	return ipr.Host(d.addr)
}
