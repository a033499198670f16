// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package ipr implements CIDR range values and the containment and
// overlap arithmetic the split-tunnel route resolver is built on.
package ipr

import (
	"errors"
	"fmt"
	"net/netip"
)

var (
	errEmpty   = errors.New("ipr: empty input")
	errNoParse = errors.New("ipr: not an ip range")
)

// A Range is one CIDR block: an address family, a network address, and a
// prefix length. The stored address is always the canonical network
// address for the prefix (host bits zeroed), so two Ranges are equal,
// with ==, iff family, network address, and prefix length all match.
type Range struct {
	p netip.Prefix
}

// Parse parses s in "addr/prefix" form, eg "10.0.0.0/8" or "fe80::/10".
// The prefix length must be within 0..32 for IPv4 and 0..128 for IPv6.
// Host bits in s are zeroed. Malformed input of any kind is an error,
// never a panic.
func Parse(s string) (Range, error) {
	if len(s) == 0 {
		return Range{}, errEmpty
	}
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", errNoParse, s, err)
	}
	return Range{p.Masked()}, nil
}

// MustParse is Parse for static tables; panics on malformed s.
func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// From builds a Range from addr and a prefix length, canonicalizing
// host bits. Errors if bits is out of range for addr's family.
func From(addr netip.Addr, bits int) (Range, error) {
	p := netip.PrefixFrom(addr, bits)
	if !p.IsValid() {
		return Range{}, fmt.Errorf("%w: %s/%d", errNoParse, addr, bits)
	}
	return Range{p.Masked()}, nil
}

// Host returns the single-address range for addr: /32 for IPv4,
// /128 for IPv6.
func Host(addr netip.Addr) Range {
	return Range{netip.PrefixFrom(addr, addr.BitLen())}
}

// Addr returns the network address.
func (r Range) Addr() netip.Addr { return r.p.Addr() }

// Bits returns the prefix length, or -1 for the zero Range.
func (r Range) Bits() int { return r.p.Bits() }

func (r Range) Is4() bool     { return r.p.Addr().Is4() }
func (r Range) IsValid() bool { return r.p.IsValid() }

// IsHost reports whether r matches exactly one address.
func (r Range) IsHost() bool {
	return r.p.IsValid() && r.p.IsSingleIP()
}

// Prefix returns r as a netip.Prefix.
func (r Range) Prefix() netip.Prefix { return r.p }

// String returns the canonical "addr/prefix" form; it round-trips
// through Parse.
func (r Range) String() string { return r.p.String() }

// ContainsAddr reports whether addr falls inside r. Always false
// across address families.
func (r Range) ContainsAddr(addr netip.Addr) bool {
	return r.p.Contains(addr)
}

// Contains reports whether o is entirely inside r: o's prefix is at
// least as long as r's and o's network address matches r over r's
// prefix length. A range contains itself.
func (r Range) Contains(o Range) bool {
	return o.p.Bits() >= r.p.Bits() && r.p.Contains(o.p.Addr())
}

// Overlaps reports whether r and o share any address; symmetric.
func (r Range) Overlaps(o Range) bool {
	return r.p.Overlaps(o.p)
}

// HasExactMatch reports whether some entry of rs equals r exactly,
// not merely overlaps it.
func (r Range) HasExactMatch(rs []Range) bool {
	for _, o := range rs {
		if r == o {
			return true
		}
	}
	return false
}
